package service

//go:generate mockgen -destination=../../mocks/mock_token_issuer.go -package=mocks github.com/mgallego/auth-service/internal/auth/service TokenIssuer

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	autherror "github.com/mgallego/auth-service/internal/errors"
)

type TokenIssuer interface {
	Issue(subjectID string) (string, error)
	Verify(tokenString string) (string, error)
	Lifetime() time.Duration
}

// TokenService issues and verifies stateless HS256 bearer tokens. Verification
// is a pure function of the token, the secret and the clock; there is no
// revocation list, so a token stays valid until its expiry.
type TokenService struct {
	secret   string
	lifetime time.Duration

	// now is swapped out in tests to pin expiry boundaries.
	now func() time.Time
}

func NewTokenService(secret string, lifetimeSeconds int) *TokenService {
	return &TokenService{
		secret:   secret,
		lifetime: time.Duration(lifetimeSeconds) * time.Second,
		now:      time.Now,
	}
}

func (ts *TokenService) Issue(subjectID string) (string, error) {
	now := ts.now()

	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ts.lifetime)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.secret))
}

// Verify parses and validates the given token and returns its subject id.
// Malformed tokens, signature mismatches and expired tokens all map to
// ErrInvalidToken. A token is rejected from the moment the clock reaches exp.
func (ts *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.secret), nil
	}, jwt.WithTimeFunc(ts.now), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return "", autherror.ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", autherror.ErrInvalidToken
	}

	return claims.Subject, nil
}

func (ts *TokenService) Lifetime() time.Duration {
	return ts.lifetime
}
