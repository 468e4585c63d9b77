package service

//go:generate mockgen -destination=../../mocks/mock_google_authenticator.go -package=mocks github.com/mgallego/auth-service/internal/auth/service GoogleAuthenticator

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mgallego/auth-service/internal/auth/domain"
	"github.com/mgallego/auth-service/internal/auth/dto"
	autherror "github.com/mgallego/auth-service/internal/errors"
	authconstant "github.com/mgallego/auth-service/pkg/constant"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

type GoogleAuthenticator interface {
	LoginURL() string
	CompleteLogin(ctx context.Context, code string) (*dto.TokenResponse, error)
}

// GoogleService drives the authorization-code exchange with Google and maps
// the verified identity onto a local user record.
type GoogleService struct {
	oauth        *oauth2.Config
	repo         domain.UserRepository
	tokenService TokenIssuer
	userInfoURL  string
}

func NewGoogleService(clientID, clientSecret, redirectURI string,
	repo domain.UserRepository, tokenService TokenIssuer) *GoogleService {
	return &GoogleService{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		repo:         repo,
		tokenService: tokenService,
		userInfoURL:  googleUserInfoURL,
	}
}

// LoginURL builds the provider authorization URL. The state parameter is
// generated per call but not checked on the callback; see DESIGN.md.
func (s *GoogleService) LoginURL() string {
	return s.oauth.AuthCodeURL(randomState())
}

// CompleteLogin exchanges the callback code for Google's identity assertion,
// resolves it to a local user (creating an SSO-only account on first login)
// and issues a bearer token for that user.
func (s *GoogleService) CompleteLogin(ctx context.Context, code string) (*dto.TokenResponse, error) {
	if code == "" {
		return nil, autherror.ErrFederatedAuthFailed
	}

	providerToken, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, autherror.ErrFederatedAuthFailed
	}

	identity, err := s.fetchIdentity(ctx, providerToken)
	if err != nil {
		return nil, err
	}

	if identity.Email == "" {
		return nil, autherror.ErrFederatedAuthFailed
	}

	now := time.Now()

	candidate := &domain.User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(identity.Email),
		PasswordHash: nil,
		IsActive:     true,
		IsVerified:   identity.EmailVerified,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	user, err := s.repo.FindOrCreateByEmail(ctx, candidate)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokenService.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   authconstant.DefaultTokenType,
	}, nil
}

func (s *GoogleService) fetchIdentity(ctx context.Context, token *oauth2.Token) (*domain.GoogleIdentity, error) {
	resp, err := s.oauth.Client(ctx, token).Get(s.userInfoURL)
	if err != nil {
		return nil, autherror.ErrFederatedAuthFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, autherror.ErrFederatedAuthFailed
	}

	var payload struct {
		Sub           string `json:"sub"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, autherror.ErrFederatedAuthFailed
	}

	return &domain.GoogleIdentity{
		Subject:       payload.Sub,
		Email:         payload.Email,
		EmailVerified: payload.EmailVerified,
		Name:          payload.Name,
		Picture:       payload.Picture,
	}, nil
}

func randomState() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}

	return hex.EncodeToString(b)
}
