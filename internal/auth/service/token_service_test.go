package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	autherror "github.com/mgallego/auth-service/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name            string
		secret          string
		lifetimeSeconds int
	}{
		{
			name:            "valid parameters",
			secret:          "signing-secret-key",
			lifetimeSeconds: 3600,
		},
		{
			name:            "short lifetime",
			secret:          "another-secret",
			lifetimeSeconds: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.secret, tt.lifetimeSeconds)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.secret, ts.secret)
			assert.Equal(t, time.Duration(tt.lifetimeSeconds)*time.Second, ts.Lifetime())
		})
	}
}

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	ts := NewTokenService("test-signing-secret", 3600)

	subjects := []string{
		"user-123",
		"c9a0f1de-52f9-4f6a-9d4e-0a4318c5f9aa",
		"admin-456",
	}

	for _, subject := range subjects {
		token, err := ts.Issue(subject)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		got, err := ts.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, subject, got)
	}
}

func TestTokenService_Issue_Claims(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ts := NewTokenService("test-signing-secret", 3600)
	ts.now = func() time.Time { return base }

	token, err := ts.Issue("user-123")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-signing-secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return base }))
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, base.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, base.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

// TestTokenService_Verify_ExpiryBoundary pins the behavior at the expiry
// instant: a token is accepted strictly before exp and rejected from exactly
// exp onward.
func TestTokenService_Verify_ExpiryBoundary(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ts := NewTokenService("test-signing-secret", 3600)
	ts.now = func() time.Time { return base }

	token, err := ts.Issue("user-123")
	require.NoError(t, err)

	tests := []struct {
		name      string
		at        time.Time
		expectErr bool
	}{
		{name: "immediately after issuance", at: base, expectErr: false},
		{name: "one second before expiry", at: base.Add(3599 * time.Second), expectErr: false},
		{name: "exactly at expiry", at: base.Add(3600 * time.Second), expectErr: true},
		{name: "after expiry", at: base.Add(3601 * time.Second), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.now = func() time.Time { return tt.at }

			subject, err := ts.Verify(token)
			if tt.expectErr {
				assert.ErrorIs(t, err, autherror.ErrInvalidToken)
				assert.Empty(t, subject)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "user-123", subject)
			}
		})
	}
}

func TestTokenService_Verify_Rejections(t *testing.T) {
	ts := NewTokenService("test-signing-secret", 3600)

	t.Run("signature from a different secret", func(t *testing.T) {
		other := NewTokenService("some-other-secret", 3600)
		token, err := other.Issue("user-123")
		require.NoError(t, err)

		_, err = ts.Verify(token)
		assert.ErrorIs(t, err, autherror.ErrInvalidToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := ts.Verify("not-a-jwt")
		assert.ErrorIs(t, err, autherror.ErrInvalidToken)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := ts.Verify("")
		assert.ErrorIs(t, err, autherror.ErrInvalidToken)
	})

	t.Run("unsigned token", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ts.Verify(unsigned)
		assert.ErrorIs(t, err, autherror.ErrInvalidToken)
	})

	t.Run("missing exp claim", func(t *testing.T) {
		claims := jwt.RegisteredClaims{Subject: "user-123"}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("test-signing-secret"))
		require.NoError(t, err)

		_, err = ts.Verify(token)
		assert.ErrorIs(t, err, autherror.ErrInvalidToken)
	})

	t.Run("missing subject claim", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("test-signing-secret"))
		require.NoError(t, err)

		_, err = ts.Verify(token)
		assert.ErrorIs(t, err, autherror.ErrInvalidToken)
	})
}
