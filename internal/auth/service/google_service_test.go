package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mgallego/auth-service/internal/auth/domain"
	autherror "github.com/mgallego/auth-service/internal/errors"
	"github.com/mgallego/auth-service/internal/mocks"
	authconstant "github.com/mgallego/auth-service/pkg/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// fakeProvider stands in for Google's token and userinfo endpoints.
func fakeProvider(t *testing.T, userInfo map[string]any, tokenStatus int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if tokenStatus != http.StatusOK {
			w.WriteHeader(tokenStatus)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "provider-access-token",
			"token_type":   "Bearer",
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(userInfo)
	})

	return httptest.NewServer(mux)
}

func newTestGoogleService(repo domain.UserRepository, tokenService TokenIssuer, provider *httptest.Server) *GoogleService {
	s := NewGoogleService("client-id", "client-secret",
		"https://example.com/auth/google/callback", repo, tokenService)
	s.oauth.Endpoint = oauth2.Endpoint{TokenURL: provider.URL + "/token"}
	s.userInfoURL = provider.URL + "/userinfo"

	return s
}

func TestGoogleService_LoginURL(t *testing.T) {
	s := NewGoogleService("client-id", "client-secret",
		"https://example.com/auth/google/callback", nil, nil)

	loginURL := s.LoginURL()

	parsed, err := url.Parse(loginURL)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "https://example.com/auth/google/callback", query.Get("redirect_uri"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Contains(t, query.Get("scope"), "email")
	assert.NotEmpty(t, query.Get("state"))
}

func TestGoogleService_CompleteLogin_FirstLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenIssuer(ctrl)

	provider := fakeProvider(t, map[string]any{
		"sub":            "google-sub-1",
		"email":          "New.User@Example.com",
		"email_verified": true,
		"name":           "New User",
	}, http.StatusOK)
	defer provider.Close()

	s := newTestGoogleService(mockRepo, mockTokenService, provider)

	createdUser := &domain.User{ID: "created-id", Email: "new.user@example.com", IsActive: true}

	mockRepo.EXPECT().FindOrCreateByEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, candidate *domain.User) (*domain.User, error) {
			assert.Equal(t, "new.user@example.com", candidate.Email)
			assert.Nil(t, candidate.PasswordHash)
			assert.True(t, candidate.IsActive)
			assert.True(t, candidate.IsVerified)
			assert.NotEmpty(t, candidate.ID)
			return createdUser, nil
		})
	mockTokenService.EXPECT().Issue(createdUser.ID).Return("issued-jwt", nil)

	response, err := s.CompleteLogin(context.Background(), "auth-code")

	assert.NoError(t, err)
	assert.NotNil(t, response)
	assert.Equal(t, "issued-jwt", response.AccessToken)
	assert.Equal(t, authconstant.DefaultTokenType, response.TokenType)
}

// A repeat login for a known email must reuse the stored user id, not the
// freshly generated candidate id.
func TestGoogleService_CompleteLogin_ExistingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenIssuer(ctrl)

	provider := fakeProvider(t, map[string]any{
		"sub":            "google-sub-1",
		"email":          "known@example.com",
		"email_verified": true,
	}, http.StatusOK)
	defer provider.Close()

	s := newTestGoogleService(mockRepo, mockTokenService, provider)

	existingUser := &domain.User{ID: "existing-id", Email: "known@example.com", IsActive: true}

	mockRepo.EXPECT().FindOrCreateByEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, candidate *domain.User) (*domain.User, error) {
			assert.NotEqual(t, existingUser.ID, candidate.ID)
			return existingUser, nil
		})
	mockTokenService.EXPECT().Issue(existingUser.ID).Return("issued-jwt", nil)

	response, err := s.CompleteLogin(context.Background(), "auth-code")

	assert.NoError(t, err)
	assert.Equal(t, "issued-jwt", response.AccessToken)
}

func TestGoogleService_CompleteLogin_MissingEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenIssuer(ctrl)

	provider := fakeProvider(t, map[string]any{
		"sub": "google-sub-1",
	}, http.StatusOK)
	defer provider.Close()

	s := newTestGoogleService(mockRepo, mockTokenService, provider)

	response, err := s.CompleteLogin(context.Background(), "auth-code")

	assert.ErrorIs(t, err, autherror.ErrFederatedAuthFailed)
	assert.Nil(t, response)
}

func TestGoogleService_CompleteLogin_ExchangeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenIssuer(ctrl)

	provider := fakeProvider(t, nil, http.StatusBadRequest)
	defer provider.Close()

	s := newTestGoogleService(mockRepo, mockTokenService, provider)

	response, err := s.CompleteLogin(context.Background(), "rejected-code")

	assert.ErrorIs(t, err, autherror.ErrFederatedAuthFailed)
	assert.Nil(t, response)
}

func TestGoogleService_CompleteLogin_EmptyCode(t *testing.T) {
	s := NewGoogleService("client-id", "client-secret",
		"https://example.com/auth/google/callback", nil, nil)

	response, err := s.CompleteLogin(context.Background(), "")

	assert.ErrorIs(t, err, autherror.ErrFederatedAuthFailed)
	assert.Nil(t, response)
}
