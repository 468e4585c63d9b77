package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mgallego/auth-service/internal/auth/domain"
	"github.com/mgallego/auth-service/internal/auth/dto"
	autherror "github.com/mgallego/auth-service/internal/errors"
	authconstant "github.com/mgallego/auth-service/pkg/constant"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenIssuer
}

func NewUserService(repo domain.UserRepository, tokenService TokenIssuer) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	existingUser, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	hash := string(hashedPassword)

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(input.Email),
		PasswordHash: &hash,
		IsActive:     true,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login validates an email/password pair and issues a bearer token. Unknown
// emails, SSO-only accounts and wrong passwords are indistinguishable to the
// caller.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	if user == nil || !user.HasPassword() ||
		bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, autherror.ErrInactiveAccount
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

// Resolve maps an incoming bearer token to the current principal. A token
// remains structurally valid until expiry, so the account state is re-checked
// on every call.
func (s *UserService) Resolve(ctx context.Context, tokenString string) (*domain.User, error) {
	subjectID, err := s.tokenService.Verify(tokenString)
	if err != nil {
		return nil, autherror.ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if !user.IsActive {
		return nil, autherror.ErrInactiveAccount
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	return user, nil
}

func (s *UserService) UpdatePassword(ctx context.Context, userID string, password string) (*domain.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, userID)
}
