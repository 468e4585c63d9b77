package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/mgallego/auth-service/internal/auth/domain UserRepository

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	// FindOrCreateByEmail inserts the candidate user unless a record with the
	// same email already exists, and returns whichever record won.
	FindOrCreateByEmail(ctx context.Context, user *User) (*User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
