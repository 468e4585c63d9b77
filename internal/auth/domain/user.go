package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	IsActive     bool
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the user can authenticate with a password.
// SSO-only accounts carry no hash at all.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// GoogleIdentity is the provider-verified identity produced by one federated
// login attempt. It is consumed once to resolve a local user and never stored.
type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}
