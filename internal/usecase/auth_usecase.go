// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gateway/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in. The field names
// match the OAuth2 password-flow form shape.
type LoginInput struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password"`
}

// AuthUsecase is the boundary surface the gateway exposes to the login
// endpoint and to the token gate in front of every proxied route.
//
// The three operations are request-scoped and stateless; any number of them
// may run concurrently without coordination.
type AuthUsecase interface {
	// Authenticate verifies a username/password pair against the credential
	// store. Fails with ErrUserNotFound, ErrPasswordMismatch, or
	// ErrStoreUnavailable.
	Authenticate(ctx context.Context, username, password string) (*entity.AuthenticatedUser, error)

	// IssueToken produces a signed bearer token for an authenticated user,
	// expiring after the configured TTL.
	IssueToken(ctx context.Context, user *entity.AuthenticatedUser) (*entity.Token, error)

	// ValidateToken decodes and checks a token string and confirms its
	// subject still resolves in the credential store. Returns the resolved
	// username on success; fails with ErrCorruptedToken, ErrEmptyClaim,
	// ErrUserNotFound, or ErrStoreUnavailable.
	ValidateToken(ctx context.Context, tokenString string) (string, error)
}
