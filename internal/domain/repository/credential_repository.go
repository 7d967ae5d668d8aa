// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gateway/internal/domain/entity"
)

// Domain-specific errors for the credential store. "Not found" and "store
// unreachable" are kept distinct so the boundary can answer 401 for one and
// 500 for the other.
var (
	// ErrCredentialNotFound is returned when no record exists for a username.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrStoreUnavailable is returned when the store cannot be reached or
	// the lookup timed out.
	ErrStoreUnavailable = errors.New("credential store unavailable")
)

// CredentialRepository defines the read-only lookup the gateway performs
// against the credential store. The store is queried by exact, case-sensitive
// username match.
type CredentialRepository interface {
	// FindByUsername retrieves the credential record for a username.
	FindByUsername(ctx context.Context, username string) (*entity.Credential, error)
}
