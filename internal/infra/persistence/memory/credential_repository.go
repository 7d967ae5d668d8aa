// Package memory provides an in-memory credential store, used in tests and
// local development as a drop-in replacement for the Mongo implementation.
package memory

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"gateway/internal/domain/entity"
	"gateway/internal/domain/repository"
)

// CredentialRepository is a map-backed implementation of the
// repository.CredentialRepository interface. Safe for concurrent use.
type CredentialRepository struct {
	mu          sync.RWMutex
	credentials map[string]entity.Credential
	failWith    error
}

// NewCredentialRepository creates an empty in-memory store.
func NewCredentialRepository() *CredentialRepository {
	return &CredentialRepository{
		credentials: make(map[string]entity.Credential),
	}
}

// Seed stores a credential record, replacing any existing one for the username.
func (r *CredentialRepository) Seed(username, passwordHash string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.credentials[username] = entity.Credential{
		Username:     username,
		PasswordHash: passwordHash,
	}
}

// Remove deletes a credential record, simulating account deletion.
func (r *CredentialRepository) Remove(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.credentials, username)
}

// FailWith makes every subsequent lookup return err, simulating an
// unreachable store. Pass nil to restore normal behavior.
func (r *CredentialRepository) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failWith = err
}

// FindByUsername retrieves the credential record for a username by exact match.
func (r *CredentialRepository) FindByUsername(_ context.Context, username string) (*entity.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.failWith != nil {
		return nil, r.failWith
	}

	credential, ok := r.credentials[username]
	if !ok {
		return nil, errors.Wrapf(repository.ErrCredentialNotFound, "username %s", username)
	}

	return &credential, nil
}
