package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gateway/config"
	"gateway/internal/domain/entity"
	"gateway/internal/domain/repository"
)

// credentialRepository is the Mongo implementation of the CredentialRepository interface.
type credentialRepository struct {
	collection *mongo.Collection
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *mongo.Database, cfg *config.Config) repository.CredentialRepository {
	return &credentialRepository{
		collection: db.Collection(cfg.Mongo.Collection),
	}
}

// FindByUsername retrieves the credential record for a username by exact match.
// A missing document maps to ErrCredentialNotFound; any other driver error is
// a store-level failure, never conflated with not-found.
func (r *credentialRepository) FindByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	var credential entity.Credential
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&credential)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Wrapf(repository.ErrCredentialNotFound, "username %s", username)
		}

		return nil, errors.Wrap(repository.ErrStoreUnavailable, err.Error())
	}

	return &credential, nil
}
