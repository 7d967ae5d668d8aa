// Package mongo implements the credential store against MongoDB.
package mongo

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"gateway/config"
	"gateway/internal/domain/lifecycle"
)

// Params defines the dependencies for the Mongo client.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New creates the process-wide Mongo database handle and registers its
// disconnect on shutdown.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil {
		return nil, errors.New("mongo configuration must be provided")
	}

	uri := fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		cfg.User, cfg.Password, cfg.Host)

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongo")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(shutdownCtx))
		},
	})

	return client.Database(cfg.Database), nil
}
