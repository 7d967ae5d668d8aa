package usecase

import (
	"context"

	"gateway/internal/domain/entity"
)

// ClientUsecase proxies CRUD operations for the clients backend. Every
// operation is a single forwarded HTTP round trip; downstream failures come
// back as AppError values.
type ClientUsecase interface {
	// SearchClients forwards a word search against client records.
	SearchClients(ctx context.Context, word string) ([]entity.Client, error)

	// GetClient retrieves a single client by id.
	GetClient(ctx context.Context, clientID string) (*entity.Client, error)

	// CreateClient forwards a new client record.
	CreateClient(ctx context.Context, client *entity.Client) (*entity.Client, error)

	// UpdateClient forwards a partial update. The result is nil when the
	// backend answered with no content.
	UpdateClient(ctx context.Context, clientID string, update *entity.ClientUpdate) (*entity.Client, error)
}
