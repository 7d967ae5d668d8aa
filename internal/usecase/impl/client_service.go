package impl

import (
	"context"
	"log/slog"
	"net/url"

	"go.uber.org/fx"

	"gateway/internal/domain/entity"
	"gateway/internal/infra/backend"
	"gateway/internal/usecase"
)

const clientsPath = "/api/v1/clients"

// clientService implements the ClientUsecase interface by forwarding to the
// clients backend.
type clientService struct {
	forwarder *backend.Forwarder
	logger    *slog.Logger
}

// ClientServiceParams holds dependencies for clientService, injected by Fx.
type ClientServiceParams struct {
	fx.In

	Backends *backend.Set
	Logger   *slog.Logger
}

// NewClientService is the constructor for clientService.
func NewClientService(params ClientServiceParams) usecase.ClientUsecase {
	return &clientService{
		forwarder: params.Backends.Clients,
		logger:    params.Logger,
	}
}

// SearchClients forwards a word search against client records.
func (srv *clientService) SearchClients(ctx context.Context, word string) ([]entity.Client, error) {
	var clients []entity.Client
	query := url.Values{"word_to_search": {word}}
	if err := srv.forwarder.Get(ctx, clientsPath, query, &clients); err != nil {
		return nil, err
	}

	return clients, nil
}

// GetClient retrieves a single client by id.
func (srv *clientService) GetClient(ctx context.Context, clientID string) (*entity.Client, error) {
	var client entity.Client
	if err := srv.forwarder.Get(ctx, clientsPath+"/"+clientID, nil, &client); err != nil {
		return nil, err
	}

	return &client, nil
}

// CreateClient forwards a new client record.
func (srv *clientService) CreateClient(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	var created entity.Client
	if err := srv.forwarder.Post(ctx, clientsPath, client, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateClient forwards a partial update; nil result means no content.
func (srv *clientService) UpdateClient(ctx context.Context, clientID string, update *entity.ClientUpdate) (*entity.Client, error) {
	var updated entity.Client
	decoded, err := srv.forwarder.Patch(ctx, clientsPath+"/"+clientID, update, &updated)
	if err != nil {
		return nil, err
	}
	if !decoded {
		return nil, nil
	}

	return &updated, nil
}
