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

const (
	quotersPath = "/api/v1/quoters"
	salesPath   = "/api/v1/sales"
)

// quoterService implements the QuoterUsecase interface by forwarding to the
// quoters/sales backend.
type quoterService struct {
	forwarder *backend.Forwarder
	logger    *slog.Logger
}

// QuoterServiceParams holds dependencies for quoterService, injected by Fx.
type QuoterServiceParams struct {
	fx.In

	Backends *backend.Set
	Logger   *slog.Logger
}

// NewQuoterService is the constructor for quoterService.
func NewQuoterService(params QuoterServiceParams) usecase.QuoterUsecase {
	return &quoterService{
		forwarder: params.Backends.Quoters,
		logger:    params.Logger,
	}
}

// SearchQuoters forwards a content search against quotations.
func (srv *quoterService) SearchQuoters(ctx context.Context, content string) ([]entity.Quoter, error) {
	var quoters []entity.Quoter
	query := url.Values{"content": {content}}
	if err := srv.forwarder.Get(ctx, quotersPath, query, &quoters); err != nil {
		return nil, err
	}

	return quoters, nil
}

// GetQuoter retrieves a single quotation by id.
func (srv *quoterService) GetQuoter(ctx context.Context, quoterID string) (*entity.Quoter, error) {
	var quoter entity.Quoter
	if err := srv.forwarder.Get(ctx, quotersPath+"/"+quoterID, nil, &quoter); err != nil {
		return nil, err
	}

	return &quoter, nil
}

// CreateQuoter forwards a new quotation.
func (srv *quoterService) CreateQuoter(ctx context.Context, quoter *entity.Quoter) (*entity.Quoter, error) {
	var created entity.Quoter
	if err := srv.forwarder.Post(ctx, quotersPath, quoter, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// CreateSale registers a sale for an existing quotation. The sales backend
// answers with a free-form acknowledgment, so the payload stays untyped.
func (srv *quoterService) CreateSale(ctx context.Context, ref *entity.QuoterRef) (map[string]any, error) {
	var result map[string]any
	if err := srv.forwarder.Post(ctx, salesPath, ref, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateQuoter forwards a partial update; nil result means no content.
func (srv *quoterService) UpdateQuoter(ctx context.Context, quoterID string, update *entity.QuoterUpdate) (*entity.Quoter, error) {
	var updated entity.Quoter
	decoded, err := srv.forwarder.Patch(ctx, quotersPath+"/"+quoterID, update, &updated)
	if err != nil {
		return nil, err
	}
	if !decoded {
		return nil, nil
	}

	return &updated, nil
}
