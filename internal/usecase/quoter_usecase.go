package usecase

import (
	"context"

	"gateway/internal/domain/entity"
)

// QuoterUsecase proxies CRUD operations for the quoters/sales backend.
type QuoterUsecase interface {
	// SearchQuoters forwards a content search against quotations.
	SearchQuoters(ctx context.Context, content string) ([]entity.Quoter, error)

	// GetQuoter retrieves a single quotation by id.
	GetQuoter(ctx context.Context, quoterID string) (*entity.Quoter, error)

	// CreateQuoter forwards a new quotation.
	CreateQuoter(ctx context.Context, quoter *entity.Quoter) (*entity.Quoter, error)

	// CreateSale registers a sale for an existing quotation.
	CreateSale(ctx context.Context, ref *entity.QuoterRef) (map[string]any, error)

	// UpdateQuoter forwards a partial update. The result is nil when the
	// backend answered with no content.
	UpdateQuoter(ctx context.Context, quoterID string, update *entity.QuoterUpdate) (*entity.Quoter, error)
}
