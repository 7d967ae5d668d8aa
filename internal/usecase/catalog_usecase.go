package usecase

import (
	"context"

	"gateway/internal/domain/entity"
)

// CatalogUsecase proxies CRUD operations for the products/services backend.
type CatalogUsecase interface {
	// SearchProducts forwards a product name search.
	SearchProducts(ctx context.Context, productName string) ([]entity.Product, error)

	// GetProduct retrieves a single product by id.
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)

	// CreateProduct forwards a new product record.
	CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)

	// SearchServices forwards a service name search.
	SearchServices(ctx context.Context, serviceName string) ([]entity.Service, error)

	// SearchServicesByDescription forwards a description search.
	SearchServicesByDescription(ctx context.Context, description string) ([]entity.Service, error)

	// GetService retrieves a single service by id.
	GetService(ctx context.Context, serviceID string) (*entity.Service, error)

	// CreateService forwards a new service record.
	CreateService(ctx context.Context, service *entity.Service) (*entity.Service, error)

	// UpdateService forwards a partial update. The result is nil when the
	// backend answered with no content.
	UpdateService(ctx context.Context, serviceID string, update *entity.ServiceUpdate) (*entity.Service, error)
}
