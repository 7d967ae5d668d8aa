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
	productsPath = "/api/v1/products"
	servicesPath = "/api/v1/services"
)

// catalogService implements the CatalogUsecase interface by forwarding to the
// products/services backend.
type catalogService struct {
	forwarder *backend.Forwarder
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Backends *backend.Set
	Logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		forwarder: params.Backends.Catalog,
		logger:    params.Logger,
	}
}

// SearchProducts forwards a product name search.
func (srv *catalogService) SearchProducts(ctx context.Context, productName string) ([]entity.Product, error) {
	var products []entity.Product
	query := url.Values{"product_name": {productName}}
	if err := srv.forwarder.Get(ctx, productsPath, query, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// GetProduct retrieves a single product by id.
func (srv *catalogService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	var product entity.Product
	if err := srv.forwarder.Get(ctx, productsPath+"/"+productID, nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// CreateProduct forwards a new product record.
func (srv *catalogService) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	var created entity.Product
	if err := srv.forwarder.Post(ctx, productsPath, product, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// SearchServices forwards a service name search.
func (srv *catalogService) SearchServices(ctx context.Context, serviceName string) ([]entity.Service, error) {
	var services []entity.Service
	query := url.Values{"service_name": {serviceName}}
	if err := srv.forwarder.Get(ctx, servicesPath, query, &services); err != nil {
		return nil, err
	}

	return services, nil
}

// SearchServicesByDescription forwards a description search.
func (srv *catalogService) SearchServicesByDescription(ctx context.Context, description string) ([]entity.Service, error) {
	var services []entity.Service
	query := url.Values{"service_description": {description}}
	if err := srv.forwarder.Get(ctx, servicesPath+"/description", query, &services); err != nil {
		return nil, err
	}

	return services, nil
}

// GetService retrieves a single service by id.
func (srv *catalogService) GetService(ctx context.Context, serviceID string) (*entity.Service, error) {
	var svc entity.Service
	if err := srv.forwarder.Get(ctx, servicesPath+"/"+serviceID, nil, &svc); err != nil {
		return nil, err
	}

	return &svc, nil
}

// CreateService forwards a new service record.
func (srv *catalogService) CreateService(ctx context.Context, service *entity.Service) (*entity.Service, error) {
	var created entity.Service
	if err := srv.forwarder.Post(ctx, servicesPath, service, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateService forwards a partial update; nil result means no content.
func (srv *catalogService) UpdateService(ctx context.Context, serviceID string, update *entity.ServiceUpdate) (*entity.Service, error) {
	var updated entity.Service
	decoded, err := srv.forwarder.Patch(ctx, servicesPath+"/"+serviceID, update, &updated)
	if err != nil {
		return nil, err
	}
	if !decoded {
		return nil, nil
	}

	return &updated, nil
}
