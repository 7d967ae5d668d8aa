package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"gateway/internal/delivery/http/response"
	"gateway/internal/domain/entity"
	"gateway/internal/usecase"
)

// CatalogHandler holds dependencies for the proxied product/service routes.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// SearchProducts handles GET /api/v1/products?product_name=...
func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	products, err := h.uc.SearchProducts(c.Request().Context(), c.QueryParam("product_name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct handles GET /api/v1/products/:product_id
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("product_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// CreateProduct handles POST /api/v1/products
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var product entity.Product
	if err := c.Bind(&product); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product payload")
	}

	created, err := h.uc.CreateProduct(c.Request().Context(), &product)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Product created")
}

// SearchServices handles GET /api/v1/services?service_name=...
func (h *CatalogHandler) SearchServices(c echo.Context) error {
	services, err := h.uc.SearchServices(c.Request().Context(), c.QueryParam("service_name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "")
}

// SearchServicesByDescription handles GET /api/v1/services/description?service_description=...
func (h *CatalogHandler) SearchServicesByDescription(c echo.Context) error {
	services, err := h.uc.SearchServicesByDescription(c.Request().Context(), c.QueryParam("service_description"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "")
}

// GetService handles GET /api/v1/services/:service_id
func (h *CatalogHandler) GetService(c echo.Context) error {
	svc, err := h.uc.GetService(c.Request().Context(), c.Param("service_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, svc, "")
}

// CreateService handles POST /api/v1/services
func (h *CatalogHandler) CreateService(c echo.Context) error {
	var svc entity.Service
	if err := c.Bind(&svc); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service payload")
	}

	created, err := h.uc.CreateService(c.Request().Context(), &svc)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Service created")
}

// ModifyService handles PATCH /api/v1/services/:service_id
func (h *CatalogHandler) ModifyService(c echo.Context) error {
	var update entity.ServiceUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service payload")
	}

	updated, err := h.uc.UpdateService(c.Request().Context(), c.Param("service_id"), &update)
	if err != nil {
		return errors.WithStack(err)
	}
	if updated == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return response.Success(c, http.StatusOK, updated, "Service updated")
}
