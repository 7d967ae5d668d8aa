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

// ClientHandler holds dependencies for the proxied client routes.
type ClientHandler struct {
	uc     usecase.ClientUsecase
	logger *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler, injected by Fx.
func NewClientHandler(uc usecase.ClientUsecase, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		uc:     uc,
		logger: logger,
	}
}

// SearchClients handles GET /api/v1/clients?word_to_search=...
func (h *ClientHandler) SearchClients(c echo.Context) error {
	clients, err := h.uc.SearchClients(c.Request().Context(), c.QueryParam("word_to_search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, clients, "")
}

// GetClient handles GET /api/v1/clients/:client_id
func (h *ClientHandler) GetClient(c echo.Context) error {
	client, err := h.uc.GetClient(c.Request().Context(), c.Param("client_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, client, "")
}

// CreateClient handles POST /api/v1/clients
func (h *ClientHandler) CreateClient(c echo.Context) error {
	var client entity.Client
	if err := c.Bind(&client); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client payload")
	}

	created, err := h.uc.CreateClient(c.Request().Context(), &client)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Client created")
}

// ModifyClient handles PATCH /api/v1/clients/:client_id
func (h *ClientHandler) ModifyClient(c echo.Context) error {
	var update entity.ClientUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client payload")
	}

	updated, err := h.uc.UpdateClient(c.Request().Context(), c.Param("client_id"), &update)
	if err != nil {
		return errors.WithStack(err)
	}
	if updated == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return response.Success(c, http.StatusOK, updated, "Client updated")
}
