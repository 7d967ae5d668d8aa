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

// QuoterHandler holds dependencies for the proxied quoter/sale routes.
type QuoterHandler struct {
	uc     usecase.QuoterUsecase
	logger *slog.Logger
}

// NewQuoterHandler is the constructor for QuoterHandler, injected by Fx.
func NewQuoterHandler(uc usecase.QuoterUsecase, logger *slog.Logger) *QuoterHandler {
	return &QuoterHandler{
		uc:     uc,
		logger: logger,
	}
}

// SearchQuoters handles GET /api/v1/quoters?content=...
func (h *QuoterHandler) SearchQuoters(c echo.Context) error {
	quoters, err := h.uc.SearchQuoters(c.Request().Context(), c.QueryParam("content"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quoters, "")
}

// GetQuoter handles GET /api/v1/quoters/:quoter_id
func (h *QuoterHandler) GetQuoter(c echo.Context) error {
	quoter, err := h.uc.GetQuoter(c.Request().Context(), c.Param("quoter_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quoter, "")
}

// InsertQuoter handles POST /api/v1/quoters
func (h *QuoterHandler) InsertQuoter(c echo.Context) error {
	var quoter entity.Quoter
	if err := c.Bind(&quoter); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quoter payload")
	}

	created, err := h.uc.CreateQuoter(c.Request().Context(), &quoter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Quoter created")
}

// CreateSale handles POST /api/v1/sales
func (h *QuoterHandler) CreateSale(c echo.Context) error {
	var ref entity.QuoterRef
	if err := c.Bind(&ref); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale payload")
	}

	result, err := h.uc.CreateSale(c.Request().Context(), &ref)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Sale created")
}

// UpdateQuoter handles PATCH /api/v1/quoters/:quoter_id
func (h *QuoterHandler) UpdateQuoter(c echo.Context) error {
	var update entity.QuoterUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quoter payload")
	}

	updated, err := h.uc.UpdateQuoter(c.Request().Context(), c.Param("quoter_id"), &update)
	if err != nil {
		return errors.WithStack(err)
	}
	if updated == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return response.Success(c, http.StatusOK, updated, "Quoter updated")
}
