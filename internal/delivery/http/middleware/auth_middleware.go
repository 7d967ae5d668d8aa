package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "gateway/internal/delivery/context"
	"gateway/internal/delivery/http/response"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/usecase"
)

// AuthMiddleware gates every proxied route on a valid bearer token.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer token before the request is forwarded.
// Invalid-token failures answer 401 with one generic message; an unreachable
// credential store answers 500 so clients can tell outage from rejection.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return unauthorized(c)
		}

		username, err := m.authUC.ValidateToken(c.Request().Context(), tokenString)
		if err != nil {
			if errors.Is(err, domainerrors.ErrStoreUnavailable) {
				return response.InternalServerError(c, domainerrors.ErrStoreUnavailable.ErrorCode(), domainerrors.MsgBackendUnreachable)
			}

			return unauthorized(c)
		}

		// Expose the validated subject to handlers.
		c.Set(string(deliverycontext.KeyUsername), username)

		return next(c)
	}
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

	return response.Unauthorized(c, "INVALID_CREDENTIALS", domainerrors.MsgInvalidCredentials)
}
