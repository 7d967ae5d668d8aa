package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gateway/internal/delivery/http/middleware"
	"gateway/internal/delivery/http/response"
	"gateway/internal/domain/entity"
	domainerrors "gateway/internal/domain/errors"
)

// fakeAuthUsecase scripts the login flow for handler tests.
type fakeAuthUsecase struct {
	authenticateFn func(ctx context.Context, username, password string) (*entity.AuthenticatedUser, error)
}

func (f *fakeAuthUsecase) Authenticate(ctx context.Context, username, password string) (*entity.AuthenticatedUser, error) {
	return f.authenticateFn(ctx, username, password)
}

func (f *fakeAuthUsecase) IssueToken(_ context.Context, user *entity.AuthenticatedUser) (*entity.Token, error) {
	return &entity.Token{
		AccessToken: "signed-token-for-" + user.Username,
		TokenType:   entity.TokenType,
	}, nil
}

func (f *fakeAuthUsecase) ValidateToken(_ context.Context, _ string) (string, error) {
	return "", errors.New("not implemented")
}

func postLogin(t *testing.T, uc *fakeAuthUsecase, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/api/v1/token", NewAuthHandler(uc, logger).Login)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := &fakeAuthUsecase{
		authenticateFn: func(_ context.Context, username, password string) (*entity.AuthenticatedUser, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, "correct-horse", password)
			return &entity.AuthenticatedUser{Username: username}, nil
		},
	}

	rec := postLogin(t, uc, url.Values{
		"username": {"alice"},
		"password": {"correct-horse"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)

	data, err := json.Marshal(body.Data)
	require.NoError(t, err)

	var token entity.Token
	require.NoError(t, json.Unmarshal(data, &token))
	assert.Equal(t, "signed-token-for-alice", token.AccessToken)
	assert.Equal(t, entity.TokenType, token.TokenType)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	uc := &fakeAuthUsecase{
		authenticateFn: func(_ context.Context, _, _ string) (*entity.AuthenticatedUser, error) {
			return nil, errors.Wrap(domainerrors.ErrPasswordMismatch, "user alice")
		},
	}

	rec := postLogin(t, uc, url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	assert.Equal(t, domainerrors.MsgInvalidCredentials, body.Message)
}

func TestAuthHandler_Login_UnknownUserLooksSame(t *testing.T) {
	uc := &fakeAuthUsecase{
		authenticateFn: func(_ context.Context, _, _ string) (*entity.AuthenticatedUser, error) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user ghost")
		},
	}

	rec := postLogin(t, uc, url.Values{
		"username": {"ghost"},
		"password": {"whatever"},
	})

	// Unknown user and wrong password must be indistinguishable.
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	assert.Equal(t, domainerrors.MsgInvalidCredentials, body.Message)
}

func TestAuthHandler_Login_MissingUsername(t *testing.T) {
	uc := &fakeAuthUsecase{
		authenticateFn: func(_ context.Context, _, _ string) (*entity.AuthenticatedUser, error) {
			t.Fatal("Authenticate should not be called")
			return nil, nil
		},
	}

	rec := postLogin(t, uc, url.Values{
		"password": {"whatever"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login_StoreUnavailable(t *testing.T) {
	uc := &fakeAuthUsecase{
		authenticateFn: func(_ context.Context, _, _ string) (*entity.AuthenticatedUser, error) {
			return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, "connection refused")
		},
	}

	rec := postLogin(t, uc, url.Values{
		"username": {"alice"},
		"password": {"correct-horse"},
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domainerrors.MsgBackendUnreachable, body.Message)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
