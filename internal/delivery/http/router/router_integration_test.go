package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gateway/config"
	"gateway/internal/delivery/http/middleware"
	"gateway/internal/delivery/http/response"
	"gateway/internal/delivery/http/router/handler"
	"gateway/internal/domain/entity"
	"gateway/internal/infra/auth"
	"gateway/internal/infra/backend"
	"gateway/internal/infra/persistence/memory"
	"gateway/internal/usecase/impl"
)

// newTestGateway wires the full gateway against an in-memory credential store
// and one fake downstream serving every proxied route.
func newTestGateway(t *testing.T, backendHandler http.Handler) *echo.Echo {
	t.Helper()

	downstream := httptest.NewServer(backendHandler)
	t.Cleanup(downstream.Close)

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			SecretKey:     "test-secret",
			ExpireMinutes: 30,
		},
		Backends: &config.BackendsConfig{
			ClientURL:  downstream.URL,
			ServiceURL: downstream.URL,
			QuoterURL:  downstream.URL,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo := memory.NewCredentialRepository()
	hasher := auth.NewBcryptHasher()
	hash, err := hasher.Hash("correct-horse")
	require.NoError(t, err)
	repo.Seed("alice", hash)

	codec, err := auth.NewJWTCodec(cfg)
	require.NoError(t, err)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		CredentialRepo: repo,
		Hasher:         hasher,
		Codec:          codec,
		Config:         cfg,
		Logger:         logger,
	})

	backends := backend.NewSet(cfg, logger)
	clientUC := impl.NewClientService(impl.ClientServiceParams{Backends: backends, Logger: logger})
	catalogUC := impl.NewCatalogService(impl.CatalogServiceParams{Backends: backends, Logger: logger})
	quoterUC := impl.NewQuoterService(impl.QuoterServiceParams{Backends: backends, Logger: logger})

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUC, logger),
		ClientHandler:  handler.NewClientHandler(clientUC, logger),
		CatalogHandler: handler.NewCatalogHandler(catalogUC, logger),
		QuoterHandler:  handler.NewQuoterHandler(quoterUC, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(authUC),
	}).RegisterRoutes(e)

	return e
}

func loginForToken(t *testing.T, e *echo.Echo) string {
	t.Helper()

	form := url.Values{
		"username": {"alice"},
		"password": {"correct-horse"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	data, err := json.Marshal(body.Data)
	require.NoError(t, err)

	var token entity.Token
	require.NoError(t, json.Unmarshal(data, &token))
	require.NotEmpty(t, token.AccessToken)
	require.Equal(t, entity.TokenType, token.TokenType)

	return token.AccessToken
}

func TestGateway_HealthIsOpen(t *testing.T) {
	e := newTestGateway(t, http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateway_ProxiedRoutesRequireToken(t *testing.T) {
	e := newTestGateway(t, http.NotFoundHandler())

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/clients"},
		{http.MethodPost, "/api/v1/clients"},
		{http.MethodGet, "/api/v1/clients/c1"},
		{http.MethodPatch, "/api/v1/clients/c1"},
		{http.MethodGet, "/api/v1/products"},
		{http.MethodGet, "/api/v1/products/p1"},
		{http.MethodGet, "/api/v1/services"},
		{http.MethodGet, "/api/v1/services/description"},
		{http.MethodGet, "/api/v1/quoters"},
		{http.MethodPost, "/api/v1/sales"},
	}

	for _, route := range paths {
		req := httptest.NewRequest(route.method, route.path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s should be gated", route.method, route.path)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	}
}

func TestGateway_LoginThenProxy(t *testing.T) {
	e := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/clients", r.URL.Path)
		assert.Equal(t, "smith", r.URL.Query().Get("word_to_search"))

		_, _ = w.Write([]byte(`[{"_id":"c1","name":"John Smith"}]`))
	}))

	token := loginForToken(t, e)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients?word_to_search=smith", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "John Smith")
}

func TestGateway_GarbageTokenRejected(t *testing.T) {
	e := newTestGateway(t, http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
}

func TestGateway_BackendErrorPassesThrough(t *testing.T) {
	e := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Quoter not found"}`))
	}))

	token := loginForToken(t, e)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quoters/missing", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Quoter not found", body.Message)
}

func TestGateway_PatchNoContent(t *testing.T) {
	e := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		w.WriteHeader(http.StatusOK)
	}))

	token := loginForToken(t, e)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/clients/c1", strings.NewReader(`{"name":"New Name"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
