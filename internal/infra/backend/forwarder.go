// Package backend forwards proxied requests to the downstream services.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	domainerrors "gateway/internal/domain/errors"
)

const requestTimeout = 30 * time.Second

// Forwarder is an HTTP client bound to one downstream service. It forwards
// JSON bodies unchanged, carries downstream error statuses back through the
// gateway, and maps transport failures to a 500-equivalent.
type Forwarder struct {
	name       string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewForwarder creates a forwarder for one downstream base URL. The name is
// used only for logging.
func NewForwarder(name, baseURL string, logger *slog.Logger) *Forwarder {
	return &Forwarder{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

// Get forwards a GET request and decodes the response body into out.
func (f *Forwarder) Get(ctx context.Context, path string, query url.Values, out any) error {
	decoded, err := f.do(ctx, http.MethodGet, path, query, nil, out)
	if err != nil {
		return err
	}
	if !decoded {
		return errors.Wrapf(domainerrors.ErrBackendUnavailable, "empty response from %s backend", f.name)
	}

	return nil
}

// Post forwards a POST request with a JSON body and decodes the response into out.
func (f *Forwarder) Post(ctx context.Context, path string, body, out any) error {
	decoded, err := f.do(ctx, http.MethodPost, path, nil, body, out)
	if err != nil {
		return err
	}
	if !decoded {
		return errors.Wrapf(domainerrors.ErrBackendUnavailable, "empty response from %s backend", f.name)
	}

	return nil
}

// Patch forwards a PATCH request with a JSON body. Downstream PATCH responses
// may legitimately be empty; the boolean reports whether out was populated.
func (f *Forwarder) Patch(ctx context.Context, path string, body, out any) (bool, error) {
	return f.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (f *Forwarder) do(ctx context.Context, method, path string, query url.Values, body, out any) (bool, error) {
	target := f.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return false, errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return false, errors.WithStack(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.logger.Error("Could not reach backend",
			slog.String("backend", f.name),
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return false, errors.Wrap(domainerrors.ErrBackendUnavailable, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, errors.Wrap(domainerrors.ErrBackendUnavailable, err.Error())
	}

	if resp.StatusCode >= http.StatusBadRequest {
		f.logger.Error("Backend returned error status",
			slog.String("backend", f.name),
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		return false, errors.WithStack(domainerrors.NewBackendStatusError(resp.StatusCode, f.name, extractDetail(raw)))
	}

	if len(raw) == 0 || out == nil {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, errors.Wrapf(err, "failed to decode %s backend response", f.name)
	}

	return true, nil
}

// extractDetail pulls the conventional {"detail": ...} message out of a
// downstream error body, falling back to the raw text.
func extractDetail(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		return body.Detail
	}

	return string(raw)
}
