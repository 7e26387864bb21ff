// Package api implements the HTTP adapter for the file-sharing service:
// upload with byte-level progress, info lookup, and code-based download.
//
// The server owns code generation, expiry, and single-use deletion; this
// package only turns client actions into well-formed requests and maps
// responses onto Go values and errors.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"filedrop/internal/logging"
)

// ProgressFunc receives byte-level upload progress. It is called from the
// transport's read path, so implementations must be fast and must not block.
type ProgressFunc func(sent, total int64)

// Client is the remote API surface the rest of the client programs against.
// Tests substitute a fake; HTTPClient is the real implementation.
type Client interface {
	Upload(ctx context.Context, name string, content io.Reader, onProgress ProgressFunc) (*UploadResult, error)
	Info(ctx context.Context, code string) (*FileInfo, error)
	Download(ctx context.Context, code string) (*DownloadResult, error)
	Health(ctx context.Context) error
	DirectDownloadURL(code string) string
}

// HTTPClient talks to one service instance over plain HTTP.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// New builds an HTTPClient for baseURL. A zero timeout disables the
// client-side deadline.
func New(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

// endpoint joins the base URL with a path whose segments are already safe
// (codes are [A-Z0-9] by construction).
func (c *HTTPClient) endpoint(path string) string {
	return c.baseURL + path
}

// DirectDownloadURL returns the shareable direct link for a code. This is
// the URL encoded into the QR image after an upload.
func (c *HTTPClient) DirectDownloadURL(code string) string {
	return c.endpoint("/download/" + url.PathEscape(strings.ToUpper(code)))
}

// Health probes GET /health.
func (c *HTTPClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/health"), nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse("health check", resp)
	}
	return nil
}

// errorFromResponse maps a non-2xx response onto *APIError, preserving the
// server's detail message when the body parses.
func (c *HTTPClient) errorFromResponse(op string, resp *http.Response) error {
	apiErr := &APIError{Op: op, Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil {
		var d detailResponse
		if json.Unmarshal(body, &d) == nil && d.Detail != "" {
			apiErr.Detail = d.Detail
		}
	}

	c.log.Warn(resp.Request.Context(), "server rejected request",
		"op", op, "status", resp.StatusCode, "detail", apiErr.Detail)
	return apiErr
}
