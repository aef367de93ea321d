// Package transport is the single point through which every backend call
// passes. It decides whether a request carries credentials, enforces the
// fixed request timeout, and normalises every failure into an APIError
// carrying a user-facing message and the original status.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/iwacu250/listings-client/internal/metrics"
)

const defaultTimeout = 15 * time.Second

// TokenSource supplies the current bearer token, or "" when no session
// exists. The transport only reads it; session writes stay with the auth
// manager.
type TokenSource interface {
	Token() string
}

// UnauthorizedFunc is invoked once for every 401 response, after the typed
// error has been built. Navigation and session teardown are the listener's
// responsibility, not the client's.
type UnauthorizedFunc func()

// Client is the configured HTTP client wrapper. All resource services go
// through Do or Upload; nothing else in the repository issues backend calls.
type Client struct {
	base           string
	http           *http.Client
	tokens         TokenSource
	log            zerolog.Logger
	onUnauthorized UnauthorizedFunc
}

// New returns a Client rooted at baseURL. A non-positive timeout falls back
// to the fixed 15 second default.
func New(baseURL string, timeout time.Duration, tokens TokenSource, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		http:   &http.Client{Timeout: timeout},
		tokens: tokens,
		log:    log,
	}
}

// SetUnauthorizedFunc registers the 401 listener. At most one listener is
// held; the auth manager installs itself here during construction.
func (c *Client) SetUnauthorizedFunc(fn UnauthorizedFunc) {
	c.onUnauthorized = fn
}

// Get issues a GET request. See Do.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, path, nil, query)
}

// Post issues a POST request with a JSON body. See Do.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, path, body, nil)
}

// Put issues a PUT request with a JSON body. See Do.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPut, path, body, nil)
}

// Patch issues a PATCH request with a JSON body. See Do.
func (c *Client) Patch(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPatch, path, body, nil)
}

// Delete issues a DELETE request. See Do.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, query)
}

// Do performs a single backend call and returns the raw response body on
// success. The body is passed through unchanged; schema handling belongs to
// the resource services. Failures are returned as *APIError after exactly
// one attempt; there is no retry or backoff of any kind.
//
// Public paths never receive an Authorization header. For protected paths
// the header is attached only when a token is present; with no token the
// call proceeds bare and the server answers 401/403 as it sees fit.
func (c *Client) Do(ctx context.Context, method, path string, body any, query url.Values) (json.RawMessage, error) {
	start := time.Now()
	raw, err := c.do(ctx, method, path, body, query)

	outcome := outcomeOf(err)
	metrics.RequestsTotal.WithLabelValues(pathClass(path), method, outcome).Inc()
	metrics.RequestDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	return raw, err
}

func (c *Client) do(ctx context.Context, method, path string, body any, query url.Values) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.attachToken(req, path)

	return c.send(req, path)
}

// send executes a prepared request and normalises the outcome. Shared by Do
// and Upload.
func (c *Client) send(req *http.Request, path string) (json.RawMessage, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", req.Method).Str("path", path).Msg("no response from server")
		return nil, noResponseError()
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, noResponseError()
	}

	if resp.StatusCode >= 400 {
		apiErr := resolveError(resp.StatusCode, raw)
		c.log.Debug().
			Int("status", resp.StatusCode).
			Str("method", req.Method).
			Str("path", path).
			Str("message", apiErr.Message).
			Msg("request failed")
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, apiErr
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	return json.RawMessage(raw), nil
}

// attachToken adds the bearer credential for non-public paths when a token
// exists. A missing token never produces a malformed or empty header.
func (c *Client) attachToken(req *http.Request, path string) {
	if isPublic(path) {
		return
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) url(path string, query url.Values) string {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
