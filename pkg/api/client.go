// Package api talks to the NutriView backend.
//
// Client is the shared authorized HTTP client: it attaches the current
// bearer token to every request and reacts to authorization failures. All
// nutritional and statistical computation lives behind the endpoints this
// package calls; responses are decoded and passed through untouched.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is used when no backend address is configured.
const DefaultBaseURL = "http://localhost:8000"

const apiPrefix = "/api/v1"

// DefaultTimeout bounds every request; a stuck backend surfaces as a
// normal request failure instead of a hung screen.
const DefaultTimeout = 30 * time.Second

// ErrUnauthorized wraps every 401 response. By the time a caller sees it
// the forced-logout side effect has already run.
var ErrUnauthorized = errors.New("api: unauthorized")

// TokenSource is the narrow read interface the client authorizes requests
// from. The session store implements it; the client never writes back.
type TokenSource interface {
	Token() (string, bool)
}

// Error is a non-2xx backend response. Status anything but 401 passes
// through to the caller with no side effects.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Options configures a Client.
type Options struct {
	// BaseURL of the backend; DefaultBaseURL when empty.
	BaseURL string
	// Tokens supplies the bearer token; requests go out unauthenticated
	// when it is nil or empty (login, register, public food search).
	Tokens TokenSource
	// OnUnauthorized runs once per 401 response, before the error is
	// returned to the caller. The app wires it to clear the session and
	// navigate to the login screen.
	OnUnauthorized func()
	// Timeout overrides DefaultTimeout when positive.
	Timeout time.Duration
}

// Client is the authorized request client.
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
}

// New creates a Client.
func New(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:        base,
		http:           &http.Client{Timeout: timeout},
		tokens:         opts.Tokens,
		onUnauthorized: opts.OnUnauthorized,
	}
}

// do issues one request. path is relative to /api/v1. bearer overrides the
// ambient token source when non-empty; out, when non-nil, receives the
// decoded JSON response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType, bearer string, out any) error {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("api: build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	token := bearer
	if token == "" && c.tokens != nil {
		if t, ok := c.tokens.Token(); ok {
			token = t
		}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	slog.Debug("api request", "method", method, "path", path, "request_id", req.Header.Get("X-Request-ID"))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read response %s %s: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Forced logout: the session is gone regardless of which endpoint
		// answered 401. Clear first, then let the caller see the error.
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%w: %s", ErrUnauthorized, errorDetail(raw))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, Detail: errorDetail(raw)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: decode response %s %s: %w", method, path, err)
	}
	return nil
}

// errorDetail extracts FastAPI's {"detail": ...} message; detail may also
// be a validation object, which is passed along verbatim.
func errorDetail(raw []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Detail) == 0 {
		return strings.TrimSpace(string(raw))
	}
	var s string
	if err := json.Unmarshal(payload.Detail, &s); err == nil {
		return s
	}
	return string(payload.Detail)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", "", out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("api: encode request %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(body), "application/json", "", out)
}

func (c *Client) putJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("api: encode request %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPut, path, nil, bytes.NewReader(body), "application/json", "", out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", "", nil)
}

// getBytes fetches a non-JSON payload (CSV exports) through the same
// authorization and failure handling as every other request.
func (c *Client) getBytes(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("api: build request GET %s: %w", path, err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if t, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api: read response GET %s: %w", path, err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, errorDetail(raw))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Status: resp.StatusCode, Detail: errorDetail(raw)}
	}
	return raw, nil
}
