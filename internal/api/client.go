// Package api implements the authenticated request pipeline: every outbound
// call re-reads the bearer token from the credential store, attaches it when
// present, and classifies the response into success, session-expired,
// network failure or server error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20 // 1 MB

// Doer executes HTTP requests. Both httpclient.Client and
// httpclient.CircuitBreakerClient satisfy this.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// TokenSource yields the current bearer token. The pipeline re-reads it on
// every call, so a token cleared mid-session is never resent.
type TokenSource interface {
	Token() (string, error)
}

// ExpiryHandler is invoked when the backend rejects a call as unauthorized.
type ExpiryHandler interface {
	SessionExpired(ctx context.Context)
}

// Client is the request pipeline. It issues each request exactly once: no
// retries, no queueing, no deduplication.
type Client struct {
	http   Doer
	tokens TokenSource
	expiry ExpiryHandler
	logger *slog.Logger
}

// NewClient creates a request pipeline around the given transport.
func NewClient(doer Doer, tokens TokenSource, expiry ExpiryHandler, logger *slog.Logger) *Client {
	return &Client{http: doer, tokens: tokens, expiry: expiry, logger: logger}
}

// WithDoer returns a copy of the pipeline using a different transport, e.g.
// a circuit-breaker wrapped client for a polling loop. Token handling and
// response classification are unchanged.
func (c *Client) WithDoer(doer Doer) *Client {
	cpy := *c
	cpy.http = doer
	return &cpy
}

// Get issues a GET with optional query parameters.
func (c *Client) Get(ctx context.Context, rawURL string, query url.Values) (*Envelope, error) {
	if len(query) > 0 {
		rawURL = rawURL + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, rawURL, nil, "")
}

// Post issues a POST with a JSON payload. A nil payload sends an empty JSON
// object, matching what the screens sent for bare actions.
func (c *Client) Post(ctx context.Context, rawURL string, payload any) (*Envelope, error) {
	body, err := encodeJSON(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, rawURL, body, "application/json")
}

// Put issues a PUT with a JSON payload.
func (c *Client) Put(ctx context.Context, rawURL string, payload any) (*Envelope, error) {
	body, err := encodeJSON(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPut, rawURL, body, "application/json")
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, rawURL string) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, rawURL, nil, "")
}

// PostForm issues a POST with a multipart form body. No default content type
// is applied beyond the form's own boundary header, mirroring the upload
// path of the original client; token attachment and 401 handling are
// identical to the JSON path.
func (c *Client) PostForm(ctx context.Context, rawURL string, form *Form) (*Envelope, error) {
	contentType, body, err := form.encode()
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, rawURL, body, contentType)
}

func encodeJSON(payload any) (io.Reader, error) {
	if payload == nil {
		return bytes.NewReader([]byte("{}")), nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request payload: %w", err)
	}
	return bytes.NewReader(raw), nil
}

func (c *Client) do(ctx context.Context, method, rawURL string, body io.Reader, contentType string) (*Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", method, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	// Always re-read the token. A read failure degrades to an anonymous
	// request; the backend decides whether that is acceptable.
	if token, err := c.tokens.Token(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		c.logger.WarnContext(ctx, "request failed without response",
			slog.String("method", method),
			slog.String("url", rawURL),
			slog.String("error", err.Error()),
		)
		return nil, apperrors.Network(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, apperrors.Network(fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.WarnContext(ctx, "unauthorized response, tearing down session",
			slog.String("method", method),
			slog.String("url", rawURL),
		)
		c.expiry.SessionExpired(ctx)
		return nil, apperrors.SessionExpired()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serverError(resp.StatusCode, raw)
	}

	env, err := parseEnvelope(raw)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return env, nil
}

// serverError translates a non-2xx, non-401 response into an AppError,
// passing the server-provided message through unchanged when present.
func serverError(status int, raw []byte) error {
	var env Envelope
	if json.Unmarshal(raw, &env) == nil {
		if msg := env.Note(); msg != "" {
			return apperrors.FromStatus(status, msg)
		}
	}
	return apperrors.FromStatus(status, "")
}
