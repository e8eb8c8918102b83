// Package transport implements the single collaborator every other package
// sends remote calls through: a JSON-over-HTTP client that injects auth
// headers, decodes responses and maps failure statuses onto errors. It holds
// no per-call state and is safe for concurrent use.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	authTokenHeader = "X-Auth-Token"
	requestIDHeader = "X-Request-Id"
	userAgent       = "go-cloud-client/0.1.0"

	defaultTimeout = 30 * time.Second
)

// Request describes one remote call. Body, when non-nil, is JSON-encoded;
// Result, when non-nil, receives the decoded 2xx response body.
type Request struct {
	Method string
	URL    string
	Token  string
	Body   interface{}
	Result interface{}
}

// Client sends Requests. The zero client is not usable; construct with New.
type Client struct {
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option modifies a Client during construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (primarily for tests
// and callers with their own transport policy).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for round-trip logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client with a default timeout and a disabled logger.
func New(options ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Send performs one round trip. A non-2xx response becomes a *StatusError
// carrying the provider's status and body; no retries are attempted.
func (c *Client) Send(ctx context.Context, req Request) error {
	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return errors.Wrap(err, "[Client.Send] encode request body")
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return errors.Wrap(err, "[Client.Send] build request")
	}

	requestID := uuid.NewString()
	httpReq.Header.Set(requestIDHeader, requestID)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		httpReq.Header.Set(authTokenHeader, req.Token)
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", req.URL).
		Msg("sending request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrapf(err, "[Client.Send] %s %s", req.Method, req.URL)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "[Client.Send] read response body")
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("received response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp.StatusCode),
			Method:     req.Method,
			URL:        req.URL,
			Body:       respBody,
		}
	}

	if req.Result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, req.Result); err != nil {
			return errors.Wrap(err, "[Client.Send] decode response body")
		}
	}
	return nil
}
