// Package api is a typed client for the remote fleet REST API. The client
// never retries and never caches; every call maps to exactly one request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const defaultTimeout = 10 * time.Second

// Client issues authenticated requests against the fleet API. The bearer
// token is explicit client state set by the caller; there is no ambient
// credential lookup.
type Client struct {
	baseURL  string
	http     *http.Client
	token    string
	validate *validator.Validate
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New creates a fleet API client for the given base URL, e.g.
// "http://localhost:8000/api/v1".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: defaultTimeout},
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token for subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current bearer token.
func (c *Client) Token() string { return c.token }

// ListOptions control pagination of list endpoints. Zero values mean the
// server defaults.
type ListOptions struct {
	Limit  int
	Offset int
}

// Page is the canonical list response envelope. Total may exceed len(Items)
// when the server paginates.
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// do issues one request and returns the raw response body. Transport errors
// are returned wrapped; non-2xx statuses become *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}
	return data, nil
}

// errorMessage extracts a human-readable message from an error response
// body. Falls back to the raw text; an unparseable body still yields a typed
// error, just without detail.
func errorMessage(body []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return strings.TrimSpace(string(body))
}

func listQuery(opts ListOptions) url.Values {
	q := url.Values{}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		q.Set("offset", strconv.Itoa(opts.Offset))
	}
	return q
}

// list fetches a paginated collection.
func list[T any](ctx context.Context, c *Client, path string, opts ListOptions) (Page[T], error) {
	var page Page[T]
	data, err := c.do(ctx, http.MethodGet, path, listQuery(opts), nil)
	if err != nil {
		return page, err
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return page, fmt.Errorf("decode %s: %w", path, ErrMalformedResponse)
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	return page, nil
}

// getOne fetches a single resource wrapped in the {data: T} envelope. A
// success response without a data field is a protocol violation.
func getOne[T any](ctx context.Context, c *Client, path string) (T, error) {
	var zero T
	data, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return zero, err
	}
	return unwrapData[T](path, data)
}

// create validates the payload locally, POSTs it, and returns the created
// resource.
func create[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	var zero T
	if err := c.validate.Struct(payload); err != nil {
		return zero, fmt.Errorf("invalid payload for %s: %w", path, err)
	}
	data, err := c.do(ctx, http.MethodPost, path, nil, payload)
	if err != nil {
		return zero, err
	}
	return unwrapData[T](path, data)
}

// patchAction issues a status-transition request and returns the updated
// resource. The server may reject a transition the registry offered; that
// surfaces as a regular *Error.
func patchAction[T any](ctx context.Context, c *Client, path string) (T, error) {
	var zero T
	data, err := c.do(ctx, http.MethodPatch, path, nil, nil)
	if err != nil {
		return zero, err
	}
	return unwrapData[T](path, data)
}

func unwrapData[T any](path string, data []byte) (T, error) {
	var zero T
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return zero, fmt.Errorf("decode %s: %w", path, ErrMalformedResponse)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return zero, fmt.Errorf("%s: missing data field: %w", path, ErrMalformedResponse)
	}
	var out T
	if err := json.Unmarshal(envelope.Data, &out); err != nil {
		return zero, fmt.Errorf("decode %s data: %w", path, ErrMalformedResponse)
	}
	return out, nil
}
