package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

const defaultBaseURL = "http://localhost:8080/api"

var _ domain.Gateway = (*Client)(nil)

// Client talks to the portfolio REST API. It implements every gateway
// interface of the domain package. Requests are never retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL. A zero timeout leaves requests
// bounded only by the caller's context and the transport defaults.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the API root every path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope is the wrapper every API response is delivered in.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Request issues method against baseURL+path. A non-nil body is sent as
// JSON. On a 2xx response the envelope's data is decoded into out, unless
// out is nil or the data is absent. Every failure is returned as an *Error.
func (c *Client) Request(ctx context.Context, method, path string, body, out any) error {
	reqURL := c.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return newError(method, path, 0, nil, fmt.Errorf("failed to encode request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return newError(method, path, 0, nil, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newError(method, path, 0, nil, err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("failed to close response body", "error", closeErr, "url", reqURL)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return newError(method, path, resp.StatusCode, nil, err)
	}

	slog.DebugContext(ctx, "API request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newError(method, path, resp.StatusCode, data,
			fmt.Errorf("request failed with status code %d", resp.StatusCode))
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return newError(method, path, resp.StatusCode, nil, fmt.Errorf("failed to decode response: %w", err))
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return newError(method, path, resp.StatusCode, nil, fmt.Errorf("failed to decode response data: %w", err))
	}
	return nil
}

func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	if err := c.Request(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func sendList[T any](ctx context.Context, c *Client, method, path string, body any) ([]T, error) {
	var items []T
	if err := c.Request(ctx, method, path, body, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func send[T any](ctx context.Context, c *Client, method, path string, body any) (*T, error) {
	var item T
	if err := c.Request(ctx, method, path, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
