// ABOUTME: Standard HTTP client used for outbound feed and proxy requests
// ABOUTME: Retries 5xx responses with exponential backoff up to a configurable attempt count

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"signage-app-api/core/interfaces"
)

const (
	// DefaultMaxRetries is the attempt count for general-purpose clients
	DefaultMaxRetries = 3
	userAgent         = "SignagePlayer/1.0"
)

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client      *http.Client
	maxAttempts int
}

// NewStandardHTTPClient creates a client with the given timeout. maxAttempts below 1 means a
// single attempt; feed resolution uses 1 so failures fall back immediately.
func NewStandardHTTPClient(timeout time.Duration, maxAttempts int) *StandardHTTPClient {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		maxAttempts: maxAttempts,
	}
}

// WithTransport swaps the underlying transport, e.g. for request tracing
func (c *StandardHTTPClient) WithTransport(rt http.RoundTripper) *StandardHTTPClient {
	c.client.Transport = rt
	return c
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			resp = nil
			lastErr = err
			continue
		}

		// Don't retry on success, 4xx, or the final attempt
		if resp.StatusCode < 500 || attempt == c.maxAttempts-1 {
			break
		}

		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp.Body.Close()
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// Post performs an HTTP POST request with a JSON body
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
