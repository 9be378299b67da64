// Package petapi is the client for the remote Pet API.
//
// Every call is a single JSON round trip. Nothing is retried, and no timeout
// is applied unless the caller configures one.
package petapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nfrund/petcommunity/internal/domain"
)

// maxBody bounds how much of a response body is read.
const maxBody = 1 << 20

// Client talks to the Pet API rooted at BaseURL.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New creates a Client. A zero timeout means requests never time out.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient creates a Client on top of an existing *http.Client,
// which is how tests inject an httptest server's client.
func NewWithHTTPClient(baseURL string, hc *http.Client) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{
		HTTP:    hc,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// HTTPError represents a non-2xx response. It matches domain.ErrRejected.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("pet api: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("pet api: status=%d body=%s", e.StatusCode, e.Body)
}

// Is reports HTTP failures as rejections.
func (e *HTTPError) Is(target error) bool {
	return target == domain.ErrRejected
}

// StatusCode extracts the HTTP status of err, or 0 when err is not an HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// doJSON performs one JSON request against path.
//   - in, when non-nil, is encoded as the request body.
//   - out, when non-nil, receives the decoded response body. This happens for
//     non-2xx responses as well (best effort), so callers can read error
//     envelopes; the returned error is still an *HTTPError in that case.
func (c *Client) doJSON(ctx context.Context, method, path string, headers map[string]string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("pet api: marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("pet api: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", domain.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if out != nil && len(raw) > 0 {
			_ = json.Unmarshal(raw, out)
		}
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode body: %v", domain.ErrMalformedResponse, err)
	}
	return nil
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
