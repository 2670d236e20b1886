package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/crucial707/twitter-crud/cmd/cli/config"
)

// StatusError reports a response whose status was not one the caller expected.
// The API sends failures without a body, so the status is all there is.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Code, http.StatusText(e.Code))
}

// Client talks JSON to the API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a client for config.APIURL().
func New() *Client {
	return &Client{
		BaseURL: config.APIURL(),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
			// Single-entity reads may answer 302 with a body and no Location.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Do sends in (when non-nil) as the JSON body and decodes the response into
// out (when non-nil). Any status outside want yields a *StatusError.
func (c *Client) Do(ctx context.Context, method, path string, in, out any, want ...int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var body *bytes.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.BaseURL+path, nil)
	}
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !slices.Contains(want, resp.StatusCode) {
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
