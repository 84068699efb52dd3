// Package backend is the typed client for the remote resource REST API. The
// upstream service is an opaque collaborator: this package only encodes its
// documented contract — bearer-token auth, JSON bodies, 204 equivalent to an
// empty array, and non-2xx responses carrying an optional {"message"} payload.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 10 * time.Second

// Client issues authenticated requests against the resource API.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// StatusError is a non-2xx response from the backend. Message holds the
// server-provided text verbatim when the body carried one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// statusResponse is the envelope the backend uses for create-style calls.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, token, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	return c.http.Do(req)
}

// getJSON performs a GET and decodes the response into out. A 204 response or
// an empty body leaves out at its zero value, which the callers treat as an
// empty collection.
func (c *Client) getJSON(ctx context.Context, token, path string, out any) error {
	resp, err := c.do(ctx, token, http.MethodGet, path, nil)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// sendJSON performs a mutating call with an optional JSON body and discards
// any response body beyond the error envelope.
func (c *Client) sendJSON(ctx context.Context, token, method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	resp, err := c.do(ctx, token, method, path, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// postForStatus performs a create-style POST whose 200 response still signals
// failure unless the envelope reports status "success".
func (c *Client) postForStatus(ctx context.Context, token, path string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, token, http.MethodPost, path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	var env statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if env.Status != "success" {
		return &StatusError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	return nil
}

// checkStatus converts a non-2xx response into a StatusError, extracting the
// optional {"message"} payload.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	serr := &StatusError{StatusCode: resp.StatusCode}
	var payload struct {
		Message string `json:"message"`
	}
	if data, err := io.ReadAll(resp.Body); err == nil && len(data) > 0 {
		if json.Unmarshal(data, &payload) == nil {
			serr.Message = payload.Message
		}
	}
	return serr
}
