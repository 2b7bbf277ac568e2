// File: clients/client.go
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"hopehealth/models"
)

// TokenSource supplies the bearer token attached to outbound requests.
// The session manager implements it; a rotation may race an in-flight
// request, which the backends tolerate until the old token expires.
type TokenSource interface {
	AccessToken() string
}

// apiClient is the shared plumbing for all backend clients.
type apiClient struct {
	httpClient *http.Client
	tokens     TokenSource
}

func newAPIClient(tokens TokenSource) *apiClient {
	return &apiClient{
		tokens: tokens,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 10 * time.Second,
				IdleConnTimeout:       90 * time.Second,
				MaxIdleConns:          10,
				MaxIdleConnsPerHost:   2,
			},
		},
	}
}

// do executes a JSON request against a backend and decodes the envelope's
// data payload into out. Malformed payloads fail here rather than leaking
// zero values into the caller.
func (c *apiClient) do(ctx context.Context, method, rawURL string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Path: req.URL.Path}
		var envelope models.Envelope
		if json.Unmarshal(payload, &envelope) == nil {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}

	var envelope models.Envelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return fmt.Errorf("malformed envelope from %s: %w", req.URL.Path, err)
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("envelope from %s carries no data", req.URL.Path)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("malformed data payload from %s: %w", req.URL.Path, err)
	}
	return nil
}

func (c *apiClient) get(ctx context.Context, rawURL string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, rawURL, query, nil, out)
}

func (c *apiClient) post(ctx context.Context, rawURL string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, rawURL, nil, body, out)
}

func (c *apiClient) put(ctx context.Context, rawURL string, query url.Values, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, rawURL, query, body, out)
}

func (c *apiClient) delete(ctx context.Context, rawURL string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, rawURL, query, nil, nil)
}
