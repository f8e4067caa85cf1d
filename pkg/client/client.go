// Package client is a small typed wrapper over the inventory HTTP API. Every
// call is a single synchronous request; there is no retry, caching or
// deduplication. Non-2xx responses are normalized into *APIError so callers
// can inspect the message, the status code and the raw payload.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// DefaultBaseURL is used when API_BASE_URL is not set.
const DefaultBaseURL = "http://localhost:3121/api/v1"

// BaseURLFromEnv resolves the API base URL from the environment with a
// literal fallback. Call it once at startup and inject the result.
func BaseURLFromEnv() string {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return baseURL
}

// APIError is the single error shape for any non-2xx response.
type APIError struct {
	// Message prefers the "message" field of the response payload and falls
	// back to a generic "Error <status>: <status text>" string.
	Message string
	// Status is the HTTP status code of the response.
	Status int
	// Payload is the decoded JSON body, nil when the body was empty or not
	// valid JSON.
	Payload interface{}
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, http.DefaultClient)
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// do issues one request and hands back the raw JSON of a successful response.
// A nil result means the server sent no JSON body, which is only a valid
// outcome on success paths.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, token string) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// The body is parsed regardless of status; anything that is not JSON
	// counts as an absent payload, never a failure on its own.
	var payload interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		payload = nil
		raw = nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := fmt.Sprintf("Error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		if fields, ok := payload.(map[string]interface{}); ok {
			if m, ok := fields["message"].(string); ok && m != "" {
				message = m
			}
		}
		return nil, &APIError{Message: message, Status: resp.StatusCode, Payload: payload}
	}

	if payload == nil {
		return nil, nil
	}
	return json.RawMessage(raw), nil
}
