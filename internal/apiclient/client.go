// Package apiclient provides the HTTP client for the portfolio backend API.
// Calls block until the server responds or the transport gives up; no retry,
// backoff, or local timeout is layered on top of the http.Client defaults.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/portfolio-generator/internal/template"
	"github.com/jonathan/portfolio-generator/internal/types"
)

// Client talks to one portfolio backend
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL (e.g. "http://localhost:8080")
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// EnhanceContent submits draft content for enhancement
func (c *Client) EnhanceContent(ctx context.Context, req types.EnhanceRequest) (*types.EnhanceResponse, error) {
	var resp types.EnhanceResponse
	if err := c.postJSON(ctx, "enhance-content", "/api/enhance-content", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &TransportError{Operation: "enhance-content", Message: "service reported failure"}
	}
	return &resp, nil
}

// GeneratePortfolio submits the full draft and template id for generation
func (c *Client) GeneratePortfolio(ctx context.Context, req types.GenerateRequest) (*types.GenerateResponse, error) {
	var resp types.GenerateResponse
	if err := c.postJSON(ctx, "generate-portfolio", "/api/generate-portfolio", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &TransportError{Operation: "generate-portfolio", Message: "service reported failure"}
	}
	return &resp, nil
}

// DownloadPortfolio streams the generated archive for an artifact id into w.
// Nothing is written to w unless the response status is success.
func (c *Client) DownloadPortfolio(ctx context.Context, artifactID string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/download-portfolio/"+artifactID, nil)
	if err != nil {
		return &TransportError{Operation: "download-portfolio", Cause: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Operation: "download-portfolio", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &TransportError{
			Operation:  "download-portfolio",
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return &TransportError{Operation: "download-portfolio", Cause: err}
	}
	return nil
}

// Templates fetches the server's template catalog
func (c *Client) Templates(ctx context.Context) ([]template.Template, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/templates", nil)
	if err != nil {
		return nil, &TransportError{Operation: "templates", Cause: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Operation: "templates", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{
			Operation:  "templates",
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	var payload struct {
		Templates []template.Template `json:"templates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &TransportError{Operation: "templates", Cause: err}
	}
	return payload.Templates, nil
}

// postJSON posts a JSON body and decodes a JSON response into out
func (c *Client) postJSON(ctx context.Context, operation, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return &TransportError{Operation: operation, Cause: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return &TransportError{Operation: operation, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Operation: operation, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransportError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Operation: operation, Cause: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// readErrorMessage extracts the server's error field, falling back to the raw body
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return "no response body"
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(data))
}
