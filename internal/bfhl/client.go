package bfhl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// ClientConfig holds settings for the API client
type ClientConfig struct {
	// BaseURL is the API root; the /bfhl path is appended per request
	BaseURL string

	// Timeout bounds a whole submission; zero means wait indefinitely
	Timeout time.Duration
}

// Validate checks the client configuration
func (c *ClientConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https: %s", c.BaseURL)
	}

	return nil
}

// Client submits raw payload text to the /bfhl endpoint
type Client struct {
	config  *ClientConfig
	client  *http.Client
	baseURL *url.URL
}

// NewClient creates a client for the given configuration
func NewClient(config *ClientConfig) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	client := &http.Client{
		Timeout: config.Timeout,
	}

	return &Client{
		config:  config,
		client:  client,
		baseURL: baseURL,
	}, nil
}

// Endpoint returns the full submission URL
func (c *Client) Endpoint() string {
	return c.baseURL.JoinPath("/bfhl").String()
}

// Submit validates raw payload text and posts it verbatim to /bfhl.
// Validation failures return before any connection is attempted; on the
// wire the body is the caller's bytes untouched, never a re-serialized
// form. Exactly one request is issued per call.
func (c *Client) Submit(ctx context.Context, raw []byte) (*Response, error) {
	if err := ValidatePayload(raw); err != nil {
		return nil, err
	}

	endpoint := c.baseURL.JoinPath("/bfhl")

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint.String(), bytes.NewReader(raw))
	if err != nil {
		return nil, NewUnknownError(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, NewUnknownError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewTransportError(resp.StatusCode)
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, NewUnknownError(err)
	}

	return &result, nil
}
