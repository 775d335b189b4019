package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"propapi/internal/config"
)

// Client implements Directory over the identity service's REST API.
// It is safe for concurrent use by multiple goroutines.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

var _ Directory = (*Client)(nil)

// NewClient creates an identity service client. Outbound requests carry
// the configured API key and propagate trace context.
func NewClient(cfg config.IdentityConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("identity base url is required")
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpc: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

// GetByEmail looks up the account registered under the given email.
// A 404 from the service maps to ErrNotFound; any other non-200 status is
// reported as a lookup failure.
func (c *Client) GetByEmail(ctx context.Context, email string) (*Account, error) {
	lookup := fmt.Sprintf("%s/v1/accounts?email=%s", c.baseURL, url.QueryEscape(email))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookup, nil)
	if err != nil {
		return nil, fmt.Errorf("identity lookup: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity lookup: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("identity lookup: unexpected status %d", resp.StatusCode)
	}

	var acct Account
	if err := json.NewDecoder(resp.Body).Decode(&acct); err != nil {
		return nil, fmt.Errorf("identity lookup: decode response: %w", err)
	}
	return &acct, nil
}
