package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/chainsafe/social-wallet-api/pkg/config"
)

// Client is the HTTP implementation of Oracle.
type Client struct {
	baseURL   string
	appID     string
	appSecret string
	http      *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// NewClient creates a provider client from configuration
func NewClient(cfg *config.IdentityConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		appID:     cfg.AppID,
		appSecret: cfg.AppSecret,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetAccount fetches the account for identityID. Unknown identities yield ErrNotFound.
func (c *Client) GetAccount(ctx context.Context, identityID string) (*Account, error) {
	if identityID == "" {
		return nil, ErrNotFound
	}

	endpoint := c.baseURL + usersPathPrefix + url.PathEscape(identityID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.appID, c.appSecret)
	req.Header.Set(appIDHeader, c.appID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch identity: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("identity provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var account Account
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodyBytes)).Decode(&account); err != nil {
		return nil, fmt.Errorf("failed to decode identity: %w", err)
	}
	return &account, nil
}
