// Package downstream triggers the profile and recommendation pipelines that run outside this service.
package downstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/chainsafe/social-wallet-api/pkg/config"
)

// Task names used for the background queue and metrics
const (
	TaskProfileRefresh  = "profile_refresh"
	TaskRecommendations = "recommendations"
)

type triggerRequest struct {
	Wallet string `json:"wallet"`
}

// Client posts webhook triggers keyed by wallet address.
// An empty URL turns the corresponding trigger into a no-op.
type Client struct {
	profileRefreshURL  string
	recommendationsURL string
	http               *http.Client
	logger             *zap.Logger
}

// NewClient creates a downstream client from configuration
func NewClient(cfg *config.DownstreamConfig, logger *zap.Logger) *Client {
	return &Client{
		profileRefreshURL:  cfg.ProfileRefreshURL,
		recommendationsURL: cfg.RecommendationsURL,
		http:               &http.Client{Timeout: cfg.Timeout},
		logger:             logger,
	}
}

// RefreshProfile asks the profile pipeline to re-scrape the social profile of wallet
func (c *Client) RefreshProfile(ctx context.Context, wallet string) error {
	return c.trigger(ctx, TaskProfileRefresh, c.profileRefreshURL, wallet)
}

// RecomputeRecommendations asks the recommendation pipeline to rescore wallet
func (c *Client) RecomputeRecommendations(ctx context.Context, wallet string) error {
	return c.trigger(ctx, TaskRecommendations, c.recommendationsURL, wallet)
}

func (c *Client) trigger(ctx context.Context, name, url, wallet string) error {
	if url == "" {
		c.logger.Debug("Downstream trigger disabled", zap.String("trigger", name))
		return nil
	}

	body, err := json.Marshal(&triggerRequest{Wallet: wallet})
	if err != nil {
		return fmt.Errorf("failed to encode %s trigger: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", name, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s trigger failed: %w", name, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s trigger returned status %d", name, resp.StatusCode)
	}
	return nil
}
