package codeforces

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/contesthub/contesthub/internal/config"
	"github.com/contesthub/contesthub/internal/contest"
	"github.com/contesthub/contesthub/internal/logger"
)

// Client fetches the full Codeforces contest list. Gym and side contests are
// excluded at the API level.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	log       logger.Logger
}

func NewClient(cfg *config.Config, log logger.Logger) *Client {
	return &Client{
		baseURL:   cfg.Codeforces.BaseURL,
		userAgent: cfg.HTTP.UserAgent,
		client:    &http.Client{Timeout: cfg.HTTP.Timeout},
		log:       log,
	}
}

// Contests performs a single best-effort fetch of the contest list. There is
// no retry; the caller reloads when it wants fresh data.
func (c *Client) Contests(ctx context.Context) ([]contest.Contest, error) {
	url := c.baseURL + "/contest.list?gym=false"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching contest list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	var envelope contestListResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding contest list: %w", err)
	}

	if envelope.Status != "OK" {
		return nil, fmt.Errorf("codeforces error: %s", envelope.Comment)
	}

	contests := make([]contest.Contest, 0, len(envelope.Result))
	for _, raw := range envelope.Result {
		contests = append(contests, mapContest(raw))
	}

	c.log.Debug("codeforces fetch complete", logger.Int("contests", len(contests)))
	return contests, nil
}
