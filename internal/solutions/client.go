// Package solutions resolves a contest to its editorial video. Solution
// videos live in per-platform YouTube playlists; matching a contest to a
// playlist entry is heuristic because video titles are written by hand.
package solutions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/contesthub/contesthub/internal/config"
	"github.com/contesthub/contesthub/internal/logger"
)

// Client fetches playlist items from the YouTube Data API.
type Client struct {
	baseURL    string
	apiKey     string
	maxResults int
	userAgent  string
	client     *http.Client
	log        logger.Logger
}

func NewClient(cfg *config.Config, log logger.Logger) *Client {
	return &Client{
		baseURL:    cfg.YouTube.BaseURL,
		apiKey:     cfg.YouTube.APIKey,
		maxResults: cfg.YouTube.MaxResults,
		userAgent:  cfg.HTTP.UserAgent,
		client:     &http.Client{Timeout: cfg.HTTP.Timeout},
		log:        log,
	}
}

// PlaylistItems fetches one page of a playlist, newest first. One page is
// enough: solution videos are matched against recent contests only.
func (c *Client) PlaylistItems(ctx context.Context, playlistID string) ([]playlistItem, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("playlistId", playlistID)
	params.Set("maxResults", strconv.Itoa(c.maxResults))
	params.Set("key", c.apiKey)

	reqURL := c.baseURL + "/playlistItems?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching playlist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	var envelope playlistItemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding playlist: %w", err)
	}

	c.log.Debug("playlist fetch complete",
		logger.String("playlist", playlistID),
		logger.Int("items", len(envelope.Items)))
	return envelope.Items, nil
}
