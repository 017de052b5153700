package clist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/contesthub/contesthub/internal/config"
	"github.com/contesthub/contesthub/internal/contest"
	"github.com/contesthub/contesthub/internal/logger"
)

// resourceFilter restricts queries to the platforms aggregated through the
// hub; everything else comes from a dedicated source.
const resourceFilter = "leetcode.com,codechef.com"

// Client fetches contests from the clist.by aggregator. Upcoming and
// recently-finished contests are separate queries, each authenticated with
// its own key.
type Client struct {
	baseURL   string
	username  string
	apiKey    string
	pastKey   string
	window    time.Duration
	limit     int
	userAgent string
	client    *http.Client
	log       logger.Logger
}

func NewClient(cfg *config.Config, log logger.Logger) *Client {
	return &Client{
		baseURL:   cfg.Clist.BaseURL,
		username:  cfg.Clist.Username,
		apiKey:    cfg.Clist.APIKey,
		pastKey:   cfg.Clist.PastKey(),
		window:    cfg.Clist.Window,
		limit:     cfg.Clist.Limit,
		userAgent: cfg.HTTP.UserAgent,
		client:    &http.Client{Timeout: cfg.HTTP.Timeout},
		log:       log,
	}
}

// Upcoming fetches contests starting within the configured window from now.
// Each record's phase is classified against now once the fetch completes, so
// a contest that started mid-flight comes back already finished.
func (c *Client) Upcoming(ctx context.Context, now time.Time) ([]contest.Contest, error) {
	params := url.Values{}
	params.Set("start__gte", now.UTC().Format(timeLayout))
	params.Set("start__lte", now.UTC().Add(c.window).Format(timeLayout))
	params.Set("order_by", "start")

	contests, err := c.search(ctx, params, c.apiKey)
	if err != nil {
		return nil, fmt.Errorf("fetching upcoming contests: %w", err)
	}

	for i := range contests {
		contests[i].Phase = contest.PhaseAt(contests[i].StartTime, now)
	}

	c.log.Debug("clist upcoming fetch complete", logger.Int("contests", len(contests)))
	return contests, nil
}

// RecentlyFinished fetches contests that ended within the window before now.
// The end-time bound is re-checked client side: a contest whose end falls
// exactly on now, or drifted past it between query and response, is dropped
// rather than shown as finished early.
func (c *Client) RecentlyFinished(ctx context.Context, now time.Time) ([]contest.Contest, error) {
	params := url.Values{}
	params.Set("end__gte", now.UTC().Add(-c.window).Format(timeLayout))
	params.Set("end__lte", now.UTC().Format(timeLayout))
	params.Set("order_by", "-end")

	contests, err := c.search(ctx, params, c.pastKey)
	if err != nil {
		return nil, fmt.Errorf("fetching finished contests: %w", err)
	}

	finished := contests[:0]
	for _, cc := range contests {
		if !cc.EndTime.Before(now) {
			continue
		}
		cc.Phase = contest.PhaseFinished
		finished = append(finished, cc)
	}

	c.log.Debug("clist finished fetch complete", logger.Int("contests", len(finished)))
	return finished, nil
}

func (c *Client) search(ctx context.Context, params url.Values, key string) ([]contest.Contest, error) {
	params.Set("resource__in", resourceFilter)
	params.Set("limit", strconv.Itoa(c.limit))
	params.Set("username", c.username)
	params.Set("api_key", key)

	reqURL := c.baseURL + "/contest/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching contests: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	var envelope contestSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding contests: %w", err)
	}

	contests := make([]contest.Contest, 0, len(envelope.Objects))
	for _, raw := range envelope.Objects {
		contests = append(contests, mapContest(raw))
	}
	return contests, nil
}
