package solutions

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/contesthub/contesthub/internal/config"
	"github.com/contesthub/contesthub/internal/contest"
	"github.com/contesthub/contesthub/internal/logger"
)

// ErrNotFound means the playlist was fetched but no entry matched the
// contest. Distinct from a fetch error: the caller tells the user the video
// is not uploaded yet rather than that something broke.
var ErrNotFound = errors.New("no solution video found")

// Result is a resolved video location. Embedded is true for a direct video
// URL and false for a search-results fallback.
type Result struct {
	URL      string
	Embedded bool
}

// Resolver matches contests to solution videos using per-platform playlists.
type Resolver struct {
	client    *Client
	playlists map[string]string
	log       logger.Logger
}

func NewResolver(cfg *config.Config, client *Client, log logger.Logger) *Resolver {
	return &Resolver{
		client:    client,
		playlists: cfg.YouTube.Playlists,
		log:       log,
	}
}

// Resolve finds the solution video for a contest. Platforms without a
// configured playlist resolve to a generic search without any API call.
func (r *Resolver) Resolve(ctx context.Context, c contest.Contest) (Result, error) {
	playlistID := r.playlists[strings.ToLower(string(c.Platform))]
	if playlistID == "" {
		return Result{URL: searchURL(c.Name)}, nil
	}

	items, err := r.client.PlaylistItems(ctx, playlistID)
	if err != nil {
		return Result{}, err
	}

	core := coreName(c.Name)
	division := targetDivision(c.Name)

	if item, ok := match(items, core, division); ok {
		r.log.Debug("solution video matched",
			logger.String("contest", c.Name),
			logger.String("video", item.Snippet.ResourceID.VideoID))
		return Result{URL: embedURL(item.Snippet.ResourceID.VideoID), Embedded: true}, nil
	}

	return Result{}, ErrNotFound
}

// match scans newest-first playlist items. The first pass requires both the
// contest's core name and its division in the title; a title mentioning the
// core name alone is only acceptable once no division-qualified title exists.
func match(items []playlistItem, core, division string) (playlistItem, bool) {
	for _, item := range items {
		title := strings.ToLower(item.Snippet.Title)
		if strings.Contains(title, core) && (division == "" || strings.Contains(title, division)) {
			return item, true
		}
	}
	if division != "" {
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Snippet.Title), core) {
				return item, true
			}
		}
	}
	return playlistItem{}, false
}

// coreName strips any parenthesized suffix, e.g. "Round 999 (Div. 2)"
// becomes "round 999".
func coreName(name string) string {
	base, _, _ := strings.Cut(name, "(")
	return strings.ToLower(strings.TrimSpace(base))
}

// targetDivision extracts the division marker from the contest name's
// parenthesized segment, e.g. "Round 999 (Div. 2)". Division text outside
// the parentheses does not count. Only divisions 1 and 2 get dedicated
// videos.
func targetDivision(name string) string {
	_, rest, ok := strings.Cut(name, "(")
	if !ok {
		return ""
	}
	inner, _, _ := strings.Cut(rest, ")")
	inner = strings.ToLower(inner)
	switch {
	case strings.Contains(inner, "div. 1"):
		return "div. 1"
	case strings.Contains(inner, "div. 2"):
		return "div. 2"
	}
	return ""
}

func embedURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1", videoID)
}

func searchURL(name string) string {
	query := url.QueryEscape(name + " TLE Eliminator")
	return "https://www.youtube.com/results?search_query=" + query
}
