package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/contesthub/contesthub/internal/contest"
	"github.com/contesthub/contesthub/internal/logger"
	"github.com/contesthub/contesthub/internal/solutions"
)

type sourceKind int

const (
	sourceCodeforces sourceKind = iota
	sourceClistUpcoming
	sourceClistPast
)

// sourceLoadedMsg reports one source's fetch outcome. Sources complete
// independently; the view fills in as each one lands.
type sourceLoadedMsg struct {
	generation int
	kind       sourceKind
	contests   []contest.Contest
	err        error
}

type solutionFoundMsg struct {
	contestName string
	url         string
}

type solutionMissingMsg struct {
	contestName string
}

type searchResultsMsg struct {
	ids []string
}

type tickMsg time.Time

type statusExpiredMsg struct {
	seq int
}

type errorMsg struct {
	err error
}

// refreshContests fires one command per source. A failing source degrades
// the refresh, it does not abort it; each completion carries the generation
// it was started under so a stale fetch cannot overwrite newer data.
func (a *App) refreshContests() tea.Cmd {
	generation := a.generation
	return tea.Batch(
		a.fetchSource(generation, sourceCodeforces, "codeforces",
			func(ctx context.Context, _ time.Time) ([]contest.Contest, error) {
				return a.cfClient.Contests(ctx)
			}),
		a.fetchSource(generation, sourceClistUpcoming, "clist upcoming",
			a.clistClient.Upcoming),
		a.fetchSource(generation, sourceClistPast, "clist finished",
			a.clistClient.RecentlyFinished),
	)
}

func (a *App) fetchSource(generation int, kind sourceKind, name string,
	fetch func(context.Context, time.Time) ([]contest.Contest, error)) tea.Cmd {

	return func() tea.Msg {
		contests, err := fetch(context.Background(), time.Now().UTC())
		if err != nil {
			a.log.Warn("source fetch failed", logger.String("source", name), logger.Error(err))
		}
		return sourceLoadedMsg{generation: generation, kind: kind, contests: contests, err: err}
	}
}

// resolveSolution looks up the solution video for a contest and opens it in
// the browser. Platforms without a playlist resolve to a search page without
// touching the API.
func (a *App) resolveSolution(c contest.Contest) tea.Cmd {
	return func() tea.Msg {
		result, err := a.resolver.Resolve(context.Background(), c)
		if err != nil {
			if errors.Is(err, solutions.ErrNotFound) {
				return solutionMissingMsg{contestName: c.Name}
			}
			a.log.Error("solution lookup failed",
				logger.String("contest", c.Name), logger.Error(err))
			return errorMsg{err: fmt.Errorf("%s", MsgVideoSearchError)}
		}

		if err := a.launcher.Open(result.URL); err != nil {
			return errorMsg{err: fmt.Errorf("failed to open %s: %w", result.URL, err)}
		}
		return solutionFoundMsg{contestName: c.Name, url: result.URL}
	}
}

func (a *App) openURL(url string) tea.Cmd {
	return func() tea.Msg {
		if err := a.launcher.Open(url); err != nil {
			return errorMsg{err: fmt.Errorf("failed to open %s: %w", url, err)}
		}
		return nil
	}
}

func (a *App) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := a.searcher.Search(query, 20)
		if err != nil {
			return errorMsg{err: err}
		}
		ids := make([]string, 0, len(results))
		for _, r := range results {
			ids = append(ids, r.ID)
		}
		return searchResultsMsg{ids: ids}
	}
}

func (a *App) scheduleTick() tea.Cmd {
	return tea.Tick(a.config.UI.CountdownTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) expireStatus(seq int) tea.Cmd {
	return tea.Tick(a.config.UI.StatusTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
