package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/contesthub/contesthub/internal/contest"
)

// contestItem adapts a contest for the bubbles list. Items are rebuilt on
// every tick so the countdowns stay current.
type contestItem struct {
	contest    contest.Contest
	now        time.Time
	bookmarked bool
}

func (i contestItem) Title() string {
	name := i.contest.Name
	if i.bookmarked {
		name = "★ " + name
	}
	if i.contest.StatusAt(i.now) == contest.StatusRunning {
		return RunningStyle.Render(name)
	}
	return name
}

func (i contestItem) Description() string {
	parts := []string{string(i.contest.Platform)}

	if !i.contest.StartTime.IsZero() {
		parts = append(parts, i.contest.StartTime.Local().Format("Jan 2, 15:04"))
	}
	if i.contest.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%.1fh", i.contest.Duration))
	}

	switch i.contest.StatusAt(i.now) {
	case contest.StatusUpcoming:
		parts = append(parts, contest.Remaining(i.contest.StartTime, i.now))
	case contest.StatusRunning:
		parts = append(parts, "Running")
	case contest.StatusPast:
		parts = append(parts, "Ended")
	}

	return lipgloss.NewStyle().
		Foreground(MutedColor).
		Render(strings.Join(parts, " • "))
}

func (i contestItem) FilterValue() string {
	return i.contest.Name + " " + string(i.contest.Platform)
}
