package tui

import "fmt"

// Canonical short status messages used across the app.
const (
	MsgRefreshing        = "Refreshing…"
	MsgSearchingVideo    = "Searching for solution video…"
	MsgVideoNotUploaded  = "Video not uploaded yet."
	MsgVideoOnlyAfterEnd = "Solutions are available once the contest ends"
	MsgVideoSearchError  = "Error searching for solution video"
	MsgBookmarkAdded     = "Bookmark added"
	MsgBookmarkRemoved   = "Bookmark removed"
)

func MsgResultsCount(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}

func MsgRefreshSummary(upcoming, past, errors int) string {
	base := fmt.Sprintf("Loaded: %d upcoming • %d past", upcoming, past)
	if errors > 0 {
		base += fmt.Sprintf(" • %d sources failed", errors)
	}
	return base
}
