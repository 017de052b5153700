package clist

import (
	"fmt"
	"time"

	"github.com/contesthub/contesthub/internal/contest"
)

// timeLayout matches the naive timestamps the API returns, e.g.
// "2025-06-01T14:30:00". The values are UTC wall time without an offset.
const timeLayout = "2006-01-02T15:04:05"

// parseUTC interprets a naive timestamp as UTC. Malformed input yields the
// zero time so a single bad record cannot fail the whole response.
func parseUTC(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func mapContest(raw rawContest) contest.Contest {
	return contest.Contest{
		ID:        fmt.Sprintf("clist-%d", raw.ID),
		Name:      raw.Event,
		Platform:  contest.PlatformForResource(raw.Resource),
		StartTime: parseUTC(raw.Start),
		EndTime:   parseUTC(raw.End),
		Duration:  float64(raw.Duration) / 3600,
		Href:      raw.Href,
	}
}
