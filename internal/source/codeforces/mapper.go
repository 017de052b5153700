package codeforces

import (
	"fmt"
	"time"

	"github.com/contesthub/contesthub/internal/contest"
)

const contestPageURL = "https://codeforces.com/contest/%d"

// mapContest normalizes one raw Codeforces record into the canonical shape.
// The mapping is pure: the same raw record always yields the same Contest.
func mapContest(raw rawContest) contest.Contest {
	phase := contest.PhaseFinished
	if raw.Phase == "BEFORE" {
		phase = contest.PhaseBefore
	}

	return contest.Contest{
		ID:        fmt.Sprintf("cf-%d", raw.ID),
		Name:      raw.Name,
		Platform:  contest.PlatformCodeforces,
		StartTime: time.Unix(raw.StartTimeSeconds, 0).UTC(),
		Duration:  float64(raw.DurationSeconds) / 3600,
		Phase:     phase,
		Href:      fmt.Sprintf(contestPageURL, raw.ID),
	}
}
