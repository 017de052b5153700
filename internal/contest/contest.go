package contest

import (
	"fmt"
	"time"
)

// Platform identifies the judge a contest runs on.
type Platform string

const (
	PlatformCodeforces Platform = "Codeforces"
	PlatformLeetcode   Platform = "Leetcode"
	PlatformCodechef   Platform = "Codechef"
)

// Platforms lists every known platform in display order.
var Platforms = []Platform{PlatformCodeforces, PlatformLeetcode, PlatformCodechef}

// Phase is the coarse fetch-time classification that decides which bucket a
// contest lives in for the session. It is computed once, when a source
// responds, and never again.
type Phase string

const (
	PhaseBefore   Phase = "BEFORE"
	PhaseFinished Phase = "FINISHED"
)

// Status is the fine-grained runtime classification shown to the user. It is
// recomputed against the current instant on every render, since a contest
// fetched as upcoming can start while the app stays open.
type Status string

const (
	StatusUpcoming Status = "Upcoming"
	StatusRunning  Status = "Running"
	StatusPast     Status = "Past"
)

// Contest is the canonical shape every source normalizes into.
type Contest struct {
	// ID is prefixed by source ("cf-<n>", "clist-<n>") so entries from
	// different providers can never collide. The same contest appearing in
	// two sources yields two independent entries; no dedup is attempted.
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Platform  Platform  `json:"platform"`
	StartTime time.Time `json:"start_time"`
	// EndTime is zero for sources that only report a duration.
	EndTime  time.Time `json:"end_time"`
	Duration float64   `json:"duration"` // hours
	Phase    Phase     `json:"phase"`
	Href     string    `json:"href"`
}

// EndsAt returns the explicit end time when the source provided one,
// otherwise start plus duration.
func (c Contest) EndsAt() time.Time {
	if !c.EndTime.IsZero() {
		return c.EndTime
	}
	return c.StartTime.Add(time.Duration(c.Duration * float64(time.Hour)))
}

// StatusAt classifies the contest relative to now. Callers must re-invoke
// this on every render or timer tick; the result is never stored.
func (c Contest) StatusAt(now time.Time) Status {
	switch {
	case now.Before(c.StartTime):
		return StatusUpcoming
	case now.Before(c.EndsAt()):
		return StatusRunning
	default:
		return StatusPast
	}
}

// PhaseAt buckets a start time against now: strictly in the future means
// Before, anything else (including exactly now) is Finished.
func PhaseAt(start, now time.Time) Phase {
	if start.After(now) {
		return PhaseBefore
	}
	return PhaseFinished
}

// Remaining renders a coarse countdown until start, day-granular beyond 24h
// and minute-granular below, mirroring the display format.
func Remaining(start, now time.Time) string {
	diff := start.Sub(now)
	if diff <= 0 {
		return "Started"
	}
	secs := int(diff.Seconds())
	if secs >= 86400 {
		days := secs / 86400
		if days > 1 {
			return fmt.Sprintf("%d days remaining", days)
		}
		return "1 day remaining"
	}
	return fmt.Sprintf("%dh %dm remaining", secs/3600, (secs%3600)/60)
}
