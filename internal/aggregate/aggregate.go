// Package aggregate merges contests from all sources into the two buckets
// the UI renders. Bucket membership is decided purely by each record's phase,
// so a contest reclassified at fetch time lands in the right bucket without
// any special casing here.
package aggregate

import (
	"time"

	"github.com/contesthub/contesthub/internal/contest"
)

// Snapshot is the merged result of one refresh cycle.
type Snapshot struct {
	Upcoming  []contest.Contest
	Past      []contest.Contest
	FetchedAt time.Time
}

// Buckets merges the three source lists. Codeforces and the upcoming
// aggregator query are split by phase; the recently-finished query only ever
// yields finished contests and goes to the past bucket wholesale. Records are
// kept in source order, no dedup: the sources cover disjoint platforms.
func Buckets(codeforces, clistUpcoming, clistPast []contest.Contest, fetchedAt time.Time) Snapshot {
	snap := Snapshot{FetchedAt: fetchedAt}

	for _, c := range codeforces {
		if c.Phase == contest.PhaseBefore {
			snap.Upcoming = append(snap.Upcoming, c)
		} else {
			snap.Past = append(snap.Past, c)
		}
	}
	for _, c := range clistUpcoming {
		if c.Phase == contest.PhaseBefore {
			snap.Upcoming = append(snap.Upcoming, c)
		} else {
			snap.Past = append(snap.Past, c)
		}
	}
	snap.Past = append(snap.Past, clistPast...)

	return snap
}
