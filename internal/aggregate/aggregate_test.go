package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/contesthub/contesthub/internal/contest"
)

func mk(id string, phase contest.Phase) contest.Contest {
	return contest.Contest{ID: id, Phase: phase}
}

func idsOf(contests []contest.Contest) []string {
	ids := make([]string, 0, len(contests))
	for _, c := range contests {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestBuckets(t *testing.T) {
	cf := []contest.Contest{
		mk("cf-2", contest.PhaseBefore),
		mk("cf-1", contest.PhaseFinished),
	}
	clistUp := []contest.Contest{
		mk("clist-10", contest.PhaseBefore),
	}
	clistPast := []contest.Contest{
		mk("clist-9", contest.PhaseFinished),
		mk("clist-8", contest.PhaseFinished),
	}

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	snap := Buckets(cf, clistUp, clistPast, now)

	assert.Equal(t, []string{"cf-2", "clist-10"}, idsOf(snap.Upcoming))
	assert.Equal(t, []string{"cf-1", "clist-9", "clist-8"}, idsOf(snap.Past))
	assert.Equal(t, now, snap.FetchedAt)
}

// A contest returned by the upcoming query but already classified finished
// must end up in the past bucket, not the upcoming one.
func TestBuckets_ReclassifiedUpcoming(t *testing.T) {
	clistUp := []contest.Contest{
		mk("clist-20", contest.PhaseBefore),
		mk("clist-21", contest.PhaseFinished),
	}

	snap := Buckets(nil, clistUp, nil, time.Time{})

	assert.Equal(t, []string{"clist-20"}, idsOf(snap.Upcoming))
	assert.Equal(t, []string{"clist-21"}, idsOf(snap.Past))
}

func TestBuckets_Empty(t *testing.T) {
	snap := Buckets(nil, nil, nil, time.Time{})
	assert.Empty(t, snap.Upcoming)
	assert.Empty(t, snap.Past)
}
