package solutions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contesthub/contesthub/internal/config"
	"github.com/contesthub/contesthub/internal/contest"
	"github.com/contesthub/contesthub/internal/logger"
)

func newTestResolver(t *testing.T, handler http.HandlerFunc) *Resolver {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.TestConfig()
	cfg.YouTube.BaseURL = server.URL
	return NewResolver(cfg, NewClient(cfg, logger.NewNop()), logger.NewNop())
}

func playlistResponse(titles ...string) string {
	body := `{"items": [`
	for i, title := range titles {
		if i > 0 {
			body += ","
		}
		body += `{"snippet": {"title": "` + title + `", "resourceId": {"videoId": "vid` + string(rune('A'+i)) + `"}}}`
	}
	return body + `]}`
}

func TestResolve_DivisionMatch(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/playlistItems", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "snippet", q.Get("part"))
		assert.Equal(t, "PLcXpkI9A-RZLUfBSNp-YQBCOezZKbDSgB", q.Get("playlistId"))
		assert.Equal(t, "50", q.Get("maxResults"))
		assert.Equal(t, "test-key", q.Get("key"))

		_, _ = w.Write([]byte(playlistResponse(
			"Codeforces Round 999 (Div. 1) | Full Solutions",
			"Codeforces Round 999 (Div. 2) | Full Solutions",
		)))
	})

	c := contest.Contest{Name: "Codeforces Round 999 (Div. 2)", Platform: contest.PlatformCodeforces}
	result, err := resolver.Resolve(context.Background(), c)
	require.NoError(t, err)

	// The Div. 1 video comes first but must not win over the exact division.
	assert.Equal(t, "https://www.youtube.com/embed/vidB?autoplay=1", result.URL)
	assert.True(t, result.Embedded)
}

func TestResolve_CoreNameFallback(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(playlistResponse(
			"Codeforces Round 998 Solutions",
		)))
	})

	// Division-qualified title absent: the bare core-name match is accepted.
	c := contest.Contest{Name: "Codeforces Round 998 (Div. 2)", Platform: contest.PlatformCodeforces}
	result, err := resolver.Resolve(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/vidA?autoplay=1", result.URL)
}

func TestResolve_NotFound(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(playlistResponse("Some Other Round")))
	})

	c := contest.Contest{Name: "Codeforces Round 1000 (Div. 2)", Platform: contest.PlatformCodeforces}
	_, err := resolver.Resolve(context.Background(), c)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_UnmappedPlatformSkipsFetch(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("unexpected API call for unmapped platform")
	})

	c := contest.Contest{Name: "Weekly Contest 400", Platform: contest.PlatformLeetcode}
	result, err := resolver.Resolve(context.Background(), c)
	require.NoError(t, err)
	assert.False(t, result.Embedded)
	assert.Equal(t,
		"https://www.youtube.com/results?search_query=Weekly+Contest+400+TLE+Eliminator",
		result.URL)
}

func TestResolve_FetchError(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	c := contest.Contest{Name: "Codeforces Round 999 (Div. 2)", Platform: contest.PlatformCodeforces}
	_, err := resolver.Resolve(context.Background(), c)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCoreName(t *testing.T) {
	assert.Equal(t, "codeforces round 999", coreName("Codeforces Round 999 (Div. 2)"))
	assert.Equal(t, "weekly contest 400", coreName("Weekly Contest 400"))
	assert.Equal(t, "educational codeforces round 180", coreName("Educational Codeforces Round 180 (Rated for Div. 2)"))
}

func TestTargetDivision(t *testing.T) {
	assert.Equal(t, "div. 2", targetDivision("Codeforces Round 999 (Div. 2)"))
	assert.Equal(t, "div. 1", targetDivision("Codeforces Round 999 (Div. 1)"))
	assert.Equal(t, "", targetDivision("Weekly Contest 400"))
	// Div. 1 wins when both appear.
	assert.Equal(t, "div. 1", targetDivision("Codeforces Round 999 (Div. 1 + Div. 2)"))
	// Division text outside the parentheses does not count.
	assert.Equal(t, "", targetDivision("Div. 2 Practice Round"))
	assert.Equal(t, "", targetDivision("ICPC Mirror (Online) Div. 2 Stream"))
}

func TestMatch_IgnoresDivisionOutsideParentheses(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(playlistResponse(
			"ICPC Mirror Full Analysis",
			"ICPC Mirror Div. 2 Analysis",
		)))
	})

	// The parenthesized segment holds no division marker, so the newest
	// core-name match wins even though a later title mentions Div. 2.
	c := contest.Contest{Name: "ICPC Mirror (Online) Div. 2 Stream", Platform: contest.PlatformCodeforces}
	result, err := resolver.Resolve(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/vidA?autoplay=1", result.URL)
}
