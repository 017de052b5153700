package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocs() []Document {
	return []Document{
		{ID: "cf-999", Name: "Codeforces Round 999 (Div. 2)", Platform: "Codeforces", Status: "Upcoming"},
		{ID: "clist-1", Name: "Weekly Contest 400", Platform: "Leetcode", Status: "Upcoming"},
		{ID: "clist-2", Name: "Starters 190", Platform: "Codechef", Status: "Past"},
	}
}

func newTestEngine(t *testing.T) Searcher {
	t.Helper()
	engine, err := NewBleveEngine()
	require.NoError(t, err)
	require.NoError(t, engine.Reindex(testDocs()))
	return engine
}

func TestSearch_ByName(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.Search("weekly", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "clist-1", results[0].ID)
}

func TestSearch_ByPlatform(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.Search("codechef", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "clist-2", results[0].ID)
}

func TestSearch_Prefix(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.Search("start", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "clist-2", results[0].ID)
}

func TestSearch_ShortQuery(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.Search("w", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestReindex_ReplacesSnapshot(t *testing.T) {
	engine := newTestEngine(t)

	require.NoError(t, engine.Reindex([]Document{
		{ID: "cf-1000", Name: "Codeforces Round 1000 (Div. 1)", Platform: "Codeforces", Status: "Upcoming"},
	}))

	n, err := engine.DocCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	results, err := engine.Search("weekly", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}
