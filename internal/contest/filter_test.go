package contest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleBucket() []Contest {
	return []Contest{
		{ID: "cf-1", Platform: PlatformCodeforces},
		{ID: "clist-2", Platform: PlatformLeetcode},
		{ID: "clist-3", Platform: PlatformCodechef},
		{ID: "clist-4", Platform: ""}, // unrecognized resource
	}
}

func TestFilterState_Defaults(t *testing.T) {
	f := NewFilterState()

	assert.False(t, f.BookmarksOnly)
	for _, p := range Platforms {
		assert.True(t, f.Platforms[p], "platform %s should default to enabled", p)
	}
}

func TestFilterState_Apply(t *testing.T) {
	t.Run("all platforms enabled keeps everything known", func(t *testing.T) {
		f := NewFilterState()
		got := f.Apply(sampleBucket(), NewBookmarkSet())

		// Identity transform except for the empty-platform entry, which has
		// no map key and is treated as disabled.
		ids := idsOf(got)
		assert.Equal(t, []string{"cf-1", "clist-2", "clist-3"}, ids)
	})

	t.Run("disabled platform is dropped", func(t *testing.T) {
		f := NewFilterState()
		f.TogglePlatform(PlatformLeetcode)

		got := f.Apply(sampleBucket(), NewBookmarkSet())
		assert.Equal(t, []string{"cf-1", "clist-3"}, idsOf(got))
	})

	t.Run("bookmarks only with empty set yields nothing", func(t *testing.T) {
		f := NewFilterState()
		f.BookmarksOnly = true

		got := f.Apply(sampleBucket(), NewBookmarkSet())
		assert.Empty(t, got)
	})

	t.Run("bookmarks only keeps bookmarked contests", func(t *testing.T) {
		f := NewFilterState()
		f.BookmarksOnly = true

		bookmarks := NewBookmarkSet()
		bookmarks.Toggle("clist-3")

		got := f.Apply(sampleBucket(), bookmarks)
		assert.Equal(t, []string{"clist-3"}, idsOf(got))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		f := NewFilterState()
		assert.Empty(t, f.Apply(nil, NewBookmarkSet()))
	})
}

func TestBookmarkSet_Toggle(t *testing.T) {
	b := NewBookmarkSet()

	assert.False(t, b.Has("cf-1"))
	assert.Equal(t, 0, b.Len())

	assert.True(t, b.Toggle("cf-1"), "first toggle should add")
	assert.True(t, b.Has("cf-1"))
	assert.Equal(t, 1, b.Len())

	assert.False(t, b.Toggle("cf-1"), "second toggle should remove")
	assert.False(t, b.Has("cf-1"))
	assert.Equal(t, 0, b.Len())
}

func idsOf(contests []Contest) []string {
	ids := make([]string, 0, len(contests))
	for _, c := range contests {
		ids = append(ids, c.ID)
	}
	return ids
}
