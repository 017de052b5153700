package contest

// BookmarkSet is the in-memory set of bookmarked contest IDs. It lives as
// long as the process and is intentionally never persisted. All access goes
// through the single event loop, so there is no locking.
type BookmarkSet struct {
	ids map[string]struct{}
}

// NewBookmarkSet returns an empty set.
func NewBookmarkSet() *BookmarkSet {
	return &BookmarkSet{ids: make(map[string]struct{})}
}

// Toggle adds the ID if absent and removes it if present. The returned bool
// reports whether the ID is bookmarked after the call.
func (b *BookmarkSet) Toggle(id string) bool {
	if _, ok := b.ids[id]; ok {
		delete(b.ids, id)
		return false
	}
	b.ids[id] = struct{}{}
	return true
}

// Has reports membership.
func (b *BookmarkSet) Has(id string) bool {
	_, ok := b.ids[id]
	return ok
}

// Len returns the number of bookmarked contests.
func (b *BookmarkSet) Len() int {
	return len(b.ids)
}
