package contest

// FilterState holds the user's current platform selection plus the
// bookmarks-only flag. The zero value is unusable; use NewFilterState.
type FilterState struct {
	Platforms     map[Platform]bool
	BookmarksOnly bool
}

// NewFilterState returns the default state: every known platform enabled,
// bookmarks-only off.
func NewFilterState() FilterState {
	platforms := make(map[Platform]bool, len(Platforms))
	for _, p := range Platforms {
		platforms[p] = true
	}
	return FilterState{Platforms: platforms}
}

// TogglePlatform flips a single platform on or off.
func (f *FilterState) TogglePlatform(p Platform) {
	f.Platforms[p] = !f.Platforms[p]
}

// Apply runs the filter pipeline over a bucket in fixed order: platform
// filter first, bookmark filter second. A contest whose platform is unknown
// (empty) has no entry in the map and is dropped. Both predicates are
// independent, so the order only matters for short-circuit efficiency.
func (f FilterState) Apply(contests []Contest, bookmarks *BookmarkSet) []Contest {
	out := make([]Contest, 0, len(contests))
	for _, c := range contests {
		if !f.Platforms[c.Platform] {
			continue
		}
		if f.BookmarksOnly && !bookmarks.Has(c.ID) {
			continue
		}
		out = append(out, c)
	}
	return out
}
