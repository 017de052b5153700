// Package search provides full-text lookup over the loaded contests. The
// index lives in memory only and is rebuilt from each refresh snapshot.
package search

// Result is one search hit, referencing a contest by its canonical ID.
type Result struct {
	ID    string
	Score float64
}

// Searcher defines the minimal search API used by the TUI.
type Searcher interface {
	// Reindex replaces the index contents with the given snapshot.
	Reindex(docs []Document) error
	Search(query string, limit int) ([]*Result, error)
	DocCount() (int, error)
}

// Document is the indexable projection of a contest.
type Document struct {
	ID       string
	Name     string
	Platform string
	Status   string
}
