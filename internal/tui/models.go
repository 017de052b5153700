package tui

type View int

const (
	ViewContests View = iota
	ViewSearch
	ViewHelp
)

// Bucket selects which contest list the main view shows.
type Bucket int

const (
	BucketUpcoming Bucket = iota
	BucketPast
)
