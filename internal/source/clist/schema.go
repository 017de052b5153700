package clist

// contestSearchResponse is the envelope from /contest/. A response without
// an objects field decodes to an empty list and is treated as "no data".
type contestSearchResponse struct {
	Objects []rawContest `json:"objects"`
}

type rawContest struct {
	ID       int64  `json:"id"`
	Event    string `json:"event"`
	Resource string `json:"resource"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration int64  `json:"duration"`
	Href     string `json:"href"`
}
