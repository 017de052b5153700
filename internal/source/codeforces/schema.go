package codeforces

// contestListResponse is the envelope returned by contest.list.
// Status is "OK" or "FAILED"; Comment carries the failure reason.
type contestListResponse struct {
	Status  string       `json:"status"`
	Comment string       `json:"comment"`
	Result  []rawContest `json:"result"`
}

type rawContest struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Phase            string `json:"phase"`
	DurationSeconds  int64  `json:"durationSeconds"`
	StartTimeSeconds int64  `json:"startTimeSeconds"`
}
