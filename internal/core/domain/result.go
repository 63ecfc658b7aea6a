package domain

// ResultRow is derived at read time and never stored. There is one row per
// candidate plus the blank and null sentinel rows; votes pointing at a
// deleted candidate surface as an "unknown" row instead of failing the tally.
type ResultRow struct {
	Ref        string  `json:"ref"`
	Number     string  `json:"number,omitempty"`
	Name       string  `json:"name"`
	Party      string  `json:"party,omitempty"`
	Position   string  `json:"position,omitempty"`
	VoteCount  int64   `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type ElectionSummary struct {
	Voters      int64 `json:"voters"`
	VotersVoted int64 `json:"voters_voted"`
	Candidates  int64 `json:"candidates"`
	Votes       int64 `json:"votes"`
}
