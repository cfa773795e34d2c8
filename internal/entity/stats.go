package entity

// StatsSummary is the aggregate of recorded game outcomes.
type StatsSummary struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Ties  int `json:"ties"`
	Total int `json:"total"`
}
