package query

// Body is a rendered query body.
type Body struct {
	Query       BoolQuery `json:"query"`
	Size        any       `json:"size,omitempty"`
	TrackScores any       `json:"track_scores,omitempty"`
}

type BoolQuery struct {
	Bool Bool `json:"bool"`
}

type Bool struct {
	Must   []Clause `json:"must,omitempty"`
	Should []Clause `json:"should,omitempty"`
	Filter *Filter  `json:"filter,omitempty"`
}

type Filter struct {
	Bool FilterBool `json:"bool"`
}

type FilterBool struct {
	Must []Clause `json:"must"`
}

// Filters returns the non-scoring clauses.
func (b Body) Filters() []Clause {
	if b.Query.Bool.Filter == nil {
		return nil
	}
	return b.Query.Bool.Filter.Bool.Must
}
