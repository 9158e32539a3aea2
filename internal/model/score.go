package model

// CategoryOverall marks the overall score of a geography.
const CategoryOverall = "overall"

// ScoreRecord is one (geography, category, year) score observation.
type ScoreRecord struct {
	Geography string
	Category  string
	Rank      *int
	Value     Value
	Year      int
}

// Entry strips the join keys off r.
func (r ScoreRecord) Entry() ScoreEntry {
	return ScoreEntry{Rank: r.Rank, Value: r.Value, Year: r.Year}
}

// ScoreEntry is a score as published in result trees.
type ScoreEntry struct {
	Rank  *int  `json:"rank"`
	Value Value `json:"value"`
	Year  int   `json:"year"`
}

// Topic is a weighted scoring topic.
type Topic struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}
