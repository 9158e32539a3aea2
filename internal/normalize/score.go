package normalize

import (
	"strconv"
	"strings"

	"github.com/sells-group/climatescope-data/internal/input"
	"github.com/sells-group/climatescope-data/internal/model"
	"github.com/sells-group/climatescope-data/internal/series"
)

// Scores types score rows and stamps each with the edition year.
func Scores(raw []input.RawScore, year int) []model.ScoreRecord {
	out := make([]model.ScoreRecord, 0, len(raw))
	for _, s := range raw {
		out = append(out, model.ScoreRecord{
			Geography: s.Geography,
			Category:  s.Category,
			Rank:      parseRank(s.Rank),
			Value:     series.ParseNumber(s.Score),
			Year:      year,
		})
	}
	return out
}

// parseRank returns nil for an empty or non-integer rank.
func parseRank(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

// Topics casts topic weights to numbers. An unparseable weight is 0.
func Topics(raw []input.RawTopic) []model.Topic {
	out := make([]model.Topic, 0, len(raw))
	for _, t := range raw {
		w, _ := series.ParseNumber(t.Weight).Float()
		out = append(out, model.Topic{ID: t.ID, Name: t.Name, Weight: w})
	}
	return out
}
