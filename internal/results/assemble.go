// Package results joins geographies with their scores into result trees.
package results

import (
	"go.uber.org/zap"

	"github.com/sells-group/climatescope-data/internal/model"
)

// Assemble builds one result tree per geography. Scores are matched on the
// exact geography name. A geography without scores is returned bare and
// logged.
func Assemble(geographies []model.Geography, scores []model.ScoreRecord, topics []model.Topic) []model.Result {
	log := zap.L().With(zap.String("component", "results"))

	byName := make(map[string][]model.ScoreRecord)
	for _, s := range scores {
		byName[s.Geography] = append(byName[s.Geography], s)
	}

	out := make([]model.Result, 0, len(geographies))
	for _, geo := range geographies {
		geoScores := byName[geo.Name]
		if len(geoScores) == 0 {
			log.Warn("no data", zap.String("subject", "Overall Scores"), zap.String("geography", geo.Name))
			out = append(out, model.Result{Geography: geo})
			continue
		}

		topicData := make([]model.TopicResult, 0, len(topics))
		for _, t := range topics {
			topicData = append(topicData, model.TopicResult{Topic: t, Data: entries(geoScores, t.ID)})
		}

		out = append(out, model.Result{
			Geography: geo,
			Scores: &model.Scores{
				Score:  model.ScoreBlock{Data: entries(geoScores, model.CategoryOverall)},
				Topics: topicData,
			},
		})
	}
	return out
}

// entries keeps the records of category, stripped of their join keys.
func entries(scores []model.ScoreRecord, category string) []model.ScoreEntry {
	out := make([]model.ScoreEntry, 0)
	for _, s := range scores {
		if s.Category == category {
			out = append(out, s.Entry())
		}
	}
	return out
}
