package charts

import "github.com/sells-group/climatescope-data/internal/model"

// Meta joins chart definitions with the answer options of their indicator.
// Charts without options get an empty list.
func Meta(defs []model.ChartDefinition, answers map[string][]model.AnswerOption) []model.ChartMeta {
	out := make([]model.ChartMeta, 0, len(defs))
	for _, def := range defs {
		opts := answers[def.Indicator()]
		if opts == nil {
			opts = []model.AnswerOption{}
		}
		out = append(out, model.ChartMeta{ChartDefinition: def, Options: opts})
	}
	return out
}
