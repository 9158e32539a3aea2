package normalize

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/climatescope-data/internal/input"
	"github.com/sells-group/climatescope-data/internal/model"
)

// Charts types chart definitions. Empty cells become nil; an unknown chart
// type is an error.
func Charts(raw []input.RawChart) ([]model.ChartDefinition, error) {
	out := make([]model.ChartDefinition, 0, len(raw))
	for _, c := range raw {
		t, err := model.ParseChartType(c.Type)
		if err != nil {
			return nil, eris.Wrapf(err, "normalize: chart %s", c.ID)
		}
		out = append(out, model.ChartDefinition{
			ID:             c.ID,
			IndicatorID:    nullable(c.IndicatorID),
			Name:           nullable(c.Name),
			Type:           t,
			Description:    nullable(c.Description),
			Topic:          nullable(c.Topic),
			LabelX:         nullable(c.LabelX),
			LabelY:         nullable(c.LabelY),
			Unit:           nullable(c.Unit),
			ApplicableGrid: nullable(c.ApplicableGrid),
		})
	}
	return out, nil
}

// Answers groups answer options by the indicator they belong to, keeping
// file order.
func Answers(raw []input.RawAnswer) map[string][]model.AnswerOption {
	out := make(map[string][]model.AnswerOption)
	for _, a := range raw {
		out[a.Indicator] = append(out[a.Indicator], model.AnswerOption{ID: a.ID, Label: a.Label})
	}
	return out
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
