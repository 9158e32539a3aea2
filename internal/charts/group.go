package charts

import (
	"go.uber.org/zap"

	"github.com/sells-group/climatescope-data/internal/model"
)

// group nests the payloads referenced by each group definition under it
// and drops them from the top level. Groups are appended after the
// remaining leaves.
func (g *Generator) group(geo model.Geography, leaves []model.ChartPayload, groups []model.ChartDefinition) []model.ChartPayload {
	byID := make(map[string]model.ChartPayload, len(leaves))
	for _, c := range leaves {
		if _, dup := byID[c.ChartID()]; !dup {
			byID[c.ChartID()] = c
		}
	}

	grouped := make(map[string]bool)
	nested := make([]model.ChartPayload, 0, len(groups))
	for _, def := range groups {
		data := make([]model.ChartPayload, 0)
		for _, id := range def.References() {
			grouped[id] = true
			c, ok := byID[id]
			if !ok {
				g.log.Warn("group references unknown chart",
					zap.String("group", def.ID),
					zap.String("chart", id),
					zap.String("geography", geo.Name),
				)
				continue
			}
			data = append(data, c)
		}
		nested = append(nested, model.GroupChart{ID: def.ID, Description: def.Description, Data: data})
	}

	out := make([]model.ChartPayload, 0, len(leaves)+len(nested))
	for _, c := range leaves {
		if !grouped[c.ChartID()] {
			out = append(out, c)
		}
	}
	for _, c := range nested {
		if !grouped[c.ChartID()] {
			out = append(out, c)
		}
	}
	return out
}
