// Package normalize turns raw input records into typed domain values.
package normalize

import (
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/climatescope-data/internal/input"
	"github.com/sells-group/climatescope-data/internal/model"
)

// ErrUnresolvedRegion is returned when a geography names an unknown region.
var ErrUnresolvedRegion = eris.New("unresolved region")

// Geographies joins geographies with their region and derives the market
// classification. An unknown region id is fatal; an unexpected market
// grouping is only logged.
func Geographies(raw []input.RawGeography, regions []input.RawRegion) ([]model.Geography, error) {
	log := zap.L().With(zap.String("component", "normalize.geography"))

	byID := make(map[string]model.Region, len(regions))
	for _, r := range regions {
		if _, dup := byID[r.ID]; !dup {
			byID[r.ID] = model.Region{ID: r.ID, Name: r.Name}
		}
	}

	out := make([]model.Geography, 0, len(raw))
	for _, g := range raw {
		region, ok := byID[g.Region]
		if !ok {
			return nil, eris.Wrapf(ErrUnresolvedRegion, "normalize: geography %s references region %q", g.ID, g.Region)
		}

		grouping := strings.TrimSpace(g.MarketGrouping)
		if !validMarketGrouping(grouping) {
			log.Warn("invalid market grouping",
				zap.String("geography", g.Name),
				zap.String("market_grouping", g.MarketGrouping),
			)
		}

		out = append(out, model.Geography{
			ISO:    strings.ToLower(g.ID),
			Name:   g.Name,
			Grid:   g.Grid,
			Market: strings.TrimSpace(strings.ReplaceAll(grouping, "market", "")),
			Region: region,
		})
	}
	return out, nil
}

func validMarketGrouping(s string) bool {
	return s == model.MarketGroupingDeveloping || s == model.MarketGroupingDeveloped
}
