// Package charts derives per-geography chart payloads from indicator series.
package charts

import (
	"go.uber.org/zap"

	"github.com/sells-group/climatescope-data/internal/model"
	"github.com/sells-group/climatescope-data/internal/series"
)

// Generator builds chart payloads for one geography at a time.
type Generator struct {
	defs       []model.ChartDefinition
	byGeo      map[string][]model.Series
	targetYear int
	log        *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithTargetYear reports single-value and average charts for year instead
// of the latest year with data. Zero keeps the latest.
func WithTargetYear(year int) Option {
	return func(g *Generator) { g.targetYear = year }
}

// New indexes indicators by geography name for the given definitions.
func New(defs []model.ChartDefinition, indicators []model.Series, opts ...Option) *Generator {
	g := &Generator{
		defs:  defs,
		byGeo: make(map[string][]model.Series),
		log:   zap.L().With(zap.String("component", "charts")),
	}
	for _, s := range indicators {
		g.byGeo[s.Geography] = append(g.byGeo[s.Geography], s)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Detail attaches chart payloads to every result.
func (g *Generator) Detail(results []model.Result) []model.DetailedResult {
	out := make([]model.DetailedResult, 0, len(results))
	for _, r := range results {
		out = append(out, model.DetailedResult{Result: r, Charts: g.Generate(r.Geography)})
	}
	return out
}

// Generate derives every chart for geo. Leaf charts come first in
// definition order, minus those claimed by a group; groups follow.
func (g *Generator) Generate(geo model.Geography) []model.ChartPayload {
	var leaves []model.ChartPayload
	var groups []model.ChartDefinition

	for _, def := range g.defs {
		switch def.Type {
		case model.ChartTimeSeries:
			leaves = append(leaves, g.timeSeries(geo, def))
		case model.ChartAnswer, model.ChartAbsolute, model.ChartPercent, model.ChartRange:
			leaves = append(leaves, g.singleValue(geo, def))
		case model.ChartAverage:
			leaves = append(leaves, g.average(geo, def))
		case model.ChartGroup:
			groups = append(groups, def)
		default:
			g.log.Warn("unsupported chart type", zap.String("chart", def.ID), zap.String("type", string(def.Type)))
		}
	}

	return g.group(geo, leaves, groups)
}

// timeSeries collects every series of the chart's indicator.
func (g *Generator) timeSeries(geo model.Geography, def model.ChartDefinition) model.TimeSeriesChart {
	data := make([]model.NamedSeries, 0)
	for _, s := range g.byGeo[geo.Name] {
		if s.ID != def.Indicator() {
			continue
		}
		data = append(data, model.NamedSeries{Name: s.Subindicator, Values: series.OrderByYear(s.Values)})
	}
	if len(data) == 0 {
		g.noData(def, geo)
	}

	return model.TimeSeriesChart{
		ID: def.ID,
		Meta: model.TimeSeriesMeta{
			LabelX: def.LabelX,
			LabelY: def.LabelY,
			Title:  def.Name,
		},
		Data: data,
	}
}

// singleValue reports one value of the series whose sub-indicator is the
// chart's indicator.
func (g *Generator) singleValue(geo model.Geography, def model.ChartDefinition) model.SingleValueChart {
	out := model.SingleValueChart{ID: def.ID}

	s, ok := g.find(geo, def.Indicator())
	if !ok {
		g.noData(def, geo)
		return out
	}

	if s.Note != "" {
		note := s.Note
		out.Note = &note
	}

	p, ok := series.Select(s.Values, g.targetYear)
	if !ok {
		return out
	}

	year := p.Year
	out.Year = &year
	out.Value = p.Value
	if f, isNum := p.Value.Float(); isNum {
		if def.Type == model.ChartPercent {
			f *= 100
		}
		out.Value = model.Number(series.Round2(f))
	}
	return out
}

// average is the mean of the selected values of every referenced
// sub-indicator. The reported year is that of the first contributing
// series, not the latest.
func (g *Generator) average(geo model.Geography, def model.ChartDefinition) model.SingleValueChart {
	out := model.SingleValueChart{ID: def.ID}

	refs := make(map[string]bool)
	for _, id := range def.References() {
		refs[id] = true
	}

	var picked []model.Point
	for _, s := range g.byGeo[geo.Name] {
		if !refs[s.Subindicator] {
			continue
		}
		p, ok := series.Select(s.Values, g.targetYear)
		if !ok {
			continue
		}
		if f, isNum := p.Value.Float(); !isNum || f == 0 {
			continue
		}
		picked = append(picked, p)
	}

	avg, ok := series.AverageValues(picked)
	if !ok {
		g.noData(def, geo)
		return out
	}

	year := picked[0].Year
	out.Year = &year
	out.Value = model.Number(avg)
	return out
}

// find returns the first series of geo with the given sub-indicator.
func (g *Generator) find(geo model.Geography, subindicator string) (model.Series, bool) {
	for _, s := range g.byGeo[geo.Name] {
		if s.Subindicator == subindicator {
			return s, true
		}
	}
	return model.Series{}, false
}

func (g *Generator) noData(def model.ChartDefinition, geo model.Geography) {
	g.log.Warn("no data",
		zap.String("subject", def.Title()),
		zap.String("chart", def.ID),
		zap.String("geography", geo.Name),
	)
}
