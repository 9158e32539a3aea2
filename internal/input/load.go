package input

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/climatescope-data/internal/reader"
)

// load reads path and checks its required columns.
func load(ctx context.Context, path string, required []string) (*reader.Table, error) {
	t, err := reader.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := t.Require(required...); err != nil {
		return nil, eris.Wrap(err, "input")
	}
	return t, nil
}

// LoadGeographies reads geographies.csv. The market column may be named
// market_grouping or market.
func LoadGeographies(ctx context.Context, path string) ([]RawGeography, error) {
	t, err := load(ctx, path, GeographyColumns)
	if err != nil {
		return nil, err
	}
	out := make([]RawGeography, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, RawGeography{
			ID:             t.Get(row, "id"),
			Name:           t.Get(row, "name"),
			Grid:           t.Get(row, "grid"),
			Region:         t.Get(row, "region"),
			MarketGrouping: t.First(row, "market_grouping", "market"),
		})
	}
	return out, nil
}

// LoadRegions reads regions.csv.
func LoadRegions(ctx context.Context, path string) ([]RawRegion, error) {
	t, err := load(ctx, path, RegionColumns)
	if err != nil {
		return nil, err
	}
	out := make([]RawRegion, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, RawRegion{
			ID:   t.Get(row, "id"),
			Name: t.Get(row, "name"),
		})
	}
	return out, nil
}

// LoadScores reads scores.csv.
func LoadScores(ctx context.Context, path string) ([]RawScore, error) {
	t, err := load(ctx, path, ScoreColumns)
	if err != nil {
		return nil, err
	}
	out := make([]RawScore, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, RawScore{
			Geography: t.Get(row, "geography"),
			Category:  t.Get(row, "category"),
			Rank:      t.Get(row, "rank"),
			Score:     t.Get(row, "score"),
		})
	}
	return out, nil
}

// LoadSubindicators reads subindicators.csv in its wide, one column per
// year, layout.
func LoadSubindicators(ctx context.Context, path string) ([]RawSubindicator, error) {
	t, err := load(ctx, path, SubindicatorColumns)
	if err != nil {
		return nil, err
	}
	out := make([]RawSubindicator, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, RawSubindicator{
			ID:           t.Get(row, "id"),
			Topic:        t.Get(row, "topic"),
			Category:     t.Get(row, "category"),
			Indicator:    t.Get(row, "indicator"),
			Subindicator: t.Get(row, "subindicator"),
			Units:        t.Get(row, "units"),
			Geography:    t.Get(row, "geography"),
			Note:         t.Get(row, "note"),
			Columns:      t.Record(row),
		})
	}
	return out, nil
}

// LoadInvestments reads investment.csv.
func LoadInvestments(ctx context.Context, path string) ([]RawInvestment, error) {
	t, err := load(ctx, path, InvestmentColumns)
	if err != nil {
		return nil, err
	}
	out := make([]RawInvestment, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, RawInvestment{
			Year:      t.Get(row, "year"),
			Sector:    t.Get(row, "sector"),
			Geography: t.Get(row, "geography"),
			Value:     t.Get(row, "value"),
		})
	}
	return out, nil
}

// LoadTopics reads topics.csv.
func LoadTopics(ctx context.Context, path string) ([]RawTopic, error) {
	t, err := load(ctx, path, TopicColumns)
	if err != nil {
		return nil, err
	}
	out := make([]RawTopic, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, RawTopic{
			ID:     t.Get(row, "id"),
			Name:   t.Get(row, "name"),
			Weight: t.Get(row, "weight"),
		})
	}
	return out, nil
}

// LoadCharts reads charts.csv.
func LoadCharts(ctx context.Context, path string) ([]RawChart, error) {
	t, err := load(ctx, path, ChartColumns)
	if err != nil {
		return nil, err
	}
	out := make([]RawChart, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, RawChart{
			ID:             t.Get(row, "id"),
			IndicatorID:    t.Get(row, "indicatorId"),
			Name:           t.Get(row, "name"),
			Type:           t.Get(row, "type"),
			Description:    t.Get(row, "description"),
			Topic:          t.Get(row, "topic"),
			LabelX:         t.Get(row, "labelX"),
			LabelY:         t.Get(row, "labelY"),
			Unit:           t.Get(row, "unit"),
			ApplicableGrid: t.Get(row, "applicable-grid"),
		})
	}
	return out, nil
}

// LoadAnswers reads answers.csv.
func LoadAnswers(ctx context.Context, path string) ([]RawAnswer, error) {
	t, err := load(ctx, path, AnswerColumns)
	if err != nil {
		return nil, err
	}
	out := make([]RawAnswer, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, RawAnswer{
			ID:        t.Get(row, "id"),
			Indicator: t.Get(row, "indicator"),
			Label:     t.Get(row, "label"),
		})
	}
	return out, nil
}
