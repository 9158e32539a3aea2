package validate

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/climatescope-data/internal/geo"
	"github.com/sells-group/climatescope-data/internal/input"
	"github.com/sells-group/climatescope-data/internal/model"
	"github.com/sells-group/climatescope-data/internal/normalize"
	"github.com/sells-group/climatescope-data/internal/reader"
)

const weightTolerance = 1e-9

// Suite runs every input check against a layout.
type Suite struct {
	layout input.Layout
	rules  *validator.Validate
	log    *zap.Logger
}

// NewSuite creates a Suite for the input tree described by layout.
func NewSuite(layout input.Layout) *Suite {
	return &Suite{
		layout: layout,
		rules:  newRules(),
		log:    zap.L().With(zap.String("component", "validate")),
	}
}

// inputs holds whatever loaded cleanly; a nil slice means the file was
// missing or unreadable and has already been reported.
type inputs struct {
	geographies   []input.RawGeography
	regions       []input.RawRegion
	topics        []input.RawTopic
	charts        []input.RawChart
	answers       []input.RawAnswer
	subindicators []input.RawSubindicator
}

// Run loads each input file and checks it. Violations are collected, not
// returned as errors; the error is only set when ctx is done.
func (s *Suite) Run(ctx context.Context) (*Report, error) {
	r := &Report{}
	l := s.layout

	var in inputs
	in.geographies = load(ctx, r, "geographies.csv", l.Geographies, input.LoadGeographies)
	in.regions = load(ctx, r, "regions.csv", l.Regions, input.LoadRegions)
	in.topics = load(ctx, r, "topics.csv", l.Topics, input.LoadTopics)
	in.charts = load(ctx, r, "charts.csv", l.Charts, input.LoadCharts)
	in.answers = load(ctx, r, "answers.csv", answersPath(l), input.LoadAnswers)
	in.subindicators = load(ctx, r, "subindicators.csv", l.Subindicators, input.LoadSubindicators)
	load(ctx, r, "scores.csv", l.Scores, input.LoadScores)
	load(ctx, r, "investment.csv", l.Investments, input.LoadInvestments)

	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "validate: run")
	}

	s.checkGeographies(r, in)
	s.checkRegions(r, in)
	s.checkTopics(r, in)
	s.checkCharts(r, in)
	s.checkAnswers(r, in)
	s.checkBoundingBoxes(r, in)

	if _, err := input.LoadRanges(l.Ranges()); err != nil {
		r.addf("config.yml", CheckParse, "%v", err)
	}

	s.log.Info("validation complete",
		zap.String("dir", l.Dir),
		zap.Int("violations", len(r.Violations)),
	)
	return r, nil
}

// load resolves and reads one file, reporting absence, header and parse
// failures against name.
func load[T any](ctx context.Context, r *Report, name string, resolve func() (string, error), read func(context.Context, string) ([]T, error)) []T {
	path, err := resolve()
	if err != nil {
		r.addf(name, CheckExists, "%s does not exist", name)
		return nil
	}
	rows, err := read(ctx, path)
	switch {
	case err == nil:
		if rows == nil {
			rows = []T{}
		}
		return rows
	case errors.Is(err, reader.ErrMissingColumn):
		r.addf(name, CheckHeaders, "%v", err)
	case ctx.Err() == nil:
		r.addf(name, CheckParse, "%v", err)
	}
	return nil
}

func answersPath(l input.Layout) func() (string, error) {
	return func() (string, error) {
		p, ok := l.Answers()
		if !ok {
			return "", input.ErrMissingFile
		}
		return p, nil
	}
}

func (s *Suite) checkGeographies(r *Report, in inputs) {
	const file = "geographies.csv"
	seen := make(map[string]bool, len(in.geographies))
	for i, g := range in.geographies {
		s.checkRecord(r, file, i, geographyRecord{ID: g.ID, Name: g.Name, Grid: g.Grid, Region: g.Region})

		iso := strings.ToLower(g.ID)
		if iso != "" && seen[iso] {
			r.addf(file, CheckRecord, "line %d: duplicate id %q", i+2, g.ID)
		}
		seen[iso] = true
	}

	if in.geographies == nil || in.regions == nil {
		return
	}
	known := make(map[string]bool, len(in.regions))
	for _, reg := range in.regions {
		known[reg.ID] = true
	}
	for i, g := range in.geographies {
		if g.Region != "" && !known[g.Region] {
			r.addf(file, CheckRegions, "line %d: region %q of %s is not in regions.csv", i+2, g.Region, g.Name)
		}
	}
}

func (s *Suite) checkRegions(r *Report, in inputs) {
	for i, reg := range in.regions {
		s.checkRecord(r, "regions.csv", i, regionRecord(reg))
	}
}

func (s *Suite) checkTopics(r *Report, in inputs) {
	const file = "topics.csv"
	valid := true
	for i, t := range in.topics {
		before := len(r.Violations)
		s.checkRecord(r, file, i, topicRecord(t))
		valid = valid && len(r.Violations) == before
	}
	if !valid || len(in.topics) == 0 {
		return
	}

	var sum float64
	for _, t := range normalize.Topics(in.topics) {
		sum += t.Weight
	}
	if math.Abs(sum-1) > weightTolerance {
		r.addf(file, CheckWeights, "topic weights sum to %g, want 1", sum)
	}
}

func (s *Suite) checkCharts(r *Report, in inputs) {
	const file = "charts.csv"
	ids := make(map[string]bool, len(in.charts))
	for i, c := range in.charts {
		s.checkRecord(r, file, i, chartRecord{ID: c.ID, Type: c.Type, ApplicableGrid: c.ApplicableGrid})
		if c.Type != string(model.ChartGroup) {
			ids[c.ID] = true
		}
	}

	var subindicators map[string]bool
	if in.subindicators != nil {
		subindicators = map[string]bool{normalize.InvestmentSubindicator: true}
		for _, si := range in.subindicators {
			subindicators[si.Subindicator] = true
		}
	}

	for i, c := range in.charts {
		def := model.ChartDefinition{ID: c.ID, IndicatorID: &c.IndicatorID}
		switch model.ChartType(c.Type) {
		case model.ChartGroup:
			for _, ref := range def.References() {
				if !ids[ref] {
					r.addf(file, CheckReferences, "line %d: group %s references unknown chart %q", i+2, c.ID, ref)
				}
			}
		case model.ChartAverage:
			if subindicators == nil {
				continue
			}
			for _, ref := range def.References() {
				if !subindicators[ref] {
					r.addf(file, CheckReferences, "line %d: average %s references unknown sub-indicator %q", i+2, c.ID, ref)
				}
			}
		}
	}
}

func (s *Suite) checkAnswers(r *Report, in inputs) {
	const file = "answers.csv"
	if in.answers == nil {
		return
	}
	covered := make(map[string]bool)
	for i, a := range in.answers {
		s.checkRecord(r, file, i, answerRecord(a))
		covered[a.Indicator] = true
	}
	for _, c := range in.charts {
		if c.Type == string(model.ChartAnswer) && !covered[c.IndicatorID] {
			r.addf(file, CheckAnswers, "indicator %q is used by answer chart %s but has no options", c.IndicatorID, c.ID)
		}
	}
}

func (s *Suite) checkBoundingBoxes(r *Report, in inputs) {
	path, err := s.layout.BoundingBoxes()
	if err != nil {
		r.addf("ne-110m_bbox.geojson", CheckExists, "bounding box file does not exist")
		return
	}
	file := filepath.Base(path)

	boxes, err := geo.LoadBoundingBoxes(path)
	if err != nil {
		r.addf(file, CheckParse, "%v", err)
		return
	}
	for _, g := range in.geographies {
		iso := strings.ToLower(g.ID)
		if _, ok := boxes[iso]; !ok {
			r.addf(file, CheckBoundingBox, "no feature with %s %q for %s", geo.ISOProperty, g.ID, g.Name)
		}
	}
}
