// Package pipeline runs a full build: load, normalize, assemble, chart and write.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/climatescope-data/internal/charts"
	"github.com/sells-group/climatescope-data/internal/config"
	"github.com/sells-group/climatescope-data/internal/geo"
	"github.com/sells-group/climatescope-data/internal/input"
	"github.com/sells-group/climatescope-data/internal/model"
	"github.com/sells-group/climatescope-data/internal/normalize"
	"github.com/sells-group/climatescope-data/internal/output"
	"github.com/sells-group/climatescope-data/internal/results"
)

// Options configures a build.
type Options struct {
	InputDir  string
	OutputDir string
	// BBox overrides the boundary file, relative to InputDir unless absolute.
	BBox             string
	Year             int
	TargetYear       int
	WriteConcurrency int
}

// OptionsFromConfig maps application config onto build options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		InputDir:         cfg.Paths.Input,
		OutputDir:        cfg.Paths.Output,
		BBox:             cfg.Paths.BBox,
		Year:             cfg.Pipeline.Year,
		TargetYear:       cfg.Pipeline.TargetYear,
		WriteConcurrency: cfg.Pipeline.WriteConcurrency,
	}
}

// Summary describes a finished build.
type Summary struct {
	RunID       string
	Geographies int
	Series      int
	Charts      int
	Duration    time.Duration
}

// Pipeline runs builds for one set of options.
type Pipeline struct {
	opts   Options
	layout input.Layout
	writer *output.Writer
}

// New creates a Pipeline.
func New(opts Options) *Pipeline {
	return &Pipeline{
		opts:   opts,
		layout: input.Layout{Dir: opts.InputDir, Year: opts.Year, BBox: opts.BBox},
		writer: output.NewWriter(opts.OutputDir, opts.WriteConcurrency),
	}
}

// raw holds the contents of every input file.
type raw struct {
	geographies   []input.RawGeography
	regions       []input.RawRegion
	scores        []input.RawScore
	subindicators []input.RawSubindicator
	investments   []input.RawInvestment
	topics        []input.RawTopic
	charts        []input.RawChart
	answers       []input.RawAnswer
	ranges        input.Ranges
	boxes         map[string]model.BBox
}

// normalized holds the typed inputs of the assembly stages.
type normalized struct {
	geographies   []model.Geography
	scores        []model.ScoreRecord
	subindicators []model.Series
	investments   []model.Series
	topics        []model.Topic
	charts        []model.ChartDefinition
	answers       map[string][]model.AnswerOption
}

// Run executes the build. Nothing is written unless every stage before
// the write succeeds.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	runID := uuid.New().String()
	log := zap.L().With(zap.String("component", "pipeline"), zap.String("run_id", runID))
	log.Info("pipeline: starting build",
		zap.String("input", p.opts.InputDir),
		zap.String("output", p.opts.OutputDir),
		zap.Int("year", p.opts.Year),
		zap.Int("target_year", p.opts.TargetYear),
	)

	var in *raw
	if err := phase(log, "load", func() (err error) {
		in, err = p.load(ctx)
		return err
	}); err != nil {
		return nil, err
	}

	var n *normalized
	if err := phase(log, "normalize", func() (err error) {
		n, err = p.normalize(in)
		return err
	}); err != nil {
		return nil, err
	}

	var build output.Build
	step(log, "assemble", func() {
		build.Results = results.Assemble(n.geographies, n.scores, n.topics)
		build.Geographies = geo.Attach(n.geographies, in.boxes)
	})

	indicators := make([]model.Series, 0, len(n.subindicators)+len(n.investments))
	indicators = append(indicators, n.subindicators...)
	indicators = append(indicators, n.investments...)

	step(log, "charts", func() {
		gen := charts.New(n.charts, indicators, charts.WithTargetYear(p.opts.TargetYear))
		build.Detailed = gen.Detail(build.Results)
		build.ChartMeta = charts.Meta(n.charts, n.answers)
	})

	if err := phase(log, "write", func() error {
		return p.writer.Write(ctx, build)
	}); err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID:       runID,
		Geographies: len(n.geographies),
		Series:      len(indicators),
		Charts:      len(n.charts),
		Duration:    time.Since(start),
	}
	log.Info("pipeline: build complete",
		zap.Int("geographies", summary.Geographies),
		zap.Int("series", summary.Series),
		zap.Int("charts", summary.Charts),
		zap.Duration("duration", summary.Duration),
	)
	return summary, nil
}

// load resolves every input file up front, then reads them in parallel.
func (p *Pipeline) load(ctx context.Context) (*raw, error) {
	l := p.layout
	paths := make(map[string]string)
	for _, f := range []struct {
		name    string
		resolve func() (string, error)
	}{
		{"geographies", l.Geographies},
		{"regions", l.Regions},
		{"scores", l.Scores},
		{"subindicators", l.Subindicators},
		{"investments", l.Investments},
		{"topics", l.Topics},
		{"charts", l.Charts},
		{"bbox", l.BoundingBoxes},
	} {
		path, err := f.resolve()
		if err != nil {
			return nil, eris.Wrapf(err, "pipeline: resolve %s", f.name)
		}
		paths[f.name] = path
	}

	in := &raw{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		in.geographies, err = input.LoadGeographies(gctx, paths["geographies"])
		return err
	})
	g.Go(func() (err error) {
		in.regions, err = input.LoadRegions(gctx, paths["regions"])
		return err
	})
	g.Go(func() (err error) {
		in.scores, err = input.LoadScores(gctx, paths["scores"])
		return err
	})
	g.Go(func() (err error) {
		in.subindicators, err = input.LoadSubindicators(gctx, paths["subindicators"])
		return err
	})
	g.Go(func() (err error) {
		in.investments, err = input.LoadInvestments(gctx, paths["investments"])
		return err
	})
	g.Go(func() (err error) {
		in.topics, err = input.LoadTopics(gctx, paths["topics"])
		return err
	})
	g.Go(func() (err error) {
		in.charts, err = input.LoadCharts(gctx, paths["charts"])
		return err
	})
	g.Go(func() (err error) {
		path, ok := l.Answers()
		if !ok {
			zap.L().Warn("pipeline: no answers file, chart options will be empty", zap.String("dir", l.Dir))
			return nil
		}
		in.answers, err = input.LoadAnswers(gctx, path)
		return err
	})
	g.Go(func() (err error) {
		in.ranges, err = input.LoadRanges(l.Ranges())
		return err
	})
	g.Go(func() (err error) {
		in.boxes, err = geo.LoadBoundingBoxes(paths["bbox"])
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "pipeline: load")
	}
	return in, nil
}

// normalize runs the independent normalizers in parallel.
func (p *Pipeline) normalize(in *raw) (*normalized, error) {
	n := &normalized{}
	var g errgroup.Group

	g.Go(func() (err error) {
		n.geographies, err = normalize.Geographies(in.geographies, in.regions)
		return err
	})
	g.Go(func() error {
		n.scores = normalize.Scores(in.scores, p.opts.Year)
		return nil
	})
	g.Go(func() error {
		n.subindicators = normalize.Subindicators(in.subindicators, in.ranges.Subindicators)
		return nil
	})
	g.Go(func() error {
		n.investments = normalize.Investments(in.investments, in.ranges.Investments)
		return nil
	})
	g.Go(func() error {
		n.topics = normalize.Topics(in.topics)
		return nil
	})
	g.Go(func() (err error) {
		n.charts, err = normalize.Charts(in.charts)
		return err
	})
	g.Go(func() error {
		n.answers = normalize.Answers(in.answers)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "pipeline: normalize")
	}
	return n, nil
}

// phase runs fn and logs its outcome and duration.
func phase(log *zap.Logger, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	duration := time.Since(start).Milliseconds()

	if err != nil {
		log.Error("pipeline: phase failed",
			zap.String("phase", name),
			zap.Int64("duration_ms", duration),
			zap.Error(err),
		)
		return err
	}
	log.Debug("pipeline: phase complete",
		zap.String("phase", name),
		zap.Int64("duration_ms", duration),
	)
	return nil
}

// step runs a stage that cannot fail and logs its duration.
func step(log *zap.Logger, name string, fn func()) {
	start := time.Now()
	fn()
	log.Debug("pipeline: phase complete",
		zap.String("phase", name),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
}
