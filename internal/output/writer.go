// Package output serializes a build into the output directory.
package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/climatescope-data/internal/model"
)

// File names written at the top of the output directory.
const (
	GeographiesFile = "geographies.json"
	ResultsFile     = "results.json"
	ChartMetaFile   = "chart-meta.json"
	ResultsDir      = "results"
)

const defaultConcurrency = 8

// Writer writes JSON documents under Dir.
type Writer struct {
	dir         string
	concurrency int
	log         *zap.Logger
}

// NewWriter creates a Writer for dir. concurrency bounds parallel
// per-geography writes; values below 1 use the default.
func NewWriter(dir string, concurrency int) *Writer {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &Writer{
		dir:         dir,
		concurrency: concurrency,
		log:         zap.L().With(zap.String("component", "output")),
	}
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Reset empties the output directory and recreates it with its results
// subdirectory.
func (w *Writer) Reset() error {
	clean := filepath.Clean(w.dir)
	if clean == "." || clean == string(filepath.Separator) {
		return eris.Errorf("output: refusing to reset %q", w.dir)
	}
	if err := os.RemoveAll(clean); err != nil {
		return eris.Wrapf(err, "output: remove %s", clean)
	}
	if err := os.MkdirAll(filepath.Join(clean, ResultsDir), 0o755); err != nil {
		return eris.Wrapf(err, "output: create %s", clean)
	}
	return nil
}

// WriteJSON encodes v to name, relative to the output directory.
func (w *Writer) WriteJSON(name string, v any) error {
	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "output: create %s", path)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.Close() //nolint:errcheck
		return eris.Wrapf(err, "output: encode %s", path)
	}
	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "output: close %s", path)
	}
	return nil
}

// WriteResults writes one results/<iso>.json per geography in parallel.
// The first failure cancels the remaining writes and is returned.
func (w *Writer) WriteResults(ctx context.Context, results []model.DetailedResult) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)

	for _, r := range results {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return w.WriteJSON(filepath.Join(ResultsDir, r.ISO+".json"), r)
		})
	}

	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "output: write results")
	}
	w.log.Debug("wrote results", zap.Int("count", len(results)))
	return nil
}

// Build is the full set of documents produced by a run.
type Build struct {
	Geographies []model.GeographyOverview
	Results     []model.Result
	Detailed    []model.DetailedResult
	ChartMeta   []model.ChartMeta
}

// Write resets the output directory and writes every document of b.
func (w *Writer) Write(ctx context.Context, b Build) error {
	if err := w.Reset(); err != nil {
		return err
	}

	docs := []struct {
		name string
		v    any
	}{
		{GeographiesFile, b.Geographies},
		{ResultsFile, b.Results},
		{ChartMetaFile, b.ChartMeta},
	}
	for _, d := range docs {
		if err := w.WriteJSON(d.name, d.v); err != nil {
			return err
		}
	}

	if err := w.WriteResults(ctx, b.Detailed); err != nil {
		return err
	}

	w.log.Info("output written",
		zap.String("dir", w.dir),
		zap.Int("geographies", len(b.Geographies)),
		zap.Int("charts", len(b.ChartMeta)),
	)
	return nil
}
