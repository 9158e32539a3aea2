// Package input resolves, reads and types the CSV inputs of a build.
package input

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/rotisserie/eris"
)

// ErrMissingFile is returned when none of a file's candidate paths exist.
var ErrMissingFile = eris.New("missing required input file")

// Layout locates input files under Dir. Per-edition files are looked up in
// the Year subdirectory first, then at the top level.
type Layout struct {
	Dir  string
	Year int
	// BBox overrides the bounding box file, relative to Dir unless absolute.
	BBox string
}

// Geographies returns the path of geographies.csv.
func (l Layout) Geographies() (string, error) { return l.resolve("geographies.csv") }

// Regions returns the path of regions.csv.
func (l Layout) Regions() (string, error) { return l.resolve("regions.csv") }

// Topics returns the path of topics.csv.
func (l Layout) Topics() (string, error) { return l.resolve("topics.csv") }

// Charts returns the path of the chart definitions.
func (l Layout) Charts() (string, error) {
	return l.resolve("charts.csv", filepath.Join("definitions", "charts.csv"))
}

// Answers returns the path of the answer options. ok is false when the
// file is absent, which is not an error.
func (l Layout) Answers() (path string, ok bool) {
	p, err := l.resolve("answers.csv", "chart-values.csv", filepath.Join("definitions", "answers.csv"))
	return p, err == nil
}

// Scores returns the path of the score edition.
func (l Layout) Scores() (string, error) {
	return l.resolve(l.edition("scores.csv"), "scores.csv")
}

// Subindicators returns the path of the sub-indicator edition.
func (l Layout) Subindicators() (string, error) {
	return l.resolve(l.edition("subindicators.csv"), "subindicators.csv")
}

// Investments returns the path of the investment edition.
func (l Layout) Investments() (string, error) {
	return l.resolve(l.edition("investment.csv"), "investments.csv", "investment.csv")
}

// Ranges returns the path of config.yml. It may not exist.
func (l Layout) Ranges() string { return filepath.Join(l.Dir, "config.yml") }

// BoundingBoxes returns the path of the bounding box file.
func (l Layout) BoundingBoxes() (string, error) {
	if l.BBox != "" {
		return l.resolve(l.BBox)
	}
	return l.resolve(filepath.Join("lib", "ne-110m_bbox.geojson"), "ne-110m_bbox.geojson")
}

func (l Layout) edition(name string) string {
	return filepath.Join(strconv.Itoa(l.Year), name)
}

// resolve returns the first candidate that exists on disk.
func (l Layout) resolve(candidates ...string) (string, error) {
	for _, c := range candidates {
		p := c
		if !filepath.IsAbs(p) {
			p = filepath.Join(l.Dir, c)
		}
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", eris.Wrapf(ErrMissingFile, "input: %s (in %s)", candidates[0], l.Dir)
}
