package input

import (
	"errors"
	"io/fs"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Default bounds of the valid year window.
const (
	DefaultMinYear = 2000
	DefaultMaxYear = 2099
)

// YearRange bounds the years kept from a dataset.
type YearRange struct {
	MinYear int `yaml:"minYear"`
	MaxYear int `yaml:"maxYear"`
}

// Ranges is config.yml: the year windows applied per dataset.
type Ranges struct {
	Investments   YearRange `yaml:"investments"`
	Subindicators YearRange `yaml:"subindicators"`
}

// DefaultRanges returns the windows used when config.yml is absent.
func DefaultRanges() Ranges {
	def := YearRange{MinYear: DefaultMinYear, MaxYear: DefaultMaxYear}
	return Ranges{Investments: def, Subindicators: def}
}

// LoadRanges reads config.yml at path. A missing file yields the defaults;
// bounds left out of the file take their default.
func LoadRanges(path string) (Ranges, error) {
	r := DefaultRanges()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return r, eris.Wrapf(err, "input: read ranges %s", path)
	}

	var parsed Ranges
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return r, eris.Wrapf(err, "input: parse ranges %s", path)
	}

	r.Investments = parsed.Investments.withDefaults()
	r.Subindicators = parsed.Subindicators.withDefaults()
	if err := r.Investments.validate("investments"); err != nil {
		return r, err
	}
	if err := r.Subindicators.validate("subindicators"); err != nil {
		return r, err
	}
	return r, nil
}

func (y YearRange) withDefaults() YearRange {
	if y.MinYear == 0 {
		y.MinYear = DefaultMinYear
	}
	if y.MaxYear == 0 {
		y.MaxYear = DefaultMaxYear
	}
	return y
}

func (y YearRange) validate(name string) error {
	if y.MinYear > y.MaxYear {
		return eris.Errorf("input: %s minYear %d is after maxYear %d", name, y.MinYear, y.MaxYear)
	}
	return nil
}
