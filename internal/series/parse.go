// Package series parses raw CSV cells and manipulates yearly observation series.
package series

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/sells-group/climatescope-data/internal/model"
)

// ParseValue coerces a raw cell. In order: an empty cell is null, a clean
// finite number is that number, a lone hyphen (whitespace allowed) is 0,
// and anything else is kept as the trimmed string.
func ParseValue(raw string) model.Value {
	if raw == "" {
		return model.Null()
	}
	if f, ok := parseFinite(raw); ok {
		return model.Number(f)
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "-" {
		return model.Number(0)
	}
	if trimmed == "" {
		return model.Null()
	}
	return model.String(trimmed)
}

// ParseNumber is ParseValue for numeric-only columns: text that is neither
// a number nor a hyphen is null.
func ParseNumber(raw string) model.Value {
	v := ParseValue(raw)
	if v.Kind == model.KindString {
		return model.Null()
	}
	return v
}

// parseFinite parses s, ignoring surrounding whitespace, and rejects
// infinities and NaN.
func parseFinite(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Years returns the keys whose numeric value lies strictly between 2000
// and 2100, sorted ascending as strings.
func Years(keys []string) []string {
	var years []string
	for _, k := range keys {
		f, ok := parseFinite(k)
		if !ok || f <= 2000 || f >= 2100 {
			continue
		}
		years = append(years, k)
	}
	slices.Sort(years)
	return years
}

// Round2 rounds f to two decimals, halves away from zero.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
