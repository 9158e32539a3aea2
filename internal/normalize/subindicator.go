package normalize

import (
	"maps"
	"slices"
	"strconv"

	"github.com/sells-group/climatescope-data/internal/input"
	"github.com/sells-group/climatescope-data/internal/model"
	"github.com/sells-group/climatescope-data/internal/series"
)

// Subindicators reshapes wide sub-indicator rows, one column per year, into
// series restricted to the configured window.
func Subindicators(raw []input.RawSubindicator, window input.YearRange) []model.Series {
	out := make([]model.Series, 0, len(raw))
	for _, r := range raw {
		years := series.Years(slices.Collect(maps.Keys(r.Columns)))

		values := make([]model.Point, 0, len(years))
		for _, y := range years {
			year, err := strconv.Atoi(y)
			if err != nil || !inWindow(year, window) {
				continue
			}
			values = append(values, model.Point{Year: year, Value: series.ParseValue(r.Columns[y])})
		}

		out = append(out, model.Series{
			ID:           r.ID,
			Topic:        r.Topic,
			Category:     r.Category,
			Indicator:    r.Indicator,
			Subindicator: r.Subindicator,
			Geography:    r.Geography,
			Units:        r.Units,
			Note:         r.Note,
			Values:       series.OrderByYear(values),
		})
	}
	return out
}

// inWindow reports whether minYear < year <= maxYear.
func inWindow(year int, window input.YearRange) bool {
	return year > window.MinYear && year <= window.MaxYear
}
