package series

import (
	"slices"

	"github.com/sells-group/climatescope-data/internal/model"
)

// OrderByYear returns a copy of points sorted ascending by year. Points
// sharing a year keep their relative order.
func OrderByYear(points []model.Point) []model.Point {
	out := slices.Clone(points)
	slices.SortStableFunc(out, func(a, b model.Point) int {
		return a.Year - b.Year
	})
	return out
}

// LatestValue returns the non-null point with the highest year. ok is
// false when every value is null.
func LatestValue(points []model.Point) (model.Point, bool) {
	var latest model.Point
	found := false
	for _, p := range points {
		if p.Value.IsNull() {
			continue
		}
		if !found || p.Year > latest.Year {
			latest = p
			found = true
		}
	}
	return latest, found
}

// ValueAt returns the non-null point for year.
func ValueAt(points []model.Point, year int) (model.Point, bool) {
	for _, p := range points {
		if p.Year == year && !p.Value.IsNull() {
			return p, true
		}
	}
	return model.Point{}, false
}

// Select picks the point reported for a chart: the latest one when year is
// zero, otherwise the one for year.
func Select(points []model.Point, year int) (model.Point, bool) {
	if year == 0 {
		return LatestValue(points)
	}
	return ValueAt(points, year)
}

// FillMissingValues returns one point per required year, in the order of
// required. Years absent from points get a zero value.
func FillMissingValues(points []model.Point, required []int) []model.Point {
	byYear := make(map[int]model.Point, len(points))
	for _, p := range points {
		if _, ok := byYear[p.Year]; !ok {
			byYear[p.Year] = p
		}
	}

	out := make([]model.Point, 0, len(required))
	for _, y := range required {
		if p, ok := byYear[y]; ok {
			out = append(out, p)
			continue
		}
		out = append(out, model.Point{Year: y, Value: model.Number(0)})
	}
	return out
}

// AverageValues is the mean of the truthy numeric values in points. Zeros
// and nulls count neither toward the sum nor the divisor. ok is false when
// nothing qualifies.
func AverageValues(points []model.Point) (avg float64, ok bool) {
	var sum float64
	var n int
	for _, p := range points {
		f, isNum := p.Value.Float()
		if !isNum || f == 0 {
			continue
		}
		sum += f
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
