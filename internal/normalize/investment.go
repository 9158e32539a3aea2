package normalize

import (
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/climatescope-data/internal/input"
	"github.com/sells-group/climatescope-data/internal/model"
	"github.com/sells-group/climatescope-data/internal/series"
)

// Investment series identifiers.
const (
	InvestmentID           = "investment"
	InvestmentSubindicator = "Investment"
)

// Investments sums investment records per geography and year inside the
// window. Every geography ends up with a point for every year seen anywhere
// in the window, zero where it had none. Geographies keep the order of
// their first record.
func Investments(raw []input.RawInvestment, window input.YearRange) []model.Series {
	log := zap.L().With(zap.String("component", "normalize.investment"))

	type accumulator struct {
		geography string
		byYear    map[int]float64
		years     []int
	}

	var order []*accumulator
	byGeo := make(map[string]*accumulator)
	seen := make(map[int]bool)

	for _, r := range raw {
		year, err := strconv.Atoi(strings.TrimSpace(r.Year))
		if err != nil || !inWindow(year, window) {
			continue
		}

		value, ok := series.ParseNumber(strings.ReplaceAll(r.Value, ",", "")).Float()
		if !ok {
			log.Debug("non-numeric investment counted as zero",
				zap.String("geography", r.Geography),
				zap.Int("year", year),
				zap.String("value", r.Value),
			)
		}

		acc, ok := byGeo[r.Geography]
		if !ok {
			acc = &accumulator{geography: r.Geography, byYear: make(map[int]float64)}
			byGeo[r.Geography] = acc
			order = append(order, acc)
		}
		if _, ok := acc.byYear[year]; !ok {
			acc.years = append(acc.years, year)
		}
		acc.byYear[year] += value
		seen[year] = true
	}

	required := make([]int, 0, len(seen))
	for y := range seen {
		required = append(required, y)
	}
	slices.Sort(required)

	out := make([]model.Series, 0, len(order))
	for _, acc := range order {
		points := make([]model.Point, 0, len(acc.years))
		for _, y := range acc.years {
			points = append(points, model.Point{Year: y, Value: model.Number(acc.byYear[y])})
		}
		out = append(out, model.Series{
			ID:           InvestmentID,
			Subindicator: InvestmentSubindicator,
			Geography:    acc.geography,
			Values:       series.FillMissingValues(points, required),
		})
	}
	return out
}
