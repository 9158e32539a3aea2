package charts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/climatescope-data/internal/model"
)

func strPtr(s string) *string { return &s }

var uruguay = model.Geography{ISO: "uy", Name: "Uruguay", Grid: "off"}

func def(id, indicator string, t model.ChartType) model.ChartDefinition {
	return model.ChartDefinition{ID: id, IndicatorID: strPtr(indicator), Name: strPtr(id + " title"), Type: t}
}

func points(pairs ...any) []model.Point {
	var out []model.Point
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, model.Point{Year: pairs[i].(int), Value: pairs[i+1].(model.Value)})
	}
	return out
}

func indicators() []model.Series {
	return []model.Series{
		{ID: "price", Subindicator: "Wholesale", Geography: "Uruguay",
			Values: points(2018, model.Number(40), 2016, model.Number(50))},
		{ID: "price", Subindicator: "Retail", Geography: "Uruguay",
			Values: points(2016, model.Number(60))},
		{ID: "price", Subindicator: "Wholesale", Geography: "Chile",
			Values: points(2016, model.Number(1))},
		{ID: "share", Subindicator: "renewable-share", Geography: "Uruguay", Note: "estimate",
			Values: points(2016, model.Number(0.12346), 2017, model.Number(0.5), 2018, model.Null())},
		{ID: "policy", Subindicator: "auction-policy", Geography: "Uruguay",
			Values: points(2017, model.String("Yes"))},
		{ID: "cap", Subindicator: "capacity", Geography: "Uruguay",
			Values: points(2015, model.Number(10.555), 2016, model.Number(12.004))},
		{ID: "a", Subindicator: "a", Geography: "Uruguay", Values: points(2017, model.Number(25))},
		{ID: "b", Subindicator: "b", Geography: "Uruguay", Values: points(2019, model.Number(36))},
		{ID: "c", Subindicator: "c", Geography: "Uruguay", Values: points(2019, model.Null())},
	}
}

func TestTimeSeries(t *testing.T) {
	d := def("prices", "price", model.ChartTimeSeries)
	d.LabelX = strPtr("Year")
	g := New([]model.ChartDefinition{d}, indicators())

	got := g.Generate(uruguay)
	require.Len(t, got, 1)
	ts, ok := got[0].(model.TimeSeriesChart)
	require.True(t, ok)

	assert.Equal(t, "prices", ts.ID)
	assert.Equal(t, "Year", *ts.Meta.LabelX)
	assert.Nil(t, ts.Meta.LabelY)
	assert.Equal(t, "prices title", *ts.Meta.Title)
	require.Len(t, ts.Data, 2)
	assert.Equal(t, "Wholesale", ts.Data[0].Name)
	assert.Equal(t, points(2016, model.Number(50), 2018, model.Number(40)), ts.Data[0].Values)
	assert.Equal(t, "Retail", ts.Data[1].Name)
}

func TestTimeSeries_NoData(t *testing.T) {
	g := New([]model.ChartDefinition{def("prices", "missing", model.ChartTimeSeries)}, indicators())

	got := g.Generate(uruguay)
	require.Len(t, got, 1)

	data, err := json.Marshal(got[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"prices","meta":{"label-x":null,"label-y":null,"title":"prices title"},"data":[]}`, string(data))
}

func TestSingleValue_Latest(t *testing.T) {
	g := New([]model.ChartDefinition{def("cap", "capacity", model.ChartAbsolute)}, indicators())

	got := g.Generate(uruguay)
	require.Len(t, got, 1)
	sv := got[0].(model.SingleValueChart)
	assert.Equal(t, model.Number(12), sv.Value)
	require.NotNil(t, sv.Year)
	assert.Equal(t, 2016, *sv.Year)
	assert.Nil(t, sv.Note)
}

func TestSingleValue_PercentRoundsAndKeepsNote(t *testing.T) {
	g := New([]model.ChartDefinition{def("share", "renewable-share", model.ChartPercent)}, indicators())

	sv := g.Generate(uruguay)[0].(model.SingleValueChart)
	assert.InDelta(t, 50.0, sv.Value.Num, 1e-9)
	assert.Equal(t, 2017, *sv.Year)
	require.NotNil(t, sv.Note)
	assert.Equal(t, "estimate", *sv.Note)
}

func TestSingleValue_TargetYear(t *testing.T) {
	g := New([]model.ChartDefinition{def("share", "renewable-share", model.ChartPercent)}, indicators(), WithTargetYear(2016))

	sv := g.Generate(uruguay)[0].(model.SingleValueChart)
	assert.InDelta(t, 12.35, sv.Value.Num, 1e-9)
	assert.Equal(t, 2016, *sv.Year)
}

func TestSingleValue_TargetYearWithoutValue(t *testing.T) {
	g := New([]model.ChartDefinition{def("share", "renewable-share", model.ChartAnswer)}, indicators(), WithTargetYear(2018))

	sv := g.Generate(uruguay)[0].(model.SingleValueChart)
	assert.True(t, sv.Value.IsNull())
	assert.Nil(t, sv.Year)
	require.NotNil(t, sv.Note)
}

func TestSingleValue_StringAnswer(t *testing.T) {
	g := New([]model.ChartDefinition{def("policy", "auction-policy", model.ChartAnswer)}, indicators())

	sv := g.Generate(uruguay)[0].(model.SingleValueChart)
	assert.Equal(t, model.String("Yes"), sv.Value)
	assert.Equal(t, 2017, *sv.Year)
}

func TestSingleValue_NoData(t *testing.T) {
	g := New([]model.ChartDefinition{def("policy", "auction-policy", model.ChartAnswer)}, indicators())

	got := g.Generate(model.Geography{ISO: "cl", Name: "Chile"})
	data, err := json.Marshal(got[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"policy","value":null,"year":null,"note":null}`, string(data))
}

func TestAverage(t *testing.T) {
	g := New([]model.ChartDefinition{def("avg", "a|b|c", model.ChartAverage)}, indicators())

	sv := g.Generate(uruguay)[0].(model.SingleValueChart)
	assert.InDelta(t, 30.5, sv.Value.Num, 1e-9)
	// Year of the first contributing series, not the most recent one.
	assert.Equal(t, 2017, *sv.Year)
	assert.Nil(t, sv.Note)
}

func TestAverage_YearFromNumericSeries(t *testing.T) {
	series := []model.Series{
		{ID: "s", Subindicator: "s", Geography: "Uruguay", Values: points(2015, model.String("Yes"))},
		{ID: "n", Subindicator: "n", Geography: "Uruguay", Values: points(2019, model.Number(4))},
	}
	g := New([]model.ChartDefinition{def("avg", "s|n", model.ChartAverage)}, series)

	sv := g.Generate(uruguay)[0].(model.SingleValueChart)
	assert.Equal(t, model.Number(4), sv.Value)
	require.NotNil(t, sv.Year)
	assert.Equal(t, 2019, *sv.Year)
}

func TestAverage_OnlyStrings(t *testing.T) {
	series := []model.Series{
		{ID: "s", Subindicator: "s", Geography: "Uruguay", Values: points(2015, model.String("Yes"))},
	}
	g := New([]model.ChartDefinition{def("avg", "s", model.ChartAverage)}, series)

	sv := g.Generate(uruguay)[0].(model.SingleValueChart)
	assert.True(t, sv.Value.IsNull())
	assert.Nil(t, sv.Year)
}

func TestAverage_NoData(t *testing.T) {
	g := New([]model.ChartDefinition{def("avg", "c|zzz", model.ChartAverage)}, indicators())

	sv := g.Generate(uruguay)[0].(model.SingleValueChart)
	assert.True(t, sv.Value.IsNull())
	assert.Nil(t, sv.Year)
}

func TestDetail(t *testing.T) {
	g := New([]model.ChartDefinition{def("cap", "capacity", model.ChartAbsolute)}, indicators())

	got := g.Detail([]model.Result{{Geography: uruguay}})
	require.Len(t, got, 1)
	assert.Equal(t, uruguay, got[0].Geography)
	require.Len(t, got[0].Charts, 1)
	assert.Equal(t, "cap", got[0].Charts[0].ChartID())
}
