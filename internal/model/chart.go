package model

import (
	"strings"

	"github.com/rotisserie/eris"
)

// ChartType selects how a chart is derived from indicator series.
type ChartType string

const (
	ChartAnswer     ChartType = "answer"
	ChartAverage    ChartType = "average"
	ChartPercent    ChartType = "percent"
	ChartRange      ChartType = "range"
	ChartTimeSeries ChartType = "timeSeries"
	ChartAbsolute   ChartType = "absolute"
	ChartGroup      ChartType = "group"
)

// ChartTypes lists every supported chart type.
func ChartTypes() []ChartType {
	return []ChartType{
		ChartAnswer,
		ChartAverage,
		ChartPercent,
		ChartRange,
		ChartTimeSeries,
		ChartAbsolute,
		ChartGroup,
	}
}

// ParseChartType converts a charts.csv type cell into a ChartType.
func ParseChartType(s string) (ChartType, error) {
	for _, t := range ChartTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", eris.Errorf("unknown chart type: %q", s)
}

// ChartDefinition is a normalized row of charts.csv. Empty cells are nil.
type ChartDefinition struct {
	ID             string    `json:"id"`
	IndicatorID    *string   `json:"indicatorId"`
	Name           *string   `json:"name"`
	Type           ChartType `json:"type"`
	Description    *string   `json:"description"`
	Topic          *string   `json:"topic"`
	LabelX         *string   `json:"labelX"`
	LabelY         *string   `json:"labelY"`
	Unit           *string   `json:"unit"`
	ApplicableGrid *string   `json:"applicable-grid"`
}

// Indicator returns the indicatorId cell, or "" when it was empty.
func (c ChartDefinition) Indicator() string {
	if c.IndicatorID == nil {
		return ""
	}
	return *c.IndicatorID
}

// Title returns the chart name, or "" when it was empty.
func (c ChartDefinition) Title() string {
	if c.Name == nil {
		return ""
	}
	return *c.Name
}

// References splits a group or average indicatorId into the ids it lists.
func (c ChartDefinition) References() []string {
	if c.IndicatorID == nil {
		return nil
	}
	return strings.Split(*c.IndicatorID, "|")
}

// AnswerOption is a permissible discrete value of an answer chart.
type AnswerOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ChartMeta is a chart definition joined with its answer options.
type ChartMeta struct {
	ChartDefinition
	Options []AnswerOption `json:"options"`
}

// ChartPayload is the per-geography output of one chart definition.
type ChartPayload interface {
	ChartID() string
}

// TimeSeriesChart carries every matching series for a geography.
type TimeSeriesChart struct {
	ID   string         `json:"id"`
	Meta TimeSeriesMeta `json:"meta"`
	Data []NamedSeries  `json:"data"`
}

// ChartID implements ChartPayload.
func (c TimeSeriesChart) ChartID() string { return c.ID }

// TimeSeriesMeta labels a time-series chart.
type TimeSeriesMeta struct {
	LabelX *string `json:"label-x"`
	LabelY *string `json:"label-y"`
	Title  *string `json:"title"`
}

// NamedSeries is one line of a time-series chart.
type NamedSeries struct {
	Name   string  `json:"name"`
	Values []Point `json:"values"`
}

// SingleValueChart is an answer, absolute, percent, range or average chart.
type SingleValueChart struct {
	ID    string  `json:"id"`
	Value Value   `json:"value"`
	Year  *int    `json:"year"`
	Note  *string `json:"note"`
}

// ChartID implements ChartPayload.
func (c SingleValueChart) ChartID() string { return c.ID }

// GroupChart nests the payloads of the charts it references.
type GroupChart struct {
	ID          string         `json:"id"`
	Description *string        `json:"description"`
	Data        []ChartPayload `json:"data"`
}

// ChartID implements ChartPayload.
func (c GroupChart) ChartID() string { return c.ID }
