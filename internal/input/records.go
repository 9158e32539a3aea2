package input

// Raw records, one type per input file. Fields hold the cells verbatim;
// typing and coercion happen in package normalize.

// RawGeography is a row of geographies.csv.
type RawGeography struct {
	ID             string
	Name           string
	Grid           string
	Region         string
	MarketGrouping string
}

// RawRegion is a row of regions.csv.
type RawRegion struct {
	ID   string
	Name string
}

// RawScore is a row of scores.csv.
type RawScore struct {
	Geography string
	Category  string
	Rank      string
	Score     string
}

// RawSubindicator is a row of subindicators.csv. Columns holds every cell
// of the row keyed by header, year columns included.
type RawSubindicator struct {
	ID           string
	Topic        string
	Category     string
	Indicator    string
	Subindicator string
	Units        string
	Geography    string
	Note         string
	Columns      map[string]string
}

// RawInvestment is a row of investment.csv.
type RawInvestment struct {
	Year      string
	Sector    string
	Geography string
	Value     string
}

// RawTopic is a row of topics.csv.
type RawTopic struct {
	ID     string
	Name   string
	Weight string
}

// RawChart is a row of charts.csv.
type RawChart struct {
	ID             string
	IndicatorID    string
	Name           string
	Type           string
	Description    string
	Topic          string
	LabelX         string
	LabelY         string
	Unit           string
	ApplicableGrid string
}

// RawAnswer is a row of answers.csv.
type RawAnswer struct {
	ID        string
	Indicator string
	Label     string
}

// Required headers per input file.
var (
	GeographyColumns    = []string{"id", "name", "grid", "region"}
	RegionColumns       = []string{"id", "name"}
	ScoreColumns        = []string{"geography", "category", "rank", "score"}
	SubindicatorColumns = []string{"id", "topic", "category", "indicator", "subindicator", "units", "geography", "note"}
	InvestmentColumns   = []string{"year", "geography", "value"}
	TopicColumns        = []string{"id", "name", "weight"}
	ChartColumns        = []string{"id", "indicatorId", "name", "type", "description", "labelX", "labelY"}
	AnswerColumns       = []string{"id", "indicator", "label"}
)
