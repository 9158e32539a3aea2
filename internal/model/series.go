package model

// Series is an ordered run of yearly observations for one geography and
// sub-indicator. Sub-indicator rows and aggregated investments share it.
type Series struct {
	ID           string  `json:"id"`
	Topic        string  `json:"topic,omitempty"`
	Category     string  `json:"category,omitempty"`
	Indicator    string  `json:"indicator,omitempty"`
	Subindicator string  `json:"subindicator"`
	Geography    string  `json:"geography"`
	Units        string  `json:"units,omitempty"`
	Note         string  `json:"note,omitempty"`
	Values       []Point `json:"values"`
}
