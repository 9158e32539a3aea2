package model

// Region is a row of the region lookup table.
type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Market classifications accepted in the market_grouping column.
const (
	MarketGroupingDeveloping = "developing market"
	MarketGroupingDeveloped  = "developed market"
)

// Geography is a country or market, keyed by lowercased ISO code.
type Geography struct {
	ISO    string `json:"iso"`
	Name   string `json:"name"`
	Grid   string `json:"grid"`
	Market string `json:"market"`
	Region Region `json:"region"`
}

// BBox is a [minX, minY, maxX, maxY] bounding box.
type BBox [4]float64

// GeographyOverview is a geography with its map extent.
type GeographyOverview struct {
	Geography
	BBox *BBox `json:"bbox"`
}
