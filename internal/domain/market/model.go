package market

// Record is one normalized mandi price observation. Records whose modal
// price cannot be parsed are dropped during normalization, so ModalPrice
// is always a finite value.
type Record struct {
	State       string   `json:"state"`
	District    string   `json:"district"`
	Market      string   `json:"market"`
	Commodity   string   `json:"commodity"`
	Variety     string   `json:"variety"`
	ArrivalDate string   `json:"arrival_date"`
	MinPrice    *float64 `json:"min_price"`
	MaxPrice    *float64 `json:"max_price"`
	ModalPrice  float64  `json:"modal_price"`
	Unit        string   `json:"unit"`
}

// SummaryStats is a read-only view over a record set.
type SummaryStats struct {
	Commodity     string  `json:"commodity"`
	AveragePrice  float64 `json:"average_price"`
	HighestPrice  float64 `json:"highest_price"`
	HighestMarket string  `json:"highest_market"`
	LowestPrice   float64 `json:"lowest_price"`
	LowestMarket  string  `json:"lowest_market"`
}

// ForecastPoint is one projected daily price.
type ForecastPoint struct {
	Date          string  `json:"date"`
	ForecastPrice float64 `json:"forecast_price"`
}
