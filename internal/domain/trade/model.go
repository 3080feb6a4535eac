package trade

// Mode selects where buy/sell prices are resolved from.
type Mode string

const (
	// ModeDomestic prices both ends from live mandi records.
	ModeDomestic Mode = "domestic"
	// ModeInternational prices both ends from the reference dataset.
	ModeInternational Mode = "international"
)

// Input describes one simulated shipment.
type Input struct {
	Commodity   string
	Source      string
	Destination string
	QtyTonnes   float64
	Mode        Mode
}

// Result is the simulated profit and loss breakdown.
type Result struct {
	Mode          string  `json:"mode"`
	Commodity     string  `json:"commodity"`
	Source        string  `json:"source"`
	Destination   string  `json:"destination"`
	DistanceKM    float64 `json:"distance_km"`
	BuyPrice      float64 `json:"buy_price"`
	SellPrice     float64 `json:"sell_price"`
	QtyTonnes     float64 `json:"qty_tonnes"`
	LogisticsCost float64 `json:"logistics_cost"`
	NetProfit     float64 `json:"net_profit"`
	ROIPercent    float64 `json:"roi_percent"`
	Profitable    bool    `json:"profitable"`
}
