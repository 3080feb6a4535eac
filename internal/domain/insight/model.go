package insight

import (
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/market"
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/weather"
)

// Input carries everything the resolver needs for one recommendation.
type Input struct {
	Commodity   string
	Location    string
	HarvestDays int
	Records     []market.Record
	Summary     market.SummaryStats
	Forecast    []market.ForecastPoint
	Weather     weather.Snapshot
}

// Insight is the structured advisory returned to the terminal. It is either
// fully model-supplied or fully fallback-supplied, never merged.
type Insight struct {
	Recommendation       Recommendation `json:"recommendation"`
	YieldOutlook         YieldOutlook   `json:"yield_outlook"`
	PriceForecastComment string         `json:"price_forecast_comment"`
	MarketSentiment      Sentiment      `json:"market_sentiment"`
	OptimalMarket        OptimalMarket  `json:"optimal_market"`
	AISummary            string         `json:"ai_summary"`
	Reason               string         `json:"reason"`
	Source               string         `json:"-"`
}

// Sources an Insight can come from.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// Recommendation is the BUY/HOLD/SELL call.
type Recommendation struct {
	Action     string `json:"action"`
	Confidence int    `json:"confidence"`
	Reason     string `json:"reason"`
}

// YieldOutlook estimates the season-over-season yield change.
type YieldOutlook struct {
	ChangePercent string   `json:"change_percent"`
	Factors       []string `json:"factors"`
}

// Sentiment summarizes overall market mood.
type Sentiment struct {
	Overall  string   `json:"overall"`
	Keywords []string `json:"keywords"`
}

// Quote is one market/price pair inside the optimal market lists.
type Quote struct {
	Market string  `json:"market"`
	State  string  `json:"state"`
	Price  float64 `json:"price"`
}

// OptimalMarket lists the best places to sell and to procure.
type OptimalMarket struct {
	SellHigh []Quote `json:"sell_high"`
	BuyLow   []Quote `json:"buy_low"`
}
