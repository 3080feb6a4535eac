package terminal

import (
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/insight"
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/market"
)

// Query captures the parameters accepted by the market terminal.
type Query struct {
	Commodity   string
	Location    string
	Limit       int
	HarvestDays int
}

// Response is the aggregate terminal payload serialized to API consumers.
type Response struct {
	Timestamp            string                 `json:"timestamp"`
	Commodity            string                 `json:"commodity"`
	Location             string                 `json:"location"`
	Summary              market.SummaryStats    `json:"summary"`
	MarketData           []market.Record        `json:"market_data"`
	PriceForecast        []market.ForecastPoint `json:"price_forecast"`
	Recommendation       insight.Recommendation `json:"recommendation"`
	YieldOutlook         insight.YieldOutlook   `json:"yield_outlook"`
	PriceForecastComment string                 `json:"price_forecast_comment"`
	MarketSentiment      insight.Sentiment      `json:"market_sentiment"`
	OptimalMarket        insight.OptimalMarket  `json:"optimal_market"`
	AISummary            string                 `json:"ai_summary"`
	AIReason             string                 `json:"ai_reason"`
}
