package dashboard

import "github.com/hellosamyak/AgriPulse-backend/internal/domain/weather"

// Response is the farmer dashboard payload for one location.
type Response struct {
	Date         string           `json:"date"`
	Location     string           `json:"location"`
	Weather      weather.Snapshot `json:"weather"`
	MarketData   []PriceRow       `json:"market_data"`
	News         []NewsItem       `json:"news"`
	AISummary    string           `json:"ai_summary"`
	CropInsights []CropInsight    `json:"ai_crop_insights"`
}

// PriceRow is one simplified market quote shown on the dashboard.
type PriceRow struct {
	Commodity   string  `json:"commodity"`
	Market      string  `json:"market"`
	ModalPrice  float64 `json:"modal_price"`
	MaxPrice    float64 `json:"max_price"`
	MinPrice    float64 `json:"min_price"`
	ArrivalDate string  `json:"arrival_date"`
}

// NewsItem is one curated agriculture headline.
type NewsItem struct {
	Headline  string `json:"headline"`
	Summary   string `json:"summary"`
	Sentiment string `json:"sentiment"`
}

// CropInsight is one recommended crop with its reasoning.
type CropInsight struct {
	Crop               string   `json:"crop"`
	RecommendationType string   `json:"recommendation_type,omitempty"`
	Confidence         int      `json:"confidence"`
	Reason             []string `json:"reason"`
}
