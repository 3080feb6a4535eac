package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hellosamyak/AgriPulse-backend/internal/domain/market"
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/weather"
	"github.com/hellosamyak/AgriPulse-backend/pkg/metrics"
)

// GenerativeClient submits a prompt to the external text-generation
// collaborator and returns its raw text.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, model, prompt string) (string, error)
}

// WeatherClient fetches the dashboard weather card data.
type WeatherClient interface {
	Forecast(ctx context.Context, location string, days int) (weather.Snapshot, error)
}

// Config wires runtime dependencies for the dashboard domain.
type Config struct {
	SummaryModel    string
	InsightModel    string
	Timeout         time.Duration
	DefaultLocation string
	WeatherDays     int
	RecordLimit     int
}

// Service assembles the farmer dashboard aggregate.
type Service interface {
	Overview(ctx context.Context, location string) (Response, error)
}

type service struct {
	cfg       Config
	markets   market.Source
	weather   WeatherClient
	gen       GenerativeClient
	collector *metrics.Collector
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires up the dashboard aggregate.
func NewService(cfg Config, markets market.Source, weatherClient WeatherClient, gen GenerativeClient, collector *metrics.Collector, logger *slog.Logger) Service {
	if cfg.DefaultLocation == "" {
		cfg.DefaultLocation = "Indore"
	}
	if cfg.WeatherDays <= 0 {
		cfg.WeatherDays = 7
	}
	if cfg.RecordLimit <= 0 {
		cfg.RecordLimit = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 12 * time.Second
	}
	return &service{
		cfg:       cfg,
		markets:   markets,
		weather:   weatherClient,
		gen:       gen,
		collector: collector,
		logger:    logger.With("component", "dashboard.service"),
		now:       time.Now,
	}
}

func (s *service) Overview(ctx context.Context, location string) (Response, error) {
	if strings.TrimSpace(location) == "" {
		location = s.cfg.DefaultLocation
	}

	snapshot := s.fetchWeather(ctx, location)
	rows := toPriceRows(s.markets.MarketRecords(ctx, location, s.cfg.RecordLimit))
	news := staticNews

	return Response{
		Date:         s.now().Format("02 Jan 2006"),
		Location:     location,
		Weather:      snapshot,
		MarketData:   rows,
		News:         news,
		AISummary:    s.generateSummary(ctx, location, snapshot, rows, news),
		CropInsights: s.generateCropInsights(ctx, location, snapshot, rows),
	}, nil
}

func (s *service) fetchWeather(ctx context.Context, location string) weather.Snapshot {
	snapshot, err := s.weather.Forecast(ctx, location, s.cfg.WeatherDays)
	if err != nil {
		s.logger.Warn("weather fetch failed, using default snapshot", "location", location, "error", err)
		s.collector.ExternalCall("weather", metrics.OutcomeFallback)
		return weather.DefaultSnapshot(location)
	}
	s.collector.ExternalCall("weather", metrics.OutcomeLive)
	return snapshot
}

func toPriceRows(records []market.Record) []PriceRow {
	rows := make([]PriceRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, PriceRow{
			Commodity:   rec.Commodity,
			Market:      rec.Market,
			ModalPrice:  rec.ModalPrice,
			MaxPrice:    deref(rec.MaxPrice),
			MinPrice:    deref(rec.MinPrice),
			ArrivalDate: rec.ArrivalDate,
		})
	}
	return rows
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

const fallbackSummary = "Stable weather and moderate market trends this week. Monitor rain probability and wheat prices."

func (s *service) generateSummary(ctx context.Context, location string, snapshot weather.Snapshot, rows []PriceRow, news []NewsItem) string {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	sample := rows
	if len(sample) > 5 {
		sample = sample[:5]
	}
	weatherJSON, _ := json.Marshal(snapshot)
	marketJSON, _ := json.Marshal(sample)
	newsJSON, _ := json.Marshal(news)

	prompt := fmt.Sprintf(`You are AgriPulse AI — India's agriculture advisor.

Using this real data:
- Weather Forecast: %s
- Market Prices: %s
- News: %s

Summarize for farmers in %s:
1. Weather Outlook
2. Market Trends
3. Weekly Advisory

Keep it factual, under 120 words, and friendly.`, weatherJSON, marketJSON, newsJSON, location)

	text, err := s.gen.GenerateContent(ctx, s.cfg.SummaryModel, prompt)
	if err != nil {
		s.logger.Warn("summary model call failed, using fallback", "location", location, "error", err)
		s.collector.ExternalCall("gemini_summary", metrics.OutcomeFallback)
		return fallbackSummary
	}
	s.collector.ExternalCall("gemini_summary", metrics.OutcomeLive)
	return strings.TrimSpace(text)
}

func (s *service) generateCropInsights(ctx context.Context, location string, snapshot weather.Snapshot, rows []PriceRow) []CropInsight {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	sample := rows
	if len(sample) > 5 {
		sample = sample[:5]
	}
	weatherJSON, _ := json.Marshal(snapshot)
	marketJSON, _ := json.Marshal(sample)

	prompt := fmt.Sprintf(`You are AgriPulse AI, an agricultural intelligence system for precision crop decisioning.

Weather: %s
Mandi Prices: %s

Analyze the live data for %s and output the TOP 3 crops to plant or sell this week.
Output must be strictly valid JSON — no text outside JSON. Rank crops by confidence (0-100).
Return exactly a JSON array like:
[{"crop":"Soybean","recommendation_type":"plant","confidence":92,"reason":["- specific reason","- specific reason"]}]
Keep reasoning short, factual, and high signal (3-6 bullets per crop).`, weatherJSON, marketJSON, location)

	text, err := s.gen.GenerateContent(ctx, s.cfg.InsightModel, prompt)
	if err != nil {
		s.logger.Warn("crop insight model call failed, using fallback", "location", location, "error", err)
		s.collector.ExternalCall("gemini_crops", metrics.OutcomeFallback)
		return fallbackCropInsights()
	}

	insights, err := parseCropInsights(text)
	if err != nil {
		s.logger.Warn("crop insight response malformed, using fallback", "location", location, "error", err)
		s.collector.ExternalCall("gemini_crops", metrics.OutcomeFallback)
		return fallbackCropInsights()
	}
	s.collector.ExternalCall("gemini_crops", metrics.OutcomeLive)
	return insights
}

func parseCropInsights(raw string) ([]CropInsight, error) {
	sanitized := strings.TrimSpace(raw)
	sanitized = strings.TrimPrefix(sanitized, "```json")
	sanitized = strings.TrimSuffix(sanitized, "```")
	sanitized = strings.Trim(sanitized, "`")
	sanitized = strings.TrimSpace(strings.TrimPrefix(sanitized, "json"))

	var wire []struct {
		Crop               string          `json:"crop"`
		RecommendationType string          `json:"recommendation_type"`
		Confidence         int             `json:"confidence"`
		Reason             json.RawMessage `json:"reason"`
	}
	if err := json.Unmarshal([]byte(sanitized), &wire); err != nil {
		return nil, fmt.Errorf("decode crop insights: %w", err)
	}
	if len(wire) == 0 {
		return nil, fmt.Errorf("crop insights empty")
	}

	insights := make([]CropInsight, 0, len(wire))
	for _, w := range wire {
		reason, err := coerceStringArray(w.Reason)
		if err != nil {
			return nil, err
		}
		insights = append(insights, CropInsight{
			Crop:               w.Crop,
			RecommendationType: w.RecommendationType,
			Confidence:         w.Confidence,
			Reason:             reason,
		})
	}
	return insights, nil
}

func coerceStringArray(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	switch raw[0] {
	case '"':
		var single string
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, err
		}
		if strings.TrimSpace(single) == "" {
			return nil, nil
		}
		return []string{single}, nil
	case '[':
		var many []string
		if err := json.Unmarshal(raw, &many); err != nil {
			return nil, err
		}
		return many, nil
	default:
		return nil, fmt.Errorf("unsupported reason format")
	}
}

func fallbackCropInsights() []CropInsight {
	return []CropInsight{
		{Crop: "Soybean", Confidence: 90, Reason: []string{"Good demand and suitable humidity"}},
		{Crop: "Wheat", Confidence: 85, Reason: []string{"Stable prices and rising MSP"}},
		{Crop: "Maize", Confidence: 78, Reason: []string{"Good returns in dry conditions"}},
	}
}

var staticNews = []NewsItem{
	{
		Headline:  "Govt raises MSP for wheat by ₹150/quintal",
		Summary:   "Government increases wheat MSP to boost Rabi season earnings.",
		Sentiment: "positive",
	},
	{
		Headline:  "Rainfall expected in Northern India this weekend",
		Summary:   "IMD predicts moderate rain, farmers advised to delay sowing by 2 days.",
		Sentiment: "neutral",
	},
	{
		Headline:  "Soybean exports rise 8% amid global demand",
		Summary:   "Soybean prices surge as exports grow globally.",
		Sentiment: "positive",
	},
}
