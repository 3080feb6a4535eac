package terminal

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/hellosamyak/AgriPulse-backend/internal/domain/insight"
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/market"
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/weather"
	"github.com/hellosamyak/AgriPulse-backend/pkg/metrics"
)

// WeatherClient fetches the short-horizon forecast used for yield context.
type WeatherClient interface {
	Forecast(ctx context.Context, location string, days int) (weather.Snapshot, error)
}

// Config defines terminal defaults.
type Config struct {
	DefaultCommodity   string
	DefaultLocation    string
	DefaultHarvestDays int
	ForecastDays       int
	WeatherDays        int
	RecordLimit        int
	ForecastMode       market.ForecastMode
}

// Service assembles the market terminal aggregate.
type Service interface {
	Terminal(ctx context.Context, q Query) (Response, error)
}

type service struct {
	cfg       Config
	markets   market.Source
	weather   WeatherClient
	insights  insight.Service
	collector *metrics.Collector
	logger    *slog.Logger
	now       func() time.Time
	rng       *rand.Rand
}

// NewService wires up the terminal aggregate.
func NewService(cfg Config, markets market.Source, weatherClient WeatherClient, insights insight.Service, collector *metrics.Collector, logger *slog.Logger) Service {
	if cfg.DefaultCommodity == "" {
		cfg.DefaultCommodity = "wheat"
	}
	if cfg.DefaultLocation == "" {
		cfg.DefaultLocation = "Indore"
	}
	if cfg.DefaultHarvestDays <= 0 {
		cfg.DefaultHarvestDays = 53
	}
	if cfg.ForecastDays <= 0 {
		cfg.ForecastDays = market.DefaultHorizon
	}
	if cfg.WeatherDays <= 0 {
		cfg.WeatherDays = 7
	}
	if cfg.RecordLimit <= 0 {
		cfg.RecordLimit = 200
	}
	if cfg.ForecastMode == "" {
		cfg.ForecastMode = market.ModeTrend
	}
	return &service{
		cfg:       cfg,
		markets:   markets,
		weather:   weatherClient,
		insights:  insights,
		collector: collector,
		logger:    logger.With("component", "terminal.service"),
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *service) Terminal(ctx context.Context, q Query) (Response, error) {
	q = s.applyDefaults(q)

	records := s.markets.CommodityRecords(ctx, q.Commodity, q.Limit)
	summary := market.Summarize(records, q.Commodity)
	forecast := market.Forecast(records, s.cfg.ForecastDays, s.now(), s.cfg.ForecastMode, s.rng)
	snapshot := s.fetchWeather(ctx, q.Location)

	resolved := s.insights.Resolve(ctx, insight.Input{
		Commodity:   market.Capitalize(q.Commodity),
		Location:    q.Location,
		HarvestDays: q.HarvestDays,
		Records:     records,
		Summary:     summary,
		Forecast:    forecast,
		Weather:     snapshot,
	})
	s.logger.Info("terminal assembled", "commodity", q.Commodity, "records", len(records), "insight_source", resolved.Source)

	aiSummary := resolved.AISummary
	if aiSummary == "" {
		aiSummary = resolved.Reason
	}

	return Response{
		Timestamp:            s.now().Format("02 Jan 2006, 03:04 PM"),
		Commodity:            market.Capitalize(q.Commodity),
		Location:             q.Location,
		Summary:              summary,
		MarketData:           records,
		PriceForecast:        forecast,
		Recommendation:       resolved.Recommendation,
		YieldOutlook:         resolved.YieldOutlook,
		PriceForecastComment: resolved.PriceForecastComment,
		MarketSentiment:      resolved.MarketSentiment,
		OptimalMarket:        resolved.OptimalMarket,
		AISummary:            aiSummary,
		AIReason:             resolved.Reason,
	}, nil
}

func (s *service) applyDefaults(q Query) Query {
	if strings.TrimSpace(q.Commodity) == "" {
		q.Commodity = s.cfg.DefaultCommodity
	}
	if strings.TrimSpace(q.Location) == "" {
		q.Location = s.cfg.DefaultLocation
	}
	if q.Limit <= 0 {
		q.Limit = s.cfg.RecordLimit
	}
	if q.HarvestDays <= 0 {
		q.HarvestDays = s.cfg.DefaultHarvestDays
	}
	return q
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
