package main

import (
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/chat"
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/dashboard"
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/insight"
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/market"
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/terminal"
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/trade"
	"github.com/hellosamyak/AgriPulse-backend/internal/infra/config"
	"github.com/hellosamyak/AgriPulse-backend/internal/infra/distance/gmaps"
	"github.com/hellosamyak/AgriPulse-backend/internal/infra/llm/gemini"
	"github.com/hellosamyak/AgriPulse-backend/internal/infra/market/mandi"
	"github.com/hellosamyak/AgriPulse-backend/internal/infra/weather/weatherapi"
)

func provideMandiClient(cfg *config.Config) *mandi.Client {
	return mandi.NewClient(cfg.Mandi.APIKey, cfg.Mandi.ResourceURL)
}

func provideWeatherClient(cfg *config.Config) *weatherapi.Client {
	return weatherapi.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL)
}

func provideGeminiClient(cfg *config.Config) *gemini.Client {
	return gemini.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}

func provideDistanceClient(cfg *config.Config) *gmaps.Client {
	return gmaps.NewClient(cfg.Distance.APIKey, cfg.Distance.BaseURL)
}

func provideInsightConfig(cfg *config.Config) insight.Config {
	return insight.Config{
		Model:      cfg.LLM.InsightModel,
		Timeout:    cfg.LLM.Timeout.Std(),
		SampleSize: cfg.Terminal.InsightSampleSize,
	}
}

func provideTerminalConfig(cfg *config.Config) terminal.Config {
	return terminal.Config{
		DefaultCommodity:   cfg.Terminal.DefaultCommodity,
		DefaultLocation:    cfg.Terminal.DefaultLocation,
		DefaultHarvestDays: cfg.Terminal.DefaultHarvestDays,
		ForecastDays:       cfg.Terminal.ForecastDays,
		WeatherDays:        cfg.Weather.ForecastDays,
		RecordLimit:        cfg.Mandi.RecordLimit,
		ForecastMode:       market.ForecastMode(cfg.Terminal.ForecastMode),
	}
}

func provideDashboardConfig(cfg *config.Config) dashboard.Config {
	return dashboard.Config{
		SummaryModel:    cfg.LLM.Model,
		InsightModel:    cfg.LLM.InsightModel,
		Timeout:         cfg.LLM.Timeout.Std(),
		DefaultLocation: cfg.Terminal.DefaultLocation,
		WeatherDays:     cfg.Weather.ForecastDays,
	}
}

func provideTradeConfig(cfg *config.Config) trade.Config {
	return trade.Config{
		DomesticRateMin:      cfg.Trade.DomesticRateMin,
		DomesticRateMax:      cfg.Trade.DomesticRateMax,
		InternationalRateMin: cfg.Trade.InternationalRateMin,
		InternationalRateMax: cfg.Trade.InternationalRateMax,
		DefaultDistanceKM:    cfg.Trade.DefaultDistanceKM,
		RecordLimit:          cfg.Mandi.RecordLimit,
	}
}

func provideChatConfig(cfg *config.Config) chat.Config {
	return chat.Config{
		Model:   cfg.LLM.InsightModel,
		Timeout: cfg.LLM.Timeout.Std(),
	}
}
