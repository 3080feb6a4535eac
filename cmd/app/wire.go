//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/hellosamyak/AgriPulse-backend/internal/bootstrap"
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
	httpiface "github.com/hellosamyak/AgriPulse-backend/internal/interface/http"
	"github.com/hellosamyak/AgriPulse-backend/pkg/logger"
	"github.com/hellosamyak/AgriPulse-backend/pkg/metrics"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		metrics.NewCollector,
		provideMandiClient,
		provideWeatherClient,
		provideGeminiClient,
		provideDistanceClient,
		provideInsightConfig,
		provideTerminalConfig,
		provideDashboardConfig,
		provideTradeConfig,
		provideChatConfig,
		market.NewSource,
		insight.NewService,
		terminal.NewService,
		dashboard.NewService,
		trade.NewService,
		chat.NewService,
		wire.Bind(new(market.MandiClient), new(*mandi.Client)),
		wire.Bind(new(terminal.WeatherClient), new(*weatherapi.Client)),
		wire.Bind(new(dashboard.WeatherClient), new(*weatherapi.Client)),
		wire.Bind(new(insight.GenerativeClient), new(*gemini.Client)),
		wire.Bind(new(dashboard.GenerativeClient), new(*gemini.Client)),
		wire.Bind(new(chat.GenerativeClient), new(*gemini.Client)),
		wire.Bind(new(trade.DistanceClient), new(*gmaps.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
