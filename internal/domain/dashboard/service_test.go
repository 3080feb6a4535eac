package dashboard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hellosamyak/AgriPulse-backend/internal/domain/market"
	"github.com/hellosamyak/AgriPulse-backend/internal/domain/weather"
	"github.com/hellosamyak/AgriPulse-backend/pkg/metrics"
)

type stubMarketSource struct {
	records      []market.Record
	lastLocation string
}

func (s *stubMarketSource) CommodityRecords(context.Context, string, int) []market.Record {
	return s.records
}

func (s *stubMarketSource) MarketRecords(_ context.Context, location string, _ int) []market.Record {
	s.lastLocation = location
	return s.records
}

type stubWeatherClient struct {
	snapshot weather.Snapshot
	err      error
}

func (s *stubWeatherClient) Forecast(context.Context, string, int) (weather.Snapshot, error) {
	return s.snapshot, s.err
}

type stubGenClient struct {
	summaryText string
	cropText    string
	err         error
	models      []string
}

func (s *stubGenClient) GenerateContent(_ context.Context, model, _ string) (string, error) {
	s.models = append(s.models, model)
	if s.err != nil {
		return "", s.err
	}
	if len(s.models) == 1 {
		return s.summaryText, nil
	}
	return s.cropText, nil
}

func newDashboardService(t *testing.T, markets market.Source, wc WeatherClient, gen GenerativeClient) *service {
	t.Helper()
	collector, err := metrics.NewCollector()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := Config{SummaryModel: "gemini-2.0-flash", InsightModel: "gemini-2.5-flash"}
	svc := NewService(cfg, markets, wc, gen, collector, logger).(*service)
	svc.now = func() time.Time { return time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestOverviewLivePath(t *testing.T) {
	minP, maxP := 2200.0, 2450.0
	markets := &stubMarketSource{records: []market.Record{
		{Commodity: "Wheat", Market: "Indore", ModalPrice: 2350, MinPrice: &minP, MaxPrice: &maxP, ArrivalDate: "2026-08-14"},
	}}
	wc := &stubWeatherClient{snapshot: weather.DefaultSnapshot("Indore")}
	gen := &stubGenClient{
		summaryText: "A fine week for sowing.",
		cropText:    `[{"crop":"Soybean","recommendation_type":"plant","confidence":92,"reason":["- strong demand"]}]`,
	}
	svc := newDashboardService(t, markets, wc, gen)

	got, err := svc.Overview(context.Background(), "Indore")

	require.NoError(t, err)
	require.Equal(t, "15 Aug 2026", got.Date)
	require.Equal(t, "Indore", got.Location)
	require.Equal(t, "A fine week for sowing.", got.AISummary)
	require.Len(t, got.MarketData, 1)
	require.Equal(t, 2450.0, got.MarketData[0].MaxPrice)
	require.Equal(t, 2200.0, got.MarketData[0].MinPrice)
	require.Len(t, got.News, 3)
	require.Len(t, got.CropInsights, 1)
	require.Equal(t, "Soybean", got.CropInsights[0].Crop)
	require.Equal(t, []string{"gemini-2.0-flash", "gemini-2.5-flash"}, gen.models)
}

func TestOverviewDefaultsLocation(t *testing.T) {
	markets := &stubMarketSource{}
	svc := newDashboardService(t, markets, &stubWeatherClient{}, &stubGenClient{err: errors.New("down")})

	got, err := svc.Overview(context.Background(), "  ")

	require.NoError(t, err)
	require.Equal(t, "Indore", got.Location)
	require.Equal(t, "Indore", markets.lastLocation)
}

func TestOverviewFallbacksOnModelFailure(t *testing.T) {
	gen := &stubGenClient{err: errors.New("quota exhausted")}
	svc := newDashboardService(t, &stubMarketSource{}, &stubWeatherClient{}, gen)

	got, err := svc.Overview(context.Background(), "Indore")

	require.NoError(t, err)
	require.Equal(t, fallbackSummary, got.AISummary)
	require.Equal(t, fallbackCropInsights(), got.CropInsights)
}

func TestOverviewWeatherFallback(t *testing.T) {
	wc := &stubWeatherClient{err: errors.New("weather down")}
	svc := newDashboardService(t, &stubMarketSource{}, wc, &stubGenClient{err: errors.New("down")})

	got, err := svc.Overview(context.Background(), "Bhopal")

	require.NoError(t, err)
	require.Equal(t, weather.DefaultSnapshot("Bhopal"), got.Weather)
}

func TestParseCropInsights(t *testing.T) {
	fenced := "```json\n[{\"crop\":\"Wheat\",\"confidence\":80,\"reason\":[\"- msp up\"]}]\n```"

	insights, err := parseCropInsights(fenced)

	require.NoError(t, err)
	require.Len(t, insights, 1)
	require.Equal(t, "Wheat", insights[0].Crop)
	require.Equal(t, []string{"- msp up"}, insights[0].Reason)
}

func TestParseCropInsightsCoercesStringReason(t *testing.T) {
	insights, err := parseCropInsights(`[{"crop":"Maize","confidence":70,"reason":"dry spell ahead"}]`)

	require.NoError(t, err)
	require.Equal(t, []string{"dry spell ahead"}, insights[0].Reason)
}

func TestParseCropInsightsRejectsBadShapes(t *testing.T) {
	cases := []string{
		"not json at all",
		"[]",
		`{"crop":"Wheat"}`,
		`[{"crop":"Wheat","reason":42}]`,
	}
	for _, raw := range cases {
		_, err := parseCropInsights(raw)
		require.Error(t, err, "input %q", raw)
	}
}
