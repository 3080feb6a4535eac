package insight

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hellosamyak/AgriPulse-backend/internal/domain/market"
	"github.com/hellosamyak/AgriPulse-backend/pkg/metrics"
)

type stubGenClient struct {
	text   string
	err    error
	model  string
	prompt string
}

func (s *stubGenClient) GenerateContent(_ context.Context, model, prompt string) (string, error) {
	s.model = model
	s.prompt = prompt
	return s.text, s.err
}

func newTestService(t *testing.T, client GenerativeClient) Service {
	t.Helper()
	collector, err := metrics.NewCollector()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(Config{Model: "gemini-2.5-flash"}, client, collector, logger)
}

const validInsightJSON = `{
	"recommendation": {"action": "SELL", "confidence": 82, "reason": "Prices peaking."},
	"yield_outlook": {"change_percent": "+1.3%", "factors": ["good monsoon"]},
	"price_forecast_comment": "Firm demand into the festival season.",
	"market_sentiment": {"overall": "positive", "keywords": ["demand", "exports"]},
	"optimal_market": {"sell_high": [{"market": "Indore", "state": "MP", "price": 2400}], "buy_low": []},
	"ai_summary": "Sell into strength.",
	"reason": "Forecast exceeds average by a wide margin."
}`

func TestResolveModelPath(t *testing.T) {
	client := &stubGenClient{text: validInsightJSON}
	svc := newTestService(t, client)

	got := svc.Resolve(context.Background(), Input{Commodity: "Wheat", Location: "Indore", HarvestDays: 53})

	require.Equal(t, SourceModel, got.Source)
	require.Equal(t, "SELL", got.Recommendation.Action)
	require.Equal(t, 82, got.Recommendation.Confidence)
	require.Equal(t, "positive", got.MarketSentiment.Overall)
	require.Equal(t, "gemini-2.5-flash", client.model)
	require.Contains(t, client.prompt, "Wheat")
	require.Contains(t, client.prompt, "Indore")
}

func TestResolveStripsCodeFences(t *testing.T) {
	client := &stubGenClient{text: "```json\n" + validInsightJSON + "\n```"}
	svc := newTestService(t, client)

	got := svc.Resolve(context.Background(), Input{Commodity: "Wheat"})

	require.Equal(t, SourceModel, got.Source)
	require.Equal(t, "SELL", got.Recommendation.Action)
}

func TestResolveFallbackOnClientError(t *testing.T) {
	client := &stubGenClient{err: errors.New("quota exhausted")}
	svc := newTestService(t, client)
	in := Input{Commodity: "Wheat", Summary: market.SummaryStats{AveragePrice: 2000}}

	got := svc.Resolve(context.Background(), in)

	require.Equal(t, Fallback(in), got)
}

func TestResolveFallbackOnMalformedJSON(t *testing.T) {
	client := &stubGenClient{text: "the market looks bullish overall"}
	svc := newTestService(t, client)
	in := Input{Commodity: "Wheat"}

	got := svc.Resolve(context.Background(), in)

	require.Equal(t, Fallback(in), got)
}

func TestResolveFallbackOnMissingRecommendation(t *testing.T) {
	client := &stubGenClient{text: `{"ai_summary": "looks fine"}`}
	svc := newTestService(t, client)
	in := Input{Commodity: "Wheat"}

	got := svc.Resolve(context.Background(), in)

	require.Equal(t, SourceFallback, got.Source)
}

func TestBuildPromptCapsSampleRows(t *testing.T) {
	client := &stubGenClient{err: errors.New("skip")}
	collector, err := metrics.NewCollector()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(Config{Model: "m", SampleSize: 2}, client, collector, logger).(*service)

	records := []market.Record{
		{Market: "A", ModalPrice: 1},
		{Market: "B", ModalPrice: 2},
		{Market: "C", ModalPrice: 3},
	}
	prompt := svc.buildPrompt(Input{Records: records})

	require.Contains(t, prompt, `"market":"A"`)
	require.Contains(t, prompt, `"market":"B"`)
	require.NotContains(t, prompt, `"market":"C"`)
}

func TestParseInsightPlainFences(t *testing.T) {
	parsed, err := parseInsight("```\n" + validInsightJSON + "\n```")

	require.NoError(t, err)
	require.Equal(t, "SELL", parsed.Recommendation.Action)
}
