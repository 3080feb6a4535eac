package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hellosamyak/AgriPulse-backend/pkg/metrics"
)

// GenerativeClient submits a prompt to the external text-generation
// collaborator and returns its raw text.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, model, prompt string) (string, error)
}

// Config wires runtime dependencies for the insight resolver.
type Config struct {
	Model      string
	Timeout    time.Duration
	SampleSize int
}

// Service resolves structured advisory insights, substituting the
// deterministic fallback whenever the model path fails.
type Service interface {
	Resolve(ctx context.Context, in Input) Insight
}

type service struct {
	cfg       Config
	client    GenerativeClient
	collector *metrics.Collector
	logger    *slog.Logger
}

// NewService wires up the insight resolver.
func NewService(cfg Config, client GenerativeClient, collector *metrics.Collector, logger *slog.Logger) Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 12 * time.Second
	}
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = 30
	}
	return &service{
		cfg:       cfg,
		client:    client,
		collector: collector,
		logger:    logger.With("component", "insight.service"),
	}
}

// Resolve asks the model for a structured insight and returns the fallback
// on any call, parse or shape failure. It never returns an error.
func (s *service) Resolve(ctx context.Context, in Input) Insight {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	raw, err := s.client.GenerateContent(ctx, s.cfg.Model, s.buildPrompt(in))
	if err != nil {
		s.logger.Warn("insight model call failed, using fallback", "commodity", in.Commodity, "error", err)
		s.collector.ExternalCall("gemini_insight", metrics.OutcomeFallback)
		return Fallback(in)
	}

	parsed, err := parseInsight(raw)
	if err != nil {
		s.logger.Warn("insight model response malformed, using fallback", "commodity", in.Commodity, "error", err)
		s.collector.ExternalCall("gemini_insight", metrics.OutcomeFallback)
		return Fallback(in)
	}

	s.collector.ExternalCall("gemini_insight", metrics.OutcomeLive)
	parsed.Source = SourceModel
	return parsed
}

// parseInsight decodes the model text strictly as JSON and requires at
// least the recommendation key.
func parseInsight(raw string) (Insight, error) {
	sanitized := strings.TrimSpace(raw)
	sanitized = strings.TrimPrefix(sanitized, "```json")
	sanitized = strings.TrimSuffix(sanitized, "```")
	sanitized = strings.Trim(sanitized, "`")
	sanitized = strings.TrimSpace(strings.TrimPrefix(sanitized, "json"))

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(sanitized), &keys); err != nil {
		return Insight{}, fmt.Errorf("decode insight: %w", err)
	}
	if _, ok := keys["recommendation"]; !ok {
		return Insight{}, fmt.Errorf("insight missing recommendation key")
	}

	var out Insight
	if err := json.Unmarshal([]byte(sanitized), &out); err != nil {
		return Insight{}, fmt.Errorf("decode insight shape: %w", err)
	}
	return out, nil
}

func (s *service) buildPrompt(in Input) string {
	sample := in.Records
	if len(sample) > s.cfg.SampleSize {
		sample = sample[:s.cfg.SampleSize]
	}
	rows := make([]Quote, 0, len(sample))
	for _, rec := range sample {
		rows = append(rows, Quote{Market: rec.Market, State: rec.State, Price: rec.ModalPrice})
	}

	summaryJSON, _ := json.Marshal(in.Summary)
	forecastJSON, _ := json.Marshal(in.Forecast)
	weatherJSON, _ := json.Marshal(in.Weather)
	rowsJSON, _ := json.Marshal(rows)

	return fmt.Sprintf(`You are AgriPulse Market Intelligence. Return ONLY a valid JSON object (no explanation).

Context:
- Commodity: %s
- Location for weather context: %s
- Harvest readiness: in %d days
- Summary stats: %s
- Price forecast (next days): %s
- Weather (current + short forecast): %s
- Sample market rows: %s

Tasks:
1) Recommendation: choose one action from BUY / HOLD / SELL for the next 2 weeks. Return confidence (0-100) and a 1-2 sentence reason.
2) Nationwide yield outlook: estimate percent change vs last season (approx), and list 2-4 key factors influencing yield (weather, pests, input cost).
3) Price forecast comment: 1 sentence about near-term price drivers.
4) Market sentiment: overall (positive/neutral/negative) and two keywords.
5) Optimal markets: list top 5 sell_high (market,state,price) and top 5 buy_low (market,state,price).
6) Short ai_summary and a short "reason" field.

Return JSON structure exactly like:
{"recommendation":{"action":"HOLD","confidence":82,"reason":"..."},"yield_outlook":{"change_percent":"+1.3%%","factors":["...","..."]},"price_forecast_comment":"...","market_sentiment":{"overall":"positive","keywords":["k1","k2"]},"optimal_market":{"sell_high":[{"market":"X","state":"Y","price":123}],"buy_low":[]},"ai_summary":"short line","reason":"detailed reasoning (1-3 sentences)"}`,
		in.Commodity, in.Location, in.HarvestDays, summaryJSON, forecastJSON, weatherJSON, rowsJSON)
}
