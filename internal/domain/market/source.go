package market

import (
	"context"
	"log/slog"
	"time"

	"github.com/hellosamyak/AgriPulse-backend/internal/infra/market/mandi"
	"github.com/hellosamyak/AgriPulse-backend/pkg/metrics"
)

// MandiClient fetches raw price records from the upstream provider.
type MandiClient interface {
	Fetch(ctx context.Context, q mandi.Query) ([]map[string]any, error)
}

// Source provides normalized records and never fails: upstream outages are
// absorbed by a synthetic record set.
type Source interface {
	CommodityRecords(ctx context.Context, commodity string, limit int) []Record
	MarketRecords(ctx context.Context, location string, limit int) []Record
}

type source struct {
	client    MandiClient
	collector *metrics.Collector
	logger    *slog.Logger
	now       func() time.Time
}

// NewSource wires up the mandi record source.
func NewSource(client MandiClient, collector *metrics.Collector, logger *slog.Logger) Source {
	return &source{
		client:    client,
		collector: collector,
		logger:    logger.With("component", "market.source"),
		now:       time.Now,
	}
}

func (s *source) CommodityRecords(ctx context.Context, commodity string, limit int) []Record {
	raw, err := s.client.Fetch(ctx, mandi.Query{Commodity: Capitalize(commodity), Limit: limit})
	if err != nil {
		s.logger.Warn("mandi fetch failed, using fallback records", "commodity", commodity, "error", err)
		s.collector.ExternalCall("mandi", metrics.OutcomeFallback)
		return fallbackCommodityRecords(commodity, s.now())
	}
	s.collector.ExternalCall("mandi", metrics.OutcomeLive)
	return Normalize(raw, commodity)
}

func (s *source) MarketRecords(ctx context.Context, location string, limit int) []Record {
	raw, err := s.client.Fetch(ctx, mandi.Query{Market: location, Limit: limit})
	if err != nil {
		s.logger.Warn("mandi fetch failed, using fallback records", "market", location, "error", err)
		s.collector.ExternalCall("mandi", metrics.OutcomeFallback)
		return fallbackMarketRecords(location)
	}
	s.collector.ExternalCall("mandi", metrics.OutcomeLive)
	return Normalize(raw, "")
}

// fallbackCommodityRecords mirrors the Agmarknet schema with one datapoint
// per reference market so downstream aggregation keeps working offline.
func fallbackCommodityRecords(commodity string, now time.Time) []Record {
	today := now.Format("2006-01-02")
	name := Capitalize(commodity)
	build := func(state, district, market string, minP, maxP, modal float64) Record {
		return Record{
			State:       state,
			District:    district,
			Market:      market,
			Commodity:   name,
			Variety:     "Common",
			ArrivalDate: today,
			MinPrice:    &minP,
			MaxPrice:    &maxP,
			ModalPrice:  modal,
			Unit:        defaultUnit,
		}
	}
	return []Record{
		build("Madhya Pradesh", "Indore", "Indore", 2200, 2450, 2350),
		build("Maharashtra", "Nagpur", "Nagpur", 2250, 2480, 2380),
		build("Rajasthan", "Jaipur", "Jaipur", 2100, 2350, 2220),
	}
}

// fallbackMarketRecords keeps the dashboard populated with one row per
// staple commodity at the requested market.
func fallbackMarketRecords(location string) []Record {
	build := func(commodity string, modal float64) Record {
		return Record{
			Market:     location,
			Commodity:  commodity,
			ModalPrice: modal,
			Unit:       defaultUnit,
		}
	}
	return []Record{
		build("Wheat", 2300),
		build("Soybean", 5200),
		build("Maize", 1850),
	}
}
