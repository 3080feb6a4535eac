package trade

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"strings"

	"github.com/hellosamyak/AgriPulse-backend/internal/domain/market"
	apperrors "github.com/hellosamyak/AgriPulse-backend/pkg/errors"
	"github.com/hellosamyak/AgriPulse-backend/pkg/metrics"
)

// quintalToTonne scales mandi Rs/quintal prices to Rs/tonne.
const quintalToTonne = 10

// DistanceClient resolves the shipping distance between two place names.
type DistanceClient interface {
	DistanceKM(ctx context.Context, origin, destination string) (float64, error)
}

// Config drives the logistics cost model.
type Config struct {
	DomesticRateMin      float64
	DomesticRateMax      float64
	InternationalRateMin float64
	InternationalRateMax float64
	DefaultDistanceKM    float64
	RecordLimit          int
}

// Service simulates the profitability of moving a commodity between two
// markets.
type Service interface {
	Simulate(ctx context.Context, in Input) (Result, error)
}

type service struct {
	cfg       Config
	markets   market.Source
	distance  DistanceClient
	collector *metrics.Collector
	logger    *slog.Logger
	rng       func() float64
}

// NewService wires up the trade simulation engine.
func NewService(cfg Config, markets market.Source, distance DistanceClient, collector *metrics.Collector, logger *slog.Logger) Service {
	if cfg.DefaultDistanceKM <= 0 {
		cfg.DefaultDistanceKM = 5000
	}
	if cfg.RecordLimit <= 0 {
		cfg.RecordLimit = 200
	}
	return &service{
		cfg:       cfg,
		markets:   markets,
		distance:  distance,
		collector: collector,
		logger:    logger.With("component", "trade.service"),
		rng:       rand.Float64,
	}
}

func (s *service) Simulate(ctx context.Context, in Input) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}

	buyPrice, sellPrice, err := s.resolvePrices(ctx, in)
	if err != nil {
		return Result{}, err
	}

	distanceKM := s.resolveDistance(ctx, in.Source, in.Destination)
	ratePerKM := s.ratePerKM(in.Mode)

	logistics := round2(ratePerKM * distanceKM)
	netProfit := round2((sellPrice-buyPrice)*in.QtyTonnes - logistics)
	roi := 0.0
	if buyPrice > 0 {
		roi = round2(netProfit / (buyPrice * in.QtyTonnes) * 100)
	}

	return Result{
		Mode:          string(in.Mode),
		Commodity:     market.Capitalize(in.Commodity),
		Source:        in.Source,
		Destination:   in.Destination,
		DistanceKM:    round2(distanceKM),
		BuyPrice:      round2(buyPrice),
		SellPrice:     round2(sellPrice),
		QtyTonnes:     in.QtyTonnes,
		LogisticsCost: logistics,
		NetProfit:     netProfit,
		ROIPercent:    roi,
		Profitable:    netProfit > 0,
	}, nil
}

func validate(in Input) error {
	if strings.TrimSpace(in.Commodity) == "" {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "commodity is required", nil)
	}
	if strings.TrimSpace(in.Source) == "" || strings.TrimSpace(in.Destination) == "" {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "source and destination are required", nil)
	}
	if in.QtyTonnes <= 0 {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "qty must be positive", nil)
	}
	if in.Mode != ModeDomestic && in.Mode != ModeInternational {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "mode must be domestic or international", nil)
	}
	return nil
}

func (s *service) resolvePrices(ctx context.Context, in Input) (buy, sell float64, err error) {
	if in.Mode == ModeInternational {
		buy, ok := lookupIntlPrice(in.Commodity, in.Source)
		if !ok {
			return 0, 0, apperrors.Wrap(apperrors.CodeNotFound, "no reference price for source region "+in.Source, nil)
		}
		sell, ok := lookupIntlPrice(in.Commodity, in.Destination)
		if !ok {
			return 0, 0, apperrors.Wrap(apperrors.CodeNotFound, "no reference price for destination region "+in.Destination, nil)
		}
		return buy, sell, nil
	}

	records := s.markets.CommodityRecords(ctx, in.Commodity, s.cfg.RecordLimit)
	buy, ok := domesticPrice(records, in.Source)
	if !ok {
		return 0, 0, apperrors.Wrap(apperrors.CodeNotFound, "no market price found for source "+in.Source, nil)
	}
	sell, ok = domesticPrice(records, in.Destination)
	if !ok {
		return 0, 0, apperrors.Wrap(apperrors.CodeNotFound, "no market price found for destination "+in.Destination, nil)
	}
	return buy, sell, nil
}

// domesticPrice resolves the first record whose market name contains the
// location, scaled from Rs/quintal to Rs/tonne.
func domesticPrice(records []market.Record, location string) (float64, bool) {
	needle := strings.ToLower(strings.TrimSpace(location))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Market), needle) {
			return rec.ModalPrice * quintalToTonne, true
		}
	}
	return 0, false
}

func (s *service) resolveDistance(ctx context.Context, source, destination string) float64 {
	km, err := s.distance.DistanceKM(ctx, source, destination)
	if err != nil || km <= 0 {
		s.logger.Warn("distance lookup failed, using route table", "source", source, "destination", destination, "error", err)
		s.collector.ExternalCall("distance", metrics.OutcomeFallback)
		return routeDistanceKM(source, destination, s.cfg.DefaultDistanceKM)
	}
	s.collector.ExternalCall("distance", metrics.OutcomeLive)
	return km
}

func (s *service) ratePerKM(mode Mode) float64 {
	lo, hi := s.cfg.DomesticRateMin, s.cfg.DomesticRateMax
	if mode == ModeInternational {
		lo, hi = s.cfg.InternationalRateMin, s.cfg.InternationalRateMax
	}
	return lo + s.rng()*(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
