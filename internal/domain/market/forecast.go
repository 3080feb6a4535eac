package market

import (
	"math/rand"
	"sort"
	"strings"
	"time"
)

// ForecastMode selects how daily projections are produced.
type ForecastMode string

const (
	// ModeTrend extrapolates a linear daily trend from dated records.
	ModeTrend ForecastMode = "trend"
	// ModeJitter scatters points around the median baseline instead.
	ModeJitter ForecastMode = "jitter"
)

// DefaultHorizon is the forecast length used when none is requested.
const DefaultHorizon = 7

// jitterBand bounds ModeJitter deviation to ±2% of the baseline.
const jitterBand = 0.02

// Forecast projects daily prices for the given horizon starting the day
// after now. The rng is only consulted in ModeJitter and must be non-nil
// there so tests stay deterministic.
func Forecast(records []Record, horizon int, now time.Time, mode ForecastMode, rng *rand.Rand) []ForecastPoint {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}

	prices := make([]float64, 0, len(records))
	for _, rec := range records {
		prices = append(prices, rec.ModalPrice)
	}
	baseline := median(prices)
	trend := trendPerDay(records, prices)

	today := now.UTC().Truncate(24 * time.Hour)
	points := make([]ForecastPoint, 0, horizon)
	for i := 1; i <= horizon; i++ {
		price := baseline + trend*float64(i)
		if mode == ModeJitter {
			price = baseline * (1 + (rng.Float64()*2-1)*jitterBand)
		}
		points = append(points, ForecastPoint{
			Date:          today.AddDate(0, 0, i).Format("2006-01-02"),
			ForecastPrice: round2(price),
		})
	}
	return points
}

// trendPerDay derives the linear daily trend from the earliest and latest
// dated records, falling back to a (max-min)/70 spread estimate when fewer
// than two records carry a parsable arrival date.
func trendPerDay(records []Record, prices []float64) float64 {
	type datedPrice struct {
		date  time.Time
		price float64
	}
	dated := make([]datedPrice, 0, len(records))
	for _, rec := range records {
		if ts, ok := parseArrivalDate(rec.ArrivalDate); ok {
			dated = append(dated, datedPrice{date: ts, price: rec.ModalPrice})
		}
	}

	if len(dated) >= 2 {
		sort.SliceStable(dated, func(i, j int) bool { return dated[i].date.Before(dated[j].date) })
		first, last := dated[0], dated[len(dated)-1]
		span := last.date.Sub(first.date).Hours() / 24
		if span < 1 {
			span = 1
		}
		return (last.price - first.price) / span
	}

	if len(prices) >= 2 {
		minP, maxP := prices[0], prices[0]
		for _, p := range prices[1:] {
			if p < minP {
				minP = p
			}
			if p > maxP {
				maxP = p
			}
		}
		return (maxP - minP) / 70
	}

	return 0
}

var arrivalLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006", "2006/01/02"}

func parseArrivalDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range arrivalLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	// Tolerate an ISO datetime by keeping only the date prefix.
	if prefix, _, found := strings.Cut(s, "T"); found {
		if ts, err := time.Parse("2006-01-02", prefix); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func median(prices []float64) float64 {
	if len(prices) == 0 {
		return 0
	}
	sorted := make([]float64, len(prices))
	copy(sorted, prices)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
