package insight

import "sort"

// Confidence levels and price thresholds of the heuristic recommendation.
const (
	sellThreshold  = 1.02
	buyThreshold   = 0.98
	sellConfidence = 80
	buyConfidence  = 75
	holdConfidence = 72
)

const optimalMarketSize = 5

// Fallback derives a deterministic insight from the same inputs the model
// would see. It never fails and makes no external calls.
func Fallback(in Input) Insight {
	reason := "Market stable, hold and monitor short-term demand."
	action := "HOLD"
	confidence := holdConfidence

	nextPrice := in.Summary.AveragePrice
	if len(in.Forecast) > 0 {
		nextPrice = in.Forecast[0].ForecastPrice
	}
	switch {
	case nextPrice > in.Summary.AveragePrice*sellThreshold:
		action = "SELL"
		confidence = sellConfidence
		reason = "Prices trending up, consider selling to lock gains."
	case nextPrice < in.Summary.AveragePrice*buyThreshold:
		action = "BUY"
		confidence = buyConfidence
		reason = "Prices slightly weaker, procurement opportunity."
	}

	return Insight{
		Recommendation: Recommendation{
			Action:     action,
			Confidence: confidence,
			Reason:     reason,
		},
		YieldOutlook: YieldOutlook{
			ChangePercent: "+0.0%",
			Factors:       yieldFactors(in),
		},
		PriceForecastComment: "Short-term moderate movement expected.",
		MarketSentiment: Sentiment{
			Overall:  "neutral",
			Keywords: []string{"market_stable"},
		},
		OptimalMarket: optimalMarkets(in),
		AISummary:     reason,
		Reason:        reason,
		Source:        SourceFallback,
	}
}

func yieldFactors(in Input) []string {
	var factors []string
	if in.Weather.Current.PrecipMM > 0 {
		factors = append(factors, "recent rainfall")
	}
	if in.Weather.Current.TempC > 34 {
		factors = append(factors, "high temperatures")
	}
	if len(factors) == 0 {
		factors = []string{"stable weather", "no major risks detected"}
	}
	return factors
}

func optimalMarkets(in Input) OptimalMarket {
	quotes := make([]Quote, 0, len(in.Records))
	for _, rec := range in.Records {
		quotes = append(quotes, Quote{Market: rec.Market, State: rec.State, Price: rec.ModalPrice})
	}

	sells := make([]Quote, len(quotes))
	copy(sells, quotes)
	sort.SliceStable(sells, func(i, j int) bool { return sells[i].Price > sells[j].Price })

	buys := make([]Quote, len(quotes))
	copy(buys, quotes)
	sort.SliceStable(buys, func(i, j int) bool { return buys[i].Price < buys[j].Price })

	return OptimalMarket{
		SellHigh: topQuotes(sells),
		BuyLow:   topQuotes(buys),
	}
}

func topQuotes(quotes []Quote) []Quote {
	if len(quotes) > optimalMarketSize {
		quotes = quotes[:optimalMarketSize]
	}
	return quotes
}
