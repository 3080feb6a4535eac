package market

import "math"

// Summarize computes the aggregate price view over normalized records.
// Ties are broken by first occurrence; an empty record set yields a zero
// summary carrying only the commodity label.
func Summarize(records []Record, commodity string) SummaryStats {
	stats := SummaryStats{Commodity: Capitalize(commodity)}
	if len(records) == 0 {
		return stats
	}

	var sum float64
	highest := records[0]
	lowest := records[0]
	for _, rec := range records {
		sum += rec.ModalPrice
		if rec.ModalPrice > highest.ModalPrice {
			highest = rec
		}
		if rec.ModalPrice < lowest.ModalPrice {
			lowest = rec
		}
	}

	stats.AveragePrice = round2(sum / float64(len(records)))
	stats.HighestPrice = highest.ModalPrice
	stats.HighestMarket = marketLabel(highest)
	stats.LowestPrice = lowest.ModalPrice
	stats.LowestMarket = marketLabel(lowest)
	return stats
}

func marketLabel(rec Record) string {
	return rec.Market + ", " + rec.State
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
