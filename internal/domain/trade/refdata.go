package trade

import (
	_ "embed"
	"encoding/csv"
	"strconv"
	"strings"
	"sync"
)

//go:embed intl_prices.csv
var intlPricesCSV string

// intlPrice is one row of the international reference dataset.
type intlPrice struct {
	commodity     string
	region        string
	pricePerTonne float64
}

var (
	intlPricesOnce sync.Once
	intlPrices     []intlPrice
)

// internationalPrices loads the embedded dataset once. Safe for concurrent
// reads afterwards; rows are never mutated.
func internationalPrices() []intlPrice {
	intlPricesOnce.Do(func() {
		reader := csv.NewReader(strings.NewReader(intlPricesCSV))
		rows, err := reader.ReadAll()
		if err != nil || len(rows) < 2 {
			return
		}
		for _, row := range rows[1:] {
			if len(row) != 3 {
				continue
			}
			price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
			if err != nil {
				continue
			}
			intlPrices = append(intlPrices, intlPrice{
				commodity:     strings.TrimSpace(row[0]),
				region:        strings.TrimSpace(row[1]),
				pricePerTonne: price,
			})
		}
	})
	return intlPrices
}

// lookupIntlPrice matches by exact commodity (case-insensitive) and
// substring region match.
func lookupIntlPrice(commodity, region string) (float64, bool) {
	region = strings.ToLower(strings.TrimSpace(region))
	for _, row := range internationalPrices() {
		if !strings.EqualFold(row.commodity, strings.TrimSpace(commodity)) {
			continue
		}
		if strings.Contains(strings.ToLower(row.region), region) {
			return row.pricePerTonne, true
		}
	}
	return 0, false
}
