package market

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const defaultUnit = "Rs/Quintal"

// Normalize turns raw provider records into typed ones, preserving input
// order. Missing string fields default to empty, unparsable min/max prices
// become nil and a record without a parsable modal price is dropped.
func Normalize(raw []map[string]any, commodity string) []Record {
	records := make([]Record, 0, len(raw))
	for _, r := range raw {
		modal, ok := parsePrice(r["modal_price"])
		if !ok {
			continue
		}
		rec := Record{
			State:       stringField(r, "state"),
			District:    stringField(r, "district"),
			Market:      stringField(r, "market"),
			Commodity:   stringField(r, "commodity"),
			Variety:     stringField(r, "variety"),
			ArrivalDate: stringField(r, "arrival_date"),
			MinPrice:    pricePtr(r["min_price"]),
			MaxPrice:    pricePtr(r["max_price"]),
			ModalPrice:  modal,
			Unit:        stringField(r, "price_unit"),
		}
		if rec.Commodity == "" {
			rec.Commodity = Capitalize(commodity)
		}
		if rec.Unit == "" {
			rec.Unit = defaultUnit
		}
		records = append(records, rec)
	}
	return records
}

func stringField(r map[string]any, key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

func parsePrice(v any) (float64, bool) {
	switch p := v.(type) {
	case nil:
		return 0, false
	case float64:
		return p, true
	case int:
		return float64(p), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func pricePtr(v any) *float64 {
	if parsed, ok := parsePrice(v); ok {
		return &parsed
	}
	return nil
}

// Capitalize upper-cases the first rune and lower-cases the rest, the way
// the upstream Agmarknet filters expect commodity names.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
