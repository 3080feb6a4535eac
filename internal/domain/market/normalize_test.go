package market

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDropsUnparsableModalPrice(t *testing.T) {
	raw := []map[string]any{
		{"state": "MP", "market": "Indore", "modal_price": "2350"},
		{"state": "MH", "market": "Nagpur", "modal_price": "n/a"},
		{"state": "RJ", "market": "Jaipur"},
		{"state": "UP", "market": "Kanpur", "modal_price": 2100.5},
	}

	records := Normalize(raw, "wheat")

	require.Len(t, records, 2)
	require.Equal(t, "Indore", records[0].Market)
	require.Equal(t, 2350.0, records[0].ModalPrice)
	require.Equal(t, "Kanpur", records[1].Market)
	require.Equal(t, 2100.5, records[1].ModalPrice)
}

func TestNormalizeDefaults(t *testing.T) {
	raw := []map[string]any{
		{"modal_price": "100"},
	}

	records := Normalize(raw, "wheat")

	require.Len(t, records, 1)
	rec := records[0]
	require.Equal(t, "Wheat", rec.Commodity)
	require.Equal(t, "Rs/Quintal", rec.Unit)
	require.Empty(t, rec.State)
	require.Empty(t, rec.District)
	require.Empty(t, rec.Market)
	require.Empty(t, rec.Variety)
	require.Empty(t, rec.ArrivalDate)
	require.Nil(t, rec.MinPrice)
	require.Nil(t, rec.MaxPrice)
}

func TestNormalizeMinMaxPricesPerField(t *testing.T) {
	raw := []map[string]any{
		{"modal_price": "2350", "min_price": "2200", "max_price": "bad"},
	}

	records := Normalize(raw, "wheat")

	require.Len(t, records, 1)
	require.NotNil(t, records[0].MinPrice)
	require.Equal(t, 2200.0, *records[0].MinPrice)
	require.Nil(t, records[0].MaxPrice)
}

func TestNormalizePreservesOrder(t *testing.T) {
	raw := []map[string]any{
		{"market": "A", "modal_price": "1"},
		{"market": "B", "modal_price": "2"},
		{"market": "C", "modal_price": "3"},
	}

	records := Normalize(raw, "maize")

	require.Equal(t, []string{"A", "B", "C"}, []string{records[0].Market, records[1].Market, records[2].Market})
}

func TestCapitalize(t *testing.T) {
	require.Equal(t, "Wheat", Capitalize("wheat"))
	require.Equal(t, "Wheat", Capitalize("WHEAT"))
	require.Equal(t, "Wheat", Capitalize("  wheat "))
	require.Equal(t, "", Capitalize(""))
}
