package mandi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "test-key", q.Get("api-key"))
		require.Equal(t, "json", q.Get("format"))
		require.Equal(t, "Wheat", q.Get("filters[commodity]"))
		require.Equal(t, "50", q.Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"records":[{"market":"Indore","modal_price":"2350"},{"market":"Nagpur","modal_price":"2380"}]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	records, err := client.Fetch(context.Background(), Query{Commodity: "Wheat", Limit: 50})

	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Indore", records[0]["market"])
}

func TestFetchMarketFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "Indore", q.Get("filters[market]"))
		require.Empty(t, q.Get("filters[commodity]"))
		w.Write([]byte(`{"records":[{"commodity":"Wheat"}]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	_, err := client.Fetch(context.Background(), Query{Market: "Indore"})

	require.NoError(t, err)
}

func TestFetchRequiresAPIKey(t *testing.T) {
	client := NewClient("", "")

	_, err := client.Fetch(context.Background(), Query{Commodity: "Wheat"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "api key")
}

func TestFetchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	_, err := client.Fetch(context.Background(), Query{Commodity: "Wheat"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "status=429")
}

func TestFetchEmptyRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"records":[]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	_, err := client.Fetch(context.Background(), Query{Commodity: "Wheat"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "no mandi records")
}
