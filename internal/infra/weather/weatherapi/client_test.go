package weatherapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const forecastFixture = `{
	"location": {"name": "Indore", "country": "India"},
	"current": {
		"temp_c": 31.5,
		"humidity": 58,
		"wind_kph": 12.2,
		"precip_mm": 0.4,
		"condition": {"text": "Partly cloudy", "icon": "//cdn.weatherapi.com/64x64/day/116.png"}
	},
	"forecast": {"forecastday": [
		{
			"date": "2026-08-15",
			"astro": {"sunrise": "06:05 AM", "sunset": "06:55 PM"},
			"day": {
				"avgtemp_c": 29.8,
				"totalprecip_mm": 2.1,
				"avghumidity": 64,
				"daily_chance_of_rain": 70,
				"condition": {"text": "Patchy rain", "icon": "//cdn.weatherapi.com/64x64/day/176.png"}
			}
		},
		{
			"date": "2026-08-16",
			"astro": {"sunrise": "06:06 AM", "sunset": "06:54 PM"},
			"day": {"avgtemp_c": 30.2, "totalprecip_mm": 0, "avghumidity": 55, "condition": {"text": "Sunny"}}
		}
	]}
}`

func TestForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/forecast.json", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "test-key", q.Get("key"))
		require.Equal(t, "Indore", q.Get("q"))
		require.Equal(t, "7", q.Get("days"))
		require.Equal(t, "no", q.Get("aqi"))
		w.Write([]byte(forecastFixture))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	snap, err := client.Forecast(context.Background(), "Indore", 7)

	require.NoError(t, err)
	require.Equal(t, "Indore", snap.Location)
	require.Equal(t, "India", snap.Country)
	require.Equal(t, 31.5, snap.Current.TempC)
	require.Equal(t, "Partly cloudy", snap.Current.Condition)
	require.Equal(t, 0.4, snap.Current.PrecipMM)
	require.Equal(t, "06:05 AM", snap.Astro.Sunrise)
	require.Equal(t, "06:55 PM", snap.Astro.Sunset)
	require.Len(t, snap.Forecast, 2)
	require.Equal(t, "2026-08-15", snap.Forecast[0].Date)
	require.Equal(t, 70.0, snap.Forecast[0].RainChance)
	require.Equal(t, "Sunny", snap.Forecast[1].Condition)
}

func TestForecastFillsMissingLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"current": {"temp_c": 28}}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	snap, err := client.Forecast(context.Background(), "Bhopal", 3)

	require.NoError(t, err)
	require.Equal(t, "Bhopal", snap.Location)
	require.Equal(t, "India", snap.Country)
	require.Empty(t, snap.Forecast)
}

func TestForecastRequiresAPIKey(t *testing.T) {
	client := NewClient(" ", "")

	_, err := client.Forecast(context.Background(), "Indore", 7)

	require.Error(t, err)
	require.Contains(t, err.Error(), "api key")
}

func TestForecastUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"invalid key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	_, err := client.Forecast(context.Background(), "Indore", 7)

	require.Error(t, err)
	require.Contains(t, err.Error(), "status=401")
}
