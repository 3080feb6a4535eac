package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hellosamyak/AgriPulse-backend/internal/domain/weather"
)

const defaultBaseURL = "http://api.weatherapi.com/v1"

// Client fetches forecasts from WeatherAPI.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(apiKey, baseURL string) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Forecast retrieves current conditions plus a daily forecast for a location.
func (c *Client) Forecast(ctx context.Context, location string, days int) (weather.Snapshot, error) {
	if c.apiKey == "" {
		return weather.Snapshot{}, errors.New("weather api key not configured")
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", location)
	params.Set("days", fmt.Sprintf("%d", days))
	params.Set("aqi", "no")
	params.Set("alerts", "no")

	endpoint := c.baseURL + "/forecast.json?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return weather.Snapshot{}, fmt.Errorf("weather request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return weather.Snapshot{}, fmt.Errorf("decode weather response: %w", err)
	}

	return normalize(raw, location), nil
}

type apiResponse struct {
	Location struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		Humidity  float64 `json:"humidity"`
		WindKPH   float64 `json:"wind_kph"`
		PrecipMM  float64 `json:"precip_mm"`
		Condition struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
		} `json:"condition"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []forecastDay `json:"forecastday"`
	} `json:"forecast"`
}

type forecastDay struct {
	Date  string `json:"date"`
	Astro struct {
		Sunrise string `json:"sunrise"`
		Sunset  string `json:"sunset"`
	} `json:"astro"`
	Day struct {
		AvgTempC      float64 `json:"avgtemp_c"`
		TotalPrecipMM float64 `json:"totalprecip_mm"`
		AvgHumidity   float64 `json:"avghumidity"`
		RainChance    float64 `json:"daily_chance_of_rain"`
		Condition     struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
		} `json:"condition"`
	} `json:"day"`
}

func normalize(raw apiResponse, location string) weather.Snapshot {
	snap := weather.Snapshot{
		Location: raw.Location.Name,
		Country:  raw.Location.Country,
		Current: weather.Conditions{
			TempC:     raw.Current.TempC,
			Condition: raw.Current.Condition.Text,
			Icon:      raw.Current.Condition.Icon,
			Humidity:  raw.Current.Humidity,
			WindKPH:   raw.Current.WindKPH,
			PrecipMM:  raw.Current.PrecipMM,
		},
		Forecast: make([]weather.Day, 0, len(raw.Forecast.ForecastDay)),
	}
	if snap.Location == "" {
		snap.Location = location
	}
	if snap.Country == "" {
		snap.Country = "India"
	}
	for i, d := range raw.Forecast.ForecastDay {
		if i == 0 {
			snap.Astro = weather.Astro{Sunrise: d.Astro.Sunrise, Sunset: d.Astro.Sunset}
		}
		snap.Forecast = append(snap.Forecast, weather.Day{
			Date:          d.Date,
			AvgTempC:      d.Day.AvgTempC,
			TotalPrecipMM: d.Day.TotalPrecipMM,
			AvgHumidity:   d.Day.AvgHumidity,
			Condition:     d.Day.Condition.Text,
			Icon:          d.Day.Condition.Icon,
			RainChance:    d.Day.RainChance,
		})
	}
	return snap
}
