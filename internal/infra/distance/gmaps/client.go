package gmaps

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

// Client queries the Distance Matrix API for point-to-point distances.
type Client struct {
	apiKey string
	client *resty.Client
}

// NewClient builds a distance client. Calls fail fast without a key so the
// trade engine falls back to its route table.
func NewClient(apiKey, baseURL string) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(endpoint)
	client.SetTimeout(10 * time.Second)
	return &Client{
		apiKey: strings.TrimSpace(apiKey),
		client: client,
	}
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Text  string  `json:"text"`
				Value float64 `json:"value"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// DistanceKM resolves the driving distance between two place names.
func (c *Client) DistanceKM(ctx context.Context, origin, destination string) (float64, error) {
	if c.apiKey == "" {
		return 0, errors.New("distance api key not configured")
	}

	var out matrixResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"origins":      origin,
			"destinations": destination,
			"key":          c.apiKey,
		}).
		SetResult(&out).
		Get("")
	if err != nil {
		return 0, fmt.Errorf("distance request failed: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("distance request error: status=%d body=%s", resp.StatusCode(), resp.String())
	}
	if out.Status != "OK" {
		return 0, fmt.Errorf("distance api status %q", out.Status)
	}
	if len(out.Rows) == 0 || len(out.Rows[0].Elements) == 0 {
		return 0, errors.New("distance api returned no elements")
	}
	element := out.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("distance element status %q", element.Status)
	}
	return element.Distance.Value / 1000, nil
}
