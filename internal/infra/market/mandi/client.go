package mandi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultResourceURL = "https://api.data.gov.in/resource/9ef84268-d588-465a-a308-a864a43d0070"

// Query selects which Agmarknet records to fetch. Commodity and Market are
// optional filters; Limit caps the page size.
type Query struct {
	Commodity string
	Market    string
	Limit     int
}

// Client fetches mandi price records from the data.gov.in Agmarknet resource.
type Client struct {
	apiKey      string
	resourceURL string
	httpClient  *http.Client
}

// NewClient builds an API client. An empty key is accepted so the service
// can boot without credentials; calls then fail and callers fall back.
func NewClient(apiKey, resourceURL string) *Client {
	endpoint := strings.TrimSpace(resourceURL)
	if endpoint == "" {
		endpoint = defaultResourceURL
	}
	return &Client{
		apiKey:      strings.TrimSpace(apiKey),
		resourceURL: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: 12 * time.Second,
		},
	}
}

// Fetch retrieves raw price records matching the query.
func (c *Client) Fetch(ctx context.Context, q Query) ([]map[string]any, error) {
	if c.apiKey == "" {
		return nil, errors.New("data.gov.in api key not configured")
	}

	params := url.Values{}
	params.Set("api-key", c.apiKey)
	params.Set("format", "json")
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Commodity != "" {
		params.Set("filters[commodity]", q.Commodity)
	}
	if q.Market != "" {
		params.Set("filters[market]", q.Market)
	}

	endpoint := c.resourceURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build mandi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mandi request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("mandi request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode mandi response: %w", err)
	}
	if len(raw.Records) == 0 {
		return nil, errors.New("no mandi records found")
	}
	return raw.Records, nil
}

type apiResponse struct {
	Records []map[string]any `json:"records"`
}
