package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/verdantly/gardenmate/internal/domain/weather"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client fetches current conditions from OpenWeatherMap.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL, apiKey string) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(endpoint, "/"),
		apiKey:  strings.TrimSpace(apiKey),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Current retrieves current weather at the given coordinate in metric units.
func (c *Client) Current(ctx context.Context, latitude, longitude float64) (weather.Conditions, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	query.Set("units", "metric")
	query.Set("appid", c.apiKey)
	endpoint := fmt.Sprintf("%s?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return weather.Conditions{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Conditions{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return weather.Conditions{}, fmt.Errorf("weather request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.Conditions{}, fmt.Errorf("read weather response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return weather.Conditions{}, fmt.Errorf("decode weather response: %w", err)
	}

	return normalizeResponse(raw), nil
}

type apiResponse struct {
	Main    apiMain      `json:"main"`
	Weather []apiSummary `json:"weather"`
	Name    string       `json:"name"`
	DT      int64        `json:"dt"`
}

type apiMain struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}

type apiSummary struct {
	Description string `json:"description"`
}

func normalizeResponse(raw apiResponse) weather.Conditions {
	conditions := weather.Conditions{
		TemperatureC: raw.Main.Temp,
		Humidity:     raw.Main.Humidity,
		City:         raw.Name,
	}
	if len(raw.Weather) > 0 {
		conditions.Description = raw.Weather[0].Description
	}
	if raw.DT > 0 {
		conditions.ObservedAt = time.Unix(raw.DT, 0).UTC()
	}
	return conditions
}

var _ weather.Provider = (*Client)(nil)
