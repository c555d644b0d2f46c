package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCurrentDecodesMetricConditions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "40.7", r.URL.Query().Get("lat"))
		require.Equal(t, "-74", r.URL.Query().Get("lon"))
		require.Equal(t, "metric", r.URL.Query().Get("units"))
		require.Equal(t, "test-key", r.URL.Query().Get("appid"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"main": {"temp": 22.5, "humidity": 61},
			"weather": [{"description": "clear sky"}],
			"name": "New York",
			"dt": 1719828000
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	conditions, err := client.Current(context.Background(), 40.7, -74)
	require.NoError(t, err)
	require.Equal(t, 22.5, conditions.TemperatureC)
	require.Equal(t, 61.0, conditions.Humidity)
	require.Equal(t, "clear sky", conditions.Description)
	require.Equal(t, "New York", conditions.City)
	require.Equal(t, time.Unix(1719828000, 0).UTC(), conditions.ObservedAt)
}

func TestCurrentSurfacesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key")
	_, err := client.Current(context.Background(), 1, 2)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=401")
}

func TestNormalizeResponseHandlesEmptySummary(t *testing.T) {
	conditions := normalizeResponse(apiResponse{
		Main: apiMain{Temp: 18.0, Humidity: 50},
	})
	require.Equal(t, 18.0, conditions.TemperatureC)
	require.Empty(t, conditions.Description)
	require.True(t, conditions.ObservedAt.IsZero())
}
