package weather

import (
	"context"
	"time"
)

// Conditions is a current-weather snapshot at a coordinate.
type Conditions struct {
	TemperatureC float64   `json:"temperatureC"`
	Humidity     float64   `json:"humidity"`
	Description  string    `json:"description"`
	City         string    `json:"city"`
	ObservedAt   time.Time `json:"observedAt"`
}

// Provider fetches current conditions from an upstream weather API.
type Provider interface {
	Current(ctx context.Context, latitude, longitude float64) (Conditions, error)
}
