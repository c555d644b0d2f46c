package weather

import (
	"context"
	"log/slog"

	"github.com/verdantly/gardenmate/internal/domain/recommend"
	apperrors "github.com/verdantly/gardenmate/pkg/errors"
)

// Service exposes current-weather lookups and location enrichment.
type Service interface {
	Current(ctx context.Context, latitude, longitude float64) (Conditions, error)
	Resolve(ctx context.Context, loc recommend.Location) (recommend.Location, bool)
}

type service struct {
	provider Provider
	logger   *slog.Logger
}

// NewService wires up the weather domain.
func NewService(provider Provider, logger *slog.Logger) Service {
	return &service{
		provider: provider,
		logger:   logger.With("component", "weather.service"),
	}
}

func (s *service) Current(ctx context.Context, latitude, longitude float64) (Conditions, error) {
	conditions, err := s.provider.Current(ctx, latitude, longitude)
	if err != nil {
		return Conditions{}, apperrors.Wrap("weather_error", "failed to fetch current weather", err)
	}
	s.logger.Info("weather fetched",
		"lat", latitude,
		"lon", longitude,
		"temperature", conditions.TemperatureC,
	)
	return conditions, nil
}

// Resolve fills missing temperature and humidity from live weather. The
// second return reports whether the location is usable for climate scoring;
// an upstream failure leaves the location incomplete rather than erroring.
func (s *service) Resolve(ctx context.Context, loc recommend.Location) (recommend.Location, bool) {
	if loc.Temperature != nil {
		return loc, true
	}
	conditions, err := s.Current(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		s.logger.Warn("weather lookup failed, location stays incomplete", "error", err)
		return loc, false
	}
	temp := conditions.TemperatureC
	loc.Temperature = &temp
	if loc.Humidity == nil {
		humidity := conditions.Humidity
		loc.Humidity = &humidity
	}
	return loc, true
}
