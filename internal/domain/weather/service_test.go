package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verdantly/gardenmate/internal/domain/recommend"
	apperrors "github.com/verdantly/gardenmate/pkg/errors"
)

type stubProvider struct {
	conditions Conditions
	err        error
}

func (s *stubProvider) Current(context.Context, float64, float64) (Conditions, error) {
	return s.conditions, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCurrentWrapsProviderError(t *testing.T) {
	svc := NewService(&stubProvider{err: errors.New("boom")}, testLogger())

	_, err := svc.Current(context.Background(), 1, 2)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "weather_error"))
}

func TestResolveKeepsSuppliedTemperature(t *testing.T) {
	provider := &stubProvider{err: errors.New("should not be called")}
	svc := NewService(provider, testLogger())

	temp := 25.0
	loc, ok := svc.Resolve(context.Background(), recommend.Location{Temperature: &temp})
	require.True(t, ok)
	require.Equal(t, 25.0, *loc.Temperature)
}

func TestResolveFillsFromProvider(t *testing.T) {
	provider := &stubProvider{conditions: Conditions{TemperatureC: 19.5, Humidity: 70}}
	svc := NewService(provider, testLogger())

	loc, ok := svc.Resolve(context.Background(), recommend.Location{Latitude: 40, Longitude: -74})
	require.True(t, ok)
	require.NotNil(t, loc.Temperature)
	require.Equal(t, 19.5, *loc.Temperature)
	require.NotNil(t, loc.Humidity)
	require.Equal(t, 70.0, *loc.Humidity)
}

func TestResolveDegradesOnProviderFailure(t *testing.T) {
	svc := NewService(&stubProvider{err: errors.New("upstream down")}, testLogger())

	loc, ok := svc.Resolve(context.Background(), recommend.Location{Latitude: 40})
	require.False(t, ok)
	require.Nil(t, loc.Temperature)
}
