package recommend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verdantly/gardenmate/internal/domain/plant"
	apperrors "github.com/verdantly/gardenmate/pkg/errors"
)

type stubSource struct {
	plants []plant.Record
	err    error
}

func (s *stubSource) ActivePlants(_ context.Context) ([]plant.Record, error) {
	return s.plants, s.err
}

func (s *stubSource) PlantsByCareLevel(_ context.Context, level plant.CareLevel) ([]plant.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []plant.Record
	for _, p := range s.plants {
		if p.CareLevel == level {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubSource) PlantsForClimate(_ context.Context, temperature float64, climateZone string, hardinessZone int) ([]plant.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []plant.Record
	for _, p := range s.plants {
		if p.Temperature.Contains(temperature) || p.InClimateZone(climateZone) || p.InHardinessZone(hardinessZone) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubSource) PlantsBloomingIn(_ context.Context, season string) ([]plant.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []plant.Record
	for _, p := range s.plants {
		if p.BloomsIn(season) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubSource) PlantsByScientificNames(_ context.Context, names []string) ([]plant.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []plant.Record
	for _, name := range names {
		for _, p := range s.plants {
			if p.ScientificName == name {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func namedPlant(name string, careLevel plant.CareLevel) plant.Record {
	return plant.Record{Name: name, ScientificName: name, CareLevel: careLevel, IsActive: true}
}

func TestContentBasedRanksDescending(t *testing.T) {
	source := &stubSource{plants: []plant.Record{
		namedPlant("Worst", plant.CareHigh),
		namedPlant("Best", plant.CareModerate),
	}}
	svc := NewService(source, NewStaticCollaborator(nil, nil), discardLogger())

	got, err := svc.ContentBased(context.Background(), Profile{CareLevel: plant.CareModerate}, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Best", got[0].Plant.ScientificName)
	require.Greater(t, got[0].Score, got[1].Score)
}

func TestContentBasedDefaultLimit(t *testing.T) {
	source := &stubSource{}
	for i := 0; i < 15; i++ {
		source.plants = append(source.plants, namedPlant(fmt.Sprintf("Plant %02d", i), plant.CareModerate))
	}
	svc := NewService(source, NewStaticCollaborator(nil, nil), discardLogger())

	got, err := svc.ContentBased(context.Background(), Profile{}, 0)
	require.NoError(t, err)
	require.Len(t, got, 10)
}

func TestContentBasedDegradesOnStoreError(t *testing.T) {
	source := &stubSource{err: errors.New("store down")}
	svc := NewService(source, NewStaticCollaborator(nil, nil), discardLogger())

	got, err := svc.ContentBased(context.Background(), Profile{}, 10)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestContentBasedReason(t *testing.T) {
	p := namedPlant("Peace Lily", plant.CareModerate)
	p.Features = plant.Features{Flowering: true, AirPurifying: true}
	svc := NewService(&stubSource{plants: []plant.Record{p}}, NewStaticCollaborator(nil, nil), discardLogger())

	got, err := svc.ContentBased(context.Background(), Profile{CareLevel: plant.CareModerate}, 10)
	require.NoError(t, err)
	require.Equal(t,
		"Matches your preferred care level, Air purifying plant, Beautiful flowering plant",
		got[0].Reason)
}

func TestCollaborativeAveragesNeighborRatings(t *testing.T) {
	source := &stubSource{plants: []plant.Record{
		namedPlant("Ficus lyrata", plant.CareHigh),
		namedPlant("Monstera deliciosa", plant.CareModerate),
	}}
	collaborator := NewStaticCollaborator(
		map[string][]string{"alice": {"bob", "carol"}},
		map[string]map[string]float64{
			"bob":   {"Ficus lyrata": 4.5, "Monstera deliciosa": 3.0},
			"carol": {"Ficus lyrata": 4.0},
		},
	)
	svc := NewService(source, collaborator, discardLogger())

	got, err := svc.Collaborative(context.Background(), "alice", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Ficus lyrata", got[0].Plant.ScientificName)
	require.InDelta(t, 4.25, got[0].Score, 1e-9)
	require.InDelta(t, 3.0, got[1].Score, 1e-9)
	require.Equal(t, "Recommended by users with similar preferences", got[0].Reason)
}

func TestCollaborativeNoNeighbors(t *testing.T) {
	svc := NewService(&stubSource{}, NewStaticCollaborator(nil, nil), discardLogger())

	got, err := svc.Collaborative(context.Background(), "nobody", 10)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCollaborativeRejectsEmptyUser(t *testing.T) {
	svc := NewService(&stubSource{}, NewStaticCollaborator(nil, nil), discardLogger())

	_, err := svc.Collaborative(context.Background(), "  ", 10)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestHybridBlendsBothArms(t *testing.T) {
	shared := namedPlant("Monstera deliciosa", plant.CareModerate)
	shared.WaterNeeds = plant.WaterModerate
	shared.Sunlight = plant.SunBrightIndirect
	source := &stubSource{plants: []plant.Record{shared}}
	collaborator := NewStaticCollaborator(
		map[string][]string{"alice": {"bob"}},
		map[string]map[string]float64{"bob": {"Monstera deliciosa": 1.0}},
	)
	svc := NewService(source, collaborator, discardLogger())

	// content arm: 0.3 care + 0.3 features (no preference) = 0.6, water and
	// sunlight preferences differ from the plant
	profile := Profile{
		CareLevel:  plant.CareModerate,
		WaterNeeds: plant.WaterLow,
		Sunlight:   plant.SunFullSun,
	}
	got, err := svc.Hybrid(context.Background(), "alice", profile, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.InDelta(t, 0.6*0.6+1.0*0.4, got[0].Score, 1e-9)
}

func TestClimateBasedRequiresTemperature(t *testing.T) {
	svc := NewService(&stubSource{}, NewStaticCollaborator(nil, nil), discardLogger())

	_, err := svc.ClimateBased(context.Background(), Location{Latitude: 45}, 10)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestClimateBasedRejectsBadLatitude(t *testing.T) {
	temp := 20.0
	svc := NewService(&stubSource{}, NewStaticCollaborator(nil, nil), discardLogger())

	_, err := svc.ClimateBased(context.Background(), Location{Latitude: 120, Temperature: &temp}, 10)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestClimateBasedScoresAndReason(t *testing.T) {
	p := namedPlant("Lavandula angustifolia", plant.CareLow)
	p.Temperature = plant.TemperatureRange{Min: 15, Max: 30}
	p.ClimateZones = []string{"temperate"}
	p.HardinessZones = []int{5}
	svc := NewService(&stubSource{plants: []plant.Record{p}}, NewStaticCollaborator(nil, nil), discardLogger())

	temp := 22.0
	got, err := svc.ClimateBased(context.Background(), Location{
		Latitude:    45,
		Temperature: &temp,
		ClimateZone: "temperate",
	}, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 1.0, got[0].Score)
	require.Equal(t, "Suitable for temperate climate (22°C)", got[0].Reason)
}

func TestExperienceBasedKeepsStoreOrder(t *testing.T) {
	source := &stubSource{plants: []plant.Record{
		namedPlant("Aloe vera", plant.CareLow),
		namedPlant("Chlorophytum comosum", plant.CareLow),
		namedPlant("Orchidaceae", plant.CareHigh),
	}}
	svc := NewService(source, NewStaticCollaborator(nil, nil), discardLogger())

	got, err := svc.ExperienceBased(context.Background(), "beginner", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Aloe vera", got[0].Plant.ScientificName)
	require.Equal(t, "Chlorophytum comosum", got[1].Plant.ScientificName)
	require.Equal(t, 1.0, got[0].Score)
	require.Equal(t, "Perfect for beginner gardeners", got[0].Reason)
}

func TestSeasonalFiltersByTemperature(t *testing.T) {
	blooms := namedPlant("Tulipa gesneriana", plant.CareModerate)
	blooms.BloomTime = []string{"spring"}
	blooms.Temperature = plant.TemperatureRange{Min: 10, Max: 25}

	tooCold := namedPlant("Helleborus niger", plant.CareModerate)
	tooCold.BloomTime = []string{"spring"}
	tooCold.Temperature = plant.TemperatureRange{Min: -5, Max: 10}

	svc := NewService(&stubSource{plants: []plant.Record{blooms, tooCold}}, NewStaticCollaborator(nil, nil), discardLogger())

	temp := 18.0
	got, err := svc.Seasonal(context.Background(), "spring", Location{Latitude: 45, Temperature: &temp}, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Tulipa gesneriana", got[0].Plant.ScientificName)
	require.Equal(t, "Perfect for spring planting in your area", got[0].Reason)
}

func TestSeasonalRequiresSeason(t *testing.T) {
	svc := NewService(&stubSource{}, NewStaticCollaborator(nil, nil), discardLogger())

	temp := 18.0
	_, err := svc.Seasonal(context.Background(), "", Location{Temperature: &temp}, 10)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}
