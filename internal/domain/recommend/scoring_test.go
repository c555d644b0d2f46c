package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verdantly/gardenmate/internal/domain/plant"
)

func TestContentSimilarityFullMatch(t *testing.T) {
	profile := Profile{
		CareLevel:         plant.CareModerate,
		WaterNeeds:        plant.WaterModerate,
		Sunlight:          plant.SunBrightIndirect,
		PreferredFeatures: []string{"flowering", "airPurifying"},
	}
	p := plant.Record{
		CareLevel:  plant.CareModerate,
		WaterNeeds: plant.WaterModerate,
		Sunlight:   plant.SunBrightIndirect,
		Features:   plant.Features{Flowering: true, AirPurifying: true},
	}

	require.Equal(t, 1.0, ContentSimilarity(profile, p))
}

func TestContentSimilarityPartialMatch(t *testing.T) {
	profile := Profile{
		CareLevel:         plant.CareModerate,
		WaterNeeds:        plant.WaterModerate,
		Sunlight:          plant.SunBrightIndirect,
		PreferredFeatures: []string{"flowering", "airPurifying"},
	}
	p := plant.Record{
		CareLevel:  plant.CareModerate,
		WaterNeeds: plant.WaterLow,
		Sunlight:   plant.SunBrightIndirect,
		Features:   plant.Features{Flowering: true},
	}

	// 0.3 care + 0.2 sun + 0.3*(1/2) features
	require.InDelta(t, 0.65, ContentSimilarity(profile, p), 1e-9)
}

func TestContentSimilarityNoFeaturePreference(t *testing.T) {
	profile := Profile{
		CareLevel:  plant.CareLow,
		WaterNeeds: plant.WaterLow,
		Sunlight:   plant.SunLowLight,
	}
	p := plant.Record{
		CareLevel:  plant.CareLow,
		WaterNeeds: plant.WaterLow,
		Sunlight:   plant.SunLowLight,
	}

	// the feature term is vacuously satisfied when nothing is preferred
	require.Equal(t, 1.0, ContentSimilarity(profile, p))
}

func TestClimateScoreFullMatch(t *testing.T) {
	p := plant.Record{
		Temperature:    plant.TemperatureRange{Min: 15, Max: 30},
		ClimateZones:   []string{"temperate"},
		HardinessZones: []int{5, 6, 7},
	}

	require.Equal(t, 1.0, ClimateScore(p, 22, "temperate", 45))
}

func TestClimateScoreComponents(t *testing.T) {
	p := plant.Record{
		Temperature:    plant.TemperatureRange{Min: 15, Max: 30},
		ClimateZones:   []string{"tropical"},
		HardinessZones: []int{9, 10, 11},
	}

	// only the temperature band matches
	require.InDelta(t, 0.5, ClimateScore(p, 22, "temperate", 45), 1e-9)
	// temperature out of range, zone matches
	require.InDelta(t, 0.3, ClimateScore(p, 5, "tropical", 45), 1e-9)
	// hardiness only
	require.InDelta(t, 0.2, ClimateScore(p, 5, "temperate", 25), 1e-9)
}

func TestHardinessZoneOf(t *testing.T) {
	cases := []struct {
		latitude float64
		want     int
	}{
		{65, 1},
		{55, 3},
		{45, 5},
		{35, 7},
		{25, 9},
		{10, 11},
		{0, 11},
		{-45, 5}, // southern hemisphere mirrors the northern buckets
		{-65, 1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, HardinessZoneOf(tc.latitude), "latitude %v", tc.latitude)
	}
}

func TestExperienceToCareLevelIsTotal(t *testing.T) {
	cases := []struct {
		in   string
		want plant.CareLevel
	}{
		{"beginner", plant.CareLow},
		{"intermediate", plant.CareModerate},
		{"advanced", plant.CareHigh},
		{"", plant.CareModerate},
		{"expert", plant.CareModerate},
		{"BEGINNER", plant.CareModerate}, // matching is case sensitive
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ExperienceToCareLevel(tc.in), "input %q", tc.in)
	}
}

func TestWeightedAverage(t *testing.T) {
	mean, ok := WeightedAverage([]Rating{
		{UserID: "u1", Score: 4.5},
		{UserID: "u2", Score: 4.0},
	})
	require.True(t, ok)
	require.InDelta(t, 4.25, mean, 1e-9)

	_, ok = WeightedAverage(nil)
	require.False(t, ok)
}
