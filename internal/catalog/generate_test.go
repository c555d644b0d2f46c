package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verdantly/gardenmate/internal/domain/plant"
)

func TestExpandedIsDeterministic(t *testing.T) {
	first := Expanded()
	second := Expanded()

	require.Equal(t, first, second)
}

func TestExpandedSize(t *testing.T) {
	records := Expanded()

	require.Len(t, records, len(Base)+len(familySeeds)*variantsPerFamily)
	require.Greater(t, len(records), 1000)
}

func TestExpandedScientificNamesUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for _, rec := range Expanded() {
		_, dup := seen[rec.ScientificName]
		require.False(t, dup, "duplicate scientific name %q", rec.ScientificName)
		seen[rec.ScientificName] = struct{}{}
	}
}

func TestExpandedRecordsAreNormalized(t *testing.T) {
	for _, rec := range Expanded() {
		require.Equal(t, rec, plant.Normalize(rec), "record %q not in normalized form", rec.ScientificName)
		require.LessOrEqual(t, rec.Temperature.Min, rec.Temperature.Max)
		require.GreaterOrEqual(t, rec.Rating, 0.0)
		require.LessOrEqual(t, rec.Rating, 5.0)
		require.True(t, rec.IsActive)
		require.NotEmpty(t, rec.Description)
		for _, tag := range rec.Tags {
			require.NotEmpty(t, tag)
		}
	}
}

func TestExpandedHardinessZonesInRange(t *testing.T) {
	for _, rec := range Expanded() {
		for _, zone := range rec.HardinessZones {
			require.GreaterOrEqual(t, zone, 1)
			require.LessOrEqual(t, zone, 11)
		}
	}
}
