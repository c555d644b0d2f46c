package plantrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verdantly/gardenmate/internal/catalog"
	"github.com/verdantly/gardenmate/internal/domain/plant"
)

func seededRepo(t *testing.T) *MemoryRepository {
	t.Helper()
	return NewMemoryRepository(catalog.Base)
}

func TestMemoryListOrdersByScientificName(t *testing.T) {
	repo := seededRepo(t)

	records, err := repo.List(context.Background(), plant.Filter{})
	require.NoError(t, err)
	require.Len(t, records, len(catalog.Base))
	for i := 1; i < len(records); i++ {
		require.Less(t, records[i-1].ScientificName, records[i].ScientificName)
	}
}

func TestMemoryListFilters(t *testing.T) {
	repo := seededRepo(t)

	byCare, err := repo.List(context.Background(), plant.Filter{CareLevel: plant.CareLow})
	require.NoError(t, err)
	for _, rec := range byCare {
		require.Equal(t, plant.CareLow, rec.CareLevel)
	}

	byQuery, err := repo.List(context.Background(), plant.Filter{Query: "monstera"})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	require.Equal(t, "Monstera deliciosa", byQuery[0].ScientificName)

	byTag, err := repo.List(context.Background(), plant.Filter{Tag: "succulent"})
	require.NoError(t, err)
	require.NotEmpty(t, byTag)
	for _, rec := range byTag {
		require.Contains(t, rec.Tags, "succulent")
	}
}

func TestMemoryListQueryMatchesTags(t *testing.T) {
	repo := seededRepo(t)

	// "medicinal" appears only as a tag, never in a name or scientific name
	records, err := repo.List(context.Background(), plant.Filter{Query: "medicinal"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Aloe barbadensis", records[0].ScientificName)
	require.Contains(t, records[0].Tags, "medicinal")
}

func TestMemoryListPagination(t *testing.T) {
	repo := seededRepo(t)

	page, err := repo.List(context.Background(), plant.Filter{Limit: 3, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 3)

	all, err := repo.List(context.Background(), plant.Filter{})
	require.NoError(t, err)
	require.Equal(t, all[2:5], page)
}

func TestMemoryInsertAndLookup(t *testing.T) {
	repo := NewMemoryRepository(nil)

	created, err := repo.Insert(context.Background(), plant.Record{
		Name:           "Spider Plant",
		ScientificName: "Chlorophytum comosum",
		IsActive:       true,
	})
	require.NoError(t, err)
	require.NotEqual(t, "", created.ID.String())

	byID, found, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, created, byID)

	byName, found, err := repo.GetByScientificName(context.Background(), "Chlorophytum comosum")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, created, byName)
}

func TestMemoryClimateCandidates(t *testing.T) {
	repo := seededRepo(t)

	// 22°C, temperate zone, hardiness 5: every base plant matches at least one
	// criterion except none are excluded by all three, so spot check a few.
	records, err := repo.PlantsForClimate(context.Background(), -10, "nozone", 99)
	require.NoError(t, err)
	require.Empty(t, records)

	records, err = repo.PlantsForClimate(context.Background(), 22, "", 0)
	require.NoError(t, err)
	require.NotEmpty(t, records)
	for _, rec := range records {
		require.True(t, rec.Temperature.Contains(22))
	}
}

func TestMemoryBloomCandidates(t *testing.T) {
	repo := seededRepo(t)

	records, err := repo.PlantsBloomingIn(context.Background(), "Fall")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Rosa", records[0].ScientificName)
}
