package plantrepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/verdantly/gardenmate/internal/domain/plant"
	"github.com/verdantly/gardenmate/internal/domain/recommend"
	"github.com/verdantly/gardenmate/pkg/util"
)

// MemoryRepository is an in-process plant.Repository used when Postgres is not
// configured. It mirrors the Postgres ordering (scientific name ascending) so
// ranking behaviour is identical in both modes.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]plant.Record
	byName  map[string]uuid.UUID
}

// NewMemoryRepository constructs the repository, optionally pre-seeded.
func NewMemoryRepository(seed []plant.Record) *MemoryRepository {
	r := &MemoryRepository{
		records: make(map[uuid.UUID]plant.Record, len(seed)),
		byName:  make(map[string]uuid.UUID, len(seed)),
	}
	for _, rec := range seed {
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		if rec.UpdatedAt.IsZero() {
			rec.UpdatedAt = util.NowUTC()
		}
		r.records[rec.ID] = rec
		r.byName[rec.ScientificName] = rec.ID
	}
	return r
}

func (r *MemoryRepository) List(_ context.Context, filter plant.Filter) ([]plant.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []plant.Record
	for _, rec := range r.records {
		if !rec.IsActive || !matchesFilter(rec, filter) {
			continue
		}
		out = append(out, rec)
	}
	sortByScientificName(out)

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (plant.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	return rec, ok, nil
}

func (r *MemoryRepository) GetByScientificName(_ context.Context, scientificName string) (plant.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[scientificName]
	if !ok {
		return plant.Record{}, false, nil
	}
	return r.records[id], true, nil
}

func (r *MemoryRepository) Insert(_ context.Context, rec plant.Record) (plant.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.UpdatedAt = util.NowUTC()
	r.records[rec.ID] = rec
	r.byName[rec.ScientificName] = rec.ID
	return rec, nil
}

func (r *MemoryRepository) Update(_ context.Context, rec plant.Record) (plant.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.UpdatedAt = util.NowUTC()
	r.records[rec.ID] = rec
	r.byName[rec.ScientificName] = rec.ID
	return rec, nil
}

func (r *MemoryRepository) DeleteAll(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := len(r.records)
	r.records = make(map[uuid.UUID]plant.Record)
	r.byName = make(map[string]uuid.UUID)
	return removed, nil
}

func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records), nil
}

func (r *MemoryRepository) ActivePlants(_ context.Context) ([]plant.Record, error) {
	return r.selectWhere(func(plant.Record) bool { return true }), nil
}

func (r *MemoryRepository) PlantsByCareLevel(_ context.Context, level plant.CareLevel) ([]plant.Record, error) {
	return r.selectWhere(func(rec plant.Record) bool { return rec.CareLevel == level }), nil
}

func (r *MemoryRepository) PlantsForClimate(_ context.Context, temperature float64, climateZone string, hardinessZone int) ([]plant.Record, error) {
	return r.selectWhere(func(rec plant.Record) bool {
		return rec.Temperature.Contains(temperature) ||
			rec.InClimateZone(climateZone) ||
			rec.InHardinessZone(hardinessZone)
	}), nil
}

func (r *MemoryRepository) PlantsBloomingIn(_ context.Context, season string) ([]plant.Record, error) {
	return r.selectWhere(func(rec plant.Record) bool { return rec.BloomsIn(season) }), nil
}

func (r *MemoryRepository) PlantsByScientificNames(_ context.Context, names []string) ([]plant.Record, error) {
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}
	return r.selectWhere(func(rec plant.Record) bool {
		_, ok := wanted[rec.ScientificName]
		return ok
	}), nil
}

func (r *MemoryRepository) selectWhere(match func(plant.Record) bool) []plant.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []plant.Record
	for _, rec := range r.records {
		if rec.IsActive && match(rec) {
			out = append(out, rec)
		}
	}
	sortByScientificName(out)
	return out
}

func matchesFilter(rec plant.Record, filter plant.Filter) bool {
	if filter.CareLevel != "" && rec.CareLevel != filter.CareLevel {
		return false
	}
	if filter.Sunlight != "" && rec.Sunlight != filter.Sunlight {
		return false
	}
	if filter.Tag != "" {
		found := false
		for _, tag := range rec.Tags {
			if tag == filter.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(rec.Name), q) &&
			!strings.Contains(strings.ToLower(rec.ScientificName), q) &&
			!tagsContain(rec.Tags, q) {
			return false
		}
	}
	return true
}

func tagsContain(tags []string, query string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func sortByScientificName(records []plant.Record) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].ScientificName < records[j].ScientificName
	})
}

var (
	_ plant.Repository          = (*MemoryRepository)(nil)
	_ recommend.CandidateSource = (*MemoryRepository)(nil)
)
