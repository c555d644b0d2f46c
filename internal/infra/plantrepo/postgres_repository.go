package plantrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/verdantly/gardenmate/internal/domain/plant"
	"github.com/verdantly/gardenmate/internal/domain/recommend"
)

// PostgresRepository implements plant.Repository and the recommendation
// candidate queries using pgx. Listings order by scientific_name so ranking
// tie-breaks are reproducible.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const plantColumns = `
	id, name, scientific_name, family, genus, species, description, image,
	water_needs, sunlight, care_level, growth_rate, temp_min, temp_max,
	humidity, lifecycle, bloom_time, hardiness_zones, climate_zones,
	features, tags, rating, reviews, is_active, updated_at
`

// List returns catalog records matching the filter.
func (r *PostgresRepository) List(ctx context.Context, filter plant.Filter) ([]plant.Record, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE is_active`
	args := []any{}
	n := 0
	next := func(value any) string {
		args = append(args, value)
		n++
		return fmt.Sprintf("$%d", n)
	}

	if filter.Query != "" {
		p := next("%" + filter.Query + "%")
		query += fmt.Sprintf(
			" AND (name ILIKE %s OR scientific_name ILIKE %s OR array_to_string(tags, ' ') ILIKE %s)",
			p, p, p)
	}
	if filter.CareLevel != "" {
		query += fmt.Sprintf(" AND care_level = %s", next(string(filter.CareLevel)))
	}
	if filter.Sunlight != "" {
		query += fmt.Sprintf(" AND sunlight = %s", next(string(filter.Sunlight)))
	}
	if filter.Tag != "" {
		query += fmt.Sprintf(" AND %s = ANY(tags)", next(filter.Tag))
	}
	query += " ORDER BY scientific_name"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %s", next(filter.Limit))
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %s", next(filter.Offset))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPlants(rows)
}

// GetByID fetches a single record.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (plant.Record, bool, error) {
	return r.getOne(ctx, `SELECT `+plantColumns+` FROM plants WHERE id = $1`, id)
}

// GetByScientificName fetches by the catalog's unique identity.
func (r *PostgresRepository) GetByScientificName(ctx context.Context, scientificName string) (plant.Record, bool, error) {
	return r.getOne(ctx, `SELECT `+plantColumns+` FROM plants WHERE scientific_name = $1`, scientificName)
}

// Insert stores a new record, assigning an id when absent.
func (r *PostgresRepository) Insert(ctx context.Context, rec plant.Record) (plant.Record, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	features, err := json.Marshal(rec.Features)
	if err != nil {
		return plant.Record{}, err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO plants (
			id, name, scientific_name, family, genus, species, description, image,
			water_needs, sunlight, care_level, growth_rate, temp_min, temp_max,
			humidity, lifecycle, bloom_time, hardiness_zones, climate_zones,
			features, tags, rating, reviews, is_active, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, now()
		)
		RETURNING `+plantColumns,
		rec.ID, rec.Name, rec.ScientificName, rec.Family, rec.Genus, rec.Species,
		rec.Description, rec.Image, string(rec.WaterNeeds), string(rec.Sunlight),
		string(rec.CareLevel), string(rec.GrowthRate), rec.Temperature.Min,
		rec.Temperature.Max, string(rec.Humidity), string(rec.Lifecycle),
		rec.BloomTime, rec.HardinessZones, rec.ClimateZones, features, rec.Tags,
		rec.Rating, rec.Reviews, rec.IsActive)
	return scanPlant(row)
}

// Update replaces an existing record.
func (r *PostgresRepository) Update(ctx context.Context, rec plant.Record) (plant.Record, error) {
	features, err := json.Marshal(rec.Features)
	if err != nil {
		return plant.Record{}, err
	}
	row := r.pool.QueryRow(ctx, `
		UPDATE plants SET
			name = $2, scientific_name = $3, family = $4, genus = $5, species = $6,
			description = $7, image = $8, water_needs = $9, sunlight = $10,
			care_level = $11, growth_rate = $12, temp_min = $13, temp_max = $14,
			humidity = $15, lifecycle = $16, bloom_time = $17, hardiness_zones = $18,
			climate_zones = $19, features = $20, tags = $21, rating = $22,
			reviews = $23, is_active = $24, updated_at = now()
		WHERE id = $1
		RETURNING `+plantColumns,
		rec.ID, rec.Name, rec.ScientificName, rec.Family, rec.Genus, rec.Species,
		rec.Description, rec.Image, string(rec.WaterNeeds), string(rec.Sunlight),
		string(rec.CareLevel), string(rec.GrowthRate), rec.Temperature.Min,
		rec.Temperature.Max, string(rec.Humidity), string(rec.Lifecycle),
		rec.BloomTime, rec.HardinessZones, rec.ClimateZones, features, rec.Tags,
		rec.Rating, rec.Reviews, rec.IsActive)
	return scanPlant(row)
}

// DeleteAll empties the catalog and reports how many rows were removed.
func (r *PostgresRepository) DeleteAll(ctx context.Context) (int, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM plants`)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// Count reports the catalog size.
func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM plants`).Scan(&count)
	return count, err
}

// ActivePlants returns every active record in scientific_name order.
func (r *PostgresRepository) ActivePlants(ctx context.Context) ([]plant.Record, error) {
	return r.query(ctx, `SELECT `+plantColumns+` FROM plants WHERE is_active ORDER BY scientific_name`)
}

// PlantsByCareLevel returns active records with the given care level.
func (r *PostgresRepository) PlantsByCareLevel(ctx context.Context, level plant.CareLevel) ([]plant.Record, error) {
	return r.query(ctx, `
		SELECT `+plantColumns+` FROM plants
		WHERE is_active AND care_level = $1
		ORDER BY scientific_name
	`, string(level))
}

// PlantsForClimate returns active records matching any climate criterion.
func (r *PostgresRepository) PlantsForClimate(ctx context.Context, temperature float64, climateZone string, hardinessZone int) ([]plant.Record, error) {
	return r.query(ctx, `
		SELECT `+plantColumns+` FROM plants
		WHERE is_active AND (
			(temp_min <= $1 AND temp_max >= $1)
			OR $2 = ANY(climate_zones)
			OR $3 = ANY(hardiness_zones)
		)
		ORDER BY scientific_name
	`, temperature, climateZone, hardinessZone)
}

// PlantsBloomingIn returns active records that bloom in the season.
func (r *PostgresRepository) PlantsBloomingIn(ctx context.Context, season string) ([]plant.Record, error) {
	return r.query(ctx, `
		SELECT `+plantColumns+` FROM plants
		WHERE is_active AND $1 = ANY(bloom_time)
		ORDER BY scientific_name
	`, season)
}

// PlantsByScientificNames returns active records for the given identities.
func (r *PostgresRepository) PlantsByScientificNames(ctx context.Context, names []string) ([]plant.Record, error) {
	return r.query(ctx, `
		SELECT `+plantColumns+` FROM plants
		WHERE is_active AND scientific_name = ANY($1)
		ORDER BY scientific_name
	`, names)
}

func (r *PostgresRepository) query(ctx context.Context, sql string, args ...any) ([]plant.Record, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPlants(rows)
}

func (r *PostgresRepository) getOne(ctx context.Context, sql string, arg any) (plant.Record, bool, error) {
	rows, err := r.pool.Query(ctx, sql, arg)
	if err != nil {
		return plant.Record{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return plant.Record{}, false, rows.Err()
	}
	rec, err := scanPlant(rows)
	if err != nil {
		return plant.Record{}, false, err
	}
	return rec, true, rows.Err()
}

func scanPlants(rows pgx.Rows) ([]plant.Record, error) {
	var records []plant.Record
	for rows.Next() {
		rec, err := scanPlant(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlant(row rowScanner) (plant.Record, error) {
	var (
		rec      plant.Record
		water    string
		sunlight string
		care     string
		growth   string
		humidity string
		cycle    string
		features []byte
	)
	err := row.Scan(
		&rec.ID, &rec.Name, &rec.ScientificName, &rec.Family, &rec.Genus,
		&rec.Species, &rec.Description, &rec.Image, &water, &sunlight, &care,
		&growth, &rec.Temperature.Min, &rec.Temperature.Max, &humidity, &cycle,
		&rec.BloomTime, &rec.HardinessZones, &rec.ClimateZones, &features,
		&rec.Tags, &rec.Rating, &rec.Reviews, &rec.IsActive, &rec.UpdatedAt,
	)
	if err != nil {
		return plant.Record{}, err
	}
	rec.WaterNeeds = plant.WaterNeeds(water)
	rec.Sunlight = plant.Sunlight(sunlight)
	rec.CareLevel = plant.CareLevel(care)
	rec.GrowthRate = plant.GrowthRate(growth)
	rec.Humidity = plant.Humidity(humidity)
	rec.Lifecycle = plant.Lifecycle(cycle)
	if len(features) > 0 {
		if err := json.Unmarshal(features, &rec.Features); err != nil {
			return plant.Record{}, err
		}
	}
	return rec, nil
}

var (
	_ plant.Repository          = (*PostgresRepository)(nil)
	_ recommend.CandidateSource = (*PostgresRepository)(nil)
)
