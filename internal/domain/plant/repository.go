package plant

import (
	"context"

	"github.com/google/uuid"
)

// Filter narrows catalog listings. Zero values mean "no constraint".
type Filter struct {
	Query     string // matched against name, scientific name and tags
	CareLevel CareLevel
	Sunlight  Sunlight
	Tag       string
	Limit     int
	Offset    int
}

// Repository encapsulates storage operations for the plant catalog. Listings
// return records ordered by scientific name so results are reproducible.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (Record, bool, error)
	GetByScientificName(ctx context.Context, scientificName string) (Record, bool, error)
	Insert(ctx context.Context, rec Record) (Record, error)
	Update(ctx context.Context, rec Record) (Record, error)
	DeleteAll(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
}
