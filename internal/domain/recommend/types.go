package recommend

import (
	"context"

	"github.com/verdantly/gardenmate/internal/domain/plant"
)

// Profile captures the gardening preferences a ranking call scores against.
// Request-scoped; nothing in this package holds on to it between calls.
type Profile struct {
	Experience        string           `json:"experience,omitempty"`
	CareLevel         plant.CareLevel  `json:"careLevel,omitempty"`
	WaterNeeds        plant.WaterNeeds `json:"waterNeeds,omitempty"`
	Sunlight          plant.Sunlight   `json:"sunlight,omitempty"`
	PreferredFeatures []string         `json:"preferredFeatures,omitempty"`
}

// Location is the climate context for climate and seasonal ranking.
// Temperature is °C and is required by the rankers that read it; pointer
// fields distinguish "absent" from a legitimate zero.
type Location struct {
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity,omitempty"`
	ClimateZone string   `json:"climateZone,omitempty"`
}

// Candidate is one ranked plant with its score and a human-readable reason.
type Candidate struct {
	Plant  plant.Record `json:"plant"`
	Score  float64      `json:"recommendationScore"`
	Reason string       `json:"reason"`
}

// Rating is a single neighbor's rating of a plant.
type Rating struct {
	UserID string
	Score  float64
}

// Collaborator supplies the user-similarity and rating data behind
// collaborative filtering. The similarity algorithm is the collaborator's
// business; this package only fixes the aggregation contract (mean of
// neighbor ratings per plant).
type Collaborator interface {
	SimilarUsers(ctx context.Context, userID string) ([]string, error)
	// RatingsFor returns the given users' ratings keyed by scientific name.
	RatingsFor(ctx context.Context, userIDs []string) (map[string][]Rating, error)
}

// CandidateSource provides the candidate plant sets the rankers score.
// Implementations must return records in a deterministic order (the catalog
// orders by scientific name) so tie-breaking is reproducible.
type CandidateSource interface {
	ActivePlants(ctx context.Context) ([]plant.Record, error)
	PlantsByCareLevel(ctx context.Context, level plant.CareLevel) ([]plant.Record, error)
	PlantsForClimate(ctx context.Context, temperature float64, climateZone string, hardinessZone int) ([]plant.Record, error)
	PlantsBloomingIn(ctx context.Context, season string) ([]plant.Record, error)
	PlantsByScientificNames(ctx context.Context, names []string) ([]plant.Record, error)
}
