package recommend

import "context"

// StaticCollaborator serves similarity and rating data from fixed in-memory
// tables. The real similarity algorithm is an external concern with no agreed
// definition yet; until that collaborator exists, deployments run with a
// static table, or an empty one, which simply disables the collaborative arm.
type StaticCollaborator struct {
	neighbors map[string][]string
	ratings   map[string]map[string]float64 // userID -> scientific name -> rating
}

// NewStaticCollaborator builds a collaborator from fixture tables. Either
// argument may be nil.
func NewStaticCollaborator(neighbors map[string][]string, ratings map[string]map[string]float64) *StaticCollaborator {
	if neighbors == nil {
		neighbors = map[string][]string{}
	}
	if ratings == nil {
		ratings = map[string]map[string]float64{}
	}
	return &StaticCollaborator{neighbors: neighbors, ratings: ratings}
}

func (c *StaticCollaborator) SimilarUsers(_ context.Context, userID string) ([]string, error) {
	return append([]string(nil), c.neighbors[userID]...), nil
}

func (c *StaticCollaborator) RatingsFor(_ context.Context, userIDs []string) (map[string][]Rating, error) {
	out := make(map[string][]Rating)
	for _, userID := range userIDs {
		for name, score := range c.ratings[userID] {
			out[name] = append(out[name], Rating{UserID: userID, Score: score})
		}
	}
	return out, nil
}
