package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/verdantly/gardenmate/internal/domain/plant"
	apperrors "github.com/verdantly/gardenmate/pkg/errors"
)

const defaultLimit = 10

// Service exposes the recommendation rankers. Every ranker is best-effort:
// store failures degrade to an empty list instead of failing the response,
// while malformed caller input is rejected with an invalid_input error.
type Service interface {
	ContentBased(ctx context.Context, profile Profile, limit int) ([]Candidate, error)
	Collaborative(ctx context.Context, userID string, limit int) ([]Candidate, error)
	Hybrid(ctx context.Context, userID string, profile Profile, limit int) ([]Candidate, error)
	ClimateBased(ctx context.Context, loc Location, limit int) ([]Candidate, error)
	ExperienceBased(ctx context.Context, experience string, limit int) ([]Candidate, error)
	Seasonal(ctx context.Context, season string, loc Location, limit int) ([]Candidate, error)
}

type service struct {
	source       CandidateSource
	collaborator Collaborator
	logger       *slog.Logger
}

// NewService wires up the recommendation domain.
func NewService(source CandidateSource, collaborator Collaborator, logger *slog.Logger) Service {
	return &service{
		source:       source,
		collaborator: collaborator,
		logger:       logger.With("component", "recommend.service"),
	}
}

func (s *service) ContentBased(ctx context.Context, profile Profile, limit int) ([]Candidate, error) {
	limit = sanitizeLimit(limit)
	plants, err := s.source.ActivePlants(ctx)
	if err != nil {
		s.logger.Warn("content-based candidate fetch failed", "error", err)
		return []Candidate{}, nil
	}

	candidates := make([]Candidate, 0, len(plants))
	for _, p := range plants {
		candidates = append(candidates, Candidate{
			Plant:  p,
			Score:  ContentSimilarity(profile, p),
			Reason: contentReason(profile, p),
		})
	}
	sortByScore(candidates)
	return truncate(candidates, limit), nil
}

func (s *service) Collaborative(ctx context.Context, userID string, limit int) ([]Candidate, error) {
	limit = sanitizeLimit(limit)
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.Wrap("invalid_input", "user id cannot be empty", nil)
	}

	neighbors, err := s.collaborator.SimilarUsers(ctx, userID)
	if err != nil {
		s.logger.Warn("similar user lookup failed", "error", err)
		return []Candidate{}, nil
	}
	if len(neighbors) == 0 {
		return []Candidate{}, nil
	}
	ratings, err := s.collaborator.RatingsFor(ctx, neighbors)
	if err != nil {
		s.logger.Warn("neighbor rating lookup failed", "error", err)
		return []Candidate{}, nil
	}

	scores := make(map[string]float64, len(ratings))
	names := make([]string, 0, len(ratings))
	for name, plantRatings := range ratings {
		mean, ok := WeightedAverage(plantRatings)
		if !ok {
			continue
		}
		scores[name] = mean
		names = append(names, name)
	}
	if len(names) == 0 {
		return []Candidate{}, nil
	}
	sort.Strings(names)

	plants, err := s.source.PlantsByScientificNames(ctx, names)
	if err != nil {
		s.logger.Warn("collaborative candidate fetch failed", "error", err)
		return []Candidate{}, nil
	}

	candidates := make([]Candidate, 0, len(plants))
	for _, p := range plants {
		candidates = append(candidates, Candidate{
			Plant:  p,
			Score:  scores[p.ScientificName],
			Reason: "Recommended by users with similar preferences",
		})
	}
	sortByScore(candidates)
	return truncate(candidates, limit), nil
}

// Hybrid runs the content and collaborative rankers concurrently and blends
// their output. Both arms already degrade to empty lists on store trouble, so
// the only errors surfacing here are input validation failures.
func (s *service) Hybrid(ctx context.Context, userID string, profile Profile, limit int) ([]Candidate, error) {
	limit = sanitizeLimit(limit)

	var content, collaborative []Candidate
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		content, err = s.ContentBased(gctx, profile, limit)
		return err
	})
	g.Go(func() error {
		var err error
		collaborative, err = s.Collaborative(gctx, userID, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return truncate(Combine(content, collaborative), limit), nil
}

func (s *service) ClimateBased(ctx context.Context, loc Location, limit int) ([]Candidate, error) {
	limit = sanitizeLimit(limit)
	if err := validateLocation(loc); err != nil {
		return nil, err
	}
	temperature := *loc.Temperature

	plants, err := s.source.PlantsForClimate(ctx, temperature, loc.ClimateZone, HardinessZoneOf(loc.Latitude))
	if err != nil {
		s.logger.Warn("climate candidate fetch failed", "error", err)
		return []Candidate{}, nil
	}

	candidates := make([]Candidate, 0, len(plants))
	for _, p := range plants {
		candidates = append(candidates, Candidate{
			Plant:  p,
			Score:  ClimateScore(p, temperature, loc.ClimateZone, loc.Latitude),
			Reason: climateReason(loc.ClimateZone, temperature),
		})
	}
	sortByScore(candidates)
	return truncate(candidates, limit), nil
}

func (s *service) ExperienceBased(ctx context.Context, experience string, limit int) ([]Candidate, error) {
	limit = sanitizeLimit(limit)
	experience = strings.TrimSpace(experience)
	if experience == "" {
		return nil, apperrors.Wrap("invalid_input", "experience level cannot be empty", nil)
	}

	plants, err := s.source.PlantsByCareLevel(ctx, ExperienceToCareLevel(experience))
	if err != nil {
		s.logger.Warn("experience candidate fetch failed", "error", err)
		return []Candidate{}, nil
	}

	// Constant score, so store order carries through untouched.
	candidates := make([]Candidate, 0, len(plants))
	for _, p := range plants {
		candidates = append(candidates, Candidate{
			Plant:  p,
			Score:  1.0,
			Reason: fmt.Sprintf("Perfect for %s gardeners", experience),
		})
	}
	return truncate(candidates, limit), nil
}

func (s *service) Seasonal(ctx context.Context, season string, loc Location, limit int) ([]Candidate, error) {
	limit = sanitizeLimit(limit)
	season = strings.TrimSpace(season)
	if season == "" {
		return nil, apperrors.Wrap("invalid_input", "season cannot be empty", nil)
	}
	if err := validateLocation(loc); err != nil {
		return nil, err
	}
	temperature := *loc.Temperature

	plants, err := s.source.PlantsBloomingIn(ctx, season)
	if err != nil {
		s.logger.Warn("seasonal candidate fetch failed", "error", err)
		return []Candidate{}, nil
	}

	candidates := make([]Candidate, 0, len(plants))
	for _, p := range plants {
		if !p.Temperature.Contains(temperature) {
			continue
		}
		candidates = append(candidates, Candidate{
			Plant:  p,
			Score:  1.0,
			Reason: fmt.Sprintf("Perfect for %s planting in your area", season),
		})
	}
	return truncate(candidates, limit), nil
}

func validateLocation(loc Location) error {
	if loc.Temperature == nil {
		return apperrors.Wrap("invalid_input", "location temperature is required", nil)
	}
	if math.IsNaN(*loc.Temperature) {
		return apperrors.Wrap("invalid_input", "location temperature must be a number", nil)
	}
	if math.Abs(loc.Latitude) > 90 {
		return apperrors.Wrap("invalid_input", "latitude must be between -90 and 90", nil)
	}
	if math.Abs(loc.Longitude) > 180 {
		return apperrors.Wrap("invalid_input", "longitude must be between -180 and 180", nil)
	}
	return nil
}

func contentReason(profile Profile, p plant.Record) string {
	var reasons []string
	if profile.CareLevel == p.CareLevel {
		reasons = append(reasons, "Matches your preferred care level")
	}
	if p.Features.AirPurifying {
		reasons = append(reasons, "Air purifying plant")
	}
	if p.Features.Flowering {
		reasons = append(reasons, "Beautiful flowering plant")
	}
	if len(reasons) == 0 {
		return "Great addition to your collection"
	}
	return strings.Join(reasons, ", ")
}

func climateReason(climateZone string, temperature float64) string {
	if climateZone == "" {
		return fmt.Sprintf("Well suited to your local climate (%g°C)", temperature)
	}
	return fmt.Sprintf("Suitable for %s climate (%g°C)", climateZone, temperature)
}

func sortByScore(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}

func truncate(candidates []Candidate, limit int) []Candidate {
	if len(candidates) <= limit {
		return candidates
	}
	return candidates[:limit]
}

func sanitizeLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}
