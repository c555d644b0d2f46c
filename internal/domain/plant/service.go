package plant

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/verdantly/gardenmate/pkg/errors"
)

const defaultListLimit = 50

// Service exposes the plant catalog.
type Service interface {
	Search(ctx context.Context, filter Filter) ([]Record, error)
	Get(ctx context.Context, id uuid.UUID) (Record, error)
	Create(ctx context.Context, raw RawRecord) (Record, error)
	Import(ctx context.Context, raws []RawRecord) (ImportSummary, error)
}

// ImportSummary reports the outcome of a bulk catalog import.
type ImportSummary struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService wires up the plant catalog domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.With("component", "plant.service"),
	}
}

func (s *service) Search(ctx context.Context, filter Filter) ([]Record, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	filter.Query = strings.TrimSpace(filter.Query)

	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Wrap("plant_error", "catalog listing failed", err)
	}
	return records, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	rec, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, apperrors.Wrap("plant_error", "catalog lookup failed", err)
	}
	if !found {
		return Record{}, apperrors.Wrap("not_found", "plant not found", nil)
	}
	return rec, nil
}

func (s *service) Create(ctx context.Context, raw RawRecord) (Record, error) {
	rec := FromRaw(raw)
	if rec.Name == "" {
		return Record{}, apperrors.Wrap("invalid_input", "plant name cannot be empty", nil)
	}
	if rec.ScientificName != "" {
		_, exists, err := s.repo.GetByScientificName(ctx, rec.ScientificName)
		if err != nil {
			return Record{}, apperrors.Wrap("plant_error", "duplicate check failed", err)
		}
		if exists {
			return Record{}, apperrors.Wrap("conflict", "plant already exists", nil)
		}
	}
	created, err := s.repo.Insert(ctx, rec)
	if err != nil {
		return Record{}, apperrors.Wrap("plant_error", "failed to insert plant", err)
	}
	s.logger.Info("plant created", "scientificName", created.ScientificName)
	return created, nil
}

// Import upserts a batch of raw records, keyed by scientific name. Malformed
// rows are skipped rather than failing the whole batch.
func (s *service) Import(ctx context.Context, raws []RawRecord) (ImportSummary, error) {
	var summary ImportSummary
	for _, raw := range raws {
		rec := FromRaw(raw)
		if rec.Name == "" || rec.ScientificName == "" {
			summary.Skipped++
			continue
		}
		existing, exists, err := s.repo.GetByScientificName(ctx, rec.ScientificName)
		if err != nil {
			return summary, apperrors.Wrap("plant_error", "import lookup failed", err)
		}
		if exists {
			rec.ID = existing.ID
			rec.Rating = existing.Rating
			rec.Reviews = existing.Reviews
			if _, err := s.repo.Update(ctx, rec); err != nil {
				return summary, apperrors.Wrap("plant_error", "import update failed", err)
			}
			summary.Updated++
			continue
		}
		if _, err := s.repo.Insert(ctx, rec); err != nil {
			return summary, apperrors.Wrap("plant_error", "import insert failed", err)
		}
		summary.Created++
	}
	s.logger.Info("plant import finished",
		"created", summary.Created, "updated", summary.Updated, "skipped", summary.Skipped)
	return summary, nil
}
