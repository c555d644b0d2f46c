package identify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/verdantly/gardenmate/internal/domain/plant"
	apperrors "github.com/verdantly/gardenmate/pkg/errors"
)

var allowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Service identifies plants from photos.
type Service interface {
	Identify(ctx context.Context, upload Upload) (Result, error)
}

type service struct {
	cfg        Config
	storage    ObjectStorage
	classifier Classifier
	plants     plant.Repository
	logger     *slog.Logger
}

// NewService wires up photo identification.
func NewService(cfg Config, storage ObjectStorage, classifier Classifier, plants plant.Repository, logger *slog.Logger) Service {
	return &service{
		cfg:        cfg,
		storage:    storage,
		classifier: classifier,
		plants:     plants,
		logger:     logger.With("component", "identify.service"),
	}
}

// Identify validates and stores the photo, asks the classifier for candidate
// species and enriches a confident best guess with the catalog care profile.
func (s *service) Identify(ctx context.Context, upload Upload) (Result, error) {
	ext, err := s.validate(upload)
	if err != nil {
		return Result{}, err
	}

	key := fmt.Sprintf("uploads/%s%s", uuid.NewString(), ext)
	stored, err := s.storage.Put(ctx, key, upload.Data, upload.MimeType)
	if err != nil {
		return Result{}, apperrors.Wrap("identify_error", "failed to store photo", err)
	}

	predictions, err := s.classifier.Classify(ctx, upload.Data, upload.MimeType)
	if err != nil {
		return Result{}, apperrors.Wrap("identify_error", "identification service failed", err)
	}
	if len(predictions) == 0 {
		return Result{
			Success:  false,
			Message:  "No plant recognized on the photo",
			PhotoKey: stored.Key,
		}, nil
	}

	best := predictions[0]
	for _, p := range predictions[1:] {
		if p.Confidence > best.Confidence {
			best = p
		}
	}
	if best.Confidence <= s.cfg.ConfidenceThreshold {
		return Result{
			Success:     false,
			Confidence:  best.Confidence,
			Message:     "Plant identification confidence too low",
			Predictions: predictions,
			PhotoKey:    stored.Key,
		}, nil
	}

	result := Result{
		Success:     true,
		PlantName:   best.Name,
		Confidence:  best.Confidence,
		Description: fmt.Sprintf("This appears to be a %s", strings.ToLower(best.Name)),
		Predictions: predictions,
		PhotoKey:    stored.Key,
	}
	if best.ScientificName != "" {
		profile, found, err := s.plants.GetByScientificName(ctx, best.ScientificName)
		if err != nil {
			s.logger.Warn("care profile lookup failed", "error", err)
		} else if found {
			result.CareProfile = &profile
		}
	}
	return result, nil
}

func (s *service) validate(upload Upload) (string, error) {
	if len(upload.Data) == 0 {
		return "", apperrors.Wrap("invalid_input", "no image uploaded or provided", nil)
	}
	if s.cfg.MaxUploadBytes > 0 && int64(len(upload.Data)) > s.cfg.MaxUploadBytes {
		return "", apperrors.Wrap("invalid_input",
			fmt.Sprintf("image exceeds %d bytes", s.cfg.MaxUploadBytes), nil)
	}
	ext, ok := allowedMimeTypes[strings.ToLower(upload.MimeType)]
	if !ok {
		return "", apperrors.Wrap("invalid_input", "unsupported image type", nil)
	}
	return ext, nil
}
