package identify

import (
	"context"
	"io"

	"github.com/verdantly/gardenmate/internal/domain/plant"
)

// Config holds runtime knobs for photo identification.
type Config struct {
	ConfidenceThreshold float64
	MaxUploadBytes      int64
}

// Upload is one photo submitted for identification.
type Upload struct {
	FileName string
	MimeType string
	Data     []byte
}

// Prediction is one candidate species from the classifier.
type Prediction struct {
	Name           string  `json:"name"`
	ScientificName string  `json:"scientificName,omitempty"`
	Confidence     float64 `json:"confidence"`
}

// Result is the identification outcome returned to the transport. Success is
// false when the classifier's best guess falls under the confidence threshold;
// that is a legitimate answer, not an error.
type Result struct {
	Success     bool          `json:"success"`
	PlantName   string        `json:"plantName,omitempty"`
	Confidence  float64       `json:"confidence"`
	Description string        `json:"description,omitempty"`
	Message     string        `json:"message,omitempty"`
	Predictions []Prediction  `json:"allPredictions,omitempty"`
	PhotoKey    string        `json:"photoKey,omitempty"`
	CareProfile *plant.Record `json:"careProfile,omitempty"`
}

// StoredObject describes a stored photo.
type StoredObject struct {
	Key      string
	Size     int64
	MimeType string
	ETag     string
}

// ObjectStorage persists uploaded photos.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (StoredObject, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// Classifier identifies the species on a photo.
type Classifier interface {
	Classify(ctx context.Context, image []byte, mimeType string) ([]Prediction, error)
}
