package identify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/verdantly/gardenmate/internal/domain/plant"
	apperrors "github.com/verdantly/gardenmate/pkg/errors"
)

type stubStorage struct {
	putKey string
	err    error
}

func (s *stubStorage) Put(_ context.Context, key string, data []byte, mimeType string) (StoredObject, error) {
	if s.err != nil {
		return StoredObject{}, s.err
	}
	s.putKey = key
	return StoredObject{Key: key, Size: int64(len(data)), MimeType: mimeType}, nil
}

func (s *stubStorage) Get(_ context.Context, _ string) (io.ReadCloser, error) { return nil, nil }
func (s *stubStorage) Delete(_ context.Context, _ string) error               { return nil }

type stubClassifier struct {
	predictions []Prediction
	err         error
}

func (c *stubClassifier) Classify(_ context.Context, _ []byte, _ string) ([]Prediction, error) {
	return c.predictions, c.err
}

type stubPlantRepo struct {
	profile plant.Record
	found   bool
}

func (r *stubPlantRepo) List(_ context.Context, _ plant.Filter) ([]plant.Record, error) {
	return nil, nil
}

func (r *stubPlantRepo) GetByID(_ context.Context, _ uuid.UUID) (plant.Record, bool, error) {
	return plant.Record{}, false, nil
}

func (r *stubPlantRepo) GetByScientificName(_ context.Context, _ string) (plant.Record, bool, error) {
	return r.profile, r.found, nil
}

func (r *stubPlantRepo) Insert(_ context.Context, rec plant.Record) (plant.Record, error) {
	return rec, nil
}

func (r *stubPlantRepo) Update(_ context.Context, rec plant.Record) (plant.Record, error) {
	return rec, nil
}

func (r *stubPlantRepo) DeleteAll(_ context.Context) (int, error) { return 0, nil }

func (r *stubPlantRepo) Count(_ context.Context) (int, error) { return 0, nil }

func newTestService(storage *stubStorage, classifier *stubClassifier, plants *stubPlantRepo) Service {
	cfg := Config{ConfidenceThreshold: 0.7, MaxUploadBytes: 1 << 20}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(cfg, storage, classifier, plants, logger)
}

func jpegUpload() Upload {
	return Upload{FileName: "photo.jpg", MimeType: "image/jpeg", Data: []byte("fake-jpeg")}
}

func TestIdentifyRejectsEmptyUpload(t *testing.T) {
	svc := newTestService(&stubStorage{}, &stubClassifier{}, &stubPlantRepo{})

	_, err := svc.Identify(context.Background(), Upload{MimeType: "image/jpeg"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestIdentifyRejectsUnsupportedMime(t *testing.T) {
	svc := newTestService(&stubStorage{}, &stubClassifier{}, &stubPlantRepo{})

	_, err := svc.Identify(context.Background(), Upload{MimeType: "image/gif", Data: []byte("x")})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestIdentifyRejectsOversizedUpload(t *testing.T) {
	svc := newTestService(&stubStorage{}, &stubClassifier{}, &stubPlantRepo{})

	_, err := svc.Identify(context.Background(), Upload{
		MimeType: "image/jpeg",
		Data:     make([]byte, 2<<20),
	})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestIdentifyConfidentMatch(t *testing.T) {
	storage := &stubStorage{}
	classifier := &stubClassifier{predictions: []Prediction{
		{Name: "Rose", ScientificName: "Rosa rubiginosa", Confidence: 0.91},
		{Name: "Tulip", Confidence: 0.45},
	}}
	plants := &stubPlantRepo{
		profile: plant.Record{Name: "Rose", ScientificName: "Rosa rubiginosa"},
		found:   true,
	}
	svc := newTestService(storage, classifier, plants)

	result, err := svc.Identify(context.Background(), jpegUpload())
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, "Rose", result.PlantName)
	require.Equal(t, "This appears to be a rose", result.Description)
	require.Equal(t, storage.putKey, result.PhotoKey)
	require.NotNil(t, result.CareProfile)
	require.Equal(t, "Rosa rubiginosa", result.CareProfile.ScientificName)
}

func TestIdentifyLowConfidence(t *testing.T) {
	classifier := &stubClassifier{predictions: []Prediction{
		{Name: "Fern", Confidence: 0.55},
	}}
	svc := newTestService(&stubStorage{}, classifier, &stubPlantRepo{})

	result, err := svc.Identify(context.Background(), jpegUpload())
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, "Plant identification confidence too low", result.Message)
	require.InDelta(t, 0.55, result.Confidence, 1e-9)
}

func TestIdentifyClassifierFailure(t *testing.T) {
	classifier := &stubClassifier{err: errors.New("upstream 502")}
	svc := newTestService(&stubStorage{}, classifier, &stubPlantRepo{})

	_, err := svc.Identify(context.Background(), jpegUpload())
	require.True(t, apperrors.IsCode(err, "identify_error"))
}

func TestIdentifyNoPredictions(t *testing.T) {
	svc := newTestService(&stubStorage{}, &stubClassifier{}, &stubPlantRepo{})

	result, err := svc.Identify(context.Background(), jpegUpload())
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, "No plant recognized on the photo", result.Message)
}
