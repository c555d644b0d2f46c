package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/verdantly/gardenmate/internal/domain/chatbot"
	"github.com/verdantly/gardenmate/internal/domain/identify"
	"github.com/verdantly/gardenmate/internal/domain/plant"
	"github.com/verdantly/gardenmate/internal/domain/recommend"
	"github.com/verdantly/gardenmate/internal/domain/weather"
	"github.com/verdantly/gardenmate/internal/infra/config"
	apperrors "github.com/verdantly/gardenmate/pkg/errors"
)

func TestRouter_Healthz(t *testing.T) {
	recorder := performGet("/healthz", newRouterUnderTest(t, routerStubs{}))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), `"ok"`)
}

func TestRouter_SearchPlants(t *testing.T) {
	stubs := routerStubs{
		plants: &stubPlantService{
			searchFn: func(_ context.Context, filter plant.Filter) ([]plant.Record, error) {
				require.Equal(t, "fern", filter.Query)
				require.Equal(t, plant.CareLow, filter.CareLevel)
				require.Equal(t, 5, filter.Limit)
				return []plant.Record{{Name: "Boston Fern", ScientificName: "Nephrolepis exaltata"}}, nil
			},
		},
	}

	recorder := performGet("/api/v1/plants?query=fern&careLevel=Low&limit=5", newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Plants []plant.Record `json:"plants"`
		Count  int            `json:"count"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	require.Equal(t, "Boston Fern", body.Plants[0].Name)
}

func TestRouter_GetPlantBadID(t *testing.T) {
	recorder := performGet("/api/v1/plants/not-a-uuid", newRouterUnderTest(t, routerStubs{}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
}

func TestRouter_GetPlantNotFound(t *testing.T) {
	stubs := routerStubs{
		plants: &stubPlantService{
			getFn: func(context.Context, uuid.UUID) (plant.Record, error) {
				return plant.Record{}, apperrors.Wrap("not_found", "plant not found", nil)
			},
		},
	}

	recorder := performGet("/api/v1/plants/"+uuid.NewString(), newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusNotFound, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "not_found", errBody["error"]["code"])
}

func TestRouter_ContentRecommendations(t *testing.T) {
	stubs := routerStubs{
		recommends: &stubRecommendService{
			contentFn: func(_ context.Context, profile recommend.Profile, limit int) ([]recommend.Candidate, error) {
				require.Equal(t, "beginner", profile.Experience)
				require.Equal(t, 3, limit)
				return []recommend.Candidate{{Plant: plant.Record{Name: "Pothos"}, Score: 0.9}}, nil
			},
		},
	}

	recorder := performPost("/api/v1/recommendations/content", `{"profile":{"experience":"beginner"},"limit":3}`, newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "Pothos")
}

func TestRouter_ClimateRecommendationsDegradesWithoutWeather(t *testing.T) {
	stubs := routerStubs{
		weather: &stubWeatherService{
			resolveFn: func(_ context.Context, loc recommend.Location) (recommend.Location, bool) {
				return loc, false
			},
		},
		recommends: &stubRecommendService{
			climateFn: func(context.Context, recommend.Location, int) ([]recommend.Candidate, error) {
				t.Fatal("ranker must not run when weather is unavailable")
				return nil, nil
			},
		},
	}

	recorder := performPost("/api/v1/recommendations/climate", `{"location":{"latitude":40,"longitude":-74}}`, newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Recommendations []recommend.Candidate `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Empty(t, body.Recommendations)
}

func TestRouter_ChatInvalidInput(t *testing.T) {
	stubs := routerStubs{
		chat: &stubChatService{
			askFn: func(context.Context, chatbot.Request) (chatbot.Response, error) {
				return chatbot.Response{}, apperrors.Wrap("invalid_input", "message cannot be empty", nil)
			},
		},
	}

	recorder := performPost("/api/v1/chat", `{"message":""}`, newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "message cannot be empty")
}

func TestRouter_ChatSuccess(t *testing.T) {
	stubs := routerStubs{
		chat: &stubChatService{
			askFn: func(_ context.Context, req chatbot.Request) (chatbot.Response, error) {
				require.Equal(t, "why are my leaves yellow", req.Message)
				return chatbot.Response{Reply: "Likely overwatering.", Source: "llm"}, nil
			},
		},
	}

	recorder := performPost("/api/v1/chat", `{"message":"why are my leaves yellow"}`, newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "Likely overwatering.")
}

func TestRouter_IdentifyPlant(t *testing.T) {
	stubs := routerStubs{
		identifies: &stubIdentifyService{
			identifyFn: func(_ context.Context, upload identify.Upload) (identify.Result, error) {
				require.Equal(t, "leaf.jpg", upload.FileName)
				require.Equal(t, "image/jpeg", upload.MimeType)
				require.Equal(t, []byte("jpeg-bytes"), upload.Data)
				return identify.Result{Success: true, PlantName: "Monstera", Confidence: 0.92}, nil
			},
		},
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="photo"; filename="leaf.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/identify", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	newRouterUnderTest(t, stubs).Handler.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "Monstera")
}

func performGet(path string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func performPost(path, body string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

type routerStubs struct {
	plants     *stubPlantService
	recommends *stubRecommendService
	chat       *stubChatService
	identifies *stubIdentifyService
	weather    *stubWeatherService
}

func newRouterUnderTest(t *testing.T, stubs routerStubs) *http.Server {
	t.Helper()
	if stubs.plants == nil {
		stubs.plants = &stubPlantService{}
	}
	if stubs.recommends == nil {
		stubs.recommends = &stubRecommendService{}
	}
	if stubs.chat == nil {
		stubs.chat = &stubChatService{}
	}
	if stubs.identifies == nil {
		stubs.identifies = &stubIdentifyService{}
	}
	if stubs.weather == nil {
		stubs.weather = &stubWeatherService{}
	}

	handler := NewHandler(stubs.plants, stubs.recommends, stubs.chat, stubs.identifies, stubs.weather, 1<<20, newTestLogger())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	return NewRouter(cfg, handler, newTestLogger())
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

type stubPlantService struct {
	searchFn func(ctx context.Context, filter plant.Filter) ([]plant.Record, error)
	getFn    func(ctx context.Context, id uuid.UUID) (plant.Record, error)
	createFn func(ctx context.Context, raw plant.RawRecord) (plant.Record, error)
}

func (s *stubPlantService) Search(ctx context.Context, filter plant.Filter) ([]plant.Record, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, filter)
	}
	return nil, nil
}

func (s *stubPlantService) Get(ctx context.Context, id uuid.UUID) (plant.Record, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return plant.Record{}, nil
}

func (s *stubPlantService) Create(ctx context.Context, raw plant.RawRecord) (plant.Record, error) {
	if s.createFn != nil {
		return s.createFn(ctx, raw)
	}
	return plant.Record{}, nil
}

func (s *stubPlantService) Import(context.Context, []plant.RawRecord) (plant.ImportSummary, error) {
	return plant.ImportSummary{}, nil
}

type stubRecommendService struct {
	contentFn func(ctx context.Context, profile recommend.Profile, limit int) ([]recommend.Candidate, error)
	climateFn func(ctx context.Context, loc recommend.Location, limit int) ([]recommend.Candidate, error)
}

func (s *stubRecommendService) ContentBased(ctx context.Context, profile recommend.Profile, limit int) ([]recommend.Candidate, error) {
	if s.contentFn != nil {
		return s.contentFn(ctx, profile, limit)
	}
	return nil, nil
}

func (s *stubRecommendService) Collaborative(context.Context, string, int) ([]recommend.Candidate, error) {
	return nil, nil
}

func (s *stubRecommendService) Hybrid(context.Context, string, recommend.Profile, int) ([]recommend.Candidate, error) {
	return nil, nil
}

func (s *stubRecommendService) ClimateBased(ctx context.Context, loc recommend.Location, limit int) ([]recommend.Candidate, error) {
	if s.climateFn != nil {
		return s.climateFn(ctx, loc, limit)
	}
	return nil, nil
}

func (s *stubRecommendService) ExperienceBased(context.Context, string, int) ([]recommend.Candidate, error) {
	return nil, nil
}

func (s *stubRecommendService) Seasonal(context.Context, string, recommend.Location, int) ([]recommend.Candidate, error) {
	return nil, nil
}

type stubChatService struct {
	askFn func(ctx context.Context, req chatbot.Request) (chatbot.Response, error)
}

func (s *stubChatService) Ask(ctx context.Context, req chatbot.Request) (chatbot.Response, error) {
	if s.askFn != nil {
		return s.askFn(ctx, req)
	}
	return chatbot.Response{}, nil
}

func (s *stubChatService) Trending(context.Context) ([]chatbot.TrendingTopic, error) {
	return nil, nil
}

type stubIdentifyService struct {
	identifyFn func(ctx context.Context, upload identify.Upload) (identify.Result, error)
}

func (s *stubIdentifyService) Identify(ctx context.Context, upload identify.Upload) (identify.Result, error) {
	if s.identifyFn != nil {
		return s.identifyFn(ctx, upload)
	}
	return identify.Result{}, nil
}

type stubWeatherService struct {
	resolveFn func(ctx context.Context, loc recommend.Location) (recommend.Location, bool)
}

func (s *stubWeatherService) Current(context.Context, float64, float64) (weather.Conditions, error) {
	return weather.Conditions{}, nil
}

func (s *stubWeatherService) Resolve(ctx context.Context, loc recommend.Location) (recommend.Location, bool) {
	if s.resolveFn != nil {
		return s.resolveFn(ctx, loc)
	}
	return loc, true
}
