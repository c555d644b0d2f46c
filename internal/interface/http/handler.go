package http

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/verdantly/gardenmate/internal/domain/chatbot"
	"github.com/verdantly/gardenmate/internal/domain/identify"
	"github.com/verdantly/gardenmate/internal/domain/plant"
	"github.com/verdantly/gardenmate/internal/domain/recommend"
	"github.com/verdantly/gardenmate/internal/domain/weather"
	apperrors "github.com/verdantly/gardenmate/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	plantSvc       plant.Service
	recommendSvc   recommend.Service
	chatSvc        chatbot.Service
	identifySvc    identify.Service
	weatherSvc     weather.Service
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(
	plantSvc plant.Service,
	recommendSvc recommend.Service,
	chatSvc chatbot.Service,
	identifySvc identify.Service,
	weatherSvc weather.Service,
	maxUploadBytes int64,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		plantSvc:       plantSvc,
		recommendSvc:   recommendSvc,
		chatSvc:        chatSvc,
		identifySvc:    identifySvc,
		weatherSvc:     weatherSvc,
		maxUploadBytes: maxUploadBytes,
		logger:         logger.With("component", "http.handler"),
	}
}

// SearchPlants lists catalog plants matching the query parameters.
func (h *Handler) SearchPlants(c *gin.Context) {
	filter := plant.Filter{
		Query:     c.Query("query"),
		CareLevel: plant.CareLevel(c.Query("careLevel")),
		Sunlight:  plant.Sunlight(c.Query("sunlight")),
		Tag:       c.Query("tag"),
	}
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			filter.Limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			filter.Offset = parsed
		}
	}

	plants, err := h.plantSvc.Search(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, domainError(err, "plant_search_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"plants": plants, "count": len(plants)})
}

// GetPlant fetches a single plant by id.
func (h *Handler) GetPlant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "id must be a valid UUID", err))
		return
	}

	record, err := h.plantSvc.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, domainError(err, "plant_lookup_failed"))
		return
	}
	c.JSON(http.StatusOK, record)
}

// CreatePlant adds a plant to the catalog from a raw submission.
func (h *Handler) CreatePlant(c *gin.Context) {
	var raw plant.RawRecord
	if err := c.ShouldBindJSON(&raw); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	record, err := h.plantSvc.Create(c.Request.Context(), raw)
	if err != nil {
		abortWithError(c, domainError(err, "plant_create_failed"))
		return
	}
	c.JSON(http.StatusCreated, record)
}

type contentRequest struct {
	Profile recommend.Profile `json:"profile"`
	Limit   int               `json:"limit"`
}

// ContentRecommendations ranks plants against the user's stated preferences.
func (h *Handler) ContentRecommendations(c *gin.Context) {
	var req contentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	items, err := h.recommendSvc.ContentBased(c.Request.Context(), req.Profile, req.Limit)
	if err != nil {
		abortWithError(c, domainError(err, "recommendation_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}

type collaborativeRequest struct {
	UserID string `json:"userId"`
	Limit  int    `json:"limit"`
}

// CollaborativeRecommendations ranks plants liked by similar users.
func (h *Handler) CollaborativeRecommendations(c *gin.Context) {
	var req collaborativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	items, err := h.recommendSvc.Collaborative(c.Request.Context(), req.UserID, req.Limit)
	if err != nil {
		abortWithError(c, domainError(err, "recommendation_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}

type hybridRequest struct {
	UserID  string            `json:"userId"`
	Profile recommend.Profile `json:"profile"`
	Limit   int               `json:"limit"`
}

// HybridRecommendations blends content and collaborative rankings.
func (h *Handler) HybridRecommendations(c *gin.Context) {
	var req hybridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	items, err := h.recommendSvc.Hybrid(c.Request.Context(), req.UserID, req.Profile, req.Limit)
	if err != nil {
		abortWithError(c, domainError(err, "recommendation_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}

type climateRequest struct {
	Location recommend.Location `json:"location"`
	Limit    int                `json:"limit"`
}

// ClimateRecommendations ranks plants by fit for the caller's location. When
// the payload omits the temperature it is resolved from live weather; if that
// lookup fails the response degrades to an empty list.
func (h *Handler) ClimateRecommendations(c *gin.Context) {
	var req climateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	loc, ok := h.weatherSvc.Resolve(c.Request.Context(), req.Location)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"recommendations": []recommend.Candidate{}})
		return
	}

	items, err := h.recommendSvc.ClimateBased(c.Request.Context(), loc, req.Limit)
	if err != nil {
		abortWithError(c, domainError(err, "recommendation_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}

type experienceRequest struct {
	Experience string `json:"experience"`
	Limit      int    `json:"limit"`
}

// ExperienceRecommendations ranks plants matched to the gardener's experience level.
func (h *Handler) ExperienceRecommendations(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	items, err := h.recommendSvc.ExperienceBased(c.Request.Context(), req.Experience, req.Limit)
	if err != nil {
		abortWithError(c, domainError(err, "recommendation_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}

type seasonalRequest struct {
	Season   string             `json:"season"`
	Location recommend.Location `json:"location"`
	Limit    int                `json:"limit"`
}

// SeasonalRecommendations ranks plants suitable for planting this season.
func (h *Handler) SeasonalRecommendations(c *gin.Context) {
	var req seasonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	loc, ok := h.weatherSvc.Resolve(c.Request.Context(), req.Location)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"recommendations": []recommend.Candidate{}})
		return
	}

	items, err := h.recommendSvc.Seasonal(c.Request.Context(), req.Season, loc, req.Limit)
	if err != nil {
		abortWithError(c, domainError(err, "recommendation_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}

// Chat answers a gardening question, consulting the cache before the LLM.
func (h *Handler) Chat(c *gin.Context) {
	var req chatbot.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.chatSvc.Ask(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err, "chat_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TrendingTopics returns the most asked about gardening topics.
func (h *Handler) TrendingTopics(c *gin.Context) {
	items, err := h.chatSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "chat_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"trending": items})
}

// IdentifyPlant accepts a photo upload and returns identification results.
func (h *Handler) IdentifyPlant(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "photo file is required", err))
		return
	}
	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		abortWithError(c, NewHTTPError(http.StatusRequestEntityTooLarge, "invalid_request", "photo exceeds the upload size limit", nil))
		return
	}

	reader, err := file.Open()
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "photo could not be read", err))
		return
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "photo could not be read", err))
		return
	}

	result, err := h.identifySvc.Identify(c.Request.Context(), identify.Upload{
		FileName: file.Filename,
		MimeType: file.Header.Get("Content-Type"),
		Data:     data,
	})
	if err != nil {
		abortWithError(c, domainError(err, "identify_failed"))
		return
	}
	c.JSON(http.StatusOK, result)
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func domainError(err error, fallbackCode string) *HTTPError {
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		return NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err)
	case apperrors.IsCode(err, "not_found"):
		return NewHTTPError(http.StatusNotFound, "not_found", errMessage(err), err)
	case apperrors.IsCode(err, "conflict"):
		return NewHTTPError(http.StatusConflict, "conflict", errMessage(err), err)
	case apperrors.IsCode(err, "llm_error"), apperrors.IsCode(err, "weather_error"):
		return NewHTTPError(http.StatusBadGateway, fallbackCode, errMessage(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, fallbackCode, errMessage(err), err)
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
