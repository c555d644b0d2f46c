package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/verdantly/gardenmate/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(logger.With("component", "http.access")),
		corsMiddleware(nil),
		errorHandlingMiddleware(logger.With("component", "http.errors")),
		rateLimitMiddleware(cfg.HTTP.RateLimit, logger.With("component", "http.ratelimit")),
	)

	router.GET("/healthz", handler.Healthz)

	api := router.Group("/api/v1")
	{
		api.GET("/plants", handler.SearchPlants)
		api.GET("/plants/:id", handler.GetPlant)
		api.POST("/plants", handler.CreatePlant)

		api.POST("/recommendations/content", handler.ContentRecommendations)
		api.POST("/recommendations/collaborative", handler.CollaborativeRecommendations)
		api.POST("/recommendations/hybrid", handler.HybridRecommendations)
		api.POST("/recommendations/climate", handler.ClimateRecommendations)
		api.POST("/recommendations/experience", handler.ExperienceRecommendations)
		api.POST("/recommendations/seasonal", handler.SeasonalRecommendations)

		api.POST("/chat", handler.Chat)
		api.GET("/chat/trending", handler.TrendingTopics)

		api.POST("/identify", handler.IdentifyPlant)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
