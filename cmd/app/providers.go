package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/verdantly/gardenmate/internal/catalog"
	"github.com/verdantly/gardenmate/internal/domain/chatbot"
	"github.com/verdantly/gardenmate/internal/domain/identify"
	"github.com/verdantly/gardenmate/internal/domain/plant"
	"github.com/verdantly/gardenmate/internal/domain/recommend"
	"github.com/verdantly/gardenmate/internal/domain/weather"
	"github.com/verdantly/gardenmate/internal/infra/chatrepo"
	"github.com/verdantly/gardenmate/internal/infra/chatstore"
	"github.com/verdantly/gardenmate/internal/infra/config"
	"github.com/verdantly/gardenmate/internal/infra/identifier/plantnet"
	"github.com/verdantly/gardenmate/internal/infra/llm/chatgpt"
	"github.com/verdantly/gardenmate/internal/infra/photostore"
	"github.com/verdantly/gardenmate/internal/infra/plantrepo"
	"github.com/verdantly/gardenmate/internal/infra/weather/openweather"
)

// plantBackend is satisfied by both plant repository implementations, which
// double as candidate sources for the recommenders.
type plantBackend interface {
	plant.Repository
	recommend.CandidateSource
}

func provideChatGPTClient(cfg *config.Config) (*chatgpt.Client, error) {
	return chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}

func providePgxPool(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, storage falls back to memory")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, storage falls back to memory", "error", err)
		return nil
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, storage falls back to memory", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, storage falls back to memory", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres storage enabled")
	return pool
}

func providePlantBackend(pool *pgxpool.Pool, logger *slog.Logger) plantBackend {
	if pool == nil {
		logger.Info("plant catalog using memory repository seeded with the base catalog")
		return plantrepo.NewMemoryRepository(catalog.Base)
	}
	return plantrepo.NewPostgresRepository(pool)
}

func providePlantRepository(backend plantBackend) plant.Repository {
	return backend
}

func provideCandidateSource(backend plantBackend) recommend.CandidateSource {
	return backend
}

func provideCollaborator() recommend.Collaborator {
	return recommend.NewStaticCollaborator(nil, nil)
}

func provideChatConfig(cfg *config.Config) chatbot.Config {
	return chatbot.Config{
		Model:               cfg.LLM.Model,
		EmbeddingModel:      cfg.LLM.EmbeddingModel,
		Temperature:         cfg.LLM.Temperature,
		Prompt:              cfg.Chat.Prompt,
		CacheTTL:            cfg.Chat.CacheTTL,
		TopTrending:         cfg.Chat.TopTrending,
		SimilarityThreshold: cfg.Chat.SimilarityThreshold,
		MaxQuestionTokens:   cfg.Chat.MaxQuestionTokens,
	}
}

func provideQuestionRepository(pool *pgxpool.Pool, logger *slog.Logger) chatbot.QuestionRepository {
	if pool == nil {
		logger.Info("chat question log using memory repository")
		return chatrepo.NewMemoryRepository()
	}
	return chatrepo.NewPostgresRepository(pool)
}

func provideChatStore(cfg *config.Config, logger *slog.Logger) chatbot.Store {
	if cfg.Chat.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return chatstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return chatstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("chat valkey store enabled", "addr", cfg.Chat.Valkey.Addr)
			return chatstore.NewValkeyStore(client, "garden")
		}
	}
	return chatstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Chat.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Chat.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Chat.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideTokenCounter(cfg *config.Config) chatbot.TokenCounter {
	return chatbot.NewBPECounter(cfg.LLM.Model)
}

func provideIdentifyConfig(cfg *config.Config) identify.Config {
	return identify.Config{
		ConfidenceThreshold: cfg.Identify.ConfidenceThreshold,
		MaxUploadBytes:      cfg.Identify.MaxUploadBytes,
	}
}

func provideObjectStorage(cfg *config.Config, logger *slog.Logger) identify.ObjectStorage {
	if !cfg.Storage.Enabled {
		logger.Info("photo storage using memory backend")
		return photostore.NewMemoryStorage()
	}
	storage, err := photostore.NewMinioStorage(
		cfg.Storage.Endpoint,
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.Bucket,
		cfg.Storage.Region,
		logger,
	)
	if err != nil {
		logger.Error("failed to initialize object storage, falling back to memory", "error", err)
		return photostore.NewMemoryStorage()
	}
	return storage
}

func provideClassifier(cfg *config.Config) identify.Classifier {
	return plantnet.NewClient(cfg.Identify.APIBaseURL, cfg.Identify.APIKey)
}

func provideWeatherProvider(cfg *config.Config) weather.Provider {
	return openweather.NewClient(cfg.Weather.APIBaseURL, cfg.Weather.APIKey)
}

func provideMaxUploadBytes(cfg *config.Config) int64 {
	return cfg.Identify.MaxUploadBytes
}
