package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	LLM      LLMConfig      `yaml:"llm"`
	Postgres PostgresConfig `yaml:"postgres"`
	Chat     ChatConfig     `yaml:"chat"`
	Weather  WeatherConfig  `yaml:"weather"`
	Identify IdentifyConfig `yaml:"identify"`
	Storage  StorageConfig  `yaml:"storage"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// LLMConfig contains ChatGPT/OpenAI settings.
type LLMConfig struct {
	APIKey         string  `yaml:"apiKey"`
	BaseURL        string  `yaml:"baseUrl"`
	Model          string  `yaml:"model"`
	EmbeddingModel string  `yaml:"embeddingModel"`
	Temperature    float32 `yaml:"temperature"`
}

// PostgresConfig contains DSN and pooling settings shared by the plant
// catalog and the chat question log.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ChatConfig controls the gardening assistant behavior.
type ChatConfig struct {
	Prompt              string        `yaml:"prompt"`
	CacheTTL            time.Duration `yaml:"cacheTtl"`
	TopTrending         int           `yaml:"topTrending"`
	SimilarityThreshold float64       `yaml:"similarityThreshold"`
	MaxQuestionTokens   int           `yaml:"maxQuestionTokens"`
	Valkey              ValkeyConfig  `yaml:"valkey"`
}

// ValkeyConfig contains connection information for cache storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// WeatherConfig controls the OpenWeatherMap integration.
type WeatherConfig struct {
	Enabled    bool   `yaml:"enabled"`
	APIBaseURL string `yaml:"apiBaseUrl"`
	APIKey     string `yaml:"apiKey"`
}

// IdentifyConfig controls photo identification.
type IdentifyConfig struct {
	ConfidenceThreshold float64 `yaml:"confidenceThreshold"`
	MaxUploadBytes      int64   `yaml:"maxUploadBytes"`
	APIBaseURL          string  `yaml:"apiBaseUrl"`
	APIKey              string  `yaml:"apiKey"`
}

// StorageConfig contains S3-compatible object storage settings for photos.
type StorageConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = envBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_EMBEDDING_MODEL"); v != "" {
		cfg.LLM.EmbeddingModel = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("CHAT_PROMPT"); v != "" {
		cfg.Chat.Prompt = v
	}
	if v := os.Getenv("CHAT_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Chat.CacheTTL = parsed
		}
	}
	if v := os.Getenv("CHAT_TOP_TRENDING"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Chat.TopTrending = parsed
		}
	}
	if v := os.Getenv("CHAT_SIMILARITY_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Chat.SimilarityThreshold = parsed
		}
	}
	if v := os.Getenv("CHAT_MAX_QUESTION_TOKENS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Chat.MaxQuestionTokens = parsed
		}
	}
	if v := os.Getenv("CHAT_VALKEY_ENABLED"); v != "" {
		cfg.Chat.Valkey.Enabled = envBool(v)
	}
	if v := os.Getenv("CHAT_VALKEY_ADDR"); v != "" {
		cfg.Chat.Valkey.Addr = v
	}
	if v := os.Getenv("WEATHER_ENABLED"); v != "" {
		cfg.Weather.Enabled = envBool(v)
	}
	if v := os.Getenv("WEATHER_API_BASE_URL"); v != "" {
		cfg.Weather.APIBaseURL = v
	}
	if v := os.Getenv("WEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("IDENTIFY_CONFIDENCE_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Identify.ConfidenceThreshold = parsed
		}
	}
	if v := os.Getenv("IDENTIFY_MAX_UPLOAD_BYTES"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Identify.MaxUploadBytes = parsed
		}
	}
	if v := os.Getenv("IDENTIFY_API_BASE_URL"); v != "" {
		cfg.Identify.APIBaseURL = v
	}
	if v := os.Getenv("IDENTIFY_API_KEY"); v != "" {
		cfg.Identify.APIKey = v
	}
	if v := os.Getenv("STORAGE_ENABLED"); v != "" {
		cfg.Storage.Enabled = envBool(v)
	}
	if v := os.Getenv("STORAGE_ENDPOINT"); v != "" {
		cfg.Storage.Endpoint = v
	}
	if v := os.Getenv("STORAGE_ACCESS_KEY"); v != "" {
		cfg.Storage.AccessKey = v
	}
	if v := os.Getenv("STORAGE_SECRET_KEY"); v != "" {
		cfg.Storage.SecretKey = v
	}
	if v := os.Getenv("STORAGE_BUCKET"); v != "" {
		cfg.Storage.Bucket = v
	}
	if v := os.Getenv("STORAGE_REGION"); v != "" {
		cfg.Storage.Region = v
	}
}

func envBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		LLM: LLMConfig{
			Model:          "gpt-4o-mini",
			EmbeddingModel: "text-embedding-3-small",
			Temperature:    0.4,
		},
		Postgres: PostgresConfig{
			DSN:      "",
			MaxConns: 4,
			MinConns: 0,
		},
		Chat: ChatConfig{
			Prompt:              "You are a friendly gardening assistant. Answer the user's plant care question clearly and concisely, with practical steps a home gardener can follow.",
			CacheTTL:            6 * time.Hour,
			TopTrending:         10,
			SimilarityThreshold: 0.25,
			MaxQuestionTokens:   256,
			Valkey: ValkeyConfig{
				Enabled: false,
				Addr:    "",
			},
		},
		Weather: WeatherConfig{
			Enabled:    false,
			APIBaseURL: "https://api.openweathermap.org/data/2.5/weather",
		},
		Identify: IdentifyConfig{
			ConfidenceThreshold: 0.3,
			MaxUploadBytes:      10 << 20,
			APIBaseURL:          "https://my-api.plantnet.org/v2/identify/all",
		},
		Storage: StorageConfig{
			Enabled: false,
			Bucket:  "gardenmate-photos",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if strings.TrimSpace(c.LLM.EmbeddingModel) == "" {
		return errors.New("llm.embeddingModel cannot be empty")
	}
	if c.Chat.Prompt == "" {
		return errors.New("chat.prompt cannot be empty")
	}
	if c.Chat.CacheTTL < 0 {
		return errors.New("chat.cacheTtl cannot be negative")
	}
	if c.Chat.TopTrending < 0 {
		return errors.New("chat.topTrending cannot be negative")
	}
	if c.Chat.SimilarityThreshold < 0 {
		return errors.New("chat.similarityThreshold must be non-negative")
	}
	if c.Chat.MaxQuestionTokens <= 0 {
		return errors.New("chat.maxQuestionTokens must be positive")
	}
	if c.Chat.Valkey.Enabled && strings.TrimSpace(c.Chat.Valkey.Addr) == "" {
		return errors.New("chat.valkey.addr cannot be empty when valkey cache is enabled")
	}
	if c.Weather.Enabled && strings.TrimSpace(c.Weather.APIKey) == "" {
		return errors.New("weather.apiKey cannot be empty when weather is enabled")
	}
	if c.Identify.ConfidenceThreshold < 0 || c.Identify.ConfidenceThreshold > 1 {
		return errors.New("identify.confidenceThreshold must be within [0,1]")
	}
	if c.Identify.MaxUploadBytes <= 0 {
		return errors.New("identify.maxUploadBytes must be positive")
	}
	if c.Storage.Enabled {
		if strings.TrimSpace(c.Storage.Endpoint) == "" {
			return errors.New("storage.endpoint cannot be empty when storage is enabled")
		}
		if strings.TrimSpace(c.Storage.Bucket) == "" {
			return errors.New("storage.bucket cannot be empty when storage is enabled")
		}
	}
	return nil
}
