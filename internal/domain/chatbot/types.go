package chatbot

import (
	"time"

	"github.com/verdantly/gardenmate/pkg/metrics"
)

// Config holds runtime knobs for the garden assistant.
type Config struct {
	Model               string
	EmbeddingModel      string
	Temperature         float32
	Prompt              string
	CacheTTL            time.Duration
	TopTrending         int
	SimilarityThreshold float64
	MaxQuestionTokens   int
}

// Request is one user message to the assistant.
type Request struct {
	Message string `json:"message"`
}

// Response is returned to the HTTP transport.
type Response struct {
	Message         string              `json:"message"`
	Reply           string              `json:"reply"`
	Source          string              `json:"source"`
	MatchedQuestion string              `json:"matchedQuestion,omitempty"`
	Trending        []TrendingTopic     `json:"trending,omitempty"`
	DurationMs      int64               `json:"durationMs,omitempty"`
	TokenUsage      *metrics.TokenUsage `json:"tokenUsage,omitempty"`
}

// TrendingTopic is a frequently asked gardening topic.
type TrendingTopic struct {
	Topic string `json:"topic"`
	Count int64  `json:"count"`
}

// QuestionRecord represents a stored question row.
type QuestionRecord struct {
	ID           int64
	QuestionText string
}

// AnswerRecord captures the payload persisted in the KV cache.
type AnswerRecord struct {
	QuestionID int64     `json:"questionId"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	CreatedAt  time.Time `json:"createdAt"`
}
