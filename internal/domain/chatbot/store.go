package chatbot

import (
	"context"
	"time"
)

// Store defines the persistence contract for assistant cache data.
type Store interface {
	GetAnswer(ctx context.Context, questionID int64) (AnswerRecord, bool, error)
	SaveAnswer(ctx context.Context, record AnswerRecord, ttl time.Duration) error
	IncrementTopic(ctx context.Context, canonical, display string) error
	TopTopics(ctx context.Context, limit int) ([]TrendingTopic, error)
}
