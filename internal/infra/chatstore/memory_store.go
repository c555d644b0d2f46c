package chatstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/verdantly/gardenmate/internal/domain/chatbot"
)

type cachedAnswer struct {
	payload   chatbot.AnswerRecord
	expiresAt time.Time
}

// MemoryStore is an in-memory assistant store for tests and dev setups
// without Valkey.
type MemoryStore struct {
	mu       sync.RWMutex
	answers  map[int64]cachedAnswer
	trending map[string]int64
	displays map[string]string
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		answers:  make(map[int64]cachedAnswer),
		trending: make(map[string]int64),
		displays: make(map[string]string),
	}
}

func (s *MemoryStore) GetAnswer(_ context.Context, questionID int64) (chatbot.AnswerRecord, bool, error) {
	if questionID <= 0 {
		return chatbot.AnswerRecord{}, false, nil
	}
	s.mu.RLock()
	record, ok := s.answers[questionID]
	s.mu.RUnlock()
	if !ok {
		return chatbot.AnswerRecord{}, false, nil
	}
	if !record.expiresAt.IsZero() && record.expiresAt.Before(time.Now()) {
		s.mu.Lock()
		delete(s.answers, questionID)
		s.mu.Unlock()
		return chatbot.AnswerRecord{}, false, nil
	}
	return record.payload, true, nil
}

func (s *MemoryStore) SaveAnswer(_ context.Context, record chatbot.AnswerRecord, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.answers[record.QuestionID] = cachedAnswer{payload: record, expiresAt: exp}
	return nil
}

func (s *MemoryStore) IncrementTopic(_ context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trending[canonical]++
	if _, exists := s.displays[canonical]; !exists {
		s.displays[canonical] = display
	}
	return nil
}

func (s *MemoryStore) TopTopics(_ context.Context, limit int) ([]chatbot.TrendingTopic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.trending)
	}
	items := make([]chatbot.TrendingTopic, 0, len(s.trending))
	for canonical, count := range s.trending {
		display := s.displays[canonical]
		if display == "" {
			display = canonical
		}
		items = append(items, chatbot.TrendingTopic{Topic: display, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Topic < items[j].Topic
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ chatbot.Store = (*MemoryStore)(nil)
