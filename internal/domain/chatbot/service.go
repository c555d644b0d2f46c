package chatbot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/verdantly/gardenmate/internal/infra/llm/chatgpt"
	apperrors "github.com/verdantly/gardenmate/pkg/errors"
	"github.com/verdantly/gardenmate/pkg/metrics"
	"github.com/verdantly/gardenmate/pkg/util"
)

// Service exposes the garden assistant.
type Service interface {
	Ask(ctx context.Context, req Request) (Response, error)
	Trending(ctx context.Context) ([]TrendingTopic, error)
}

// ChatClient is the LLM surface the assistant needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
	CreateEmbedding(ctx context.Context, req chatgpt.EmbeddingRequest) (chatgpt.EmbeddingResponse, error)
}

// TokenCounter reports how many model tokens a text costs.
type TokenCounter interface {
	Count(text string) int
}

type service struct {
	cfg     Config
	repo    QuestionRepository
	store   Store
	client  ChatClient
	counter TokenCounter
	logger  *slog.Logger
}

// NewService wires up the garden assistant domain.
func NewService(cfg Config, repo QuestionRepository, store Store, client ChatClient, counter TokenCounter, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg,
		repo:    repo,
		store:   store,
		client:  client,
		counter: counter,
		logger:  logger.With("component", "chatbot.service"),
	}
}

// Ask answers one gardening question. Lookup order: exact question match, then
// embedding similarity against previously answered questions, then a fresh
// language model call. When the model is unreachable the canned keyword
// fallback keeps the assistant responsive.
func (s *service) Ask(ctx context.Context, req Request) (Response, error) {
	started := time.Now()

	question := strings.TrimSpace(req.Message)
	if question == "" {
		return Response{}, apperrors.Wrap("invalid_input", "message cannot be empty", nil)
	}
	if s.cfg.MaxQuestionTokens > 0 && s.counter.Count(question) > s.cfg.MaxQuestionTokens {
		return Response{}, apperrors.Wrap("invalid_input",
			fmt.Sprintf("message exceeds %d tokens", s.cfg.MaxQuestionTokens), nil)
	}

	record, found, err := s.lookupQuestion(ctx, question)
	if err != nil {
		return Response{}, err
	}

	var (
		answer          string
		source          = "cache"
		matchedQuestion = question
		usage           *metrics.TokenUsage
	)

	if found {
		matchedQuestion = record.QuestionText
		cached, ok, err := s.store.GetAnswer(ctx, record.ID)
		if err != nil {
			s.logger.Warn("answer cache lookup failed", "error", err)
			ok = false
		}
		if ok {
			answer = cached.Answer
		} else {
			answer, usage, source = s.generateOrFallback(ctx, record.ID, record.QuestionText)
		}
	} else {
		record, err = s.registerQuestion(ctx, question)
		if err != nil {
			s.logger.Warn("question insert failed", "error", err)
		}
		answer, usage, source = s.generateOrFallback(ctx, record.ID, question)
	}

	if err := s.store.IncrementTopic(ctx, normalizeTopic(question), question); err != nil {
		s.logger.Warn("trending increment failed", "error", err)
	}
	trending, err := s.store.TopTopics(ctx, s.cfg.TopTrending)
	if err != nil {
		s.logger.Warn("trending fetch failed", "error", err)
		trending = nil
	}

	return Response{
		Message:         question,
		Reply:           answer,
		Source:          source,
		MatchedQuestion: matchedQuestion,
		Trending:        trending,
		DurationMs:      time.Since(started).Milliseconds(),
		TokenUsage:      usage,
	}, nil
}

func (s *service) Trending(ctx context.Context) ([]TrendingTopic, error) {
	topics, err := s.store.TopTopics(ctx, s.cfg.TopTrending)
	if err != nil {
		return nil, apperrors.Wrap("chatbot_error", "failed to load trending topics", err)
	}
	return topics, nil
}

func (s *service) lookupQuestion(ctx context.Context, question string) (QuestionRecord, bool, error) {
	record, found, err := s.repo.FindExact(ctx, question)
	if err != nil {
		return QuestionRecord{}, false, apperrors.Wrap("chatbot_error", "exact lookup failed", err)
	}
	if found {
		return record, true, nil
	}

	embedding, err := s.embed(ctx, question)
	if err != nil {
		// similarity tier is best-effort, the fallback path still answers
		s.logger.Warn("question embedding failed", "error", err)
		return QuestionRecord{}, false, nil
	}
	match, found, err := s.repo.FindNearest(ctx, embedding)
	if err != nil {
		return QuestionRecord{}, false, apperrors.Wrap("chatbot_error", "similarity lookup failed", err)
	}
	if found && match.Distance <= s.cfg.SimilarityThreshold {
		return match.Question, true, nil
	}
	return QuestionRecord{}, false, nil
}

func (s *service) registerQuestion(ctx context.Context, question string) (QuestionRecord, error) {
	embedding, err := s.embed(ctx, question)
	if err != nil {
		return QuestionRecord{}, err
	}
	return s.repo.InsertQuestion(ctx, question, embedding)
}

// generateOrFallback asks the language model and degrades to the keyword rule
// list when the call fails. The returned source is "llm" or "fallback".
func (s *service) generateOrFallback(ctx context.Context, questionID int64, question string) (string, *metrics.TokenUsage, string) {
	answer, usage, err := s.askLLM(ctx, question)
	if err != nil {
		s.logger.Warn("language model unavailable, using fallback", "error", err)
		return fallbackReply(question), nil, "fallback"
	}
	if questionID == 0 {
		return answer, usage, "llm"
	}
	record := AnswerRecord{
		QuestionID: questionID,
		Question:   question,
		Answer:     answer,
		CreatedAt:  util.NowUTC(),
	}
	if err := s.store.SaveAnswer(ctx, record, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("answer cache save failed", "error", err)
	}
	return answer, usage, "llm"
}

func (s *service) askLLM(ctx context.Context, question string) (string, *metrics.TokenUsage, error) {
	prompt := strings.TrimSpace(s.cfg.Prompt)
	if prompt == "" {
		prompt = "You are a friendly gardening assistant. Give practical plant care advice."
	}
	resp, err := s.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []chatgpt.Message{
			{Role: "system", Content: prompt},
			{Role: "user", Content: fmt.Sprintf("Question: %s\nAnswer concisely in 3 sentences or less.", question)},
		},
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", nil, err
	}
	if len(resp.Choices) == 0 {
		return "", nil, errors.New("empty choices")
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", nil, errors.New("empty completion")
	}
	var usage *metrics.TokenUsage
	if resp.Usage.TotalTokens > 0 {
		usage = &metrics.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return answer, usage, nil
}

func (s *service) embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := s.client.CreateEmbedding(ctx, chatgpt.EmbeddingRequest{
		Model: s.cfg.EmbeddingModel,
		Input: text,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, errors.New("embedding response empty")
	}
	vector := make([]float32, len(resp.Data[0].Embedding))
	copy(vector, resp.Data[0].Embedding)
	return vector, nil
}
