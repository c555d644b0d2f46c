package chatrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/verdantly/gardenmate/internal/domain/chatbot"
)

// PostgresRepository implements chatbot.QuestionRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// FindExact fetches by literal question text.
func (r *PostgresRepository) FindExact(ctx context.Context, question string) (chatbot.QuestionRecord, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, question_text
		FROM questions
		WHERE question_text = $1
		LIMIT 1
	`, question)
	if err != nil {
		return chatbot.QuestionRecord{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return chatbot.QuestionRecord{}, false, rows.Err()
	}
	var record chatbot.QuestionRecord
	if err := rows.Scan(&record.ID, &record.QuestionText); err != nil {
		return chatbot.QuestionRecord{}, false, err
	}
	return record, true, rows.Err()
}

// FindNearest returns the closest pgvector match.
func (r *PostgresRepository) FindNearest(ctx context.Context, embedding []float32) (chatbot.SimilarityMatch, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, question_text, embedding <-> $1 AS distance
		FROM questions
		ORDER BY embedding <-> $1
		LIMIT 1
	`, pgvector.NewVector(embedding))
	if err != nil {
		return chatbot.SimilarityMatch{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return chatbot.SimilarityMatch{}, false, rows.Err()
	}
	var match chatbot.SimilarityMatch
	if err := rows.Scan(&match.Question.ID, &match.Question.QuestionText, &match.Distance); err != nil {
		return chatbot.SimilarityMatch{}, false, err
	}
	return match, true, rows.Err()
}

// InsertQuestion inserts a newly asked question.
func (r *PostgresRepository) InsertQuestion(ctx context.Context, question string, embedding []float32) (chatbot.QuestionRecord, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO questions (question_text, embedding)
		VALUES ($1, $2)
		RETURNING id, question_text
	`, question, pgvector.NewVector(embedding))
	var record chatbot.QuestionRecord
	if err := row.Scan(&record.ID, &record.QuestionText); err != nil {
		return chatbot.QuestionRecord{}, err
	}
	return record, nil
}

var _ chatbot.QuestionRepository = (*PostgresRepository)(nil)
