package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/quizfolio/quizfolio-api/internal/domain"
	"github.com/quizfolio/quizfolio-api/internal/platform/logger"
	"github.com/quizfolio/quizfolio-api/internal/store"
)

// PostgresAnswerStore implements the store.AnswerStore interface
// using a PostgreSQL database as the storage backend. Answers are seeded
// externally, so this store is read-only.
type PostgresAnswerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAnswerStore creates a new PostgreSQL implementation of the
// AnswerStore interface.
func NewPostgresAnswerStore(db store.DBTX, logger *slog.Logger) *PostgresAnswerStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAnswerStore{
		db:     db,
		logger: logger.With(slog.String("component", "answer_store")),
	}
}

// Ensure PostgresAnswerStore implements store.AnswerStore interface
var _ store.AnswerStore = (*PostgresAnswerStore)(nil)

// GetByID implements store.AnswerStore.GetByID
// The owning question relation is always loaded; the selection manager
// needs it for the one-answer-per-question check.
// Returns store.ErrAnswerNotFound if the answer does not exist.
func (s *PostgresAnswerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT a.id, a.question_id, a.text, q.text
		FROM answers a
		JOIN questions q ON q.id = a.question_id
		WHERE a.id = $1
	`

	var answer domain.Answer
	var questionText string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&answer.ID,
		&answer.QuestionID,
		&answer.Text,
		&questionText,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("answer not found", slog.String("answer_id", id.String()))
			return nil, store.ErrAnswerNotFound
		}
		log.Error("failed to get answer by ID",
			slog.String("error", err.Error()),
			slog.String("answer_id", id.String()))
		return nil, err
	}

	answer.Question = &domain.Question{
		ID:   answer.QuestionID,
		Text: questionText,
	}

	return &answer, nil
}

// ListByQuestion implements store.AnswerStore.ListByQuestion
func (s *PostgresAnswerStore) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.Answer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, question_id, text
		FROM answers
		WHERE question_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, questionID)
	if err != nil {
		log.Error("failed to list answers by question",
			slog.String("error", err.Error()),
			slog.String("question_id", questionID.String()))
		return nil, err
	}
	defer closeRows(rows, log)

	answers := []*domain.Answer{}
	for rows.Next() {
		var answer domain.Answer
		if err := rows.Scan(&answer.ID, &answer.QuestionID, &answer.Text); err != nil {
			log.Error("failed to scan answer row",
				slog.String("error", err.Error()))
			return nil, err
		}
		answers = append(answers, &answer)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning answer rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed answers by question",
		slog.String("question_id", questionID.String()),
		slog.Int("count", len(answers)))
	return answers, nil
}
