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

// PostgresQuestionStore implements the store.QuestionStore interface
// using a PostgreSQL database as the storage backend. Questions are seeded
// externally, so this store is read-only.
type PostgresQuestionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresQuestionStore creates a new PostgreSQL implementation of the
// QuestionStore interface.
func NewPostgresQuestionStore(db store.DBTX, logger *slog.Logger) *PostgresQuestionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresQuestionStore{
		db:     db,
		logger: logger.With(slog.String("component", "question_store")),
	}
}

// Ensure PostgresQuestionStore implements store.QuestionStore interface
var _ store.QuestionStore = (*PostgresQuestionStore)(nil)

// GetByID implements store.QuestionStore.GetByID
// Returns store.ErrQuestionNotFound if the question does not exist.
func (s *PostgresQuestionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var question domain.Question
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, text FROM questions WHERE id = $1`,
		id,
	).Scan(&question.ID, &question.Text)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("question not found", slog.String("question_id", id.String()))
			return nil, store.ErrQuestionNotFound
		}
		log.Error("failed to get question by ID",
			slog.String("error", err.Error()),
			slog.String("question_id", id.String()))
		return nil, err
	}

	return &question, nil
}

// List implements store.QuestionStore.List
func (s *PostgresQuestionStore) List(ctx context.Context) ([]*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, text FROM questions ORDER BY id`)
	if err != nil {
		log.Error("failed to list questions", slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	questions := []*domain.Question{}
	for rows.Next() {
		var question domain.Question
		if err := rows.Scan(&question.ID, &question.Text); err != nil {
			log.Error("failed to scan question row",
				slog.String("error", err.Error()))
			return nil, err
		}
		questions = append(questions, &question)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning question rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed questions", slog.Int("count", len(questions)))
	return questions, nil
}
