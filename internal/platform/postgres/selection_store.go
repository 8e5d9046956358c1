package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/quizfolio/quizfolio-api/internal/domain"
	"github.com/quizfolio/quizfolio-api/internal/platform/logger"
	"github.com/quizfolio/quizfolio-api/internal/store"
)

// PostgresSelectionStore implements the store.SelectionStore interface
// using a PostgreSQL database as the storage backend. The user_answers
// table carries unique constraints on (user_id, answer_id) and
// (user_id, question_id); violations surface as the store's conflict
// sentinels, which makes concurrent duplicate selections lose cleanly at
// the database rather than racing past the service-level checks.
type PostgresSelectionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSelectionStore creates a new PostgreSQL implementation of the
// SelectionStore interface.
func NewPostgresSelectionStore(db store.DBTX, logger *slog.Logger) *PostgresSelectionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSelectionStore{
		db:     db,
		logger: logger.With(slog.String("component", "selection_store")),
	}
}

// Ensure PostgresSelectionStore implements store.SelectionStore interface
var _ store.SelectionStore = (*PostgresSelectionStore)(nil)

// WithTx implements store.SelectionStore.WithTx
func (s *PostgresSelectionStore) WithTx(tx *sql.Tx) store.SelectionStore {
	return &PostgresSelectionStore{
		db:     tx,
		logger: s.logger,
	}
}

// Add implements store.SelectionStore.Add
// The question ID is denormalized into the relation so the per-question
// uniqueness constraint can hold.
func (s *PostgresSelectionStore) Add(ctx context.Context, userID uuid.UUID, answer *domain.Answer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := answer.Validate(); err != nil {
		log.Warn("answer validation failed during selection add",
			slog.String("error", err.Error()),
			slog.String("answer_id", answer.ID.String()))
		return err
	}

	query := `
		INSERT INTO user_answers (user_id, answer_id, question_id, selected_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		userID,
		answer.ID,
		answer.QuestionID,
		time.Now().UTC(),
	)

	if err != nil {
		switch {
		case isUniqueViolation(err, constraintSelectionAnswer):
			log.Warn("answer already selected",
				slog.String("user_id", userID.String()),
				slog.String("answer_id", answer.ID.String()))
			return store.ErrAnswerAlreadySelected
		case isUniqueViolation(err, constraintSelectionQuestion):
			log.Warn("question already answered",
				slog.String("user_id", userID.String()),
				slog.String("question_id", answer.QuestionID.String()))
			return store.ErrQuestionAlreadyAnswered
		case isForeignKeyViolation(err):
			log.Warn("foreign key violation during selection add",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()),
				slog.String("answer_id", answer.ID.String()))
			return fmt.Errorf("%w: user or answer row missing", store.ErrInvalidEntity)
		}

		log.Error("failed to add selection",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("answer_id", answer.ID.String()))
		return err
	}

	log.Info("selection added successfully",
		slog.String("user_id", userID.String()),
		slog.String("answer_id", answer.ID.String()),
		slog.String("question_id", answer.QuestionID.String()))
	return nil
}

// Clear implements store.SelectionStore.Clear
// Clearing a user with no selections is not an error.
func (s *PostgresSelectionStore) Clear(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM user_answers WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		log.Error("failed to clear selections",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	log.Info("selections cleared",
		slog.String("user_id", userID.String()),
		slog.Int64("removed", rowsAffected))
	return nil
}
