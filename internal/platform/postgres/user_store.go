package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/quizfolio/quizfolio-api/internal/domain"
	"github.com/quizfolio/quizfolio-api/internal/platform/logger"
	"github.com/quizfolio/quizfolio-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.UserStore.Create
// It saves a new user to the database, handling domain validation.
// Returns store.ErrEmailConflict when a schema-level unique index on email
// rejects the row.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	query := `
		INSERT INTO users (id, username, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.Email,
		user.Password,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, constraintUserEmail) {
			log.Warn("email already taken",
				slog.String("user_id", user.ID.String()),
				slog.String("email", user.Email))
			return store.ErrEmailConflict
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()))
	return nil
}

// List implements store.UserStore.List
// It retrieves all users ordered by creation time.
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, email, password, created_at, updated_at
		FROM users
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	users, err := scanUsers(rows)
	if err != nil {
		log.Error("failed to scan user rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed users", slog.Int("count", len(users)))
	return users, nil
}

// FindByEmail implements store.UserStore.FindByEmail
// It retrieves all users with the given email address. Email uniqueness is
// a schema policy this core does not assume, so the result is a slice.
func (s *PostgresUserStore) FindByEmail(ctx context.Context, email string) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, email, password, created_at, updated_at
		FROM users
		WHERE email = $1
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, email)
	if err != nil {
		log.Error("failed to find users by email",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	users, err := scanUsers(rows)
	if err != nil {
		log.Error("failed to scan user rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("found users by email", slog.Int("count", len(users)))
	return users, nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving user by ID", slog.String("user_id", id.String()))

	query := `
		SELECT id, username, email, password, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, err
	}

	return &user, nil
}

// GetWithSelections implements store.UserStore.GetWithSelections
// It loads the user together with their chosen answers, each answer carrying
// its question, in selection order.
func (s *PostgresUserStore) GetWithSelections(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT a.id, a.question_id, a.text, q.text
		FROM user_answers ua
		JOIN answers a ON a.id = ua.answer_id
		JOIN questions q ON q.id = a.question_id
		WHERE ua.user_id = $1
		ORDER BY ua.selected_at, a.id
	`

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		log.Error("failed to load user selections",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, err
	}
	defer closeRows(rows, log)

	selections := []*domain.Answer{}
	for rows.Next() {
		var answer domain.Answer
		var questionText string

		err := rows.Scan(&answer.ID, &answer.QuestionID, &answer.Text, &questionText)
		if err != nil {
			log.Error("failed to scan selection row",
				slog.String("error", err.Error()))
			return nil, err
		}

		answer.Question = &domain.Question{
			ID:   answer.QuestionID,
			Text: questionText,
		}
		selections = append(selections, &answer)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning selection rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	user.ChosenAnswers = selections

	log.Debug("loaded user with selections",
		slog.String("user_id", id.String()),
		slog.Int("selection_count", len(selections)))
	return user, nil
}

// GetWithDocuments implements store.UserStore.GetWithDocuments
// It loads the user together with their owned document set, ordered by
// creation time.
func (s *PostgresUserStore) GetWithDocuments(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, created_at, modified_at,
		       generated_p, recommended_p, risk_recommended, content
		FROM documents
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		log.Error("failed to load user documents",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, err
	}
	defer closeRows(rows, log)

	documents := []*domain.PDFDocument{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			log.Error("failed to scan document row",
				slog.String("error", err.Error()))
			return nil, err
		}
		documents = append(documents, doc)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning document rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	user.Documents = documents

	log.Debug("loaded user with documents",
		slog.String("user_id", id.String()),
		slog.Int("document_count", len(documents)))
	return user, nil
}

// Update implements store.UserStore.Update
// It persists the user's account fields.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	query := `
		UPDATE users
		SET username = $1, email = $2, password = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		user.Username,
		user.Email,
		user.Password,
		user.UpdatedAt,
		user.ID,
	)

	if err != nil {
		if isUniqueViolation(err, constraintUserEmail) {
			log.Warn("email already taken on update",
				slog.String("user_id", user.ID.String()))
			return store.ErrEmailConflict
		}

		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("user not found for update",
			slog.String("user_id", user.ID.String()))
		return store.ErrUserNotFound
	}

	log.Info("user updated successfully",
		slog.String("user_id", user.ID.String()))
	return nil
}

// Delete implements store.UserStore.Delete
// It removes the user row only; relation cleanup is the caller's
// responsibility and happens in the same transaction (see service layer).
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("user not found for delete",
			slog.String("user_id", id.String()))
		return store.ErrUserNotFound
	}

	log.Info("user deleted successfully",
		slog.String("user_id", id.String()))
	return nil
}

// scanUsers drains a result set of user rows.
func scanUsers(rows *sql.Rows) ([]*domain.User, error) {
	users := []*domain.User{}
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.Password,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// closeRows closes a result set, logging close failures.
func closeRows(rows *sql.Rows, log *slog.Logger) {
	if err := rows.Close(); err != nil {
		log.Error("failed to close rows", slog.String("error", err.Error()))
	}
}

// scanDocument scans one document row.
func scanDocument(rows *sql.Rows) (*domain.PDFDocument, error) {
	var doc domain.PDFDocument
	err := rows.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.CreatedAt,
		&doc.ModifiedAt,
		&doc.GeneratedP,
		&doc.RecommendedP,
		&doc.RiskRecommended,
		&doc.Content,
	)
	if err != nil {
		return nil, fmt.Errorf("scan document: %w", err)
	}
	return &doc, nil
}
