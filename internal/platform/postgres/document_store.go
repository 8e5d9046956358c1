package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/quizfolio/quizfolio-api/internal/domain"
	"github.com/quizfolio/quizfolio-api/internal/platform/logger"
	"github.com/quizfolio/quizfolio-api/internal/store"
)

// PostgresDocumentStore implements the store.DocumentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresDocumentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDocumentStore creates a new PostgreSQL implementation of the
// DocumentStore interface.
func NewPostgresDocumentStore(db store.DBTX, logger *slog.Logger) *PostgresDocumentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresDocumentStore{
		db:     db,
		logger: logger.With(slog.String("component", "document_store")),
	}
}

// Ensure PostgresDocumentStore implements store.DocumentStore interface
var _ store.DocumentStore = (*PostgresDocumentStore)(nil)

// WithTx implements store.DocumentStore.WithTx
func (s *PostgresDocumentStore) WithTx(tx *sql.Tx) store.DocumentStore {
	return &PostgresDocumentStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.DocumentStore.Create
// Returns store.ErrInvalidEntity if the owning user row does not exist.
func (s *PostgresDocumentStore) Create(ctx context.Context, doc *domain.PDFDocument) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := doc.Validate(); err != nil {
		log.Warn("document validation failed during create",
			slog.String("error", err.Error()),
			slog.String("pdf_id", doc.ID.String()))
		return err
	}

	query := `
		INSERT INTO documents (id, user_id, created_at, modified_at,
		                       generated_p, recommended_p, risk_recommended, content)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.UserID,
		doc.CreatedAt,
		doc.ModifiedAt,
		doc.GeneratedP,
		doc.RecommendedP,
		doc.RiskRecommended,
		doc.Content,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during document creation",
				slog.String("error", err.Error()),
				slog.String("pdf_id", doc.ID.String()),
				slog.String("user_id", doc.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, doc.UserID)
		}

		log.Error("failed to create document",
			slog.String("error", err.Error()),
			slog.String("pdf_id", doc.ID.String()),
			slog.String("user_id", doc.UserID.String()))
		return err
	}

	log.Info("document created successfully",
		slog.String("pdf_id", doc.ID.String()),
		slog.String("user_id", doc.UserID.String()))
	return nil
}

// ListForUser implements store.DocumentStore.ListForUser
func (s *PostgresDocumentStore) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.PDFDocument, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, created_at, modified_at,
		       generated_p, recommended_p, risk_recommended, content
		FROM documents
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list documents",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
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

	log.Debug("listed documents",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(documents)))
	return documents, nil
}

// Update implements store.DocumentStore.Update
// It persists a regenerated document: fresh parameters, content and
// modified timestamp. The creation timestamp never changes.
// Returns store.ErrDocumentNotFound if the document does not exist.
func (s *PostgresDocumentStore) Update(ctx context.Context, doc *domain.PDFDocument) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := doc.Validate(); err != nil {
		log.Warn("document validation failed during update",
			slog.String("error", err.Error()),
			slog.String("pdf_id", doc.ID.String()))
		return err
	}

	query := `
		UPDATE documents
		SET modified_at = $1, generated_p = $2, recommended_p = $3,
		    risk_recommended = $4, content = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		doc.ModifiedAt,
		doc.GeneratedP,
		doc.RecommendedP,
		doc.RiskRecommended,
		doc.Content,
		doc.ID,
	)

	if err != nil {
		log.Error("failed to update document",
			slog.String("error", err.Error()),
			slog.String("pdf_id", doc.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("pdf_id", doc.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("document not found for update",
			slog.String("pdf_id", doc.ID.String()))
		return store.ErrDocumentNotFound
	}

	log.Info("document updated successfully",
		slog.String("pdf_id", doc.ID.String()))
	return nil
}

// Delete implements store.DocumentStore.Delete
// Returns store.ErrDocumentNotFound if the document does not exist.
func (s *PostgresDocumentStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete document",
			slog.String("error", err.Error()),
			slog.String("pdf_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("pdf_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("document not found for delete",
			slog.String("pdf_id", id.String()))
		return store.ErrDocumentNotFound
	}

	log.Info("document deleted successfully",
		slog.String("pdf_id", id.String()))
	return nil
}

// DeleteForUser implements store.DocumentStore.DeleteForUser
// Deleting for a user with no documents is not an error.
func (s *PostgresDocumentStore) DeleteForUser(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM documents WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		log.Error("failed to delete documents for user",
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

	log.Info("documents deleted for user",
		slog.String("user_id", userID.String()),
		slog.Int64("removed", rowsAffected))
	return nil
}
