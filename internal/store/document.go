package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/quizfolio/quizfolio-api/internal/domain"
)

// DocumentStore persists the per-user document set. A document row is both
// the ownership relation and the local record of a generated report.
type DocumentStore interface {
	// Create saves a newly generated document to the store.
	// Returns validation errors from the domain PDFDocument if data is
	// invalid. Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, doc *domain.PDFDocument) error

	// ListForUser retrieves all documents owned by the given user, ordered
	// by creation time.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.PDFDocument, error)

	// Update persists a regenerated document (parameters, content, modified
	// timestamp). Returns ErrDocumentNotFound if the document does not exist.
	Update(ctx context.Context, doc *domain.PDFDocument) error

	// Delete removes a document row by ID.
	// Returns ErrDocumentNotFound if the document does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteForUser removes every document row owned by the given user.
	// Deleting for a user with no documents is not an error.
	DeleteForUser(ctx context.Context, userID uuid.UUID) error

	// WithTx returns a new DocumentStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) DocumentStore
}
