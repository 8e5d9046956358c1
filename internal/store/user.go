package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/quizfolio/quizfolio-api/internal/domain"
)

// UserStore defines the interface for user data persistence, including the
// relation-loading variants the selection and document managers depend on.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns validation errors from the domain User if data is invalid.
	// Returns ErrEmailConflict if the schema enforces email uniqueness and
	// the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// List retrieves all users, ordered by creation time.
	List(ctx context.Context) ([]*domain.User, error)

	// FindByEmail retrieves all users with the given email address.
	// Returns an empty slice when none match; email uniqueness is a schema
	// policy this core does not assume.
	FindByEmail(ctx context.Context, email string) ([]*domain.User, error)

	// GetByID retrieves a user by their unique ID, without relations.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetWithSelections retrieves a user with their chosen-answer relation
	// loaded, each answer carrying its question, in selection order.
	// Returns ErrUserNotFound if the user does not exist.
	GetWithSelections(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetWithDocuments retrieves a user with their owned document set
	// loaded, ordered by creation time.
	// Returns ErrUserNotFound if the user does not exist.
	GetWithDocuments(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// Update persists the given user's account fields.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns validation errors from the domain User if data is invalid.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user row from the store by ID. It does not touch the
	// user's relations; callers cascade explicitly (see service layer).
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
