package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/quizfolio/quizfolio-api/internal/domain"
)

// SelectionStore persists the user→answer selection relation. The backing
// schema carries unique constraints on (user, answer) and (user, question),
// which makes the store the serialization point for concurrent selections:
// whichever insert commits second loses with a conflict error.
type SelectionStore interface {
	// Add appends an answer to a user's selection set. The answer must carry
	// its QuestionID so the (user, question) constraint applies.
	// Returns ErrAnswerAlreadySelected if the answer is already selected.
	// Returns ErrQuestionAlreadyAnswered if another answer of the same
	// question is already selected.
	// Returns ErrInvalidEntity if the user or answer row does not exist.
	Add(ctx context.Context, userID uuid.UUID, answer *domain.Answer) error

	// Clear removes every selection of the given user. Clearing a user with
	// no selections is not an error.
	Clear(ctx context.Context, userID uuid.UUID) error

	// WithTx returns a new SelectionStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) SelectionStore
}
