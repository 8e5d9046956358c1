package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/quizfolio/quizfolio-api/internal/domain"
)

// AnswerStore defines read access to candidate answers. Answers are seeded
// externally; this core never mutates them.
type AnswerStore interface {
	// GetByID retrieves an answer by its unique ID with its owning question
	// loaded. Returns ErrAnswerNotFound if the answer does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error)

	// ListByQuestion retrieves all candidate answers of a question.
	ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.Answer, error)
}
