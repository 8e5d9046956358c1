package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/quizfolio/quizfolio-api/internal/domain"
)

// QuestionStore defines read access to quiz questions. Questions are seeded
// externally; this core never mutates them.
type QuestionStore interface {
	// GetByID retrieves a question by its unique ID.
	// Returns ErrQuestionNotFound if the question does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)

	// List retrieves all questions.
	List(ctx context.Context) ([]*domain.Question, error)
}
