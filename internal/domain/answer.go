package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Common validation errors for Answer
var (
	ErrEmptyAnswerID         = errors.New("answer ID cannot be empty")
	ErrEmptyAnswerText       = errors.New("answer text cannot be empty")
	ErrEmptyAnswerQuestionID = errors.New("answer question ID cannot be empty")
)

// Answer represents one candidate answer of a question. Answers are seeded
// externally and immutable here; they belong to exactly one question. The
// Question back-reference is populated by relation-loading store calls.
type Answer struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	Text       string    `json:"text"`

	// Question is the owning question, loaded on demand. May be nil when
	// the answer was fetched without its relation.
	Question *Question `json:"question,omitempty"`
}

// NewAnswer creates a new Answer for the given question.
// Returns an error if validation fails.
func NewAnswer(questionID uuid.UUID, text string) (*Answer, error) {
	answer := &Answer{
		ID:         uuid.New(),
		QuestionID: questionID,
		Text:       text,
	}

	if err := answer.Validate(); err != nil {
		return nil, err
	}

	return answer, nil
}

// Validate checks if the Answer has valid data.
func (a *Answer) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAnswerID
	}

	if a.QuestionID == uuid.Nil {
		return ErrEmptyAnswerQuestionID
	}

	if a.Text == "" {
		return ErrEmptyAnswerText
	}

	return nil
}
