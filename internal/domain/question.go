package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Common validation errors for Question
var (
	ErrEmptyQuestionID   = errors.New("question ID cannot be empty")
	ErrEmptyQuestionText = errors.New("question text cannot be empty")
)

// Question represents a quiz question. Questions are seeded externally and
// are read-only from this core's perspective; they exist here so answers can
// be grouped and the one-answer-per-question rule can be enforced.
type Question struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

// NewQuestion creates a new Question with the given display text.
// Returns an error if validation fails.
func NewQuestion(text string) (*Question, error) {
	question := &Question{
		ID:   uuid.New(),
		Text: text,
	}

	if err := question.Validate(); err != nil {
		return nil, err
	}

	return question, nil
}

// Validate checks if the Question has valid data.
func (q *Question) Validate() error {
	if q.ID == uuid.Nil {
		return ErrEmptyQuestionID
	}

	if q.Text == "" {
		return ErrEmptyQuestionText
	}

	return nil
}
