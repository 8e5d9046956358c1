package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewAnswer(t *testing.T) {
	questionID := uuid.New()

	answer, err := NewAnswer(questionID, "Blue")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if answer.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if answer.QuestionID != questionID {
		t.Errorf("Expected question ID %v, got %v", questionID, answer.QuestionID)
	}

	if _, err = NewAnswer(uuid.Nil, "Blue"); err != ErrEmptyAnswerQuestionID {
		t.Errorf("Expected error %v, got %v", ErrEmptyAnswerQuestionID, err)
	}

	if _, err = NewAnswer(questionID, ""); err != ErrEmptyAnswerText {
		t.Errorf("Expected error %v, got %v", ErrEmptyAnswerText, err)
	}
}

func TestNewQuestion(t *testing.T) {
	question, err := NewQuestion("Favorite color?")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if question.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if _, err = NewQuestion(""); err != ErrEmptyQuestionText {
		t.Errorf("Expected error %v, got %v", ErrEmptyQuestionText, err)
	}
}
