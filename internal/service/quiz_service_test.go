package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/quizfolio/quizfolio-api/internal/domain"
	"github.com/quizfolio/quizfolio-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuizService(t *testing.T) (QuizService, *MockQuestionStore, *MockAnswerStore) {
	t.Helper()

	questionRepo := &MockQuestionStore{}
	answerRepo := &MockAnswerStore{}

	svc, err := NewQuizService(questionRepo, answerRepo, slog.Default())
	require.NoError(t, err)

	return svc, questionRepo, answerRepo
}

func TestQuizService_ListQuestions(t *testing.T) {
	t.Run("returns the catalog", func(t *testing.T) {
		svc, questionRepo, _ := newQuizService(t)

		questions := []*domain.Question{
			{ID: uuid.New(), Text: "Favorite color?"},
			{ID: uuid.New(), Text: "Preferred season?"},
		}
		questionRepo.On("List", mock.Anything).Return(questions, nil)

		got, err := svc.ListQuestions(context.Background())

		require.NoError(t, err)
		assert.Equal(t, questions, got)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		svc, questionRepo, _ := newQuizService(t)

		storeErr := errors.New("connection reset")
		questionRepo.On("List", mock.Anything).Return(nil, storeErr)

		got, err := svc.ListQuestions(context.Background())

		assert.Nil(t, got)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestQuizService_ListAnswers(t *testing.T) {
	questionID := uuid.New()

	t.Run("returns the question's candidates", func(t *testing.T) {
		svc, questionRepo, answerRepo := newQuizService(t)

		question := &domain.Question{ID: questionID, Text: "Favorite color?"}
		answers := []*domain.Answer{
			{ID: uuid.New(), QuestionID: questionID, Text: "Blue"},
			{ID: uuid.New(), QuestionID: questionID, Text: "Green"},
		}

		questionRepo.On("GetByID", mock.Anything, questionID).Return(question, nil)
		answerRepo.On("ListByQuestion", mock.Anything, questionID).Return(answers, nil)

		got, err := svc.ListAnswers(context.Background(), questionID)

		require.NoError(t, err)
		assert.Equal(t, answers, got)
	})

	t.Run("question not found", func(t *testing.T) {
		svc, questionRepo, answerRepo := newQuizService(t)

		questionRepo.On("GetByID", mock.Anything, questionID).
			Return(nil, store.ErrQuestionNotFound)

		got, err := svc.ListAnswers(context.Background(), questionID)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrQuestionNotFound)
		answerRepo.AssertNotCalled(t, "ListByQuestion", mock.Anything, mock.Anything)
	})
}
