package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/quizfolio/quizfolio-api/internal/domain"
	"github.com/quizfolio/quizfolio-api/internal/platform/logger"
	"github.com/quizfolio/quizfolio-api/internal/store"
)

// QuizService exposes the read-only quiz catalog: the questions and the
// candidate answers users select from. Both are seeded outside this core
// and never mutated here.
type QuizService interface {
	// ListQuestions retrieves all quiz questions.
	ListQuestions(ctx context.Context) ([]*domain.Question, error)

	// ListAnswers retrieves the candidate answers of a question.
	// Returns ErrQuestionNotFound if the question is absent.
	ListAnswers(ctx context.Context, questionID uuid.UUID) ([]*domain.Answer, error)
}

// quizServiceImpl implements the QuizService interface
type quizServiceImpl struct {
	questionRepo store.QuestionStore
	answerRepo   store.AnswerStore
	logger       *slog.Logger
}

// NewQuizService creates a new QuizService.
// It returns an error if any of the required dependencies are nil.
func NewQuizService(
	questionRepo store.QuestionStore,
	answerRepo store.AnswerStore,
	logger *slog.Logger,
) (QuizService, error) {
	if questionRepo == nil {
		return nil, domain.NewValidationError("questionRepo", "cannot be nil", domain.ErrValidation)
	}
	if answerRepo == nil {
		return nil, domain.NewValidationError("answerRepo", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &quizServiceImpl{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		logger:       logger.With(slog.String("component", "quiz_service")),
	}, nil
}

// ListQuestions implements QuizService.ListQuestions
func (s *quizServiceImpl) ListQuestions(ctx context.Context) ([]*domain.Question, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list questions", slog.String("error", err.Error()))
		return nil, NewServiceError("list_questions", "failed to list questions", err)
	}
	return questions, nil
}

// ListAnswers implements QuizService.ListAnswers
func (s *quizServiceImpl) ListAnswers(ctx context.Context, questionID uuid.UUID) ([]*domain.Answer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.questionRepo.GetByID(ctx, questionID); err != nil {
		if errors.Is(err, store.ErrQuestionNotFound) {
			return nil, ErrQuestionNotFound
		}
		log.Error("failed to load question",
			slog.String("error", err.Error()),
			slog.String("question_id", questionID.String()))
		return nil, NewServiceError("list_answers", "failed to load question", err)
	}

	answers, err := s.answerRepo.ListByQuestion(ctx, questionID)
	if err != nil {
		log.Error("failed to list answers",
			slog.String("error", err.Error()),
			slog.String("question_id", questionID.String()))
		return nil, NewServiceError("list_answers", "failed to list answers", err)
	}

	return answers, nil
}
