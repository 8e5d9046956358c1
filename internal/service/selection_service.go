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

// AnswerGroup is one entry of an answers summary: a question's text and the
// texts of the answers the user selected for it, in selection order. Under
// the one-answer-per-question rule the slice has a single element, but the
// grouping does not assume that, in case the invariant was bypassed
// elsewhere.
type AnswerGroup struct {
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
}

// SelectionService mediates a user's answer selections. It enforces the two
// selection invariants: an answer is selected at most once, and each
// question has at most one selected answer.
type SelectionService interface {
	// SelectAnswer appends the answer to the user's selection set and
	// returns it.
	// Returns ErrUserNotFound or ErrAnswerNotFound if either is absent.
	// Returns ErrAnswerAlreadySelected if the exact answer is already selected.
	// Returns ErrQuestionAlreadyAnswered if another answer of the same
	// question is already selected.
	SelectAnswer(ctx context.Context, userID, answerID uuid.UUID) (*domain.Answer, error)

	// ClearAnswers resets the user's entire selection set. There is no
	// per-question clear; every question returns to unanswered at once.
	// Returns ErrUserNotFound if the user is absent.
	ClearAnswers(ctx context.Context, userID uuid.UUID) error

	// GetAnswersSummary returns the user's selections grouped by question,
	// preserving first-seen question order.
	// Returns ErrUserNotFound if the user is absent.
	GetAnswersSummary(ctx context.Context, userID uuid.UUID) ([]AnswerGroup, error)
}

// selectionServiceImpl implements the SelectionService interface
type selectionServiceImpl struct {
	userRepo      store.UserStore
	answerRepo    store.AnswerStore
	selectionRepo store.SelectionStore
	logger        *slog.Logger
}

// NewSelectionService creates a new SelectionService.
// It returns an error if any of the required dependencies are nil.
func NewSelectionService(
	userRepo store.UserStore,
	answerRepo store.AnswerStore,
	selectionRepo store.SelectionStore,
	logger *slog.Logger,
) (SelectionService, error) {
	if userRepo == nil {
		return nil, domain.NewValidationError("userRepo", "cannot be nil", domain.ErrValidation)
	}
	if answerRepo == nil {
		return nil, domain.NewValidationError("answerRepo", "cannot be nil", domain.ErrValidation)
	}
	if selectionRepo == nil {
		return nil, domain.NewValidationError("selectionRepo", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &selectionServiceImpl{
		userRepo:      userRepo,
		answerRepo:    answerRepo,
		selectionRepo: selectionRepo,
		logger:        logger.With(slog.String("component", "selection_service")),
	}, nil
}

// SelectAnswer implements SelectionService.SelectAnswer
// The in-memory checks against the loaded relation are the fast path; the
// store's unique constraints catch selections racing past them, surfacing
// the same conflict sentinels.
func (s *selectionServiceImpl) SelectAnswer(ctx context.Context, userID, answerID uuid.UUID) (*domain.Answer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userRepo.GetWithSelections(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error("failed to load user with selections",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("select_answer", "failed to load user", err)
	}

	answer, err := s.answerRepo.GetByID(ctx, answerID)
	if err != nil {
		if errors.Is(err, store.ErrAnswerNotFound) {
			return nil, ErrAnswerNotFound
		}
		log.Error("failed to load answer",
			slog.String("error", err.Error()),
			slog.String("answer_id", answerID.String()))
		return nil, NewServiceError("select_answer", "failed to load answer", err)
	}

	if user.HasChosenAnswer(answer.ID) {
		log.Debug("answer already selected",
			slog.String("user_id", userID.String()),
			slog.String("answer_id", answerID.String()))
		return nil, ErrAnswerAlreadySelected
	}

	if prior := user.AnswerForQuestion(answer.QuestionID); prior != nil {
		log.Debug("question already answered",
			slog.String("user_id", userID.String()),
			slog.String("question_id", answer.QuestionID.String()),
			slog.String("prior_answer_id", prior.ID.String()))
		return nil, ErrQuestionAlreadyAnswered
	}

	if err := s.selectionRepo.Add(ctx, user.ID, answer); err != nil {
		switch {
		case errors.Is(err, store.ErrAnswerAlreadySelected):
			return nil, ErrAnswerAlreadySelected
		case errors.Is(err, store.ErrQuestionAlreadyAnswered):
			return nil, ErrQuestionAlreadyAnswered
		}
		log.Error("failed to persist selection",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("answer_id", answerID.String()))
		return nil, NewServiceError("select_answer", "failed to persist selection", err)
	}

	log.Info("answer selected",
		slog.String("user_id", userID.String()),
		slog.String("answer_id", answer.ID.String()),
		slog.String("question_id", answer.QuestionID.String()))
	return answer, nil
}

// ClearAnswers implements SelectionService.ClearAnswers
func (s *selectionServiceImpl) ClearAnswers(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to load user for clear",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return NewServiceError("clear_answers", "failed to load user", err)
	}

	if err := s.selectionRepo.Clear(ctx, userID); err != nil {
		log.Error("failed to clear selections",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return NewServiceError("clear_answers", "failed to clear selections", err)
	}

	log.Info("selections cleared", slog.String("user_id", userID.String()))
	return nil
}

// GetAnswersSummary implements SelectionService.GetAnswersSummary
// Grouping preserves first-seen question order and, within a group,
// selection order of the answer texts.
func (s *selectionServiceImpl) GetAnswersSummary(ctx context.Context, userID uuid.UUID) ([]AnswerGroup, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userRepo.GetWithSelections(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error("failed to load user with selections",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("get_answers_summary", "failed to load user", err)
	}

	groups := []AnswerGroup{}
	index := make(map[uuid.UUID]int)

	for _, answer := range user.ChosenAnswers {
		if i, ok := index[answer.QuestionID]; ok {
			groups[i].Answers = append(groups[i].Answers, answer.Text)
			continue
		}

		var questionText string
		if answer.Question != nil {
			questionText = answer.Question.Text
		}

		index[answer.QuestionID] = len(groups)
		groups = append(groups, AnswerGroup{
			Question: questionText,
			Answers:  []string{answer.Text},
		})
	}

	log.Debug("answers summary built",
		slog.String("user_id", userID.String()),
		slog.Int("group_count", len(groups)))
	return groups, nil
}
