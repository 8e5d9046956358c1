package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/quizfolio/quizfolio-api/internal/domain"
	"github.com/quizfolio/quizfolio-api/internal/pdfgen"
	"github.com/quizfolio/quizfolio-api/internal/platform/logger"
	"github.com/quizfolio/quizfolio-api/internal/store"
)

// SignupRequest carries the fields of a new account registration.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserService provides account lifecycle operations. It performs no
// email/username uniqueness validation of its own; that is a persistence
// schema policy.
type UserService interface {
	// Signup registers a new user from a signup request.
	Signup(ctx context.Context, req SignupRequest) (*domain.User, error)

	// CreateUser creates a new user from individual account fields.
	CreateUser(ctx context.Context, username, email, password string) (*domain.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// FindByEmail retrieves all users with the given email address.
	FindByEmail(ctx context.Context, email string) ([]*domain.User, error)

	// GetByID retrieves a user by ID. Returns ErrUserNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// Update applies a partial-field merge to the user and persists the
	// merged record; fields absent from the update are preserved.
	// Returns ErrUserNotFound if absent.
	Update(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (*domain.User, error)

	// Delete removes a user permanently. Owned state is cascaded
	// explicitly: generated PDFs are deleted through the generation
	// service, then the selection set, document rows and user row are
	// removed in a single transaction. Returns ErrUserNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo      store.UserStore
	selectionRepo store.SelectionStore
	documentRepo  store.DocumentStore
	pdfService    pdfgen.Service
	db            *sql.DB
	logger        *slog.Logger
}

// NewUserService creates a new UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(
	userRepo store.UserStore,
	selectionRepo store.SelectionStore,
	documentRepo store.DocumentStore,
	pdfService pdfgen.Service,
	db *sql.DB,
	logger *slog.Logger,
) (UserService, error) {
	if userRepo == nil {
		return nil, domain.NewValidationError("userRepo", "cannot be nil", domain.ErrValidation)
	}
	if selectionRepo == nil {
		return nil, domain.NewValidationError("selectionRepo", "cannot be nil", domain.ErrValidation)
	}
	if documentRepo == nil {
		return nil, domain.NewValidationError("documentRepo", "cannot be nil", domain.ErrValidation)
	}
	if pdfService == nil {
		return nil, domain.NewValidationError("pdfService", "cannot be nil", domain.ErrValidation)
	}
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userRepo:      userRepo,
		selectionRepo: selectionRepo,
		documentRepo:  documentRepo,
		pdfService:    pdfService,
		db:            db,
		logger:        logger.With(slog.String("component", "user_service")),
	}, nil
}

// Signup implements UserService.Signup
func (s *userServiceImpl) Signup(ctx context.Context, req SignupRequest) (*domain.User, error) {
	return s.CreateUser(ctx, req.Username, req.Email, req.Password)
}

// CreateUser implements UserService.CreateUser
func (s *userServiceImpl) CreateUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(username, email, password)
	if err != nil {
		log.Warn("invalid signup fields", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, NewServiceError("create_user", "failed to save user", err)
	}

	log.Info("user created", slog.String("user_id", user.ID.String()))
	return user, nil
}

// ListUsers implements UserService.ListUsers
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", slog.String("error", err.Error()))
		return nil, NewServiceError("list_users", "failed to list users", err)
	}
	return users, nil
}

// FindByEmail implements UserService.FindByEmail
func (s *userServiceImpl) FindByEmail(ctx context.Context, email string) ([]*domain.User, error) {
	users, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("failed to find users by email",
			slog.String("error", err.Error()))
		return nil, NewServiceError("find_by_email", "failed to query users", err)
	}
	return users, nil
}

// GetByID implements UserService.GetByID
func (s *userServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("failed to retrieve user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, NewServiceError("get_user", "failed to retrieve user", err)
	}
	return user, nil
}

// Update implements UserService.Update
// Only fields present in the update overwrite existing values; the merged
// record is validated and persisted as a whole.
func (s *userServiceImpl) Update(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error("failed to retrieve user for update",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, NewServiceError("update_user", "failed to retrieve user", err)
	}

	if err := user.Merge(update); err != nil {
		log.Warn("invalid update fields",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error("failed to persist user update",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, NewServiceError("update_user", "failed to save user", err)
	}

	log.Info("user updated", slog.String("user_id", id.String()))
	return user, nil
}

// Delete implements UserService.Delete
// The cascade is explicit rather than delegated to storage-layer behavior:
// remote PDFs first (they cannot join the database transaction; failing
// here leaves retryable rows rather than orphaned remote content), then
// selections, document rows and the user row atomically.
func (s *userServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userRepo.GetWithDocuments(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to load user for delete",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return NewServiceError("delete_user", "failed to load user", err)
	}

	for _, doc := range user.Documents {
		err := s.pdfService.DeletePDF(ctx, doc.ID)
		if err != nil {
			// A document the service already lost is as deleted as we need.
			if errors.Is(err, pdfgen.ErrPDFNotFound) {
				log.Warn("pdf already absent from generation service",
					slog.String("pdf_id", doc.ID.String()),
					slog.String("user_id", id.String()))
				continue
			}
			log.Error("failed to delete generated pdf",
				slog.String("error", err.Error()),
				slog.String("pdf_id", doc.ID.String()),
				slog.String("user_id", id.String()))
			return NewServiceError("delete_user", "failed to delete generated pdf", err)
		}
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.selectionRepo.WithTx(tx).Clear(ctx, id); err != nil {
			return NewServiceError("delete_user", "failed to clear selections", err)
		}
		if err := s.documentRepo.WithTx(tx).DeleteForUser(ctx, id); err != nil {
			return NewServiceError("delete_user", "failed to delete document rows", err)
		}
		if err := s.userRepo.WithTx(tx).Delete(ctx, id); err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return NewServiceError("delete_user", "failed to delete user row", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("user deleted with owned state",
		slog.String("user_id", id.String()),
		slog.Int("document_count", len(user.Documents)))
	return nil
}
