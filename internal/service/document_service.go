package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/quizfolio/quizfolio-api/internal/domain"
	"github.com/quizfolio/quizfolio-api/internal/pdfgen"
	"github.com/quizfolio/quizfolio-api/internal/platform/logger"
	"github.com/quizfolio/quizfolio-api/internal/store"
)

// DocumentService manages the lifecycle of a user's generated PDF reports.
// Every per-document operation authorizes through relation membership: the
// document must be reachable from the requesting user's own document set.
// There is deliberately no lookup-by-id-then-compare-owner path, so stale
// or forged ids belonging to other users fail exactly like absent ones.
type DocumentService interface {
	// ListDocuments retrieves the user's document set.
	// Returns ErrUserNotFound if the user is absent.
	ListDocuments(ctx context.Context, userID uuid.UUID) ([]*domain.PDFDocument, error)

	// CreateDocument generates a new report for the user and records it in
	// their document set.
	// Returns ErrMissingUserID if userID is nil.
	// Returns ErrUserNotFound if the user is absent.
	// Returns ErrEmptyDocumentContent if generation produced no content;
	// the user's document set is left unchanged in that case.
	CreateDocument(ctx context.Context, userID uuid.UUID, params domain.ReportParams) (*domain.PDFDocument, error)

	// UpdateDocument regenerates an owned document with fresh parameters
	// and a new modification timestamp, preserving the creation timestamp.
	// Returns ErrUserNotFound or ErrDocumentNotFound.
	UpdateDocument(ctx context.Context, userID, pdfID uuid.UUID, params domain.ReportParams) (*domain.PDFDocument, error)

	// DeleteDocument removes an owned document from the generation service
	// and the user's document set.
	// Returns ErrUserNotFound or ErrDocumentNotFound.
	DeleteDocument(ctx context.Context, userID, pdfID uuid.UUID) error

	// DownloadDocument fetches the raw content of an owned document.
	// Returns ErrUserNotFound or ErrDocumentNotFound.
	DownloadDocument(ctx context.Context, userID, pdfID uuid.UUID) ([]byte, error)
}

// documentServiceImpl implements the DocumentService interface
type documentServiceImpl struct {
	userRepo     store.UserStore
	documentRepo store.DocumentStore
	pdfService   pdfgen.Service
	logger       *slog.Logger
}

// NewDocumentService creates a new DocumentService.
// It returns an error if any of the required dependencies are nil.
func NewDocumentService(
	userRepo store.UserStore,
	documentRepo store.DocumentStore,
	pdfService pdfgen.Service,
	logger *slog.Logger,
) (DocumentService, error) {
	if userRepo == nil {
		return nil, domain.NewValidationError("userRepo", "cannot be nil", domain.ErrValidation)
	}
	if documentRepo == nil {
		return nil, domain.NewValidationError("documentRepo", "cannot be nil", domain.ErrValidation)
	}
	if pdfService == nil {
		return nil, domain.NewValidationError("pdfService", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &documentServiceImpl{
		userRepo:     userRepo,
		documentRepo: documentRepo,
		pdfService:   pdfService,
		logger:       logger.With(slog.String("component", "document_service")),
	}, nil
}

// ownedDocument is the shared load-and-authorize step: it loads the user
// with their document relation and resolves pdfID against that relation
// only. An unreachable document, whether absent or owned by someone else,
// is ErrDocumentNotFound either way.
func (s *documentServiceImpl) ownedDocument(ctx context.Context, userID, pdfID uuid.UUID) (*domain.PDFDocument, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userRepo.GetWithDocuments(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error("failed to load user with documents",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("load_documents", "failed to load user", err)
	}

	doc := user.Document(pdfID)
	if doc == nil {
		log.Debug("document not reachable from user's set",
			slog.String("user_id", userID.String()),
			slog.String("pdf_id", pdfID.String()))
		return nil, ErrDocumentNotFound
	}

	return doc, nil
}

// ListDocuments implements DocumentService.ListDocuments
func (s *documentServiceImpl) ListDocuments(ctx context.Context, userID uuid.UUID) ([]*domain.PDFDocument, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userRepo.GetWithDocuments(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error("failed to load user with documents",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("list_documents", "failed to load user", err)
	}

	return user.Documents, nil
}

// CreateDocument implements DocumentService.CreateDocument
func (s *documentServiceImpl) CreateDocument(ctx context.Context, userID uuid.UUID, params domain.ReportParams) (*domain.PDFDocument, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if userID == uuid.Nil {
		return nil, ErrMissingUserID
	}

	user, err := s.userRepo.GetWithDocuments(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error("failed to load user with documents",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("create_document", "failed to load user", err)
	}

	req := pdfgen.NewGenerationRequest(user.ID, params, time.Now().UTC())

	doc, err := s.pdfService.CreatePDF(ctx, req)
	if err != nil {
		log.Error("document generation failed",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("create_document", "generation failed", err)
	}

	if !doc.HasContent() {
		log.Error("generation returned document without content",
			slog.String("user_id", userID.String()))
		return nil, ErrEmptyDocumentContent
	}

	// The relation row is ours to stamp regardless of what the service
	// echoed back.
	doc.UserID = user.ID

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		log.Error("failed to record document",
			slog.String("error", err.Error()),
			slog.String("pdf_id", doc.ID.String()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("create_document", "failed to record document", err)
	}

	log.Info("document created",
		slog.String("pdf_id", doc.ID.String()),
		slog.String("user_id", userID.String()))
	return doc, nil
}

// UpdateDocument implements DocumentService.UpdateDocument
func (s *documentServiceImpl) UpdateDocument(ctx context.Context, userID, pdfID uuid.UUID, params domain.ReportParams) (*domain.PDFDocument, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	doc, err := s.ownedDocument(ctx, userID, pdfID)
	if err != nil {
		return nil, err
	}

	req := pdfgen.NewGenerationRequest(userID, params, time.Now().UTC())
	req.CreatedAt = doc.CreatedAt

	regenerated, err := s.pdfService.UpdatePDF(ctx, pdfID, req)
	if err != nil {
		if errors.Is(err, pdfgen.ErrPDFNotFound) {
			// Owned per our relation but gone remotely; surface as absent.
			return nil, ErrDocumentNotFound
		}
		log.Error("document regeneration failed",
			slog.String("error", err.Error()),
			slog.String("pdf_id", pdfID.String()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("update_document", "regeneration failed", err)
	}

	regenerated.UserID = userID
	regenerated.CreatedAt = doc.CreatedAt

	if err := s.documentRepo.Update(ctx, regenerated); err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return nil, ErrDocumentNotFound
		}
		log.Error("failed to record regenerated document",
			slog.String("error", err.Error()),
			slog.String("pdf_id", pdfID.String()))
		return nil, NewServiceError("update_document", "failed to record document", err)
	}

	log.Info("document regenerated",
		slog.String("pdf_id", pdfID.String()),
		slog.String("user_id", userID.String()))
	return regenerated, nil
}

// DeleteDocument implements DocumentService.DeleteDocument
func (s *documentServiceImpl) DeleteDocument(ctx context.Context, userID, pdfID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.ownedDocument(ctx, userID, pdfID); err != nil {
		return err
	}

	err := s.pdfService.DeletePDF(ctx, pdfID)
	if err != nil && !errors.Is(err, pdfgen.ErrPDFNotFound) {
		log.Error("failed to delete pdf from generation service",
			slog.String("error", err.Error()),
			slog.String("pdf_id", pdfID.String()))
		return NewServiceError("delete_document", "generation service delete failed", err)
	}

	if err := s.documentRepo.Delete(ctx, pdfID); err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return ErrDocumentNotFound
		}
		log.Error("failed to remove document row",
			slog.String("error", err.Error()),
			slog.String("pdf_id", pdfID.String()))
		return NewServiceError("delete_document", "failed to remove document row", err)
	}

	log.Info("document deleted",
		slog.String("pdf_id", pdfID.String()),
		slog.String("user_id", userID.String()))
	return nil
}

// DownloadDocument implements DocumentService.DownloadDocument
func (s *documentServiceImpl) DownloadDocument(ctx context.Context, userID, pdfID uuid.UUID) ([]byte, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.ownedDocument(ctx, userID, pdfID); err != nil {
		return nil, err
	}

	content, err := s.pdfService.DownloadPDF(ctx, pdfID)
	if err != nil {
		if errors.Is(err, pdfgen.ErrPDFNotFound) {
			return nil, ErrDocumentNotFound
		}
		log.Error("failed to download pdf",
			slog.String("error", err.Error()),
			slog.String("pdf_id", pdfID.String()))
		return nil, NewServiceError("download_document", "download failed", err)
	}

	log.Debug("document downloaded",
		slog.String("pdf_id", pdfID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("size", len(content)))
	return content, nil
}
