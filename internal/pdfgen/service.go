package pdfgen

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/quizfolio/quizfolio-api/internal/domain"
)

// GenerationRequest carries everything the document generation service needs
// to materialize a report: the owning user, the timestamps to stamp on the
// document, and the caller-supplied report parameters (passed through
// opaquely).
type GenerationRequest struct {
	UserID          uuid.UUID `json:"user_id"`
	CreatedAt       time.Time `json:"creation_date"`
	ModifiedAt      time.Time `json:"modify_date"`
	GeneratedP      float64   `json:"generated_p"`
	RecommendedP    float64   `json:"recommended_p"`
	RiskRecommended bool      `json:"risk_recommended"`
}

// NewGenerationRequest builds a request for the given user and parameters,
// stamping the supplied time on both timestamps. Update flows overwrite
// CreatedAt with the document's original creation time afterwards.
func NewGenerationRequest(userID uuid.UUID, params domain.ReportParams, now time.Time) GenerationRequest {
	return GenerationRequest{
		UserID:          userID,
		CreatedAt:       now,
		ModifiedAt:      now,
		GeneratedP:      params.GeneratedP,
		RecommendedP:    params.RecommendedP,
		RiskRecommended: params.RiskRecommended,
	}
}

// Service defines the interface to the external document generation service.
// It is the system that produces (and can re-produce, delete, or stream)
// report content; ownership checks happen before any of these calls, in the
// service layer of this module.
type Service interface {
	// CreatePDF generates a new document from the request and returns it
	// with its assigned ID and content payload.
	CreatePDF(ctx context.Context, req GenerationRequest) (*domain.PDFDocument, error)

	// UpdatePDF regenerates the document with the given ID using fresh
	// parameters and returns the regenerated document.
	// Returns ErrPDFNotFound if the service knows no such document.
	UpdatePDF(ctx context.Context, id uuid.UUID, req GenerationRequest) (*domain.PDFDocument, error)

	// DeletePDF removes the document with the given ID from the service.
	// Returns ErrPDFNotFound if the service knows no such document.
	DeletePDF(ctx context.Context, id uuid.UUID) error

	// DownloadPDF fetches the raw content payload of the document with the
	// given ID. Returns ErrPDFNotFound if the service knows no such document.
	DownloadPDF(ctx context.Context, id uuid.UUID) ([]byte, error)
}
