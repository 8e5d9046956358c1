package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for PDFDocument
var (
	ErrEmptyDocumentID     = errors.New("document ID cannot be empty")
	ErrEmptyDocumentUserID = errors.New("document user ID cannot be empty")
)

// ReportParams are the caller-supplied parameters of a generated report.
// They are passed opaquely to the document generation service; this core
// attaches no meaning to them.
type ReportParams struct {
	GeneratedP      float64 `json:"generated_p"`
	RecommendedP    float64 `json:"recommended_p"`
	RiskRecommended bool    `json:"risk_recommended"`
}

// PDFDocument represents a generated PDF report owned by a user. Documents
// are materialized by the document generation service; this core records
// them as part of the owning user's document set and never mutates the
// content payload itself.
type PDFDocument struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`

	GeneratedP      float64 `json:"generated_p"`
	RecommendedP    float64 `json:"recommended_p"`
	RiskRecommended bool    `json:"risk_recommended"`

	// Content is the raw generated payload. Never exposed in JSON; callers
	// fetch it through the download operation.
	Content []byte `json:"-"`
}

// Validate checks if the PDFDocument has valid data.
func (d *PDFDocument) Validate() error {
	if d.ID == uuid.Nil {
		return ErrEmptyDocumentID
	}

	if d.UserID == uuid.Nil {
		return ErrEmptyDocumentUserID
	}

	return nil
}

// HasContent reports whether the document carries a usable content payload.
// A generation result without content is treated as a failed generation.
func (d *PDFDocument) HasContent() bool {
	return d != nil && len(d.Content) > 0
}

// Params returns the report parameters the document was generated with.
func (d *PDFDocument) Params() ReportParams {
	return ReportParams{
		GeneratedP:      d.GeneratedP,
		RecommendedP:    d.RecommendedP,
		RiskRecommended: d.RiskRecommended,
	}
}
