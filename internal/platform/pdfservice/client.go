package pdfservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quizfolio/quizfolio-api/internal/domain"
	"github.com/quizfolio/quizfolio-api/internal/pdfgen"
	"github.com/quizfolio/quizfolio-api/internal/platform/logger"
)

// DefaultTimeout bounds a single generation call when the caller supplies
// no timeout of its own. Generation renders a full report, so this is
// deliberately generous.
const DefaultTimeout = 30 * time.Second

// Client calls the document generation service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// APIError represents a generation service error response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pdf service returned %d: %s", e.Status, e.Message)
}

// NewClient constructs a generation service client for the given base URL.
// A zero timeout falls back to DefaultTimeout. If logger is nil, a default
// logger will be used.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(slog.String("component", "pdf_service_client")),
	}
}

// Ensure Client implements the pdfgen.Service interface
var _ pdfgen.Service = (*Client)(nil)

// documentPayload is the service's wire representation of a document.
// Content travels base64-encoded inside the JSON body.
type documentPayload struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	CreatedAt       time.Time `json:"creation_date"`
	ModifiedAt      time.Time `json:"modify_date"`
	GeneratedP      float64   `json:"generated_p"`
	RecommendedP    float64   `json:"recommended_p"`
	RiskRecommended bool      `json:"risk_recommended"`
	Content         []byte    `json:"content"`
}

// toDomain converts the wire representation into the domain entity.
func (p *documentPayload) toDomain() *domain.PDFDocument {
	return &domain.PDFDocument{
		ID:              p.ID,
		UserID:          p.UserID,
		CreatedAt:       p.CreatedAt,
		ModifiedAt:      p.ModifiedAt,
		GeneratedP:      p.GeneratedP,
		RecommendedP:    p.RecommendedP,
		RiskRecommended: p.RiskRecommended,
		Content:         p.Content,
	}
}

// CreatePDF implements pdfgen.Service.CreatePDF
func (c *Client) CreatePDF(ctx context.Context, req pdfgen.GenerationRequest) (*domain.PDFDocument, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	var payload documentPayload
	err := c.do(ctx, http.MethodPost, "/pdfs", req, &payload)
	if err != nil {
		log.Error("pdf creation failed",
			slog.String("error", err.Error()),
			slog.String("user_id", req.UserID.String()))
		return nil, err
	}

	log.Info("pdf created",
		slog.String("pdf_id", payload.ID.String()),
		slog.String("user_id", payload.UserID.String()))
	return payload.toDomain(), nil
}

// UpdatePDF implements pdfgen.Service.UpdatePDF
func (c *Client) UpdatePDF(ctx context.Context, id uuid.UUID, req pdfgen.GenerationRequest) (*domain.PDFDocument, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	var payload documentPayload
	err := c.do(ctx, http.MethodPut, "/pdfs/"+id.String(), req, &payload)
	if err != nil {
		log.Error("pdf update failed",
			slog.String("error", err.Error()),
			slog.String("pdf_id", id.String()))
		return nil, err
	}

	log.Info("pdf regenerated", slog.String("pdf_id", payload.ID.String()))
	return payload.toDomain(), nil
}

// DeletePDF implements pdfgen.Service.DeletePDF
func (c *Client) DeletePDF(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, c.logger)

	if err := c.do(ctx, http.MethodDelete, "/pdfs/"+id.String(), nil, nil); err != nil {
		log.Error("pdf deletion failed",
			slog.String("error", err.Error()),
			slog.String("pdf_id", id.String()))
		return err
	}

	log.Info("pdf deleted", slog.String("pdf_id", id.String()))
	return nil
}

// DownloadPDF implements pdfgen.Service.DownloadPDF
// The content endpoint streams the raw payload rather than JSON.
func (c *Client) DownloadPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/pdfs/"+id.String()+"/content",
		nil,
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("pdf download failed",
			slog.String("error", err.Error()),
			slog.String("pdf_id", id.String()))
		return nil, fmt.Errorf("%w: %v", pdfgen.ErrServiceUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return nil, c.statusError(resp)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read pdf content",
			slog.String("error", err.Error()),
			slog.String("pdf_id", id.String()))
		return nil, err
	}

	log.Debug("pdf downloaded",
		slog.String("pdf_id", id.String()),
		slog.Int("size", len(content)))
	return content, nil
}

// do issues one JSON round trip against the service. A nil in skips the
// request body; a nil out discards the response body.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", pdfgen.ErrServiceUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return c.statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", pdfgen.ErrGenerationFailed, err)
	}
	return nil
}

// statusError maps an error response to the pdfgen sentinel hierarchy.
func (c *Client) statusError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&errResp)

	msg := errResp.Error
	if msg == "" {
		msg = resp.Status
	}
	apiErr := &APIError{Status: resp.StatusCode, Message: msg}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %v", pdfgen.ErrPDFNotFound, apiErr)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %v", pdfgen.ErrServiceUnavailable, apiErr)
	default:
		return fmt.Errorf("%w: %v", pdfgen.ErrGenerationFailed, apiErr)
	}
}
