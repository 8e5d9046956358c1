package pdfgen

import "errors"

// Common errors returned by the pdfgen package
var (
	// ErrGenerationFailed is returned when document generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate document")

	// ErrEmptyContent is returned when the service produced a document without a content payload
	ErrEmptyContent = errors.New("generated document has no content")

	// ErrPDFNotFound is returned when the service knows no document with the given ID
	ErrPDFNotFound = errors.New("document not found in generation service")

	// ErrServiceUnavailable is returned for transport-level failures that might resolve on retry
	ErrServiceUnavailable = errors.New("document generation service unavailable")
)
