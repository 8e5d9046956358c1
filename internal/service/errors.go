package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These represent the four caller-visible failure kinds; callers check them
// with errors.Is() and map them to their own surface (HTTP status codes or
// otherwise).
var (
	// Not found (missing row, or document not reachable through the
	// requesting user's own relation; ownership misses fold in here so a
	// foreign document is indistinguishable from an absent one).

	// ErrUserNotFound indicates that the user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrQuestionNotFound indicates that the question does not exist.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrAnswerNotFound indicates that the answer does not exist.
	ErrAnswerNotFound = errors.New("answer not found")

	// ErrDocumentNotFound indicates that the document does not exist or is
	// not owned by the requesting user.
	ErrDocumentNotFound = errors.New("document not found or not owned by user")

	// Conflicts (selection uniqueness violations).

	// ErrAnswerAlreadySelected indicates the user has already selected this answer.
	ErrAnswerAlreadySelected = errors.New("answer already selected by user")

	// ErrQuestionAlreadyAnswered indicates the user has already selected an
	// answer from this answer's question.
	ErrQuestionAlreadyAnswered = errors.New("question already answered by user")

	// Validation.

	// ErrMissingUserID indicates a required user identifier was absent.
	ErrMissingUserID = errors.New("user ID cannot be empty")

	// Internal.

	// ErrEmptyDocumentContent indicates the generation service returned a
	// document without usable content.
	ErrEmptyDocumentContent = errors.New("document generation returned no content")
)

// sentinels lists every error that must surface to callers unmodified.
var sentinels = []error{
	ErrUserNotFound,
	ErrQuestionNotFound,
	ErrAnswerNotFound,
	ErrDocumentNotFound,
	ErrAnswerAlreadySelected,
	ErrQuestionAlreadyAnswered,
	ErrMissingUserID,
	ErrEmptyDocumentContent,
}

// ServiceError wraps unexpected errors from a service with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "select_answer", "create_document")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError wraps err with operation context. Known sentinel errors
// are returned bare so callers can match them with errors.Is without
// unwrapping.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
