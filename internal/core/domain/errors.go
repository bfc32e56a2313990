package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrBikeNotFound        = fmt.Errorf("bike %w", ErrNotFound)
	ErrReportNotFound      = fmt.Errorf("report %w", ErrNotFound)
	ErrAlertNotFound       = fmt.Errorf("alert %w", ErrNotFound)
	ErrBadgeNotFound       = fmt.Errorf("badge %w", ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrActiveReportExists  = fmt.Errorf("bike already has an active theft report: %w", ErrConflict)
	ErrReportNotActive     = fmt.Errorf("report is not active: %w", ErrConflict)
	ErrInvalidCredentials  = fmt.Errorf("current password is incorrect: %w", ErrForbidden)
	ErrUploadsNotAvailable = errors.New("image uploads are not configured")
)

type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists field-level problems found before any store mutation.
type ValidationError struct {
	Issues []FieldIssue
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Issues: []FieldIssue{{Field: field, Message: message}}}
}

func (e *ValidationError) Add(field, message string) {
	e.Issues = append(e.Issues, FieldIssue{Field: field, Message: message})
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+": "+issue.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// OrNil returns nil when no issue was recorded.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Issues) == 0 {
		return nil
	}
	return e
}
