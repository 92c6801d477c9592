package errors

import (
	"fmt"
	"net/http"

	"github.com/wayfarerhq/wayfarer-backend/logger"
)

type ErrorType string

const (
	ValidationError ErrorType = "VALIDATION_ERROR"
	NotFoundError   ErrorType = "NOT_FOUND"
	AuthError       ErrorType = "AUTHENTICATION_ERROR"
	ConflictError   ErrorType = "BUSINESS_RULE_CONFLICT"
	DatabaseError   ErrorType = "DATABASE_ERROR"
	ServerError     ErrorType = "SERVER_ERROR"
)

// FieldError describes a single failed field in a validation error.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType    `json:"type"`
	Message    string       `json:"message"`
	Detail     string       `json:"detail,omitempty"`
	Fields     []FieldError `json:"errors,omitempty"`
	HTTPStatus int          `json:"-"`
	Raw        error        `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// GetHTTPStatus returns the HTTP status code carried by the error.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus == 0 {
		return getHTTPStatus(e.Type)
	}
	return e.HTTPStatus
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// NotFound reports an absent (or not owned) entity. Ownership failures use
// the same error as plain absence so existence never leaks to the caller.
func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("ID: %v", id),
		HTTPStatus: http.StatusNotFound,
	}
}

// TripNotFound is the canonical outcome of a failed ownership check.
func TripNotFound(id string) *AppError {
	return NotFound("Trip", id)
}

// ValidationFailed reports a schema-level failure without field detail.
func ValidationFailed(message string, details string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// ValidationFailedFields reports a schema-level failure carrying the list of
// per-field messages returned to the client.
func ValidationFailedFields(message string, fields []FieldError) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Fields:     fields,
		HTTPStatus: http.StatusBadRequest,
	}
}

func AuthenticationFailed(message string) *AppError {
	return &AppError{
		Type:       AuthError,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// BusinessRuleConflict reports a violated business invariant: overlapping
// stays, duplicate categories/names/dates, referenced-elsewhere deletions.
// These surface as 400, not 409, per the external API contract.
func BusinessRuleConflict(message string, detail string) *AppError {
	return &AppError{
		Type:       ConflictError,
		Message:    message,
		Detail:     detail,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewDatabaseError(err error) *AppError {
	// Log original error but return sanitized message
	logger.GetLogger().Errorw("Database error", "error", err)
	return &AppError{
		Type:       DatabaseError,
		Message:    "Database operation failed",
		Detail:     "Please try again later",
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError, ConflictError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case AuthError:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
