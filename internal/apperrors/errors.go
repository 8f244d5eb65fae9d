package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found (absent or soft-deleted).
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates a collision with existing state (duplicate id/email, concurrent modification).
var ErrConflict = errors.New("conflict")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = fmt.Errorf("%w: resource already exists", ErrConflict)

// ErrForbidden indicates that the caller's role or ownership does not permit the operation.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrIllegalTransition indicates a status pair that the workflow does not permit.
var ErrIllegalTransition = errors.New("illegal status transition")

// ErrUnknownStatus indicates a status code outside the legal set of its kind.
var ErrUnknownStatus = fmt.Errorf("%w: unknown status", ErrValidation)

// ErrInvalidInitialStatus indicates a create request with a status other than Draft or Pending.
var ErrInvalidInitialStatus = fmt.Errorf("%w: invalid initial status", ErrValidation)

// ErrLockedAfterApproval indicates an edit attempt on content that already passed moderation.
var ErrLockedAfterApproval = fmt.Errorf("%w: locked after approval", ErrForbidden)

// ErrIDGenerationExhausted indicates that no free identifier was found within the retry budget.
var ErrIDGenerationExhausted = errors.New("id generation exhausted")

// ErrUpstreamUnavailable indicates a failing external collaborator (AI assistant, image store).
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// ErrInternal indicates an unexpected failure; details are logged, never returned to callers.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish code and a caller-safe message on top of a cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Code >= http.StatusInternalServerError {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the kind sentinel derived from Code and the cause.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if kind := sentinelForCode(e.Code); kind != nil {
		errs = append(errs, kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func sentinelForCode(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusConflict:
		return ErrConflict
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusUnauthorized:
		return ErrUnauthorized
	}
	if code >= http.StatusInternalServerError {
		return ErrInternal
	}
	return nil
}

// NewAppError wraps err with a code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// DenialReason tells a UI why a workflow operation was refused.
type DenialReason string

const (
	ReasonRole          DenialReason = "role"
	ReasonOwnership     DenialReason = "ownership"
	ReasonStatusLock    DenialReason = "status_lock"
	ReasonTransition    DenialReason = "transition"
	ReasonInitialStatus DenialReason = "initial_status"
	ReasonNotFound      DenialReason = "not_found"
)

// DenialError is returned by the workflow guard. It unwraps to one of the
// sentinels above so callers can keep using errors.Is.
type DenialError struct {
	Reason  DenialReason
	Message string
	Err     error
}

func (e *DenialError) Error() string { return e.Message }

func (e *DenialError) Unwrap() error { return e.Err }

// Deny builds a DenialError.
func Deny(sentinel error, reason DenialReason, format string, args ...any) *DenialError {
	return &DenialError{Reason: reason, Message: fmt.Sprintf(format, args...), Err: sentinel}
}

// ValidationError carries per-field messages for ValidationFailed responses.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Details[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Details: map[string]string{field: message}}
}
