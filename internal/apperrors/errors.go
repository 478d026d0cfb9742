package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but may not perform the action.
var ErrForbidden = errors.New("forbidden")

// Bookkeeping errors. The first three are validation failures and match ErrValidation
// under errors.Is.
var (
	ErrInvalidLineItem = fmt.Errorf("invalid line item: %w", ErrValidation)
	ErrInvalidTaxRate  = fmt.Errorf("invalid tax rate: %w", ErrValidation)
	ErrInvalidPayment  = fmt.Errorf("invalid payment: %w", ErrValidation)

	// ErrDuplicateDocumentNumber is returned by the store when the formatted number is
	// already taken in the user's collection. Document creation retries on it.
	ErrDuplicateDocumentNumber = fmt.Errorf("duplicate document number: %w", ErrDuplicate)

	// ErrStoreUnavailable wraps connection level failures of the document store.
	ErrStoreUnavailable = errors.New("document store unavailable")
)

// FieldError is a validation failure tied to a single input field.
type FieldError struct {
	Err    error
	Field  string
	Reason string
}

// NewFieldError builds a FieldError for the given sentinel.
func NewFieldError(err error, field, reason string) *FieldError {
	return &FieldError{Err: err, Field: field, Reason: reason}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Err.Error(), e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldOf returns the offending field of a validation error, if any.
func FieldOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return ""
}

// AppError is an error carrying the HTTP status it should be reported with.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewBadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func NewInternalServerError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, nil)
}

func NewGatewayTimeoutError(message string) *AppError {
	return NewAppError(http.StatusGatewayTimeout, message, nil)
}
