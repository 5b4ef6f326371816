package domain

import (
	"errors"
	"fmt"
)

// Error represents a recoverable domain failure.
//
// Domain errors are surfaced at the operation boundary as non-fatal
// notifications; none should crash the process. Error carries
// structured fields so callers can render diagnostics without parsing
// the message.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Entity names the affected entity kind ("book", "sale", ...).
	Entity string

	// ID identifies the affected entity where one exists.
	ID int

	// Err is the underlying cause, if any.
	Err error
}

// ErrorCode categorizes domain errors.
type ErrorCode string

const (
	// ErrCodeValidation indicates malformed input: an empty required
	// field, a non-positive price, or a non-positive quantity.
	ErrCodeValidation ErrorCode = "VALIDATION"

	// ErrCodeNotFound indicates a referenced id does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeInsufficientStock indicates a sale quantity exceeds the
	// available stock.
	ErrCodeInsufficientStock ErrorCode = "INSUFFICIENT_STOCK"

	// ErrCodePersistence indicates a serialize/deserialize or storage
	// failure.
	ErrCodePersistence ErrorCode = "PERSISTENCE"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Entity != "" && e.ID != 0 {
		return fmt.Sprintf("%s: %s (%s=%d)", e.Code, e.Message, e.Entity, e.ID)
	}
	if e.Entity != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Entity)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates a VALIDATION error.
func NewValidationError(message string) *Error {
	return &Error{Code: ErrCodeValidation, Message: message}
}

// NewNotFoundError creates a NOT_FOUND error for an entity id.
func NewNotFoundError(entity string, id int) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", entity),
		Entity:  entity,
		ID:      id,
	}
}

// NewInsufficientStockError creates an INSUFFICIENT_STOCK error.
func NewInsufficientStockError(bookID, available, requested int) *Error {
	return &Error{
		Code:    ErrCodeInsufficientStock,
		Message: fmt.Sprintf("only %d units available, requested %d", available, requested),
		Entity:  "book",
		ID:      bookID,
	}
}

// NewPersistenceError wraps a storage failure.
func NewPersistenceError(message string, err error) *Error {
	return &Error{Code: ErrCodePersistence, Message: message, Err: err}
}

// IsValidation reports whether err is a VALIDATION domain error.
// Uses errors.As to handle wrapped errors.
func IsValidation(err error) bool { return hasCode(err, ErrCodeValidation) }

// IsNotFound reports whether err is a NOT_FOUND domain error.
func IsNotFound(err error) bool { return hasCode(err, ErrCodeNotFound) }

// IsInsufficientStock reports whether err is an INSUFFICIENT_STOCK
// domain error.
func IsInsufficientStock(err error) bool { return hasCode(err, ErrCodeInsufficientStock) }

// IsPersistence reports whether err is a PERSISTENCE domain error.
func IsPersistence(err error) bool { return hasCode(err, ErrCodePersistence) }

func hasCode(err error, code ErrorCode) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
