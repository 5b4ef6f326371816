package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"bluewave/internal/domain"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Domain failure (validation, not found, insufficient stock, ...)
	ExitCommandError = 2 // Command error (bad flags, unreadable database, ...)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Response is the standard JSON response format for CLI output.
type Response struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *ErrorBody  `json:"error,omitempty"` // error details
}

// ErrorBody is the error structure for JSON responses.
type ErrorBody struct {
	Code    string `json:"code"` // domain error code, e.g. "NOT_FOUND"
	Message string `json:"message"`
}

// Success outputs a successful result in the configured format.
// In text mode, data is rendered with its String method when it has
// one, so views can print tables.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{
			Status: "ok",
			Data:   data,
		})
	}
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Successf outputs a formatted one-line notification in text mode, and
// the same message as JSON data otherwise.
func (f *OutputFormatter) Successf(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{
			Status: "ok",
			Data:   msg,
		})
	}
	fmt.Fprintln(f.Writer, msg)
	return nil
}

// DomainError surfaces a domain failure as a non-fatal notification
// and returns the ExitError the command should end with.
func (f *OutputFormatter) DomainError(err error) error {
	code := "ERROR"
	var de *domain.Error
	if errors.As(err, &de) {
		code = string(de.Code)
	}

	if f.Format == "json" {
		_ = json.NewEncoder(f.Writer).Encode(Response{
			Status: "error",
			Error:  &ErrorBody{Code: code, Message: err.Error()},
		})
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %v\n", code, err)
	}
	return &ExitError{Code: ExitFailure, Message: err.Error(), Err: err}
}
