package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type of the commons packages.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an AppError with the same code.
// It lets the package sentinels work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// Sentinels for errors.Is matching. Never return these directly; the
// constructors below build fresh values carrying details.
var (
	ErrEmptyValue        = &AppError{Code: ErrCodeEmptyValue}
	ErrMultipleValues    = &AppError{Code: ErrCodeMultipleValues}
	ErrNoValue           = &AppError{Code: ErrCodeNoValue}
	ErrDuplicateKey      = &AppError{Code: ErrCodeDuplicateKey}
	ErrDuplicateValue    = &AppError{Code: ErrCodeDuplicateValue}
	ErrInvalidInput      = &AppError{Code: ErrCodeInvalidInput}
	ErrUnexpectedBranch  = &AppError{Code: ErrCodeUnexpectedBranch}
	ErrUnexpectedFailure = &AppError{Code: ErrCodeUnexpectedFailure}
)

// --- Common Error Constructors ---

// EmptyValue creates a new AppError for a value requested from an absent optional.
func EmptyValue() *AppError {
	return &AppError{Code: ErrCodeEmptyValue, Message: "No value present."}
}

// MultipleValues creates a new AppError for a single-value reduction that saw more than one element.
func MultipleValues() *AppError {
	return &AppError{Code: ErrCodeMultipleValues, Message: "Multiple values."}
}

// NoValue creates a new AppError for a single-value reduction that saw no element.
func NoValue() *AppError {
	return &AppError{Code: ErrCodeNoValue, Message: "No values."}
}

// DuplicateKey creates a new AppError for a key inserted twice into a unique-key reduction.
func DuplicateKey(key any) *AppError {
	return &AppError{
		Code: ErrCodeDuplicateKey, Message: fmt.Sprintf("Duplicate key: %v", key),
		Details: map[string]any{"key": key},
	}
}

// DuplicateValue creates a new AppError for a value inserted twice into a bidirectional reduction.
func DuplicateValue(value any) *AppError {
	return &AppError{
		Code: ErrCodeDuplicateValue, Message: fmt.Sprintf("Duplicate value: %v", value),
		Details: map[string]any{"value": value},
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// UnexpectedBranch creates a new AppError for control reaching a branch that
// should be unreachable, such as the default case of an exhaustive switch.
func UnexpectedBranch(message string) *AppError {
	if message == "" {
		message = "Unexpected branch."
	}
	return &AppError{Code: ErrCodeUnexpectedBranch, Message: message}
}

// Unexpected wraps an error that was not expected to occur, for instance a
// failure reported by a writer that never fails. The reason belongs in the
// caller's documentation.
func Unexpected(cause error) *AppError {
	return &AppError{
		Code: ErrCodeUnexpectedFailure, Message: "An operation failed that was not expected to fail.",
		Cause: cause,
	}
}

// Must returns v, or panics with Unexpected(err) if err is non-nil.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(Unexpected(err))
	}
	return v
}

// Check panics with Unexpected(err) if err is non-nil.
func Check(err error) {
	if err != nil {
		panic(Unexpected(err))
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Wrap converts any error into an AppError. AppErrors anywhere in the chain
// are returned as-is; anything else becomes an unexpected failure.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Unexpected(err)
}
