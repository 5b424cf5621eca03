package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Value container errors
const (
	// ErrCodeEmptyValue indicates a value was requested from an absent optional.
	ErrCodeEmptyValue ErrorCode = "EMPTY_VALUE"
)

// Reduction errors
const (
	// ErrCodeMultipleValues indicates a single-value reduction saw two or more elements.
	ErrCodeMultipleValues ErrorCode = "MULTIPLE_VALUES"
	// ErrCodeNoValue indicates a single-value reduction saw no element.
	ErrCodeNoValue ErrorCode = "NO_VALUE"
	// ErrCodeDuplicateKey indicates a uniqueness-enforcing reduction saw a key twice.
	ErrCodeDuplicateKey ErrorCode = "DUPLICATE_KEY"
	// ErrCodeDuplicateValue indicates a bidirectional reduction saw a value twice.
	ErrCodeDuplicateValue ErrorCode = "DUPLICATE_VALUE"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates an argument or configuration value is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Invariant violations
const (
	// ErrCodeUnexpectedBranch indicates control reached a branch that should be unreachable.
	ErrCodeUnexpectedBranch ErrorCode = "UNEXPECTED_BRANCH"
	// ErrCodeUnexpectedFailure indicates an operation failed that was not expected to fail.
	ErrCodeUnexpectedFailure ErrorCode = "UNEXPECTED_FAILURE"
)

// Every code is structural: the same input fails the same way again.
var retryableCodes = map[ErrorCode]bool{
	ErrCodeEmptyValue:        false,
	ErrCodeMultipleValues:    false,
	ErrCodeNoValue:           false,
	ErrCodeDuplicateKey:      false,
	ErrCodeDuplicateValue:    false,
	ErrCodeInvalidInput:      false,
	ErrCodeUnexpectedBranch:  false,
	ErrCodeUnexpectedFailure: false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}

// Codes raised when input elements collide inside a reduction.
var conflictCodes = map[ErrorCode]bool{
	ErrCodeMultipleValues: true,
	ErrCodeDuplicateKey:   true,
	ErrCodeDuplicateValue: true,
}

// IsConflictCode reports whether code signals colliding input elements.
func IsConflictCode(code ErrorCode) bool {
	return conflictCodes[code]
}
