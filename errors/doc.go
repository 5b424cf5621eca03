// Package errors provides the structured error type shared by the commons
// packages.
//
// Every failure raised by optional values, collectors, configuration loading
// and the fold engine is an *AppError carrying a machine-readable ErrorCode.
// None of the codes is retryable: they describe the input, not a transient
// condition, so callers decide whether to abort, clean the input or report.
//
// Sentinels such as ErrDuplicateKey match any AppError with the same code:
//
//	if errors.Is(err, commonserrors.ErrDuplicateKey) {
//	    key := err.(*commonserrors.AppError).Details["key"]
//	}
package errors
