package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeDuplicateKey, "duplicate")
	if err.Code != ErrCodeDuplicateKey {
		t.Errorf("expected code %s, got %s", ErrCodeDuplicateKey, err.Code)
	}
	if err.Message != "duplicate" {
		t.Errorf("expected message 'duplicate', got %q", err.Message)
	}
	if err.Retryable {
		t.Error("DUPLICATE_KEY should not be retryable")
	}
}

func TestAppError_DuplicateKey_Details(t *testing.T) {
	err := DuplicateKey(1)
	if err.Code != ErrCodeDuplicateKey {
		t.Errorf("expected DUPLICATE_KEY, got %s", err.Code)
	}
	if err.Details["key"] != 1 {
		t.Errorf("expected key=1, got %v", err.Details["key"])
	}
	if !strings.Contains(err.Message, "1") {
		t.Errorf("expected message to name the key, got %q", err.Message)
	}
}

func TestAppError_DuplicateValue_Details(t *testing.T) {
	err := DuplicateValue("a")
	if err.Details["value"] != "a" {
		t.Errorf("expected value=a, got %v", err.Details["value"])
	}
}

func TestAppError_InvalidInput_Success(t *testing.T) {
	err := InvalidInput("parallelism", "must be positive")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Details["field"] != "parallelism" {
		t.Errorf("expected field=parallelism, got %v", err.Details["field"])
	}

	err2 := InvalidInput("", "bad")
	if _, ok := err2.Details["field"]; ok {
		t.Error("expected no 'field' key in details when field is empty")
	}
}

func TestAppError_UnexpectedBranch_DefaultMessage(t *testing.T) {
	if UnexpectedBranch("").Message != "Unexpected branch." {
		t.Error("expected default message")
	}
	if UnexpectedBranch("unknown order").Message != "unknown order" {
		t.Error("expected custom message")
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := NoValue().WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := DuplicateKey("k").WithDetails(map[string]any{
		"partition": 2,
	})
	if err.Details["partition"] != 2 {
		t.Errorf("expected partition=2 in details")
	}
	if err.Details["key"] != "k" {
		t.Error("expected original details to be preserved")
	}
}

func TestAppError_WithDetails_Nil(t *testing.T) {
	err := Unexpected(nil).WithDetails(nil)
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized even with nil input")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	s := MultipleValues().Error()
	if !strings.Contains(s, "MULTIPLE_VALUES") {
		t.Errorf("expected error string to contain code, got %q", s)
	}
	if !strings.Contains(s, "Multiple values.") {
		t.Errorf("expected error string to contain message, got %q", s)
	}
}

func TestAppError_Is_MatchesByCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel *AppError
		want     bool
	}{
		{"empty value", EmptyValue(), ErrEmptyValue, true},
		{"multiple values", MultipleValues(), ErrMultipleValues, true},
		{"no value", NoValue(), ErrNoValue, true},
		{"duplicate key", DuplicateKey(1), ErrDuplicateKey, true},
		{"duplicate value", DuplicateValue(1), ErrDuplicateValue, true},
		{"wrapped", fmt.Errorf("fold: %w", DuplicateKey(1)), ErrDuplicateKey, true},
		{"different code", DuplicateKey(1), ErrDuplicateValue, false},
		{"plain error", fmt.Errorf("plain"), ErrNoValue, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := stderrors.Is(tc.err, tc.sentinel); got != tc.want {
				t.Errorf("errors.Is = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestErrorCode_NothingRetryable(t *testing.T) {
	for code := range retryableCodes {
		if IsRetryableCode(code) {
			t.Errorf("expected %s to NOT be retryable", code)
		}
	}
	if IsRetryableCode("UNKNOWN") {
		t.Error("unknown codes should not be retryable")
	}
}

func TestIsConflictCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want bool
	}{
		{ErrCodeMultipleValues, true},
		{ErrCodeDuplicateKey, true},
		{ErrCodeDuplicateValue, true},
		{ErrCodeNoValue, false},
		{ErrCodeEmptyValue, false},
		{ErrCodeInvalidInput, false},
		{"UNKNOWN", false},
	}
	for _, tc := range tests {
		t.Run(string(tc.code), func(t *testing.T) {
			if got := IsConflictCode(tc.code); got != tc.want {
				t.Errorf("IsConflictCode(%s) = %v, want %v", tc.code, got, tc.want)
			}
		})
	}
}

func TestAppError_AsAppError_Success(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", NoValue())

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if got.Code != ErrCodeNoValue {
		t.Errorf("expected NO_VALUE, got %s", got.Code)
	}

	if _, ok := AsAppError(fmt.Errorf("not an app error")); ok {
		t.Error("expected AsAppError to return false for non-AppError")
	}
	if !IsAppError(wrapped) {
		t.Error("expected IsAppError to return true for wrapped AppError")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}

	orig := DuplicateKey("x")
	if Wrap(orig) != orig {
		t.Error("Wrap should return the original AppError unchanged")
	}

	plain := fmt.Errorf("something broke")
	got := Wrap(plain)
	if got.Code != ErrCodeUnexpectedFailure {
		t.Errorf("expected UNEXPECTED_FAILURE, got %s", got.Code)
	}
	if got.Cause != plain {
		t.Error("expected cause to be the original error")
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}

	cause := fmt.Errorf("impossible")
	defer func() {
		r := recover()
		err, ok := r.(*AppError)
		if !ok {
			t.Fatalf("expected *AppError panic, got %T", r)
		}
		if err.Code != ErrCodeUnexpectedFailure || err.Cause != cause {
			t.Errorf("unexpected panic value %v", err)
		}
	}()
	Must(0, cause)
	t.Fatal("Must should have panicked")
}

func TestCheck(t *testing.T) {
	Check(nil)

	cause := DuplicateKey("k")
	defer func() {
		err, ok := recover().(*AppError)
		if !ok || err.Code != ErrCodeUnexpectedFailure {
			t.Fatalf("expected UNEXPECTED_FAILURE panic, got %v", err)
		}
		if !stderrors.Is(err, ErrDuplicateKey) {
			t.Errorf("cause lost: %v", err.Cause)
		}
	}()
	Check(cause)
	t.Fatal("Check should have panicked")
}
