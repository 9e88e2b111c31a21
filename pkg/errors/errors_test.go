package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidRecord, "record %q: missing field", "Adanta")

	if err.Code != ErrCodeInvalidRecord {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidRecord)
	}

	if err.Message != `record "Adanta": missing field` {
		t.Errorf("Message = %v, want %v", err.Message, `record "Adanta": missing field`)
	}

	expected := `INVALID_RECORD: record "Adanta": missing field`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeInvalidInput, cause, "decode data")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeEmptyTotal, "test"),
			code:     ErrCodeEmptyTotal,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeEmptyTotal, "test"),
			code:     ErrCodeEmptyDataset,
			expected: false,
		},
		{
			name:     "wrapped by fmt",
			err:      fmt.Errorf("layout: %w", New(ErrCodeInvalidConfig, "inner")),
			code:     ErrCodeInvalidConfig,
			expected: true,
		},
		{
			name:     "outer code wins",
			err:      Wrap(ErrCodeInternal, New(ErrCodeInvalidConfig, "inner"), "outer"),
			code:     ErrCodeInternal,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidView, "test"), ErrCodeInvalidView},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeEmptyTotal, "column total is zero"), "column total is zero"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsLayoutError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeInvalidConfig, "x"), true},
		{New(ErrCodeInvalidRecord, "x"), true},
		{New(ErrCodeEmptyTotal, "x"), true},
		{fmt.Errorf("build: %w", New(ErrCodeEmptyDataset, "x")), true},
		{New(ErrCodeInvalidFormat, "x"), false},
		{errors.New("plain"), false},
	}

	for _, tt := range tests {
		if got := IsLayoutError(tt.err); got != tt.want {
			t.Errorf("IsLayoutError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
