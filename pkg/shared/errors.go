package shared

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrorCodeNotHex                        ErrorCode = "not_hex"
	ErrorCodeInvalidLength                 ErrorCode = "invalid_length"
	ErrorCodeMalformedCompactArray         ErrorCode = "malformed_compact_array"
	ErrorCodeNotAJSONObject                ErrorCode = "not_a_json_object"
	ErrorCodeMalformedVerifiableURI        ErrorCode = "malformed_verifiable_uri"
	ErrorCodeMalformedJSONURL              ErrorCode = "malformed_json_url"
	ErrorCodeUnsupportedVerificationMethod ErrorCode = "unsupported_verification_method"
)

// ValidationError describes an input that violates an encoding constraint.
// Value holds the offending input as supplied by the caller. Length, Min and
// Max are only meaningful for ErrorCodeInvalidLength, where the accepted
// range is [Min, Max] bytes.
type ValidationError struct {
	Code    ErrorCode
	Value   string
	Length  int
	Min     int
	Max     int
	Message string
}

var (
	ErrNotHex                        = &ValidationError{Code: ErrorCodeNotHex}
	ErrInvalidLength                 = &ValidationError{Code: ErrorCodeInvalidLength}
	ErrMalformedCompactArray         = &ValidationError{Code: ErrorCodeMalformedCompactArray}
	ErrNotAJSONObject                = &ValidationError{Code: ErrorCodeNotAJSONObject}
	ErrMalformedVerifiableURI        = &ValidationError{Code: ErrorCodeMalformedVerifiableURI}
	ErrMalformedJSONURL              = &ValidationError{Code: ErrorCodeMalformedJSONURL}
	ErrUnsupportedVerificationMethod = &ValidationError{Code: ErrorCodeUnsupportedVerificationMethod}
)

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	switch e.Code {
	case ErrorCodeNotHex:
		return fmt.Sprintf("value is not hex: %q", e.Value)
	case ErrorCodeInvalidLength:
		return fmt.Sprintf(
			"invalid length %d for %q: must be between %d and %d bytes",
			e.Length,
			e.Value,
			e.Min,
			e.Max,
		)
	case ErrorCodeNotAJSONObject:
		return "value is not a valid JSON object"
	default:
		return string(e.Code)
	}
}

// Is reports whether target is a ValidationError with the same code, so
// errors.Is(err, ErrNotHex) matches any not_hex failure.
func (e *ValidationError) Is(target error) bool {
	typed, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return typed.Code == e.Code
}

// NewNotHexError creates a not_hex ValidationError.
func NewNotHexError(value string) *ValidationError {
	return &ValidationError{Code: ErrorCodeNotHex, Value: value}
}

// NewInvalidLengthError creates an invalid_length ValidationError.
func NewInvalidLengthError(value string, length int, min int, max int) *ValidationError {
	return &ValidationError{
		Code:   ErrorCodeInvalidLength,
		Value:  value,
		Length: length,
		Min:    min,
		Max:    max,
	}
}

// NewMalformedError creates a ValidationError with a formatted message.
func NewMalformedError(code ErrorCode, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the ErrorCode carried by err, or "" when err is not a
// ValidationError.
func CodeOf(err error) ErrorCode {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Code
	}
	return ""
}
