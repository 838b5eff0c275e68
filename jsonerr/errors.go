// Package jsonerr defines the error taxonomy shared by the cursor, the sink and
// generated converters. Every error returned by this module wraps one of the
// sentinels below, so callers classify failures with errors.Is.
package jsonerr

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput reports bytes that do not form valid JSON at the token level.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnexpectedToken reports valid JSON that does not match the expected shape.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrMissingRequiredField reports a non-nullable field absent from the input.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrUnsupportedType reports a registry lookup for a type without a converter.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrUnsupportedValue reports a value JSON cannot represent, such as NaN.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// Error carries the position and field context of a failure.
type Error struct {
	Err    error
	Offset int
	Field  string
	Msg    string
}

func (e *Error) Error() string {
	switch {
	case e.Field != "" && e.Offset >= 0:
		return fmt.Sprintf("%v: %s (field %q at offset %d)", e.Err, e.Msg, e.Field, e.Offset)
	case e.Field != "":
		return fmt.Sprintf("%v: %s (field %q)", e.Err, e.Msg, e.Field)
	case e.Offset >= 0:
		return fmt.Sprintf("%v: %s at offset %d", e.Err, e.Msg, e.Offset)
	default:
		return fmt.Sprintf("%v: %s", e.Err, e.Msg)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Malformed returns an ErrMalformedInput error at offset.
func Malformed(offset int, format string, args ...interface{}) error {
	return &Error{Err: ErrMalformedInput, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// Unexpected returns an ErrUnexpectedToken error at offset.
func Unexpected(offset int, format string, args ...interface{}) error {
	return &Error{Err: ErrUnexpectedToken, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// Field returns an ErrUnexpectedToken error naming the offending member.
func Field(offset int, field, msg string) error {
	return &Error{Err: ErrUnexpectedToken, Offset: offset, Field: field, Msg: msg}
}

// Missing returns an ErrMissingRequiredField error for field.
func Missing(field string) error {
	return &Error{Err: ErrMissingRequiredField, Offset: -1, Field: field, Msg: "field is not nullable"}
}

// Unsupported returns an ErrUnsupportedType error for the named type.
func Unsupported(typeName string) error {
	return &Error{Err: ErrUnsupportedType, Offset: -1, Msg: "no converter registered for " + typeName}
}

// Value returns an ErrUnsupportedValue error.
func Value(format string, args ...interface{}) error {
	return &Error{Err: ErrUnsupportedValue, Offset: -1, Msg: fmt.Sprintf(format, args...)}
}
