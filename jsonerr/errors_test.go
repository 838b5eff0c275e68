package jsonerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{"malformed", Malformed(3, "unterminated string"), ErrMalformedInput, "malformed input: unterminated string at offset 3"},
		{"unexpected", Unexpected(0, "expected %s, found %s", "BeginObject", "Number"), ErrUnexpectedToken, "unexpected token: expected BeginObject, found Number at offset 0"},
		{"field", Field(7, "lat", "duplicate field"), ErrUnexpectedToken, `unexpected token: duplicate field (field "lat" at offset 7)`},
		{"missing", Missing("lat"), ErrMissingRequiredField, `missing required field: field is not nullable (field "lat")`},
		{"unsupported", Unsupported("model.Location"), ErrUnsupportedType, "unsupported type: no converter registered for model.Location"},
		{"value", Value("NaN"), ErrUnsupportedValue, "unsupported value: NaN"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.sentinel)
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tc.err), tc.sentinel)
			assert.Equal(t, tc.message, tc.err.Error())
		})
	}
}

func TestError_As(t *testing.T) {
	err := fmt.Errorf("decode: %w", &Error{Err: ErrUnexpectedToken, Offset: 12, Field: "id", Msg: "null is not allowed for int"})
	var target *Error
	if assert.True(t, errors.As(err, &target)) {
		assert.Equal(t, 12, target.Offset)
		assert.Equal(t, "id", target.Field)
	}
	assert.Equal(t, `decode: unexpected token: null is not allowed for int (field "id" at offset 12)`, err.Error())
}
