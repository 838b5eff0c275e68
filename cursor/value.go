package cursor

import (
	"encoding/base64"
	"math/bits"
	"strconv"
	"time"

	"github.com/viant/aotjson/jsonerr"
)

// Name returns the current property name. The result of an unescaped name
// aliases the input buffer and must not be retained; it is meant for switch
// dispatch only.
func (c *Cursor) Name() string {
	if c.kind != PropertyName {
		return ""
	}
	if !c.escaped {
		return bytesToStringNoCopy(c.Raw())
	}
	return c.text()
}

// String decodes the current string token.
func (c *Cursor) String() (string, error) {
	switch c.kind {
	case String:
		return c.text(), nil
	case Null:
		return "", c.null("string")
	}
	return "", c.mismatch("string")
}

func (c *Cursor) Int() (int, error) {
	v, err := c.integer("int", strconv.IntSize)
	return int(v), err
}

func (c *Cursor) Int32() (int32, error) {
	v, err := c.integer("int32", 32)
	return int32(v), err
}

func (c *Cursor) Int64() (int64, error) {
	return c.integer("int64", 64)
}

func (c *Cursor) Uint64() (uint64, error) {
	switch c.kind {
	case Number:
		if c.fractional {
			return 0, jsonerr.Unexpected(c.offset, "expected integer for uint64, found %s", c.Raw())
		}
		v, err := strconv.ParseUint(bytesToStringNoCopy(c.Raw()), 10, 64)
		if err != nil {
			return 0, jsonerr.Unexpected(c.offset, "number %s out of range for uint64", c.Raw())
		}
		return v, nil
	case Null:
		return 0, c.null("uint64")
	}
	return 0, c.mismatch("uint64")
}

func (c *Cursor) Float32() (float32, error) {
	v, err := c.float("float32", 32)
	return float32(v), err
}

func (c *Cursor) Float64() (float64, error) {
	return c.float("float64", 64)
}

func (c *Cursor) Bool() (bool, error) {
	switch c.kind {
	case True:
		return true, nil
	case False:
		return false, nil
	case Null:
		return false, c.null("bool")
	}
	return false, c.mismatch("bool")
}

// Time decodes an RFC 3339 string token.
func (c *Cursor) Time() (time.Time, error) {
	switch c.kind {
	case String:
		s := c.text()
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, jsonerr.Unexpected(c.offset, "invalid time %q", s)
		}
		return t, nil
	case Null:
		return time.Time{}, c.null("time.Time")
	}
	return time.Time{}, c.mismatch("time.Time")
}

// Base64 decodes a standard base64 string token; null yields nil.
func (c *Cursor) Base64() ([]byte, error) {
	switch c.kind {
	case String:
		raw := c.Raw()
		if c.escaped {
			raw = []byte(c.text())
		}
		out := make([]byte, base64.StdEncoding.DecodedLen(len(raw)))
		n, err := base64.StdEncoding.Decode(out, raw)
		if err != nil {
			return nil, jsonerr.Unexpected(c.offset, "invalid base64 data: %v", err)
		}
		return out[:n], nil
	case Null:
		return nil, nil
	}
	return nil, c.mismatch("[]byte")
}

// ReadString advances one token and decodes it as a string.
func (c *Cursor) ReadString() (string, error) {
	if _, err := c.Next(); err != nil {
		return "", err
	}
	return c.String()
}

func (c *Cursor) ReadInt() (int, error) {
	if _, err := c.Next(); err != nil {
		return 0, err
	}
	return c.Int()
}

func (c *Cursor) ReadInt32() (int32, error) {
	if _, err := c.Next(); err != nil {
		return 0, err
	}
	return c.Int32()
}

func (c *Cursor) ReadInt64() (int64, error) {
	if _, err := c.Next(); err != nil {
		return 0, err
	}
	return c.Int64()
}

func (c *Cursor) ReadUint64() (uint64, error) {
	if _, err := c.Next(); err != nil {
		return 0, err
	}
	return c.Uint64()
}

func (c *Cursor) ReadFloat32() (float32, error) {
	if _, err := c.Next(); err != nil {
		return 0, err
	}
	return c.Float32()
}

func (c *Cursor) ReadFloat64() (float64, error) {
	if _, err := c.Next(); err != nil {
		return 0, err
	}
	return c.Float64()
}

func (c *Cursor) ReadBool() (bool, error) {
	if _, err := c.Next(); err != nil {
		return false, err
	}
	return c.Bool()
}

func (c *Cursor) ReadTime() (time.Time, error) {
	if _, err := c.Next(); err != nil {
		return time.Time{}, err
	}
	return c.Time()
}

func (c *Cursor) ReadBase64() ([]byte, error) {
	if _, err := c.Next(); err != nil {
		return nil, err
	}
	return c.Base64()
}

// Mark records that the field at bit was decoded, rejecting repeats under ErrorOnDuplicate.
func (c *Cursor) Mark(seen *uint64, bit uint) error {
	mask := uint64(1) << bit
	if *seen&mask != 0 && c.config.DuplicateKeyPolicy == ErrorOnDuplicate {
		return jsonerr.Field(c.offset, c.text(), "duplicate field")
	}
	*seen |= mask
	return nil
}

// Required verifies that every bit of required is present in seen. names
// holds the JSON field names indexed by bit.
func (c *Cursor) Required(seen, required uint64, names []string) error {
	if c.config.MissingFieldPolicy == DefaultMissing {
		return nil
	}
	missing := required &^ seen
	if missing == 0 {
		return nil
	}
	return jsonerr.Missing(names[bits.TrailingZeros64(missing)])
}

// SkipUnknown consumes the value of an unrecognized property.
func (c *Cursor) SkipUnknown() error {
	if c.config.UnknownFieldPolicy == ErrorOnUnknown {
		return jsonerr.Field(c.offset, c.text(), "unknown field")
	}
	return c.Skip()
}

func (c *Cursor) text() string {
	if !c.escaped {
		return string(c.Raw())
	}
	return unescape(c.Raw())
}

func (c *Cursor) integer(typeName string, bitSize int) (int64, error) {
	switch c.kind {
	case Number:
		if c.fractional {
			return 0, jsonerr.Unexpected(c.offset, "expected integer for %s, found %s", typeName, c.Raw())
		}
		v, err := strconv.ParseInt(bytesToStringNoCopy(c.Raw()), 10, bitSize)
		if err != nil {
			return 0, jsonerr.Unexpected(c.offset, "number %s out of range for %s", c.Raw(), typeName)
		}
		return v, nil
	case Null:
		return 0, c.null(typeName)
	}
	return 0, c.mismatch(typeName)
}

func (c *Cursor) float(typeName string, bitSize int) (float64, error) {
	switch c.kind {
	case Number:
		v, err := strconv.ParseFloat(bytesToStringNoCopy(c.Raw()), bitSize)
		if err != nil {
			return 0, jsonerr.Unexpected(c.offset, "number %s out of range for %s", c.Raw(), typeName)
		}
		return v, nil
	case Null:
		return 0, c.null(typeName)
	}
	return 0, c.mismatch(typeName)
}

// AcceptNull reports whether a null token may stand in for a value of
// typeName. Under CompatNulls it returns nil and the caller keeps the zero value.
func (c *Cursor) AcceptNull(typeName string) error {
	return c.null(typeName)
}

func (c *Cursor) null(typeName string) error {
	if c.config.NullPolicy == CompatNulls {
		return nil
	}
	return jsonerr.Unexpected(c.offset, "null is not allowed for %s", typeName)
}

func (c *Cursor) mismatch(typeName string) error {
	return jsonerr.Unexpected(c.offset, "cannot decode %v into %s", c.kind, typeName)
}
