// Package cursor implements a pull tokenizer over an immutable UTF-8 JSON
// document. The grammar is validated while scanning; accessors decode the raw
// bytes of the current token directly into Go values.
package cursor

import (
	"bytes"

	"github.com/viant/aotjson/jsonerr"
)

type state uint8

const (
	stateValue state = iota
	stateColon
	stateObjectFirst
	stateObjectNext
	stateArrayFirst
	stateArrayNext
	stateDone
	stateFailed
)

var (
	literalTrue  = []byte("true")
	literalFalse = []byte("false")
	literalNull  = []byte("null")
)

// Cursor walks a JSON document token by token. A Cursor is not safe for
// concurrent use.
type Cursor struct {
	data       []byte
	pos        int
	kind       Kind
	offset     int
	start      int
	end        int
	escaped    bool
	fractional bool
	state      state
	stack      []byte
	err        error
	config     Config
}

// New creates a cursor over data.
func New(data []byte, config Config) *Cursor {
	c := &Cursor{}
	c.Configure(data, config)
	return c
}

// Configure replaces the configuration and rewinds the cursor onto data.
func (c *Cursor) Configure(data []byte, config Config) {
	c.config = config
	c.Reset(data)
}

// Reset rewinds the cursor onto data, keeping its configuration.
func (c *Cursor) Reset(data []byte) {
	c.data = data
	c.pos = 0
	c.kind = None
	c.offset = 0
	c.start, c.end = 0, 0
	c.escaped, c.fractional = false, false
	c.state = stateValue
	c.stack = c.stack[:0]
	c.err = nil
	if c.config.MaxDepth <= 0 {
		c.config.MaxDepth = DefaultMaxDepth
	}
}

// Config returns the cursor configuration.
func (c *Cursor) Config() Config { return c.config }

// Kind returns the current token kind.
func (c *Cursor) Kind() Kind { return c.kind }

// Offset returns the byte offset where the current token starts.
func (c *Cursor) Offset() int { return c.offset }

// Depth returns the number of open objects and arrays.
func (c *Cursor) Depth() int { return len(c.stack) }

// Raw returns the current token bytes; string tokens exclude the quotes.
func (c *Cursor) Raw() []byte { return c.data[c.start:c.end] }

// Next advances to the next token.
func (c *Cursor) Next() (Kind, error) {
	if c.state == stateFailed {
		return c.kind, c.err
	}
	c.skipWS()
	switch c.state {
	case stateValue:
		return c.readValue()
	case stateColon:
		if c.pos >= len(c.data) {
			return c.eof()
		}
		if c.data[c.pos] != ':' {
			return c.fail(c.pos, "expected ':' after object key, found %q", c.data[c.pos])
		}
		c.pos++
		c.skipWS()
		return c.readValue()
	case stateObjectFirst:
		if c.pos >= len(c.data) {
			return c.eof()
		}
		switch c.data[c.pos] {
		case '}':
			return c.closeContainer(EndObject)
		case '"':
			return c.readName()
		}
		return c.fail(c.pos, "expected object key or '}', found %q", c.data[c.pos])
	case stateObjectNext:
		if c.pos >= len(c.data) {
			return c.eof()
		}
		switch c.data[c.pos] {
		case '}':
			return c.closeContainer(EndObject)
		case ',':
			c.pos++
			c.skipWS()
			if c.pos >= len(c.data) {
				return c.eof()
			}
			switch c.data[c.pos] {
			case '"':
				return c.readName()
			case '}':
				return c.fail(c.pos, "trailing comma in object")
			}
			return c.fail(c.pos, "expected object key, found %q", c.data[c.pos])
		}
		return c.fail(c.pos, "expected ',' or '}' in object, found %q", c.data[c.pos])
	case stateArrayFirst:
		if c.pos >= len(c.data) {
			return c.eof()
		}
		if c.data[c.pos] == ']' {
			return c.closeContainer(EndArray)
		}
		return c.readValue()
	case stateArrayNext:
		if c.pos >= len(c.data) {
			return c.eof()
		}
		switch c.data[c.pos] {
		case ']':
			return c.closeContainer(EndArray)
		case ',':
			c.pos++
			c.skipWS()
			if c.pos < len(c.data) && c.data[c.pos] == ']' {
				return c.fail(c.pos, "trailing comma in array")
			}
			return c.readValue()
		}
		return c.fail(c.pos, "expected ',' or ']' in array, found %q", c.data[c.pos])
	default:
		if c.pos < len(c.data) {
			return c.fail(c.pos, "unexpected data after top-level value")
		}
		c.setToken(EOF, c.pos, c.pos, c.pos)
		return EOF, nil
	}
}

// Expect verifies the current token kind.
func (c *Cursor) Expect(kind Kind) error {
	if c.kind != kind {
		return jsonerr.Unexpected(c.offset, "expected %v, found %v", kind, c.kind)
	}
	return nil
}

// Skip consumes the current value. On a property name it consumes the
// property's value; on an object or array start it consumes the whole
// container, leaving the cursor on the matching end token.
func (c *Cursor) Skip() error {
	if c.kind == PropertyName {
		if _, err := c.Next(); err != nil {
			return err
		}
	}
	if c.kind != BeginObject && c.kind != BeginArray {
		return nil
	}
	depth := len(c.stack) - 1
	for {
		kind, err := c.Next()
		if err != nil {
			return err
		}
		if (kind == EndObject || kind == EndArray) && len(c.stack) == depth {
			return nil
		}
	}
}

// End verifies that nothing but whitespace follows the top-level value.
func (c *Cursor) End() error {
	if len(c.stack) > 0 {
		return jsonerr.Unexpected(c.offset, "value not fully consumed at depth %d", len(c.stack))
	}
	kind, err := c.Next()
	if err != nil {
		return err
	}
	if kind != EOF {
		return jsonerr.Malformed(c.offset, "unexpected data after top-level value")
	}
	return nil
}

func (c *Cursor) readValue() (Kind, error) {
	if c.pos >= len(c.data) {
		return c.eof()
	}
	start := c.pos
	switch ch := c.data[c.pos]; ch {
	case '{':
		return c.openContainer('{', BeginObject, stateObjectFirst)
	case '[':
		return c.openContainer('[', BeginArray, stateArrayFirst)
	case '"':
		end, escaped, err := c.scanString(start)
		if err != nil {
			return c.failWith(err)
		}
		c.setToken(String, start, start+1, end)
		c.escaped = escaped
		c.pos = end + 1
		c.afterValue()
		return String, nil
	case 't':
		return c.literal(literalTrue, True)
	case 'f':
		return c.literal(literalFalse, False)
	case 'n':
		return c.literal(literalNull, Null)
	default:
		if ch == '-' || (ch >= '0' && ch <= '9') {
			end, fractional, err := c.scanNumber(start)
			if err != nil {
				return c.failWith(err)
			}
			c.setToken(Number, start, start, end)
			c.fractional = fractional
			c.pos = end
			c.afterValue()
			return Number, nil
		}
		return c.fail(start, "invalid character %q looking for beginning of value", ch)
	}
}

func (c *Cursor) readName() (Kind, error) {
	start := c.pos
	end, escaped, err := c.scanString(start)
	if err != nil {
		return c.failWith(err)
	}
	c.setToken(PropertyName, start, start+1, end)
	c.escaped = escaped
	c.pos = end + 1
	c.state = stateColon
	return PropertyName, nil
}

func (c *Cursor) literal(lit []byte, kind Kind) (Kind, error) {
	rest := c.data[c.pos:]
	if !bytes.HasPrefix(rest, lit) {
		if len(rest) < len(lit) && bytes.HasPrefix(lit, rest) {
			return c.eof()
		}
		return c.fail(c.pos, "invalid literal, expected %s", lit)
	}
	c.setToken(kind, c.pos, c.pos, c.pos+len(lit))
	c.pos += len(lit)
	c.afterValue()
	return kind, nil
}

func (c *Cursor) openContainer(open byte, kind Kind, next state) (Kind, error) {
	if len(c.stack) >= c.config.MaxDepth {
		return c.fail(c.pos, "exceeded max depth %d", c.config.MaxDepth)
	}
	c.stack = append(c.stack, open)
	c.setToken(kind, c.pos, c.pos, c.pos+1)
	c.pos++
	c.state = next
	return kind, nil
}

func (c *Cursor) closeContainer(kind Kind) (Kind, error) {
	c.stack = c.stack[:len(c.stack)-1]
	c.setToken(kind, c.pos, c.pos, c.pos+1)
	c.pos++
	c.afterValue()
	return kind, nil
}

func (c *Cursor) afterValue() {
	switch {
	case len(c.stack) == 0:
		c.state = stateDone
	case c.stack[len(c.stack)-1] == '{':
		c.state = stateObjectNext
	default:
		c.state = stateArrayNext
	}
}

func (c *Cursor) setToken(kind Kind, offset, start, end int) {
	c.kind = kind
	c.offset = offset
	c.start = start
	c.end = end
	c.escaped = false
	c.fractional = false
}

func (c *Cursor) skipWS() {
	for c.pos < len(c.data) {
		switch c.data[c.pos] {
		case ' ', '\n', '\r', '\t':
			c.pos++
		default:
			return
		}
	}
}

func (c *Cursor) eof() (Kind, error) {
	return c.fail(c.pos, "unexpected end of input")
}

func (c *Cursor) fail(offset int, format string, args ...interface{}) (Kind, error) {
	return c.failWith(jsonerr.Malformed(offset, format, args...))
}

func (c *Cursor) failWith(err error) (Kind, error) {
	c.state = stateFailed
	c.err = err
	return c.kind, err
}
