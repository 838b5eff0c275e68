package aotjson

import (
	"sync"

	"github.com/viant/aotjson/cursor"
	"github.com/viant/aotjson/sink"
)

var cursorPool = sync.Pool{New: func() any { return cursor.New(nil, cursor.Config{}) }}

func acquireCursor(data []byte, cfg cursor.Config) *cursor.Cursor {
	c := cursorPool.Get().(*cursor.Cursor)
	c.Configure(data, cfg)
	return c
}

func releaseCursor(c *cursor.Cursor) {
	c.Reset(nil)
	cursorPool.Put(c)
}

// Marshal encodes v with the converter registered for T.
func Marshal[T any](v *T, opts ...Option) ([]byte, error) {
	return MarshalTo(nil, v, opts...)
}

// MarshalTo appends the encoding of v to dst. On error dst is returned unchanged.
func MarshalTo[T any](dst []byte, v *T, opts ...Option) ([]byte, error) {
	cfg := resolveOptions(opts)
	conv, err := LookupIn[T](cfg.Registry)
	if err != nil {
		return dst, err
	}
	return marshalTo(dst, v, conv, &cfg)
}

// MarshalString encodes v into a string.
func MarshalString[T any](v *T, opts ...Option) (string, error) {
	cfg := resolveOptions(opts)
	conv, err := LookupIn[T](cfg.Registry)
	if err != nil {
		return "", err
	}
	w := sink.New(cfg.sinkConfig())
	defer w.Release()
	conv.Encode(w, v)
	if err = w.Err(); err != nil {
		return "", err
	}
	return string(w.Bytes()), nil
}

// MarshalWith encodes v with conv, bypassing the registry.
func MarshalWith[T any](v *T, conv Converter[T], opts ...Option) ([]byte, error) {
	cfg := resolveOptions(opts)
	return marshalTo(nil, v, conv, &cfg)
}

func marshalTo[T any](dst []byte, v *T, conv Converter[T], cfg *Options) ([]byte, error) {
	w := sink.New(cfg.sinkConfig())
	defer w.Release()
	conv.Encode(w, v)
	if err := w.Err(); err != nil {
		return dst, err
	}
	return append(dst, w.Bytes()...), nil
}

// Unmarshal decodes data with the converter registered for T. On error the
// zero value is returned.
func Unmarshal[T any](data []byte, opts ...Option) (T, error) {
	cfg := resolveOptions(opts)
	conv, err := LookupIn[T](cfg.Registry)
	if err != nil {
		var zero T
		return zero, err
	}
	return unmarshal(data, conv, &cfg)
}

// UnmarshalString decodes s. The text is copied into a pooled buffer that is
// cleared and returned before UnmarshalString returns.
func UnmarshalString[T any](s string, opts ...Option) (T, error) {
	cfg := resolveOptions(opts)
	conv, err := LookupIn[T](cfg.Registry)
	if err != nil {
		var zero T
		return zero, err
	}
	if len(s) > cfg.MaxPooledSize {
		return unmarshal([]byte(s), conv, &cfg)
	}
	buf := cfg.Pool.Rent(len(s))
	defer func() {
		clear(buf)
		cfg.Pool.Return(buf)
	}()
	n := copy(buf, s)
	return unmarshal(buf[:n], conv, &cfg)
}

// UnmarshalWith decodes data with conv, bypassing the registry.
func UnmarshalWith[T any](data []byte, conv Converter[T], opts ...Option) (T, error) {
	cfg := resolveOptions(opts)
	return unmarshal(data, conv, &cfg)
}

func unmarshal[T any](data []byte, conv Converter[T], cfg *Options) (T, error) {
	var zero T
	c := acquireCursor(data, cfg.cursorConfig())
	defer releaseCursor(c)
	if _, err := c.Next(); err != nil {
		return zero, err
	}
	v, err := conv.Decode(c)
	if err != nil {
		return zero, err
	}
	if err = c.End(); err != nil {
		return zero, err
	}
	return v, nil
}
