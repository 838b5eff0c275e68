package aotjson

import (
	"maps"
	"slices"
	"strings"

	"github.com/viant/aotjson/cursor"
	"github.com/viant/aotjson/jsonerr"
	"github.com/viant/aotjson/sink"
)

// Read advances to the next value and decodes it.
func Read[T any](c *cursor.Cursor, conv Converter[T]) (T, error) {
	if _, err := c.Next(); err != nil {
		var zero T
		return zero, err
	}
	return conv.Decode(c)
}

// ReadPtr advances to the next value and decodes it into a new pointer; null yields nil.
func ReadPtr[T any](c *cursor.Cursor, conv Converter[T]) (*T, error) {
	kind, err := c.Next()
	if err != nil {
		return nil, err
	}
	if kind == cursor.Null {
		return nil, nil
	}
	v, err := conv.Decode(c)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ReadSlice advances to the next value and decodes it as an array.
func ReadSlice[T any](c *cursor.Cursor, conv Converter[T]) ([]T, error) {
	if _, err := c.Next(); err != nil {
		return nil, err
	}
	return DecodeSlice(c, conv)
}

// ReadMap advances to the next value and decodes it as an object keyed by member name.
func ReadMap[T any](c *cursor.Cursor, conv Converter[T]) (map[string]T, error) {
	if _, err := c.Next(); err != nil {
		return nil, err
	}
	return DecodeMap(c, conv)
}

// DecodeSlice decodes the array at the cursor. null yields a nil slice and
// an empty array a non-nil empty slice.
func DecodeSlice[T any](c *cursor.Cursor, conv Converter[T]) ([]T, error) {
	if c.Kind() == cursor.Null {
		return nil, nil
	}
	if err := c.Expect(cursor.BeginArray); err != nil {
		return nil, err
	}
	result := []T{}
	for {
		kind, err := c.Next()
		if err != nil {
			return nil, err
		}
		if kind == cursor.EndArray {
			return result, nil
		}
		item, err := conv.Decode(c)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
}

// DecodeMap decodes the object at the cursor; null yields a nil map.
func DecodeMap[T any](c *cursor.Cursor, conv Converter[T]) (map[string]T, error) {
	if c.Kind() == cursor.Null {
		return nil, nil
	}
	if err := c.Expect(cursor.BeginObject); err != nil {
		return nil, err
	}
	result := map[string]T{}
	for {
		kind, err := c.Next()
		if err != nil {
			return nil, err
		}
		if kind == cursor.EndObject {
			return result, nil
		}
		key := strings.Clone(c.Name())
		if _, ok := result[key]; ok && c.Config().DuplicateKeyPolicy == cursor.ErrorOnDuplicate {
			return nil, jsonerr.Field(c.Offset(), key, "duplicate field")
		}
		item, err := Read(c, conv)
		if err != nil {
			return nil, err
		}
		result[key] = item
	}
}

// EncodeSlice writes s as an array. A nil slice is written as null unless
// the writer is configured to write empty arrays.
func EncodeSlice[T any](w *sink.Writer, s []T, conv Converter[T]) {
	if s == nil && !w.NilSliceAsEmpty() {
		w.AddNull()
		return
	}
	w.BeginArray()
	for i := range s {
		conv.Encode(w, &s[i])
	}
	w.EndArray()
}

// EncodeMap writes m as an object with members in ascending key order.
func EncodeMap[T any](w *sink.Writer, m map[string]T, conv Converter[T]) {
	if m == nil && !w.NilSliceAsEmpty() {
		w.AddNull()
		return
	}
	w.BeginObject()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		w.Name(key)
		item := m[key]
		conv.Encode(w, &item)
	}
	w.EndObject()
}
