package aotjson

import (
	"time"

	"github.com/viant/aotjson/cursor"
	"github.com/viant/aotjson/sink"
)

// Converter decodes and encodes values of one type.
//
// Decode expects the cursor on the first token of the value and leaves it on
// the last token of the value. Encode writes null for a nil pointer; write
// failures are recorded on the writer.
type Converter[T any] interface {
	Decode(c *cursor.Cursor) (T, error)
	Encode(w *sink.Writer, v *T)
}

type (
	StringConverter  struct{}
	BoolConverter    struct{}
	IntConverter     struct{}
	Int32Converter   struct{}
	Int64Converter   struct{}
	Uint64Converter  struct{}
	Float32Converter struct{}
	Float64Converter struct{}
	// TimeConverter uses RFC 3339 with nanoseconds on encode.
	TimeConverter struct{}
	// BytesConverter uses standard base64; a nil slice is null.
	BytesConverter struct{}
)

func (StringConverter) Decode(c *cursor.Cursor) (string, error) { return c.String() }

func (StringConverter) Encode(w *sink.Writer, v *string) {
	if v == nil {
		w.AddNull()
		return
	}
	w.AddString(*v)
}

func (BoolConverter) Decode(c *cursor.Cursor) (bool, error) { return c.Bool() }

func (BoolConverter) Encode(w *sink.Writer, v *bool) {
	if v == nil {
		w.AddNull()
		return
	}
	w.AddBool(*v)
}

func (IntConverter) Decode(c *cursor.Cursor) (int, error) { return c.Int() }

func (IntConverter) Encode(w *sink.Writer, v *int) {
	if v == nil {
		w.AddNull()
		return
	}
	w.AddInt(*v)
}

func (Int32Converter) Decode(c *cursor.Cursor) (int32, error) { return c.Int32() }

func (Int32Converter) Encode(w *sink.Writer, v *int32) {
	if v == nil {
		w.AddNull()
		return
	}
	w.AddInt32(*v)
}

func (Int64Converter) Decode(c *cursor.Cursor) (int64, error) { return c.Int64() }

func (Int64Converter) Encode(w *sink.Writer, v *int64) {
	if v == nil {
		w.AddNull()
		return
	}
	w.AddInt64(*v)
}

func (Uint64Converter) Decode(c *cursor.Cursor) (uint64, error) { return c.Uint64() }

func (Uint64Converter) Encode(w *sink.Writer, v *uint64) {
	if v == nil {
		w.AddNull()
		return
	}
	w.AddUint64(*v)
}

func (Float32Converter) Decode(c *cursor.Cursor) (float32, error) { return c.Float32() }

func (Float32Converter) Encode(w *sink.Writer, v *float32) {
	if v == nil {
		w.AddNull()
		return
	}
	w.AddFloat32(*v)
}

func (Float64Converter) Decode(c *cursor.Cursor) (float64, error) { return c.Float64() }

func (Float64Converter) Encode(w *sink.Writer, v *float64) {
	if v == nil {
		w.AddNull()
		return
	}
	w.AddFloat64(*v)
}

func (TimeConverter) Decode(c *cursor.Cursor) (time.Time, error) { return c.Time() }

func (TimeConverter) Encode(w *sink.Writer, v *time.Time) {
	if v == nil {
		w.AddNull()
		return
	}
	w.AddTime(*v)
}

func (BytesConverter) Decode(c *cursor.Cursor) ([]byte, error) { return c.Base64() }

func (BytesConverter) Encode(w *sink.Writer, v *[]byte) {
	if v == nil {
		w.AddNull()
		return
	}
	w.AddBase64(*v)
}
