// Package sink implements a push-style JSON writer over a pooled, growable
// byte buffer. Every buffer the writer rents is cleared before it goes back
// to the pool.
package sink

import (
	"encoding/base64"
	"strconv"
	"time"

	"github.com/viant/aotjson/jsonerr"
	"github.com/viant/aotjson/pool"
)

const (
	// DefaultInitialSize is the size of the first buffer rented by a writer.
	DefaultInitialSize = 16 << 10
	// DefaultMaxPooledSize is the largest buffer a writer returns to its pool.
	DefaultMaxPooledSize = pool.DefaultMaxSize
)

// Config controls writer buffering.
type Config struct {
	Pool            pool.Pool
	InitialSize     int
	MaxPooledSize   int
	NilSliceAsEmpty bool
}

// Writer appends JSON tokens to a buffer. Separators between values are
// inserted automatically. A Writer is not safe for concurrent use.
type Writer struct {
	buf       []byte
	pooled    bool
	pool      pool.Pool
	maxPooled int
	initial   int
	needComma bool
	nilEmpty  bool
	released  bool
	err       error
}

// New creates a writer; the first buffer is rented lazily on the first write.
func New(cfg Config) *Writer {
	w := &Writer{pool: cfg.Pool, maxPooled: cfg.MaxPooledSize, initial: cfg.InitialSize, nilEmpty: cfg.NilSliceAsEmpty}
	if w.pool == nil {
		w.pool = pool.Default
	}
	if w.maxPooled <= 0 {
		w.maxPooled = DefaultMaxPooledSize
	}
	if w.initial <= 0 {
		w.initial = DefaultInitialSize
	}
	return w
}

// Bytes returns the written bytes. The slice aliases the writer buffer and is
// invalid after Release.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written.
func (w *Writer) Len() int { return len(w.buf) }

// Err returns the first error recorded by a write.
func (w *Writer) Err() error { return w.err }

// NilSliceAsEmpty reports whether nil slices and maps are written as empty containers.
func (w *Writer) NilSliceAsEmpty() bool { return w.nilEmpty }

// Fail records err unless an error was already recorded.
func (w *Writer) Fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// Release clears the written region and returns the buffer to the pool.
// Calling Release more than once is a no-op.
func (w *Writer) Release() {
	if w.released {
		return
	}
	w.released = true
	w.drop()
}

func (w *Writer) drop() {
	if w.buf == nil {
		return
	}
	clear(w.buf)
	buf := w.buf[:cap(w.buf)]
	w.buf = nil
	if w.pooled {
		w.pool.Return(buf)
	}
}

// reserve makes room for n more bytes so that subsequent appends stay in the
// rented buffer.
func (w *Writer) reserve(n int) {
	if cap(w.buf)-len(w.buf) >= n {
		return
	}
	w.grow(n)
}

func (w *Writer) grow(n int) {
	need := len(w.buf) + n
	size := max(w.initial, 2*cap(w.buf))
	for size < need {
		size *= 2
	}
	var next []byte
	pooled := size <= w.maxPooled
	if pooled {
		next = w.pool.Rent(size)
	} else {
		next = make([]byte, size)
	}
	next = next[:copy(next, w.buf)]
	w.drop()
	w.buf = next
	w.pooled = pooled
}

func (w *Writer) write(b byte) {
	w.reserve(1)
	w.buf = append(w.buf, b)
}

func (w *Writer) writeString(s string) {
	w.reserve(len(s))
	w.buf = append(w.buf, s...)
}

func (w *Writer) sep() {
	if w.needComma {
		w.write(',')
	}
}

func (w *Writer) value() {
	w.needComma = true
}

func (w *Writer) BeginObject() {
	w.sep()
	w.write('{')
	w.needComma = false
}

func (w *Writer) EndObject() {
	w.write('}')
	w.value()
}

func (w *Writer) BeginArray() {
	w.sep()
	w.write('[')
	w.needComma = false
}

func (w *Writer) EndArray() {
	w.write(']')
	w.value()
}

// Name writes an escaped property name followed by a colon.
func (w *Writer) Name(name string) {
	w.sep()
	w.appendString(name)
	w.write(':')
	w.needComma = false
}

// RawName writes a pre-escaped `"name":` literal.
func (w *Writer) RawName(literal string) {
	w.sep()
	w.writeString(literal)
	w.needComma = false
}

func (w *Writer) AddString(s string) {
	w.sep()
	w.appendString(s)
	w.value()
}

func (w *Writer) AddInt(v int) {
	w.AddInt64(int64(v))
}

func (w *Writer) AddInt32(v int32) {
	w.AddInt64(int64(v))
}

func (w *Writer) AddInt64(v int64) {
	w.sep()
	w.reserve(20)
	w.buf = strconv.AppendInt(w.buf, v, 10)
	w.value()
}

func (w *Writer) AddUint64(v uint64) {
	w.sep()
	w.reserve(20)
	w.buf = strconv.AppendUint(w.buf, v, 10)
	w.value()
}

func (w *Writer) AddFloat64(v float64) {
	w.addFloat(v, 64)
}

func (w *Writer) AddFloat32(v float32) {
	w.addFloat(float64(v), 32)
}

func (w *Writer) AddBool(v bool) {
	w.sep()
	if v {
		w.writeString("true")
	} else {
		w.writeString("false")
	}
	w.value()
}

func (w *Writer) AddNull() {
	w.sep()
	w.writeString("null")
	w.value()
}

// AddTime writes t as a quoted RFC 3339 timestamp with nanoseconds. Zone
// offsets with a seconds part cannot be written and fail the writer.
func (w *Writer) AddTime(t time.Time) {
	if y := t.Year(); y < 0 || y >= 10000 {
		w.Fail(jsonerr.Value("time %v year outside of range [0,9999]", t))
		return
	}
	if _, offset := t.Zone(); offset%60 != 0 {
		w.Fail(jsonerr.Value("time %v zone offset %ds is not a whole minute", t, offset))
		return
	}
	w.sep()
	w.reserve(len(time.RFC3339Nano) + 8)
	w.buf = append(w.buf, '"')
	w.buf = t.AppendFormat(w.buf, time.RFC3339Nano)
	w.buf = append(w.buf, '"')
	w.value()
}

// AddBase64 writes b as a standard base64 string; nil is written as null.
func (w *Writer) AddBase64(b []byte) {
	if b == nil {
		w.AddNull()
		return
	}
	w.sep()
	w.reserve(base64.StdEncoding.EncodedLen(len(b)) + 2)
	w.buf = append(w.buf, '"')
	w.buf = base64.StdEncoding.AppendEncode(w.buf, b)
	w.buf = append(w.buf, '"')
	w.value()
}
