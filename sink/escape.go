package sink

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/viant/aotjson/jsonerr"
)

const hex = "0123456789abcdef"

// safe marks ASCII bytes that can be copied into a JSON string verbatim.
var safe = func() (table [utf8.RuneSelf]bool) {
	for i := 0x20; i < utf8.RuneSelf; i++ {
		table[i] = i != '"' && i != '\\'
	}
	return table
}()

func (w *Writer) appendString(s string) {
	w.reserve(len(s) + 2)
	w.buf = append(w.buf, '"')
	start := 0
	for i := 0; i < len(s); {
		if b := s[i]; b < utf8.RuneSelf {
			if safe[b] {
				i++
				continue
			}
			w.flush(s[start:i])
			w.reserve(6)
			switch b {
			case '"', '\\':
				w.buf = append(w.buf, '\\', b)
			case '\n':
				w.buf = append(w.buf, '\\', 'n')
			case '\r':
				w.buf = append(w.buf, '\\', 'r')
			case '\t':
				w.buf = append(w.buf, '\\', 't')
			case '\b':
				w.buf = append(w.buf, '\\', 'b')
			case '\f':
				w.buf = append(w.buf, '\\', 'f')
			default:
				w.buf = append(w.buf, '\\', 'u', '0', '0', hex[b>>4], hex[b&0xF])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			w.flush(s[start:i])
			w.reserve(6)
			w.buf = append(w.buf, "\ufffd"...)
			i += size
			start = i
			continue
		}
		if r == '\u2028' || r == '\u2029' {
			w.flush(s[start:i])
			w.reserve(6)
			w.buf = append(w.buf, '\\', 'u', '2', '0', '2', hex[r&0xF])
			i += size
			start = i
			continue
		}
		i += size
	}
	w.flush(s[start:])
	w.write('"')
}

func (w *Writer) flush(s string) {
	if s == "" {
		return
	}
	w.reserve(len(s))
	w.buf = append(w.buf, s...)
}

// addFloat writes f the way ECMAScript formats numbers: the shortest
// representation that round-trips, in exponent form only below 1e-6 or at
// or above 1e21.
func (w *Writer) addFloat(f float64, bitSize int) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		w.Fail(jsonerr.Value("unsupported value: %s", strconv.FormatFloat(f, 'g', -1, bitSize)))
		return
	}
	w.sep()
	w.reserve(32)
	format := byte('f')
	if abs := math.Abs(f); abs != 0 {
		if bitSize == 64 && (abs < 1e-6 || abs >= 1e21) || bitSize == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}
	start := len(w.buf)
	w.buf = strconv.AppendFloat(w.buf, f, format, -1, bitSize)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(w.buf) - start
		if n >= 4 && w.buf[len(w.buf)-4] == 'e' && w.buf[len(w.buf)-3] == '-' && w.buf[len(w.buf)-2] == '0' {
			w.buf[len(w.buf)-2] = w.buf[len(w.buf)-1]
			w.buf[len(w.buf)-1] = 0
			w.buf = w.buf[:len(w.buf)-1]
		}
	}
	w.value()
}
