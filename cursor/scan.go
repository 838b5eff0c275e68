package cursor

import (
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"

	"github.com/viant/aotjson/jsonerr"
)

// scanString validates the string starting at the quote at q and returns the
// index of its closing quote.
func (c *Cursor) scanString(q int) (int, bool, error) {
	escaped := false
	i := q + 1
	for i < len(c.data) {
		ch := c.data[i]
		switch {
		case ch == '"':
			return i, escaped, nil
		case ch == '\\':
			escaped = true
			i++
			if i >= len(c.data) {
				return 0, false, jsonerr.Malformed(i, "unterminated string")
			}
			switch c.data[i] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i++
			case 'u':
				if i+4 >= len(c.data) {
					return 0, false, jsonerr.Malformed(i, "unterminated string")
				}
				if _, ok := parseHex4(c.data[i+1 : i+5]); !ok {
					return 0, false, jsonerr.Malformed(i, "invalid unicode escape")
				}
				i += 5
			default:
				return 0, false, jsonerr.Malformed(i, "invalid escape character %q", c.data[i])
			}
		case ch < 0x20:
			return 0, false, jsonerr.Malformed(i, "invalid control character in string")
		default:
			i++
		}
	}
	return 0, false, jsonerr.Malformed(i, "unterminated string")
}

// scanNumber validates the number starting at start and returns its end.
func (c *Cursor) scanNumber(start int) (int, bool, error) {
	data := c.data
	i := start
	fractional := false
	if data[i] == '-' {
		i++
	}
	if i >= len(data) {
		return 0, false, jsonerr.Malformed(i, "unexpected end of input in number")
	}
	switch {
	case data[i] == '0':
		i++
	case data[i] >= '1' && data[i] <= '9':
		i = skipDigits(data, i+1)
	default:
		return 0, false, jsonerr.Malformed(i, "invalid character %q in number", data[i])
	}
	if i < len(data) && data[i] == '.' {
		fractional = true
		i++
		if i >= len(data) {
			return 0, false, jsonerr.Malformed(i, "unexpected end of input in number")
		}
		if !isDigit(data[i]) {
			return 0, false, jsonerr.Malformed(i, "expected digit after decimal point")
		}
		i = skipDigits(data, i)
	}
	if i < len(data) && (data[i] == 'e' || data[i] == 'E') {
		fractional = true
		i++
		if i < len(data) && (data[i] == '+' || data[i] == '-') {
			i++
		}
		if i >= len(data) {
			return 0, false, jsonerr.Malformed(i, "unexpected end of input in number")
		}
		if !isDigit(data[i]) {
			return 0, false, jsonerr.Malformed(i, "expected digit in exponent")
		}
		i = skipDigits(data, i)
	}
	return i, fractional, nil
}

func skipDigits(data []byte, i int) int {
	for i < len(data) && isDigit(data[i]) {
		i++
	}
	return i
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

// unescape decodes a string body whose escapes were validated by scanString.
// An unpaired surrogate escape decodes to U+FFFD.
func unescape(raw []byte) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if ch != '\\' {
			out = append(out, ch)
			continue
		}
		i++
		switch raw[i] {
		case '"', '\\', '/':
			out = append(out, raw[i])
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			r, _ := parseHex4(raw[i+1 : i+5])
			i += 4
			if utf16.IsSurrogate(r) {
				decoded := utf8.RuneError
				if i+6 < len(raw) && raw[i+1] == '\\' && raw[i+2] == 'u' {
					if r2, ok := parseHex4(raw[i+3 : i+7]); ok {
						if decoded = utf16.DecodeRune(r, r2); decoded != utf8.RuneError {
							i += 6
						}
					}
				}
				r = decoded
			}
			out = utf8.AppendRune(out, r)
		}
	}
	return string(out)
}

func parseHex4(b []byte) (rune, bool) {
	var v rune
	for i := 0; i < 4; i++ {
		ch := b[i]
		var d rune
		switch {
		case ch >= '0' && ch <= '9':
			d = rune(ch - '0')
		case ch >= 'a' && ch <= 'f':
			d = rune(ch-'a') + 10
		case ch >= 'A' && ch <= 'F':
			d = rune(ch-'A') + 10
		default:
			return 0, false
		}
		v = (v << 4) | d
	}
	return v, true
}

func bytesToStringNoCopy(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
