package cursor

import (
	stdjson "encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/aotjson/jsonerr"
)

func tokens(t *testing.T, input string) []Kind {
	t.Helper()
	c := New([]byte(input), Config{})
	var out []Kind
	for {
		kind, err := c.Next()
		require.NoError(t, err, input)
		out = append(out, kind)
		if kind == EOF {
			return out
		}
	}
}

func TestCursor_Tokens(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []Kind
	}{
		{"scalar", ` 42 `, []Kind{Number, EOF}},
		{"empty object", `{}`, []Kind{BeginObject, EndObject, EOF}},
		{"empty array", `[ ]`, []Kind{BeginArray, EndArray, EOF}},
		{
			name:     "object",
			input:    `{"a":1,"b":[true,false,null],"c":{"d":"x"}}`,
			expected: []Kind{BeginObject, PropertyName, Number, PropertyName, BeginArray, True, False, Null, EndArray, PropertyName, BeginObject, PropertyName, String, EndObject, EndObject, EOF},
		},
		{
			name:     "whitespace",
			input:    "\n{\t\"a\" :\r\n [ 1 , 2 ] }\n",
			expected: []Kind{BeginObject, PropertyName, BeginArray, Number, Number, EndArray, EndObject, EOF},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tokens(t, tc.input))
		})
	}
}

func TestCursor_Malformed(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty", ``},
		{"whitespace only", `   `},
		{"unterminated string", `{"a":"abc`},
		{"unterminated key", `{"a`},
		{"truncated object", `{"a":1`},
		{"truncated array", `[1,2`},
		{"truncated literal", `tru`},
		{"bad literal", `nul1`},
		{"object trailing comma", `{"a":1,}`},
		{"array trailing comma", `[1,2,]`},
		{"missing colon", `{"a" 1}`},
		{"missing comma", `{"a":1 "b":2}`},
		{"array missing comma", `[1 2]`},
		{"unquoted key", `{a:1}`},
		{"leading zero", `01`},
		{"bare minus", `-`},
		{"dangling decimal", `1.`},
		{"dangling exponent", `1e+`},
		{"plus sign", `+1`},
		{"trailing data", `{} {}`},
		{"control character", "\"a\nb\""},
		{"invalid escape", `"\x"`},
		{"short unicode escape", `"\u12"`},
		{"mismatched close", `[1}`},
		{"lone close", `}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := New([]byte(tc.input), Config{})
			var err error
			for i := 0; i < 64 && err == nil; i++ {
				var kind Kind
				kind, err = c.Next()
				if kind == EOF && err == nil {
					break
				}
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, jsonerr.ErrMalformedInput)
			assert.False(t, stdjson.Valid([]byte(tc.input)))
		})
	}
}

func TestCursor_FailureIsSticky(t *testing.T) {
	c := New([]byte(`[1,]`), Config{})
	for {
		_, err := c.Next()
		if err != nil {
			break
		}
	}
	_, err := c.Next()
	assert.ErrorIs(t, err, jsonerr.ErrMalformedInput)
}

func TestCursor_MaxDepth(t *testing.T) {
	c := New([]byte(`[[[1]]]`), Config{MaxDepth: 2})
	_, err := c.Next()
	require.NoError(t, err)
	_, err = c.Next()
	require.NoError(t, err)
	_, err = c.Next()
	assert.ErrorIs(t, err, jsonerr.ErrMalformedInput)
	assert.Contains(t, err.Error(), "max depth")
}

func TestCursor_Strings(t *testing.T) {
	cases := []string{
		`"plain"`,
		`"line1\nline2"`,
		`"tab\tsep"`,
		`"quote:\"ok\""`,
		`"slash:\/"`,
		`"backslash:\\\\"`,
		`"music:♫"`,
		`"emoji:😀"`,
		`"combo:\\\\\"end"`,
		`"ctl:\b\f\r"`,
		`"utf8: żółć 日本"`,
	}
	for _, input := range cases {
		c := New([]byte(input), Config{})
		_, err := c.Next()
		require.NoError(t, err, input)
		got, err := c.String()
		require.NoError(t, err, input)
		var want string
		require.NoError(t, stdjson.Unmarshal([]byte(input), &want))
		assert.Equal(t, want, got, input)
		require.NoError(t, c.End())
	}
}

func TestCursor_UnpairedSurrogate(t *testing.T) {
	testCases := []struct {
		input  string
		expect string
	}{
		{`"\uD83Dx"`, "\ufffdx"},
		{`"\uDE00"`, "\ufffd"},
		{`"\uD83DA"`, "\ufffdA"},
		{`"\ud800"`, "\ufffd"},
		{`"\ud800\ud800"`, "\ufffd\ufffd"},
		{`"\ud83d\ud83d\ude00"`, "\ufffd\U0001F600"},
		{`"a\ud800\n"`, "a\ufffd\n"},
		{`"\ude00\ud83d"`, "\ufffd\ufffd"},
	}
	for _, tc := range testCases {
		c := New([]byte(tc.input), Config{})
		_, err := c.Next()
		require.NoError(t, err, tc.input)
		actual, err := c.String()
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.expect, actual, tc.input)

		var std string
		require.NoError(t, stdjson.Unmarshal([]byte(tc.input), &std))
		assert.Equal(t, std, actual, tc.input)
	}

	c := New([]byte(`{"\ud800x":1}`), Config{})
	_, _ = c.Next()
	_, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, "\ufffdx", c.Name())
}

func TestCursor_StringDoesNotAliasInput(t *testing.T) {
	data := []byte(`"abc"`)
	c := New(data, Config{})
	_, err := c.Next()
	require.NoError(t, err)
	s, err := c.String()
	require.NoError(t, err)
	clear(data)
	assert.Equal(t, "abc", s)
}

func TestCursor_Numbers(t *testing.T) {
	read := func(input string) *Cursor {
		c := New([]byte(input), Config{})
		_, err := c.Next()
		require.NoError(t, err, input)
		return c
	}

	v, err := read(`9007199254740991`).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740991), v)

	v, err = read(`-9223372036854775808`).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), v)

	u, err := read(`18446744073709551615`).Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), u)

	f, err := read(`-122.3`).Float64()
	require.NoError(t, err)
	assert.Equal(t, -122.3, f)

	f, err = read(`1.7976931348623157e308`).Float64()
	require.NoError(t, err)
	assert.Equal(t, math.MaxFloat64, f)

	f32, err := read(`3.25`).Float32()
	require.NoError(t, err)
	assert.Equal(t, float32(3.25), f32)

	i, err := read(`0`).Int()
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	unexpected := []struct {
		name  string
		input string
		read  func(c *Cursor) error
	}{
		{"fraction into int", `1.5`, func(c *Cursor) error { _, err := c.Int(); return err }},
		{"exponent into int64", `1e3`, func(c *Cursor) error { _, err := c.Int64(); return err }},
		{"int32 overflow", `2147483648`, func(c *Cursor) error { _, err := c.Int32(); return err }},
		{"int64 overflow", `9223372036854775808`, func(c *Cursor) error { _, err := c.Int64(); return err }},
		{"negative uint", `-1`, func(c *Cursor) error { _, err := c.Uint64(); return err }},
		{"float overflow", `1e400`, func(c *Cursor) error { _, err := c.Float64(); return err }},
		{"string into int", `"1"`, func(c *Cursor) error { _, err := c.Int(); return err }},
		{"number into string", `1`, func(c *Cursor) error { _, err := c.String(); return err }},
		{"number into bool", `0`, func(c *Cursor) error { _, err := c.Bool(); return err }},
		{"bad time", `"yesterday"`, func(c *Cursor) error { _, err := c.Time(); return err }},
		{"bad base64", `"@@"`, func(c *Cursor) error { _, err := c.Base64(); return err }},
	}
	for _, tc := range unexpected {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.read(read(tc.input))
			assert.ErrorIs(t, err, jsonerr.ErrUnexpectedToken)
		})
	}
}

func TestCursor_TimeAndBase64(t *testing.T) {
	c := New([]byte(`["2024-02-29T13:45:10.123456789Z","aGVsbG8=",null]`), Config{})
	_, err := c.Next()
	require.NoError(t, err)

	ts, err := c.ReadTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 13, 45, 10, 123456789, time.UTC), ts)

	b, err := c.ReadBase64()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), b)

	b, err = c.ReadBase64()
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestCursor_NullPolicy(t *testing.T) {
	strict := New([]byte(`null`), Config{})
	_, err := strict.Next()
	require.NoError(t, err)
	_, err = strict.Int()
	assert.ErrorIs(t, err, jsonerr.ErrUnexpectedToken)
	assert.Contains(t, err.Error(), "null is not allowed for int")

	compat := New([]byte(`null`), Config{NullPolicy: CompatNulls})
	_, err = compat.Next()
	require.NoError(t, err)
	v, err := compat.Int()
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	s, err := compat.String()
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestCursor_Skip(t *testing.T) {
	c := New([]byte(`{"skip":{"a":[1,{"b":[]}],"c":"}"},"keep":7}`), Config{})
	_, err := c.Next()
	require.NoError(t, err)

	kind, err := c.Next()
	require.NoError(t, err)
	require.Equal(t, PropertyName, kind)
	assert.Equal(t, "skip", c.Name())
	require.NoError(t, c.Skip())
	assert.Equal(t, EndObject, c.Kind())
	assert.Equal(t, 1, c.Depth())

	kind, err = c.Next()
	require.NoError(t, err)
	require.Equal(t, PropertyName, kind)
	assert.Equal(t, "keep", c.Name())
	v, err := c.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	kind, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, EndObject, kind)
	require.NoError(t, c.End())
}

func TestCursor_SkipScalarProperty(t *testing.T) {
	c := New([]byte(`{"a":"x","b":true}`), Config{})
	_, _ = c.Next()
	_, _ = c.Next()
	require.NoError(t, c.Skip())
	assert.Equal(t, String, c.Kind())
	kind, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, PropertyName, kind)
	assert.Equal(t, "b", c.Name())
}

func TestCursor_EscapedName(t *testing.T) {
	c := New([]byte(`{"lat":1,"😀":2}`), Config{})
	_, _ = c.Next()
	_, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, "lat", c.Name())
	require.NoError(t, c.Skip())
	_, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, "😀", c.Name())
}

func TestCursor_FieldPolicies(t *testing.T) {
	names := []string{"lat", "lon"}

	c := New([]byte(`{"lat":1,"lat":2,"other":3}`), Config{DuplicateKeyPolicy: ErrorOnDuplicate, UnknownFieldPolicy: ErrorOnUnknown})
	_, _ = c.Next()
	_, _ = c.Next()
	var seen uint64
	require.NoError(t, c.Mark(&seen, 0))
	_, _ = c.ReadFloat64()
	_, _ = c.Next()
	err := c.Mark(&seen, 0)
	assert.ErrorIs(t, err, jsonerr.ErrUnexpectedToken)
	assert.Contains(t, err.Error(), "duplicate field")
	_, _ = c.ReadFloat64()
	_, _ = c.Next()
	err = c.SkipUnknown()
	assert.ErrorIs(t, err, jsonerr.ErrUnexpectedToken)
	assert.Contains(t, err.Error(), `"other"`)
	var fieldErr *jsonerr.Error
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "other", fieldErr.Field)

	err = c.Required(seen, 0b11, names)
	assert.ErrorIs(t, err, jsonerr.ErrMissingRequiredField)
	assert.Contains(t, err.Error(), `"lon"`)

	escaped := New([]byte(`{"l\u0061x":1}`), Config{UnknownFieldPolicy: ErrorOnUnknown})
	_, _ = escaped.Next()
	_, _ = escaped.Next()
	require.ErrorAs(t, escaped.SkipUnknown(), &fieldErr)
	assert.Equal(t, "lax", fieldErr.Field)

	lenient := New(nil, Config{MissingFieldPolicy: DefaultMissing})
	assert.NoError(t, lenient.Required(0, 0b11, names))
}

func TestCursor_ExpectAndEnd(t *testing.T) {
	c := New([]byte(`[1]`), Config{})
	_, _ = c.Next()
	err := c.Expect(BeginObject)
	assert.ErrorIs(t, err, jsonerr.ErrUnexpectedToken)
	assert.Contains(t, err.Error(), "expected BeginObject, found BeginArray")
	assert.ErrorIs(t, c.End(), jsonerr.ErrUnexpectedToken)
}

func TestCursor_Reset(t *testing.T) {
	c := New([]byte(`{"a":`), Config{})
	_, _ = c.Next()
	_, _ = c.Next()
	_, err := c.Next()
	require.Error(t, err)

	c.Reset([]byte(`true`))
	b, err := c.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)
	require.NoError(t, c.End())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "BeginObject", BeginObject.String())
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
