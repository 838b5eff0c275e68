package aotjson

// Codec binds the converter of T to resolved options. The converter is
// looked up once when the codec is built; Marshal and Unmarshal on a codec
// call it directly.
type Codec[T any] struct {
	conv Converter[T]
	cfg  Options
}

// NewCodec looks up the converter for T in the configured registry.
func NewCodec[T any](opts ...Option) (*Codec[T], error) {
	cfg := resolveOptions(opts)
	conv, err := LookupIn[T](cfg.Registry)
	if err != nil {
		return nil, err
	}
	return &Codec[T]{conv: conv, cfg: cfg}, nil
}

// MustCodec is like NewCodec but panics when T has no converter. Converters
// register from init functions, so a package-level MustCodec works only for
// types of imported packages.
func MustCodec[T any](opts ...Option) *Codec[T] {
	c, err := NewCodec[T](opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// CodecWith binds conv without consulting a registry.
func CodecWith[T any](conv Converter[T], opts ...Option) *Codec[T] {
	return &Codec[T]{conv: conv, cfg: resolveOptions(opts)}
}

// Converter returns the bound converter.
func (c *Codec[T]) Converter() Converter[T] { return c.conv }

func (c *Codec[T]) Marshal(v *T) ([]byte, error) {
	return marshalTo(nil, v, c.conv, &c.cfg)
}

// MarshalTo appends the encoding of v to dst. On error dst is returned unchanged.
func (c *Codec[T]) MarshalTo(dst []byte, v *T) ([]byte, error) {
	return marshalTo(dst, v, c.conv, &c.cfg)
}

func (c *Codec[T]) Unmarshal(data []byte) (T, error) {
	return unmarshal(data, c.conv, &c.cfg)
}
