package aotjson

import (
	"github.com/viant/aotjson/cursor"
	"github.com/viant/aotjson/pool"
	"github.com/viant/aotjson/sink"
)

// Mode controls compatibility vs strict behavior.
type Mode int

const (
	ModeCompat Mode = iota
	ModeStrict
)

// UnknownFieldPolicy controls unknown key handling.
type UnknownFieldPolicy int

const (
	IgnoreUnknown UnknownFieldPolicy = iota
	ErrorOnUnknown
)

// NullPolicy controls null assignment to non-nullable values.
type NullPolicy int

const (
	StrictNulls NullPolicy = iota
	CompatNulls
)

// MissingFieldPolicy controls handling of absent required fields.
type MissingFieldPolicy int

const (
	RequireFields MissingFieldPolicy = iota
	DefaultMissing
)

// DuplicateKeyPolicy controls duplicate object key behavior.
type DuplicateKeyPolicy int

const (
	LastWins DuplicateKeyPolicy = iota
	ErrorOnDuplicate
)

// NilSlicePolicy controls marshal output for nil slices and maps.
type NilSlicePolicy int

const (
	NilSliceAsNull NilSlicePolicy = iota
	NilSliceAsEmptyArray
)

type Option interface{ apply(*Options) }

// Options defines runtime behavior.
type Options struct {
	Mode               Mode
	UnknownFieldPolicy UnknownFieldPolicy
	NullPolicy         NullPolicy
	MissingFieldPolicy MissingFieldPolicy
	DuplicateKeyPolicy DuplicateKeyPolicy
	NilSlicePolicy     NilSlicePolicy
	MaxDepth           int
	Pool               pool.Pool
	BufferSize         int
	MaxPooledSize      int
	Registry           *Registry

	setUnknownFieldPolicy bool
	setDuplicateKeyPolicy bool
}

func (o *Options) cursorConfig() cursor.Config {
	cfg := cursor.Config{MaxDepth: o.MaxDepth}
	if o.UnknownFieldPolicy == ErrorOnUnknown {
		cfg.UnknownFieldPolicy = cursor.ErrorOnUnknown
	}
	if o.NullPolicy == CompatNulls {
		cfg.NullPolicy = cursor.CompatNulls
	}
	if o.MissingFieldPolicy == DefaultMissing {
		cfg.MissingFieldPolicy = cursor.DefaultMissing
	}
	if o.DuplicateKeyPolicy == ErrorOnDuplicate {
		cfg.DuplicateKeyPolicy = cursor.ErrorOnDuplicate
	}
	return cfg
}

func (o *Options) sinkConfig() sink.Config {
	return sink.Config{
		Pool:            o.Pool,
		InitialSize:     o.BufferSize,
		MaxPooledSize:   o.MaxPooledSize,
		NilSliceAsEmpty: o.NilSlicePolicy == NilSliceAsEmptyArray,
	}
}
