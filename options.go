package aotjson

import (
	"github.com/viant/aotjson/cursor"
	"github.com/viant/aotjson/pool"
	"github.com/viant/aotjson/sink"
)

type optionFn func(*Options)

func (o optionFn) apply(opts *Options) { o(opts) }

func WithMode(mode Mode) Option {
	return optionFn(func(o *Options) { o.Mode = mode })
}

func WithUnknownFieldPolicy(policy UnknownFieldPolicy) Option {
	return optionFn(func(o *Options) {
		o.UnknownFieldPolicy = policy
		o.setUnknownFieldPolicy = true
	})
}

func WithNullPolicy(policy NullPolicy) Option {
	return optionFn(func(o *Options) { o.NullPolicy = policy })
}

func WithMissingFieldPolicy(policy MissingFieldPolicy) Option {
	return optionFn(func(o *Options) { o.MissingFieldPolicy = policy })
}

func WithDuplicateKeyPolicy(policy DuplicateKeyPolicy) Option {
	return optionFn(func(o *Options) {
		o.DuplicateKeyPolicy = policy
		o.setDuplicateKeyPolicy = true
	})
}

func WithNilSlicePolicy(policy NilSlicePolicy) Option {
	return optionFn(func(o *Options) { o.NilSlicePolicy = policy })
}

// WithMaxDepth limits object and array nesting on decode.
func WithMaxDepth(depth int) Option {
	return optionFn(func(o *Options) { o.MaxDepth = depth })
}

// WithPool replaces the shared buffer pool.
func WithPool(p pool.Pool) Option {
	return optionFn(func(o *Options) { o.Pool = p })
}

// WithBufferSize sets the initial output buffer size.
func WithBufferSize(size int) Option {
	return optionFn(func(o *Options) { o.BufferSize = size })
}

// WithMaxPooledSize sets the largest buffer that is rented from and returned to the pool.
func WithMaxPooledSize(size int) Option {
	return optionFn(func(o *Options) { o.MaxPooledSize = size })
}

// WithRegistry resolves converters from r instead of the default registry.
func WithRegistry(r *Registry) Option {
	return optionFn(func(o *Options) { o.Registry = r })
}

func defaultOptions() Options {
	return Options{
		Mode:               ModeCompat,
		UnknownFieldPolicy: IgnoreUnknown,
		NullPolicy:         StrictNulls,
		MissingFieldPolicy: RequireFields,
		DuplicateKeyPolicy: LastWins,
		NilSlicePolicy:     NilSliceAsNull,
		MaxDepth:           cursor.DefaultMaxDepth,
		Pool:               pool.Default,
		BufferSize:         sink.DefaultInitialSize,
		MaxPooledSize:      sink.DefaultMaxPooledSize,
		Registry:           defaultRegistry,
	}
}

func resolveOptions(opts []Option) Options {
	result := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(&result)
	}
	if result.Mode == ModeStrict {
		if !result.setUnknownFieldPolicy {
			result.UnknownFieldPolicy = ErrorOnUnknown
		}
		if !result.setDuplicateKeyPolicy {
			result.DuplicateKeyPolicy = ErrorOnDuplicate
		}
	}
	if result.MaxDepth <= 0 {
		result.MaxDepth = cursor.DefaultMaxDepth
	}
	if result.Pool == nil {
		result.Pool = pool.Default
	}
	if result.BufferSize <= 0 {
		result.BufferSize = sink.DefaultInitialSize
	}
	if result.MaxPooledSize <= 0 {
		result.MaxPooledSize = sink.DefaultMaxPooledSize
	}
	if result.Registry == nil {
		result.Registry = defaultRegistry
	}
	return result
}
