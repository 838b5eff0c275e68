// Package pool provides the process-wide byte buffer pool used by the sink and
// by string decoding. Buffers are grouped in power-of-two size classes, each
// backed by a sync.Pool, so rent and return are safe from any goroutine.
package pool

import (
	"math/bits"
	"sync"
)

const (
	// DefaultMaxSize is the largest buffer the shared pool keeps.
	DefaultMaxSize = 1 << 20
	minClassShift  = 8
)

// Pool rents and returns byte buffers. Rent may return a buffer longer than
// requested; callers must treat len(buf) as the usable capacity.
type Pool interface {
	Rent(size int) []byte
	Return(buf []byte)
}

// Shared is a size-classed pool. Buffers larger than MaxSize bypass it.
type Shared struct {
	maxSize int
	classes []sync.Pool
}

// Default is the shared pool used when no pool is configured.
var Default = New(DefaultMaxSize)

// New creates a pool keeping buffers up to maxSize, rounded up to a size class.
func New(maxSize int) *Shared {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	n := classIndex(maxSize) + 1
	return &Shared{maxSize: classSize(n - 1), classes: make([]sync.Pool, n)}
}

// MaxSize returns the largest pooled buffer size.
func (p *Shared) MaxSize() int { return p.maxSize }

// Rent returns a buffer of at least size bytes.
func (p *Shared) Rent(size int) []byte {
	if size <= 0 {
		size = 1
	}
	if size > p.maxSize {
		return make([]byte, size)
	}
	idx := classIndex(size)
	if v := p.classes[idx].Get(); v != nil {
		buf := *(v.(*[]byte))
		return buf[:cap(buf)]
	}
	return make([]byte, classSize(idx))
}

// Return puts buf back into its size class. Buffers whose capacity is not a
// class size, or exceeds MaxSize, are dropped.
func (p *Shared) Return(buf []byte) {
	c := cap(buf)
	if c == 0 || c > p.maxSize {
		return
	}
	idx := classIndex(c)
	if classSize(idx) != c {
		return
	}
	buf = buf[:c]
	p.classes[idx].Put(&buf)
}

func classIndex(size int) int {
	if size <= 1<<minClassShift {
		return 0
	}
	return bits.Len(uint(size-1)) - minClassShift
}

func classSize(idx int) int {
	return 1 << (idx + minClassShift)
}
