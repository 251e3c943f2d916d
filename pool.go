package delta2html

import (
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one converter is available.
	MinPoolSize = 1

	// MaxPoolSize caps converters; conversion is CPU-bound, so more than
	// this rarely helps.
	MaxPoolSize = 16
)

// ConverterPool manages Converter instances for parallel batch conversion.
// Converters are created lazily on first acquire. Each converter owns its
// renderer clone, so pooled conversions never share mutable state.
type ConverterPool struct {
	size       int
	opts       []Option
	converters []*Converter
	sem        chan *Converter
	mu         sync.Mutex
	created    int
}

// NewConverterPool creates a pool with capacity for n Converter instances,
// each configured with the given options.
func NewConverterPool(n int, opts ...Option) *ConverterPool {
	if n < 1 {
		n = 1
	}
	return &ConverterPool{
		size:       n,
		opts:       opts,
		converters: make([]*Converter, 0, n),
		sem:        make(chan *Converter, n),
	}
}

// Acquire gets a converter from the pool, creating one if capacity allows.
// Blocks if all converters are in use.
func (p *ConverterPool) Acquire() *Converter {
	// Try to get an existing converter (non-blocking)
	select {
	case c := <-p.sem:
		return c
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		c := NewConverter(p.opts...)

		p.mu.Lock()
		p.converters = append(p.converters, c)
		p.mu.Unlock()

		return c
	}
	p.mu.Unlock()

	// All converters created, wait for one to be released
	return <-p.sem
}

// Release returns a converter to the pool.
func (p *ConverterPool) Release(c *Converter) {
	p.sem <- c
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the pool size to use.
// Priority: explicit workers > GOMAXPROCS (bounded by Min/MaxPoolSize).
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0)
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
