// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for DenseNetwork.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "fmt"

// DefaultCapacity is the initial matrix side length of a DenseNetwork.
const DefaultCapacity = 8

// Options holds DenseNetwork construction settings.
type Options struct {
	capacity int
}

// Option mutates Options during construction.
type Option func(*Options)

// WithCapacity sets the initial capacity, rounded up to the next power of two.
// Panics if n <= 0.
func WithCapacity(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("matrix.WithCapacity: capacity must be > 0, got %d", n))
	}

	return func(o *Options) { o.capacity = nextPowerOfTwo(n) }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// nextPowerOfTwo returns the smallest power of two >= n (n > 0).
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
