// SPDX-License-Identifier: MIT

package dheap

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
var (
	// ErrDuplicateVertex is returned by Insert for a key already in the heap.
	ErrDuplicateVertex = errors.New("dheap: key already present")

	// ErrEmpty is returned by ExtractMin on an empty heap.
	ErrEmpty = errors.New("dheap: heap is empty")

	// ErrOutOfMemory is returned when the slot array or the position index
	// would exceed the configured entry limit.
	ErrOutOfMemory = errors.New("dheap: entry limit reached")
)

const (
	// DefaultDegree is the branching factor used when none is given.
	DefaultDegree = 4
	// MinDegree is the smallest legal branching factor.
	MinDegree = 2
	// MinCapacity is the floor of the initial slot-array length.
	MinCapacity = 4
	// DefaultCapacity is the initial slot-array length when none is given.
	DefaultCapacity = 16
)

// Options configures a Heap.
type Options struct {
	Degree     int     // branching factor, >= MinDegree
	Capacity   int     // initial slot-array length, floored at MinCapacity
	LoadFactor float64 // load factor of the position index; 0 uses the vmap default
	MaxEntries int     // 0 = unbounded
}

// Option mutates Options.
type Option func(*Options)

// WithDegree sets the branching factor. Panics if d < MinDegree.
func WithDegree(d int) Option {
	if d < MinDegree {
		panic(fmt.Sprintf("dheap: WithDegree(%d): degree must be >= %d", d, MinDegree))
	}

	return func(o *Options) { o.Degree = d }
}

// WithCapacity sets the initial slot-array length. Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("dheap: WithCapacity(%d): capacity must be non-negative", n))
	}

	return func(o *Options) { o.Capacity = n }
}

// WithLoadFactor sets the load factor of the position index.
// Panics if f is not a positive finite number.
func WithLoadFactor(f float64) Option {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		panic(fmt.Sprintf("dheap: WithLoadFactor(%g): load factor must be positive and finite", f))
	}

	return func(o *Options) { o.LoadFactor = f }
}

// WithMaxEntries bounds the number of elements. Zero disables the bound.
// Panics if n < 0.
func WithMaxEntries(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("dheap: WithMaxEntries(%d): limit must be non-negative", n))
	}

	return func(o *Options) { o.MaxEntries = n }
}

// DefaultOptions returns the options used when no Option is supplied.
func DefaultOptions() Options {
	return Options{
		Degree:   DefaultDegree,
		Capacity: DefaultCapacity,
	}
}
