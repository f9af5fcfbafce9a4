// SPDX-License-Identifier: MIT

package vmap

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Map and Set.
var (
	// ErrKeyNotFound indicates that Get was called with a key that is not present.
	ErrKeyNotFound = errors.New("vmap: key not found")

	// ErrOutOfMemory indicates that inserting a new key would exceed the
	// configured entry limit (see WithMaxEntries).
	ErrOutOfMemory = errors.New("vmap: entry limit reached")
)

const (
	// MinCapacity is the smallest bucket-array length a Map will use.
	MinCapacity = 16

	// MinLoadFactor is the smallest load factor a Map will use.
	MinLoadFactor = 0.2

	// DefaultCapacity is the initial bucket-array length when none is given.
	DefaultCapacity = MinCapacity

	// DefaultLoadFactor is used when no load factor is given.
	DefaultLoadFactor = 0.75
)

// none marks an absent arena link.
const none = -1

// Options holds the construction parameters of a Map or Set.
type Options struct {
	// Capacity is the requested initial bucket count; it is floored at
	// MinCapacity and rounded up to the next power of two.
	Capacity int

	// LoadFactor is the maximum average chain length before the bucket
	// array doubles; floored at MinLoadFactor.
	LoadFactor float64

	// MaxEntries bounds the number of live entries; 0 means unbounded.
	MaxEntries int
}

// Option configures a Map or Set.
type Option func(*Options)

// WithCapacity sets the initial bucket count. Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("vmap: WithCapacity(%d): capacity must be non-negative", n))
	}

	return func(o *Options) { o.Capacity = n }
}

// WithLoadFactor sets the load factor. Panics if f is not a positive finite number.
func WithLoadFactor(f float64) Option {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		panic(fmt.Sprintf("vmap: WithLoadFactor(%g): load factor must be positive and finite", f))
	}

	return func(o *Options) { o.LoadFactor = f }
}

// WithMaxEntries bounds the number of live entries. Zero disables the bound.
// Panics if n < 0.
func WithMaxEntries(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("vmap: WithMaxEntries(%d): limit must be non-negative", n))
	}

	return func(o *Options) { o.MaxEntries = n }
}

// DefaultOptions returns the options used when no Option is supplied.
func DefaultOptions() Options {
	return Options{
		Capacity:   DefaultCapacity,
		LoadFactor: DefaultLoadFactor,
		MaxEntries: 0,
	}
}

// resolve applies opts over the defaults and enforces the floors.
func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Capacity = fixCapacity(cfg.Capacity)
	if cfg.LoadFactor < MinLoadFactor {
		cfg.LoadFactor = MinLoadFactor
	}

	return cfg
}

// fixCapacity floors n at MinCapacity and rounds it up to a power of two.
func fixCapacity(n int) int {
	if n < MinCapacity {
		n = MinCapacity
	}
	c := 1
	for c < n {
		c <<= 1
	}

	return c
}
