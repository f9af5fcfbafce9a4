// SPDX-License-Identifier: MIT

package vlist

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrOutOfMemory is returned by a push that would exceed the WithMaxLen limit.
var ErrOutOfMemory = errors.New("vlist: length limit reached")

// MinCapacity is the initial ring-buffer length.
const MinCapacity = 16

// settings is shared by all instantiations so that options need no type parameter.
type settings struct {
	maxLen int
}

// Option configures a List of any element type.
type Option func(*settings)

// WithMaxLen bounds the list length. Zero disables the bound. Panics if n < 0.
func WithMaxLen(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("vlist: WithMaxLen(%d): limit must be non-negative", n))
	}

	return func(s *settings) { s.maxLen = n }
}

// List is a ring-buffer deque. The zero value is not usable; construct with New.
type List[T comparable] struct {
	buf    []T
	head   int // index of the first element
	length int
	maxLen int
}

// New returns an empty List.
func New[T comparable](opts ...Option) *List[T] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	return &List[T]{buf: make([]T, MinCapacity), maxLen: s.maxLen}
}

// Of returns a List holding items in order.
func Of[T comparable](items ...T) *List[T] {
	l := New[T]()
	for _, it := range items {
		_ = l.PushBack(it) // unbounded
	}

	return l
}

func (l *List[T]) mask() int { return len(l.buf) - 1 }

// reserve makes room for one more element.
func (l *List[T]) reserve() error {
	if l.maxLen > 0 && l.length >= l.maxLen {
		return ErrOutOfMemory
	}
	if l.length < len(l.buf) {
		return nil
	}
	grown := make([]T, len(l.buf)*2)
	for i := 0; i < l.length; i++ {
		grown[i] = l.buf[(l.head+i)&l.mask()]
	}
	l.buf = grown
	l.head = 0

	return nil
}

// PushFront inserts v before the first element.
func (l *List[T]) PushFront(v T) error {
	if err := l.reserve(); err != nil {
		return err
	}
	l.head = (l.head - 1) & l.mask()
	l.buf[l.head] = v
	l.length++

	return nil
}

// PushBack appends v after the last element.
func (l *List[T]) PushBack(v T) error {
	if err := l.reserve(); err != nil {
		return err
	}
	l.buf[(l.head+l.length)&l.mask()] = v
	l.length++

	return nil
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (T, bool) {
	var zero T
	if l.Len() == 0 {
		return zero, false
	}
	v := l.buf[l.head]
	l.buf[l.head] = zero
	l.head = (l.head + 1) & l.mask()
	l.length--

	return v, true
}

// Len returns the number of elements. A nil List has length 0.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	return l.length
}

// At returns the i-th element. Panics if i is out of range.
func (l *List[T]) At(i int) T {
	if i < 0 || i >= l.length {
		panic(fmt.Sprintf("vlist: index %d out of range [0,%d)", i, l.length))
	}

	return l.buf[(l.head+i)&l.mask()]
}

// Front returns the first element.
func (l *List[T]) Front() (T, bool) {
	if l.Len() == 0 {
		var zero T
		return zero, false
	}

	return l.buf[l.head], true
}

// Back returns the last element.
func (l *List[T]) Back() (T, bool) {
	if l.Len() == 0 {
		var zero T
		return zero, false
	}

	return l.buf[(l.head+l.length-1)&l.mask()], true
}

// Slice returns the elements in order as a new slice.
func (l *List[T]) Slice() []T {
	out := make([]T, l.Len())
	for i := range out {
		out[i] = l.buf[(l.head+i)&l.mask()]
	}

	return out
}

// All yields (position, element) pairs from front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.Len(); i++ {
			if !yield(i, l.buf[(l.head+i)&l.mask()]) {
				return
			}
		}
	}
}

// Equal reports whether l and other hold the same elements in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	if l.Len() != other.Len() {
		return false
	}
	for i := 0; i < l.Len(); i++ {
		if l.At(i) != other.At(i) {
			return false
		}
	}

	return true
}

// Clear removes all elements, keeping capacity.
func (l *List[T]) Clear() {
	clear(l.buf)
	l.head = 0
	l.length = 0
}

// String renders the list as "[a b c]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')

	return sb.String()
}
