package xtd

import (
	"errors"
	"iter"
)

// ErrOutOfRange is returned by checked element and subrange accessors on
// Span and View when a position lies outside the viewed range.
var ErrOutOfRange = errors.New("xtd: position out of range")

// SpanOf creates a Span viewing the given slice.
// The Span borrows the slice's backing array; it does not copy.
func SpanOf[T any](s []T) Span[T] {
	return Span[T]{items: s}
}

// Span is a non-owning, read-only view over a contiguous sequence of T.
// It stores only a reference to the viewed elements, so copying a Span is
// cheap and never copies elements. The zero value is an empty Span.
//
// A Span never outlives the validity of its backing slice; keeping the
// backing data alive is the caller's responsibility, exactly as with a plain
// subslice.
type Span[T any] struct {
	items []T
}

// Len returns the number of viewed elements.
func (s Span[T]) Len() int {
	return len(s.items)
}

// Empty returns true if the Span views no elements.
func (s Span[T]) Empty() bool {
	return len(s.items) == 0
}

// At returns the element at position i, or ErrOutOfRange if i does not lie
// within the view.
func (s Span[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, ErrOutOfRange
	}
	return s.items[i], nil
}

// Front returns the first viewed element, or None if the Span is empty.
func (s Span[T]) Front() Option[T] {
	if len(s.items) == 0 {
		return None[T]()
	}
	return Some(s.items[0])
}

// Back returns the last viewed element, or None if the Span is empty.
func (s Span[T]) Back() Option[T] {
	if len(s.items) == 0 {
		return None[T]()
	}
	return Some(s.items[len(s.items)-1])
}

// Sub returns the subview [i, j), or ErrOutOfRange if the bounds do not
// satisfy 0 <= i <= j <= Len().
func (s Span[T]) Sub(i, j int) (Span[T], error) {
	if i < 0 || j < i || j > len(s.items) {
		return Span[T]{}, ErrOutOfRange
	}
	return Span[T]{items: s.items[i:j]}, nil
}

// RemovePrefix returns a Span with the first n elements dropped.
// n is clamped to the view's length.
func (s Span[T]) RemovePrefix(n int) Span[T] {
	if n < 0 {
		n = 0
	}
	if n > len(s.items) {
		n = len(s.items)
	}
	return Span[T]{items: s.items[n:]}
}

// RemoveSuffix returns a Span with the last n elements dropped.
// n is clamped to the view's length.
func (s Span[T]) RemoveSuffix(n int) Span[T] {
	if n < 0 {
		n = 0
	}
	if n > len(s.items) {
		n = len(s.items)
	}
	return Span[T]{items: s.items[:len(s.items)-n]}
}

// Copy copies viewed elements into dst, returning the number copied
// (the smaller of the two lengths).
func (s Span[T]) Copy(dst []T) int {
	return copy(dst, s.items)
}

// Items returns an iterator over the viewed elements in order.
func (s Span[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Raw returns the viewed slice itself. Mutating its elements mutates the
// backing array; use with the same care as any shared slice.
func (s Span[T]) Raw() []T {
	return s.items
}
