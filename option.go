package xtd

import (
	"errors"
	"iter"
)

// ErrDisengaged is returned by Unwrap when the Option contains no value.
var ErrDisengaged = errors.New("xtd: option is disengaged")

// Some creates an Option that contains a value.
// It represents the presence of a value of type T.
func Some[T any](t T) Option[T] {
	return Option[T]{
		item: t,
		ok:   true,
	}
}

// None creates an empty Option that contains no value.
// It represents the absence of a value of type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// SomeBy creates an Option containing the result of calling build.
// It constructs the value in place at the call site, which is useful when
// the value is produced rather than already at hand. build is called exactly
// once.
func SomeBy[T any](build func() T) Option[T] {
	return Some(build())
}

// FromPtr converts a pointer into an Option.
// A nil pointer becomes None; anything else becomes Some of the pointee.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Option represents an optional value that may or may not be present.
// It is similar to Rust's Option type or other languages' Maybe type.
// An Option is either Some (containing a value) or None (empty).
// The Option type has minimal memory overhead, storing only the value and a
// boolean flag. The zero value is None.
//
// Option has plain value semantics: assigning or copying an Option copies
// the contained value (if any) together with its presence flag, so a None
// source always yields a None destination and a Some source always yields a
// Some destination holding an equal value.
type Option[T any] struct {
	item T
	ok   bool
}

// Some returns true if the Option contains a value, false otherwise.
func (o Option[T]) Some() bool {
	return o.ok
}

// None returns true if the Option is empty (contains no value), false otherwise.
func (o Option[T]) None() bool {
	return !o.ok
}

// Get returns the value and a boolean indicating whether the Option contains a value.
// If the Option is Some, returns (value, true). If None, returns (zero value, false).
func (o Option[T]) Get() (T, bool) {
	return o.item, o.ok
}

// GetOrDefault returns the contained value if the Option is Some,
// otherwise returns the provided default value.
// This is useful for providing fallback values when the Option is None.
// The Option itself is never modified, even when it is None.
func (o Option[T]) GetOrDefault(t T) T {
	if !o.ok {
		return t
	}
	return o.item
}

// GetOrElse returns the contained value if the Option is Some,
// otherwise returns the result of calling fallback.
// fallback is not called when the Option is Some.
func (o Option[T]) GetOrElse(fallback func() T) T {
	if !o.ok {
		return fallback()
	}
	return o.item
}

// Raw returns the raw value stored in the Option without checking if it's present.
// If the Option is None, this returns the zero value of type T.
// Use Get() or check Some()/None() if you need to distinguish between a zero value and None.
func (o Option[T]) Raw() T {
	return o.item
}

// Unwrap returns the contained value, or ErrDisengaged if the Option is None.
// Reading through Unwrap never changes the Option's state.
func (o Option[T]) Unwrap() (T, error) {
	if !o.ok {
		var zero T
		return zero, ErrDisengaged
	}
	return o.item, nil
}

// Must returns the contained value, panicking if the Option is None.
// Use Unwrap for a recoverable form of the same check.
func (o Option[T]) Must() T {
	if !o.ok {
		panic(ErrDisengaged)
	}
	return o.item
}

// Ptr returns a pointer to a copy of the contained value, or nil if the
// Option is None. Mutating the pointee does not affect the Option.
func (o Option[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.item
	return &v
}

// Iter returns an iterator yielding the contained value once if the Option
// is Some, and yielding nothing if it is None.
func (o Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.ok {
			yield(o.item)
		}
	}
}

// Set stores the given value in the Option, making it Some.
// Any previously contained value is replaced.
func (o *Option[T]) Set(t T) {
	o.item = t
	o.ok = true
}

// Reset disengages the Option, dropping any contained value.
// A None Option is left unchanged.
func (o *Option[T]) Reset() {
	*o = Option[T]{}
}

// Replace stores the given value and returns the Option's previous state.
func (o *Option[T]) Replace(t T) Option[T] {
	prev := *o
	o.Set(t)
	return prev
}

// Take removes and returns the current state of the Option, leaving it None.
func (o *Option[T]) Take() Option[T] {
	prev := *o
	*o = Option[T]{}
	return prev
}

// Emplace drops any contained value, then stores the result of calling build
// and returns it.
//
// The previous value is gone before build runs: if build panics, the Option
// is observably None afterwards rather than restored to its prior state.
// Holding on to the old value until build succeeds would make Emplace
// transactional, but at the cost of an extra copy on every call; the weaker
// contract is kept deliberately.
func (o *Option[T]) Emplace(build func() T) T {
	*o = Option[T]{}
	v := build()
	o.Set(v)
	return v
}

// Swap exchanges the contents and presence flags of the two Options.
func (o *Option[T]) Swap(other *Option[T]) {
	*o, *other = *other, *o
}
