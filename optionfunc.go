package xtd

import (
	"hash/maphash"

	"golang.org/x/exp/constraints"
)

// Equal reports whether two Options are equal.
// Two None Options are equal; a None and a Some are not; two Some Options
// compare their values with ==.
func Equal[T comparable](x, y Option[T]) bool {
	if x.ok != y.ok {
		return false
	}
	return !x.ok || x.item == y.item
}

// EqualValue reports whether o is Some and its value equals v.
// A None Option never equals any value.
func EqualValue[T comparable](o Option[T], v T) bool {
	return o.ok && o.item == v
}

// Less reports whether x orders before y.
// None orders before any Some; two None Options are not less than each
// other; two Some Options compare their values with <.
func Less[T constraints.Ordered](x, y Option[T]) bool {
	if !y.ok {
		return false
	}
	return !x.ok || x.item < y.item
}

// LessValue reports whether o orders before the value v.
// A None Option orders before every value.
func LessValue[T constraints.Ordered](o Option[T], v T) bool {
	return !o.ok || o.item < v
}

// Compare three-way compares two Options consistently with Equal and Less:
// -1 if x orders before y, +1 if after, 0 if equal.
func Compare[T constraints.Ordered](x, y Option[T]) int {
	switch {
	case Less(x, y):
		return -1
	case Less(y, x):
		return 1
	default:
		return 0
	}
}

// Map applies f to the contained value if the Option is Some, returning the
// result wrapped in Some. If the Option is None, f is not called and None is
// returned.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.item))
}

// FlatMap applies f to the contained value if the Option is Some, returning
// f's result directly. If the Option is None, f is not called and None is
// returned.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.item)
}

// Hash maps an Option to a 64-bit hash. A Some Option hashes exactly as its
// bare value does under the same seed, so an Option can share a hash table
// with plain values. Every None Option of a given specialization hashes to
// the canonical value 0; that 0 may collide with some particular value's
// hash, which is accepted.
func Hash[T comparable](seed maphash.Seed, o Option[T]) uint64 {
	if !o.ok {
		return 0
	}
	return maphash.Comparable(seed, o.item)
}
