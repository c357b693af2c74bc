package xtd

import "golang.org/x/exp/constraints"

// Min returns the smaller of a and b. If the two are equal, a is returned.
func Min[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b. If the two are equal, a is returned.
func Max[T constraints.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// MinOf returns the smallest of the given values, or None when called with
// none.
func MinOf[T constraints.Ordered](vals ...T) Option[T] {
	if len(vals) == 0 {
		return None[T]()
	}
	min := vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
	}
	return Some(min)
}

// MaxOf returns the largest of the given values, or None when called with
// none.
func MaxOf[T constraints.Ordered](vals ...T) Option[T] {
	if len(vals) == 0 {
		return None[T]()
	}
	max := vals[0]
	for _, v := range vals[1:] {
		if v > max {
			max = v
		}
	}
	return Some(max)
}
