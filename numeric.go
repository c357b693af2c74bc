package xtd

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number constrains to the built-in numeric types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of all values in xs, or zero for an empty slice.
func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Accumulate folds op over xs from left to right, starting from init.
func Accumulate[T, A any](xs []T, init A, op func(A, T) A) A {
	acc := init
	for _, x := range xs {
		acc = op(acc, x)
	}
	return acc
}

// AccumulateSeq folds op over the values of seq in yield order, starting
// from init.
func AccumulateSeq[T, A any](seq iter.Seq[T], init A, op func(A, T) A) A {
	acc := init
	for x := range seq {
		acc = op(acc, x)
	}
	return acc
}
