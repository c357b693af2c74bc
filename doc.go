// Package xtd is a collection of small, independent standard-library
// extensions: an optional-value container, non-owning string and slice
// views, a scoped-exit guard, alignment arithmetic, and a handful of
// generic algorithm helpers.
//
// Each component is self-contained and carries no shared state; the package
// can be adopted piecemeal. The center of gravity is [Option], a value type
// holding zero or one instances of T that makes the presence or absence of a
// value explicit instead of overloading pointers or zero values for that
// purpose.
package xtd
