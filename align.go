package xtd

import "golang.org/x/exp/constraints"

// AlignUp rounds v up to the next multiple of align.
// align must be a power of two; anything else is a programmer error and
// panics.
func AlignUp[T constraints.Unsigned](v, align T) T {
	checkAlignment(align)
	return (v + align - 1) &^ (align - 1)
}

// AlignDown rounds v down to the previous multiple of align.
// align must be a power of two; anything else is a programmer error and
// panics.
func AlignDown[T constraints.Unsigned](v, align T) T {
	checkAlignment(align)
	return v &^ (align - 1)
}

// IsAligned reports whether v is a multiple of align.
// align must be a power of two; anything else is a programmer error and
// panics.
func IsAligned[T constraints.Unsigned](v, align T) bool {
	checkAlignment(align)
	return v&(align-1) == 0
}

func checkAlignment[T constraints.Unsigned](align T) {
	if align == 0 || align&(align-1) != 0 {
		panic("xtd: alignment must be a power of two")
	}
}
