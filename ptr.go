package xtd

// Ptr returns a pointer to a fresh copy of v. It is the counterpart of
// FromPtr for call sites that need an addressable value, such as struct
// literals with pointer fields.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the pointee and true, or the zero value and false for a nil
// pointer.
func Deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
