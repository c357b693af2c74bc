package xtd

import (
	"regexp"
	"strings"
)

// NotFound is returned by the View search methods when no occurrence exists.
const NotFound = -1

// ViewOf creates a View over the given string.
func ViewOf(s string) View {
	return View{s: s}
}

// ViewOfBytes creates a View over a copy of the given bytes.
// The copy keeps the View immutable regardless of later writes to b.
func ViewOfBytes(b []byte) View {
	return View{s: string(b)}
}

// View is a non-owning, immutable window into a string. Substring and
// prefix/suffix operations produce new Views sharing the same backing data;
// no View operation allocates or copies string contents.
//
// All positions are byte offsets. The search methods that take a set of
// characters treat the set as runes, matching the behavior of the strings
// package they delegate to.
type View struct {
	s string
}

// Len returns the length of the viewed string in bytes.
func (v View) Len() int {
	return len(v.s)
}

// Empty returns true if the View is zero-length.
func (v View) Empty() bool {
	return len(v.s) == 0
}

// At returns the byte at position i, or None if i is outside the view.
func (v View) At(i int) Option[byte] {
	if i < 0 || i >= len(v.s) {
		return None[byte]()
	}
	return Some(v.s[i])
}

// Front returns the first byte, or None if the View is empty.
func (v View) Front() Option[byte] {
	return v.At(0)
}

// Back returns the last byte, or None if the View is empty.
func (v View) Back() Option[byte] {
	return v.At(len(v.s) - 1)
}

// Substr returns the subview of at most n bytes starting at pos.
// pos beyond the end of the view yields ErrOutOfRange; n is clamped to the
// remaining length, and a negative n means "to the end".
func (v View) Substr(pos, n int) (View, error) {
	if pos < 0 || pos > len(v.s) {
		return View{}, ErrOutOfRange
	}
	rest := len(v.s) - pos
	if n < 0 || n > rest {
		n = rest
	}
	return View{s: v.s[pos : pos+n]}, nil
}

// RemovePrefix returns a View with the first n bytes dropped.
// n is clamped to the view's length.
func (v View) RemovePrefix(n int) View {
	if n < 0 {
		n = 0
	}
	if n > len(v.s) {
		n = len(v.s)
	}
	return View{s: v.s[n:]}
}

// RemoveSuffix returns a View with the last n bytes dropped.
// n is clamped to the view's length.
func (v View) RemoveSuffix(n int) View {
	if n < 0 {
		n = 0
	}
	if n > len(v.s) {
		n = len(v.s)
	}
	return View{s: v.s[:len(v.s)-n]}
}

// Compare lexicographically compares two Views, returning -1, 0 or +1.
func (v View) Compare(other View) int {
	return strings.Compare(v.s, other.s)
}

// Copy copies bytes starting at pos into dst, returning the number copied.
// pos beyond the end of the view yields ErrOutOfRange.
func (v View) Copy(dst []byte, pos int) (int, error) {
	if pos < 0 || pos > len(v.s) {
		return 0, ErrOutOfRange
	}
	return copy(dst, v.s[pos:]), nil
}

// Find returns the position of the first occurrence of sub, or NotFound.
func (v View) Find(sub string) int {
	return strings.Index(v.s, sub)
}

// RFind returns the position of the last occurrence of sub, or NotFound.
func (v View) RFind(sub string) int {
	return strings.LastIndex(v.s, sub)
}

// FindFirstOf returns the position of the first rune contained in chars,
// or NotFound.
func (v View) FindFirstOf(chars string) int {
	return strings.IndexAny(v.s, chars)
}

// FindLastOf returns the position of the last rune contained in chars,
// or NotFound.
func (v View) FindLastOf(chars string) int {
	return strings.LastIndexAny(v.s, chars)
}

// FindFirstNotOf returns the position of the first rune not contained in
// chars, or NotFound.
func (v View) FindFirstNotOf(chars string) int {
	return strings.IndexFunc(v.s, func(r rune) bool {
		return !strings.ContainsRune(chars, r)
	})
}

// FindLastNotOf returns the position of the last rune not contained in
// chars, or NotFound.
func (v View) FindLastNotOf(chars string) int {
	return strings.LastIndexFunc(v.s, func(r rune) bool {
		return !strings.ContainsRune(chars, r)
	})
}

// StartsWith reports whether the View begins with prefix.
func (v View) StartsWith(prefix string) bool {
	return strings.HasPrefix(v.s, prefix)
}

// EndsWith reports whether the View ends with suffix.
func (v View) EndsWith(suffix string) bool {
	return strings.HasSuffix(v.s, suffix)
}

// Match reports whether the View contains a match of re.
func (v View) Match(re *regexp.Regexp) bool {
	return re.MatchString(v.s)
}

// FindRegexp returns a View of the leftmost match of re, or None if there
// is no match. The returned View shares the same backing data.
func (v View) FindRegexp(re *regexp.Regexp) Option[View] {
	loc := re.FindStringIndex(v.s)
	if loc == nil {
		return None[View]()
	}
	return Some(View{s: v.s[loc[0]:loc[1]]})
}

// String returns the viewed string. Views are string-backed, so this never
// copies.
func (v View) String() string {
	return v.s
}
