package jsarray

import (
	"strings"

	"github.com/hasbyte1/go-js-utils/callback"
)

// ─────────────────────────────────────────────────────────────────────────────
// Predicate search
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element for which fn returns true, scanning in
// ascending order. Returns the zero value and false when no element
// matches.
func Find[T any, F callback.Predicate[T, *Array[T]]](a *Array[T], fn F) (T, bool) {
	var zero T
	pred := callback.Caller[T, bool, *Array[T]](fn)
	for i, val := range a.v.Raw() {
		if pred(val, i, a) {
			return val, true
		}
	}
	return zero, false
}

// FindIndex returns the index of the first element for which fn returns
// true, or -1.
func FindIndex[T any, F callback.Predicate[T, *Array[T]]](a *Array[T], fn F) int {
	pred := callback.Caller[T, bool, *Array[T]](fn)
	for i, val := range a.v.Raw() {
		if pred(val, i, a) {
			return i
		}
	}
	return -1
}

// FindLast returns the last element for which fn returns true, scanning in
// descending order. Returns the zero value and false when no element
// matches.
func FindLast[T any, F callback.Predicate[T, *Array[T]]](a *Array[T], fn F) (T, bool) {
	var zero T
	pred := callback.Caller[T, bool, *Array[T]](fn)
	items := a.v.Raw()
	for i := len(items) - 1; i >= 0; i-- {
		if pred(items[i], i, a) {
			return items[i], true
		}
	}
	return zero, false
}

// FindLastIndex returns the index of the last element for which fn returns
// true, scanning in descending order, or -1.
func FindLastIndex[T any, F callback.Predicate[T, *Array[T]]](a *Array[T], fn F) int {
	pred := callback.Caller[T, bool, *Array[T]](fn)
	items := a.v.Raw()
	for i := len(items) - 1; i >= 0; i-- {
		if pred(items[i], i, a) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Value search (comparable T)
// ─────────────────────────────────────────────────────────────────────────────

// Includes reports whether the array contains value.
func Includes[T comparable](a *Array[T], value T) bool {
	return IndexOf(a, value) >= 0
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](a *Array[T], value T) int {
	for i, val := range a.v.Raw() {
		if val == value {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of value, or -1.
func LastIndexOf[T comparable](a *Array[T], value T) int {
	items := a.v.Raw()
	for i := len(items) - 1; i >= 0; i-- {
		if items[i] == value {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Joining
// ─────────────────────────────────────────────────────────────────────────────

// Join concatenates all elements into a string separated by sep,
// converting each element with fn.
func Join[T any](a *Array[T], sep string, fn func(T) string) string {
	parts := make([]string, a.v.Len())
	for i, val := range a.v.Raw() {
		parts[i] = fn(val)
	}
	return strings.Join(parts, sep)
}
