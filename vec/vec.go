package vec

import (
	"sort"

	"github.com/hasbyte1/go-js-utils/alloc"
)

// Vector is a growable, contiguous sequence of T. It owns its backing
// slice exclusively and carries the [alloc.Strategy] that sizes it; every
// reallocation consults that strategy, never a default.
//
// Vector provides storage only: length, random access, append, and an
// in-place reordering primitive. It has no internal locking; concurrent
// mutation requires external synchronization by the caller.
type Vector[T any] struct {
	items []T
	strat alloc.Strategy
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Vector holding copies of items.
func New[T any](s alloc.Strategy, items ...T) *Vector[T] {
	return From(s, items)
}

// From creates a Vector holding a copy of the given slice.
func From[T any](s alloc.Strategy, items []T) *Vector[T] {
	dst := alloc.Make[T](s, len(items))
	copy(dst, items)
	return &Vector[T]{items: dst, strat: s}
}

// Sized creates a Vector of n zero values.
func Sized[T any](s alloc.Strategy, n int) *Vector[T] {
	return &Vector[T]{items: alloc.Make[T](s, n), strat: s}
}

// Wrap creates a Vector that adopts the given slice without copying.
// The caller hands over ownership: the slice must not be used again.
func Wrap[T any](s alloc.Strategy, items []T) *Vector[T] {
	return &Vector[T]{items: items, strat: s}
}

// Clone returns an independently-owned copy of v, same strategy.
func (v *Vector[T]) Clone() *Vector[T] {
	return From(v.strat, v.items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Storage access
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.items) }

// Cap returns the current backing capacity.
func (v *Vector[T]) Cap() int { return cap(v.items) }

// Strategy returns the allocation strategy v was built with.
func (v *Vector[T]) Strategy() alloc.Strategy { return v.strat }

// At returns the element at index i. Indexing outside [0, Len()) panics
// exactly as indexing the backing slice would.
func (v *Vector[T]) At(i int) T { return v.items[i] }

// Set stores val at index i. Indexing outside [0, Len()) panics exactly as
// indexing the backing slice would.
func (v *Vector[T]) Set(i int, val T) { v.items[i] = val }

// All returns a copy of the elements as a plain slice.
func (v *Vector[T]) All() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// Raw returns the backing slice without copying. Mutations through the
// returned slice are visible in v; callers that need isolation use [All].
func (v *Vector[T]) Raw() []T { return v.items }

// ─────────────────────────────────────────────────────────────────────────────
// Growth
// ─────────────────────────────────────────────────────────────────────────────

// Push appends items, growing the backing slice per the strategy when
// capacity is exhausted.
func (v *Vector[T]) Push(items ...T) {
	need := len(v.items) + len(items)
	if need > cap(v.items) {
		grown := make([]T, len(v.items), v.strat.Grow(cap(v.items), need))
		copy(grown, v.items)
		v.items = grown
	}
	v.items = append(v.items, items...)
}

// Truncate shortens the vector to n elements. n must be in [0, Len()].
func (v *Vector[T]) Truncate(n int) { v.items = v.items[:n] }

// ─────────────────────────────────────────────────────────────────────────────
// Reordering
// ─────────────────────────────────────────────────────────────────────────────

// Sort reorders the whole vector in place so that less-ordered elements
// come first. less(a, b) reports whether a must precede b. The sort is not
// guaranteed stable.
func (v *Vector[T]) Sort(less func(a, b T) bool) {
	v.SortRange(0, len(v.items), less)
}

// SortRange reorders elements in [i, j) in place, leaving the rest of the
// vector untouched. Bounds outside [0, Len()] panic as slicing would.
func (v *Vector[T]) SortRange(i, j int, less func(a, b T) bool) {
	window := v.items[i:j]
	sort.Slice(window, func(a, b int) bool { return less(window[a], window[b]) })
}
