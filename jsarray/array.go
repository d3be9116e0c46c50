package jsarray

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-js-utils/alloc"
	"github.com/hasbyte1/go-js-utils/vec"
)

// Array is a generic, mutable, 0-indexed sequence of T with the method
// family of JavaScript's Array layered on top of a [vec.Vector].
//
// Mutating operations (Push, Pop, Fill, Reverse, SortFunc, …) change the
// receiver in place, exactly as their JavaScript namesakes do. Transforming
// operations (Map, Filter, ToSorted, …) build an independently-owned result
// that shares no storage with the source, allocated with the source's
// [alloc.Strategy].
//
// # Creating an array
//
//	a := jsarray.New(1, 2, 3, 4, 5)
//	a := jsarray.From([]string{"a", "b", "c"})
//	a := jsarray.SizedWith[float64](alloc.Exact{}, 1024)
//
// # Callback arity
//
// Operations that take callbacks accept any of the parameter shapes their
// JavaScript counterparts do — (value), (value, index), or (value, index,
// array); reduce callbacks additionally lead with the accumulator. The
// shape is resolved at compile time by the callback package's constraints;
// a callback with an unsupported shape does not compile:
//
//	jsarray.ForEach(a, func(v int) { fmt.Println(v) })
//	jsarray.ForEach(a, func(v, i int) { fmt.Println(i, v) })
//	jsarray.Filter(a, func(v, i int, src *jsarray.Array[int]) bool {
//	    return i == 0 || v != src.MustAt(i-1)
//	})
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations whose result element type differs from T are package-level
// functions, with the result type stated at the call site:
//
//	labels := jsarray.Map[string](a, strconv.Itoa)
//
// Array performs no locking: concurrent mutation requires external
// synchronization by the caller.
type Array[T any] struct {
	v *vec.Vector[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an Array holding copies of items, default allocation.
func New[T any](items ...T) *Array[T] {
	return NewWith(alloc.Default(), items...)
}

// NewWith is [New] with an explicit allocation strategy.
func NewWith[T any](s alloc.Strategy, items ...T) *Array[T] {
	return &Array[T]{v: vec.New(s, items...)}
}

// From creates an Array holding a copy of the given slice.
func From[T any](items []T) *Array[T] {
	return FromWith(alloc.Default(), items)
}

// FromWith is [From] with an explicit allocation strategy.
func FromWith[T any](s alloc.Strategy, items []T) *Array[T] {
	return &Array[T]{v: vec.From(s, items)}
}

// Sized creates an Array of n zero values.
func Sized[T any](n int) *Array[T] {
	return SizedWith[T](alloc.Default(), n)
}

// SizedWith is [Sized] with an explicit allocation strategy.
func SizedWith[T any](s alloc.Strategy, n int) *Array[T] {
	return &Array[T]{v: vec.Sized[T](s, n)}
}

// Empty creates an empty Array of type T.
func Empty[T any]() *Array[T] {
	return Sized[T](0)
}

// EmptyWith is [Empty] with an explicit allocation strategy.
func EmptyWith[T any](s alloc.Strategy) *Array[T] {
	return SizedWith[T](s, 0)
}

// Wrap creates an Array that adopts the given slice without copying.
// The caller hands over ownership: the slice must not be used again.
func Wrap[T any](items []T) *Array[T] {
	return WrapWith(alloc.Default(), items)
}

// WrapWith is [Wrap] with an explicit allocation strategy.
func WrapWith[T any](s alloc.Strategy, items []T) *Array[T] {
	return &Array[T]{v: vec.Wrap(s, items)}
}

// Clone returns an independently-owned copy of a, same strategy.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{v: a.v.Clone()}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.v.Len() }

// Strategy returns the allocation strategy a was built with.
func (a *Array[T]) Strategy() alloc.Strategy { return a.v.Strategy() }

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (a *Array[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= a.v.Len() {
		return zero, false
	}
	return a.v.At(index), true
}

// At returns the element at index, counting from the end when index is
// negative (At(-1) is the last element), together with a presence flag.
func (a *Array[T]) At(index int) (T, bool) {
	if index < 0 {
		index += a.v.Len()
	}
	return a.Get(index)
}

// MustAt returns the element at index, panicking when index is outside
// [0, Len()) exactly as indexing the backing slice would.
func (a *Array[T]) MustAt(index int) T { return a.v.At(index) }

// Set stores val at index, panicking when index is outside [0, Len())
// exactly as indexing the backing slice would.
func (a *Array[T]) Set(index int, val T) { a.v.Set(index, val) }

// First returns the first element. Returns the zero value and false when
// the array is empty.
func (a *Array[T]) First() (T, bool) { return a.Get(0) }

// Last returns the last element. Returns the zero value and false when
// the array is empty.
func (a *Array[T]) Last() (T, bool) { return a.Get(a.v.Len() - 1) }

// All returns a copy of the elements as a plain slice.
func (a *Array[T]) All() []T { return a.v.All() }

// ToSlice is an alias for [Array.All].
func (a *Array[T]) ToSlice() []T { return a.All() }

// ToJSON serialises the elements to a JSON array.
func (a *Array[T]) ToJSON() ([]byte, error) {
	return json.Marshal(a.v.Raw())
}

// String returns a JSON representation of the array.
// It implements [fmt.Stringer].
func (a *Array[T]) String() string {
	b, err := a.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", a.v.Raw())
	}
	return string(b)
}

// Dump prints the array to stdout and returns a for chaining.
func (a *Array[T]) Dump() *Array[T] {
	fmt.Println(a.String())
	return a
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

// Push appends items and returns the new length.
func (a *Array[T]) Push(items ...T) int {
	a.v.Push(items...)
	return a.v.Len()
}

// Pop removes and returns the last element. Returns the zero value and
// false when the array is empty.
func (a *Array[T]) Pop() (T, bool) {
	var zero T
	n := a.v.Len()
	if n == 0 {
		return zero, false
	}
	last := a.v.At(n - 1)
	a.v.Truncate(n - 1)
	return last, true
}

// Shift removes and returns the first element. Returns the zero value and
// false when the array is empty.
func (a *Array[T]) Shift() (T, bool) {
	var zero T
	items := a.v.Raw()
	if len(items) == 0 {
		return zero, false
	}
	first := items[0]
	copy(items, items[1:])
	a.v.Truncate(len(items) - 1)
	return first, true
}

// Unshift inserts items at the front and returns the new length.
func (a *Array[T]) Unshift(items ...T) int {
	if len(items) == 0 {
		return a.v.Len()
	}
	merged := vec.Sized[T](a.v.Strategy(), 0)
	merged.Push(items...)
	merged.Push(a.v.Raw()...)
	a.v = merged
	return a.v.Len()
}

// Fill overwrites elements with val and returns a. With no bounds the
// whole array is filled; bounds[0] and bounds[1] give start (inclusive)
// and end (exclusive), counting from the end when negative.
func (a *Array[T]) Fill(val T, bounds ...int) *Array[T] {
	n := a.v.Len()
	start, end := sliceBounds(n, bounds)
	items := a.v.Raw()
	for i := start; i < end; i++ {
		items[i] = val
	}
	return a
}

// Reverse reverses the array in place and returns a.
func (a *Array[T]) Reverse() *Array[T] {
	items := a.v.Raw()
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return a
}

// ─────────────────────────────────────────────────────────────────────────────
// Pure producers
// ─────────────────────────────────────────────────────────────────────────────

// ToReversed returns a reversed copy, leaving a unchanged.
func (a *Array[T]) ToReversed() *Array[T] {
	return a.Clone().Reverse()
}

// Slice returns a copy of a portion of the array. With no bounds the whole
// array is copied; bounds[0] and bounds[1] give start (inclusive) and end
// (exclusive), counting from the end when negative and clamped to the
// array's range.
func (a *Array[T]) Slice(bounds ...int) *Array[T] {
	start, end := sliceBounds(a.v.Len(), bounds)
	return &Array[T]{v: vec.From(a.v.Strategy(), a.v.Raw()[start:end])}
}

// Concat returns a new array holding a's elements followed by each of the
// others' elements in order. The result uses a's strategy.
func (a *Array[T]) Concat(others ...*Array[T]) *Array[T] {
	out := vec.Sized[T](a.v.Strategy(), 0)
	out.Push(a.v.Raw()...)
	for _, o := range others {
		out.Push(o.v.Raw()...)
	}
	return &Array[T]{v: out}
}

// sliceBounds resolves optional JS-style (start, end) bounds against an
// array of length n: missing bounds default to the full range, negative
// bounds count from the end, and the result is clamped so that
// 0 <= start <= end <= n.
func sliceBounds(n int, bounds []int) (start, end int) {
	start, end = 0, n
	if len(bounds) > 0 {
		start = clampIndex(bounds[0], n)
	}
	if len(bounds) > 1 {
		end = clampIndex(bounds[1], n)
	}
	if end < start {
		end = start
	}
	return start, end
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
