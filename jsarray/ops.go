package jsarray

import (
	"github.com/hasbyte1/go-js-utils/callback"
	"github.com/hasbyte1/go-js-utils/vec"
)

// This file contains the callback-driven operation suite. Each operation
// resolves its callback's shape once, through the callback package, before
// visiting any element; the traversal loop itself is branch-free. The
// container reference handed to three-parameter callbacks is always the
// *source* array — for transforming operations it is never the in-progress
// result.
//
// All of these are package-level functions rather than methods: the
// callback's type is a type parameter (that is what makes the arity a
// compile-time property), and Go methods cannot introduce type parameters.

// Map applies fn to every element in ascending order and returns a new
// Array[R] of the same length, allocated with a's strategy. The result
// element type is stated at the call site:
//
//	labels := jsarray.Map[string](nums, func(n int) string {
//	    return strconv.Itoa(n)
//	})
func Map[R any, T any, F callback.Visit[T, R, *Array[T]]](a *Array[T], fn F) *Array[R] {
	call := callback.Caller[T, R, *Array[T]](fn)
	out := vec.Sized[R](a.v.Strategy(), a.v.Len())
	for i, val := range a.v.Raw() {
		out.Set(i, call(val, i, a))
	}
	return &Array[R]{v: out}
}

// FlatMap applies fn to every element in ascending order and concatenates
// the returned slices into a new Array[R], allocated with a's strategy.
//
//	words := jsarray.FlatMap[string](lines, strings.Fields)
func FlatMap[R any, T any, F callback.Visit[T, []R, *Array[T]]](a *Array[T], fn F) *Array[R] {
	call := callback.Caller[T, []R, *Array[T]](fn)
	out := vec.Sized[R](a.v.Strategy(), 0)
	for i, val := range a.v.Raw() {
		out.Push(call(val, i, a)...)
	}
	return &Array[R]{v: out}
}

// Flat concatenates one level of nesting: Array[[]T] becomes Array[T].
func Flat[T any](a *Array[[]T]) *Array[T] {
	out := vec.Sized[T](a.v.Strategy(), 0)
	for _, chunk := range a.v.Raw() {
		out.Push(chunk...)
	}
	return &Array[T]{v: out}
}

// ForEach invokes fn for every element in ascending order, for its side
// effects only. ForEach itself mutates nothing; a three-parameter callback
// receives the array and may mutate it through that reference.
func ForEach[T any, F callback.Effect[T, *Array[T]]](a *Array[T], fn F) {
	call := callback.EffectCaller[T, *Array[T]](fn)
	for i, val := range a.v.Raw() {
		call(val, i, a)
	}
}

// Reduce folds the array left to right: the accumulator starts at initial
// and is replaced by fn's return value at each element, visiting indices
// 0 through Len()-1.
//
//	sum := jsarray.Reduce(nums, func(acc, n int) int { return acc + n }, 0)
func Reduce[T, A any, F callback.Fold[A, T, *Array[T]]](a *Array[T], fn F, initial A) A {
	fold := callback.FoldCaller[A, T, *Array[T]](fn)
	acc := initial
	for i, val := range a.v.Raw() {
		acc = fold(acc, val, i, a)
	}
	return acc
}

// ReduceRight folds the array right to left, visiting indices Len()-1 down
// to 0. The visitation order is part of the contract, observable by
// callbacks with side effects: the loop genuinely iterates in descending
// order, and the index passed to the callback is the position being
// visited.
func ReduceRight[T, A any, F callback.Fold[A, T, *Array[T]]](a *Array[T], fn F, initial A) A {
	fold := callback.FoldCaller[A, T, *Array[T]](fn)
	acc := initial
	items := a.v.Raw()
	for i := len(items) - 1; i >= 0; i-- {
		acc = fold(acc, items[i], i, a)
	}
	return acc
}

// Filter returns a new array holding, in their original relative order,
// the elements for which fn returns true. The result is allocated with
// a's strategy and shares no storage with a.
func Filter[T any, F callback.Predicate[T, *Array[T]]](a *Array[T], fn F) *Array[T] {
	keep := callback.Caller[T, bool, *Array[T]](fn)
	out := vec.Sized[T](a.v.Strategy(), 0)
	for i, val := range a.v.Raw() {
		if keep(val, i, a) {
			out.Push(val)
		}
	}
	return &Array[T]{v: out}
}

// Every reports whether fn returns true for every element, scanning in
// ascending order and stopping at the first false. Every of an empty
// array is true.
func Every[T any, F callback.Predicate[T, *Array[T]]](a *Array[T], fn F) bool {
	pred := callback.Caller[T, bool, *Array[T]](fn)
	for i, val := range a.v.Raw() {
		if !pred(val, i, a) {
			return false
		}
	}
	return true
}

// Some reports whether fn returns true for at least one element, scanning
// in ascending order and stopping at the first true. Some of an empty
// array is false.
func Some[T any, F callback.Predicate[T, *Array[T]]](a *Array[T], fn F) bool {
	pred := callback.Caller[T, bool, *Array[T]](fn)
	for i, val := range a.v.Raw() {
		if pred(val, i, a) {
			return true
		}
	}
	return false
}
