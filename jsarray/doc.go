// Package jsarray provides a generic, mutable Array type with the method
// family of JavaScript's Array.prototype, backed by a growable vector with
// a pluggable allocation strategy.
//
// # Overview
//
// The central type is [Array][T]. Mutating methods (Push, Pop, Reverse,
// SortFunc, Fill, …) work in place and return the receiver or the removed
// element, as in JavaScript. Transforming operations (Map, Filter,
// ToSorted, …) return a new, independently-owned Array allocated with the
// source's [alloc.Strategy].
//
//	a := jsarray.New(3, 1, 4, 1, 5)
//	evens := jsarray.Filter(a, func(n int) bool { return n%2 == 0 })
//	total := jsarray.Reduce(a, func(acc, n int) int { return acc + n }, 0)
//	jsarray.Sort(a) // in place; a is now [1 1 3 4 5]
//
// # Callback arity
//
// Every callback-taking operation accepts the same parameter shapes its
// JavaScript counterpart passes: (value), (value, index), or (value,
// index, array) — reduce callbacks lead with the accumulator. Which shape
// a callback uses is read off its static type by the callback package;
// an unsupported shape, or a predicate not returning bool, is a compile
// error, and no per-element branching happens at run time.
//
//	jsarray.Some(a, func(n int) bool { return n > 4 })
//	jsarray.Some(a, func(n, i int) bool { return n > i })
//	jsarray.ReduceRight(a, func(acc string, n int) string {
//	    return acc + strconv.Itoa(n)
//	}, "")
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// Map, FlatMap, Flat and friends are package-level functions. Because the
// legal callback shapes form a union, Map's result type cannot be inferred
// from the callback alone and is stated at the call site:
//
//	labels := jsarray.Map[string](a, strconv.Itoa)
//
// # Ordering guarantees
//
// Traversal is ascending for map/forEach/filter/every/some and for reduce;
// reduceRight and FindLast genuinely visit indices from highest to lowest,
// which is observable by callbacks with side effects. Every and Some stop
// as soon as their result is determined. Filter is stable.
//
// # Concurrency
//
// Array performs no locking. Concurrent reads are safe; any concurrent
// mutation requires external synchronization by the caller.
package jsarray
