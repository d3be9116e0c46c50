// Package alloc provides pluggable capacity strategies for the backing
// slices used by the vec and jsarray packages.
//
// A [Strategy] is a value-level policy object: it describes how capacities
// are chosen but is itself independent of any element type. Containers
// carry their Strategy with them, and operations that produce a container
// with a different element type re-apply the same Strategy through
// [Make] — a container built with tight-fit allocation never silently
// produces an amortized-growth result, and vice versa.
//
//	v := vec.Sized[int](alloc.Exact{}, 1024)
//	// any container derived from v also allocates tight-fit
//
// Three strategies ship with the package:
//
//   - [Amortized]: doubling growth, amortized O(1) appends (the default)
//   - [Exact]: zero slack, every growth reallocates
//   - [Slab]: capacities rounded up to fixed-size multiples
//
// Strategies are stateless values and safe for concurrent use.
package alloc
