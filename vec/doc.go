// Package vec implements the dynamic array underneath jsarray: contiguous
// growable storage with O(1) length and random access, append-to-end, and
// an in-place sort primitive over the full vector or a sub-range.
//
// A [Vector] owns its backing slice exclusively and carries the
// [alloc.Strategy] that sizes it. Growth always consults that strategy:
//
//	v := vec.From(alloc.Exact{}, []int{1, 2, 3})
//	v.Push(4) // reallocates tight-fit, per Exact
//
// The constructor set mirrors the classic dynamic-array surface: [New] and
// [From] copy their input, [Sized] zero-fills, [Wrap] adopts a slice
// without copying (move construction), and [Vector.Clone] duplicates.
//
// Out-of-range access panics exactly as indexing a slice does; there is no
// structured bounds error at this layer. Vector performs no locking —
// concurrent mutation requires external synchronization.
package vec
