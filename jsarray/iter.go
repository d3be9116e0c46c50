package jsarray

import "iter"

// Values returns an iterator over the elements in ascending order,
// the analog of JavaScript's array.values():
//
//	for v := range a.Values() {
//	    ...
//	}
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range a.v.Raw() {
			if !yield(val) {
				return
			}
		}
	}
}

// Entries returns an iterator over (index, element) pairs in ascending
// order, the analog of JavaScript's array.entries().
func (a *Array[T]) Entries() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, val := range a.v.Raw() {
			if !yield(i, val) {
				return
			}
		}
	}
}
