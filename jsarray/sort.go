package jsarray

import "cmp"

// SortFunc reorders the array in place so that less-ordered elements come
// first, and returns a. less(x, y) reports whether x must precede y. The
// sort is not guaranteed stable.
func (a *Array[T]) SortFunc(less func(x, y T) bool) *Array[T] {
	a.v.Sort(less)
	return a
}

// ToSortedFunc returns a sorted copy ordered by less, leaving a unchanged.
func (a *Array[T]) ToSortedFunc(less func(x, y T) bool) *Array[T] {
	return a.Clone().SortFunc(less)
}

// Sort reorders the array in place into ascending natural order and
// returns a. For element types without a natural order, use
// [Array.SortFunc].
func Sort[T cmp.Ordered](a *Array[T]) *Array[T] {
	return a.SortFunc(func(x, y T) bool { return x < y })
}

// ToSorted returns a copy sorted into ascending natural order, leaving a
// unchanged.
func ToSorted[T cmp.Ordered](a *Array[T]) *Array[T] {
	return Sort(a.Clone())
}
