package alloc

// Strategy decides backing-slice capacities independently of the element
// type. A single Strategy value travels with a container across every
// transformation it performs: when an operation produces a container with a
// different element type, the same Strategy is consulted for the new
// backing store (see [Make]).
//
// Implementations must be stateless values so they can be shared freely
// between containers without synchronization.
type Strategy interface {
	// Cap returns the capacity for a fresh backing slice that must hold
	// n elements. The result is always >= n.
	Cap(n int) int

	// Grow returns the new capacity when a slice currently at capacity c
	// must hold need elements. The result is always >= need.
	Grow(c, need int) int
}

// Make allocates a backing slice of length n for element type T using the
// given strategy. This is the only allocation entry point: it is where a
// strategy chosen for one element type is re-applied to another.
func Make[T any](s Strategy, n int) []T {
	return make([]T, n, s.Cap(n))
}

// Default returns the package default strategy, [Amortized].
func Default() Strategy { return Amortized{} }

// Amortized grows capacity by doubling, giving amortized O(1) appends.
// Fresh slices get a small minimum capacity so that short append bursts
// do not reallocate.
type Amortized struct{}

const amortizedMinCap = 8

func (Amortized) Cap(n int) int {
	if n < amortizedMinCap {
		return amortizedMinCap
	}
	return n
}

func (Amortized) Grow(c, need int) int {
	if c < amortizedMinCap {
		c = amortizedMinCap
	}
	for c < need {
		c *= 2
	}
	return c
}

// Exact allocates tight-fit slices with no slack. Every growth reallocates
// to exactly the needed capacity; appends are O(n) but memory overhead is
// zero. Suited to long-lived containers built once and never grown.
type Exact struct{}

func (Exact) Cap(n int) int { return n }

func (Exact) Grow(_, need int) int { return need }

// Slab rounds capacities up to multiples of Size. A Size <= 1 behaves like
// [Exact].
type Slab struct {
	Size int
}

func (s Slab) Cap(n int) int {
	if s.Size <= 1 {
		return n
	}
	if rem := n % s.Size; rem != 0 {
		return n + s.Size - rem
	}
	return n
}

func (s Slab) Grow(_, need int) int { return s.Cap(need) }
