package callback

// ─────────────────────────────────────────────────────────────────────────────
// Signature constraints
// ─────────────────────────────────────────────────────────────────────────────

// Visit is the constraint for transforming callbacks. A visitor declares
// one of exactly three shapes:
//
//	func(v T) R
//	func(v T, i int) R
//	func(v T, i int, src C) R
//
// T is the element type, R the produced type, and C the container type the
// operation passes as its third argument (always the operation's source,
// never an in-progress result). Any other parameter list, and any value
// whose type is not statically one of these three, fails the constraint at
// compile time.
//
// The union is deliberately exact (no ~ terms): closures, function
// literals, and method values all have unlisted, unnamed function types and
// satisfy the constraint directly; a defined function type converts
// explicitly at the call site.
type Visit[T, R, C any] interface {
	func(T) R | func(T, int) R | func(T, int, C) R
}

// Predicate is the constraint for boolean-returning callbacks
// (filter/every/some/find). It is [Visit] with the produced type fixed to
// bool, so a callback returning anything else is a compile-time error
// rather than a truthiness coercion.
type Predicate[T, C any] interface {
	Visit[T, bool, C]
}

// Effect is the constraint for side-effect callbacks (forEach). Same three
// parameter shapes as [Visit], no results:
//
//	func(v T)
//	func(v T, i int)
//	func(v T, i int, src C)
type Effect[T, C any] interface {
	func(T) | func(T, int) | func(T, int, C)
}

// Fold is the constraint for reduce-family callbacks. The accumulator A
// leads the parameter list:
//
//	func(acc A, v T) A
//	func(acc A, v T, i int) A
//	func(acc A, v T, i int, src C) A
type Fold[A, T, C any] interface {
	func(A, T) A | func(A, T, int) A | func(A, T, int, C) A
}

// ─────────────────────────────────────────────────────────────────────────────
// Arity resolution
// ─────────────────────────────────────────────────────────────────────────────

// The switch defaults below are unreachable: every instantiation the
// compiler accepts has its dynamic type in the constraint's set. They exist
// so the unreachable branch states the contract it guards.

const (
	visitShapes  = "callback: visitor must be func(T) R, func(T, int) R, or func(T, int, C) R"
	effectShapes = "callback: effect must be func(T), func(T, int), or func(T, int, C)"
	foldShapes   = "callback: folder must be func(A, T) A, func(A, T, int) A, or func(A, T, int, C) A"
)

// VisitArity reports the number of parameters fn declares, without
// invoking it: 1, 2, or 3.
func VisitArity[T, R, C any, F Visit[T, R, C]](fn F) int {
	switch any(fn).(type) {
	case func(T) R:
		return 1
	case func(T, int) R:
		return 2
	case func(T, int, C) R:
		return 3
	}
	panic(visitShapes)
}

// EffectArity reports the number of parameters fn declares: 1, 2, or 3.
func EffectArity[T, C any, F Effect[T, C]](fn F) int {
	switch any(fn).(type) {
	case func(T):
		return 1
	case func(T, int):
		return 2
	case func(T, int, C):
		return 3
	}
	panic(effectShapes)
}

// FoldArity reports the number of parameters fn declares, accumulator
// included: 2, 3, or 4.
func FoldArity[A, T, C any, F Fold[A, T, C]](fn F) int {
	switch any(fn).(type) {
	case func(A, T) A:
		return 2
	case func(A, T, int) A:
		return 3
	case func(A, T, int, C) A:
		return 4
	}
	panic(foldShapes)
}

// ─────────────────────────────────────────────────────────────────────────────
// Dispatch
// ─────────────────────────────────────────────────────────────────────────────

// Caller normalizes fn to the canonical three-parameter shape. The shape of
// fn is resolved exactly once, before any element is visited; the returned
// adapter dispatches with no per-element branching. Arguments beyond fn's
// declared parameters are dropped, never passed.
func Caller[T, R, C any, F Visit[T, R, C]](fn F) func(T, int, C) R {
	switch f := any(fn).(type) {
	case func(T) R:
		return func(v T, _ int, _ C) R { return f(v) }
	case func(T, int) R:
		return func(v T, i int, _ C) R { return f(v, i) }
	case func(T, int, C) R:
		return f
	}
	panic(visitShapes)
}

// EffectCaller normalizes fn to the canonical func(T, int, C) shape.
// Resolution happens once, ahead of the first element.
func EffectCaller[T, C any, F Effect[T, C]](fn F) func(T, int, C) {
	switch f := any(fn).(type) {
	case func(T):
		return func(v T, _ int, _ C) { f(v) }
	case func(T, int):
		return func(v T, i int, _ C) { f(v, i) }
	case func(T, int, C):
		return f
	}
	panic(effectShapes)
}

// FoldCaller normalizes fn to the canonical func(A, T, int, C) A shape.
// Resolution happens once, ahead of the first element.
func FoldCaller[A, T, C any, F Fold[A, T, C]](fn F) func(A, T, int, C) A {
	switch f := any(fn).(type) {
	case func(A, T) A:
		return func(acc A, v T, _ int, _ C) A { return f(acc, v) }
	case func(A, T, int) A:
		return func(acc A, v T, i int, _ C) A { return f(acc, v, i) }
	case func(A, T, int, C) A:
		return f
	}
	panic(foldShapes)
}
