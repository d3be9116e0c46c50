// Package callback resolves the shape of operation callbacks ahead of
// execution and dispatches to them with exactly the arguments they declare.
//
// JavaScript's Array methods accept callbacks of several arities — a map
// callback may take (value), (value, index), or (value, index, array) — and
// the engine passes each callback only what it asks for. This package
// reproduces that contract in Go with static types doing the work the
// engine does dynamically:
//
//   - A constraint family ([Visit], [Predicate], [Effect], [Fold]) encodes
//     the closed set of legal signatures per operation family as a type-set
//     union. A callback with any other parameter list — or, for predicates,
//     any non-bool result — is rejected by the compiler, not at run time.
//   - An arity resolver ([VisitArity], [EffectArity], [FoldArity]) reports
//     a callback's declared parameter count without invoking it.
//   - A dispatcher ([Caller], [EffectCaller], [FoldCaller]) normalizes a
//     callback to its family's canonical widest shape in a single type
//     switch, performed once per operation call — before any element is
//     processed — so the per-element loop is branch-free.
//
// The container type appears in the constraints as a free type parameter C,
// keeping this package independent of any particular container. jsarray
// instantiates C with *jsarray.Array[T].
//
//	each := callback.EffectCaller[int, *jsarray.Array[int]](func(v int, i int) {
//	    fmt.Println(i, v)
//	})
//	each(10, 0, nil) // prints "0 10"; the container argument is dropped
//
// # Portability
//
// This is the Go rendition of C++ function_traits-style introspection: what
// a template metaprogram resolves from a callable's declared signature, Go
// resolves through constraint satisfaction plus one type switch over the
// same closed signature set. The failure mode moves with it — an illegal
// callback shape is a compile error naming the constraint, the analog of a
// static_assert listing the legal signatures.
package callback
