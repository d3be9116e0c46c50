package callback_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-js-utils/callback"
)

// source stands in for the container type the C parameter is instantiated
// with; the callback package never looks inside it.
type source struct{ id int }

// ─────────────────────────────────────────────────────────────────────────────
// Arity resolution
// ─────────────────────────────────────────────────────────────────────────────

func TestVisitArity(t *testing.T) {
	if got := callback.VisitArity[int, string, *source](func(int) string { return "" }); got != 1 {
		t.Fatalf("arity of func(T) R = %d; want 1", got)
	}
	if got := callback.VisitArity[int, string, *source](func(int, int) string { return "" }); got != 2 {
		t.Fatalf("arity of func(T, int) R = %d; want 2", got)
	}
	if got := callback.VisitArity[int, string, *source](func(int, int, *source) string { return "" }); got != 3 {
		t.Fatalf("arity of func(T, int, C) R = %d; want 3", got)
	}
}

func TestVisitArityNotInvoked(t *testing.T) {
	called := false
	callback.VisitArity[int, int, *source](func(int) int {
		called = true
		return 0
	})
	if called {
		t.Fatal("VisitArity must resolve the shape without invoking the callback")
	}
}

func TestEffectArity(t *testing.T) {
	if got := callback.EffectArity[string, *source](func(string) {}); got != 1 {
		t.Fatalf("arity of func(T) = %d; want 1", got)
	}
	if got := callback.EffectArity[string, *source](func(string, int) {}); got != 2 {
		t.Fatalf("arity of func(T, int) = %d; want 2", got)
	}
	if got := callback.EffectArity[string, *source](func(string, int, *source) {}); got != 3 {
		t.Fatalf("arity of func(T, int, C) = %d; want 3", got)
	}
}

func TestFoldArity(t *testing.T) {
	if got := callback.FoldArity[int, string, *source](func(acc int, v string) int { return acc }); got != 2 {
		t.Fatalf("arity of func(A, T) A = %d; want 2", got)
	}
	if got := callback.FoldArity[int, string, *source](func(acc int, v string, i int) int { return acc }); got != 3 {
		t.Fatalf("arity of func(A, T, int) A = %d; want 3", got)
	}
	if got := callback.FoldArity[int, string, *source](func(acc int, v string, i int, src *source) int { return acc }); got != 4 {
		t.Fatalf("arity of func(A, T, int, C) A = %d; want 4", got)
	}
}

// Method values have plain function types and resolve like any closure.
type doubler struct{}

func (doubler) apply(n int) int { return n * 2 }

func TestArityOfMethodValue(t *testing.T) {
	d := doubler{}
	if got := callback.VisitArity[int, int, *source](d.apply); got != 1 {
		t.Fatalf("arity of method value = %d; want 1", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Dispatch
// ─────────────────────────────────────────────────────────────────────────────

func TestCallerValueOnly(t *testing.T) {
	call := callback.Caller[int, string, *source](strconv.Itoa)
	if got := call(42, 7, &source{id: 1}); got != "42" {
		t.Fatalf("call(42, …) = %q; want \"42\"", got)
	}
}

func TestCallerValueIndex(t *testing.T) {
	call := callback.Caller[string, string, *source](func(v string, i int) string {
		return strconv.Itoa(i) + ":" + v
	})
	if got := call("x", 3, nil); got != "3:x" {
		t.Fatalf("call = %q; want \"3:x\"", got)
	}
}

func TestCallerFullShapePassesContainer(t *testing.T) {
	src := &source{id: 99}
	call := callback.Caller[int, int, *source](func(v, i int, s *source) int {
		if s != src {
			t.Fatal("three-parameter callback must receive the container it was dispatched with")
		}
		return v + i
	})
	if got := call(10, 5, src); got != 15 {
		t.Fatalf("call = %d; want 15", got)
	}
}

func TestEffectCallerDropsUndeclaredArguments(t *testing.T) {
	var gotV, gotI int
	unary := callback.EffectCaller[int, *source](func(v int) { gotV = v })
	unary(7, 123, &source{})
	if gotV != 7 {
		t.Fatalf("unary effect saw value %d; want 7", gotV)
	}

	binary := callback.EffectCaller[int, *source](func(v, i int) { gotV, gotI = v, i })
	binary(8, 2, nil)
	if gotV != 8 || gotI != 2 {
		t.Fatalf("binary effect saw (%d, %d); want (8, 2)", gotV, gotI)
	}
}

func TestFoldCaller(t *testing.T) {
	concat := callback.FoldCaller[string, int, *source](func(acc string, v int) string {
		return acc + strconv.Itoa(v)
	})
	if got := concat("a", 1, 0, nil); got != "a1" {
		t.Fatalf("fold = %q; want \"a1\"", got)
	}

	indexed := callback.FoldCaller[int, int, *source](func(acc, v, i int) int {
		return acc + v*i
	})
	if got := indexed(0, 5, 3, nil); got != 15 {
		t.Fatalf("indexed fold = %d; want 15", got)
	}

	src := &source{id: 4}
	full := callback.FoldCaller[int, int, *source](func(acc, v, i int, s *source) int {
		return acc + v + i + s.id
	})
	if got := full(1, 2, 3, src); got != 10 {
		t.Fatalf("full fold = %d; want 10", got)
	}
}

func TestCallerResolvedOnce(t *testing.T) {
	// The adapter returned by Caller closes over the already-chosen shape:
	// repeated invocations must not re-inspect the callback.
	calls := 0
	call := callback.Caller[int, int, *source](func(v int) int {
		calls++
		return v
	})
	for i := 0; i < 5; i++ {
		call(i, i, nil)
	}
	if calls != 5 {
		t.Fatalf("callback invoked %d times; want 5", calls)
	}
}
