package vec_test

import (
	"testing"

	"github.com/hasbyte1/go-js-utils/alloc"
	"github.com/hasbyte1/go-js-utils/vec"
)

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestFromCopies(t *testing.T) {
	src := []int{1, 2, 3}
	v := vec.From(alloc.Default(), src)
	src[0] = 99
	if v.At(0) != 1 {
		t.Fatal("From must copy its input slice")
	}
}

func TestWrapAdopts(t *testing.T) {
	src := []int{1, 2, 3}
	v := vec.Wrap(alloc.Default(), src)
	v.Set(0, 99)
	if src[0] != 99 {
		t.Fatal("Wrap must adopt the slice without copying")
	}
}

func TestSized(t *testing.T) {
	v := vec.Sized[string](alloc.Default(), 3)
	assertSlice(t, v.All(), []string{"", "", ""})
}

func TestClone(t *testing.T) {
	v := vec.New(alloc.Exact{}, 1, 2, 3)
	c := v.Clone()
	c.Set(0, 99)
	if v.At(0) != 1 {
		t.Fatal("Clone must not share storage")
	}
	if c.Strategy() != v.Strategy() {
		t.Fatal("Clone must keep the strategy")
	}
}

func TestAtSet(t *testing.T) {
	v := vec.New(alloc.Default(), 10, 20, 30)
	v.Set(1, 21)
	if v.At(1) != 21 {
		t.Fatalf("At(1) = %d; want 21", v.At(1))
	}
}

func TestAtOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("At out of range must panic like a slice index")
		}
	}()
	vec.New(alloc.Default(), 1).At(5)
}

func TestPushGrowsPerStrategy(t *testing.T) {
	v := vec.Sized[int](alloc.Exact{}, 0)
	for i := 1; i <= 5; i++ {
		v.Push(i)
		if v.Cap() != i {
			t.Fatalf("Exact vector after %d pushes has cap %d; want %d", i, v.Cap(), i)
		}
	}
	assertSlice(t, v.All(), []int{1, 2, 3, 4, 5})
}

func TestPushWithinCapacityKeepsBacking(t *testing.T) {
	v := vec.Sized[int](alloc.Slab{Size: 8}, 0)
	v.Push(1)
	if v.Cap() != 8 {
		t.Fatalf("cap = %d; want one slab of 8", v.Cap())
	}
	v.Push(2, 3, 4)
	if v.Cap() != 8 {
		t.Fatalf("pushes within capacity must not reallocate; cap = %d", v.Cap())
	}
}

func TestTruncate(t *testing.T) {
	v := vec.New(alloc.Default(), 1, 2, 3, 4)
	v.Truncate(2)
	assertSlice(t, v.All(), []int{1, 2})
}

func TestSort(t *testing.T) {
	v := vec.New(alloc.Default(), 3, 1, 2)
	v.Sort(func(a, b int) bool { return a < b })
	assertSlice(t, v.All(), []int{1, 2, 3})
}

func TestSortRange(t *testing.T) {
	v := vec.New(alloc.Default(), 9, 5, 3, 1, 0)
	v.SortRange(1, 4, func(a, b int) bool { return a < b })
	assertSlice(t, v.All(), []int{9, 1, 3, 5, 0})
}

func TestRawAliases(t *testing.T) {
	v := vec.New(alloc.Default(), 1, 2)
	v.Raw()[0] = 42
	if v.At(0) != 42 {
		t.Fatal("Raw must expose the backing slice without copying")
	}
	all := v.All()
	all[1] = 99
	if v.At(1) != 2 {
		t.Fatal("All must copy")
	}
}
