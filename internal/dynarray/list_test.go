package dynarray

import (
	"errors"
	"math"
	"testing"
)

func TestGetSet(t *testing.T) {
	l := From(10, 20, 30)

	for i := 0; i < l.Count(); i++ {
		if err := l.Set(i, i*7); err != nil {
			t.Fatalf("Set(%d) failed: %v", i, err)
		}
		got, err := l.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", i, err)
		}
		if got != i*7 {
			t.Errorf("Get(%d) = %d, want %d", i, got, i*7)
		}
	}
}

func TestIndexBoundedByCount(t *testing.T) {
	l := From(1, 2)
	if l.Capacity() <= l.Count() {
		t.Fatalf("expected spare capacity, got count %d capacity %d", l.Count(), l.Capacity())
	}

	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"at count", 2},
		{"inside spare capacity", 3},
		{"past capacity", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := l.Get(tt.index); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("Get(%d) error = %v, want ErrIndexOutOfRange", tt.index, err)
			}
			if err := l.Set(tt.index, 9); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("Set(%d) error = %v, want ErrIndexOutOfRange", tt.index, err)
			}
			if err := l.RemoveAt(tt.index); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("RemoveAt(%d) error = %v, want ErrIndexOutOfRange", tt.index, err)
			}
			if err := l.Insert(tt.index, 9); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("Insert(%d) error = %v, want ErrIndexOutOfRange", tt.index, err)
			}
		})
	}

	if got := l.Slice(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("rejected operations mutated the list: %v", got)
	}
}

func TestIndexErrorDetails(t *testing.T) {
	l := From("a")
	_, err := l.Get(5)

	var ie *IndexError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *IndexError, got %T", err)
	}
	if ie.Op != "get" || ie.Index != 5 || ie.Count != 1 {
		t.Errorf("unexpected error details: %+v", ie)
	}
	if err.Error() != "dynarray: get: index 5 out of range [0, 1)" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestAddIncrementsCount(t *testing.T) {
	l := New[int]()
	for i := 0; i < 20; i++ {
		before := l.Count()
		l.Add(i)
		if l.Count() != before+1 {
			t.Fatalf("count went from %d to %d", before, l.Count())
		}
		last, err := l.Get(l.Count() - 1)
		if err != nil || last != i {
			t.Fatalf("Get(last) = %d, %v; want %d", last, err, i)
		}
	}
}

func TestGrowthDoubles(t *testing.T) {
	tests := []int{1, 2, 3, 4, 7}

	for _, c := range tests {
		l, err := NewWithCapacity[int](c)
		if err != nil {
			t.Fatalf("NewWithCapacity(%d): %v", c, err)
		}
		for i := 0; i <= c; i++ {
			l.Add(i)
		}
		if l.Capacity() != 2*c {
			t.Errorf("capacity %d: after %d adds capacity = %d, want %d", c, c+1, l.Capacity(), 2*c)
		}
		for i := 0; i <= c; i++ {
			if got, _ := l.Get(i); got != i {
				t.Errorf("capacity %d: Get(%d) = %d after growth", c, i, got)
			}
		}
	}
}

func TestInsertGrowsAtCapacity(t *testing.T) {
	l, _ := NewWithCapacity[int](2)
	l.AddRange(1, 2)

	if err := l.Insert(1, 9); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if l.Capacity() != 4 {
		t.Errorf("capacity = %d, want 4", l.Capacity())
	}
	want := []int{1, 9, 2}
	got := l.Slice()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRemoveAtClearsVacatedSlot(t *testing.T) {
	a, b, c := new(int), new(int), new(int)
	l := From(a, b, c)

	if err := l.RemoveAt(0); err != nil {
		t.Fatalf("RemoveAt failed: %v", err)
	}
	if l.Count() != 2 {
		t.Errorf("count = %d, want 2", l.Count())
	}
	if l.storage[2] != nil {
		t.Error("vacated slot still holds a reference")
	}
	if l.storage[0] != b || l.storage[1] != c {
		t.Error("remaining elements not shifted left")
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, []string{}},
		{"single", []string{"a"}, []string{"a"}},
		{"even", []string{"a", "b", "c", "d"}, []string{"d", "c", "b", "a"}},
		{"odd", []string{"a", "b", "c"}, []string{"c", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := From(tt.in...)
			l.Reverse()
			assertItems(t, l, tt.want)
		})
	}
}

func TestReverseRange(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		count   int
		want    []int
		wantErr bool
	}{
		{"whole", 0, 5, []int{5, 4, 3, 2, 1}, false},
		{"middle", 1, 3, []int{1, 4, 3, 2, 5}, false},
		{"tail", 3, 2, []int{1, 2, 3, 5, 4}, false},
		{"empty range", 2, 0, []int{1, 2, 3, 4, 5}, false},
		{"empty range at end", 5, 0, []int{1, 2, 3, 4, 5}, false},
		{"negative index", -1, 2, []int{1, 2, 3, 4, 5}, true},
		{"negative count", 1, -1, []int{1, 2, 3, 4, 5}, true},
		{"past count", 3, 3, []int{1, 2, 3, 4, 5}, true},
		{"overflowing count", 1, math.MaxInt, []int{1, 2, 3, 4, 5}, true},
		{"index past count", 6, 0, []int{1, 2, 3, 4, 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := From(1, 2, 3, 4, 5)
			err := l.ReverseRange(tt.index, tt.count)
			if tt.wantErr != (err != nil) {
				t.Fatalf("ReverseRange(%d, %d) error = %v, wantErr %v", tt.index, tt.count, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("expected ErrIndexOutOfRange, got %v", err)
			}
			assertItems(t, l, tt.want)
		})
	}
}

func TestSliceIsCopy(t *testing.T) {
	l := From("a", "b", "c")

	out := l.Slice()
	out[0] = "z"

	if got, _ := l.Get(0); got != "a" {
		t.Errorf("Get(0) = %q after writing to Slice(), want a", got)
	}
	assertItems(t, l, []string{"a", "b", "c"})
}

func TestFindAllIsIndependent(t *testing.T) {
	l := From(1, 2, 3, 4)
	even := l.FindAll(func(v int) bool { return v%2 == 0 })

	if err := even.Set(0, 99); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	even.Add(100)
	_ = even.RemoveAt(1)

	assertItems(t, l, []int{1, 2, 3, 4})
	assertItems(t, even, []int{99, 100})

	_ = l.Set(1, -2)
	assertItems(t, even, []int{99, 100})
}

func TestIndexOf(t *testing.T) {
	l := From("a", "b", "a", "c")

	if got := l.IndexOf("a"); got != 0 {
		t.Errorf("IndexOf(a) = %d, want 0", got)
	}
	if got := l.LastIndexOf("a"); got != 2 {
		t.Errorf("LastIndexOf(a) = %d, want 2", got)
	}
	if got := l.IndexOf("z"); got != -1 {
		t.Errorf("IndexOf(z) = %d, want -1", got)
	}
	if got := l.LastIndexOf("z"); got != -1 {
		t.Errorf("LastIndexOf(z) = %d, want -1", got)
	}
	if !l.Contains("c") || l.Contains("z") {
		t.Error("Contains disagrees with IndexOf")
	}
}

func TestSpareSlotsNotSearched(t *testing.T) {
	l := From(1, 2, 3)
	_ = l.RemoveAt(2)

	if l.Contains(0) {
		t.Error("zero-valued spare slot matched as a live element")
	}
	if l.IndexOf(3) != -1 {
		t.Error("removed element still found")
	}
}

func TestClearKeepsCapacity(t *testing.T) {
	l, _ := NewWithCapacity[int](3)
	l.AddRange(1, 2, 3, 4, 5, 6, 7)
	capBefore := l.Capacity()

	l.Clear()
	if l.Count() != 0 {
		t.Errorf("count = %d after Clear", l.Count())
	}
	if l.Capacity() != capBefore {
		t.Errorf("capacity = %d after Clear, want %d", l.Capacity(), capBefore)
	}

	l.Add(42)
	if got, _ := l.Get(0); got != 42 || l.Count() != 1 {
		t.Errorf("Add after Clear: got %d, count %d", got, l.Count())
	}
}

func TestIterators(t *testing.T) {
	l := From(1, 2, 3)

	var fwd []int
	for v := range l.All() {
		fwd = append(fwd, v)
	}
	var again []int
	for v := range l.All() {
		again = append(again, v)
	}
	if len(fwd) != 3 || fwd[0] != 1 || fwd[2] != 3 || len(again) != 3 {
		t.Errorf("All() yielded %v then %v", fwd, again)
	}

	var idx []int
	for i, v := range l.Backward() {
		if v != i+1 {
			t.Errorf("Backward yielded (%d, %d)", i, v)
		}
		idx = append(idx, i)
	}
	if len(idx) != 3 || idx[0] != 2 || idx[2] != 0 {
		t.Errorf("Backward indices = %v", idx)
	}

	for v := range l.All() {
		if v == 2 {
			break
		}
	}

	dst := New[int]()
	dst.AddSeq(l.All())
	assertItems(t, dst, []int{1, 2, 3})
}

func TestString(t *testing.T) {
	if got := From("a", "b").String(); got != "[a, b]" {
		t.Errorf("String() = %q", got)
	}
	if got := New[int]().String(); got != "[]" {
		t.Errorf("String() = %q", got)
	}
}

func assertItems[T comparable](t *testing.T, l *List[T], want []T) {
	t.Helper()
	got := l.Slice()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
