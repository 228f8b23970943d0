package seq_test

import (
	"testing"

	"github.com/kabu1204/go-seq/seq"
)

func TestSliceSequence(t *testing.T) {
	s := seq.Of(10, 20, 30)
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if s.At(1) != 20 {
		t.Errorf("At(1) = %d, want 20", s.At(1))
	}
	s.Set(1, 25)
	if s.At(1) != 25 {
		t.Errorf("At(1) after Set = %d, want 25", s.At(1))
	}
	s.Swap(0, 2)
	if s.At(0) != 30 || s.At(2) != 10 {
		t.Errorf("Swap(0, 2) gave %v", s)
	}
}

func TestCollect(t *testing.T) {
	s := seq.Of(1, 2, 3)
	out := seq.Collect[int](s)
	if len(out) != 3 {
		t.Fatalf("Collect returned %v", out)
	}
	out[0] = 99
	if s.At(0) == 99 {
		t.Error("Collect should copy, not alias")
	}
}

func TestReverse(t *testing.T) {
	s := seq.Of(1, 2, 3, 4)
	seq.Reverse[int](s)
	want := []int{4, 3, 2, 1}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("Reverse gave %v, want %v", s, want)
		}
	}

	odd := seq.Of(1, 2, 3)
	seq.Reverse[int](odd)
	if odd[0] != 3 || odd[1] != 2 || odd[2] != 1 {
		t.Errorf("Reverse gave %v", odd)
	}

	empty := seq.Of[int]()
	seq.Reverse[int](empty) // must not panic
}

func TestSliceIterator(t *testing.T) {
	it := seq.Of(1, 2, 3).Iterator()
	if it.Len() != 3 {
		t.Fatalf("Len = %d, want 3", it.Len())
	}
	var got []int
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("iteration gave %v", got)
	}
	if _, ok := it.Next(); ok {
		t.Error("Next after exhaustion should report false")
	}

	if !it.Seek(0) {
		t.Error("Seek(0) should succeed")
	}
	if v, ok := it.Next(); !ok || v != 2 {
		t.Errorf("Next after Seek(0) = (%d, %v), want (2, true)", v, ok)
	}
	if it.Seek(3) {
		t.Error("Seek past the end should fail")
	}
	if it.At(2) != 3 {
		t.Errorf("At(2) = %d, want 3", it.At(2))
	}
}

func TestSeqIterator(t *testing.T) {
	it := seq.Iter[int](seq.Of(4, 5))
	if it.Len() != 2 {
		t.Fatalf("Len = %d, want 2", it.Len())
	}
	v, ok := it.Next()
	if !ok || v != 4 {
		t.Fatalf("first Next = (%d, %v)", v, ok)
	}
	v, ok = it.Next()
	if !ok || v != 5 {
		t.Fatalf("second Next = (%d, %v)", v, ok)
	}
	if _, ok = it.Next(); ok {
		t.Error("Next after exhaustion should report false")
	}
}
