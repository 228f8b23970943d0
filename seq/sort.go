package seq

import (
	"math/bits"

	"github.com/kabu1204/go-seq/constraint"
)

// insertionCutoff is the partition size below which introSort switches to
// insertion sort.
const insertionCutoff = 12

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[T constraint.Ordered](s Sequence[T]) bool {
	return IsSortedFunc(s, constraint.Compare[T])
}

// IsSortedFunc reports whether s is in non-decreasing order under cmp.
func IsSortedFunc[T any](s Sequence[T], cmp constraint.Comparator[T]) bool {
	for i := s.Len() - 1; i > 0; i-- {
		if cmp(s.At(i), s.At(i-1)) < 0 {
			return false
		}
	}
	return true
}

// Sort reorders s in place into non-decreasing order. A sequence that is
// already ordered is left untouched: the sortedness check runs first and
// no element is written on that path. Otherwise an introspective
// comparison sort runs, O(n log n) on average and in the worst case.
// Sort is not stable; see Stable.
func Sort[T constraint.Ordered](s Sequence[T]) {
	SortFunc(s, constraint.Compare[T])
}

// SortFunc is Sort with the order given by cmp.
func SortFunc[T any](s Sequence[T], cmp constraint.Comparator[T]) {
	if IsSortedFunc(s, cmp) {
		return
	}
	n := s.Len()
	limit := 2 * bits.Len(uint(n))
	introSort(s, 0, n, limit, cmp)
}

// SortSlice sorts a plain Go slice in place.
func SortSlice[T constraint.Ordered](s []T) {
	Sort[T](Slice[T](s))
}

// SortSliceFunc sorts a plain Go slice in place under cmp.
func SortSliceFunc[T any](s []T, cmp constraint.Comparator[T]) {
	SortFunc[T](Slice[T](s), cmp)
}

// Stable reorders s in place into non-decreasing order, preserving the
// relative order of equivalent elements. Like Sort, an already ordered
// sequence is left untouched. Cost is O(n^2) element moves but only
// O(n log n) comparisons (binary insertion).
func Stable[T constraint.Ordered](s Sequence[T]) {
	StableFunc(s, constraint.Compare[T])
}

// StableFunc is Stable with the order given by cmp.
func StableFunc[T any](s Sequence[T], cmp constraint.Comparator[T]) {
	if IsSortedFunc(s, cmp) {
		return
	}
	binaryInsertionSort(s, 0, s.Len(), cmp)
}

// Search locates target in a sequence sorted under cmp. It returns the
// smallest index at which target could be inserted while keeping s sorted,
// and whether an equivalent element is already present at that index.
func Search[T any](s Sequence[T], target T, cmp constraint.Comparator[T]) (int, bool) {
	lo, hi := 0, s.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(s.At(mid), target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	found := lo < s.Len() && cmp(s.At(lo), target) == 0
	return lo, found
}

// Min returns the smallest element of s, or false if s is empty.
func Min[T constraint.Ordered](s Sequence[T]) (T, bool) {
	return MinFunc(s, constraint.Compare[T])
}

// MinFunc returns the smallest element of s under cmp, or false if s is
// empty. Among equivalent elements the first one wins.
func MinFunc[T any](s Sequence[T], cmp constraint.Comparator[T]) (T, bool) {
	if s.Len() == 0 {
		var zero T
		return zero, false
	}
	m := s.At(0)
	for i := 1; i < s.Len(); i++ {
		if v := s.At(i); cmp(v, m) < 0 {
			m = v
		}
	}
	return m, true
}

// Max returns the largest element of s, or false if s is empty.
func Max[T constraint.Ordered](s Sequence[T]) (T, bool) {
	return MaxFunc(s, constraint.Compare[T])
}

// MaxFunc returns the largest element of s under cmp, or false if s is
// empty. Among equivalent elements the first one wins.
func MaxFunc[T any](s Sequence[T], cmp constraint.Comparator[T]) (T, bool) {
	if s.Len() == 0 {
		var zero T
		return zero, false
	}
	m := s.At(0)
	for i := 1; i < s.Len(); i++ {
		if v := s.At(i); cmp(v, m) > 0 {
			m = v
		}
	}
	return m, true
}

// introSort sorts s[lo:hi). limit bounds the quicksort recursion depth;
// once exhausted, the partition falls back to heapsort.
func introSort[T any](s Sequence[T], lo, hi, limit int, cmp constraint.Comparator[T]) {
	for hi-lo > insertionCutoff {
		if limit == 0 {
			heapSort(s, lo, hi, cmp)
			return
		}
		limit--
		p := partition(s, lo, hi, cmp)
		// Recurse into the smaller side, loop on the larger.
		if p-lo < hi-p-1 {
			introSort(s, lo, p, limit, cmp)
			lo = p + 1
		} else {
			introSort(s, p+1, hi, limit, cmp)
			hi = p
		}
	}
	insertionSort(s, lo, hi, cmp)
}

// partition partitions s[lo:hi) around a median-of-three pivot and returns
// the pivot's final index.
func partition[T any](s Sequence[T], lo, hi int, cmp constraint.Comparator[T]) int {
	mid := int(uint(lo+hi) >> 1)
	medianOfThree(s, lo, mid, hi-1, cmp)
	// Median now at lo; use it as the pivot.
	pivot := s.At(lo)
	i, j := lo, hi-1
	for {
		for i < j && cmp(s.At(j), pivot) >= 0 {
			j--
		}
		for i < j && cmp(s.At(i), pivot) <= 0 {
			i++
		}
		if i >= j {
			break
		}
		s.Swap(i, j)
	}
	s.Swap(lo, j)
	return j
}

// medianOfThree moves the median of s[a], s[b], s[c] into s[a].
func medianOfThree[T any](s Sequence[T], a, b, c int, cmp constraint.Comparator[T]) {
	if cmp(s.At(b), s.At(a)) < 0 {
		s.Swap(a, b)
	}
	if cmp(s.At(c), s.At(b)) < 0 {
		s.Swap(b, c)
		if cmp(s.At(b), s.At(a)) < 0 {
			s.Swap(a, b)
		}
	}
	s.Swap(a, b)
}

func insertionSort[T any](s Sequence[T], lo, hi int, cmp constraint.Comparator[T]) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && cmp(s.At(j), s.At(j-1)) < 0; j-- {
			s.Swap(j, j-1)
		}
	}
}

// binaryInsertionSort is insertionSort with a binary search for the
// insertion point, keeping comparisons at O(n log n). Moves stay O(n^2).
func binaryInsertionSort[T any](s Sequence[T], lo, hi int, cmp constraint.Comparator[T]) {
	for i := lo + 1; i < hi; i++ {
		v := s.At(i)
		a, b := lo, i
		for a < b {
			m := int(uint(a+b) >> 1)
			if cmp(v, s.At(m)) < 0 {
				b = m
			} else {
				a = m + 1
			}
		}
		for j := i; j > a; j-- {
			s.Set(j, s.At(j-1))
		}
		s.Set(a, v)
	}
}

// heapSort sorts s[lo:hi) with a max-heap. O(n log n) worst case,
// used as the introSort depth-limit fallback.
func heapSort[T any](s Sequence[T], lo, hi int, cmp constraint.Comparator[T]) {
	n := hi - lo
	for root := n/2 - 1; root >= 0; root-- {
		siftDown(s, lo, root, n, cmp)
	}
	for end := n - 1; end > 0; end-- {
		s.Swap(lo, lo+end)
		siftDown(s, lo, 0, end, cmp)
	}
}

func siftDown[T any](s Sequence[T], lo, root, n int, cmp constraint.Comparator[T]) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && cmp(s.At(lo+child), s.At(lo+child+1)) < 0 {
			child++
		}
		if cmp(s.At(lo+root), s.At(lo+child)) >= 0 {
			return
		}
		s.Swap(lo+root, lo+child)
		root = child
	}
}
