package seq

// Iterator yields the elements of a sequence in order.
type Iterator[T any] interface {
	Next() (T, bool)
	Len() int
}

type sliceIterator[T any] struct {
	index int
	slice Slice[T]
}

func (s Slice[T]) Iterator() *sliceIterator[T] {
	return &sliceIterator[T]{
		index: -1,
		slice: s,
	}
}

func (it *sliceIterator[T]) hasNext() bool {
	return it.index < len(it.slice)-1
}

func (it *sliceIterator[T]) Next() (T, bool) {
	if it.hasNext() {
		it.index++
		return it.slice[it.index], true
	}
	var zero T
	return zero, false
}

func (it *sliceIterator[T]) Len() int {
	return len(it.slice)
}

func (it *sliceIterator[T]) At(i int) T {
	return it.slice[i]
}

func (it *sliceIterator[T]) Seek(i int) bool {
	if i < 0 || i >= len(it.slice) {
		return false
	}
	it.index = i
	return true
}

type seqIterator[T any] struct {
	index int
	seq   Sequence[T]
}

// Iter returns an Iterator over any Sequence.
func Iter[T any](s Sequence[T]) Iterator[T] {
	return &seqIterator[T]{index: -1, seq: s}
}

func (it *seqIterator[T]) Next() (T, bool) {
	if it.index < it.seq.Len()-1 {
		it.index++
		return it.seq.At(it.index), true
	}
	var zero T
	return zero, false
}

func (it *seqIterator[T]) Len() int {
	return it.seq.Len()
}
