package stream

import (
	"github.com/kabu1204/go-seq/seq"
)

// boxedSource adapts a typed slice to the untyped pipeline source.
type boxedSource struct {
	index int
	elems []any
}

func (it *boxedSource) next() (any, bool) {
	if it.index < len(it.elems)-1 {
		it.index++
		return it.elems[it.index], true
	}
	return nil, false
}

func (it *boxedSource) length() int {
	return len(it.elems)
}

func newSource[T any](elems []T) *boxedSource {
	boxed := make([]any, len(elems))
	for i, e := range elems {
		boxed[i] = e
	}
	return &boxedSource{index: -1, elems: boxed}
}

func fromSource[T any](src iterator, name string) Stream[T] {
	return wrap[T](&pipe{
		source:  src,
		prev:    nil,
		wrapper: defaultWrapper,
		name:    name,
	})
}

// Of builds a stream from its arguments.
func Of[T any](elems ...T) Stream[T] {
	return fromSource[T](newSource(elems), "Of")
}

// FromSlice builds a stream over a slice. Elements are captured when the
// stream is constructed, not when the terminal operation runs.
func FromSlice[T any](elems []T) Stream[T] {
	return fromSource[T](newSource(elems), "FromSlice")
}

// FromSeq builds a stream over any Sequence.
func FromSeq[T any](s seq.Sequence[T]) Stream[T] {
	return fromSource[T](&seqSource[T]{it: seq.Iter(s)}, "FromSeq")
}

type seqSource[T any] struct {
	it seq.Iterator[T]
}

func (s *seqSource[T]) next() (any, bool) {
	v, ok := s.it.Next()
	if !ok {
		return nil, false
	}
	return v, true
}

func (s *seqSource[T]) length() int {
	return s.it.Len()
}
