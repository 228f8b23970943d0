// Package stream provides a lazy, composable pipeline over sequences.
// Stages are recorded until a terminal operation drives the source through
// the chain; a stream is single-use. Parallel fans stage execution out
// onto a goroutine pool, Sorted re-serializes the pipeline unless told to
// keep it parallel.
package stream

import (
	"github.com/kabu1204/go-seq/constraint"
	"github.com/kabu1204/go-seq/optional"
	"github.com/kabu1204/go-seq/seq"
)

type Stream[T any] interface {
	// stateless (nothing to do with elements order)
	Filter(p constraint.Predicate[T]) Stream[T]
	Map(f func(T) T) Stream[T]
	Peek(f constraint.Consumer[T]) Stream[T]

	Parallel(n int) Stream[T]

	// stateful (elements order matters)
	Distinct(hash constraint.HashFunction[T]) Stream[T]               // first occurrence wins
	Sorted(cmp constraint.Comparator[T], keepParallel bool) Stream[T] // non-stable
	Limit(n int64) Stream[T]                                          // first n elems
	Skip(n int64) Stream[T]                                           // skip first n elems

	// terminal
	ForEach(f constraint.Consumer[T])
	ToSlice() []T
	AllMatch(p constraint.Predicate[T]) bool
	AnyMatch(p constraint.Predicate[T]) bool
	NoneMatch(p constraint.Predicate[T]) bool
	Reduce(acc constraint.BinaryOperator[T]) optional.Optional[T]
	ReduceFrom(init T, acc constraint.BinaryOperator[T]) T
	FindFirst() optional.Optional[T]
	FindFirstMatch(p constraint.Predicate[T]) optional.Optional[T]
	Count() int64

	pipeline() *pipe
}

// typed is the Stream facade over the untyped pipe chain. Elements cross
// the boundary boxed as any and are asserted back to T inside each stage.
type typed[T any] struct {
	p *pipe
}

func wrap[T any](p *pipe) Stream[T] {
	return &typed[T]{p: p}
}

func (s *typed[T]) pipeline() *pipe { return s.p }

func (s *typed[T]) Filter(p constraint.Predicate[T]) Stream[T] {
	return wrap[T](s.p.filter(func(e any) bool { return p(e.(T)) }))
}

func (s *typed[T]) Map(f func(T) T) Stream[T] {
	return wrap[T](s.p.mapped(func(e any) any { return f(e.(T)) }))
}

func (s *typed[T]) Peek(f constraint.Consumer[T]) Stream[T] {
	return wrap[T](s.p.peek(func(e any) { f(e.(T)) }))
}

func (s *typed[T]) Parallel(n int) Stream[T] {
	return wrap[T](s.p.parallelize(n))
}

func (s *typed[T]) Distinct(hash constraint.HashFunction[T]) Stream[T] {
	return wrap[T](s.p.distinct(func(e any) uint64 { return hash(e.(T)) }))
}

func (s *typed[T]) Sorted(cmp constraint.Comparator[T], keepParallel bool) Stream[T] {
	return wrap[T](s.p.sorted(func(a, b any) int { return cmp(a.(T), b.(T)) }, keepParallel))
}

func (s *typed[T]) Limit(n int64) Stream[T] {
	return wrap[T](s.p.limit(n))
}

func (s *typed[T]) Skip(n int64) Stream[T] {
	return wrap[T](s.p.skip(n))
}

func (s *typed[T]) ForEach(f constraint.Consumer[T]) {
	s.p.forEach(func(e any) { f(e.(T)) })
}

func (s *typed[T]) ToSlice() []T {
	boxed := s.p.toSlice()
	out := make([]T, len(boxed))
	for i, e := range boxed {
		out[i] = e.(T)
	}
	return out
}

func (s *typed[T]) AllMatch(p constraint.Predicate[T]) bool {
	return s.p.allMatch(func(e any) bool { return p(e.(T)) })
}

func (s *typed[T]) AnyMatch(p constraint.Predicate[T]) bool {
	return s.p.anyMatch(func(e any) bool { return p(e.(T)) })
}

func (s *typed[T]) NoneMatch(p constraint.Predicate[T]) bool {
	return !s.p.anyMatch(func(e any) bool { return p(e.(T)) })
}

func (s *typed[T]) Reduce(acc constraint.BinaryOperator[T]) optional.Optional[T] {
	v, ok := s.p.reduce(func(a, b any) any { return acc(a.(T), b.(T)) })
	if !ok {
		return optional.None[T]()
	}
	return optional.Some(v.(T))
}

func (s *typed[T]) ReduceFrom(init T, acc constraint.BinaryOperator[T]) T {
	return s.p.reduceFrom(init, func(a, b any) any { return acc(a.(T), b.(T)) }).(T)
}

func (s *typed[T]) FindFirst() optional.Optional[T] {
	v, ok := s.p.findFirst()
	if !ok {
		return optional.None[T]()
	}
	return optional.Some(v.(T))
}

func (s *typed[T]) FindFirstMatch(p constraint.Predicate[T]) optional.Optional[T] {
	v, ok := s.p.findFirstMatch(func(e any) bool { return p(e.(T)) })
	if !ok {
		return optional.None[T]()
	}
	return optional.Some(v.(T))
}

func (s *typed[T]) Count() int64 {
	return s.p.count()
}

// MapTo transforms a Stream[T] into a Stream[U]. Type-changing maps live
// outside the Stream interface because Go methods cannot introduce new
// type parameters.
func MapTo[T, U any](s Stream[T], f func(T) U) Stream[U] {
	p := s.pipeline()
	wrapper := func(next *pipe) []Option {
		consumer := func(e any) {
			next.consumeOne(f(e.(T)))
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return wrap[U](newPipe(p, wrapper, "MapTo"))
}

// FlatMap substitutes each element with the elements of a derived stream.
func FlatMap[T, U any](s Stream[T], f func(T) Stream[U]) Stream[U] {
	p := s.pipeline()
	wrapper := func(next *pipe) []Option {
		consumer := func(e any) {
			f(e.(T)).ForEach(func(u U) { next.consumeOne(u) })
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return wrap[U](newPipe(p, wrapper, "FlatMap"))
}

// ReduceWith folds the stream into an accumulator of a different type.
func ReduceWith[T, R any](s Stream[T], init R, acc func(R, T) R) R {
	result := init
	wrapper := func(next *pipe) []Option {
		consumer := func(e any) {
			result = acc(result, e.(T))
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newPipe(s.pipeline(), wrapper, "ReduceWith").terminate()
	return result
}

// Collect materializes the stream as a seq.Slice.
func Collect[T any](s Stream[T]) seq.Slice[T] {
	return seq.Slice[T](s.ToSlice())
}

// MinOf returns the smallest element under cmp, None on an empty stream.
// Among equivalent elements the first one wins.
func MinOf[T any](s Stream[T], cmp constraint.Comparator[T]) optional.Optional[T] {
	return s.Reduce(func(a, b T) T {
		if cmp(b, a) < 0 {
			return b
		}
		return a
	})
}

// MaxOf returns the largest element under cmp, None on an empty stream.
// Among equivalent elements the first one wins.
func MaxOf[T any](s Stream[T], cmp constraint.Comparator[T]) optional.Optional[T] {
	return s.Reduce(func(a, b T) T {
		if cmp(b, a) > 0 {
			return b
		}
		return a
	})
}
