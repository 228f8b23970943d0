// Package seq provides a generic sequence abstraction (direct positional
// access plus size query) and in-place ordering operations over it.
package seq

// Sequence is the capability set required by the ordering operations:
// a finite container with a size query and direct positional access.
// Implementations with n elements index positions 0 through n-1.
type Sequence[T any] interface {
	Len() int
	At(i int) T
	Set(i int, v T)
	Swap(i, j int)
}

// Slice adapts a Go slice to Sequence.
type Slice[T any] []T

func (s Slice[T]) Len() int       { return len(s) }
func (s Slice[T]) At(i int) T     { return s[i] }
func (s Slice[T]) Set(i int, v T) { s[i] = v }
func (s Slice[T]) Swap(i, j int)  { s[i], s[j] = s[j], s[i] }

// Of builds a Slice from its arguments.
func Of[T any](elems ...T) Slice[T] {
	return Slice[T](elems)
}

// Collect copies the elements of s into a new Go slice.
func Collect[T any](s Sequence[T]) []T {
	out := make([]T, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// Reverse reverses s in place.
func Reverse[T any](s Sequence[T]) {
	for i, j := 0, s.Len()-1; i < j; i, j = i+1, j-1 {
		s.Swap(i, j)
	}
}
