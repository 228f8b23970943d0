// Package optional provides a value-or-nothing container for terminal
// operations that may not produce a result.
package optional

// Optional holds either a value of type T or nothing.
// The zero value is None.
type Optional[T any] struct {
	value T
	some  bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, some: true}
}

// None returns the empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the contained value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.some
}

// IsNone reports whether o is empty.
func (o Optional[T]) IsNone() bool {
	return !o.some
}

// MustGet returns the contained value, panicking when o is empty.
func (o Optional[T]) MustGet() T {
	if !o.some {
		panic("optional: MustGet on None")
	}
	return o.value
}

// OrElse returns the contained value, or fallback when o is empty.
func (o Optional[T]) OrElse(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// Filter returns o when it holds a value satisfying p, None otherwise.
func (o Optional[T]) Filter(p func(T) bool) Optional[T] {
	if o.some && p(o.value) {
		return o
	}
	return Optional[T]{}
}

// Map applies f to the contained value, propagating None.
func Map[T, U any](o Optional[T], f func(T) U) Optional[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}
