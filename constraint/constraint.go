// Package constraint defines the capability sets used by go-seq generics:
// type-set constraints over the predeclared ordered types, method
// constraints for user types, and the Comparator function type that the
// rest of the library accepts wherever a custom order is needed.
package constraint

type (
	// Comparator compares two values and returns a negative number when
	// a sorts before b, zero when they are equivalent, and a positive
	// number when a sorts after b.
	Comparator[T any] func(a, b T) int

	// Predicate reports whether a value satisfies some condition.
	Predicate[T any] func(T) bool

	// Consumer accepts a value and returns nothing.
	Consumer[T any] func(T)

	// BinaryOperator combines two values of the same type into one.
	BinaryOperator[T any] func(a, b T) T

	// HashFunction maps a value to a hash key.
	HashFunction[T any] func(T) uint64
)

// Signed is a constraint that permits any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
// Note that NaN breaks the total order: sorting float sequences that
// contain NaN gives an unspecified (but terminating) element order.
type Float interface {
	~float32 | ~float64
}

// Ordered is a constraint that permits any type whose values are ordered
// by the < <= >= > operators as a total order.
type Ordered interface {
	Integer | Float | ~string
}

// Comparable is a constraint for types that order themselves through a
// Compare method following the usual negative/zero/positive contract.
type Comparable[T any] interface {
	Compare(other T) int
}

// Lesser is a constraint for types that order themselves through a
// strict-weak Less method.
type Lesser[T any] interface {
	Less(other T) bool
}
