package constraint

// Compare orders two values of any Ordered type, returning -1, 0 or +1.
// Compare[T] itself satisfies Comparator[T].
func Compare[T Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Less reports whether a sorts strictly before b.
func Less[T Ordered](a, b T) bool { return a < b }

// By lifts the Compare method of a Comparable type into a Comparator.
func By[T Comparable[T]]() Comparator[T] {
	return func(a, b T) int { return a.Compare(b) }
}

// ByLess lifts the Less method of a Lesser type into a Comparator.
func ByLess[T Lesser[T]]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return +1
		default:
			return 0
		}
	}
}

// Reverse returns a comparator imposing the opposite order of cmp.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int { return cmp(b, a) }
}

// Min returns the smaller of a and b.
func Min[T Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to the closed interval [lo, hi].
// Clamp panics if lo > hi.
func Clamp[T Ordered](v, lo, hi T) T {
	if lo > hi {
		panic("constraint: Clamp with lo > hi")
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
