package constraint_test

import (
	"math/rand/v2"
	"testing"

	"github.com/kabu1204/go-seq/constraint"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b int
		want int
	}{
		{1, 2, -1},
		{2, 1, +1},
		{3, 3, 0},
		{-5, 5, -1},
	}
	for _, c := range cases {
		if got := constraint.Compare(c.a, c.b); got != c.want {
			t.Errorf("Compare(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
	if constraint.Compare("apple", "banana") != -1 {
		t.Error("Compare should order strings lexicographically")
	}
	if constraint.Compare(1.5, 1.25) != 1 {
		t.Error("Compare should order floats")
	}
}

func TestLess(t *testing.T) {
	if !constraint.Less(1, 2) {
		t.Error("Less(1, 2) should be true")
	}
	if constraint.Less(2, 2) {
		t.Error("Less(2, 2) should be false")
	}
	if constraint.Less("b", "a") {
		t.Error(`Less("b", "a") should be false`)
	}
}

type version struct {
	major, minor int
}

func (v version) Compare(other version) int {
	if c := constraint.Compare(v.major, other.major); c != 0 {
		return c
	}
	return constraint.Compare(v.minor, other.minor)
}

func TestBy(t *testing.T) {
	cmp := constraint.By[version]()
	if cmp(version{1, 2}, version{1, 10}) >= 0 {
		t.Error("By should delegate to the Compare method")
	}
	if cmp(version{2, 0}, version{1, 10}) <= 0 {
		t.Error("By should order by major version first")
	}
	if cmp(version{1, 2}, version{1, 2}) != 0 {
		t.Error("By should report equal versions as equivalent")
	}
}

type byLength string

func (s byLength) Less(other byLength) bool { return len(s) < len(other) }

func TestByLess(t *testing.T) {
	cmp := constraint.ByLess[byLength]()
	if cmp("ab", "abcd") >= 0 {
		t.Error("ByLess should report shorter string first")
	}
	if cmp("abcd", "ab") <= 0 {
		t.Error("ByLess should report longer string last")
	}
	if cmp("ab", "cd") != 0 {
		t.Error("ByLess should report equal lengths as equivalent")
	}
}

func TestReverse(t *testing.T) {
	rev := constraint.Reverse(constraint.Compare[int])
	if rev(1, 2) <= 0 {
		t.Error("Reverse should invert the order")
	}
	if rev(2, 2) != 0 {
		t.Error("Reverse should keep equivalence")
	}
}

// TestPropertyReverseInvolution: Reverse(Reverse(cmp)) behaves as cmp.
func TestPropertyReverseInvolution(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	cmp := constraint.Compare[int]
	twice := constraint.Reverse(constraint.Reverse(cmp))
	for range 1000 {
		a, b := rng.IntN(100), rng.IntN(100)
		if cmp(a, b) != twice(a, b) {
			t.Fatalf("Reverse is not an involution at (%d, %d)", a, b)
		}
	}
}

// TestPropertyCompareTotalOrder: antisymmetry and transitivity of Compare.
func TestPropertyCompareTotalOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 1000 {
		a, b, c := rng.IntN(20), rng.IntN(20), rng.IntN(20)
		if constraint.Compare(a, b) != -constraint.Compare(b, a) {
			t.Fatalf("antisymmetry violated at (%d, %d)", a, b)
		}
		if constraint.Compare(a, b) <= 0 && constraint.Compare(b, c) <= 0 {
			if constraint.Compare(a, c) > 0 {
				t.Fatalf("transitivity violated at (%d, %d, %d)", a, b, c)
			}
		}
	}
}

func TestMinMax(t *testing.T) {
	if constraint.Min(3, 5) != 3 || constraint.Min(5, 3) != 3 {
		t.Error("Min should return the smaller value")
	}
	if constraint.Max(3, 5) != 5 || constraint.Max(5, 3) != 5 {
		t.Error("Max should return the larger value")
	}
	if constraint.Min("a", "b") != "a" {
		t.Error("Min should work on strings")
	}
}

func TestClamp(t *testing.T) {
	if got := constraint.Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, want 5", got)
	}
	if got := constraint.Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %d, want 0", got)
	}
	if got := constraint.Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11, 0, 10) = %d, want 10", got)
	}
}

func TestClampPanicsOnInvertedBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Clamp should panic when lo > hi")
		}
	}()
	constraint.Clamp(1, 10, 0)
}
