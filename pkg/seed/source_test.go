package seed

import (
	"testing"
	"time"
)

func TestNewDeterministic(t *testing.T) {
	for _, s := range []string{"", "2024-01-01", "abc", "ünïcødé 🌸"} {
		a, b := New(s), New(s)
		for i := range 200 {
			x, y := a.Float64(), b.Float64()
			if x != y {
				t.Fatalf("seed %q draw %d: %v != %v", s, i, x, y)
			}
		}
	}
}

func TestFloat64Range(t *testing.T) {
	src := New("range")
	for range 10000 {
		f := src.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, want [0,1)", f)
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a, b := New("abc"), New("abd")
	same := 0
	for range 32 {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same == 32 {
		t.Error("sources for different seeds produced identical sequences")
	}
}

func TestIntn(t *testing.T) {
	src := New("intn")
	seen := make(map[int]bool)
	for range 1000 {
		n := src.Intn(3)
		if n < 0 || n >= 3 {
			t.Fatalf("Intn(3) = %d", n)
		}
		seen[n] = true
	}
	if len(seen) != 3 {
		t.Errorf("Intn(3) covered %d values, want 3", len(seen))
	}
	if got := src.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d, want 0", got)
	}
}

func TestRangeAndJitter(t *testing.T) {
	src := New("bands")
	for range 1000 {
		if v := src.Range(130, 170); v < 130 || v >= 170 {
			t.Fatalf("Range(130,170) = %v", v)
		}
		if v := src.Jitter(20); v < -10 || v >= 10 {
			t.Fatalf("Jitter(20) = %v", v)
		}
	}
}

func TestWeighted(t *testing.T) {
	src := New("weights")
	counts := make([]int, 3)
	for range 3000 {
		counts[Weighted(src, []float64{1, 0, 3})]++
	}
	if counts[1] != 0 {
		t.Errorf("zero weight chosen %d times", counts[1])
	}
	if counts[2] <= counts[0] {
		t.Errorf("heavier weight chosen less often: %v", counts)
	}
	if got := Weighted(src, []float64{0, 0}); got != 0 {
		t.Errorf("Weighted(all zero) = %d, want 0", got)
	}
}

func TestSubNoCollisions(t *testing.T) {
	seen := make(map[string]string)
	for _, tag := range []string{"f", "f1", "bloom", "bug", "lady"} {
		for i := range 40 {
			s := Sub("base", tag, i)
			if prev, ok := seen[s]; ok {
				t.Fatalf("Sub collision: %q from %s and %s#%d", s, prev, tag, i)
			}
			seen[s] = tag
		}
	}
	if Salt("x", "palette") == Salt("x", "layout") {
		t.Error("different tags produced the same salt")
	}
}

func TestForDate(t *testing.T) {
	loc := time.FixedZone("test", -6*3600)
	tm := time.Date(2024, 1, 1, 23, 30, 0, 0, loc)
	if got := ForDate(tm); got != "2024-01-01" {
		t.Errorf("ForDate() = %q, want 2024-01-01", got)
	}
}

func TestRandomUnique(t *testing.T) {
	if Random() == Random() {
		t.Error("Random() returned the same token twice")
	}
}
