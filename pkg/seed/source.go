package seed

import (
	"hash/fnv"
	"math"
	"math/rand/v2"
)

// Source is a deterministic float stream bound to one seed string.
// A Source is not safe for concurrent use; create one per concern instead.
type Source struct {
	seed string
	rng  *rand.Rand
}

// New creates a Source for s. Sources created from equal strings produce
// identical sequences.
func New(s string) *Source {
	h := hash(s)
	return &Source{
		seed: s,
		rng:  rand.New(rand.NewPCG(h, splitmix64(h))),
	}
}

// Seed returns the string the source was created from.
func (s *Source) Seed() string { return s.seed }

// Float64 returns the next float in [0,1).
func (s *Source) Float64() float64 { return s.rng.Float64() }

// Range returns a float in [lo, hi).
func (s *Source) Range(lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}

// Jitter returns a float in [-amount/2, amount/2).
func (s *Source) Jitter(amount float64) float64 {
	return (s.Float64() - 0.5) * amount
}

// Intn returns floor(f*n) for the next float f, so the result is in [0,n).
// It returns 0 when n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return min(int(math.Floor(s.Float64()*float64(n))), n-1)
}

// Chance reports whether the next float falls below p.
func (s *Source) Chance(p float64) bool {
	return s.Float64() < p
}

// Angle returns an angle in [0, 2π).
func (s *Source) Angle() float64 {
	return s.Float64() * 2 * math.Pi
}

// Pick returns a uniformly chosen element of items. It panics on an empty
// slice, since every bank passed to it is a non-empty constant.
func Pick[T any](s *Source, items []T) T {
	return items[s.Intn(len(items))]
}

// Weighted returns the index chosen from weights, consuming one draw.
// Non-positive weights are never chosen unless all weights are non-positive,
// in which case index 0 is returned.
func Weighted(s *Source, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += max(w, 0)
	}
	f := s.Float64()
	if total <= 0 {
		return 0
	}
	target := f * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if target < w {
			return i
		}
		target -= w
	}
	return len(weights) - 1
}

func hash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// splitmix64 derives the PCG increment from the seed hash so that both
// halves of the generator state depend on every byte of the seed.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
