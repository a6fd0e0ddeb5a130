// Package dice provides the uniform random integer source used by map
// generation, monster AI and player teleports.
package dice

import (
	"math/rand"
	"time"
)

// Roller draws uniform integers. Range returns a value in [lo, hi); when
// hi <= lo it returns lo.
type Roller interface {
	Range(lo, hi int) int
}

// Rand is a Roller backed by math/rand.
type Rand struct {
	rng  *rand.Rand
	seed int64
}

// New creates a Rand from seed. A seed of 0 means a time-based seed is used.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the generator was created with.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Range returns a uniform integer in [lo, hi).
func (r *Rand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo)
}

// Sequence is a scripted Roller for tests. Each call to Range returns the next
// queued value clamped into [lo, hi); once the queue is exhausted it returns lo.
type Sequence struct {
	values []int
	calls  int
}

// NewSequence returns a Sequence that yields values in order.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Range returns the next scripted value clamped into [lo, hi).
func (s *Sequence) Range(lo, hi int) int {
	s.calls++
	if hi <= lo || len(s.values) == 0 {
		return lo
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v < lo {
		return lo
	}
	if v >= hi {
		return hi - 1
	}
	return v
}

// Calls reports how many times Range has been called.
func (s *Sequence) Calls() int {
	return s.calls
}

var (
	_ Roller = (*Rand)(nil)
	_ Roller = (*Sequence)(nil)
)
