package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is the randomness every generator draws from. Tests inject a seeded
// source to make generated data reproducible.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

// LockedSource is a seedable PCG source safe for concurrent use.
type LockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a source seeded with seed. A zero seed picks one from the clock.
func New(seed uint64) *LockedSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &LockedSource{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *LockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.IntN(n)
}

func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.Float64()
}

// Between returns a uniform int in [min, max].
func Between(src Source, min, max int) int {
	return min + src.IntN(max-min+1)
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Code returns n uppercase alphanumeric characters.
func Code(src Source, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[src.IntN(len(alphanumeric))]
	}

	return string(b)
}
