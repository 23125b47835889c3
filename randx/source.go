// SPDX-License-Identifier: MIT
// Package: varygen/randx
//
// source.go — the explicit random-source handle.
//
// Design:
//   • Source wraps *rand.Rand behind a mutex: one instance is safe to
//     share across goroutines, each draw is a single critical section.
//   • No hidden globals in the draw paths: every primitive is a method
//     on a Source. Default() is the single, lazily created convenience
//     instance for casual use (process lifetime, never torn down).
//   • NewSource remembers its seed so a failing test can log Seed() and
//     be replayed with the same sequence.
//
// AI-Hints:
//   • Inject NewSource(seed) in tests for reproducible fixtures; reserve
//     Default() for callers that do not care about replay.
//   • NewSourceFrom panics on nil — constructor validation panics are
//     allowed, draw methods never panic (except the math/rand Intn
//     contract, kept verbatim).

package randx

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

// Source is a mutex-guarded pseudo-random source. The zero value is not
// usable; construct via NewSource, NewSourceFrom or Default.
type Source struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed int64
}

// NewSource returns a Source seeded deterministically with seed.
// Same seed ⇒ identical draw sequence; use in tests to lock outcomes.
// Complexity: O(1) time, O(1) space.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// NewSourceFrom wraps an existing *rand.Rand. The caller keeps seed
// bookkeeping; Seed() reports 0 for such sources. Panics on nil to
// surface the programmer error early.
// Complexity: O(1) time, O(1) space.
func NewSourceFrom(r *rand.Rand) *Source {
	if r == nil {
		panic("randx: NewSourceFrom(nil)")
	}

	return &Source{rng: r}
}

// Seed returns the seed this Source was created with, or 0 for sources
// built via NewSourceFrom. Log it on test failure to replay the run.
func (s *Source) Seed() int64 { return s.seed }

var (
	defaultOnce sync.Once
	defaultSrc  *Source
)

// Default returns the process-wide convenience Source, created once on
// first use and seeded from crypto/rand (time-based fallback if the
// system entropy read fails). It lives for the process lifetime.
func Default() *Source {
	defaultOnce.Do(func() {
		defaultSrc = NewSource(entropySeed())
	})

	return defaultSrc
}

// entropySeed draws 8 bytes of system entropy for the default seed.
func entropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}

	return int64(binary.LittleEndian.Uint64(b[:]))
}

// Intn returns a uniform int in [0, n). It panics if n <= 0, exactly
// like (*rand.Rand).Intn — selection helpers rely on this contract.
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Intn(n)
}

// Shuffle pseudo-randomizes the order of n elements under the lock,
// delegating to (*rand.Rand).Shuffle. swap exchanges elements i and j.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rng.Shuffle(n, swap)
}

// int63 draws a uniform non-negative int64 under the lock.
func (s *Source) int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Int63()
}

// int63n draws a uniform int64 in [0, n) under the lock; n must be > 0.
func (s *Source) int63n(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Int63n(n)
}

// fill overwrites b with alphabet characters in one critical section,
// so a whole string draw costs a single lock acquisition.
func (s *Source) fill(b []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range b {
		b[i] = alphabet[s.rng.Intn(len(alphabet))]
	}
}
