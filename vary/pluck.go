// SPDX-License-Identifier: MIT
// Package: varygen/vary
//
// pluck.go — uniform selection of one or many elements from a
// candidate set.
//
// Contract:
//   - Pluck over an empty set is a programmer error (ErrNoCandidates):
//     "give me one" has no sensible empty answer.
//   - PluckMany* over an empty set returns an empty result: "give me
//     some" does have one.
//   - The selected count is bounded below by count.Low (clamped to the
//     set size — the intended contract, not a silent fallback) and
//     above by both the set size and count.High.
//   - The result is a prefix of a shuffled copy; its order carries no
//     meaning, and the input slice is never mutated.

package vary

import (
	"fmt"

	"github.com/katalvlaran/varygen/randx"
)

// Method tags for error context.
const (
	methodPluck     = "Pluck"
	methodPluckMany = "PluckMany"
)

// Pluck returns one element chosen uniformly at random from candidates.
// Returns ErrNoCandidates when candidates is empty.
// Complexity: O(1) time, O(1) space.
func Pluck[T any](candidates []T, opts ...Option) (T, error) {
	if len(candidates) == 0 {
		var zero T

		return zero, fmt.Errorf("%s: %w", methodPluck, ErrNoCandidates)
	}

	cfg := newConfig(opts...)

	return candidates[cfg.src.Intn(len(candidates))], nil
}

// PluckMany returns a random-size, random-subset, randomly-ordered
// selection from candidates, with size ranging over the full span from
// empty to all elements. Sugar for PluckManyRange over
// [0, len(candidates)].
func PluckMany[T any](candidates []T, opts ...Option) ([]T, error) {
	return PluckManyRange(randx.IntRange{Low: 0, High: len(candidates)}, candidates, opts...)
}

// PluckManyRange selects between count.Low and count.High elements from
// candidates (both bounds additionally clamped to the candidate-set
// size), uniformly and without replacement of positions. An empty
// candidate set yields an empty result unconditionally; a [0,0] count
// always yields an empty result.
//
// Errors:
//   - randx.ErrInvalidRange — malformed count (Low < 0 or Low > High),
//     raised before any randomness.
//
// Complexity: O(n) time and space for n = len(candidates).
func PluckManyRange[T any](count randx.IntRange, candidates []T, opts ...Option) ([]T, error) {
	// 1) Fail fast on a malformed count range.
	if count.Low < 0 || count.Low > count.High {
		return nil, fmt.Errorf("%s: count [%d,%d]: %w", methodPluckMany, count.Low, count.High, randx.ErrInvalidRange)
	}

	// 2) Emptiness is a valid "no result" case here, never a failure.
	n := len(candidates)
	if n == 0 {
		return []T{}, nil
	}

	cfg := newConfig(opts...)

	// 3) Draw the selection size: lower bound clamped to the set size
	// (never request more elements than exist), upper bound the set size.
	low := min(count.Low, n)
	end, err := cfg.src.IntBetween(low, n)
	if err != nil {
		// Unreachable after step 1 (low <= n by construction); kept so a
		// future contract change cannot fail silently.
		return nil, fmt.Errorf("%s: %w", methodPluckMany, err)
	}

	// 4) Clamp the size down to count.High unconditionally, so [0,0]
	// and any narrow count range are honored exactly.
	if end > count.High {
		end = count.High
	}

	// 5) Shuffle a copy and take the first end elements; the caller's
	// slice stays untouched.
	picked := make([]T, n)
	copy(picked, candidates)
	cfg.src.Shuffle(n, func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	return picked[:end], nil
}
