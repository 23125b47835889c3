// SPDX-License-Identifier: MIT
// Package: varygen/randx
//
// bounded.go — uniform scalar draws over inclusive bounds.
//
// Contract:
//   - Bounds are inclusive on both ends; min == max short-circuits to
//     that value with no randomness consumed.
//   - min > max ⇒ ErrInvalidRange, raised before any draw.
//   - The span max-min+1 is computed in uint64 modular arithmetic. When
//     it wraps to zero (full-domain request) or exceeds math.MaxInt64,
//     the draw falls back to a non-negative full-magnitude draw offset
//     by min: uniform over [min, min+math.MaxInt64], a documented
//     reduced-coverage path rather than a silent wrap. In that branch
//     min <= 0 always holds (the span exceeds the non-negative half of
//     the domain), so the offset cannot overflow.
//   - Range forms (IntInRange/Int64InRange) additionally reject a
//     negative Low: those ranges are non-negative by contract.

package randx

import (
	"fmt"
	"math"
)

// Method tags for error context (stable, no magic strings inline).
const (
	methodIntBetween   = "IntBetween"
	methodInt64Between = "Int64Between"
	methodIntInRange   = "IntInRange"
	methodInt64InRange = "Int64InRange"
)

// boolSides is the outcome count of a coin flip.
const boolSides = 2

// Bool returns true or false with equal probability. Never fails.
func (s *Source) Bool() bool {
	return s.Intn(boolSides) == 0
}

// Int returns a uniform draw over the full int domain, i.e. the
// "both bounds omitted" form of IntBetween. The full-domain request
// always takes the documented fallback path.
func (s *Source) Int() int {
	// Full domain is always a valid range; the error branch is dead.
	v, _ := s.IntBetween(math.MinInt, math.MaxInt)

	return v
}

// IntBetween returns a uniform int in [min, max], inclusive.
// Returns ErrInvalidRange when min > max. Pass math.MinInt/math.MaxInt
// for an open lower/upper side.
// Complexity: O(1) time, O(1) space.
func (s *Source) IntBetween(min, max int) (int, error) {
	// 1) Fail fast on inverted bounds, before any randomness.
	if min > max {
		return 0, fmt.Errorf("%s: min=%d > max=%d: %w", methodIntBetween, min, max, ErrInvalidRange)
	}
	// 2) Degenerate range: the only selectable outcome, no draw needed.
	if min == max {
		return min, nil
	}

	// 3) Modular span: wraps to 0 only for the full 64-bit domain.
	span := uint64(int64(max)) - uint64(int64(min)) + 1
	if span == 0 || span > uint64(math.MaxInt64) {
		// Reduced-coverage fallback: offset a full magnitude draw.
		return min + int(s.int63()), nil
	}

	// 4) Exact span fits a positive int64: offset in int64 space so the
	// intermediate sum never exceeds max even on 32-bit ints.
	return int(int64(min) + s.int63n(int64(span))), nil
}

// IntInRange returns a uniform int in r, inclusive. The range form is
// non-negative by contract: Low < 0 or Low > High ⇒ ErrInvalidRange.
// Complexity: O(1) time, O(1) space.
func (s *Source) IntInRange(r IntRange) (int, error) {
	if r.Low < 0 || r.Low > r.High {
		return 0, fmt.Errorf("%s: range [%d,%d]: %w", methodIntInRange, r.Low, r.High, ErrInvalidRange)
	}
	if r.Low == r.High {
		return r.Low, nil
	}

	// Non-negative bounds keep the signed span positive except for the
	// full [0, MaxInt64] request, where it wraps; the magnitude draw
	// covers exactly that domain.
	span := int64(r.High) - int64(r.Low) + 1
	if span <= 0 {
		return int(s.int63()), nil
	}

	return int(int64(r.Low) + s.int63n(span)), nil
}

// Int64 returns a uniform draw over the full int64 domain, i.e. the
// "both bounds omitted" form of Int64Between.
func (s *Source) Int64() int64 {
	v, _ := s.Int64Between(math.MinInt64, math.MaxInt64)

	return v
}

// Int64Between returns a uniform int64 in [min, max], inclusive.
// Same policy as IntBetween; the long domain is wider, so the naive
// span overflows more often and the fallback matters more here.
// Complexity: O(1) time, O(1) space.
func (s *Source) Int64Between(min, max int64) (int64, error) {
	if min > max {
		return 0, fmt.Errorf("%s: min=%d > max=%d: %w", methodInt64Between, min, max, ErrInvalidRange)
	}
	if min == max {
		return min, nil
	}

	span := uint64(max) - uint64(min) + 1
	if span == 0 || span > uint64(math.MaxInt64) {
		// Same reduced-coverage fallback as IntBetween; min <= 0 here.
		return min + s.int63(), nil
	}

	return min + s.int63n(int64(span)), nil
}

// Int64InRange returns a uniform int64 in r, inclusive. Non-negative by
// contract, like IntInRange.
// Complexity: O(1) time, O(1) space.
func (s *Source) Int64InRange(r Int64Range) (int64, error) {
	if r.Low < 0 || r.Low > r.High {
		return 0, fmt.Errorf("%s: range [%d,%d]: %w", methodInt64InRange, r.Low, r.High, ErrInvalidRange)
	}
	if r.Low == r.High {
		return r.Low, nil
	}

	// Same wrap guard as IntInRange: only [0, MaxInt64] hits it, and the
	// magnitude draw covers exactly that domain.
	span := r.High - r.Low + 1
	if span <= 0 {
		return s.int63(), nil
	}

	return r.Low + s.int63n(span), nil
}
