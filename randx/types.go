// SPDX-License-Identifier: MIT
// Package: varygen/randx
//
// types.go — range types, shared constants and sentinel errors.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrInvalidRange) to branch.
//   • Sentinels are NEVER wrapped with formatted strings at definition
//     site; draw functions attach context via %w.
//   • Validation happens before any randomness is consumed.

package randx

import "errors"

// ErrInvalidRange indicates that a caller supplied bounds with min > max,
// or a range form whose Low is negative. Always a caller programming
// error; never retried, never recovered internally.
// Usage: if errors.Is(err, randx.ErrInvalidRange) { /* fix the bounds */ }.
var ErrInvalidRange = errors.New("randx: invalid range")

// IntRange is an inclusive [Low, High] pair of ints. Both endpoints are
// valid, selectable outcomes. The range forms (IntInRange, StringInRange
// and the vary combinator counts) contractually carry non-negative
// bounds: Low must satisfy 0 <= Low <= High. Callers needing negative
// bounds use IntBetween instead.
type IntRange struct {
	Low  int // inclusive lower endpoint (>= 0 by contract)
	High int // inclusive upper endpoint (>= Low)
}

// Int64Range is the int64 analogue of IntRange, for the wider long
// domain. Same non-negative contract as IntRange.
type Int64Range struct {
	Low  int64 // inclusive lower endpoint (>= 0 by contract)
	High int64 // inclusive upper endpoint (>= Low)
}

// alphabet is the character pool for String/StringInRange draws.
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Default string-length bounds (named, no magic numbers). The default
// range starts at 1, so String() never yields an empty string.
const (
	defaultMinStringLen = 1
	defaultMaxStringLen = 255
)

// DefaultStringRange returns the inclusive length range used by String():
// [1, 255]. Returned by value so callers cannot mutate the default.
func DefaultStringRange() IntRange {
	return IntRange{Low: defaultMinStringLen, High: defaultMaxStringLen}
}
