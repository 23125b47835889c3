// SPDX-License-Identifier: MIT
// Package: varygen/vary
//
// expand.go — count-range expansion of a generator into a sequence.

package vary

import (
	"fmt"

	"github.com/katalvlaran/varygen/randx"
)

const methodExpand = "Expand"

// Expand draws a count n uniformly from the inclusive range count, then
// invokes gen exactly n times and returns the results in invocation
// order (the order itself carries no meaning). The count is resampled on
// every call — nothing is cached across calls.
//
// Edge cases:
//   - count [0,0] ⇒ deterministically empty sequence, gen never invoked.
//   - count [k,k] ⇒ exactly k elements.
//
// Errors:
//   - ErrNilGenerator      — gen is nil (before any randomness).
//   - randx.ErrInvalidRange — malformed count (Low < 0 or Low > High).
//
// Complexity: O(n) gen invocations, O(n) space for the result.
func Expand[T any](count randx.IntRange, gen Generator[T], opts ...Option) ([]T, error) {
	// Reject a nil generator before consuming any randomness.
	if gen == nil {
		return nil, fmt.Errorf("%s: %w", methodExpand, ErrNilGenerator)
	}

	cfg := newConfig(opts...)

	// The count draw validates the range (fail fast on malformed input).
	n, err := cfg.src.IntInRange(count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodExpand, err)
	}

	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, gen())
	}

	return out, nil
}
