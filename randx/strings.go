// SPDX-License-Identifier: MIT
// Package: varygen/randx
//
// strings.go — bounded alphanumeric string generation.
//
// Contract:
//   - Characters are drawn uniformly from [a-zA-Z0-9].
//   - The length is itself a uniform draw via IntInRange, so both
//     endpoints of the length range are reachable outcomes.
//   - The default range [1,255] excludes 0: String() never returns "".
//     An empty string is possible only when a caller explicitly supplies
//     a range admitting length 0 (e.g. [0,0]).

package randx

import "fmt"

const methodStringInRange = "StringInRange"

// String returns an alphanumeric string with length drawn uniformly
// from DefaultStringRange(), i.e. [1, 255]. Never fails and never
// returns the empty string.
func (s *Source) String() string {
	// The default range is valid by construction; the error branch is dead.
	out, _ := s.StringInRange(DefaultStringRange())

	return out
}

// StringInRange returns an alphanumeric string whose length is drawn
// uniformly from r, inclusive. Returns ErrInvalidRange when r is
// malformed (Low < 0 or Low > High), before any randomness.
// Complexity: O(n) time and space for the drawn length n.
func (s *Source) StringInRange(r IntRange) (string, error) {
	// Length draw validates the range and consumes the first randomness.
	n, err := s.IntInRange(r)
	if err != nil {
		return "", fmt.Errorf("%s: %w", methodStringInRange, err)
	}
	if n == 0 {
		return "", nil
	}

	// Single critical section for the whole character fill.
	b := make([]byte, n)
	s.fill(b)

	return string(b), nil
}
