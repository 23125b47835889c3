// SPDX-License-Identifier: MIT
// Package: varygen/vary
//
// apply.go — fold a randomly selected mutator subset over a seed value.
//
// Contract:
//   - Selection is over the mutator functions, not their results; the
//     fold then applies each selected mutator to the output of the
//     previous one, in the selection's shuffled order.
//   - Nil mutator entries are rejected before any randomness.
//   - An empty selection (possible when count.Low == 0, or when the
//     mutator list is empty) returns seed unchanged.
//   - Mutators are assumed pure from the caller's perspective; impure
//     mutators are the caller's risk.

package vary

import (
	"fmt"

	"github.com/katalvlaran/varygen/randx"
)

const methodApplyMany = "ApplyMany"

// applyOnceRange is the exactly-one count used by ApplyOne.
var applyOnceRange = randx.IntRange{Low: 1, High: 1}

// ApplyOne applies exactly one mutator, chosen uniformly from mutators,
// to seed. Sugar for ApplyMany with count [1,1]. An empty mutator list
// returns seed unchanged.
func ApplyOne[T any](seed T, mutators []Mutator[T], opts ...Option) (T, error) {
	return ApplyMany(seed, applyOnceRange, mutators, opts...)
}

// ApplyMany selects between count.Low and count.High mutators (clamped
// to the list size, PluckManyRange semantics) and folds them over seed
// left to right in selection order, each mutator consuming the output of
// the previous one.
//
// Errors:
//   - ErrNilMutator          — a nil mutator entry (before any randomness).
//   - randx.ErrInvalidRange  — malformed count range.
//
// Complexity: O(n) selection + O(k) applications for k selected mutators.
func ApplyMany[T any](seed T, count randx.IntRange, mutators []Mutator[T], opts ...Option) (T, error) {
	// Reject nil entries up front, before selection consumes randomness.
	for i, m := range mutators {
		if m == nil {
			return seed, fmt.Errorf("%s: mutator at index %d: %w", methodApplyMany, i, ErrNilMutator)
		}
	}

	// Select the subset of mutator functions to apply.
	picked, err := PluckManyRange(count, mutators, opts...)
	if err != nil {
		return seed, fmt.Errorf("%s: %w", methodApplyMany, err)
	}

	// Fold in selection order; an empty selection leaves seed untouched.
	out := seed
	for _, m := range picked {
		out = m(out)
	}

	return out, nil
}
