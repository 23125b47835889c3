// SPDX-License-Identifier: MIT
// Package: varygen/vary
//
// maybe.go — coin-flip optionality for simulating optional fields.

package vary

// Maybe returns Some(v) with 50% probability and None otherwise.
// Stateless, no failure mode.
// Complexity: O(1) time, O(1) space.
func Maybe[T any](v T, opts ...Option) Optional[T] {
	cfg := newConfig(opts...)

	if cfg.src.Bool() {
		return Some(v)
	}

	return None[T]()
}
