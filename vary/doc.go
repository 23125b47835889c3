// Package vary provides the generic combinators that turn the randx
// primitives into structured test-fixture variability: range expansion,
// selection, optionality and mutation.
//
// What
//
//   - Expand(count, gen) — draw a count from an inclusive range, invoke
//     the generator exactly that many times, return the sequence.
//   - Pluck(candidates) — one uniform element; empty input is a
//     programmer error (ErrNoCandidates): "give me one" has no sensible
//     empty answer.
//   - PluckMany(candidates) / PluckManyRange(count, candidates) — a
//     random-size, random-subset, randomly-ordered selection. Tolerates
//     empty input by returning an empty result: "give me some" does.
//   - Maybe(v) — Some(v) with 50% probability, None otherwise; the
//     Optional carrier simulates optional fields.
//   - ApplyOne(seed, mutators) / ApplyMany(seed, count, mutators) —
//     select a random subset of mutators and fold them over seed in the
//     selection's shuffled order.
//
// Data flows strictly upward: randx primitives → Expand → Pluck* →
// Apply*. No combinator depends on anything above it.
//
// Randomness
//
//	Each combinator accepts functional options; WithSource injects an
//	explicit randx.Source (seeded in tests for replayable fixtures) and
//	defaults to randx.Default() for casual use.
//
// Selection semantics
//
//	PluckManyRange clamps count.Low to the candidate-set size before
//	drawing — asking for "at least 5 of these 3" selects all 3 rather
//	than failing — and bounds the selection above by both the set size
//	and count.High, so a [0,0] count is always empty. Result order
//	carries no meaning and must not be assumed to preserve input order.
//
// Errors
//
//   - ErrNoCandidates          — Pluck over an empty candidate set.
//   - ErrNilGenerator          — Expand given a nil generator.
//   - ErrNilMutator            — Apply* given a nil mutator entry.
//   - randx.ErrInvalidRange    — malformed count range (Low < 0 or
//     Low > High), raised before any randomness.
//
// Complexity (n = candidate-set size, k = drawn count)
//
//   - Expand:         O(k) generator invocations.
//   - Pluck:          O(1).
//   - PluckManyRange: O(n) time and space (copy + shuffle).
//   - ApplyMany:      O(n) selection + O(k) mutator applications.
package vary
