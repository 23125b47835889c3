// SPDX-License-Identifier: MIT
// Package: varygen/vary
//
// types.go — callback types, functional options, the Optional carrier
// and sentinel errors for the combinator package.
//
// Error policy (same discipline as randx):
//   • Sentinels only; branch with errors.Is.
//   • Combinators attach context via %w and never panic; validation
//     panics are confined to option constructors (WithSource).

package vary

import (
	"errors"

	"github.com/katalvlaran/varygen/randx"
)

// Generator produces one value per invocation. Stateless from the
// package's perspective; it may itself call randx or vary recursively.
type Generator[T any] func() T

// Mutator maps a value to a new value of the same type. Assumed pure
// from the caller's perspective; impurity is the caller's risk.
type Mutator[T any] func(T) T

// Sentinel errors for combinator execution.
var (
	// ErrNoCandidates is returned by Pluck when given zero candidates.
	ErrNoCandidates = errors.New("vary: empty candidate set")

	// ErrNilGenerator is returned by Expand when gen is nil.
	ErrNilGenerator = errors.New("vary: generator is nil")

	// ErrNilMutator is returned by ApplyOne/ApplyMany when a mutator
	// entry is nil.
	ErrNilMutator = errors.New("vary: mutator is nil")
)

// Option customizes a combinator call via functional arguments.
type Option func(*config)

// config aggregates the per-call knobs; resolved once per combinator
// invocation, no global state.
type config struct {
	// src supplies all randomness for the call.
	src *randx.Source
}

// WithSource injects an explicit random source, typically a seeded
// randx.NewSource in tests. Panics on nil to surface the programmer
// error early; combinators themselves never panic.
func WithSource(s *randx.Source) Option {
	if s == nil {
		panic("vary: WithSource(nil)")
	}

	return func(c *config) {
		c.src = s
	}
}

// newConfig resolves options in order (later overrides earlier) over the
// deterministic default: the process-wide randx source.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{src: randx.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Optional carries the result of Maybe: either a present value or the
// explicit absent marker. The zero value is None.
type Optional[T any] struct {
	value   T
	present bool
}

// Some wraps v as a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns the absent Optional for T.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Present reports whether a value is carried.
func (o Optional[T]) Present() bool { return o.present }

// Get returns the carried value and true, or the zero value and false
// when absent.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the carried value when present, fallback otherwise.
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}

	return fallback
}
