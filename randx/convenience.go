// SPDX-License-Identifier: MIT
// Package: varygen/randx
//
// convenience.go — package-level draws on the Default() source.
//
// Mirrors the math/rand split: every Source method has a package-level
// twin delegating to the shared convenience instance. Casual callers use
// these; tests that need replayable sequences inject their own Source.

package randx

// Bool returns a uniform coin flip from the default source.
func Bool() bool { return Default().Bool() }

// Int returns a full-domain int draw from the default source.
func Int() int { return Default().Int() }

// IntBetween returns a uniform int in [min, max] from the default source.
func IntBetween(min, max int) (int, error) { return Default().IntBetween(min, max) }

// IntInRange returns a uniform int in r from the default source.
func IntInRange(r IntRange) (int, error) { return Default().IntInRange(r) }

// Int64 returns a full-domain int64 draw from the default source.
func Int64() int64 { return Default().Int64() }

// Int64Between returns a uniform int64 in [min, max] from the default source.
func Int64Between(min, max int64) (int64, error) { return Default().Int64Between(min, max) }

// Int64InRange returns a uniform int64 in r from the default source.
func Int64InRange(r Int64Range) (int64, error) { return Default().Int64InRange(r) }

// Intn returns a uniform int in [0, n) from the default source; panics
// if n <= 0.
func Intn(n int) int { return Default().Intn(n) }

// String returns a default-range alphanumeric string from the default source.
func String() string { return Default().String() }

// StringInRange returns an alphanumeric string with length in r from the
// default source.
func StringInRange(r IntRange) (string, error) { return Default().StringInRange(r) }

// Shuffle pseudo-randomizes the order of n elements using the default source.
func Shuffle(n int, swap func(i, j int)) { Default().Shuffle(n, swap) }
