// Package varygen is an in-memory toolkit for generating randomized,
// bounded test data — from scalar primitives to composable combinators
// that build realistic partial/variant fixtures for "smart monkey" and
// property-based tests.
//
// 🚀 What is varygen?
//
//	A small, thread-safe library that brings together:
//		• Bounded primitives: booleans, ints, longs and alphanumeric
//		  strings drawn uniformly from inclusive ranges
//		• Overflow-safe span arithmetic: full-domain draws never wrap
//		• Range expansion: count-driven sequences from any generator
//		• Selection: Pluck / PluckMany over arbitrary candidate sets
//		• Optionality: Maybe — coin-flip presence for optional fields
//		• Mutation: ApplyOne / ApplyMany — fold random mutator subsets
//
// ✨ Why choose varygen?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – locked random source, fail-fast validation
//   - Deterministic when you need it – inject a seeded randx.Source
//   - Pure Go – no cgo, no I/O, every call completes in bounded time
//
// Under the hood, everything is organized under two subpackages:
//
//	randx/ — the random-source handle and bounded scalar primitives
//	vary/  — generic combinators (Expand, Pluck, Maybe, Apply...)
//
// Quick example:
//
//	name, _ := randx.StringInRange(randx.IntRange{Low: 3, High: 12})
//	tags, _ := vary.PluckMany([]string{"a", "b", "c"})
//
//	builds a random name and a random subset of tags on every call,
//	so fixtures vary across valid states instead of staying fixed.
//
// Dive into the package docs of randx and vary for the full contracts,
// edge-case policies and determinism notes.
//
//	go get github.com/katalvlaran/varygen
package varygen
