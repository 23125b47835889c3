package randx_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/varygen/randx"
)

// ExampleSource_IntBetween shows the degenerate range: with min == max
// the only selectable outcome is returned, no randomness consumed.
func ExampleSource_IntBetween() {
	src := randx.NewSource(42)

	v, err := src.IntBetween(10, 10)
	fmt.Println(v, err)
	// Output: 10 <nil>
}

// ExampleSource_IntBetween_invalidRange shows the fail-fast contract:
// inverted bounds are a caller programming error, branch with errors.Is.
func ExampleSource_IntBetween_invalidRange() {
	src := randx.NewSource(42)

	_, err := src.IntBetween(10, 9)
	fmt.Println(errors.Is(err, randx.ErrInvalidRange))
	// Output: true
}

// ExampleSource_StringInRange pins the string-length contract: a [3,3]
// length range always yields exactly three alphanumeric characters.
func ExampleSource_StringInRange() {
	src := randx.NewSource(42)

	s, err := src.StringInRange(randx.IntRange{Low: 3, High: 3})
	fmt.Println(len(s), err == nil)
	// Output: 3 true
}

// ExampleSource_Int64Between demonstrates an open upper bound: pass the
// type limit for the side you want left unconstrained.
func ExampleSource_Int64Between() {
	src := randx.NewSource(42)

	v, err := src.Int64Between(1_000, math.MaxInt64)
	fmt.Println(v >= 1_000, err == nil)
	// Output: true true
}
