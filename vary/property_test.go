package vary_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/varygen/randx"
	"github.com/katalvlaran/varygen/vary"
)

// TestCombinator_Properties states the selection and expansion laws as
// properties over arbitrary candidate slices and counts.
func TestCombinator_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	src := randx.NewSource(4242)

	properties.Property("PluckMany returns a sub-multiset of its candidates", prop.ForAll(
		func(candidates []int) bool {
			got, err := vary.PluckMany(candidates, vary.WithSource(src))
			if err != nil || len(got) > len(candidates) {
				return false
			}

			supply := make(map[int]int, len(candidates))
			for _, v := range candidates {
				supply[v]++
			}
			for _, v := range got {
				supply[v]--
				if supply[v] < 0 {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("Pluck always returns a member", prop.ForAll(
		func(candidates []int) bool {
			if len(candidates) == 0 {
				return true // covered by the ErrNoCandidates tests
			}
			got, err := vary.Pluck(candidates, vary.WithSource(src))
			if err != nil {
				return false
			}
			for _, v := range candidates {
				if v == got {
					return true
				}
			}

			return false
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("Expand length matches a degenerate count exactly", prop.ForAll(
		func(k int) bool {
			out, err := vary.Expand(randx.IntRange{Low: k, High: k}, func() int { return 0 }, vary.WithSource(src))

			return err == nil && len(out) == k
		},
		gen.IntRange(0, 32),
	))

	properties.Property("ApplyMany with a [0,0] count is the identity", prop.ForAll(
		func(seed int) bool {
			got, err := vary.ApplyMany(seed, randx.IntRange{Low: 0, High: 0}, []vary.Mutator[int]{
				func(v int) int { return v + 1 },
			}, vary.WithSource(src))

			return err == nil && got == seed
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}
