package sequence

import (
	"context"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genSeq is a property-test shorthand that produces the first n terms.
func genSeq(g Generator, n uint64) []*big.Int {
	seq, err := g.Generate(context.Background(), nil, 0, n, Options{})
	if err != nil {
		return nil
	}
	return seq
}

// TestSequenceLength_PropertyBased verifies that for all n >= 0 the generated
// sequence has length exactly n.
func TestSequenceLength_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, generator := range allGenerators() {
		properties.Property(generator.Name()+" produces exactly n terms", prop.ForAll(
			func(n uint64) bool {
				seq := genSeq(generator, n)
				return seq != nil && uint64(len(seq)) == n
			},
			gen.UInt64Range(0, 2000),
		))
	}

	properties.TestingRun(t)
}

// TestRecurrenceRelation_PropertyBased verifies the defining property of the
// sequence: every term after the first two equals the sum of the two
// preceding terms, and the seed terms are 0 and 1.
func TestRecurrenceRelation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	zero := big.NewInt(0)
	one := big.NewInt(1)

	for _, generator := range allGenerators() {
		properties.Property(generator.Name()+" satisfies seq[i] = seq[i-1] + seq[i-2]", prop.ForAll(
			func(n uint64) bool {
				seq := genSeq(generator, n)
				if seq == nil {
					return false
				}
				if n >= 1 && seq[0].Cmp(zero) != 0 {
					return false
				}
				if n >= 2 && seq[1].Cmp(one) != 0 {
					return false
				}
				sum := new(big.Int)
				for i := 2; i < len(seq); i++ {
					sum.Add(seq[i-1], seq[i-2])
					if seq[i].Cmp(sum) != 0 {
						return false
					}
				}
				return true
			},
			gen.UInt64Range(0, 1000),
		))
	}

	properties.TestingRun(t)
}

// TestMonotonicExtension_PropertyBased verifies that generate(n+1) equals
// generate(n) with exactly one additional term appended.
func TestMonotonicExtension_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, generator := range allGenerators() {
		properties.Property(generator.Name()+" extends by one term", prop.ForAll(
			func(n uint64) bool {
				shorter := genSeq(generator, n)
				longer := genSeq(generator, n+1)
				if shorter == nil || longer == nil {
					return false
				}
				if len(longer) != len(shorter)+1 {
					return false
				}
				return Equal(shorter, longer[:len(shorter)])
			},
			gen.UInt64Range(0, 500),
		))
	}

	properties.TestingRun(t)
}

// TestIdempotence_PropertyBased verifies that repeated calls with the same n
// yield identical sequences: generation is pure, with no hidden state.
func TestIdempotence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, generator := range allGenerators() {
		properties.Property(generator.Name()+" is idempotent", prop.ForAll(
			func(n uint64) bool {
				first := genSeq(generator, n)
				second := genSeq(generator, n)
				return first != nil && second != nil && Equal(first, second)
			},
			gen.UInt64Range(0, 1000),
		))
	}

	properties.TestingRun(t)
}

// TestGeneratorAgreement_PropertyBased verifies that the independent
// implementations agree on every prefix length.
func TestGeneratorAgreement_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	iterative := &IterativeGenerator{}
	doubling := &DoublingGenerator{}

	properties.Property("iterative and doubling produce identical sequences", prop.ForAll(
		func(n uint64) bool {
			return Equal(genSeq(iterative, n), genSeq(doubling, n))
		},
		gen.UInt64Range(0, 1000),
	))

	properties.TestingRun(t)
}
