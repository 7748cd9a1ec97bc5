// Package sequence implements the Fibonacci sequence generators.
//
// A generator produces the first n terms of the Fibonacci sequence as an
// ordered slice of arbitrary-precision integers, starting 0, 1, 1, 2, 3, ...
// Generators are pure: each call produces a fresh slice, and the terms are
// never aliased between calls.
package sequence

import (
	"context"
	"math/big"

	"github.com/agbru/fibseq/internal/progress"
)

// Options controls generation behavior common to all implementations.
type Options struct {
	// CheckInterval is the number of terms generated between context
	// cancellation checks and progress reports. Zero selects the default.
	CheckInterval uint64
}

// DefaultCheckInterval is the default number of terms between cancellation
// checks and progress reports.
const DefaultCheckInterval = 1024

// checkInterval returns the effective interval, applying the default.
func (o Options) checkInterval() uint64 {
	if o.CheckInterval == 0 {
		return DefaultCheckInterval
	}
	return o.CheckInterval
}

// Generator is the contract implemented by every sequence generator.
type Generator interface {
	// Generate produces the first n Fibonacci terms.
	//
	// Parameters:
	//   - ctx: Context for cancellation and deadlines, polled periodically.
	//   - progressChan: Optional channel for progress updates. May be nil.
	//   - generatorIndex: Index of this generator in a concurrent comparison run.
	//   - n: The number of terms to produce.
	//   - opts: Generation options.
	//
	// Returns:
	//   - []*big.Int: Exactly n terms satisfying the Fibonacci recurrence.
	//   - error: The context error if the run was canceled, nil otherwise.
	Generate(ctx context.Context, progressChan chan<- progress.Update, generatorIndex int, n uint64, opts Options) ([]*big.Int, error)

	// Name returns the human-readable name of the implementation.
	Name() string
}

// Equal reports whether two sequences have identical length and terms.
// It is used by the orchestration layer to cross-check generators.
func Equal(a, b []*big.Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}
