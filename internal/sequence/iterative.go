package sequence

import (
	"context"
	"math/big"

	"github.com/agbru/fibseq/internal/progress"
)

// uint64PairTerms is the number of leading terms generated with native uint64
// arithmetic. The running pair must stay below 2^64 one step ahead of the
// appended term: F(93) is the last Fibonacci number that fits in a uint64,
// so the pair (F(92), F(93)) is the last valid uint64 state.
const uint64PairTerms = 92

// IterativeGenerator produces the sequence with the classic accumulator pair:
// starting from (0, 1), it appends the first value and advances the pair to
// (second, first+second), n times. O(n) steps, O(1) working state beyond the
// output slice.
type IterativeGenerator struct{}

// Name returns the implementation name.
func (g *IterativeGenerator) Name() string {
	return "Iterative Pair (O(n))"
}

// Generate produces the first n Fibonacci terms iteratively. The first terms
// use native uint64 arithmetic; once the running pair would overflow, the
// loop continues on math/big with the same recurrence.
func (g *IterativeGenerator) Generate(ctx context.Context, progressChan chan<- progress.Update, generatorIndex int, n uint64, opts Options) ([]*big.Int, error) {
	seq := make([]*big.Int, 0, n)
	interval := opts.checkInterval()

	var a, b uint64 = 0, 1
	var i uint64
	for ; i < n && i < uint64PairTerms; i++ {
		if i%interval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			progress.Send(progressChan, generatorIndex, progress.Fraction(i, n))
		}
		seq = append(seq, new(big.Int).SetUint64(a))
		a, b = b, a+b
	}

	if i < n {
		// Hand the pair over to arbitrary precision and keep going.
		bigA := new(big.Int).SetUint64(a)
		bigB := new(big.Int).SetUint64(b)
		for ; i < n; i++ {
			if i%interval == 0 {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				progress.Send(progressChan, generatorIndex, progress.Fraction(i, n))
			}
			seq = append(seq, new(big.Int).Set(bigA))
			bigA, bigB = bigB, new(big.Int).Add(bigA, bigB)
		}
	}

	progress.Send(progressChan, generatorIndex, 1.0)
	return seq, nil
}
