package sequence

import (
	"context"
	"math/big"
	"math/bits"

	"github.com/agbru/fibseq/internal/progress"
)

// DoublingGenerator produces the sequence by computing the top pair
// (F(n-1), F(n)) with the fast doubling algorithm and then filling the slice
// backwards with the inverted recurrence F(i-1) = F(i+1) - F(i).
//
// The seed costs O(log n) big multiplications and the backfill is a linear
// pass of subtractions, so the overall shape stays O(n). Its real value is as
// an independent cross-check for the iterative generator in comparison mode.
type DoublingGenerator struct{}

// Name returns the implementation name.
func (g *DoublingGenerator) Name() string {
	return "Fast Doubling Backfill"
}

// Generate produces the first n Fibonacci terms via doubling seed + backfill.
func (g *DoublingGenerator) Generate(ctx context.Context, progressChan chan<- progress.Update, generatorIndex int, n uint64, opts Options) ([]*big.Int, error) {
	if n == 0 {
		progress.Send(progressChan, generatorIndex, 1.0)
		return []*big.Int{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Top pair: cur = F(n-1), next = F(n).
	cur, next := doublingPair(n - 1)

	interval := opts.checkInterval()
	seq := make([]*big.Int, n)
	for i := n; i > 0; i-- {
		done := n - i
		if done%interval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			progress.Send(progressChan, generatorIndex, progress.Fraction(done, n))
		}
		seq[i-1] = cur
		// (F(i-2), F(i-1)) = (F(i) - F(i-1), F(i-1))
		cur, next = new(big.Int).Sub(next, cur), cur
	}

	progress.Send(progressChan, generatorIndex, 1.0)
	return seq, nil
}

// doublingPair computes (F(m), F(m+1)) with the fast doubling identities:
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k+1)² + F(k)²
//
// It processes the bits of m from most to least significant, squaring the
// pair at each step and shifting by one when the bit is set.
func doublingPair(m uint64) (*big.Int, *big.Int) {
	fk := big.NewInt(0)  // F(k)
	fk1 := big.NewInt(1) // F(k+1)
	if m == 0 {
		return fk, fk1
	}

	t1 := new(big.Int)
	t2 := new(big.Int)

	for i := bits.Len64(m) - 1; i >= 0; i-- {
		// F(2k) = F(k) * (2*F(k+1) - F(k))
		t1.Lsh(fk1, 1)
		t1.Sub(t1, fk)
		t1.Mul(t1, fk)

		// F(2k+1) = F(k+1)² + F(k)²
		t2.Mul(fk1, fk1)
		fk.Mul(fk, fk)
		t2.Add(t2, fk)

		fk.Set(t1)
		fk1.Set(t2)

		// If the bit is set, shift to (F(2k+1), F(2k+2)).
		if (m>>uint(i))&1 == 1 {
			t1.Add(fk, fk1)
			fk.Set(fk1)
			fk1.Set(t1)
		}
	}

	return fk, fk1
}
