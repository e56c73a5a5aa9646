package numeric

import (
	"context"
	"math/big"
	"math/bits"

	"github.com/agbru/numcalc/internal/progress"
)

// Sequence returns the first n Fibonacci numbers, seeded 0, 1.
//
// Strict prefix semantics: Sequence(0) = [], Sequence(1) = [0],
// Sequence(2) = [0, 1]. Each subsequent element is the sum of the previous
// two, appended until the sequence reaches length n.
func Sequence(ctx context.Context, n uint64, report progress.Callback) ([]*big.Int, error) {
	if report == nil {
		report = progress.NoOp
	}

	seq := make([]*big.Int, 0, n)
	if n >= 1 {
		seq = append(seq, big.NewInt(0))
	}
	if n >= 2 {
		seq = append(seq, big.NewInt(1))
	}

	for uint64(len(seq)) < n {
		if uint64(len(seq))%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			report(float64(len(seq)) / float64(n))
		}
		next := new(big.Int).Add(seq[len(seq)-1], seq[len(seq)-2])
		seq = append(seq, next)
	}
	report(1.0)
	return seq, nil
}

// Term computes F(n) directly using the fast doubling algorithm, without
// materializing the sequence. O(log n) big-integer multiplications.
//
// Uses the identities:
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k+1)² + F(k)²
func Term(ctx context.Context, n uint64, report progress.Callback) (*big.Int, error) {
	if report == nil {
		report = progress.NoOp
	}
	if n == 0 {
		report(1.0)
		return big.NewInt(0), nil
	}

	fk := big.NewInt(0)  // F(k)
	fk1 := big.NewInt(1) // F(k+1)
	t1 := new(big.Int)   // temporary
	t2 := new(big.Int)   // temporary

	numBits := bits.Len64(n)

	for i := numBits - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

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

		// If bit is set: shift to F(2k+1), F(2k+2)
		if (n>>uint(i))&1 == 1 {
			t1.Add(fk, fk1)
			fk.Set(fk1)
			fk1.Set(t1)
		}

		report(float64(numBits-i) / float64(numBits))
	}

	return fk, nil
}
