//go:build !gmp

package numeric

import (
	"context"
	"math/big"

	"github.com/agbru/numcalc/internal/progress"
)

// factorialProduct is the math/big backend for Factorial. It accumulates the
// product 1*2*...*n iteratively, keeping peak memory at a single big.Int
// plus the scratch word the multiplier reuses.
func factorialProduct(ctx context.Context, n uint64, report progress.Callback) (*big.Int, error) {
	result := big.NewInt(1)
	factor := new(big.Int)

	for i := uint64(2); i <= n; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			report(float64(i) / float64(n))
		}
		factor.SetUint64(i)
		result.Mul(result, factor)
	}
	return result, nil
}
