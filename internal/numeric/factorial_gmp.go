//go:build gmp

package numeric

import (
	"context"
	"math/big"

	"github.com/ncw/gmp"

	"github.com/agbru/numcalc/internal/progress"
)

// factorialProduct is the GMP-accelerated backend for Factorial, selected
// with the "gmp" build tag. GMP's multiplication outperforms math/big for
// very large accumulations; the result is converted back to math/big at the
// boundary so callers see a single integer type.
func factorialProduct(ctx context.Context, n uint64, report progress.Callback) (*big.Int, error) {
	result := gmp.NewInt(1)
	factor := new(gmp.Int)

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
	return new(big.Int).SetBytes(result.Bytes()), nil
}
