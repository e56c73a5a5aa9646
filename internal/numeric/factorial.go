package numeric

import (
	"context"
	"math/big"

	"github.com/agbru/numcalc/internal/progress"
)

// ctxCheckInterval is the number of loop iterations between context checks
// and progress reports in the accumulation loops. Checking every iteration
// would dominate the cost of the cheap early multiplications.
const ctxCheckInterval = 1024

// Factorial computes n! exactly. Factorial(0) = 1.
//
// The result is exact for any n that fits in memory; the practical limit is
// the host, not the algorithm. The loop checks ctx periodically so very
// large inputs remain cancelable, and reports progress as the fraction of
// multiplications performed.
func Factorial(ctx context.Context, n uint64, report progress.Callback) (*big.Int, error) {
	if report == nil {
		report = progress.NoOp
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err := factorialProduct(ctx, n, report)
	if err != nil {
		return nil, err
	}
	report(1.0)
	return result, nil
}
