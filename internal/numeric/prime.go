package numeric

import (
	"context"
	"math"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/agbru/numcalc/internal/progress"
)

// IsPrime reports whether num is prime using deterministic trial division:
// every candidate divisor i from 2 up to floor(√num) is tested. num <= 1 is
// not prime. O(√num) time, O(1) space, no floating point (the bound is
// expressed as i <= num/i to avoid square-root rounding at perfect squares).
func IsPrime(num uint64) bool {
	if num <= 1 {
		return false
	}
	for i := uint64(2); i <= num/i; i++ {
		if num%i == 0 {
			return false
		}
	}
	return true
}

// scanChunkSize is the number of candidates each prime-scan worker claims at
// a time. Large enough to amortize goroutine scheduling, small enough that
// progress updates stay smooth.
const scanChunkSize = 4096

// scanChunks returns the number of scanChunkSize chunks covering the
// inclusive range [lo, hi]. The inclusive count hi-lo+1 wraps to zero when
// the range spans all of uint64, so that case is computed directly.
func scanChunks(lo, hi uint64) uint64 {
	total := hi - lo + 1
	if total == 0 {
		return math.MaxUint64/scanChunkSize + 1
	}
	return (total-1)/scanChunkSize + 1
}

// CountPrimes counts the primes in the inclusive range [lo, hi]. The scan is
// embarrassingly parallel: the range is split into chunks and tested by at
// most parallelism concurrent workers, bounded with a weighted semaphore.
// parallelism <= 0 defaults to runtime.NumCPU().
func CountPrimes(ctx context.Context, lo, hi uint64, parallelism int, report progress.Callback) (uint64, error) {
	if report == nil {
		report = progress.NoOp
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	numChunks := scanChunks(lo, hi)

	var count, chunksDone atomic.Uint64
	sem := semaphore.NewWeighted(int64(parallelism))

	for start := lo; ; start += scanChunkSize {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		end := start + scanChunkSize - 1
		if end > hi || end < start { // clamp, guarding uint64 wraparound
			end = hi
		}
		go func(start, end uint64) {
			defer sem.Release(1)
			var local uint64
			for i := start; i <= end && i >= start; i++ {
				if IsPrime(i) {
					local++
				}
			}
			count.Add(local)
			report(float64(chunksDone.Add(1)) / float64(numChunks))
		}(start, end)
		if end == hi {
			break
		}
	}

	// Wait for all workers by draining the full semaphore weight.
	if err := sem.Acquire(ctx, int64(parallelism)); err != nil {
		return 0, err
	}
	sem.Release(int64(parallelism))

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return count.Load(), nil
}
