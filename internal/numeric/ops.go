package numeric

import (
	"context"
	"fmt"
	"math/big"

	"github.com/agbru/numcalc/internal/progress"
)

// Request carries the inputs for one operation run.
type Request struct {
	// N is the factorial argument, primality candidate, Fibonacci sequence
	// length, or Fibonacci term index, depending on the operation.
	N uint64
	// Lo and Hi bound the prime-counting scan (primes operation only).
	Lo, Hi uint64
}

// Options tunes operation execution.
type Options struct {
	// Parallelism bounds the number of concurrent prime-scan workers.
	// Values <= 0 default to runtime.NumCPU().
	Parallelism int
}

// Operation is a single numeric utility runnable through the orchestration
// pipeline. Implementations are stateless and safe for concurrent use.
type Operation interface {
	// Slug is the stable registry key used by flags and the REPL.
	Slug() string
	// Name is the human-readable operation name.
	Name() string
	// Describe renders the request for display, e.g. "5!" or "F(10)".
	Describe(req Request) string
	// Compute runs the operation. It returns synchronously with either a
	// value or an error; progress is reported through report.
	Compute(ctx context.Context, report progress.Callback, req Request, opts Options) (Value, error)
}

// FactorialOp computes N!.
type FactorialOp struct{}

func (FactorialOp) Slug() string { return "fact" }
func (FactorialOp) Name() string { return "Factorial" }

func (FactorialOp) Describe(req Request) string { return fmt.Sprintf("%d!", req.N) }

func (FactorialOp) Compute(ctx context.Context, report progress.Callback, req Request, _ Options) (Value, error) {
	v, err := Factorial(ctx, req.N, report)
	if err != nil {
		return nil, err
	}
	return IntValue{Int: v}, nil
}

// PrimalityOp tests whether N is prime.
type PrimalityOp struct{}

func (PrimalityOp) Slug() string { return "prime" }
func (PrimalityOp) Name() string { return "Primality Test" }

func (PrimalityOp) Describe(req Request) string { return fmt.Sprintf("is_prime(%d)", req.N) }

func (PrimalityOp) Compute(ctx context.Context, report progress.Callback, req Request, _ Options) (Value, error) {
	if report == nil {
		report = progress.NoOp
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	verdict := IsPrime(req.N)
	report(1.0)
	return BoolValue{Bool: verdict}, nil
}

// SequenceOp generates the first N Fibonacci numbers.
type SequenceOp struct{}

func (SequenceOp) Slug() string { return "fib" }
func (SequenceOp) Name() string { return "Fibonacci Sequence" }

func (SequenceOp) Describe(req Request) string { return fmt.Sprintf("fib[0..%d)", req.N) }

func (SequenceOp) Compute(ctx context.Context, report progress.Callback, req Request, _ Options) (Value, error) {
	seq, err := Sequence(ctx, req.N, report)
	if err != nil {
		return nil, err
	}
	return SeqValue{Seq: seq}, nil
}

// TermOp computes the single Fibonacci term F(N) by fast doubling.
type TermOp struct{}

func (TermOp) Slug() string { return "fibterm" }
func (TermOp) Name() string { return "Fibonacci Term" }

func (TermOp) Describe(req Request) string { return fmt.Sprintf("F(%d)", req.N) }

func (TermOp) Compute(ctx context.Context, report progress.Callback, req Request, _ Options) (Value, error) {
	v, err := Term(ctx, req.N, report)
	if err != nil {
		return nil, err
	}
	return IntValue{Int: v}, nil
}

// PrimeScanOp counts the primes in [Lo, Hi].
type PrimeScanOp struct{}

func (PrimeScanOp) Slug() string { return "primes" }
func (PrimeScanOp) Name() string { return "Prime Count" }

func (PrimeScanOp) Describe(req Request) string {
	return fmt.Sprintf("π[%d..%d]", req.Lo, req.Hi)
}

func (PrimeScanOp) Compute(ctx context.Context, report progress.Callback, req Request, opts Options) (Value, error) {
	count, err := CountPrimes(ctx, req.Lo, req.Hi, opts.Parallelism, report)
	if err != nil {
		return nil, err
	}
	return IntValue{Int: new(big.Int).SetUint64(count)}, nil
}
