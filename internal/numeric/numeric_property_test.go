package numeric

import (
	"context"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestFactorialRecurrence_PropertyBased verifies the defining recurrence
// n! = n * (n-1)! for randomly generated n.
func TestFactorialRecurrence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("n! = n * (n-1)!", prop.ForAll(
		func(n uint64) bool {
			if n == 0 {
				n = 1
			}
			fn, err := Factorial(context.Background(), n, nil)
			if err != nil {
				return false
			}
			fnMinus1, err := Factorial(context.Background(), n-1, nil)
			if err != nil {
				return false
			}
			expected := new(big.Int).Mul(new(big.Int).SetUint64(n), fnMinus1)
			return fn.Cmp(expected) == 0
		},
		gen.UInt64Range(1, 500),
	))

	properties.TestingRun(t)
}

// TestPrimality_PropertyBased cross-checks trial division against math/big's
// ProbablyPrime oracle, which is deterministic below 2^64.
func TestPrimality_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("IsPrime agrees with BPSW oracle", prop.ForAll(
		func(n uint64) bool {
			return IsPrime(n) == new(big.Int).SetUint64(n).ProbablyPrime(0)
		},
		gen.UInt64Range(0, 5_000_000),
	))

	properties.TestingRun(t)
}

// TestFibonacciRecurrence_PropertyBased verifies F(n) = F(n-1) + F(n-2)
// through the fast doubling path.
func TestFibonacciRecurrence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("F(n) = F(n-1) + F(n-2)", prop.ForAll(
		func(n uint64) bool {
			if n < 2 {
				n = 2
			}
			fn, err := Term(context.Background(), n, nil)
			if err != nil {
				return false
			}
			fn1, err := Term(context.Background(), n-1, nil)
			if err != nil {
				return false
			}
			fn2, err := Term(context.Background(), n-2, nil)
			if err != nil {
				return false
			}
			sum := new(big.Int).Add(fn1, fn2)
			return fn.Cmp(sum) == 0
		},
		gen.UInt64Range(2, 10_000),
	))

	properties.TestingRun(t)
}

// TestCassinisIdentity_PropertyBased verifies Cassini's Identity for the
// Fibonacci sequence: for any integer n > 0,
//
//	F(n-1) * F(n+1) - F(n)² = (-1)ⁿ
//
// This property provides a powerful correctness check for the fast doubling
// implementation.
func TestCassinisIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Term satisfies Cassini's Identity", prop.ForAll(
		func(n uint64) bool {
			if n == 0 {
				n = 1
			}
			fnMinus1, err := Term(context.Background(), n-1, nil)
			if err != nil {
				return false
			}
			fn, err := Term(context.Background(), n, nil)
			if err != nil {
				return false
			}
			fnPlus1, err := Term(context.Background(), n+1, nil)
			if err != nil {
				return false
			}

			// Left side: F(n-1) * F(n+1) - F(n)²
			leftSide := new(big.Int)
			fnSquared := new(big.Int).Mul(fn, fn)
			leftSide.Mul(fnMinus1, fnPlus1).Sub(leftSide, fnSquared)

			// Right side: (-1)ⁿ
			rightSide := big.NewInt(1)
			if n%2 != 0 {
				rightSide.Neg(rightSide)
			}

			return leftSide.Cmp(rightSide) == 0
		},
		gen.UInt64Range(1, 10_000),
	))

	properties.TestingRun(t)
}

// TestSequencePrefix_PropertyBased verifies that growing the sequence never
// rewrites earlier elements: Sequence(n) is a prefix of Sequence(n+k).
func TestSequencePrefix_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("Sequence(n) is a prefix of Sequence(n+k)", prop.ForAll(
		func(n, k uint64) bool {
			short, err := Sequence(context.Background(), n, nil)
			if err != nil {
				return false
			}
			long, err := Sequence(context.Background(), n+k, nil)
			if err != nil {
				return false
			}
			for i := range short {
				if short[i].Cmp(long[i]) != 0 {
					return false
				}
			}
			return true
		},
		gen.UInt64Range(0, 200),
		gen.UInt64Range(0, 200),
	))

	properties.TestingRun(t)
}

// TestPurity_PropertyBased verifies referential transparency: calling any
// operation twice with identical input yields identical output.
func TestPurity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("Factorial is pure", prop.ForAll(
		func(n uint64) bool {
			a, errA := Factorial(context.Background(), n, nil)
			b, errB := Factorial(context.Background(), n, nil)
			return errA == nil && errB == nil && a.Cmp(b) == 0
		},
		gen.UInt64Range(0, 300),
	))

	properties.Property("IsPrime is pure", prop.ForAll(
		func(n uint64) bool {
			return IsPrime(n) == IsPrime(n)
		},
		gen.UInt64Range(0, 1_000_000),
	))

	properties.TestingRun(t)
}
