package numeric

import (
	"context"
	"math"
	"math/big"
	"testing"
)

func TestIsPrime(t *testing.T) {
	tests := []struct {
		num  uint64
		want bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{29, true},
		{30, false},
		{49, false}, // perfect square of a prime
		{97, true},
		{7919, true},
		{7917, false},
		{2147483647, true}, // 2^31 - 1, Mersenne prime
	}

	for _, tt := range tests {
		if got := IsPrime(tt.num); got != tt.want {
			t.Errorf("IsPrime(%d) = %v, want %v", tt.num, got, tt.want)
		}
	}
}

// TestIsPrime_ExhaustiveOracle checks every integer in [0, 1000] against a
// naive all-divisors oracle, pinning the trial-division bound at perfect
// squares and small composites.
func TestIsPrime_ExhaustiveOracle(t *testing.T) {
	oracle := func(n uint64) bool {
		if n <= 1 {
			return false
		}
		for d := uint64(2); d < n; d++ {
			if n%d == 0 {
				return false
			}
		}
		return true
	}

	for n := uint64(0); n <= 1000; n++ {
		if got, want := IsPrime(n), oracle(n); got != want {
			t.Errorf("IsPrime(%d) = %v, oracle says %v", n, got, want)
		}
	}
}

// TestIsPrime_BPSWOracle cross-checks against math/big's ProbablyPrime,
// which is deterministic for inputs below 2^64.
func TestIsPrime_BPSWOracle(t *testing.T) {
	candidates := []uint64{
		65537, 65539, 1000003, 999983, 1000000, 4294967291, 4294967295,
	}
	for _, n := range candidates {
		want := new(big.Int).SetUint64(n).ProbablyPrime(0)
		if got := IsPrime(n); got != want {
			t.Errorf("IsPrime(%d) = %v, ProbablyPrime says %v", n, got, want)
		}
	}
}

func TestCountPrimes(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi uint64
		want   uint64
	}{
		{"empty of primes", 0, 1, 0},
		{"single prime", 2, 2, 1},
		{"first hundred", 0, 100, 25},
		{"first thousand", 0, 1000, 168},
		{"interior range", 100, 200, 21},
		{"inverted bounds are swapped", 100, 0, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountPrimes(context.Background(), tt.lo, tt.hi, 4, nil)
			if err != nil {
				t.Fatalf("CountPrimes(%d, %d) error: %v", tt.lo, tt.hi, err)
			}
			if got != tt.want {
				t.Errorf("CountPrimes(%d, %d) = %d, want %d", tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

// TestScanChunks pins the chunk count used for progress fractions, in
// particular the hi-lo+1 wraparound when the range spans all of uint64.
func TestScanChunks(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi uint64
		want   uint64
	}{
		{"single candidate", 0, 0, 1},
		{"exactly one chunk", 0, scanChunkSize - 1, 1},
		{"one past a chunk", 0, scanChunkSize, 2},
		{"interior range", 100, 200, 1},
		{"full uint64 range", 0, math.MaxUint64, 1 << 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scanChunks(tt.lo, tt.hi); got != tt.want {
				t.Errorf("scanChunks(%d, %d) = %d, want %d", tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestCountPrimes_DefaultParallelism(t *testing.T) {
	got, err := CountPrimes(context.Background(), 0, 100, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != 25 {
		t.Errorf("CountPrimes with default parallelism = %d, want 25", got)
	}
}

func TestCountPrimes_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := CountPrimes(ctx, 0, 10_000_000, 2, nil); err == nil {
		t.Error("CountPrimes on canceled context should fail")
	}
}
