package numeric

import (
	"context"
	"math/big"
	"testing"

	apperrors "github.com/agbru/numcalc/internal/errors"
)

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "1"},
		{1, "1"},
		{2, "2"},
		{5, "120"},
		{10, "3628800"},
		{20, "2432902008176640000"},
		{25, "15511210043330985984000000"},
	}

	for _, tt := range tests {
		got, err := Factorial(context.Background(), tt.n, nil)
		if err != nil {
			t.Fatalf("Factorial(%d) error: %v", tt.n, err)
		}
		if got.String() != tt.want {
			t.Errorf("Factorial(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestFactorial_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Factorial(ctx, 1_000_000, nil)
	if !apperrors.IsContextError(err) {
		t.Errorf("Factorial on canceled context: err = %v, want context error", err)
	}
}

func TestFactorial_Idempotent(t *testing.T) {
	ctx := context.Background()
	first, err := Factorial(ctx, 50, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Factorial(ctx, 50, nil)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cmp(second) != 0 {
		t.Errorf("Factorial(50) not idempotent: %s vs %s", first, second)
	}
}

func TestFactorial_ReportsCompletion(t *testing.T) {
	var last float64
	_, err := Factorial(context.Background(), 5, func(v float64) { last = v })
	if err != nil {
		t.Fatal(err)
	}
	if last != 1.0 {
		t.Errorf("final progress = %v, want 1.0", last)
	}
}

func TestFactorial_MatchesMulRange(t *testing.T) {
	// Cross-check the accumulation loop against math/big's product-range
	// primitive for a spread of sizes.
	for _, n := range []uint64{1, 2, 13, 100, 500} {
		got, err := Factorial(context.Background(), n, nil)
		if err != nil {
			t.Fatal(err)
		}
		want := new(big.Int).MulRange(1, int64(n))
		if got.Cmp(want) != 0 {
			t.Errorf("Factorial(%d) disagrees with MulRange", n)
		}
	}
}
