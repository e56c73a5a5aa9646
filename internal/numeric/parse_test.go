package numeric

import (
	"testing"

	apperrors "github.com/agbru/numcalc/internal/errors"
)

func TestParseIndex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint64
		wantErr bool
	}{
		{"zero", "0", 0, false},
		{"simple", "42", 42, false},
		{"surrounding whitespace", "  7 ", 7, false},
		{"max uint64", "18446744073709551615", 18446744073709551615, false},
		{"negative", "-1", 0, true},
		{"negative large", "-29", 0, true},
		{"not a number", "five", 0, true},
		{"float", "3.5", 0, true},
		{"empty", "", 0, true},
		{"whitespace only", "   ", 0, true},
		{"overflow", "18446744073709551616", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIndex("n", tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseIndex(%q) succeeded, want error", tt.input)
				}
				if !apperrors.IsValidationError(err) {
					t.Errorf("ParseIndex(%q) error = %v, want ValidationError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIndex(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseIndex(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
