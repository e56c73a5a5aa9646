package numeric

import (
	"strconv"
	"strings"

	apperrors "github.com/agbru/numcalc/internal/errors"
)

// ParseIndex converts raw user input into a non-negative integer. It is the
// single validation boundary for every input surface (flags, REPL, TUI):
// non-integer text and negative values fail with a ValidationError.
func ParseIndex(field, input string) (uint64, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, apperrors.NewValidationError(field, "value is required")
	}
	if strings.HasPrefix(s, "-") {
		return 0, apperrors.NewValidationError(field, "must be a non-negative integer, got %s", s)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(field, "must be a non-negative integer, got %q", s)
	}
	return n, nil
}
