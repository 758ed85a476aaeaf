package errors

import (
	"strconv"
	"strings"
)

// ParseDiskCount parses s as an unsigned disk count.
// Surrounding whitespace is ignored; signs, fractions and text are rejected.
func ParseDiskCount(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, New(ErrCodeInvalidInput, "disk amount cannot be empty")
	}
	n, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidInput, err, "invalid disk amount: %s", s)
	}
	return int(n), nil
}

// ValidateDiskCount checks n against the inclusive range [0, maxDisks].
// A maxDisks of zero or less disables the upper bound.
func ValidateDiskCount(n, maxDisks int) error {
	if n < 0 {
		return New(ErrCodeInvalidDiskCount, "disk count must not be negative, got %d", n)
	}
	if maxDisks > 0 && n > maxDisks {
		return New(ErrCodeInvalidDiskCount, "disk count %d exceeds maximum of %d", n, maxDisks)
	}
	return nil
}
