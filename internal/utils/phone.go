package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizePhone strips spaces, dashes and parentheses from a local phone
// number and validates the result: exactly 11 digits starting with 0
// (e.g. 08031234567). The normalized digits-only form is what gets stored.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')':
			// separators are dropped
		default:
			return "", fmt.Errorf("phone number contains invalid character %q", r)
		}
	}
	digits := b.String()
	if len(digits) != 11 {
		return "", fmt.Errorf("phone number must be exactly 11 digits, got %d", len(digits))
	}
	if digits[0] != '0' {
		return "", fmt.Errorf("phone number must start with 0")
	}
	return digits, nil
}

// IsValidPhone reports whether raw normalizes to a valid local phone number.
func IsValidPhone(raw string) bool {
	_, err := NormalizePhone(raw)
	return err == nil
}
