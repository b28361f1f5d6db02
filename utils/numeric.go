package utils

import (
	"math"
	"strconv"
	"strings"
)

// Lenient numeric coercion for user-entered amounts and counts. Every
// component that accepts numeric-ish input goes through these two functions
// so the degradation policy is applied uniformly: malformed input resolves
// to 0, it never produces an error.

// ParseAmount parses a monetary amount from a string. Leading/trailing
// whitespace is ignored and a valid numeric prefix is accepted, so "12.50"
// and "12.50 php" both yield 12.5. Unparsable input yields 0.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	prefix := numericPrefix(s)
	if prefix == "" {
		return 0
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseCount parses a quantity from a string. The fractional part of a
// decimal string is truncated ("2.9" yields 2). Unparsable input yields 0.
func ParseCount(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	prefix := numericPrefix(s)
	if prefix == "" {
		return 0
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return int(math.Trunc(f))
}

// Round rounds a number to 2 decimal places for monetary calculations.
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// numericPrefix returns the longest leading substring of s that forms a
// valid signed decimal number, optionally with one decimal point.
func numericPrefix(s string) string {
	end := 0
	seenDigit := false
	seenPoint := false
	for i, r := range s {
		switch {
		case r == '+' || r == '-':
			if i != 0 {
				goto done
			}
		case r == '.':
			if seenPoint {
				goto done
			}
			seenPoint = true
		case r >= '0' && r <= '9':
			seenDigit = true
		default:
			goto done
		}
		end = i + 1
	}
done:
	if !seenDigit {
		return ""
	}
	return s[:end]
}
