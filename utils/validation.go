package utils

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidateNotEmpty checks if a slice is not empty
func ValidateNotEmpty[T any](slice []T, fieldName string) error {
	if len(slice) == 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be empty", fieldName))
	}
	return nil
}

// NormalizeCurrency resolves a currency code to one of the supported
// currencies, defaulting to PHP for anything unrecognized.
func NormalizeCurrency(currency string) string {
	if strings.ToUpper(strings.TrimSpace(currency)) == CurrencyUSD {
		return CurrencyUSD
	}
	return CurrencyPHP
}

// NormalizeTheme resolves a theme name, defaulting to light for anything
// that is not exactly "dark".
func NormalizeTheme(theme string) string {
	if theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// IsValidTheme reports whether theme is one of the two persisted values.
func IsValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}

// IsValidFilter reports whether mode is a recognized status filter.
func IsValidFilter(mode string) bool {
	return mode == FilterAll || mode == FilterPaid || mode == FilterUnpaid
}
