package utils

import (
	"strings"
	"unicode"
)

// ToPtr returns a pointer to the given value
func ToPtr[T any](v T) *T {
	return &v
}

// IsTrue reports whether a *bool is non-nil and true
func IsTrue(b *bool) bool {
	return b != nil && *b
}

// Capitalize upper-cases the first rune and lower-cases the rest.
// Bookmaker and template names are stored in this form so that
// lookups by name are case-insensitive.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
