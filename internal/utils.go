package internal

import (
	"strings"
	"unicode"
)

// Version is the cipherpair release version
const Version = "0.3.1"

// SanitizeFilename creates a safe filename component from a string
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// isAlphaNumeric checks if a rune is a letter or digit in any script
func isAlphaNumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
