// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the small set of string operations the PUT
//              toolchain needs beyond the Go standard library. Focuses on
//              Unicode safety and validation ergonomics.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains at least one
// non-whitespace character.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// DefaultIfBlank returns the default value if the string is blank,
// otherwise the string itself.
func DefaultIfBlank(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// Truncate shortens a string to at most maxLen runes, appending "..." when
// truncation occurred. Unicode-safe: it never cuts a rune in half.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// IsValidIdentifier reports whether s is a valid PUT identifier: a letter or
// underscore followed by letters, digits, or underscores.
func IsValidIdentifier(s string) bool {
	if IsBlank(s) {
		return false
	}

	r, size := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) && r != '_' {
		return false
	}

	for _, r := range s[size:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return true
}
