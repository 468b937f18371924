// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Unit tests for the string utility functions in the stringx
//              package, covering edge cases and Unicode handling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial test implementation

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
		{"unicode content", "über", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsBlank(tt.input)
			if result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDefaultIfBlank(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		defaultValue string
		expected     string
	}{
		{"blank input", "  ", "fallback", "fallback"},
		{"empty input", "", "fallback", "fallback"},
		{"non-blank input", "value", "fallback", "value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DefaultIfBlank(tt.input, tt.defaultValue)
			if result != tt.expected {
				t.Errorf("DefaultIfBlank(%q, %q) = %q; want %q",
					tt.input, tt.defaultValue, result, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"shorter than max", "abc", 10, "abc"},
		{"exactly max", "abcde", 5, "abcde"},
		{"longer than max", "abcdefghij", 6, "abc..."},
		{"tiny max", "abcdef", 2, "ab"},
		{"zero max", "abcdef", 0, ""},
		{"unicode safe", "äöüäöüäöü", 6, "äöü..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q; want %q",
					tt.input, tt.maxLen, result, tt.expected)
			}
		})
	}
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"simple identifier", "counter", true},
		{"underscore start", "_tmp", true},
		{"with digits", "value2", true},
		{"empty", "", false},
		{"blank", "   ", false},
		{"digit start", "2value", false},
		{"contains hyphen", "my-var", false},
		{"contains space", "my var", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidIdentifier(tt.input)
			if result != tt.expected {
				t.Errorf("IsValidIdentifier(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}
