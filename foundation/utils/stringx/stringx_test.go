// File: stringx_test.go
// Title: String Utility Tests
// Description: Tests for the stringx helper functions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with utility tests

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"spaces", "   ", true},
		{"tabs and newlines", "\t\n ", true},
		{"unicode space", " ", true},
		{"word", "wort", false},
		{"padded word", "  wort  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := IsNotBlank(tt.input); got == tt.want {
				t.Errorf("IsNotBlank(%q) = %v, want %v", tt.input, got, !tt.want)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "fallback"); got != "fallback" {
		t.Errorf("FirstNonBlank = %q, want fallback", got)
	}
	if got := FirstNonBlank("first", "second"); got != "first" {
		t.Errorf("FirstNonBlank = %q, want first", got)
	}
	if got := FirstNonBlank("", " "); got != "" {
		t.Errorf("FirstNonBlank = %q, want empty", got)
	}
}
