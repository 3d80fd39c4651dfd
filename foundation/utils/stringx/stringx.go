// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements essential string operations that extend the Go
//              standard library. Focuses on Unicode safety and developer
//              ergonomics for common validation tasks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with core utilities
// - 2026-08-30 v0.1.1: Trimmed to the predicates the tools use

package stringx

import "unicode"

// IsBlank returns true if the string is empty or contains only whitespace.
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

// IsNotBlank returns true if the string contains at least one non-whitespace rune.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonBlank returns the first argument that is not blank, or "" if all are.
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}
