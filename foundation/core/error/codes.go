// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the WortSchatz tools. These codes enable
//              structured error handling, precise CLI error reporting, and
//              assertable failures in tests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the WortSchatz tools
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Registry loading
	CodeRegistryNotFound     Code = "REGISTRY_NOT_FOUND"
	CodeRegistryMalformed    Code = "REGISTRY_MALFORMED"
	CodeRegistryEntryInvalid Code = "REGISTRY_ENTRY_INVALID"

	// Language file store
	CodeUnknownLanguage Code = "UNKNOWN_LANGUAGE"
	CodeReadFailure     Code = "READ_FAILURE"
	CodeWriteFailure    Code = "WRITE_FAILURE"

	// Collation
	CodeUnsupportedLocale    Code = "UNSUPPORTED_LOCALE"
	CodeCollationUnavailable Code = "COLLATION_UNAVAILABLE"

	// Merge pipeline
	CodeMergeSourceUnreadable Code = "MERGE_SOURCE_UNREADABLE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeRegistryNotFound, CodeRegistryMalformed, CodeRegistryEntryInvalid,
		CodeUnknownLanguage, CodeReadFailure, CodeWriteFailure,
		CodeUnsupportedLocale, CodeCollationUnavailable,
		CodeMergeSourceUnreadable,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeRegistryNotFound, CodeRegistryMalformed, CodeRegistryEntryInvalid:
		return "registry"
	case CodeUnknownLanguage, CodeReadFailure, CodeWriteFailure:
		return "store"
	case CodeUnsupportedLocale, CodeCollationUnavailable:
		return "collation"
	case CodeMergeSourceUnreadable:
		return "merge"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit code the CLI should use for this error code
func (c Code) ExitCode() int {
	switch c {
	case CodeRegistryNotFound, CodeRegistryMalformed, CodeRegistryEntryInvalid:
		return 2
	case CodeUnknownLanguage:
		return 3
	case CodeReadFailure, CodeWriteFailure, CodeMergeSourceUnreadable:
		return 4
	case CodeUnsupportedLocale, CodeCollationUnavailable:
		return 5
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return 6
	default:
		return 1
	}
}
