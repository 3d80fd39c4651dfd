// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and log-level selection. Severity is derived
//              from the error code by default but can be set explicitly.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, an unknown language code on the command line
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects a single invocation
	// Examples: an unreadable merge source, a missing config value
	SeverityMedium

	// SeverityHigh indicates a serious error that blocks the requested work
	// Examples: registry validation failures, language file I/O faults
	SeverityHigh

	// SeverityCritical indicates the tool cannot operate at all
	// Examples: the collation capability missing entirely
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Critical: the sorter's hard dependency is absent
	case CodeCollationUnavailable:
		return SeverityCritical

	// High severity errors
	case CodeRegistryNotFound, CodeRegistryMalformed, CodeRegistryEntryInvalid,
		CodeReadFailure, CodeWriteFailure:
		return SeverityHigh

	// Medium severity errors
	case CodeMergeSourceUnreadable, CodeUnsupportedLocale,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium

	// Low severity errors
	case CodeInvalidInput, CodeUnknownLanguage:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
