// Package error provides structured error handling for the WortSchatz tools.
//
// Package: error
// Title: WortSchatz Error Handling Framework
// Description: This package implements a structured error type with error
//              codes, severities, and contextual details. Every failure a
//              WortSchatz invocation can hit (registry loading, language
//              file I/O, collation) is classified by a Code so that the CLI
//              can report it precisely and tests can assert on it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with contextual errors and codes
//
// Usage:
//   import "github.com/msto63/wortschatz/foundation/core/error"
//
//   // Create a new error with context
//   err := error.New("language index file not found").
//     WithCode(error.CodeRegistryNotFound).
//     WithDetail("path", "languages.json")
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "could not read language file").
//     WithCode(error.CodeReadFailure).
//     WithDetail("lang", "en")
//
//   // Check error type and code
//   if error.HasCode(err, error.CodeUnknownLanguage) {
//     // Handle unknown language codes specifically
//   }
package error
