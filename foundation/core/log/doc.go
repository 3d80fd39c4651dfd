// Package log provides structured logging for the WortSchatz tools.
//
// Package: log
// Title: WortSchatz Logging Framework
// Description: This package implements a structured logger with levels,
//              pluggable output formats (JSON and text), contextual fields,
//              and integration with the WortSchatz error system. Commands
//              create a named logger from configuration and log one entry
//              per pipeline invocation plus any failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with structured logging
//
// Usage:
//   import "github.com/msto63/wortschatz/foundation/core/log"
//
//   logger := log.NewWithConfig(log.Config{
//     Level:  log.LevelInfo,
//     Format: log.FormatText,
//     Output: os.Stderr,
//     Name:   "wortschatz",
//   })
//
//   logger.Info("sorted language file", log.Fields{"lang": "en", "words": 1042})
//   logger.LogError(err)
package log
