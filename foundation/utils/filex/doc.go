// Package filex provides file operation utilities for line-oriented text files.
//
// Package: filex
// Title: WortSchatz File Utilities
// Description: Implements the file helpers the WortSchatz tools use for
//              word-list files: existence checks for registry validation and
//              line-oriented reading and writing. Word-list files are plain
//              text, one word per line, newline-terminated.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with line-oriented file helpers
package filex
