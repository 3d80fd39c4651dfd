// File: filex.go
// Title: Core File Utilities
// Description: Implements file operation utilities for the WortSchatz tools
//              including existence checks, line-oriented reading, and
//              line-oriented writing of word-list files.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with line-oriented file helpers
// - 2026-08-30 v0.1.1: WriteLines syncs before close

package filex

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadLines reads the file and returns its contents as a slice of lines.
// Line terminators are stripped; the final line is included whether or not
// it carries a trailing newline.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading lines from %s: %w", path, err)
	}

	return lines, nil
}

// WriteLines writes a slice of strings as lines to a file. Every line,
// including the last, is newline-terminated. The file is synced before
// close so the content is durable once WriteLines returns.
func WriteLines(path string, lines []string, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}

	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", path, err)
	}
	return nil
}
