// Package stringx provides string utilities that extend the Go standard library.
//
// Package: stringx
// Title: WortSchatz String Utilities
// Description: Implements the small set of string helpers the WortSchatz
//              tools need beyond the standard library, with a focus on
//              Unicode safety for word-list content.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with core utilities
package stringx
