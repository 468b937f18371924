// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the extended string operations used
//              across the PUT toolchain, with a focus on Unicode safety and
//              validation helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial documentation

// Package stringx provides extended string operations for the PUT toolchain.
//
// The package deliberately stays small: blank checking, safe truncation, and
// identifier validation are the operations the configuration loader, the
// project-file reader, and the CLI share. Anything a single package needs
// stays in that package.
package stringx
