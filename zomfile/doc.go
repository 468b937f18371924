// File: doc.go
// Title: Package Documentation for zomfile
// Description: Package zomfile reads .zom project files.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial documentation

// Package zomfile reads .zom project files, a line-oriented format with
// "## Section" headers and "- key: value" entries. Five sections are
// recognized; entries under unknown sections are skipped. The result is
// consumed by the tooling around the language pipeline, never by the
// pipeline itself.
package zomfile
