// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides structured error handling for the PUT
//              toolchain with error codes, severities, and contextual
//              details.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial documentation

// Package error provides structured error handling for the PUT toolchain.
//
// Errors carry a classification code (see codes.go), a severity derived from
// that code, an optional source line, and free-form details. The type is
// fully compatible with the standard library: it implements error, supports
// errors.Is/As via Unwrap, and marshals to JSON for structured logging.
//
// Usage:
//
//	err := puterror.New("unexpected token").
//		WithCode(puterror.CodePUTSyntax).
//		WithOperation("parser.parseStatement").
//		WithLine(3)
package error
