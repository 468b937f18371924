// File: doc.go
// Title: Package Documentation for parser
// Description: Package parser implements lexing and recursive descent
//              parsing of PUT source text.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial documentation

// Package parser implements lexing and parsing of PUT source text.
//
// The Lexer scans source into a flat, EOF-terminated token sequence in a
// single forward pass; unrecognized characters are reported as lexical
// errors without aborting the scan. The Parser consumes that sequence
// via recursive descent with two precedence levels (additive over
// multiplicative, both left-associative) and stops at the first parse
// error, returning the statements parsed up to that point.
//
// Diagnostics are written as stable, greppable lines:
//
//	Parse error: Expect ')' after expression. at line 3
//
// Typical usage:
//
//	tokens, lexErrs := parser.TokenizeInput(source)
//	program, parseErrs := parser.NewParser(tokens).Parse()
package parser
