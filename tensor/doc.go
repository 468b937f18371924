// File: doc.go
// Title: Package Documentation for tensor
// Description: Package tensor implements an n-dimensional numeric array
//              with arithmetic and summary statistics.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial documentation

// Package tensor implements an n-dimensional float64 array stored in
// row-major order. Element-wise operations and matrix multiplication
// report shape mismatches as errors; constructing a tensor whose buffer
// does not match its shape is a precondition violation and panics.
package tensor
