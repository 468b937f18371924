// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the PUT toolchain. These codes enable
//              structured error handling and diagnostics filtering.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the PUT toolchain
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// PUT language pipeline
	CodePUTLexical Code = "PUT_LEXICAL"
	CodePUTSyntax  Code = "PUT_SYNTAX"
	CodePUTType    Code = "PUT_TYPE"

	// Tensor operations
	CodeTensorShape Code = "TENSOR_SHAPE"
	CodeTensorIndex Code = "TENSOR_INDEX"

	// Project file (.zom) and tool configuration
	CodeZomSyntax     Code = "ZOM_SYNTAX"
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodePUTLexical, CodePUTSyntax, CodePUTType,
		CodeTensorShape, CodeTensorIndex,
		CodeZomSyntax, CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodePUTLexical, CodePUTSyntax, CodePUTType:
		return "language"
	case CodeTensorShape, CodeTensorIndex:
		return "tensor"
	case CodeZomSyntax, CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat:
		return "validation"
	default:
		return "generic"
	}
}
