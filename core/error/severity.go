// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization of diagnostics. Severity levels determine
//              which log level an error surfaces at.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: a syntax error in user input, a missing optional config key
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: a malformed project file, an unloadable configuration
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: internal invariant violations inside the pipeline
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the tool unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeZomSyntax:
		return SeverityMedium

	case CodePUTLexical, CodePUTSyntax, CodePUTType,
		CodeTensorShape, CodeTensorIndex,
		CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeInvalidFormat:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
