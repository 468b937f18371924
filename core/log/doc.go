// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides structured, leveled logging for the PUT
//              toolchain with JSON, text, and console output formats.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial documentation

// Package log provides structured, leveled logging for the PUT toolchain.
//
// Loggers are immutable: the With* methods return copies, so a logger tagged
// with a component name or run ID can be handed to a subsystem without
// affecting the parent. Every CLI invocation tags its logger with a run ID
// so that all entries of one parse run can be correlated.
//
// Usage:
//
//	logger := log.GetDefault().WithName("parser").WithRunID(runID)
//	logger.Debug("starting parse", log.Fields{"length": len(src)})
//
//	timer := logger.StartTimer("parse")
//	defer timer.Stop()
package log
