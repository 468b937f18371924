// File: logger_test.go
// Title: Logger Tests
// Description: Tests for the main logger functionality including configuration,
//              context management, level filtering, and error integration.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial implementation

package log

import (
	"bytes"
	"strings"
	"testing"

	puterror "github.com/msto63/put/core/error"
)

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}

	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	config := Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	}

	logger := NewWithConfig(config)

	if logger.GetLevel() != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.GetLevel(), LevelError)
	}

	if logger.name != "test-logger" {
		t.Errorf("NewWithConfig() name = %v, want test-logger", logger.name)
	}

	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestLoggerWithLevel(t *testing.T) {
	logger := New()
	newLogger := logger.WithLevel(LevelDebug)

	if newLogger == logger {
		t.Error("WithLevel() should return a new logger instance")
	}

	if newLogger.GetLevel() != LevelDebug {
		t.Errorf("WithLevel() level = %v, want %v", newLogger.GetLevel(), LevelDebug)
	}

	// Original logger should be unchanged
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
}

func TestLoggerWithName(t *testing.T) {
	logger := New()
	newLogger := logger.WithName("lexer")

	if newLogger == logger {
		t.Error("WithName() should return a new logger instance")
	}

	if newLogger.name != "lexer" {
		t.Errorf("WithName() name = %v, want lexer", newLogger.name)
	}
}

func TestLoggerWithField(t *testing.T) {
	logger := New()
	newLogger := logger.WithField("source", "main.put")

	if newLogger == logger {
		t.Error("WithField() should return a new logger instance")
	}

	if newLogger.contextFields["source"] != "main.put" {
		t.Error("WithField() should add context field")
	}

	// Original logger should be unchanged
	if _, exists := logger.contextFields["source"]; exists {
		t.Error("WithField() should not modify original logger")
	}
}

func TestLoggerWithFields(t *testing.T) {
	logger := New()
	fields := Fields{"source": "main.put", "phase": "lex"}
	newLogger := logger.WithFields(fields)

	if newLogger == logger {
		t.Error("WithFields() should return a new logger instance")
	}

	for k, v := range fields {
		if newLogger.contextFields[k] != v {
			t.Errorf("WithFields() should add field %s=%v", k, v)
		}
	}
}

func TestLoggerWithRunID(t *testing.T) {
	logger := New()
	newLogger := logger.WithRunID("run-123")

	if newLogger == logger {
		t.Error("WithRunID() should return a new logger instance")
	}

	if newLogger.runID != "run-123" {
		t.Errorf("WithRunID() runID = %v, want run-123", newLogger.runID)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: &buf,
	})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()

	if strings.Contains(output, "debug message") {
		t.Error("debug message should be filtered at warn level")
	}
	if strings.Contains(output, "info message") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("warn message should be logged at warn level")
	}
	if !strings.Contains(output, "error message") {
		t.Error("error message should be logged at warn level")
	}
}

func TestLoggerContextFieldsInOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelInfo,
		Format: FormatText,
		Output: &buf,
	}).WithField("component", "parser").WithRunID("run-9")

	logger.Info("statement parsed")

	output := buf.String()

	if !strings.Contains(output, "component=parser") {
		t.Errorf("output should contain context field, got %q", output)
	}
	if !strings.Contains(output, "(run=run-9)") {
		t.Errorf("output should contain run ID, got %q", output)
	}
}

func TestLoggerIsLevelEnabled(t *testing.T) {
	logger := New().WithLevel(LevelWarn)

	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should not be enabled at warn level")
	}
	if !logger.IsLevelEnabled(LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestLoggerLogError(t *testing.T) {
	tests := []struct {
		name     string
		severity puterror.Severity
		wantTag  string
	}{
		{"low severity logs info", puterror.SeverityLow, "[INF]"},
		{"medium severity logs warn", puterror.SeverityMedium, "[WRN]"},
		{"high severity logs error", puterror.SeverityHigh, "[ERR]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithConfig(Config{
				Level:  LevelTrace,
				Format: FormatText,
				Output: &buf,
			})

			err := puterror.New("something broke").
				WithCode(puterror.CodeInternal).
				WithSeverity(tt.severity).
				WithLine(4)

			logger.LogError(err)

			output := buf.String()
			if !strings.Contains(output, tt.wantTag) {
				t.Errorf("LogError() output = %q, want level tag %s", output, tt.wantTag)
			}
			if !strings.Contains(output, "error_code=INTERNAL") {
				t.Errorf("LogError() output should contain error code, got %q", output)
			}
			if !strings.Contains(output, "error_line=4") {
				t.Errorf("LogError() output should contain error line, got %q", output)
			}
		})
	}
}

func TestLoggerLogErrorNil(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelTrace,
		Format: FormatText,
		Output: &buf,
	})

	logger.LogError(nil)

	if buf.Len() != 0 {
		t.Errorf("LogError(nil) should not log, got %q", buf.String())
	}
}

func TestTimerStop(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelTrace,
		Format: FormatText,
		Output: &buf,
	})

	timer := logger.StartTimer("tokenize")
	elapsed := timer.Stop()

	if elapsed < 0 {
		t.Error("Timer.Stop() should return a non-negative duration")
	}

	output := buf.String()
	if !strings.Contains(output, "tokenize completed") {
		t.Errorf("Timer.Stop() should log completion, got %q", output)
	}
	if !strings.Contains(output, "operation=tokenize") {
		t.Errorf("Timer.Stop() should log the operation field, got %q", output)
	}
}

func TestTimerStopTwice(t *testing.T) {
	logger := New().WithOutput(&bytes.Buffer{})

	timer := logger.StartTimer("parse")
	timer.Stop()

	if elapsed := timer.Stop(); elapsed != 0 {
		t.Errorf("second Timer.Stop() should return 0, got %v", elapsed)
	}
}

func TestTimerStopWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelTrace,
		Format: FormatText,
		Output: &buf,
	})

	timer := logger.StartTimer("parse")
	timer.StopWithError(puterror.New("bad token"))

	output := buf.String()
	if !strings.Contains(output, "parse failed") {
		t.Errorf("Timer.StopWithError() should log failure, got %q", output)
	}
	if !strings.Contains(output, "[ERR]") {
		t.Errorf("Timer.StopWithError() should log at error level, got %q", output)
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewWithConfig(Config{
		Level:  LevelInfo,
		Format: FormatText,
		Output: &buf,
	}))

	Info("hello from default")

	if !strings.Contains(buf.String(), "hello from default") {
		t.Errorf("package-level Info() should use the default logger, got %q", buf.String())
	}
}
