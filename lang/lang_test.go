// File: lang_test.go
// Title: Language Pipeline Tests
// Description: Tests for the combined lex+parse facade.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial implementation

package lang

import (
	"bytes"
	"strings"
	"testing"

	"github.com/msto63/put/lang/ast"
)

func TestParseSource(t *testing.T) {
	var diagnostics bytes.Buffer
	result, err := ParseSource("var x = (42 + 5) * 2 - 3 / 1.5;", Options{
		Diagnostics: &diagnostics,
	})
	if err != nil {
		t.Fatalf("ParseSource() error = %v", err)
	}

	if result.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.AllErrors())
	}
	if len(result.Tokens) != 16 {
		t.Errorf("got %d tokens, want 16", len(result.Tokens))
	}
	if len(result.Program.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(result.Program.Statements))
	}
	if _, ok := result.Program.Statements[0].(*ast.Assignment); !ok {
		t.Errorf("statement = %T, want *ast.Assignment", result.Program.Statements[0])
	}
	if diagnostics.Len() != 0 {
		t.Errorf("diagnostics = %q, want empty", diagnostics.String())
	}
}

func TestParseSourceLexicalErrorContinues(t *testing.T) {
	var diagnostics bytes.Buffer
	result, err := ParseSource("var x @ = 1;", Options{
		Diagnostics: &diagnostics,
	})
	if err != nil {
		t.Fatalf("ParseSource() error = %v", err)
	}

	if len(result.LexicalErrors) != 1 {
		t.Errorf("got %d lexical errors, want 1", len(result.LexicalErrors))
	}

	// The bad character is dropped, the remaining tokens still parse
	if len(result.ParseErrors) != 0 {
		t.Errorf("unexpected parse errors: %v", result.ParseErrors)
	}
	if len(result.Program.Statements) != 1 {
		t.Errorf("got %d statements, want 1", len(result.Program.Statements))
	}
}

func TestParseSourceParseError(t *testing.T) {
	var diagnostics bytes.Buffer
	result, err := ParseSource("var x = ;", Options{
		Diagnostics: &diagnostics,
	})
	if err != nil {
		t.Fatalf("ParseSource() error = %v", err)
	}

	if !result.HasErrors() {
		t.Fatal("expected parse errors")
	}
	if len(result.Program.Statements) != 0 {
		t.Errorf("got %d statements, want 0", len(result.Program.Statements))
	}
	if !strings.Contains(diagnostics.String(), "Parse error:") {
		t.Errorf("diagnostics = %q, want parse error line", diagnostics.String())
	}
}

func TestParseSourceEmptyInput(t *testing.T) {
	result, err := ParseSource("", Options{})
	if err != nil {
		t.Fatalf("ParseSource() error = %v", err)
	}
	if result.HasErrors() {
		t.Errorf("unexpected errors: %v", result.AllErrors())
	}
	if !result.Program.IsEmpty() {
		t.Error("empty input should yield empty program")
	}
	if len(result.Tokens) != 1 {
		t.Errorf("got %d tokens, want 1 (EOF)", len(result.Tokens))
	}
}

func TestParseSourceMaxInputLength(t *testing.T) {
	_, err := ParseSource("var x = 1;", Options{MaxInputLength: 5})
	if err == nil {
		t.Fatal("oversized input should be rejected")
	}

	result, err := ParseSource("var x = 1;", Options{MaxInputLength: 1024})
	if err != nil {
		t.Fatalf("ParseSource() error = %v", err)
	}
	if result.HasErrors() {
		t.Errorf("unexpected errors: %v", result.AllErrors())
	}
}

func TestResultAllErrors(t *testing.T) {
	result, err := ParseSource("@ var x = ;", Options{Diagnostics: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("ParseSource() error = %v", err)
	}

	all := result.AllErrors()
	if len(all) != len(result.LexicalErrors)+len(result.ParseErrors) {
		t.Errorf("AllErrors() = %d entries, want %d",
			len(all), len(result.LexicalErrors)+len(result.ParseErrors))
	}
	if len(all) < 2 {
		t.Errorf("expected both lexical and parse errors, got %v", all)
	}
}
