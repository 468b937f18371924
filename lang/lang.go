// File: lang.go
// Title: PUT Language Pipeline Facade
// Description: Wires the lexer and parser into a single entry point for
//              callers that want to turn PUT source text into an AST with
//              collected diagnostics.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial pipeline facade

package lang

import (
	"fmt"
	"io"

	puterror "github.com/msto63/put/core/error"
	"github.com/msto63/put/core/log"
	"github.com/msto63/put/lang/ast"
	"github.com/msto63/put/lang/parser"
)

// Options configures a pipeline run
type Options struct {
	// Logger receives structured debug output. Defaults to the package
	// default logger.
	Logger *log.Logger

	// Diagnostics receives the stable human-readable error lines.
	// Defaults to stderr (via the parser).
	Diagnostics io.Writer

	// MaxInputLength rejects oversized inputs before lexing when > 0
	MaxInputLength int
}

// Result holds the outcome of a full lex+parse run. Program is never
// nil, but may be empty or partial when errors occurred.
type Result struct {
	Program       *ast.Program
	Tokens        []parser.Token
	LexicalErrors []error
	ParseErrors   []error
}

// HasErrors returns true if any stage reported an error
func (r *Result) HasErrors() bool {
	return len(r.LexicalErrors) > 0 || len(r.ParseErrors) > 0
}

// AllErrors returns lexical and parse errors in pipeline order
func (r *Result) AllErrors() []error {
	errs := make([]error, 0, len(r.LexicalErrors)+len(r.ParseErrors))
	errs = append(errs, r.LexicalErrors...)
	errs = append(errs, r.ParseErrors...)
	return errs
}

// ParseSource runs the full pipeline over the given source text.
// Lexical errors do not abort parsing: the parser consumes whatever
// token sequence the lexer produced. The returned error is non-nil only
// for precondition failures such as oversized input.
func ParseSource(source string, options Options) (*Result, error) {
	logger := options.Logger
	if logger == nil {
		logger = log.GetDefault().WithName("lang")
	}

	if options.MaxInputLength > 0 && len(source) > options.MaxInputLength {
		return nil, puterror.New(fmt.Sprintf("input exceeds maximum length of %d bytes", options.MaxInputLength)).
			WithCode(puterror.CodeInvalidInput).
			WithOperation("lang.ParseSource").
			WithDetail("length", len(source)).
			WithDetail("maxLength", options.MaxInputLength)
	}

	timer := logger.StartTimer("tokenize")
	tokens, lexErrs := parser.TokenizeInput(source)
	timer.WithField("tokens", len(tokens)).Stop()

	for _, err := range lexErrs {
		logger.LogError(err)
	}

	timer = logger.StartTimer("parse")
	p := parser.NewParserWithOptions(tokens, parser.Options{
		Logger:      logger,
		Diagnostics: options.Diagnostics,
	})
	program, parseErrs := p.Parse()
	timer.WithField("statements", len(program.Statements)).Stop()

	return &Result{
		Program:       program,
		Tokens:        tokens,
		LexicalErrors: lexErrs,
		ParseErrors:   parseErrs,
	}, nil
}
