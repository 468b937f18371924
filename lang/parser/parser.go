// File: parser.go
// Title: PUT Recursive Descent Parser
// Description: Implements the syntactic analysis phase of PUT parsing.
//              Consumes the token sequence produced by the lexer and
//              builds the AST via recursive descent with explicit
//              precedence levels and stop-at-first-error recovery.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"io"
	"os"

	puterror "github.com/msto63/put/core/error"
	"github.com/msto63/put/core/log"
	"github.com/msto63/put/lang/ast"
)

// Options configures parser behavior
type Options struct {
	// Logger receives debug/trace output during parsing. Defaults to the
	// package default logger.
	Logger *log.Logger

	// Diagnostics receives human-readable error lines in the stable
	// "Parse error: <message> at line <line>" format. Defaults to stderr.
	Diagnostics io.Writer
}

// Parser performs syntactic analysis of a PUT token sequence.
// The cursor advances monotonically; one token of lookahead suffices
// for all grammar decisions.
type Parser struct {
	tokens      []Token
	current     int
	logger      *log.Logger
	diagnostics io.Writer
	errs        []error
}

// NewParser creates a parser for the given token sequence with defaults
func NewParser(tokens []Token) *Parser {
	return NewParserWithOptions(tokens, Options{})
}

// NewParserWithOptions creates a parser with explicit options
func NewParserWithOptions(tokens []Token, options Options) *Parser {
	logger := options.Logger
	if logger == nil {
		logger = log.GetDefault().WithName("parser")
	}

	diagnostics := options.Diagnostics
	if diagnostics == nil {
		diagnostics = os.Stderr
	}

	return &Parser{
		tokens:      tokens,
		logger:      logger,
		diagnostics: diagnostics,
	}
}

// Parse consumes the token sequence and returns the resulting program.
// On a parse error the program contains only the statements successfully
// parsed before the error; remaining input is not parsed and no
// resynchronization is attempted. The returned errors mirror the
// diagnostics written during parsing.
func (p *Parser) Parse() (*ast.Program, []error) {
	program := ast.NewProgram()

	for !p.isAtEnd() {
		stmt := p.parseStatement()
		if stmt == nil {
			break
		}
		program.Statements = append(program.Statements, stmt)
	}

	p.logger.Debug("parse finished", log.Fields{
		"statements": len(program.Statements),
		"errors":     len(p.errs),
	})

	return program, p.errs
}

// Errors returns the parse errors collected so far
func (p *Parser) Errors() []error {
	return p.errs
}

// parseStatement dispatches on the current token:
// statement := ifStmt | whileStmt | varDecl | expression
func (p *Parser) parseStatement() ast.Node {
	if p.match(TokenIf) {
		return p.parseIfStatement()
	}
	if p.match(TokenWhile) {
		return p.parseWhileStatement()
	}
	if p.match(TokenVar) {
		return p.parseVariableDeclaration()
	}
	return p.parseExpression()
}

// parseIfStatement parses: "if" "(" expression ")" statement ("else" statement)?
func (p *Parser) parseIfStatement() ast.Node {
	pos := p.previousPos()

	if _, ok := p.consume(TokenLeftParen, "Expect '(' after 'if'."); !ok {
		return nil
	}
	condition := p.parseExpression()
	if condition == nil {
		return nil
	}
	if _, ok := p.consume(TokenRightParen, "Expect ')' after if condition."); !ok {
		return nil
	}

	thenBranch := p.parseStatement()
	if thenBranch == nil {
		return nil
	}

	var elseBranch ast.Node
	if p.match(TokenElse) {
		elseBranch = p.parseStatement()
		if elseBranch == nil {
			return nil
		}
	}

	return &ast.If{
		Condition:  condition,
		ThenBranch: thenBranch,
		ElseBranch: elseBranch,
		Pos:        pos,
	}
}

// parseWhileStatement parses: "while" "(" expression ")" statement
func (p *Parser) parseWhileStatement() ast.Node {
	pos := p.previousPos()

	if _, ok := p.consume(TokenLeftParen, "Expect '(' after 'while'."); !ok {
		return nil
	}
	condition := p.parseExpression()
	if condition == nil {
		return nil
	}
	if _, ok := p.consume(TokenRightParen, "Expect ')' after while condition."); !ok {
		return nil
	}

	body := p.parseStatement()
	if body == nil {
		return nil
	}

	return &ast.While{
		Condition: condition,
		Body:      body,
		Pos:       pos,
	}
}

// parseVariableDeclaration parses: "var" IDENTIFIER ("=" expression)? ";"
// Without an initializer the declaration yields a bare Variable node;
// with one it yields an Assignment whose target is a fresh Variable.
func (p *Parser) parseVariableDeclaration() ast.Node {
	pos := p.previousPos()

	nameToken, ok := p.consume(TokenIdentifier, "Expect variable name.")
	if !ok {
		return nil
	}

	// Declarations default to Integer; no inference happens at this stage
	variable := &ast.Variable{
		Name:     nameToken.Lexeme,
		DataType: ast.TypeInteger,
		Pos:      Position(nameToken),
	}

	var initializer ast.Node
	if p.match(TokenAssign) {
		initializer = p.parseExpression()
		if initializer == nil {
			return nil
		}
	}

	if _, ok := p.consume(TokenSemicolon, "Expect ';' after variable declaration."); !ok {
		return nil
	}

	if initializer != nil {
		return &ast.Assignment{
			Left:  variable,
			Right: initializer,
			Pos:   pos,
		}
	}

	return variable
}

// parseExpression parses: expression := addition
func (p *Parser) parseExpression() ast.Node {
	return p.parseAddition()
}

// parseAddition parses: addition := multiplication (("+"|"-") multiplication)*
// Left-associative via iterative left-folding.
func (p *Parser) parseAddition() ast.Node {
	expr := p.parseMultiplication()
	if expr == nil {
		return nil
	}

	for p.matchAny(TokenPlus, TokenMinus) {
		operator := ast.OpAdd
		if p.previous().Type == TokenMinus {
			operator = ast.OpSubtract
		}

		right := p.parseMultiplication()
		if right == nil {
			return nil
		}

		expr = &ast.BinaryOperation{
			Left:     expr,
			Operator: operator,
			Right:    right,
			Pos:      expr.Position(),
		}
	}

	return expr
}

// parseMultiplication parses: multiplication := primary (("*"|"/") primary)*
func (p *Parser) parseMultiplication() ast.Node {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}

	for p.matchAny(TokenStar, TokenSlash) {
		operator := ast.OpMultiply
		if p.previous().Type == TokenSlash {
			operator = ast.OpDivide
		}

		right := p.parsePrimary()
		if right == nil {
			return nil
		}

		expr = &ast.BinaryOperation{
			Left:     expr,
			Operator: operator,
			Right:    right,
			Pos:      expr.Position(),
		}
	}

	return expr
}

// parsePrimary parses: primary := NUMBER | IDENTIFIER | "(" expression ")"
func (p *Parser) parsePrimary() ast.Node {
	if p.match(TokenNumber) {
		token := p.previous()

		// Integer unless the literal contains a decimal point
		dataType := ast.TypeInteger
		for i := 0; i < len(token.Lexeme); i++ {
			if token.Lexeme[i] == '.' {
				dataType = ast.TypeFloat
				break
			}
		}

		return &ast.Number{
			Value:    token.Lexeme,
			DataType: dataType,
			Pos:      Position(token),
		}
	}

	if p.match(TokenIdentifier) {
		token := p.previous()

		// Identifiers default to Integer in absence of inference
		return &ast.Variable{
			Name:     token.Lexeme,
			DataType: ast.TypeInteger,
			Pos:      Position(token),
		}
	}

	if p.match(TokenLeftParen) {
		pos := p.previousPos()

		expr := p.parseExpression()
		if expr == nil {
			return nil
		}
		if _, ok := p.consume(TokenRightParen, "Expect ')' after expression."); !ok {
			return nil
		}

		return &ast.Parenthesis{
			Expression: expr,
			Pos:        pos,
		}
	}

	tok := p.peek()
	p.reportError(fmt.Sprintf("Unexpected token '%s'", tok.String()), tok.Line)
	return nil
}

// match advances past the current token if it has the given type
func (p *Parser) match(tokenType TokenType) bool {
	if p.check(tokenType) {
		p.advance()
		return true
	}
	return false
}

// matchAny advances past the current token if it has any of the given types
func (p *Parser) matchAny(tokenTypes ...TokenType) bool {
	for _, tokenType := range tokenTypes {
		if p.check(tokenType) {
			p.advance()
			return true
		}
	}
	return false
}

// check tests the current token type without advancing
func (p *Parser) check(tokenType TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tokenType
}

// advance moves the cursor forward and returns the consumed token
func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// isAtEnd reports whether the cursor reached the terminating EOF token
func (p *Parser) isAtEnd() bool {
	return p.peek().Type == TokenEOF
}

// peek returns the current token without advancing. The lexer guarantees
// an EOF-terminated sequence; an out-of-range cursor yields EOF so a
// defective caller-built sequence cannot panic the parser.
func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.current]
}

// previous returns the most recently consumed token
func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

// previousPos returns the source position of the most recently consumed token
func (p *Parser) previousPos() ast.Position {
	return Position(p.previous())
}

// consume advances past a required token or reports a parse error
func (p *Parser) consume(tokenType TokenType, message string) (Token, bool) {
	if p.check(tokenType) {
		return p.advance(), true
	}

	p.reportError(message, p.peek().Line)
	return Token{}, false
}

// reportError emits a diagnostic line and records a structured error
func (p *Parser) reportError(message string, line int) {
	fmt.Fprintf(p.diagnostics, "Parse error: %s at line %d\n", message, line)

	err := puterror.New(fmt.Sprintf("Parse error: %s at line %d", message, line)).
		WithCode(puterror.CodePUTSyntax).
		WithOperation("parser.Parse").
		WithLine(line)
	p.errs = append(p.errs, err)

	p.logger.Debug("parse error", log.Fields{
		"message": message,
		"line":    line,
	})
}

// Position converts a token's source location into an AST position
func Position(t Token) ast.Position {
	return ast.Position{Line: t.Line, Column: t.Column}
}
