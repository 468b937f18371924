// File: lexer.go
// Title: PUT Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of PUT parsing.
//              Converts PUT source text into a flat token sequence for
//              the parser, tracking line and column information for
//              error reporting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"

	puterror "github.com/msto63/put/core/error"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Keywords
	TokenVar   // var
	TokenIf    // if
	TokenElse  // else
	TokenWhile // while

	// Identifiers and literals
	TokenIdentifier // x, counter, _tmp
	TokenNumber     // 42, 1.5

	// Operators and punctuation
	TokenAssign     // =
	TokenSemicolon  // ;
	TokenLeftParen  // (
	TokenRightParen // )
	TokenPlus       // +
	TokenMinus      // -
	TokenStar       // *
	TokenSlash      // /
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenVar:
		return "VAR"
	case TokenIf:
		return "IF"
	case TokenElse:
		return "ELSE"
	case TokenWhile:
		return "WHILE"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenNumber:
		return "NUMBER"
	case TokenAssign:
		return "ASSIGN"
	case TokenSemicolon:
		return "SEMICOLON"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Type   TokenType // Token type
	Lexeme string    // Exact source text the token was derived from
	Line   int       // Line number (1-based)
	Column int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Lexeme)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Lexeme)
	}
}

// Keywords map for identifier lookup. Keywords are case-sensitive and
// classified at lex time, never by lexeme comparison in the parser.
var keywords = map[string]TokenType{
	"var":   TokenVar,
	"if":    TokenIf,
	"else":  TokenElse,
	"while": TokenWhile,
}

// Lexer performs lexical analysis of PUT source text
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	line := l.line
	column := l.column

	switch l.ch {
	case '=':
		tok = newToken(TokenAssign, l.ch, line, column)
	case ';':
		tok = newToken(TokenSemicolon, l.ch, line, column)
	case '(':
		tok = newToken(TokenLeftParen, l.ch, line, column)
	case ')':
		tok = newToken(TokenRightParen, l.ch, line, column)
	case '+':
		tok = newToken(TokenPlus, l.ch, line, column)
	case '-':
		tok = newToken(TokenMinus, l.ch, line, column)
	case '*':
		tok = newToken(TokenStar, l.ch, line, column)
	case '/':
		tok = newToken(TokenSlash, l.ch, line, column)
	case 0:
		tok = Token{Type: TokenEOF, Lexeme: "", Line: line, Column: column}
	default:
		if isLetter(l.ch) {
			tok.Line = line
			tok.Column = column
			tok.Lexeme = l.readIdentifier()
			tok.Type = lookupIdent(tok.Lexeme)
			return tok // Early return to avoid readChar()
		} else if isDigit(l.ch) {
			tok.Type = TokenNumber
			tok.Lexeme = l.readNumber()
			tok.Line = line
			tok.Column = column
			return tok // Early return to avoid readChar()
		}
		tok = newToken(TokenIllegal, l.ch, line, column)
	}

	l.readChar()
	return tok
}

// Tokenize scans the full input and returns the token sequence together
// with any lexical errors. Scanning continues past unrecognized
// characters so the token sequence is always terminated with EOF, even
// for defective input.
func (l *Lexer) Tokenize() ([]Token, []error) {
	var tokens []Token
	var errs []error

	for {
		tok := l.NextToken()

		if tok.Type == TokenIllegal {
			errs = append(errs, puterror.New(
				fmt.Sprintf("Lexical error: unexpected character '%s' at line %d", tok.Lexeme, tok.Line)).
				WithCode(puterror.CodePUTLexical).
				WithOperation("parser.Tokenize").
				WithLine(tok.Line).
				WithDetail("character", tok.Lexeme))
			continue
		}

		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}
	}

	return tokens, errs
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	// Update line and column tracking
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readIdentifier reads an identifier (letters, digits, underscores)
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a numeric literal (integer or float)
func (l *Lexer) readNumber() string {
	start := l.position

	for isDigit(l.ch) {
		l.readChar()
	}

	// At most one decimal point, followed by at least one digit
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.position]
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// newToken creates a new single-character token
func newToken(tokenType TokenType, ch byte, line, column int) Token {
	return Token{
		Type:   tokenType,
		Lexeme: string(ch),
		Line:   line,
		Column: column,
	}
}

// isLetter checks if the character can start or continue an identifier
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// lookupIdent determines if an identifier is a keyword or regular identifier
func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdentifier
}

// IsKeyword checks if a string is a PUT keyword
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// TokenizeInput is a convenience function that tokenizes input in one call
func TokenizeInput(input string) ([]Token, []error) {
	lexer := NewLexer(input)
	return lexer.Tokenize()
}
