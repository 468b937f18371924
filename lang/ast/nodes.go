// File: nodes.go
// Title: PUT AST Node Definitions
// Description: Defines all AST node types for representing PUT programs
//              including statements, expressions, and literals. Provides
//              string representations and validation methods.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strings"

	"github.com/msto63/put/utils/stringx"
)

// Node represents the base interface for all AST nodes.
// The node set is closed: only the types in this package implement it.
type Node interface {
	// String returns a source-like string representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate performs basic validation of the node
	Validate() error

	// marker method, restricts implementations to this package
	stmtNode()
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

// DataType represents the static type of a value in PUT
type DataType int

const (
	TypeInteger DataType = iota
	TypeFloat
	TypeString
	TypeBoolean
	TypeVoid
)

// String returns the string representation of the data type
func (dt DataType) String() string {
	switch dt {
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeBoolean:
		return "boolean"
	case TypeVoid:
		return "void"
	default:
		return "unknown"
	}
}

// BinaryOperator represents an arithmetic operator in a binary operation
type BinaryOperator int

const (
	OpAdd BinaryOperator = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// String returns the name of the operator as used in AST dumps
func (op BinaryOperator) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSubtract:
		return "Subtract"
	case OpMultiply:
		return "Multiply"
	case OpDivide:
		return "Divide"
	default:
		return "Unknown"
	}
}

// Symbol returns the operator as it appears in source code
func (op BinaryOperator) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// Program represents a complete PUT program, a sequence of statements
type Program struct {
	Statements []Node   // Top-level statements in source order
	Pos        Position // Source position
}

// NewProgram creates an empty program
func NewProgram() *Program {
	return &Program{
		Statements: make([]Node, 0),
	}
}

// Variable represents a variable reference or a bare variable declaration
type Variable struct {
	Name     string   // Variable name
	DataType DataType // Declared or inferred data type
	Pos      Position // Source position
}

// Number represents a numeric literal
type Number struct {
	Value    string   // Raw lexeme of the number
	DataType DataType // TypeInteger, or TypeFloat if the lexeme contains '.'
	Pos      Position // Source position
}

// Assignment represents a variable declaration with an initializer
type Assignment struct {
	Left  Node     // Assignment target, a *Variable
	Right Node     // Initializer expression
	Pos   Position // Source position
}

// BinaryOperation represents an arithmetic expression with two operands
type BinaryOperation struct {
	Left     Node           // Left operand
	Operator BinaryOperator // Arithmetic operator
	Right    Node           // Right operand
	Pos      Position       // Source position
}

// Parenthesis represents a parenthesized expression
type Parenthesis struct {
	Expression Node     // Inner expression
	Pos        Position // Source position
}

// If represents an if statement with optional else branch
type If struct {
	Condition  Node     // Condition expression
	ThenBranch Node     // Statement executed when the condition holds
	ElseBranch Node     // Optional else statement, nil when absent
	Pos        Position // Source position
}

// While represents a while loop
type While struct {
	Condition Node     // Condition expression
	Body      Node     // Loop body statement
	Pos       Position // Source position
}

// Implementation of Node interface for Program

func (p *Program) String() string {
	parts := make([]string, 0, len(p.Statements))
	for _, stmt := range p.Statements {
		parts = append(parts, stmt.String())
	}
	return strings.Join(parts, " ")
}

func (p *Program) Accept(visitor Visitor) interface{} {
	return visitor.VisitProgram(p)
}

func (p *Program) Position() Position {
	return p.Pos
}

func (p *Program) Validate() error {
	for i, stmt := range p.Statements {
		if stmt == nil {
			return fmt.Errorf("statement %d is nil", i)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	return nil
}

func (p *Program) stmtNode() {}

// IsEmpty returns true if the program contains no statements
func (p *Program) IsEmpty() bool {
	return len(p.Statements) == 0
}

// Implementation of Node interface for Variable

func (v *Variable) String() string {
	return v.Name
}

func (v *Variable) Accept(visitor Visitor) interface{} {
	return visitor.VisitVariable(v)
}

func (v *Variable) Position() Position {
	return v.Pos
}

func (v *Variable) Validate() error {
	if stringx.IsBlank(v.Name) {
		return fmt.Errorf("variable name is required")
	}
	if !stringx.IsValidIdentifier(v.Name) {
		return fmt.Errorf("invalid variable name: %s", v.Name)
	}
	return nil
}

func (v *Variable) stmtNode() {}

// Implementation of Node interface for Number

func (n *Number) String() string {
	return n.Value
}

func (n *Number) Accept(visitor Visitor) interface{} {
	return visitor.VisitNumber(n)
}

func (n *Number) Position() Position {
	return n.Pos
}

func (n *Number) Validate() error {
	if stringx.IsBlank(n.Value) {
		return fmt.Errorf("number value is required")
	}
	if n.DataType != TypeInteger && n.DataType != TypeFloat {
		return fmt.Errorf("number must be integer or float, got %s", n.DataType)
	}
	return nil
}

func (n *Number) stmtNode() {}

// IsFloat returns true if the literal is a floating point number
func (n *Number) IsFloat() bool {
	return n.DataType == TypeFloat
}

// Implementation of Node interface for Assignment

func (a *Assignment) String() string {
	return fmt.Sprintf("var %s = %s;", a.Left.String(), a.Right.String())
}

func (a *Assignment) Accept(visitor Visitor) interface{} {
	return visitor.VisitAssignment(a)
}

func (a *Assignment) Position() Position {
	return a.Pos
}

func (a *Assignment) Validate() error {
	if a.Left == nil {
		return fmt.Errorf("assignment target is required")
	}
	if a.Right == nil {
		return fmt.Errorf("assignment value is required")
	}
	if _, ok := a.Left.(*Variable); !ok {
		return fmt.Errorf("assignment target must be a variable")
	}
	if err := a.Left.Validate(); err != nil {
		return fmt.Errorf("assignment target: %w", err)
	}
	if err := a.Right.Validate(); err != nil {
		return fmt.Errorf("assignment value: %w", err)
	}
	return nil
}

func (a *Assignment) stmtNode() {}

// Implementation of Node interface for BinaryOperation

func (bo *BinaryOperation) String() string {
	return fmt.Sprintf("%s %s %s", bo.Left.String(), bo.Operator.Symbol(), bo.Right.String())
}

func (bo *BinaryOperation) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryOperation(bo)
}

func (bo *BinaryOperation) Position() Position {
	return bo.Pos
}

func (bo *BinaryOperation) Validate() error {
	if bo.Left == nil {
		return fmt.Errorf("left operand is required")
	}
	if bo.Right == nil {
		return fmt.Errorf("right operand is required")
	}
	if err := bo.Left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := bo.Right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	return nil
}

func (bo *BinaryOperation) stmtNode() {}

// Implementation of Node interface for Parenthesis

func (p *Parenthesis) String() string {
	return fmt.Sprintf("(%s)", p.Expression.String())
}

func (p *Parenthesis) Accept(visitor Visitor) interface{} {
	return visitor.VisitParenthesis(p)
}

func (p *Parenthesis) Position() Position {
	return p.Pos
}

func (p *Parenthesis) Validate() error {
	if p.Expression == nil {
		return fmt.Errorf("parenthesized expression is required")
	}
	return p.Expression.Validate()
}

func (p *Parenthesis) stmtNode() {}

// Implementation of Node interface for If

func (i *If) String() string {
	result := fmt.Sprintf("if (%s) %s", i.Condition.String(), i.ThenBranch.String())
	if i.ElseBranch != nil {
		result += fmt.Sprintf(" else %s", i.ElseBranch.String())
	}
	return result
}

func (i *If) Accept(visitor Visitor) interface{} {
	return visitor.VisitIf(i)
}

func (i *If) Position() Position {
	return i.Pos
}

func (i *If) Validate() error {
	if i.Condition == nil {
		return fmt.Errorf("if condition is required")
	}
	if i.ThenBranch == nil {
		return fmt.Errorf("if body is required")
	}
	if err := i.Condition.Validate(); err != nil {
		return fmt.Errorf("if condition: %w", err)
	}
	if err := i.ThenBranch.Validate(); err != nil {
		return fmt.Errorf("if body: %w", err)
	}
	if i.ElseBranch != nil {
		if err := i.ElseBranch.Validate(); err != nil {
			return fmt.Errorf("else body: %w", err)
		}
	}
	return nil
}

func (i *If) stmtNode() {}

// HasElse returns true if the statement carries an else branch
func (i *If) HasElse() bool {
	return i.ElseBranch != nil
}

// Implementation of Node interface for While

func (w *While) String() string {
	return fmt.Sprintf("while (%s) %s", w.Condition.String(), w.Body.String())
}

func (w *While) Accept(visitor Visitor) interface{} {
	return visitor.VisitWhile(w)
}

func (w *While) Position() Position {
	return w.Pos
}

func (w *While) Validate() error {
	if w.Condition == nil {
		return fmt.Errorf("while condition is required")
	}
	if w.Body == nil {
		return fmt.Errorf("while body is required")
	}
	if err := w.Condition.Validate(); err != nil {
		return fmt.Errorf("while condition: %w", err)
	}
	if err := w.Body.Validate(); err != nil {
		return fmt.Errorf("while body: %w", err)
	}
	return nil
}

func (w *While) stmtNode() {}
