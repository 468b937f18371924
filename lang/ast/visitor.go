// File: visitor.go
// Title: PUT AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and processing
//              PUT AST nodes. Provides base visitor interface and common
//              visitor implementations for printing and analysis.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitProgram(program *Program) interface{}
	VisitVariable(variable *Variable) interface{}
	VisitNumber(number *Number) interface{}
	VisitAssignment(assignment *Assignment) interface{}
	VisitBinaryOperation(operation *BinaryOperation) interface{}
	VisitParenthesis(parenthesis *Parenthesis) interface{}
	VisitIf(ifStmt *If) interface{}
	VisitWhile(whileStmt *While) interface{}
}

// BaseVisitor provides default traversal implementations for all visitor
// methods. Embed this in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitProgram(program *Program) interface{} {
	for _, stmt := range program.Statements {
		stmt.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitVariable(variable *Variable) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitNumber(number *Number) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitAssignment(assignment *Assignment) interface{} {
	if assignment.Left != nil {
		assignment.Left.Accept(bv)
	}
	if assignment.Right != nil {
		assignment.Right.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitBinaryOperation(operation *BinaryOperation) interface{} {
	if operation.Left != nil {
		operation.Left.Accept(bv)
	}
	if operation.Right != nil {
		operation.Right.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitParenthesis(parenthesis *Parenthesis) interface{} {
	if parenthesis.Expression != nil {
		return parenthesis.Expression.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitIf(ifStmt *If) interface{} {
	if ifStmt.Condition != nil {
		ifStmt.Condition.Accept(bv)
	}
	if ifStmt.ThenBranch != nil {
		ifStmt.ThenBranch.Accept(bv)
	}
	if ifStmt.ElseBranch != nil {
		ifStmt.ElseBranch.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitWhile(whileStmt *While) interface{} {
	if whileStmt.Condition != nil {
		whileStmt.Condition.Accept(bv)
	}
	if whileStmt.Body != nil {
		whileStmt.Body.Accept(bv)
	}
	return nil
}

// TreeVisitor renders the AST as an indented tree, one node per line
type TreeVisitor struct {
	buffer strings.Builder
	indent int
}

// NewTreeVisitor creates a new tree visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// String returns the built tree representation
func (tv *TreeVisitor) String() string {
	return tv.buffer.String()
}

// Reset clears the internal buffer
func (tv *TreeVisitor) Reset() {
	tv.buffer.Reset()
	tv.indent = 0
}

func (tv *TreeVisitor) writeLine(text string) {
	for i := 0; i < tv.indent; i++ {
		tv.buffer.WriteString("  ")
	}
	tv.buffer.WriteString(text)
	tv.buffer.WriteString("\n")
}

func (tv *TreeVisitor) VisitProgram(program *Program) interface{} {
	tv.writeLine("Program")
	tv.indent++
	for _, stmt := range program.Statements {
		stmt.Accept(tv)
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitVariable(variable *Variable) interface{} {
	tv.writeLine(fmt.Sprintf("Variable: %s", variable.Name))
	return nil
}

func (tv *TreeVisitor) VisitNumber(number *Number) interface{} {
	tv.writeLine(fmt.Sprintf("Number: %s", number.Value))
	return nil
}

func (tv *TreeVisitor) VisitAssignment(assignment *Assignment) interface{} {
	tv.writeLine("Assignment")
	tv.indent++
	assignment.Left.Accept(tv)
	assignment.Right.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitBinaryOperation(operation *BinaryOperation) interface{} {
	tv.writeLine(fmt.Sprintf("BinaryOperation: %s", operation.Operator))
	tv.indent++
	operation.Left.Accept(tv)
	operation.Right.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitParenthesis(parenthesis *Parenthesis) interface{} {
	tv.writeLine("Parenthesis")
	tv.indent++
	parenthesis.Expression.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitIf(ifStmt *If) interface{} {
	tv.writeLine("If")
	tv.indent++
	ifStmt.Condition.Accept(tv)
	ifStmt.ThenBranch.Accept(tv)
	if ifStmt.ElseBranch != nil {
		tv.writeLine("Else")
		tv.indent++
		ifStmt.ElseBranch.Accept(tv)
		tv.indent--
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitWhile(whileStmt *While) interface{} {
	tv.writeLine("While")
	tv.indent++
	whileStmt.Condition.Accept(tv)
	whileStmt.Body.Accept(tv)
	tv.indent--
	return nil
}

// ValidationVisitor validates AST nodes and collects errors
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) addError(err error) {
	vv.errors = append(vv.errors, err)
}

func (vv *ValidationVisitor) VisitProgram(program *Program) interface{} {
	for i, stmt := range program.Statements {
		if stmt == nil {
			vv.addError(fmt.Errorf("statement %d is nil", i))
			continue
		}
		stmt.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitVariable(variable *Variable) interface{} {
	if err := variable.Validate(); err != nil {
		vv.addError(err)
	}
	return nil
}

func (vv *ValidationVisitor) VisitNumber(number *Number) interface{} {
	if err := number.Validate(); err != nil {
		vv.addError(err)
	}
	return nil
}

func (vv *ValidationVisitor) VisitAssignment(assignment *Assignment) interface{} {
	if assignment.Left == nil || assignment.Right == nil {
		vv.addError(fmt.Errorf("incomplete assignment"))
		return nil
	}
	if _, ok := assignment.Left.(*Variable); !ok {
		vv.addError(fmt.Errorf("assignment target must be a variable"))
	}
	return vv.BaseVisitor.VisitAssignment(assignment)
}

func (vv *ValidationVisitor) VisitBinaryOperation(operation *BinaryOperation) interface{} {
	if operation.Left == nil || operation.Right == nil {
		vv.addError(fmt.Errorf("incomplete binary operation"))
		return nil
	}
	return vv.BaseVisitor.VisitBinaryOperation(operation)
}

func (vv *ValidationVisitor) VisitParenthesis(parenthesis *Parenthesis) interface{} {
	if parenthesis.Expression == nil {
		vv.addError(fmt.Errorf("empty parenthesized expression"))
		return nil
	}
	return vv.BaseVisitor.VisitParenthesis(parenthesis)
}

func (vv *ValidationVisitor) VisitIf(ifStmt *If) interface{} {
	if ifStmt.Condition == nil {
		vv.addError(fmt.Errorf("if statement without condition"))
	}
	if ifStmt.ThenBranch == nil {
		vv.addError(fmt.Errorf("if statement without body"))
	}
	return vv.BaseVisitor.VisitIf(ifStmt)
}

func (vv *ValidationVisitor) VisitWhile(whileStmt *While) interface{} {
	if whileStmt.Condition == nil {
		vv.addError(fmt.Errorf("while statement without condition"))
	}
	if whileStmt.Body == nil {
		vv.addError(fmt.Errorf("while statement without body"))
	}
	return vv.BaseVisitor.VisitWhile(whileStmt)
}

// CollectorVisitor collects specific types of nodes from the AST
type CollectorVisitor struct {
	BaseVisitor
	Variables  []*Variable
	Numbers    []*Number
	Operations []*BinaryOperation
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		Variables:  make([]*Variable, 0),
		Numbers:    make([]*Number, 0),
		Operations: make([]*BinaryOperation, 0),
	}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Variables = cv.Variables[:0]
	cv.Numbers = cv.Numbers[:0]
	cv.Operations = cv.Operations[:0]
}

func (cv *CollectorVisitor) VisitVariable(variable *Variable) interface{} {
	cv.Variables = append(cv.Variables, variable)
	return nil
}

func (cv *CollectorVisitor) VisitNumber(number *Number) interface{} {
	cv.Numbers = append(cv.Numbers, number)
	return nil
}

func (cv *CollectorVisitor) VisitAssignment(assignment *Assignment) interface{} {
	if assignment.Left != nil {
		assignment.Left.Accept(cv)
	}
	if assignment.Right != nil {
		assignment.Right.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitBinaryOperation(operation *BinaryOperation) interface{} {
	cv.Operations = append(cv.Operations, operation)
	if operation.Left != nil {
		operation.Left.Accept(cv)
	}
	if operation.Right != nil {
		operation.Right.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitParenthesis(parenthesis *Parenthesis) interface{} {
	if parenthesis.Expression != nil {
		return parenthesis.Expression.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitIf(ifStmt *If) interface{} {
	if ifStmt.Condition != nil {
		ifStmt.Condition.Accept(cv)
	}
	if ifStmt.ThenBranch != nil {
		ifStmt.ThenBranch.Accept(cv)
	}
	if ifStmt.ElseBranch != nil {
		ifStmt.ElseBranch.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitWhile(whileStmt *While) interface{} {
	if whileStmt.Condition != nil {
		whileStmt.Condition.Accept(cv)
	}
	if whileStmt.Body != nil {
		whileStmt.Body.Accept(cv)
	}
	return nil
}

// Utility functions for working with visitors

// TreeString renders an AST node as an indented tree
func TreeString(node Node) string {
	visitor := NewTreeVisitor()
	node.Accept(visitor)
	return visitor.String()
}

// ValidateAST validates an AST node and returns any validation errors
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	node.Accept(visitor)
	return visitor.Errors()
}

// CollectNodes collects variables, numbers, and operations from an AST
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	node.Accept(visitor)
	return visitor
}
