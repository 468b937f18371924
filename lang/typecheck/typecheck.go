// File: typecheck.go
// Title: PUT Type Checker
// Description: Implements a structural type checker for PUT programs.
//              Walks the AST exhaustively and rejects malformed trees;
//              real type inference is not performed.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial structural checker

package typecheck

import (
	"fmt"

	puterror "github.com/msto63/put/core/error"
	"github.com/msto63/put/lang/ast"
)

// Checker validates the structure of a parsed program. Type inference is
// deliberately absent: literals and identifiers keep the default tags the
// parser assigned, and the checker only verifies tree well-formedness.
type Checker struct{}

// New creates a new checker
func New() *Checker {
	return &Checker{}
}

// CheckProgram checks every statement of the program in order and stops
// at the first failure
func (c *Checker) CheckProgram(program *ast.Program) error {
	if program == nil {
		return puterror.New("cannot check nil program").
			WithCode(puterror.CodePUTType).
			WithOperation("typecheck.CheckProgram")
	}

	for i, stmt := range program.Statements {
		if err := c.checkNode(stmt); err != nil {
			return puterror.Wrap(err, fmt.Sprintf("statement %d", i)).
				WithCode(puterror.CodePUTType).
				WithOperation("typecheck.CheckProgram")
		}
	}

	return nil
}

// checkNode dispatches exhaustively over the closed node set
func (c *Checker) checkNode(node ast.Node) error {
	switch n := node.(type) {
	case *ast.Program:
		return c.CheckProgram(n)

	case *ast.Variable:
		return n.Validate()

	case *ast.Number:
		return n.Validate()

	case *ast.Assignment:
		if err := c.checkNode(n.Left); err != nil {
			return err
		}
		return c.checkNode(n.Right)

	case *ast.BinaryOperation:
		if err := c.checkNode(n.Left); err != nil {
			return err
		}
		return c.checkNode(n.Right)

	case *ast.Parenthesis:
		return c.checkNode(n.Expression)

	case *ast.If:
		if err := c.checkNode(n.Condition); err != nil {
			return err
		}
		if err := c.checkNode(n.ThenBranch); err != nil {
			return err
		}
		if n.ElseBranch != nil {
			return c.checkNode(n.ElseBranch)
		}
		return nil

	case *ast.While:
		if err := c.checkNode(n.Condition); err != nil {
			return err
		}
		return c.checkNode(n.Body)

	case nil:
		return puterror.New("unexpected nil node").
			WithCode(puterror.CodePUTType).
			WithOperation("typecheck.checkNode")

	default:
		return puterror.New(fmt.Sprintf("unknown statement type %T", node)).
			WithCode(puterror.CodePUTType).
			WithOperation("typecheck.checkNode")
	}
}
