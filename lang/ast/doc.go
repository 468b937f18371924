// File: doc.go
// Title: Package Documentation for ast
// Description: Package ast defines the abstract syntax tree for PUT programs
//              together with visitors for traversal and rendering.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-09-10
// Modified: 2025-09-10
//
// Change History:
// - 2025-09-10 v0.1.0: Initial documentation

// Package ast defines the abstract syntax tree for PUT programs.
//
// The node set is closed: Program, Variable, Number, Assignment,
// BinaryOperation, Parenthesis, If, and While are the only Node
// implementations. Consumers traverse trees with the Visitor interface;
// BaseVisitor supplies default traversal so concrete visitors override
// only the methods they care about.
//
// TreeString renders a tree for diagnostics:
//
//	Program
//	  Assignment
//	    Variable: x
//	    Number: 42
package ast
