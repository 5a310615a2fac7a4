// Package ast defines the expression and statement node types produced by
// the parser. Nodes are tagged variants (one concrete struct per kind)
// rather than a single class hierarchy reached through downcasts: dispatch
// happens through a Go type switch in the interpreter, not virtual calls.
package ast

import (
	"github.com/antogp24/javaclone/pkg/token"
)

// Node is the interface every AST node satisfies.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is any node that yields a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself yielding a
// value.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the tree: an ordered list of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	out := make([]byte, 0, 256)
	for _, s := range p.Statements {
		out = append(out, s.String()...)
	}
	return string(out)
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}
