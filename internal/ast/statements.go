package ast

import (
	"fmt"
	"strings"

	"github.com/antogp24/javaclone/internal/types"
	"github.com/antogp24/javaclone/pkg/token"
)

// BreakStmt is `break;`.
type BreakStmt struct{ Tok token.Token }

func (*BreakStmt) statementNode()        {}
func (s *BreakStmt) TokenLiteral() string { return s.Tok.Lexeme }
func (s *BreakStmt) Pos() token.Position  { return s.Tok.Pos }
func (s *BreakStmt) String() string       { return "break;" }

// ContinueStmt is `continue;`.
type ContinueStmt struct{ Tok token.Token }

func (*ContinueStmt) statementNode()        {}
func (s *ContinueStmt) TokenLiteral() string { return s.Tok.Lexeme }
func (s *ContinueStmt) Pos() token.Position  { return s.Tok.Pos }
func (s *ContinueStmt) String() string       { return "continue;" }

// BlockStmt is `{ statements... }`.
type BlockStmt struct {
	Tok        token.Token // the opening `{`
	Statements []Statement
}

func (*BlockStmt) statementNode()        {}
func (s *BlockStmt) TokenLiteral() string { return s.Tok.Lexeme }
func (s *BlockStmt) Pos() token.Position  { return s.Tok.Pos }
func (s *BlockStmt) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for _, st := range s.Statements {
		b.WriteString(st.String())
		b.WriteString(" ")
	}
	b.WriteString("}")
	return b.String()
}

// Param is a single (type, name) pair in a function declaration's
// parameter list.
type Param struct {
	Type token.Token
	Name token.Token
}

// FunctionStmt is a function or method declaration, including the
// constructor (whose Name token carries the CONSTRUCTOR kind).
type FunctionStmt struct {
	ReturnType token.Token
	Name       token.Token
	Visibility types.Visibility
	IsStatic   bool
	IsFinal    bool
	Params     []Param
	Body       *BlockStmt
}

func (*FunctionStmt) statementNode()        {}
func (s *FunctionStmt) TokenLiteral() string { return s.Name.Lexeme }
func (s *FunctionStmt) Pos() token.Position  { return s.Name.Pos }
func (s *FunctionStmt) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Type.Lexeme + " " + p.Name.Lexeme
	}
	return fmt.Sprintf("%s %s(%s) %s", s.ReturnType.Lexeme, s.Name.Lexeme, strings.Join(params, ", "), s.Body)
}

// ClassStmt is a class declaration.
type ClassStmt struct {
	Name        token.Token
	IsAbstract  bool
	Superclass  *token.Token // set when `extends` is present; semantics are rejected at instantiation
	Attributes  []*VarStmt
	Methods     []*FunctionStmt
	Constructor *FunctionStmt // nil if the class declares none
}

func (*ClassStmt) statementNode()        {}
func (s *ClassStmt) TokenLiteral() string { return s.Name.Lexeme }
func (s *ClassStmt) Pos() token.Position  { return s.Name.Pos }
func (s *ClassStmt) String() string {
	return fmt.Sprintf("class %s { ... }", s.Name.Lexeme)
}

// ExpressionStmt is a bare expression followed by `;`.
type ExpressionStmt struct {
	Expr Expression
}

func (*ExpressionStmt) statementNode()        {}
func (s *ExpressionStmt) TokenLiteral() string { return s.Expr.TokenLiteral() }
func (s *ExpressionStmt) Pos() token.Position  { return s.Expr.Pos() }
func (s *ExpressionStmt) String() string       { return s.Expr.String() + ";" }

// ElseIf is one `else if (cond) then` clause.
type ElseIf struct {
	Condition Expression
	Then      Statement
}

// IfStmt is `if (cond) then [else if (cond) then]... [else else]`.
type IfStmt struct {
	Tok       token.Token
	Condition Expression
	Then      Statement
	ElseIfs   []ElseIf
	Else      Statement
}

func (*IfStmt) statementNode()        {}
func (s *IfStmt) TokenLiteral() string { return s.Tok.Lexeme }
func (s *IfStmt) Pos() token.Position  { return s.Tok.Pos }
func (s *IfStmt) String() string {
	out := fmt.Sprintf("if (%s) %s", s.Condition, s.Then)
	for _, ei := range s.ElseIfs {
		out += fmt.Sprintf(" else if (%s) %s", ei.Condition, ei.Then)
	}
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}

// PrintStmt is `sout(expr);` or `soutln(expr);`.
type PrintStmt struct {
	Tok     token.Token
	Value   Expression
	Newline bool
}

func (*PrintStmt) statementNode()        {}
func (s *PrintStmt) TokenLiteral() string { return s.Tok.Lexeme }
func (s *PrintStmt) Pos() token.Position  { return s.Tok.Pos }
func (s *PrintStmt) String() string {
	if s.Newline {
		return fmt.Sprintf("soutln(%s);", s.Value)
	}
	return fmt.Sprintf("sout(%s);", s.Value)
}

// ReturnStmt is `return;` or `return expr;`.
type ReturnStmt struct {
	Tok   token.Token
	Value Expression // nil when absent
}

func (*ReturnStmt) statementNode()        {}
func (s *ReturnStmt) TokenLiteral() string { return s.Tok.Lexeme }
func (s *ReturnStmt) Pos() token.Position  { return s.Tok.Pos }
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", s.Value)
}

// VarStmt is a variable declaration with one or more comma-separated
// declarators sharing a type, visibility, and modifiers:
// `[mods] type name1 [= init1], name2 [= init2], ...;`
type VarStmt struct {
	TypeTok      token.Token
	Names        []token.Token
	Initializers []Expression // parallel to Names; nil entry means no initializer
	Visibility   types.Visibility
	IsStatic     bool
	IsFinal      bool
}

func (*VarStmt) statementNode()        {}
func (s *VarStmt) TokenLiteral() string { return s.TypeTok.Lexeme }
func (s *VarStmt) Pos() token.Position  { return s.TypeTok.Pos }
func (s *VarStmt) String() string {
	parts := make([]string, len(s.Names))
	for i, n := range s.Names {
		if s.Initializers[i] != nil {
			parts[i] = fmt.Sprintf("%s = %s", n.Lexeme, s.Initializers[i])
		} else {
			parts[i] = n.Lexeme
		}
	}
	return fmt.Sprintf("%s %s;", s.TypeTok.Lexeme, strings.Join(parts, ", "))
}

// WhileStmt is `while (cond) body`. HasIncrement marks a loop produced by
// desugaring a `for` statement: its Body is a Block whose last statement is
// the increment, which the `continue` handler must still run.
type WhileStmt struct {
	Tok          token.Token
	Condition    Expression
	Body         Statement
	HasIncrement bool
}

func (*WhileStmt) statementNode()        {}
func (s *WhileStmt) TokenLiteral() string { return s.Tok.Lexeme }
func (s *WhileStmt) Pos() token.Position  { return s.Tok.Pos }
func (s *WhileStmt) String() string {
	return fmt.Sprintf("while (%s) %s", s.Condition, s.Body)
}
