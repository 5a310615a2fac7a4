package ast

import (
	"fmt"
	"strings"

	"github.com/antogp24/javaclone/internal/types"
	"github.com/antogp24/javaclone/pkg/token"
)

// LiteralValue is the typed payload carried by a LiteralExpr: a parse-time
// value with exactly the same shape as a runtime Value, minus callables and
// instances (which can never appear as a literal).
type LiteralValue struct {
	Tag    types.Tag
	Bool   bool
	Byte   int8
	Char   uint16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	Str    string
	IsNull bool
}

// Argument pairs an argument expression with its own source position, so
// the interpreter can report arity/type errors against the argument rather
// than the whole call.
type Argument struct {
	Value Expression
	Pos   token.Position
}

// AssignExpr is `name = value`.
type AssignExpr struct {
	Name  token.Token
	Value Expression
}

func (*AssignExpr) expressionNode()        {}
func (e *AssignExpr) TokenLiteral() string { return e.Name.Lexeme }
func (e *AssignExpr) Pos() token.Position  { return e.Name.Pos }
func (e *AssignExpr) String() string       { return fmt.Sprintf("(%s = %s)", e.Name.Lexeme, e.Value) }

// BinaryExpr is `left op right` for arithmetic, comparison, and bitwise
// operators.
type BinaryExpr struct {
	Left  Expression
	Op    token.Token
	Right Expression
}

func (*BinaryExpr) expressionNode()        {}
func (e *BinaryExpr) TokenLiteral() string { return e.Op.Lexeme }
func (e *BinaryExpr) Pos() token.Position  { return e.Op.Pos }
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op.Lexeme, e.Right)
}

// CallExpr is `callee(arguments...)`.
type CallExpr struct {
	Callee    Expression
	Paren     token.Token // used for the call's reported position
	Arguments []Argument
}

func (*CallExpr) expressionNode()        {}
func (e *CallExpr) TokenLiteral() string { return e.Paren.Lexeme }
func (e *CallExpr) Pos() token.Position  { return e.Paren.Pos }
func (e *CallExpr) String() string {
	args := make([]string, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = a.Value.String()
	}
	return fmt.Sprintf("%s(%s)", e.Callee, strings.Join(args, ", "))
}

// CastExpr is `(type) right`.
type CastExpr struct {
	TypeTok token.Token
	Right   Expression
}

func (*CastExpr) expressionNode()        {}
func (e *CastExpr) TokenLiteral() string { return e.TypeTok.Lexeme }
func (e *CastExpr) Pos() token.Position  { return e.TypeTok.Pos }
func (e *CastExpr) String() string {
	return fmt.Sprintf("(%s)%s", e.TypeTok.Lexeme, e.Right)
}

// GetExpr is `object.name`, reading a field or static member.
type GetExpr struct {
	Object Expression
	Name   token.Token
}

func (*GetExpr) expressionNode()        {}
func (e *GetExpr) TokenLiteral() string { return e.Name.Lexeme }
func (e *GetExpr) Pos() token.Position  { return e.Name.Pos }
func (e *GetExpr) String() string {
	return fmt.Sprintf("%s.%s", e.Object, e.Name.Lexeme)
}

// GroupingExpr is `( inner )`.
type GroupingExpr struct {
	Paren token.Token
	Inner Expression
}

func (*GroupingExpr) expressionNode()        {}
func (e *GroupingExpr) TokenLiteral() string { return e.Paren.Lexeme }
func (e *GroupingExpr) Pos() token.Position  { return e.Paren.Pos }
func (e *GroupingExpr) String() string       { return fmt.Sprintf("(%s)", e.Inner) }

// IncrementExpr is `name++` or `name--` (prefix and postfix are not
// distinguished semantically: both read, add Direction, write back, and
// return the new value).
type IncrementExpr struct {
	Name      token.Token
	Direction int // +1 or -1
}

func (*IncrementExpr) expressionNode()        {}
func (e *IncrementExpr) TokenLiteral() string { return e.Name.Lexeme }
func (e *IncrementExpr) Pos() token.Position  { return e.Name.Pos }
func (e *IncrementExpr) String() string {
	if e.Direction > 0 {
		return e.Name.Lexeme + "++"
	}
	return e.Name.Lexeme + "--"
}

// LiteralExpr is any literal token: number, string, char, boolean, or null.
type LiteralExpr struct {
	Tok token.Token
	Val LiteralValue
}

func (*LiteralExpr) expressionNode()        {}
func (e *LiteralExpr) TokenLiteral() string { return e.Tok.Lexeme }
func (e *LiteralExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *LiteralExpr) String() string       { return e.Tok.Lexeme }

// LogicalExpr is `left && right` or `left || right`, short-circuiting.
type LogicalExpr struct {
	Left  Expression
	Op    token.Token
	Right Expression
}

func (*LogicalExpr) expressionNode()        {}
func (e *LogicalExpr) TokenLiteral() string { return e.Op.Lexeme }
func (e *LogicalExpr) Pos() token.Position  { return e.Op.Pos }
func (e *LogicalExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op.Lexeme, e.Right)
}

// SetExpr is `object.name = value`, writing a field or static member.
type SetExpr struct {
	Object Expression
	Name   token.Token
	Value  Expression
}

func (*SetExpr) expressionNode()        {}
func (e *SetExpr) TokenLiteral() string { return e.Name.Lexeme }
func (e *SetExpr) Pos() token.Position  { return e.Name.Pos }
func (e *SetExpr) String() string {
	return fmt.Sprintf("(%s.%s = %s)", e.Object, e.Name.Lexeme, e.Value)
}

// TernaryExpr is `cond ? then : else`.
type TernaryExpr struct {
	Question token.Token
	Cond     Expression
	Then     Expression
	Else     Expression
}

func (*TernaryExpr) expressionNode()        {}
func (e *TernaryExpr) TokenLiteral() string { return e.Question.Lexeme }
func (e *TernaryExpr) Pos() token.Position  { return e.Question.Pos }
func (e *TernaryExpr) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", e.Cond, e.Then, e.Else)
}

// ThisExpr is the `this` keyword used as a primary expression.
type ThisExpr struct {
	Tok token.Token
}

func (*ThisExpr) expressionNode()        {}
func (e *ThisExpr) TokenLiteral() string { return e.Tok.Lexeme }
func (e *ThisExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *ThisExpr) String() string       { return "this" }

// UnaryExpr is `op right` for logical not, numeric negation, and bitwise
// not.
type UnaryExpr struct {
	Op    token.Token
	Right Expression
}

func (*UnaryExpr) expressionNode()        {}
func (e *UnaryExpr) TokenLiteral() string { return e.Op.Lexeme }
func (e *UnaryExpr) Pos() token.Position  { return e.Op.Pos }
func (e *UnaryExpr) String() string       { return fmt.Sprintf("(%s%s)", e.Op.Lexeme, e.Right) }

// VariableExpr is a bare identifier used as a value.
type VariableExpr struct {
	Name token.Token
}

func (*VariableExpr) expressionNode()        {}
func (e *VariableExpr) TokenLiteral() string { return e.Name.Lexeme }
func (e *VariableExpr) Pos() token.Position  { return e.Name.Pos }
func (e *VariableExpr) String() string       { return e.Name.Lexeme }
