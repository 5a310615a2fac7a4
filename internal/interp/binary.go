package interp

import (
	"github.com/antogp24/javaclone/internal/ast"
	"github.com/antogp24/javaclone/internal/errors"
	"github.com/antogp24/javaclone/internal/types"
	"github.com/antogp24/javaclone/pkg/token"
)

// evalBinary dispatches a BinaryExpr by operator category: string
// concatenation for '+' with either side a String, equality (defined on
// any pair of matching-kind operands), then the numeric operators, which
// all share the widen-to-the-bigger-tag rule from the design notes.
func (interp *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := interp.evaluate(e.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := interp.evaluate(e.Right)
	if err != nil {
		return Value{}, err
	}

	if e.Op.Type == token.PLUS && (left.Tag == types.String || right.Tag == types.String) {
		return String(left.Print() + right.Print()), nil
	}

	switch e.Op.Type {
	case token.EQUAL_EQUAL:
		return Bool(valuesEqual(left, right)), nil
	case token.BANG_EQUAL:
		return Bool(!valuesEqual(left, right)), nil
	}

	if !left.Tag.IsNumber() || !right.Tag.IsNumber() {
		return Value{}, errors.NewRuntimeError(e.Op, "Operands of '%s' must be numbers.", e.Op.Lexeme)
	}
	big := types.Bigger(left.Tag, right.Tag)

	switch e.Op.Type {
	case token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		return Bool(compareNumbers(e.Op.Type, left, right)), nil
	case token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		return arithmetic(e.Op, big, left, right)
	case token.AMPERSAND, token.PIPE, token.CARET, token.LESS_LESS, token.GREATER_GREATER:
		if !left.Tag.IsWholeNumber() || !right.Tag.IsWholeNumber() {
			return Value{}, errors.NewRuntimeError(e.Op, "Operands of '%s' must be whole numbers.", e.Op.Lexeme)
		}
		return bitwise(e.Op.Type, big, left, right)
	default:
		return Value{}, errors.NewRuntimeError(e.Op, "Unknown binary operator '%s'.", e.Op.Lexeme)
	}
}

func valuesEqual(a, b Value) bool {
	if a.Tag != b.Tag {
		if a.Tag.IsNumber() && b.Tag.IsNumber() {
			if a.Tag == types.Float || a.Tag == types.Double || b.Tag == types.Float || b.Tag == types.Double {
				return a.AsDouble() == b.AsDouble()
			}
			return a.AsLong() == b.AsLong()
		}
		return false
	}
	switch a.Tag {
	case types.Boolean:
		return a.Bool == b.Bool
	case types.String:
		return a.IsNull == b.IsNull && a.Str == b.Str
	case types.Instance:
		return a.Inst == b.Inst
	case types.Null:
		return true
	default:
		if a.Tag.IsNumber() {
			return a.AsDouble() == b.AsDouble()
		}
		return false
	}
}

func compareNumbers(op token.Type, a, b Value) bool {
	af, bf := a.AsDouble(), b.AsDouble()
	switch op {
	case token.LESS:
		return af < bf
	case token.LESS_EQUAL:
		return af <= bf
	case token.GREATER:
		return af > bf
	case token.GREATER_EQUAL:
		return af >= bf
	}
	return false
}

func arithmetic(op token.Token, big types.Tag, a, b Value) (Value, error) {
	if big == types.Float || big == types.Double {
		x, y := a.AsDouble(), b.AsDouble()
		var r float64
		switch op.Type {
		case token.PLUS:
			r = x + y
		case token.MINUS:
			r = x - y
		case token.STAR:
			r = x * y
		case token.SLASH:
			// Float/Double division by zero follows IEEE 754 (±Inf or
			// NaN), unlike the whole-number branch below.
			r = x / y
		case token.PERCENT:
			return Value{}, errors.NewRuntimeError(op, "'%%' requires whole number operands.")
		}
		return ConvertNumber(Double(r), big), nil
	}
	x, y := a.AsLong(), b.AsLong()
	var r int64
	switch op.Type {
	case token.PLUS:
		r = x + y
	case token.MINUS:
		r = x - y
	case token.STAR:
		r = x * y
	case token.SLASH:
		if y == 0 {
			return Value{}, errors.NewRuntimeError(op, "Division by zero.")
		}
		r = x / y
	case token.PERCENT:
		if y == 0 {
			return Value{}, errors.NewRuntimeError(op, "Division by zero.")
		}
		r = x % y
	}
	return ConvertNumber(Long(r), big), nil
}

func bitwise(op token.Type, big types.Tag, a, b Value) (Value, error) {
	x, y := a.AsLong(), b.AsLong()
	var r int64
	switch op {
	case token.AMPERSAND:
		r = x & y
	case token.PIPE:
		r = x | y
	case token.CARET:
		r = x ^ y
	case token.LESS_LESS:
		r = x << uint64(y)
	case token.GREATER_GREATER:
		r = x >> uint64(y)
	}
	return ConvertNumber(Long(r), big), nil
}
