package interp

import (
	"github.com/antogp24/javaclone/internal/ast"
	"github.com/antogp24/javaclone/internal/errors"
	"github.com/antogp24/javaclone/internal/types"
	"github.com/antogp24/javaclone/pkg/token"
)

func (interp *Interpreter) evaluate(expr ast.Expression) (Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return interp.evalLiteral(e), nil
	case *ast.VariableExpr:
		return interp.current.Get(e.Name)
	case *ast.GroupingExpr:
		return interp.evaluate(e.Inner)
	case *ast.AssignExpr:
		return interp.evalAssign(e)
	case *ast.ThisExpr:
		if interp.currentThis == nil {
			return Value{}, errors.NewRuntimeError(e.Tok, "Can't use 'this' outside of a method.")
		}
		return InstanceValue(interp.currentThis), nil
	case *ast.UnaryExpr:
		return interp.evalUnary(e)
	case *ast.BinaryExpr:
		return interp.evalBinary(e)
	case *ast.LogicalExpr:
		return interp.evalLogical(e)
	case *ast.TernaryExpr:
		return interp.evalTernary(e)
	case *ast.CastExpr:
		return interp.evalCast(e)
	case *ast.CallExpr:
		return interp.evalCall(e)
	case *ast.GetExpr:
		return interp.evalGet(e)
	case *ast.SetExpr:
		return interp.evalSet(e)
	case *ast.IncrementExpr:
		return interp.current.Increment(e.Name, int64(e.Direction))
	default:
		return Value{}, nil
	}
}

func (interp *Interpreter) evalLiteral(e *ast.LiteralExpr) Value {
	lv := e.Val
	if lv.IsNull {
		return NullLiteral
	}
	return Value{
		Tag:    lv.Tag,
		Bool:   lv.Bool,
		Byte:   lv.Byte,
		Char:   lv.Char,
		Int:    lv.Int,
		Long:   lv.Long,
		Float:  lv.Float,
		Double: lv.Double,
		Str:    lv.Str,
	}
}

func (interp *Interpreter) evalAssign(e *ast.AssignExpr) (Value, error) {
	v, err := interp.evaluate(e.Value)
	if err != nil {
		return Value{}, err
	}
	return interp.current.Assign(e.Name, v)
}

func (interp *Interpreter) evalUnary(e *ast.UnaryExpr) (Value, error) {
	right, err := interp.evaluate(e.Right)
	if err != nil {
		return Value{}, err
	}
	switch e.Op.Type {
	case token.BANG:
		if right.Tag != types.Boolean {
			return Value{}, errors.NewRuntimeError(e.Op, "Operand of '!' must be a boolean.")
		}
		return Bool(!right.Bool), nil
	case token.MINUS:
		if !right.Tag.IsNumber() {
			return Value{}, errors.NewRuntimeError(e.Op, "Operand of unary '-' must be a number.")
		}
		return ConvertNumber(negate(right), right.Tag), nil
	case token.TILDE:
		if !right.Tag.IsWholeNumber() {
			return Value{}, errors.NewRuntimeError(e.Op, "Operand of '~' must be a whole number.")
		}
		return ConvertNumber(Long(^right.AsLong()), right.Tag), nil
	default:
		return Value{}, errors.NewRuntimeError(e.Op, "Unknown unary operator.")
	}
}

func negate(v Value) Value {
	if v.Tag == types.Float || v.Tag == types.Double {
		return Double(-v.AsDouble())
	}
	return Long(-v.AsLong())
}

func (interp *Interpreter) evalLogical(e *ast.LogicalExpr) (Value, error) {
	left, err := interp.evaluate(e.Left)
	if err != nil {
		return Value{}, err
	}
	if left.Tag != types.Boolean {
		return Value{}, errors.NewRuntimeError(e.Op, "Operand must be a boolean.")
	}
	if e.Op.Type == token.AMPERSAND_AMPERSAND {
		if !left.Bool {
			return Bool(false), nil
		}
	} else {
		if left.Bool {
			return Bool(true), nil
		}
	}
	right, err := interp.evaluate(e.Right)
	if err != nil {
		return Value{}, err
	}
	if right.Tag != types.Boolean {
		return Value{}, errors.NewRuntimeError(e.Op, "Operand must be a boolean.")
	}
	return right, nil
}

func (interp *Interpreter) evalTernary(e *ast.TernaryExpr) (Value, error) {
	cond, err := interp.evaluate(e.Cond)
	if err != nil {
		return Value{}, err
	}
	if cond.Tag != types.Boolean {
		return Value{}, errors.NewRuntimeError(e.Question, "Condition must be a boolean.")
	}
	if cond.Bool {
		return interp.evaluate(e.Then)
	}
	return interp.evaluate(e.Else)
}

func (interp *Interpreter) evalCast(e *ast.CastExpr) (Value, error) {
	v, err := interp.evaluate(e.Right)
	if err != nil {
		return Value{}, err
	}
	target := TagForTypeToken(e.TypeTok)
	if target == v.Tag {
		return v, nil
	}
	if target.IsNumber() && v.Tag.IsNumber() {
		return ConvertNumber(v, target), nil
	}
	if target == types.String {
		return String(v.Print()), nil
	}
	return Value{}, errors.NewRuntimeError(e.TypeTok, "Can't cast a value of type '%s' to '%s'.", v.Tag, target)
}

func (interp *Interpreter) evalCall(e *ast.CallExpr) (Value, error) {
	callee, err := interp.evaluate(e.Callee)
	if err != nil {
		return Value{}, err
	}

	args := make([]Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := interp.evaluate(a.Value)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}

	var callable Callable
	switch callee.Tag {
	case types.Function:
		callable = callee.Fn
	case types.Class:
		callable = callee.Cls
	default:
		return Value{}, errors.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}

	if callable.Arity() != len(args) {
		return Value{}, errors.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(interp, e.Paren, args)
}

func (interp *Interpreter) evalGet(e *ast.GetExpr) (Value, error) {
	obj, err := interp.evaluate(e.Object)
	if err != nil {
		return Value{}, err
	}
	switch obj.Tag {
	case types.Instance:
		if obj.Inst == nil {
			return Value{}, errors.NewRuntimeError(e.Name, "Can't access member '%s' of null.", e.Name.Lexeme)
		}
		s, ok := obj.Inst.fields[e.Name.Lexeme]
		if !ok {
			return Value{}, errors.NewRuntimeError(e.Name, "Undefined member '%s'.", e.Name.Lexeme)
		}
		if s.visibility == types.VisibilityPrivate && interp.currentClass != obj.Inst.class {
			return Value{}, errors.NewRuntimeError(e.Name, "Can't access private member '%s'.", e.Name.Lexeme)
		}
		if !s.initialized {
			return Value{}, errors.NewRuntimeError(e.Name, "Member '%s' is uninitialized.", e.Name.Lexeme)
		}
		return s.value, nil
	case types.Class:
		if obj.Cls == nil {
			return Value{}, errors.NewRuntimeError(e.Name, "Undefined member '%s'.", e.Name.Lexeme)
		}
		return obj.Cls.StaticFields.Get(e.Name)
	default:
		return Value{}, errors.NewRuntimeError(e.Name, "Only instances and classes have members.")
	}
}

func (interp *Interpreter) evalSet(e *ast.SetExpr) (Value, error) {
	obj, err := interp.evaluate(e.Object)
	if err != nil {
		return Value{}, err
	}
	value, err := interp.evaluate(e.Value)
	if err != nil {
		return Value{}, err
	}
	switch obj.Tag {
	case types.Instance:
		if obj.Inst == nil {
			return Value{}, errors.NewRuntimeError(e.Name, "Can't access member '%s' of null.", e.Name.Lexeme)
		}
		s, ok := obj.Inst.fields[e.Name.Lexeme]
		if !ok {
			return Value{}, errors.NewRuntimeError(e.Name, "Undefined member '%s'.", e.Name.Lexeme)
		}
		if s.visibility == types.VisibilityPrivate && interp.currentClass != obj.Inst.class {
			return Value{}, errors.NewRuntimeError(e.Name, "Can't access private member '%s'.", e.Name.Lexeme)
		}
		if s.isFinal && s.initialized {
			return Value{}, errors.NewRuntimeError(e.Name, "Member '%s' is final.", e.Name.Lexeme)
		}
		converted, err := ConvertForDeclaredType(e.Name, s.declared, value)
		if err != nil {
			return Value{}, err
		}
		s.value = converted
		s.initialized = true
		return converted, nil
	case types.Class:
		if obj.Cls == nil {
			return Value{}, errors.NewRuntimeError(e.Name, "Undefined member '%s'.", e.Name.Lexeme)
		}
		return obj.Cls.StaticFields.Assign(e.Name, value)
	default:
		return Value{}, errors.NewRuntimeError(e.Name, "Only instances and classes have members.")
	}
}
