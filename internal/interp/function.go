package interp

import (
	"fmt"

	"github.com/antogp24/javaclone/internal/ast"
	"github.com/antogp24/javaclone/internal/types"
	"github.com/antogp24/javaclone/pkg/token"
)

// UserFunction is a function or method value: the declaration plus the
// environment it closes over. A method additionally carries the class it
// was declared in (for private-access checks during its body) and, once
// bound to a receiver, the instance `this` resolves to.
type UserFunction struct {
	Decl     *ast.FunctionStmt
	Closure  *Environment
	Owner    *Class
	Receiver *Instance
}

// Bind returns a copy of f attached to inst. Class.Call uses it when an
// instance is created, binding every instance method and the constructor
// to the new instance.
func (f *UserFunction) Bind(inst *Instance) *UserFunction {
	bound := *f
	bound.Receiver = inst
	return &bound
}

func (f *UserFunction) Arity() int { return len(f.Decl.Params) }

func (f *UserFunction) String() string {
	if f.Decl.Name.Type == token.CONSTRUCTOR {
		return fmt.Sprintf("<constructor %s>", f.Owner.Name)
	}
	return fmt.Sprintf("<fn %s>", f.Decl.Name.Lexeme)
}

// Call binds parameters into a fresh environment rooted at the closure,
// runs the body, and unwraps a returnSignal into its value. Falling off
// the end of the body yields the zero value of the declared return type.
func (f *UserFunction) Call(interp *Interpreter, paren token.Token, args []Value) (Value, error) {
	env := NewChildEnvironment(f.Closure)
	for i, param := range f.Decl.Params {
		declared := TagForTypeToken(param.Type)
		converted, err := ConvertForDeclaredType(param.Name, declared, args[i])
		if err != nil {
			return Value{}, err
		}
		if err := env.Define(param.Name, declared, types.VisibilityLocal, false, false, converted, true); err != nil {
			return Value{}, err
		}
	}

	prevClass, prevThis := interp.currentClass, interp.currentThis
	interp.currentClass = f.Owner
	interp.currentThis = f.Receiver
	err := interp.ExecuteBlock(f.Decl.Body.Statements, env)
	interp.currentClass, interp.currentThis = prevClass, prevThis

	if ret, ok := err.(returnSignal); ok {
		return ret.Value, nil
	}
	if err != nil {
		return Value{}, err
	}

	declaredReturn := TagForTypeToken(f.Decl.ReturnType)
	if declaredReturn == types.Void {
		return Void, nil
	}
	return zeroValue(declaredReturn), nil
}

// zeroValue returns the default value a variable or fallthrough return of
// the given declared type takes on, per the conversion policy's handling
// of uninitialized primitives.
func zeroValue(tag types.Tag) Value {
	switch tag {
	case types.Boolean:
		return Bool(false)
	case types.Byte:
		return Byte(0)
	case types.Char:
		return Char(0)
	case types.Int:
		return Int(0)
	case types.Long:
		return Long(0)
	case types.Float:
		return Float(0)
	case types.Double:
		return Double(0)
	case types.String:
		return NullString()
	case types.UserDefined:
		return NullInstance()
	default:
		return Void
	}
}
