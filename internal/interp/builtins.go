package interp

import (
	"fmt"
	"math"
	"time"

	"github.com/antogp24/javaclone/internal/errors"
	"github.com/antogp24/javaclone/pkg/token"
)

// nativeFn wraps a Go function as a Callable, the shape every builtin in
// this file shares.
type nativeFn struct {
	name  string
	arity int
	fn    func(interp *Interpreter, paren token.Token, args []Value) (Value, error)
}

func (n *nativeFn) Arity() int { return n.arity }
func (n *nativeFn) String() string {
	return fmt.Sprintf("<native fn %s>", n.name)
}
func (n *nativeFn) Call(interp *Interpreter, paren token.Token, args []Value) (Value, error) {
	return n.fn(interp, paren, args)
}

// installBuiltins defines clock, sqrt, and pow into env, in that order,
// each as a native, public, static, final slot.
func installBuiltins(env *Environment) {
	env.DefineNative("clock", &nativeFn{
		name: "clock", arity: 0,
		fn: func(interp *Interpreter, paren token.Token, args []Value) (Value, error) {
			return Long(time.Now().UnixMilli()), nil
		},
	})
	env.DefineNative("sqrt", &nativeFn{
		name: "sqrt", arity: 1,
		fn: func(interp *Interpreter, paren token.Token, args []Value) (Value, error) {
			if !args[0].Tag.IsNumber() {
				return Value{}, errors.NewRuntimeError(paren, "Expected a number as an argument.")
			}
			return Double(math.Sqrt(args[0].AsDouble())), nil
		},
	})
	env.DefineNative("pow", &nativeFn{
		name: "pow", arity: 2,
		fn: func(interp *Interpreter, paren token.Token, args []Value) (Value, error) {
			if !args[0].Tag.IsNumber() || !args[1].Tag.IsNumber() {
				return Value{}, errors.NewRuntimeError(paren, "Expected a number as an argument.")
			}
			return Double(math.Pow(args[0].AsDouble(), args[1].AsDouble())), nil
		},
	})
}
