package interp

import "github.com/antogp24/javaclone/pkg/token"

// Callable is anything that can appear as a CallExpr's callee: a
// user-defined function, a bound or unbound method, a native builtin, or
// a class (whose call instantiates it).
type Callable interface {
	Arity() int
	Call(interp *Interpreter, paren token.Token, args []Value) (Value, error)
	String() string
}
