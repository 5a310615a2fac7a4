package interp

import (
	"bufio"
	"io"

	"github.com/antogp24/javaclone/internal/ast"
	"github.com/antogp24/javaclone/internal/errors"
)

// Interpreter walks a parsed Program, holding the global scope, the
// frame currently in effect, the class/receiver context a method body
// runs under, and the diagnostics sink every runtime error reports to.
type Interpreter struct {
	global  *Environment
	current *Environment

	currentClass *Class
	currentThis  *Instance

	diags *errors.Diagnostics
	out   *bufio.Writer

	nextID uint64
}

// New builds an Interpreter writing sout/soutln output to out and
// reporting runtime errors through diags, with clock/sqrt/pow already
// installed in the global scope.
func New(diags *errors.Diagnostics, out io.Writer) *Interpreter {
	global := NewEnvironment()
	installBuiltins(global)
	return &Interpreter{
		global:  global,
		current: global,
		diags:   diags,
		out:     bufio.NewWriter(out),
	}
}

func (interp *Interpreter) nextInstanceID() uint64 {
	interp.nextID++
	return interp.nextID
}

// Eval evaluates a single standalone expression against the
// interpreter's current global state, flushing any output it produced
// (e.g. a call with side effects). The REPL uses this for the bare-
// expression convenience form, so `1 + 2` at the prompt prints its value
// without needing a surrounding statement.
func (interp *Interpreter) Eval(expr ast.Expression) (Value, error) {
	defer interp.out.Flush()
	v, err := interp.evaluate(expr)
	if err != nil {
		if re, ok := err.(*errors.RuntimeError); ok {
			interp.diags.ReportRuntime(re)
		}
		return Value{}, err
	}
	return v, nil
}

// Interpret executes program's statements in order, stopping and
// reporting at the first runtime error. The output buffer is always
// flushed before returning, success or not.
func (interp *Interpreter) Interpret(program *ast.Program) error {
	defer interp.out.Flush()
	for _, stmt := range program.Statements {
		if err := interp.execute(stmt); err != nil {
			if re, ok := err.(*errors.RuntimeError); ok {
				interp.diags.ReportRuntime(re)
			}
			return err
		}
	}
	return nil
}
