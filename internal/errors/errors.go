// Package errors implements the two diagnostic sinks the language
// defines: compile-time errors (lexer and parser) and runtime errors. Both
// report through the same formatted-message grammar; only the flag they
// raise differs.
package errors

import (
	"fmt"
	"io"

	"github.com/antogp24/javaclone/pkg/token"
)

// Diagnostics is the single context threaded through the lexer, parser,
// and interpreter for a given run. Unlike the source this project is
// grounded on, it is an explicit value rather than process-global state, so
// a host program (the REPL, a test) can run many independent interpreters
// without diagnostics leaking between them.
type Diagnostics struct {
	Out io.Writer

	HadError        bool
	HadRuntimeError bool
}

// New returns a Diagnostics sink writing to w.
func New(w io.Writer) *Diagnostics {
	return &Diagnostics{Out: w}
}

// Reset clears both flags, used by the REPL between lines so one line's
// failure doesn't poison the next.
func (d *Diagnostics) Reset() {
	d.HadError = false
	d.HadRuntimeError = false
}

// ReportAt emits a position-only compile diagnostic: `Error at [L:C]: msg`.
// Used by the lexer, which fails before a token necessarily exists.
func (d *Diagnostics) ReportAt(pos token.Position, message string) {
	d.HadError = true
	fmt.Fprintf(d.Out, "Error at [%s]: %s\n\n", pos, message)
}

// ReportToken emits a token-anchored compile diagnostic:
// `Error at '<lexeme>' on [L:C]: msg`. Used by the parser.
func (d *Diagnostics) ReportToken(tok token.Token, message string) {
	d.HadError = true
	fmt.Fprintf(d.Out, "Error at '%s' on [%s]: %s\n\n", tok.DisplayLexeme(), tok.Pos, message)
}

// RuntimeError is the carrier unwound by the interpreter on a runtime
// failure. It is a plain Go error, not a panic: the interpreter returns it
// up the call stack through ordinary (Value, error) returns.
type RuntimeError struct {
	Tok     token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Error at '%s' on [%s]: %s", e.Tok.DisplayLexeme(), e.Tok.Pos, e.Message)
}

// NewRuntimeError constructs a RuntimeError anchored at tok.
func NewRuntimeError(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Tok: tok, Message: fmt.Sprintf(format, args...)}
}

// ReportRuntime prints a runtime error and raises HadRuntimeError. It does
// not panic or exit: the caller (interpret, or the REPL loop) decides what
// to do next.
func (d *Diagnostics) ReportRuntime(err *RuntimeError) {
	d.HadRuntimeError = true
	fmt.Fprintf(d.Out, "%s\n\n", err.Error())
}
