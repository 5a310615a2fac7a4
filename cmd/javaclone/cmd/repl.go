package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/antogp24/javaclone/internal/errors"
	"github.com/antogp24/javaclone/internal/interp"
	"github.com/antogp24/javaclone/internal/lexer"
	"github.com/antogp24/javaclone/internal/parser"
	"github.com/antogp24/javaclone/internal/types"
)

// runREPL reads one line at a time, parsing it first as a bare expression
// (so `1 + 2` at the prompt prints its value) and falling back to a full
// statement/declaration when that fails. State persists across lines: a
// single Interpreter lives for the whole session.
func runREPL() {
	diags := errors.New(os.Stderr)
	interpreter := interp.New(diags, os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("javaclone " + Version)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		diags.Reset()
		evalLine(interpreter, diags, line)
	}
}

func evalLine(interpreter *interp.Interpreter, diags *errors.Diagnostics, line string) {
	l := lexer.New(line)
	tokens := l.Scan()
	for _, lexErr := range l.Errors() {
		diags.ReportAt(lexErr.Pos, lexErr.Message)
	}
	if diags.HadError {
		return
	}

	p := parser.New(tokens, diags)
	if expr, ok := p.ParseExpression(); ok {
		v, err := interpreter.Eval(expr)
		if err != nil {
			return
		}
		if v.Tag != types.Void {
			fmt.Println(v.Print())
		}
		return
	}

	diags.Reset()
	l = lexer.New(line)
	tokens = l.Scan()
	p = parser.New(tokens, diags)
	program := p.ParseProgram()
	if diags.HadError {
		return
	}
	interpreter.Interpret(program)
}
