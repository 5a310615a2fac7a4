package cmd

import (
	"fmt"
	"os"

	"github.com/antogp24/javaclone/internal/errors"
	"github.com/antogp24/javaclone/internal/interp"
	"github.com/antogp24/javaclone/internal/lexer"
	"github.com/antogp24/javaclone/internal/parser"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a JavaClone file, or start the REPL if none is given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMain,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = runMain
}

func runMain(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		runREPL()
		return nil
	}
	return runFile(args[0])
}

func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("can't read %s: %w", path, err)
	}

	diags := errors.New(os.Stderr)
	l := lexer.New(string(source))
	tokens := l.Scan()
	for _, lexErr := range l.Errors() {
		diags.ReportAt(lexErr.Pos, lexErr.Message)
	}
	if diags.HadError {
		os.Exit(1)
	}

	p := parser.New(tokens, diags)
	program := p.ParseProgram()
	if diags.HadError {
		os.Exit(1)
	}

	interpreter := interp.New(diags, os.Stdout)
	if err := interpreter.Interpret(program); err != nil {
		os.Exit(1)
	}
	return nil
}
