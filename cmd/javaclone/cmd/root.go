package cmd

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags; it defaults to a dev marker
// so `go run` and unflagged builds still print something sensible.
var Version = "0.1.0-dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "javaclone",
	Short: "JavaClone interpreter",
	Long: `javaclone is a tree-walking interpreter for JavaClone, a small
statically-typed, class-oriented scripting language.

Running with no file starts an interactive REPL; running with a file
path executes that file.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "accepted but has no effect; diagnostics are always printed as they occur")
}
