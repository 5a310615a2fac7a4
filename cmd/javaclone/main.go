// Command javaclone runs the JavaClone interpreter: a file, or an
// interactive REPL when no file is given.
package main

import (
	"fmt"
	"os"

	"github.com/antogp24/javaclone/cmd/javaclone/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
