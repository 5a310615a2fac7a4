package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/antogp24/javaclone/internal/errors"
	"github.com/antogp24/javaclone/internal/lexer"
	"github.com/antogp24/javaclone/internal/parser"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestProgramFixtures runs every .jc program under testdata/ end-to-end and
// snapshots its stdout, catching regressions in the lexer/parser/interpreter
// pipeline as a whole rather than one component at a time.
func TestProgramFixtures(t *testing.T) {
	files, err := filepath.Glob("testdata/*.jc")
	if err != nil {
		t.Fatalf("glob testdata: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no fixtures found under testdata/")
	}

	for _, path := range files {
		path := path
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}

			var diagBuf bytes.Buffer
			diags := errors.New(&diagBuf)

			l := lexer.New(string(src))
			toks := l.Scan()
			for _, e := range l.Errors() {
				diags.ReportAt(e.Pos, e.Message)
			}

			p := parser.New(toks, diags)
			program := p.ParseProgram()

			var out bytes.Buffer
			if !diags.HadError {
				interp := New(diags, &out)
				interp.Interpret(program)
			}

			report := out.String()
			if diagBuf.Len() > 0 {
				report += "--- diagnostics ---\n" + diagBuf.String()
			}
			snaps.MatchSnapshot(t, report)
		})
	}
}
