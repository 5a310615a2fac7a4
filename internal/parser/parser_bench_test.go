package parser

import (
	"strconv"
	"strings"
	"testing"

	"github.com/antogp24/javaclone/internal/errors"
	"github.com/antogp24/javaclone/internal/lexer"
)

func parseFor(b *testing.B, src string) {
	b.Helper()
	l := lexer.New(src)
	toks := l.Scan()
	diags := errors.New(discardWriter{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := New(toks, diags)
		p.ParseProgram()
	}
}

// discardWriter is a minimal io.Writer sink so the benchmarks don't pay for
// diagnostic formatting against os.Stdout/Stderr.
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// BenchmarkParseMixedProgram benchmarks the full expression-precedence chain
// and statement dispatch against a realistic program.
func BenchmarkParseMixedProgram(b *testing.B) {
	parseFor(b, `
class Shape {
    protected double area = 0.0;
    public double get_area() { return this.area; }
}
class Circle extends Shape {
    private double radius = 1.0;
}
int fib(int n) {
    if (n < 2) return n;
    return fib(n - 1) + fib(n - 2);
}
for (int i = 0; i < 10; i = i + 1) {
    soutln(fib(i) + (i % 2 == 0 ? 1 : -1) * 2 / 3 & 15 | 1);
}
`)
}

// BenchmarkParseDeeplyNestedExpression stresses the precedence-climbing
// recursive descent against a pathologically deep parenthesis nesting.
func BenchmarkParseDeeplyNestedExpression(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("int x = ")
	for i := 0; i < 500; i++ {
		sb.WriteString("(")
	}
	sb.WriteString("1")
	for i := 0; i < 500; i++ {
		sb.WriteString(")")
	}
	sb.WriteString(";")
	parseFor(b, sb.String())
}

// BenchmarkParseLongDeclarationList stresses the comma-separated declarator
// list parsing against a pathologically wide single declaration.
func BenchmarkParseLongDeclarationList(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("int ")
	for i := 0; i < 2000; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("v")
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteString(";")
	parseFor(b, sb.String())
}
