package parser

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/antogp24/javaclone/internal/ast"
	"github.com/antogp24/javaclone/internal/errors"
	"github.com/antogp24/javaclone/internal/lexer"
)

func parseProgram(t *testing.T, src string) (*ast.Program, *errors.Diagnostics) {
	t.Helper()
	l := lexer.New(src)
	toks := l.Scan()
	var buf bytes.Buffer
	diags := errors.New(&buf)
	for _, e := range l.Errors() {
		diags.ReportAt(e.Pos, e.Message)
	}
	p := New(toks, diags)
	return p.ParseProgram(), diags
}

func mustParseOne(t *testing.T, src string) ast.Statement {
	t.Helper()
	program, diags := parseProgram(t, src)
	if diags.HadError {
		t.Fatalf("unexpected parse error for %q", src)
	}
	if len(program.Statements) != 1 {
		t.Fatalf("got %d statements, want 1: %q", len(program.Statements), src)
	}
	return program.Statements[0]
}

func TestVarDeclaration(t *testing.T) {
	stmt := mustParseOne(t, "int x = 1;")
	v, ok := stmt.(*ast.VarStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.VarStmt", stmt)
	}
	if len(v.Names) != 1 || v.Names[0].Lexeme != "x" {
		t.Errorf("names = %v, want [x]", v.Names)
	}
	if v.Initializers[0] == nil {
		t.Error("expected an initializer")
	}
}

func TestVarDeclarationMultipleDeclarators(t *testing.T) {
	stmt := mustParseOne(t, "int a = 1, b, c = 3;")
	v := stmt.(*ast.VarStmt)
	if len(v.Names) != 3 {
		t.Fatalf("got %d names, want 3", len(v.Names))
	}
	if v.Initializers[1] != nil {
		t.Error("b should have no initializer")
	}
}

func TestFunctionVsVarDisambiguation(t *testing.T) {
	stmt := mustParseOne(t, "void f() {}")
	if _, ok := stmt.(*ast.FunctionStmt); !ok {
		t.Fatalf("got %T, want *ast.FunctionStmt", stmt)
	}
}

func TestModifierComposition(t *testing.T) {
	stmt := mustParseOne(t, "public static final int x = 1;")
	v := stmt.(*ast.VarStmt)
	if !v.IsStatic || !v.IsFinal {
		t.Errorf("expected static+final, got static=%v final=%v", v.IsStatic, v.IsFinal)
	}
}

func TestDuplicateModifierIsError(t *testing.T) {
	_, diags := parseProgram(t, "static static int x = 1;")
	if !diags.HadError {
		t.Fatal("expected a duplicate-modifier error")
	}
}

func TestClassNamePreregistrationEnablesDeclaration(t *testing.T) {
	program, diags := parseProgram(t, "class Foo {} Foo f;")
	if diags.HadError {
		t.Fatalf("unexpected parse error")
	}
	if len(program.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(program.Statements))
	}
	if _, ok := program.Statements[1].(*ast.VarStmt); !ok {
		t.Fatalf("got %T, want *ast.VarStmt (Foo f;)", program.Statements[1])
	}
}

func TestClassNameNotRetroactive(t *testing.T) {
	// "Bar b;" appears before "class Bar {}" is seen, so "Bar" is not yet
	// a registered type name and "Bar b;" must fail to parse as a
	// declaration (it is read as an expression statement "Bar" and then
	// fails on the missing ';'; this test only checks it isn't parsed as a
	// VarStmt).
	program, diags := parseProgram(t, "Bar b; class Bar {}")
	if diags.HadError {
		return // also acceptable: the parser may reject "Bar b" outright
	}
	if len(program.Statements) > 0 {
		if _, ok := program.Statements[0].(*ast.VarStmt); ok {
			t.Fatal("Bar should not be recognized as a type before its class declaration")
		}
	}
}

func TestConstructorDeclaration(t *testing.T) {
	program, diags := parseProgram(t, "class A { __init__() {} }")
	if diags.HadError {
		t.Fatalf("unexpected parse error")
	}
	class := program.Statements[0].(*ast.ClassStmt)
	if class.Constructor == nil {
		t.Fatal("expected a constructor")
	}
}

func TestDuplicateMemberNameIsError(t *testing.T) {
	_, diags := parseProgram(t, "class A { int x = 1; int x = 2; }")
	if !diags.HadError {
		t.Fatal("expected a duplicate-member error")
	}
}

func TestNestedClassIsError(t *testing.T) {
	_, diags := parseProgram(t, "class A { class B {} }")
	if !diags.HadError {
		t.Fatal("expected a nested-class error")
	}
}

func TestBreakOutsideLoopIsError(t *testing.T) {
	_, diags := parseProgram(t, "break;")
	if !diags.HadError {
		t.Fatal("expected a break-outside-loop error")
	}
}

func TestContinueOutsideLoopIsError(t *testing.T) {
	_, diags := parseProgram(t, "continue;")
	if !diags.HadError {
		t.Fatal("expected a continue-outside-loop error")
	}
}

func TestReturnOutsideFunctionIsError(t *testing.T) {
	_, diags := parseProgram(t, "return;")
	if !diags.HadError {
		t.Fatal("expected a return-outside-function error")
	}
}

func TestBreakInsideLoopIsFine(t *testing.T) {
	_, diags := parseProgram(t, "while (true) { break; }")
	if diags.HadError {
		t.Fatal("break inside a while loop should parse cleanly")
	}
}

func TestForDesugarsToWhileWithIncrement(t *testing.T) {
	stmt := mustParseOne(t, "for (int i = 0; i < 5; i = i + 1) { sout(i); }")
	block, ok := stmt.(*ast.BlockStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.BlockStmt wrapping init+while", stmt)
	}
	if len(block.Statements) != 2 {
		t.Fatalf("got %d statements, want init + while", len(block.Statements))
	}
	while, ok := block.Statements[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.WhileStmt", block.Statements[1])
	}
	if !while.HasIncrement {
		t.Error("expected HasIncrement to be true")
	}
	body := while.Body.(*ast.BlockStmt)
	if len(body.Statements) != 2 {
		t.Fatalf("while body should hold [original body, increment], got %d statements", len(body.Statements))
	}
}

func TestTernaryPrecedence(t *testing.T) {
	// assignment binds tighter than ternary: `a = b ? c : d` parses as
	// `(a = b) ? c : d`... but since assignment requires an lvalue and
	// `b` isn't one here in isolation, use a clean case instead:
	// `x ? a = 1 : a = 2` should treat the true branch as a full
	// expression (an assignment).
	stmt := mustParseOne(t, "x ? a = 1 : a = 2;")
	exprStmt := stmt.(*ast.ExpressionStmt)
	ternary, ok := exprStmt.Expr.(*ast.TernaryExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.TernaryExpr", exprStmt.Expr)
	}
	if _, ok := ternary.Then.(*ast.AssignExpr); !ok {
		t.Errorf("then-branch should be a full assignment expression, got %T", ternary.Then)
	}
}

func TestCommaOperatorKeepsLastValue(t *testing.T) {
	stmt := mustParseOne(t, "a = (1, 2, 3);")
	assign := stmt.(*ast.ExpressionStmt).Expr.(*ast.AssignExpr)
	grouping, ok := assign.Value.(*ast.GroupingExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.GroupingExpr", assign.Value)
	}
	lit, ok := grouping.Inner.(*ast.LiteralExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.LiteralExpr for the comma operator's surviving operand", grouping.Inner)
	}
	if lit.Val.Long != 3 {
		t.Errorf("comma operator should discard all but the last operand, got %v", lit.Val)
	}
}

func TestCastVsGrouping(t *testing.T) {
	castStmt := mustParseOne(t, "(int) x;")
	if _, ok := castStmt.(*ast.ExpressionStmt).Expr.(*ast.CastExpr); !ok {
		t.Errorf("(int) x should parse as a cast, got %T", castStmt.(*ast.ExpressionStmt).Expr)
	}

	groupStmt := mustParseOne(t, "(x);")
	if _, ok := groupStmt.(*ast.ExpressionStmt).Expr.(*ast.GroupingExpr); !ok {
		t.Errorf("(x) should parse as a grouping, got %T", groupStmt.(*ast.ExpressionStmt).Expr)
	}
}

func TestInvalidAssignmentTargetIsError(t *testing.T) {
	_, diags := parseProgram(t, "1 = 2;")
	if !diags.HadError {
		t.Fatal("expected an invalid-assignment-target error")
	}
}

func TestArgumentCountCap(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"
	_, diags := parseProgram(t, src)
	if !diags.HadError {
		t.Fatal("expected an over-255-arguments error")
	}
}

func TestParameterCountCap(t *testing.T) {
	src := "void f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "int p" + strconv.Itoa(i)
	}
	src += ") {}"
	_, diags := parseProgram(t, src)
	if !diags.HadError {
		t.Fatal("expected an over-255-parameters error")
	}
}

func TestSynchronizeRecoversAfterError(t *testing.T) {
	// The first statement is broken (missing semicolon), but the parser
	// should resynchronize and still pick up the second, valid one.
	program, diags := parseProgram(t, "int x = 1 int y = 2;")
	if !diags.HadError {
		t.Fatal("expected a parse error on the first statement")
	}
	found := false
	for _, s := range program.Statements {
		if v, ok := s.(*ast.VarStmt); ok && v.Names[0].Lexeme == "y" {
			found = true
		}
	}
	if !found {
		t.Error("parser should recover and still parse the second declaration")
	}
}

func TestAbstractClassDeclaration(t *testing.T) {
	program, diags := parseProgram(t, "abstract class K {}")
	if diags.HadError {
		t.Fatalf("unexpected parse error")
	}
	class := program.Statements[0].(*ast.ClassStmt)
	if !class.IsAbstract {
		t.Error("expected IsAbstract to be true")
	}
}

func TestExtendsIsParsedButNotRejectedAtParseTime(t *testing.T) {
	program, diags := parseProgram(t, "class A {} class B extends A {}")
	if diags.HadError {
		t.Fatalf("extends should parse cleanly: %v", diags)
	}
	b := program.Statements[1].(*ast.ClassStmt)
	if b.Superclass == nil || b.Superclass.Lexeme != "A" {
		t.Errorf("expected Superclass to be 'A', got %v", b.Superclass)
	}
}
