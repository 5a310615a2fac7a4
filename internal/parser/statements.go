package parser

import (
	"github.com/antogp24/javaclone/internal/ast"
	"github.com/antogp24/javaclone/internal/types"
	"github.com/antogp24/javaclone/pkg/token"
)

// declaration is the entry point used by both ParseProgram and block
// bodies: class declarations, constructors, typed declarations, modifier
// declarations, and plain statements all dispatch from here.
func (p *Parser) declaration() ast.Statement {
	switch {
	case p.check(token.ABSTRACT), p.check(token.CLASS):
		return p.classDeclaration()
	case p.check(token.CONSTRUCTOR):
		return p.constructorDeclaration(types.VisibilityNone)
	case isModifierStart(p.peek().Type):
		return p.complexDeclaration()
	case p.isTypeStart(p.peek()) && p.peekAt(1).Type == token.IDENTIFIER:
		return p.typedDeclaration(p.advance(), types.VisibilityNone, false, false)
	default:
		return p.statement()
	}
}

func isModifierStart(t token.Type) bool {
	switch t {
	case token.STATIC, token.FINAL, token.PUBLIC, token.PRIVATE, token.PROTECTED:
		return true
	default:
		return false
	}
}

// complexDeclaration consumes a run of modifiers (each category — static,
// visibility, final — permitted at most once) and then dispatches to
// either a constructor or a typed (var/function) declaration.
func (p *Parser) complexDeclaration() ast.Statement {
	visibility := types.VisibilityNone
	haveVisibility := false
	isStatic := false
	isFinal := false

	for isModifierStart(p.peek().Type) {
		tok := p.advance()
		switch tok.Type {
		case token.STATIC:
			if isStatic {
				panic(p.fail(tok, "Duplicate 'static' modifier."))
			}
			isStatic = true
		case token.FINAL:
			if isFinal {
				panic(p.fail(tok, "Duplicate 'final' modifier."))
			}
			isFinal = true
		case token.PUBLIC, token.PRIVATE, token.PROTECTED:
			if haveVisibility {
				panic(p.fail(tok, "Duplicate visibility modifier."))
			}
			haveVisibility = true
			visibility = visibilityOf(tok.Type)
		}
	}

	if p.check(token.CONSTRUCTOR) {
		return p.constructorDeclaration(visibility)
	}
	if !p.isTypeStart(p.peek()) {
		panic(p.fail(p.peek(), "Expected a type after modifiers."))
	}
	return p.typedDeclaration(p.advance(), visibility, isStatic, isFinal)
}

func visibilityOf(t token.Type) types.Visibility {
	switch t {
	case token.PUBLIC:
		return types.VisibilityPublic
	case token.PRIVATE:
		return types.VisibilityPrivate
	case token.PROTECTED:
		return types.VisibilityProtected
	default:
		return types.VisibilityNone
	}
}

// typedDeclaration parses `type name(...)` as a function declaration, or
// `type name1 [= init1], name2 [= init2], ...;` as a variable declaration.
// typeTok has already been consumed.
func (p *Parser) typedDeclaration(typeTok token.Token, visibility types.Visibility, isStatic, isFinal bool) ast.Statement {
	name := p.consume(token.IDENTIFIER, "Expected a name after type.")
	if p.check(token.PAREN_LEFT) {
		return p.functionDeclaration(typeTok, name, visibility, isStatic, isFinal)
	}
	return p.varDeclarationRest(typeTok, name, visibility, isStatic, isFinal)
}

// varDeclarationRest parses the comma-separated declarator list following
// `type name`; the first name has already been consumed.
func (p *Parser) varDeclarationRest(typeTok, firstName token.Token, visibility types.Visibility, isStatic, isFinal bool) *ast.VarStmt {
	names := []token.Token{firstName}
	var initializers []ast.Expression

	parseInit := func() ast.Expression {
		if p.match(token.EQUAL) {
			return p.ternary()
		}
		return nil
	}
	initializers = append(initializers, parseInit())

	for p.match(token.COMMA) {
		n := p.consume(token.IDENTIFIER, "Expected variable name.")
		names = append(names, n)
		initializers = append(initializers, parseInit())
	}

	p.consume(token.SEMICOLON, "Expected ';' after variable declaration.")
	return &ast.VarStmt{
		TypeTok:      typeTok,
		Names:        names,
		Initializers: initializers,
		Visibility:   visibility,
		IsStatic:     isStatic,
		IsFinal:      isFinal,
	}
}

const maxParams = 255

// functionDeclaration parses the parameter list and body of a function or
// method; returnType and name have already been consumed.
func (p *Parser) functionDeclaration(returnType, name token.Token, visibility types.Visibility, isStatic, isFinal bool) *ast.FunctionStmt {
	p.consume(token.PAREN_LEFT, "Expected '(' after function name.")
	params := p.parameterList()
	p.consume(token.PAREN_RIGHT, "Expected ')' after parameters.")

	p.functionDepth++
	body := p.blockStatement()
	p.functionDepth--

	return &ast.FunctionStmt{
		ReturnType: returnType,
		Name:       name,
		Visibility: visibility,
		IsStatic:   isStatic,
		IsFinal:    isFinal,
		Params:     params,
		Body:       body,
	}
}

// constructorDeclaration parses `__init__(...) { ... }`. Only public or
// unspecified visibility is permitted.
func (p *Parser) constructorDeclaration(visibility types.Visibility) *ast.FunctionStmt {
	ctorTok := p.consume(token.CONSTRUCTOR, "Expected '__init__'.")
	if visibility != types.VisibilityNone && visibility != types.VisibilityPublic {
		panic(p.fail(ctorTok, "A constructor can only be public."))
	}
	p.consume(token.PAREN_LEFT, "Expected '(' after '__init__'.")
	params := p.parameterList()
	p.consume(token.PAREN_RIGHT, "Expected ')' after parameters.")

	p.functionDepth++
	body := p.blockStatement()
	p.functionDepth--

	return &ast.FunctionStmt{
		ReturnType: token.Token{Type: token.TYPE_VOID, Lexeme: "void", Pos: ctorTok.Pos},
		Name:       ctorTok,
		Visibility: types.VisibilityPublic,
		Params:     params,
		Body:       body,
	}
}

func (p *Parser) parameterList() []ast.Param {
	var params []ast.Param
	if p.check(token.PAREN_RIGHT) {
		return params
	}
	seen := map[string]bool{}
	for {
		if len(params) >= maxParams {
			panic(p.fail(p.peek(), "Can't have more than 255 parameters."))
		}
		if !p.isTypeStart(p.peek()) {
			panic(p.fail(p.peek(), "Expected parameter type."))
		}
		typeTok := p.advance()
		nameTok := p.consume(token.IDENTIFIER, "Expected parameter name.")
		if seen[nameTok.Lexeme] {
			panic(p.fail(nameTok, "Duplicate parameter name '"+nameTok.Lexeme+"'."))
		}
		seen[nameTok.Lexeme] = true
		params = append(params, ast.Param{Type: typeTok, Name: nameTok})
		if !p.match(token.COMMA) {
			break
		}
	}
	return params
}

// classDeclaration parses `[abstract] class Name { members... }`. The
// class name is registered in p.classNames as soon as it is seen, before
// the body is parsed — this is the "first sight" preregistration the
// parser uses to disambiguate `Name x` from `Name()` later in the file. A
// class declared later in the file is never retroactively recognized.
func (p *Parser) classDeclaration() *ast.ClassStmt {
	isAbstract := p.match(token.ABSTRACT)
	p.consume(token.CLASS, "Expected 'class'.")
	name := p.consume(token.IDENTIFIER, "Expected class name.")
	p.classNames[name.Lexeme] = true

	if p.classDepth > 0 {
		panic(p.fail(name, "Can't declare a class inside of a class."))
	}

	var superclass *token.Token
	if p.match(token.EXTENDS) {
		sup := p.consume(token.IDENTIFIER, "Expected superclass name after 'extends'.")
		superclass = &sup
	}

	p.classDepth++
	defer func() { p.classDepth-- }()

	p.consume(token.CURLY_LEFT, "Expected '{' before class body.")

	stmt := &ast.ClassStmt{Name: name, IsAbstract: isAbstract, Superclass: superclass}
	seen := map[string]bool{}

	for !p.check(token.CURLY_RIGHT) && !p.atEnd() {
		p.classMember(stmt, seen)
	}
	p.consume(token.CURLY_RIGHT, "Expected '}' after class body.")
	return stmt
}

func (p *Parser) classMember(stmt *ast.ClassStmt, seen map[string]bool) {
	if p.check(token.CLASS) || p.check(token.ABSTRACT) {
		panic(p.fail(p.peek(), "Can't declare a class inside of a class."))
	}

	visibility := types.VisibilityNone
	haveVisibility := false
	isStatic := false
	isFinal := false
	for isModifierStart(p.peek().Type) {
		tok := p.advance()
		switch tok.Type {
		case token.STATIC:
			if isStatic {
				panic(p.fail(tok, "Duplicate 'static' modifier."))
			}
			isStatic = true
		case token.FINAL:
			if isFinal {
				panic(p.fail(tok, "Duplicate 'final' modifier."))
			}
			isFinal = true
		case token.PUBLIC, token.PRIVATE, token.PROTECTED:
			if haveVisibility {
				panic(p.fail(tok, "Duplicate visibility modifier."))
			}
			haveVisibility = true
			visibility = visibilityOf(tok.Type)
		}
	}

	if p.check(token.CONSTRUCTOR) {
		ctor := p.constructorDeclaration(visibility)
		if stmt.Constructor != nil {
			panic(p.fail(ctor.Name, "A class can only have one constructor."))
		}
		stmt.Constructor = ctor
		return
	}

	if !p.isTypeStart(p.peek()) {
		panic(p.fail(p.peek(), "Expected field or method declaration inside class body."))
	}
	typeTok := p.advance()
	name := p.consume(token.IDENTIFIER, "Expected a name after type.")

	if p.check(token.PAREN_LEFT) {
		method := p.functionDeclaration(typeTok, name, visibility, isStatic, isFinal)
		if seen[method.Name.Lexeme] {
			panic(p.fail(method.Name, "Duplicate member name '"+method.Name.Lexeme+"' in class '"+stmt.Name.Lexeme+"'."))
		}
		seen[method.Name.Lexeme] = true
		stmt.Methods = append(stmt.Methods, method)
		return
	}

	varStmt := p.varDeclarationRest(typeTok, name, visibility, isStatic, isFinal)
	for _, n := range varStmt.Names {
		if seen[n.Lexeme] {
			panic(p.fail(n, "Duplicate member name '"+n.Lexeme+"' in class '"+stmt.Name.Lexeme+"'."))
		}
		seen[n.Lexeme] = true
	}
	stmt.Attributes = append(stmt.Attributes, varStmt)
}

// statement parses any non-declaration statement.
func (p *Parser) statement() ast.Statement {
	switch {
	case p.check(token.SOUT), p.check(token.SOUTLN):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.check(token.CURLY_LEFT):
		return p.blockStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.BREAK):
		return p.breakStatement()
	case p.match(token.CONTINUE):
		return p.continueStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Statement {
	tok := p.advance() // SOUT or SOUTLN
	p.consume(token.PAREN_LEFT, "Expected '(' after '"+tok.Lexeme+"'.")
	var value ast.Expression
	if !p.check(token.PAREN_RIGHT) {
		value = p.expression()
	}
	p.consume(token.PAREN_RIGHT, "Expected ')' after print argument.")
	p.consume(token.SEMICOLON, "Expected ';' after statement.")
	return &ast.PrintStmt{Tok: tok, Value: value, Newline: tok.Type == token.SOUTLN}
}

func (p *Parser) returnStatement() ast.Statement {
	tok := p.previous()
	if p.functionDepth == 0 {
		panic(p.fail(tok, "Can't return from outside of a function."))
	}
	var value ast.Expression
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "Expected ';' after return value.")
	return &ast.ReturnStmt{Tok: tok, Value: value}
}

func (p *Parser) breakStatement() ast.Statement {
	tok := p.previous()
	if p.loopDepth == 0 {
		panic(p.fail(tok, "Can't break outside of a loop."))
	}
	p.consume(token.SEMICOLON, "Expected ';' after 'break'.")
	return &ast.BreakStmt{Tok: tok}
}

func (p *Parser) continueStatement() ast.Statement {
	tok := p.previous()
	if p.loopDepth == 0 {
		panic(p.fail(tok, "Can't continue outside of a loop."))
	}
	p.consume(token.SEMICOLON, "Expected ';' after 'continue'.")
	return &ast.ContinueStmt{Tok: tok}
}

func (p *Parser) blockStatement() *ast.BlockStmt {
	open := p.consume(token.CURLY_LEFT, "Expected '{'.")
	block := &ast.BlockStmt{Tok: open}
	for !p.check(token.CURLY_RIGHT) && !p.atEnd() {
		stmt := p.parseDeclarationSync(p.declaration)
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.consume(token.CURLY_RIGHT, "Expected '}' after block.")
	return block
}

func (p *Parser) ifStatement() ast.Statement {
	tok := p.previous()
	p.consume(token.PAREN_LEFT, "Expected '(' after 'if'.")
	cond := p.expression()
	p.consume(token.PAREN_RIGHT, "Expected ')' after condition.")
	then := p.statement()

	stmt := &ast.IfStmt{Tok: tok, Condition: cond, Then: then}
	for p.check(token.ELSE) && p.peekAt(1).Type == token.IF {
		p.advance() // else
		p.advance() // if
		p.consume(token.PAREN_LEFT, "Expected '(' after 'if'.")
		elseIfCond := p.expression()
		p.consume(token.PAREN_RIGHT, "Expected ')' after condition.")
		stmt.ElseIfs = append(stmt.ElseIfs, ast.ElseIf{Condition: elseIfCond, Then: p.statement()})
	}
	if p.match(token.ELSE) {
		stmt.Else = p.statement()
	}
	return stmt
}

func (p *Parser) whileStatement() ast.Statement {
	tok := p.previous()
	p.consume(token.PAREN_LEFT, "Expected '(' after 'while'.")
	cond := p.expression()
	p.consume(token.PAREN_RIGHT, "Expected ')' after condition.")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	return &ast.WhileStmt{Tok: tok, Condition: cond, Body: body}
}

func (p *Parser) forStatement() ast.Statement {
	tok := p.previous()
	p.consume(token.PAREN_LEFT, "Expected '(' after 'for'.")

	var init ast.Statement
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.isTypeStart(p.peek()) && p.peekAt(1).Type == token.IDENTIFIER:
		init = p.typedDeclaration(p.advance(), types.VisibilityLocal, false, false)
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expression
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	} else {
		cond = &ast.LiteralExpr{Tok: tok, Val: ast.LiteralValue{Tag: types.Boolean, Bool: true}}
	}
	p.consume(token.SEMICOLON, "Expected ';' after loop condition.")

	var incr ast.Expression
	if !p.check(token.PAREN_RIGHT) {
		incr = p.expression()
	}
	p.consume(token.PAREN_RIGHT, "Expected ')' after for clauses.")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	bodyStatements := []ast.Statement{body}
	if incr != nil {
		bodyStatements = append(bodyStatements, &ast.ExpressionStmt{Expr: incr})
	}
	loop := &ast.WhileStmt{
		Tok:          tok,
		Condition:    cond,
		Body:         &ast.BlockStmt{Tok: tok, Statements: bodyStatements},
		HasIncrement: incr != nil,
	}

	if init == nil {
		return loop
	}
	return &ast.BlockStmt{Tok: tok, Statements: []ast.Statement{init, loop}}
}

func (p *Parser) expressionStatement() ast.Statement {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expected ';' after expression.")
	return &ast.ExpressionStmt{Expr: expr}
}
