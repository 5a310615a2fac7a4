package parser

import (
	"github.com/antogp24/javaclone/internal/ast"
	"github.com/antogp24/javaclone/internal/types"
	"github.com/antogp24/javaclone/pkg/token"
)

// expression is the grammar's entry point: the comma operator, loosest of
// all. `expr, expr` yields the right operand; no distinct AST node
// represents it. The parser keeps only the last operand: the operands to
// its left are parsed (so their syntax errors are still reported) and then
// dropped, so they are never evaluated and their side effects do not
// happen.
func (p *Parser) expression() ast.Expression {
	expr := p.ternary()
	for p.match(token.COMMA) {
		expr = p.ternary()
	}
	return expr
}

// ternary parses assignment first: in this grammar assignment binds
// TIGHTER than the ternary conditional, so `a = b ? c : d` parses as
// `(a = b) ? c : d`.
func (p *Parser) ternary() ast.Expression {
	expr := p.assignment()

	if p.match(token.QUESTION) {
		question := p.previous()
		then := p.expression()
		p.consume(token.COLON, "Expected ':' after then branch in ternary operator.")
		otherwise := p.ternary()
		return &ast.TernaryExpr{Question: question, Cond: expr, Then: then, Else: otherwise}
	}
	return expr
}

func (p *Parser) assignment() ast.Expression {
	expr := p.logicalOr()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: target.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: target.Object, Name: target.Name, Value: value}
		}
		panic(p.fail(equals, "Invalid assignment target."))
	}
	return expr
}

func (p *Parser) logicalOr() ast.Expression {
	expr := p.logicalAnd()
	for p.match(token.PIPE_PIPE) {
		op := p.previous()
		right := p.logicalAnd()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) logicalAnd() ast.Expression {
	expr := p.equality()
	for p.match(token.AMPERSAND_AMPERSAND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expression {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expression {
	expr := p.bitwiseOr()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.bitwiseOr()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) bitwiseOr() ast.Expression {
	expr := p.bitwiseXor()
	for p.match(token.PIPE) {
		op := p.previous()
		right := p.bitwiseXor()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) bitwiseXor() ast.Expression {
	expr := p.bitwiseAnd()
	for p.match(token.CARET) {
		op := p.previous()
		right := p.bitwiseAnd()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) bitwiseAnd() ast.Expression {
	expr := p.bitwiseShift()
	for p.match(token.AMPERSAND) {
		op := p.previous()
		right := p.bitwiseShift()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) bitwiseShift() ast.Expression {
	expr := p.term()
	for p.match(token.LESS_LESS, token.GREATER_GREATER) {
		op := p.previous()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expression {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expression {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR, token.PERCENT) {
		op := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

var castableTypes = map[token.Type]bool{
	token.TYPE_BOOLEAN: true,
	token.TYPE_BYTE:    true,
	token.TYPE_CHAR:    true,
	token.TYPE_INT:     true,
	token.TYPE_LONG:    true,
	token.TYPE_FLOAT:   true,
	token.TYPE_DOUBLE:  true,
}

func (p *Parser) unary() ast.Expression {
	if p.match(token.BANG, token.MINUS, token.TILDE) {
		op := p.previous()
		right := p.unary()
		return &ast.UnaryExpr{Op: op, Right: right}
	}

	// prefix ++ / --
	if p.match(token.PLUS_PLUS, token.MINUS_MINUS) {
		dir := 1
		if p.previous().Type == token.MINUS_MINUS {
			dir = -1
		}
		name := p.consume(token.IDENTIFIER, "Expected identifier after prefix operator.")
		return &ast.IncrementExpr{Name: name, Direction: dir}
	}

	// postfix ++ / --
	if p.check(token.IDENTIFIER) && (p.peekAt(1).Type == token.PLUS_PLUS || p.peekAt(1).Type == token.MINUS_MINUS) {
		name := p.advance()
		dir := 1
		if p.advance().Type == token.MINUS_MINUS {
			dir = -1
		}
		return &ast.IncrementExpr{Name: name, Direction: dir}
	}

	if p.check(token.PAREN_LEFT) && castableTypes[p.peekAt(1).Type] && p.peekAt(2).Type == token.PAREN_RIGHT {
		p.advance() // (
		typeTok := p.advance()
		p.advance() // )
		right := p.unary()
		return &ast.CastExpr{TypeTok: typeTok, Right: right}
	}

	return p.call()
}

func (p *Parser) call() ast.Expression {
	expr := p.primary()

	for {
		switch {
		case p.match(token.PAREN_LEFT):
			var args []ast.Argument
			if !p.check(token.PAREN_RIGHT) {
				for {
					if len(args) >= 255 {
						panic(p.fail(p.peek(), "Can't have more than 255 arguments."))
					}
					argPos := p.peek().Pos
					argExpr := p.ternary() // one level above the comma operator
					args = append(args, ast.Argument{Value: argExpr, Pos: argPos})
					if !p.match(token.COMMA) {
						break
					}
				}
			}
			paren := p.consume(token.PAREN_RIGHT, "Expected ')' after function call.")
			expr = &ast.CallExpr{Callee: expr, Paren: paren, Arguments: args}
		case p.match(token.DOT):
			name := p.consume(token.IDENTIFIER, "Expected property name after '.'.")
			expr = &ast.GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) primary() ast.Expression {
	switch {
	case p.match(token.FALSE):
		return &ast.LiteralExpr{Tok: p.previous(), Val: ast.LiteralValue{Tag: types.Boolean, Bool: false}}
	case p.match(token.TRUE):
		return &ast.LiteralExpr{Tok: p.previous(), Val: ast.LiteralValue{Tag: types.Boolean, Bool: true}}
	case p.match(token.NULL):
		return &ast.LiteralExpr{Tok: p.previous(), Val: ast.LiteralValue{Tag: types.Null, IsNull: true}}
	case p.match(token.NUMBER):
		return p.numberLiteral()
	case p.match(token.STRING):
		tok := p.previous()
		return &ast.LiteralExpr{Tok: tok, Val: ast.LiteralValue{Tag: types.String, Str: tok.Lexeme}}
	case p.match(token.CHARACTER):
		tok := p.previous()
		return &ast.LiteralExpr{Tok: tok, Val: ast.LiteralValue{Tag: types.Char, Char: uint16(tok.Literal.Long)}}
	case p.match(token.THIS):
		if p.classDepth == 0 {
			panic(p.fail(p.previous(), "Can't use 'this' outside a class."))
		}
		return &ast.ThisExpr{Tok: p.previous()}
	case p.match(token.NEW):
		// `new` carries no semantics of its own: the class itself is
		// callable, so `new Foo(...)` parses identically to `Foo(...)`.
		return p.call()
	case p.match(token.IDENTIFIER):
		return &ast.VariableExpr{Name: p.previous()}
	case p.match(token.PAREN_LEFT):
		paren := p.previous()
		inner := p.expression()
		p.consume(token.PAREN_RIGHT, "Expected closing ')'.")
		return &ast.GroupingExpr{Paren: paren, Inner: inner}
	}
	panic(p.fail(p.peek(), "Expected expression."))
}

func (p *Parser) numberLiteral() ast.Expression {
	tok := p.previous()
	val := ast.LiteralValue{}
	switch tok.Literal.Kind {
	case token.LongLiteral:
		val.Tag = types.Long
		val.Long = tok.Literal.Long
	case token.FloatLiteral:
		val.Tag = types.Float
		val.Float = tok.Literal.Float
	case token.DoubleLiteral:
		val.Tag = types.Double
		val.Double = tok.Literal.Double
	}
	return &ast.LiteralExpr{Tok: tok, Val: val}
}
