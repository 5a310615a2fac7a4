// Package parser implements a recursive-descent, precedence-climbing
// parser over the language's token stream, producing the ast package's
// node types.
package parser

import (
	"github.com/antogp24/javaclone/internal/ast"
	"github.com/antogp24/javaclone/internal/errors"
	"github.com/antogp24/javaclone/pkg/token"
)

// Parser consumes a flat token slice (the lexer has already run to
// completion) and builds the statement/expression tree.
type Parser struct {
	tokens  []token.Token
	current int
	diags   *errors.Diagnostics

	classNames map[string]bool

	loopDepth     int
	functionDepth int
	classDepth    int
}

// New constructs a Parser over tokens, reporting diagnostics through diags.
func New(tokens []token.Token, diags *errors.Diagnostics) *Parser {
	return &Parser{
		tokens:     tokens,
		diags:      diags,
		classNames: make(map[string]bool),
	}
}

// parseError unwinds a single declaration/statement back to ParseProgram's
// synchronize loop. It is never observed outside this package.
type parseError struct{ tok token.Token }

func (p *Parser) fail(tok token.Token, message string) parseError {
	p.diags.ReportToken(tok, message)
	return parseError{tok: tok}
}

// ParseProgram parses the entire token stream as a sequence of top-level
// declarations and statements.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.atEnd() {
		stmt := p.parseDeclarationSync(p.declaration)
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}
	return program
}

// ParseExpression parses a single expression followed by end of input or a
// semicolon: the REPL's bare-expression convenience form.
func (p *Parser) ParseExpression() (expr ast.Expression, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(parseError); isParseErr {
				ok = false
				return
			}
			panic(r)
		}
	}()
	expr = p.expression()
	p.match(token.SEMICOLON)
	if !p.atEnd() {
		return nil, false
	}
	return expr, true
}

// parseDeclarationSync runs parse and, if it panics with a parseError,
// synchronizes to the next statement boundary and returns nil. If neither
// the failed parse nor synchronize consumed a token, one token is skipped
// so that the caller's loop always makes progress.
func (p *Parser) parseDeclarationSync(parse func() ast.Statement) (stmt ast.Statement) {
	start := p.current
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(parseError); isParseErr {
				p.synchronize()
				if p.current == start {
					p.advance()
				}
				stmt = nil
				return
			}
			panic(r)
		}
	}()
	return parse()
}

// --- token stream primitives ---

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) peekAt(n int) token.Token {
	idx := p.current + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[idx]
}

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *Parser) atEnd() bool { return p.peek().Type == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t token.Type) bool {
	if p.atEnd() {
		return t == token.EOF
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(t token.Type, message string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.fail(p.peek(), message))
}

// isTypeStart reports whether tok can begin a type reference: a primitive
// type keyword, String/ArrayList, or an identifier already registered as a
// class name by an earlier `class` declaration (preregistration is
// single-pass: a class declared later in the file does not retroactively
// change how an earlier identifier was parsed).
func (p *Parser) isTypeStart(tok token.Token) bool {
	switch tok.Type {
	case token.TYPE_VOID, token.TYPE_BOOLEAN, token.TYPE_BYTE, token.TYPE_CHAR,
		token.TYPE_INT, token.TYPE_LONG, token.TYPE_FLOAT, token.TYPE_DOUBLE,
		token.TYPE_STRING, token.TYPE_ARRAYLIST:
		return true
	case token.IDENTIFIER:
		return p.classNames[tok.Lexeme]
	default:
		return false
	}
}

// anchors is the fixed set of tokens synchronize() may resume at, pinned
// from the grammar's recovery points: modifiers, type keywords, and the
// statement-introducing keywords.
var anchors = map[token.Type]bool{
	token.CLASS:          true,
	token.STATIC:         true,
	token.PUBLIC:         true,
	token.PRIVATE:        true,
	token.PROTECTED:      true,
	token.FINAL:          true,
	token.TYPE_VOID:      true,
	token.TYPE_BOOLEAN:   true,
	token.TYPE_BYTE:      true,
	token.TYPE_CHAR:      true,
	token.TYPE_INT:       true,
	token.TYPE_LONG:      true,
	token.TYPE_FLOAT:     true,
	token.TYPE_DOUBLE:    true,
	token.TYPE_STRING:    true,
	token.TYPE_ARRAYLIST: true,
	token.FOR:            true,
	token.IF:             true,
	token.WHILE:          true,
	token.RETURN:         true,
	token.BREAK:          true,
	token.CONTINUE:       true,
}

// synchronize discards tokens until a statement boundary: past a semicolon
// or at one of the fixed anchor tokens.
func (p *Parser) synchronize() {
	for !p.atEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		if anchors[p.peek().Type] {
			return
		}
		p.advance()
	}
}
