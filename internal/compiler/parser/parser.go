package parser

import (
	"fmt"

	"github.com/btouchard/wpl/internal/compiler/ast"
	"github.com/btouchard/wpl/internal/compiler/errors"
	"github.com/btouchard/wpl/internal/compiler/lexer"
	"github.com/btouchard/wpl/internal/compiler/scope"
	"github.com/btouchard/wpl/internal/compiler/token"
)

// Parser is a recursive descent parser over a lexer with one token of
// lookahead. It owns the scope table: every block, function and for
// header opens a scope that is closed again on every exit path.
type Parser struct {
	l      *lexer.Lexer
	scopes *scope.Table
	strict bool
}

type Option func(*Parser)

// WithStrictIdentifiers makes a reference to an undeclared identifier a
// syntax error instead of passing it through.
func WithStrictIdentifiers() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{
		l:      l,
		scopes: scope.NewTable(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Scopes exposes the parser's scope table.
func (p *Parser) Scopes() *scope.Table {
	return p.scopes
}

// Lookup returns the declared type of name as seen from the current scope.
func (p *Parser) Lookup(name string) (string, bool) {
	return p.scopes.Lookup(name)
}

// End reports an error unless all input has been consumed.
func (p *Parser) End() error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if !tok.Is(token.EOF) {
		return p.errorf(tok, "unexpected %s after end of input fragment", describe(tok))
	}
	return nil
}

// ============ TOKEN HELPERS ============

func (p *Parser) peek() (token.Token, error) {
	return p.l.Peek()
}

func (p *Parser) next() (token.Token, error) {
	return p.l.NextToken()
}

func (p *Parser) peekIs(types ...token.TokenType) (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	return tok.IsAny(types...), nil
}

// accept consumes the next token if it has one of the given types.
func (p *Parser) accept(types ...token.TokenType) (token.Token, bool, error) {
	tok, err := p.peek()
	if err != nil {
		return tok, false, err
	}
	if !tok.IsAny(types...) {
		return tok, false, nil
	}
	tok, err = p.next()
	return tok, err == nil, err
}

// expect consumes a token of type t or fails with "expected <what>".
func (p *Parser) expect(t token.TokenType, what string) (token.Token, error) {
	tok, err := p.peek()
	if err != nil {
		return tok, err
	}
	if !tok.Is(t) {
		return tok, p.errorf(tok, "expected %s, got %s", what, describe(tok))
	}
	return p.next()
}

func (p *Parser) errorf(tok token.Token, format string, args ...any) error {
	return errors.Syntax(tok.Pos, format, args...)
}

func describe(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.IDENT:
		return fmt.Sprintf("identifier %q", tok.Literal)
	default:
		return fmt.Sprintf("%q", tok.Literal)
	}
}

// typeName consumes a type keyword and returns its target spelling.
func (p *Parser) typeName() (string, token.Token, error) {
	tok, err := p.peek()
	if err != nil {
		return "", tok, err
	}
	typ, ok := token.CType(tok.Type)
	if !ok {
		return "", tok, p.errorf(tok, "expected type, got %s", describe(tok))
	}
	tok, err = p.next()
	return typ, tok, err
}

// ============ DECLARATIONS ============

// ParseProgram parses top-level declarations until end of input.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for {
		done, err := p.peekIs(token.EOF)
		if err != nil {
			return nil, err
		}
		if done {
			return prog, nil
		}
		decl, err := p.ParseDeclaration()
		if err != nil {
			return nil, err
		}
		prog.Decls = append(prog.Decls, decl)
	}
}

// ParseDeclaration parses one function or variable declaration.
func (p *Parser) ParseDeclaration() (ast.Statement, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.Is(token.FUNC):
		return p.ParseFunctionDeclaration()
	case token.IsType(tok.Type):
		return p.ParseVariableDeclaration()
	}
	return nil, p.errorf(tok, "expected declaration, got %s", describe(tok))
}

// ParseFunctionDeclaration parses
//
//	func <type> <name>(<type> <name>, ...) { ... }
//
// The function name is declared in the enclosing scope. Parameters live in
// a scope of their own that ends with the body.
func (p *Parser) ParseFunctionDeclaration() (*ast.FuncDecl, error) {
	funcTok, err := p.expect(token.FUNC, "'func'")
	if err != nil {
		return nil, err
	}
	retType, _, err := p.typeName()
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT, "function name")
	if err != nil {
		return nil, err
	}
	p.scopes.Declare(name.Literal, retType, scope.KindFunc, name.Pos)

	fn := &ast.FuncDecl{
		ReturnType: retType,
		Name:       name.Literal,
		Pos:        funcTok.Pos,
	}

	p.scopes.Push()
	defer p.scopes.Pop()

	if _, err := p.expect(token.LPAREN, "'(' after function name"); err != nil {
		return nil, err
	}
	if fn.Params, err = p.parseParams(); err != nil {
		return nil, err
	}
	if fn.Body, err = p.parseBlock(); err != nil {
		return nil, err
	}
	return fn, nil
}

func (p *Parser) parseParams() ([]*ast.Param, error) {
	params := []*ast.Param{}
	if _, ok, err := p.accept(token.RPAREN); err != nil || ok {
		return params, err
	}
	for {
		typ, typTok, err := p.typeName()
		if err != nil {
			return nil, err
		}
		name, err := p.expect(token.IDENT, "parameter name")
		if err != nil {
			return nil, err
		}
		p.scopes.Declare(name.Literal, typ, scope.KindParam, name.Pos)
		params = append(params, &ast.Param{Type: typ, Name: name.Literal, Pos: typTok.Pos})

		if _, ok, err := p.accept(token.COMMA); err != nil {
			return nil, err
		} else if ok {
			continue
		}
		if _, err := p.expect(token.RPAREN, "',' or ')' in parameter list"); err != nil {
			return nil, err
		}
		return params, nil
	}
}

// ParseVariableDeclaration parses
//
//	<type> <name> [= <expr>] {, <name> [= <expr>]} ;
//
// Each name is declared before its initializer is parsed.
func (p *Parser) ParseVariableDeclaration() (*ast.VarDecl, error) {
	typ, typTok, err := p.typeName()
	if err != nil {
		return nil, err
	}
	decl := &ast.VarDecl{Type: typ, Pos: typTok.Pos}

	for {
		name, err := p.expect(token.IDENT, "variable name")
		if err != nil {
			return nil, err
		}
		p.scopes.Declare(name.Literal, typ, scope.KindVar, name.Pos)
		spec := &ast.VarSpec{Name: name.Literal, Pos: name.Pos}

		if _, ok, err := p.accept(token.ASSIGN); err != nil {
			return nil, err
		} else if ok {
			if spec.Value, err = p.ParseExpression(); err != nil {
				return nil, err
			}
		}
		decl.Vars = append(decl.Vars, spec)

		if _, ok, err := p.accept(token.COMMA); err != nil {
			return nil, err
		} else if ok {
			continue
		}
		if _, err := p.expect(token.SEMICOLON, "',' or ';' in variable declaration"); err != nil {
			return nil, err
		}
		return decl, nil
	}
}

// ============ STATEMENTS ============

// ParseStatement parses one statement inside a function body.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON, "';' after 'break'"); err != nil {
			return nil, err
		}
		return &ast.BreakStmt{Pos: tok.Pos}, nil
	case token.CONTINUE:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON, "';' after 'continue'"); err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{Pos: tok.Pos}, nil
	case token.FUNC:
		return nil, p.errorf(tok, "function declarations are only allowed at top level")
	case token.EOF:
		return nil, p.errorf(tok, "expected statement, got end of input")
	}

	if token.IsType(tok.Type) {
		return p.ParseVariableDeclaration()
	}
	return p.parseExprStmt()
}

func (p *Parser) parseExprStmt() (*ast.ExprStmt, error) {
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, "';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr, Pos: expr.Position()}, nil
}

func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	lbrace, err := p.expect(token.LBRACE, "'{'")
	if err != nil {
		return nil, err
	}
	block := &ast.BlockStmt{Pos: lbrace.Pos}

	p.scopes.Push()
	defer p.scopes.Pop()

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case token.RBRACE:
			_, err := p.next()
			return block, err
		case token.EOF:
			return nil, p.errorf(tok, "expected '}' to close block opened at %s", lbrace.Pos)
		}
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
}

// condition parses "( expr )" after if and while.
func (p *Parser) condition(keyword string) (ast.Expression, error) {
	if _, err := p.expect(token.LPAREN, "'(' after '"+keyword+"'"); err != nil {
		return nil, err
	}
	cond, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "')' after condition"); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *Parser) parseIf() (*ast.IfStmt, error) {
	ifTok, err := p.next()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStmt{Pos: ifTok.Pos}

	if stmt.Condition, err = p.condition("if"); err != nil {
		return nil, err
	}
	if stmt.Consequence, err = p.parseBlock(); err != nil {
		return nil, err
	}

	if _, ok, err := p.accept(token.ELSE); err != nil || !ok {
		return stmt, err
	}
	elseIf, err := p.peekIs(token.IF)
	if err != nil {
		return nil, err
	}
	if elseIf {
		stmt.Alternative, err = p.parseIf()
	} else {
		stmt.Alternative, err = p.parseBlock()
	}
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (*ast.WhileStmt, error) {
	whileTok, err := p.next()
	if err != nil {
		return nil, err
	}
	stmt := &ast.WhileStmt{Pos: whileTok.Pos}

	if stmt.Condition, err = p.condition("while"); err != nil {
		return nil, err
	}
	if stmt.Body, err = p.parseBlock(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseFor parses for (init; cond; post) { ... }. Any clause may be empty.
// A declaration in the init clause is scoped to the loop.
func (p *Parser) parseFor() (*ast.ForStmt, error) {
	forTok, err := p.next()
	if err != nil {
		return nil, err
	}
	stmt := &ast.ForStmt{Pos: forTok.Pos}

	if _, err := p.expect(token.LPAREN, "'(' after 'for'"); err != nil {
		return nil, err
	}

	p.scopes.Push()
	defer p.scopes.Pop()

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.Is(token.SEMICOLON):
		if _, err := p.next(); err != nil {
			return nil, err
		}
	case token.IsType(tok.Type):
		if stmt.Init, err = p.ParseVariableDeclaration(); err != nil {
			return nil, err
		}
	default:
		if stmt.Init, err = p.parseExprStmt(); err != nil {
			return nil, err
		}
	}

	if empty, err := p.peekIs(token.SEMICOLON); err != nil {
		return nil, err
	} else if !empty {
		if stmt.Condition, err = p.ParseExpression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON, "';' after loop condition"); err != nil {
		return nil, err
	}

	if empty, err := p.peekIs(token.RPAREN); err != nil {
		return nil, err
	} else if !empty {
		if stmt.Post, err = p.ParseExpression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RPAREN, "')' after for clauses"); err != nil {
		return nil, err
	}

	if stmt.Body, err = p.parseBlock(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseReturn() (*ast.ReturnStmt, error) {
	retTok, err := p.next()
	if err != nil {
		return nil, err
	}
	stmt := &ast.ReturnStmt{Pos: retTok.Pos}

	if _, ok, err := p.accept(token.SEMICOLON); err != nil || ok {
		if err != nil {
			return nil, err
		}
		return stmt, nil
	}
	if stmt.Value, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, "';' after return value"); err != nil {
		return nil, err
	}
	return stmt, nil
}
