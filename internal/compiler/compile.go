// Package compiler translates WPL source into C-like text. Each entry point
// lexes, parses and emits in one pass and stops at the first error.
package compiler

import (
	"github.com/btouchard/wpl/internal/compiler/ast"
	"github.com/btouchard/wpl/internal/compiler/emitter"
	"github.com/btouchard/wpl/internal/compiler/lexer"
	"github.com/btouchard/wpl/internal/compiler/parser"
	"github.com/btouchard/wpl/internal/compiler/scope"
	"github.com/btouchard/wpl/internal/compiler/token"
)

type Option = parser.Option

// WithStrictIdentifiers rejects references to undeclared identifiers.
func WithStrictIdentifiers() Option {
	return parser.WithStrictIdentifiers()
}

// Unit is a translated program together with everything it declared.
type Unit struct {
	Program *ast.Program
	Code    string
	Symbols []scope.Declaration
}

// Compile translates a whole program.
func Compile(src string, opts ...Option) (*Unit, error) {
	p := parser.New(lexer.New(src), opts...)
	prog, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	return &Unit{
		Program: prog,
		Code:    emitter.Program(prog),
		Symbols: p.Scopes().Declarations(),
	}, nil
}

// TranslateProgram translates a sequence of top-level declarations.
func TranslateProgram(src string, opts ...Option) (string, error) {
	unit, err := Compile(src, opts...)
	if err != nil {
		return "", err
	}
	return unit.Code, nil
}

// TranslateExpression translates a single expression. The whole input must
// be consumed.
func TranslateExpression(src string, opts ...Option) (string, error) {
	p := parser.New(lexer.New(src), opts...)
	expr, err := p.ParseExpression()
	if err != nil {
		return "", err
	}
	if err := p.End(); err != nil {
		return "", err
	}
	return emitter.Expression(expr), nil
}

// TranslateStatement translates a single statement.
func TranslateStatement(src string, opts ...Option) (string, error) {
	p := parser.New(lexer.New(src), opts...)
	stmt, err := p.ParseStatement()
	if err != nil {
		return "", err
	}
	if err := p.End(); err != nil {
		return "", err
	}
	return emitter.Statement(stmt), nil
}

// TranslateDeclaration translates a single function or variable declaration.
func TranslateDeclaration(src string, opts ...Option) (string, error) {
	p := parser.New(lexer.New(src), opts...)
	decl, err := p.ParseDeclaration()
	if err != nil {
		return "", err
	}
	if err := p.End(); err != nil {
		return "", err
	}
	return emitter.Statement(decl), nil
}

// Tokenize returns every token in src, excluding the final EOF.
func Tokenize(src string) ([]token.Token, error) {
	return lexer.Tokenize(src)
}
