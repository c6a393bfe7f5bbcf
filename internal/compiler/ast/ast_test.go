package ast

import (
	"testing"

	"github.com/btouchard/wpl/internal/compiler/token"
)

func TestTokenLiterals(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{"Program", &Program{}, "program"},
		{"FuncDecl", &FuncDecl{Name: "main"}, "func"},
		{"VarDecl", &VarDecl{Type: "char*"}, "char*"},
		{"BlockStmt", &BlockStmt{}, "{"},
		{"IfStmt", &IfStmt{}, "if"},
		{"WhileStmt", &WhileStmt{}, "while"},
		{"ForStmt", &ForStmt{}, "for"},
		{"ReturnStmt", &ReturnStmt{}, "return"},
		{"BreakStmt", &BreakStmt{}, "break"},
		{"ContinueStmt", &ContinueStmt{}, "continue"},
		{"ExprStmt", &ExprStmt{Expr: &Ident{Name: "x"}}, "x"},
		{"Ident", &Ident{Name: "count"}, "count"},
		{"IntLit", &IntLit{Value: 42}, "int"},
		{"FloatLit", &FloatLit{Value: 3.14}, "float"},
		{"CharLit", &CharLit{Value: 'a'}, "char"},
		{"StringLit", &StringLit{Value: `"hi"`}, `"hi"`},
		{"BoolLit true", &BoolLit{Value: true}, "true"},
		{"BoolLit false", &BoolLit{Value: false}, "false"},
		{"ParenExpr", &ParenExpr{}, "("},
		{"UnaryExpr", &UnaryExpr{Op: "!"}, "!"},
		{"PostfixExpr", &PostfixExpr{Op: "++"}, "++"},
		{"BinaryExpr", &BinaryExpr{Op: "+"}, "+"},
		{"AssignExpr", &AssignExpr{Op: "+="}, "+="},
		{"CallExpr", &CallExpr{}, "call"},
		{"IndexExpr", &IndexExpr{}, "["},
		{"MemberExpr", &MemberExpr{Op: "->"}, "->"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.node.TokenLiteral()
			if result != tt.expected {
				t.Errorf("TokenLiteral() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestProgramPosition(t *testing.T) {
	empty := &Program{}
	if pos := empty.Position(); pos.Line != 1 || pos.Column != 1 {
		t.Errorf("empty program position = %s, want 1:1", pos)
	}

	p := &Program{Decls: []Statement{
		&VarDecl{Type: "int", Pos: token.Position{Line: 3, Column: 2}},
	}}
	if pos := p.Position(); pos.Line != 3 || pos.Column != 2 {
		t.Errorf("program position = %s, want 3:2", pos)
	}
}
