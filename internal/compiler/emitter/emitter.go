// Package emitter renders a parsed WPL tree as C-like source text.
package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btouchard/wpl/internal/compiler/ast"
)

// Program renders every top-level declaration, one after another.
func Program(prog *ast.Program) string {
	parts := make([]string, 0, len(prog.Decls))
	for _, decl := range prog.Decls {
		parts = append(parts, Statement(decl))
	}
	return strings.Join(parts, "\n")
}

// Statement renders a declaration or statement.
func Statement(stmt ast.Statement) string {
	switch s := stmt.(type) {
	case *ast.FuncDecl:
		return funcDecl(s)
	case *ast.VarDecl:
		return varSpecs(s) + ";"
	case *ast.BlockStmt:
		return block(s)
	case *ast.IfStmt:
		return ifStmt(s)
	case *ast.WhileStmt:
		return fmt.Sprintf("while (%s) %s", Expression(s.Condition), block(s.Body))
	case *ast.ForStmt:
		return forStmt(s)
	case *ast.ReturnStmt:
		if s.Value == nil {
			return "return;"
		}
		return "return " + Expression(s.Value) + ";"
	case *ast.BreakStmt:
		return "break;"
	case *ast.ContinueStmt:
		return "continue;"
	case *ast.ExprStmt:
		return Expression(s.Expr) + ";"
	}
	return fmt.Sprintf("<%T>", stmt)
}

// Expression renders an expression. Binary operators are spaced, unary and
// postfix operators are not.
func Expression(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.IntLit:
		return strconv.FormatInt(e.Value, 10)
	case *ast.FloatLit:
		return strconv.FormatFloat(e.Value, 'f', -1, 64)
	case *ast.CharLit:
		return string(e.Value)
	case *ast.StringLit:
		return e.Value
	case *ast.BoolLit:
		return strconv.FormatBool(e.Value)
	case *ast.ParenExpr:
		return "(" + Expression(e.Inner) + ")"
	case *ast.UnaryExpr:
		return e.Op + Expression(e.Operand)
	case *ast.PostfixExpr:
		return Expression(e.Operand) + e.Op
	case *ast.BinaryExpr:
		return Expression(e.Left) + " " + e.Op + " " + Expression(e.Right)
	case *ast.AssignExpr:
		return Expression(e.Target) + " " + e.Op + " " + Expression(e.Value)
	case *ast.CallExpr:
		return Expression(e.Function) + "(" + list(e.Args) + ")"
	case *ast.IndexExpr:
		return Expression(e.Left) + "[" + Expression(e.Index) + "]"
	case *ast.MemberExpr:
		return Expression(e.Object) + e.Op + e.Property
	}
	return fmt.Sprintf("<%T>", expr)
}

func list(exprs []ast.Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = Expression(e)
	}
	return strings.Join(parts, ", ")
}

func funcDecl(fn *ast.FuncDecl) string {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = p.Type + " " + p.Name
	}
	return fmt.Sprintf("%s %s (%s)\n%s", fn.ReturnType, fn.Name, strings.Join(params, ", "), block(fn.Body))
}

// varSpecs renders a declaration without its terminating semicolon.
func varSpecs(decl *ast.VarDecl) string {
	specs := make([]string, len(decl.Vars))
	for i, v := range decl.Vars {
		specs[i] = v.Name
		if v.Value != nil {
			specs[i] += " = " + Expression(v.Value)
		}
	}
	return decl.Type + " " + strings.Join(specs, ", ")
}

func block(b *ast.BlockStmt) string {
	if len(b.Statements) == 0 {
		return "{ }"
	}
	stmts := make([]string, len(b.Statements))
	for i, s := range b.Statements {
		stmts[i] = Statement(s)
	}
	return "{ " + strings.Join(stmts, "\n") + " }"
}

func ifStmt(s *ast.IfStmt) string {
	out := fmt.Sprintf("if (%s) %s", Expression(s.Condition), block(s.Consequence))
	if s.Alternative != nil {
		out += " else " + Statement(s.Alternative)
	}
	return out
}

func forStmt(s *ast.ForStmt) string {
	var b strings.Builder
	b.WriteString("for (")
	switch init := s.Init.(type) {
	case *ast.VarDecl:
		b.WriteString(varSpecs(init))
	case *ast.ExprStmt:
		b.WriteString(Expression(init.Expr))
	}
	b.WriteString(";")
	if s.Condition != nil {
		b.WriteString(" " + Expression(s.Condition))
	}
	b.WriteString(";")
	if s.Post != nil {
		b.WriteString(" " + Expression(s.Post))
	}
	b.WriteString(") ")
	b.WriteString(block(s.Body))
	return b.String()
}
