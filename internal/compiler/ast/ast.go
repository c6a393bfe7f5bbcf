package ast

import "github.com/btouchard/wpl/internal/compiler/token"

// Node is the base interface for all AST nodes
type Node interface {
	TokenLiteral() string
	Position() token.Position
}

// Statement is anything that can appear in a block or at top level
type Statement interface {
	Node
	statementNode()
}

// Expression is any value-producing node
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node of a translation unit: a sequence of function
// and variable declarations.
type Program struct {
	Decls []Statement
}

func (p *Program) TokenLiteral() string { return "program" }
func (p *Program) Position() token.Position {
	if len(p.Decls) == 0 {
		return token.Position{Line: 1, Column: 1}
	}
	return p.Decls[0].Position()
}

// ============ DECLARATIONS ============

// FuncDecl: func int add(int a, int b) { ... }
type FuncDecl struct {
	ReturnType string // target spelling, e.g. "char*"
	Name       string
	Params     []*Param
	Body       *BlockStmt
	Pos        token.Position
}

func (f *FuncDecl) TokenLiteral() string     { return "func" }
func (f *FuncDecl) Position() token.Position { return f.Pos }
func (f *FuncDecl) statementNode()           {}

// Param is a typed function parameter
type Param struct {
	Type string
	Name string
	Pos  token.Position
}

// VarDecl: int x = 1, y;
type VarDecl struct {
	Type string
	Vars []*VarSpec
	Pos  token.Position
}

func (v *VarDecl) TokenLiteral() string     { return v.Type }
func (v *VarDecl) Position() token.Position { return v.Pos }
func (v *VarDecl) statementNode()           {}

// VarSpec is one declared name with an optional initializer
type VarSpec struct {
	Name  string
	Value Expression // nil when there is no initializer
	Pos   token.Position
}

// ============ STATEMENTS ============

type BlockStmt struct {
	Statements []Statement
	Pos        token.Position
}

func (b *BlockStmt) TokenLiteral() string     { return "{" }
func (b *BlockStmt) Position() token.Position { return b.Pos }
func (b *BlockStmt) statementNode()           {}

// IfStmt: Alternative is nil, a *BlockStmt, or an *IfStmt for else-if chains
type IfStmt struct {
	Condition   Expression
	Consequence *BlockStmt
	Alternative Statement
	Pos         token.Position
}

func (i *IfStmt) TokenLiteral() string     { return "if" }
func (i *IfStmt) Position() token.Position { return i.Pos }
func (i *IfStmt) statementNode()           {}

type WhileStmt struct {
	Condition Expression
	Body      *BlockStmt
	Pos       token.Position
}

func (w *WhileStmt) TokenLiteral() string     { return "while" }
func (w *WhileStmt) Position() token.Position { return w.Pos }
func (w *WhileStmt) statementNode()           {}

// ForStmt: every clause is optional. Init is an *ExprStmt or a *VarDecl.
type ForStmt struct {
	Init      Statement
	Condition Expression
	Post      Expression
	Body      *BlockStmt
	Pos       token.Position
}

func (f *ForStmt) TokenLiteral() string     { return "for" }
func (f *ForStmt) Position() token.Position { return f.Pos }
func (f *ForStmt) statementNode()           {}

type ReturnStmt struct {
	Value Expression // nil for a bare return
	Pos   token.Position
}

func (r *ReturnStmt) TokenLiteral() string     { return "return" }
func (r *ReturnStmt) Position() token.Position { return r.Pos }
func (r *ReturnStmt) statementNode()           {}

type BreakStmt struct {
	Pos token.Position
}

func (b *BreakStmt) TokenLiteral() string     { return "break" }
func (b *BreakStmt) Position() token.Position { return b.Pos }
func (b *BreakStmt) statementNode()           {}

type ContinueStmt struct {
	Pos token.Position
}

func (c *ContinueStmt) TokenLiteral() string     { return "continue" }
func (c *ContinueStmt) Position() token.Position { return c.Pos }
func (c *ContinueStmt) statementNode()           {}

// ExprStmt: expression used as statement (e.g. function calls)
type ExprStmt struct {
	Expr Expression
	Pos  token.Position
}

func (e *ExprStmt) TokenLiteral() string     { return e.Expr.TokenLiteral() }
func (e *ExprStmt) Position() token.Position { return e.Pos }
func (e *ExprStmt) statementNode()           {}

// ============ EXPRESSIONS ============

type Ident struct {
	Name string
	Pos  token.Position
}

func (i *Ident) TokenLiteral() string     { return i.Name }
func (i *Ident) Position() token.Position { return i.Pos }
func (i *Ident) expressionNode()          {}

type IntLit struct {
	Value int64
	Pos   token.Position
}

func (i *IntLit) TokenLiteral() string     { return "int" }
func (i *IntLit) Position() token.Position { return i.Pos }
func (i *IntLit) expressionNode()          {}

type FloatLit struct {
	Value float64
	Pos   token.Position
}

func (f *FloatLit) TokenLiteral() string     { return "float" }
func (f *FloatLit) Position() token.Position { return f.Pos }
func (f *FloatLit) expressionNode()          {}

type CharLit struct {
	Value rune
	Pos   token.Position
}

func (c *CharLit) TokenLiteral() string     { return "char" }
func (c *CharLit) Position() token.Position { return c.Pos }
func (c *CharLit) expressionNode()          {}

// StringLit keeps the quoted source text, escapes included
type StringLit struct {
	Value string
	Pos   token.Position
}

func (s *StringLit) TokenLiteral() string     { return s.Value }
func (s *StringLit) Position() token.Position { return s.Pos }
func (s *StringLit) expressionNode()          {}

type BoolLit struct {
	Value bool
	Pos   token.Position
}

func (b *BoolLit) TokenLiteral() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *BoolLit) Position() token.Position { return b.Pos }
func (b *BoolLit) expressionNode()          {}

// ParenExpr keeps explicit grouping from the source
type ParenExpr struct {
	Inner Expression
	Pos   token.Position
}

func (p *ParenExpr) TokenLiteral() string     { return "(" }
func (p *ParenExpr) Position() token.Position { return p.Pos }
func (p *ParenExpr) expressionNode()          {}

// UnaryExpr: prefix ++ -- + - !
type UnaryExpr struct {
	Op      string
	Operand Expression
	Pos     token.Position
}

func (u *UnaryExpr) TokenLiteral() string     { return u.Op }
func (u *UnaryExpr) Position() token.Position { return u.Pos }
func (u *UnaryExpr) expressionNode()          {}

// PostfixExpr: x++ x--
type PostfixExpr struct {
	Operand Expression
	Op      string
	Pos     token.Position
}

func (p *PostfixExpr) TokenLiteral() string     { return p.Op }
func (p *PostfixExpr) Position() token.Position { return p.Pos }
func (p *PostfixExpr) expressionNode()          {}

type BinaryExpr struct {
	Left  Expression
	Op    string
	Right Expression
	Pos   token.Position
}

func (b *BinaryExpr) TokenLiteral() string     { return b.Op }
func (b *BinaryExpr) Position() token.Position { return b.Pos }
func (b *BinaryExpr) expressionNode()          {}

// AssignExpr: = and the compound assignments; right-associative
type AssignExpr struct {
	Target Expression
	Op     string
	Value  Expression
	Pos    token.Position
}

func (a *AssignExpr) TokenLiteral() string     { return a.Op }
func (a *AssignExpr) Position() token.Position { return a.Pos }
func (a *AssignExpr) expressionNode()          {}

type CallExpr struct {
	Function Expression
	Args     []Expression
	Pos      token.Position
}

func (c *CallExpr) TokenLiteral() string     { return "call" }
func (c *CallExpr) Position() token.Position { return c.Pos }
func (c *CallExpr) expressionNode()          {}

type IndexExpr struct {
	Left  Expression
	Index Expression
	Pos   token.Position
}

func (i *IndexExpr) TokenLiteral() string     { return "[" }
func (i *IndexExpr) Position() token.Position { return i.Pos }
func (i *IndexExpr) expressionNode()          {}

// MemberExpr: obj.field or ptr->field
type MemberExpr struct {
	Object   Expression
	Op       string // "." or "->"
	Property string
	Pos      token.Position
}

func (m *MemberExpr) TokenLiteral() string     { return m.Op }
func (m *MemberExpr) Position() token.Position { return m.Pos }
func (m *MemberExpr) expressionNode()          {}
