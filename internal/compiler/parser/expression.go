package parser

import (
	"github.com/btouchard/wpl/internal/compiler/ast"
	"github.com/btouchard/wpl/internal/compiler/token"
)

// Precedence, lowest first:
//
//	= += -= *= /= %= <<= >>= &= |= ^=   (right-associative)
//	||
//	&&
//	|
//	^
//	&
//	== !=
//	< <= > >=
//	<< >>
//	+ -
//	* / %
//	prefix ++ -- + - !
//	postfix () [] ++ -- . ->
var assignOps = []token.TokenType{
	token.ASSIGN,
	token.PLUS_ASSIGN, token.MINUS_ASSIGN,
	token.ASTERISK_ASSIGN, token.SLASH_ASSIGN, token.PERCENT_ASSIGN,
	token.SHL_ASSIGN, token.SHR_ASSIGN,
	token.AMP_ASSIGN, token.PIPE_ASSIGN, token.CARET_ASSIGN,
}

// ParseExpression parses one expression at assignment level.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() (ast.Expression, error) {
	left, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	op, ok, err := p.accept(assignOps...)
	if err != nil || !ok {
		return left, err
	}
	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return &ast.AssignExpr{Target: left, Op: op.Literal, Value: value, Pos: op.Pos}, nil
}

// binary parses a left-associative chain of operand (op operand)*.
func (p *Parser) binary(operand func() (ast.Expression, error), ops ...token.TokenType) (ast.Expression, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op, ok, err := p.accept(ops...)
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: op.Literal, Right: right, Pos: op.Pos}
	}
}

func (p *Parser) parseLogicalOr() (ast.Expression, error) {
	return p.binary(p.parseLogicalAnd, token.OR)
}

func (p *Parser) parseLogicalAnd() (ast.Expression, error) {
	return p.binary(p.parseBitOr, token.AND)
}

func (p *Parser) parseBitOr() (ast.Expression, error) {
	return p.binary(p.parseBitXor, token.PIPE)
}

func (p *Parser) parseBitXor() (ast.Expression, error) {
	return p.binary(p.parseBitAnd, token.CARET)
}

func (p *Parser) parseBitAnd() (ast.Expression, error) {
	return p.binary(p.parseEquality, token.AMP)
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	return p.binary(p.parseRelational, token.EQ, token.NOT_EQ)
}

func (p *Parser) parseRelational() (ast.Expression, error) {
	return p.binary(p.parseShift, token.LT, token.LT_EQ, token.GT, token.GT_EQ)
}

func (p *Parser) parseShift() (ast.Expression, error) {
	return p.binary(p.parseAdditive, token.SHL, token.SHR)
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.binary(p.parseMultiplicative, token.PLUS, token.MINUS)
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	return p.binary(p.parseUnary, token.ASTERISK, token.SLASH, token.PERCENT)
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	op, ok, err := p.accept(token.INC, token.DEC, token.PLUS, token.MINUS, token.BANG)
	if err != nil {
		return nil, err
	}
	if !ok {
		return p.parsePostfix()
	}
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{Op: op.Literal, Operand: operand, Pos: op.Pos}, nil
}

func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		switch tok.Type {
		case token.LPAREN:
			if _, err := p.next(); err != nil {
				return nil, err
			}
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{Function: expr, Args: args, Pos: tok.Pos}

		case token.LBRACKET:
			if _, err := p.next(); err != nil {
				return nil, err
			}
			index, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET, "']' after index"); err != nil {
				return nil, err
			}
			expr = &ast.IndexExpr{Left: expr, Index: index, Pos: tok.Pos}

		case token.INC, token.DEC:
			if _, err := p.next(); err != nil {
				return nil, err
			}
			expr = &ast.PostfixExpr{Operand: expr, Op: tok.Literal, Pos: tok.Pos}

		case token.DOT, token.ARROW:
			if _, err := p.next(); err != nil {
				return nil, err
			}
			prop, err := p.expect(token.IDENT, "member name after '"+tok.Literal+"'")
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpr{Object: expr, Op: tok.Literal, Property: prop.Literal, Pos: tok.Pos}

		default:
			return expr, nil
		}
	}
}

// parseArgs parses call arguments after the opening parenthesis.
func (p *Parser) parseArgs() ([]ast.Expression, error) {
	args := []ast.Expression{}
	if _, ok, err := p.accept(token.RPAREN); err != nil || ok {
		return args, err
	}
	for {
		arg, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if _, ok, err := p.accept(token.COMMA); err != nil {
			return nil, err
		} else if ok {
			continue
		}
		if _, err := p.expect(token.RPAREN, "',' or ')' in argument list"); err != nil {
			return nil, err
		}
		return args, nil
	}
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case token.INT:
		_, err = p.next()
		return &ast.IntLit{Value: tok.IntVal, Pos: tok.Pos}, err
	case token.FLOAT:
		_, err = p.next()
		return &ast.FloatLit{Value: tok.FloatVal, Pos: tok.Pos}, err
	case token.CHAR:
		_, err = p.next()
		return &ast.CharLit{Value: tok.CharVal, Pos: tok.Pos}, err
	case token.STRING:
		_, err = p.next()
		return &ast.StringLit{Value: tok.Literal, Pos: tok.Pos}, err
	case token.TRUE, token.FALSE:
		_, err = p.next()
		return &ast.BoolLit{Value: tok.Is(token.TRUE), Pos: tok.Pos}, err
	case token.IDENT:
		if p.strict {
			if _, ok := p.scopes.Lookup(tok.Literal); !ok {
				return nil, p.errorf(tok, "undeclared identifier %q", tok.Literal)
			}
		}
		_, err = p.next()
		return &ast.Ident{Name: tok.Literal, Pos: tok.Pos}, err
	case token.LPAREN:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		inner, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Inner: inner, Pos: tok.Pos}, nil
	case token.EOF:
		return nil, p.errorf(tok, "unexpected end of input, expected expression")
	}

	return nil, p.errorf(tok, "unexpected %s, expected expression", describe(tok))
}
