package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/btouchard/wpl/internal/compiler/errors"
	"github.com/btouchard/wpl/internal/compiler/token"
)

// Lexer turns a source buffer into tokens on demand. Whitespace and comments
// are consumed internally and never returned. After the first lexical error
// every call returns that same error.
type Lexer struct {
	input    string
	position int // current offset in input (bytes)
	line     int // current line (1-based)
	column   int // current column (1-based)

	peeked *token.Token
	err    *errors.CompileError
}

func New(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		column: 1,
	}
}

// Tokenize lexes the whole input, excluding the trailing EOF token.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var toks []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return toks, err
		}
		if tok.Type == token.EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// Err returns the lexical error that stopped the lexer, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

// Peek returns the next meaningful token without consuming it. Repeated
// calls return the same token until NextToken is called.
func (l *Lexer) Peek() (token.Token, error) {
	if l.err != nil {
		return l.illegal(), l.err
	}
	if l.peeked == nil {
		tok, err := l.scan()
		if err != nil {
			return tok, err
		}
		l.peeked = &tok
	}
	return *l.peeked, nil
}

// NextToken consumes and returns the next meaningful token. At the end of
// input it returns an EOF token, repeatedly.
func (l *Lexer) NextToken() (token.Token, error) {
	if l.err != nil {
		return l.illegal(), l.err
	}
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}
	return l.scan()
}

func (l *Lexer) illegal() token.Token {
	return token.Token{Type: token.ILLEGAL, Pos: l.currentPos()}
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}

// scan returns the next token that is neither whitespace nor a comment.
func (l *Lexer) scan() (token.Token, error) {
	for {
		tok, err := l.scanRaw()
		if err != nil {
			l.err = err
			return l.illegal(), err
		}
		if tok.Type != token.WHITESPACE && tok.Type != token.COMMENT {
			return tok, nil
		}
	}
}

func (l *Lexer) scanRaw() (token.Token, *errors.CompileError) {
	pos := l.currentPos()
	rest := l.input[l.position:]

	if rest == "" {
		return token.Token{Type: token.EOF, Pos: pos}, nil
	}

	if n := whitespaceLen(rest); n > 0 {
		return l.emit(token.WHITESPACE, n, pos), nil
	}

	if strings.HasPrefix(rest, "//") {
		n := strings.IndexAny(rest, "\r\n")
		if n < 0 {
			n = len(rest)
		}
		return l.emit(token.COMMENT, n, pos), nil
	}

	if strings.HasPrefix(rest, "/*") {
		end := strings.Index(rest[2:], "*/")
		if end < 0 {
			return token.Token{}, errors.Lexical(pos, "unterminated block comment")
		}
		return l.emit(token.COMMENT, end+4, pos), nil
	}

	opType, opLen := matchOperator(rest)
	litType, litLen := matchLiteral(rest)

	// The longer match wins; an operator wins a tie.
	if litLen > opLen {
		return l.literal(litType, litLen, pos)
	}
	if opLen > 0 {
		return l.emit(opType, opLen, pos), nil
	}

	r, _ := utf8.DecodeRuneInString(rest)
	return token.Token{}, errors.Lexical(pos, "unrecognized input %q", string(r))
}

// emit consumes n bytes and returns them as a token of type typ.
func (l *Lexer) emit(typ token.TokenType, n int, pos token.Position) token.Token {
	lit := l.input[l.position : l.position+n]
	l.advance(n)
	return token.Token{Type: typ, Literal: lit, Pos: pos}
}

func (l *Lexer) literal(typ token.TokenType, n int, pos token.Position) (token.Token, *errors.CompileError) {
	tok := l.emit(typ, n, pos)

	switch typ {
	case token.IDENT:
		tok.Type = token.LookupIdent(tok.Literal)
	case token.INT:
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return token.Token{}, errors.Lexical(pos, "integer literal %s out of range", tok.Literal)
		}
		tok.IntVal = v
	case token.FLOAT:
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return token.Token{}, errors.Lexical(pos, "invalid float literal %s", tok.Literal)
		}
		tok.FloatVal = v
	case token.CHAR:
		tok.CharVal = decodeChar(tok.Literal[1 : len(tok.Literal)-1])
	}

	return tok, nil
}

// advance moves past n bytes, keeping line and column in step.
func (l *Lexer) advance(n int) {
	for _, ch := range l.input[l.position : l.position+n] {
		if ch == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
	l.position += n
}

func matchOperator(s string) (token.TokenType, int) {
	for _, op := range token.Operators {
		if strings.HasPrefix(s, string(op)) {
			return op, len(op)
		}
	}
	return token.ILLEGAL, 0
}

func matchLiteral(s string) (token.TokenType, int) {
	switch {
	case isLetter(s[0]):
		return token.IDENT, identLen(s)
	case s[0] == '\'':
		return token.CHAR, charLen(s)
	case s[0] == '"':
		return token.STRING, stringLen(s)
	}
	return numberLen(s)
}

func whitespaceLen(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t' || s[n] == '\r' || s[n] == '\n') {
		n++
	}
	return n
}

func identLen(s string) int {
	n := 1
	for n < len(s) && (isLetter(s[n]) || isDigit(s[n])) {
		n++
	}
	return n
}

// numberLen matches [+-]?[0-9]+ and [+-]?[0-9]+\.[0-9]*.
func numberLen(s string) (token.TokenType, int) {
	n := 0
	if s[0] == '+' || s[0] == '-' {
		n++
	}
	start := n
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	if n == start {
		return token.ILLEGAL, 0
	}
	if n < len(s) && s[n] == '.' {
		n++
		for n < len(s) && isDigit(s[n]) {
			n++
		}
		return token.FLOAT, n
	}
	return token.INT, n
}

// charLen matches a single-quoted character or escape, or returns 0.
func charLen(s string) int {
	n := 1
	if n >= len(s) {
		return 0
	}
	switch s[n] {
	case '\'':
		return 0
	case '\\':
		if n+1 >= len(s) || !isEscape(s[n+1]) {
			return 0
		}
		n += 2
	default:
		_, size := utf8.DecodeRuneInString(s[n:])
		n += size
	}
	if n >= len(s) || s[n] != '\'' {
		return 0
	}
	return n + 1
}

// stringLen matches a double-quoted string, or returns 0 if it is not
// terminated or contains an unknown escape.
func stringLen(s string) int {
	n := 1
	for n < len(s) {
		switch s[n] {
		case '"':
			return n + 1
		case '\\':
			if n+1 >= len(s) || !isEscape(s[n+1]) {
				return 0
			}
			n += 2
		default:
			n++
		}
	}
	return 0
}

func decodeChar(body string) rune {
	if body[0] != '\\' {
		r, _ := utf8.DecodeRuneInString(body)
		return r
	}
	switch body[1] {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case '0':
		return 0
	default:
		return rune(body[1])
	}
}

func isEscape(ch byte) bool {
	return strings.IndexByte(`nrt0'\"`, ch) >= 0
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
