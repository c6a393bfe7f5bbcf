package token

import "fmt"

type TokenType string

type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a classified lexeme. Literal holds the source text as written;
// the typed payload fields are only meaningful for their literal kind.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position

	IntVal   int64
	FloatVal float64
	CharVal  rune
}

// Is reports whether the token has type typ. Payloads are ignored, so any
// identifier satisfies Is(IDENT).
func (t Token) Is(typ TokenType) bool {
	return t.Type == typ
}

// IsAny reports whether the token matches one of the given types.
func (t Token) IsAny(types ...TokenType) bool {
	for _, typ := range types {
		if t.Type == typ {
			return true
		}
	}
	return false
}

const (
	// Special
	ILLEGAL    TokenType = "ILLEGAL"
	EOF        TokenType = "EOF"
	COMMENT    TokenType = "COMMENT"
	WHITESPACE TokenType = "WHITESPACE"

	// Identifiers + literals
	IDENT  TokenType = "IDENT"
	INT    TokenType = "INT"
	FLOAT  TokenType = "FLOAT"
	CHAR   TokenType = "CHAR"
	STRING TokenType = "STRING"

	// Punctuators
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"
	QUESTION  TokenType = "?"
	COLON     TokenType = ":"
	SEMICOLON TokenType = ";"
	COMMA     TokenType = ","

	// Arithmetic
	ASTERISK        TokenType = "*"
	ASTERISK_ASSIGN TokenType = "*="
	SLASH           TokenType = "/"
	SLASH_ASSIGN    TokenType = "/="
	PERCENT         TokenType = "%"
	PERCENT_ASSIGN  TokenType = "%="
	PLUS            TokenType = "+"
	PLUS_ASSIGN     TokenType = "+="
	INC             TokenType = "++"
	MINUS           TokenType = "-"
	MINUS_ASSIGN    TokenType = "-="
	DEC             TokenType = "--"

	// Comparison
	LT    TokenType = "<"
	LT_EQ TokenType = "<="
	GT    TokenType = ">"
	GT_EQ TokenType = ">="

	// Equality
	ASSIGN TokenType = "="
	EQ     TokenType = "=="
	BANG   TokenType = "!"
	NOT_EQ TokenType = "!="

	// Bitwise / logical
	AMP          TokenType = "&"
	AMP_ASSIGN   TokenType = "&="
	AND          TokenType = "&&"
	PIPE         TokenType = "|"
	PIPE_ASSIGN  TokenType = "|="
	OR           TokenType = "||"
	CARET        TokenType = "^"
	CARET_ASSIGN TokenType = "^="
	SHL          TokenType = "<<"
	SHL_ASSIGN   TokenType = "<<="
	SHR          TokenType = ">>"
	SHR_ASSIGN   TokenType = ">>="

	// Member access
	DOT   TokenType = "."
	ARROW TokenType = "->"

	// Keywords
	FUNC     TokenType = "FUNC"
	IF       TokenType = "IF"
	ELSE     TokenType = "ELSE"
	FOR      TokenType = "FOR"
	WHILE    TokenType = "WHILE"
	BREAK    TokenType = "BREAK"
	CONTINUE TokenType = "CONTINUE"
	RETURN   TokenType = "RETURN"
	INT_T    TokenType = "INT_T"
	FLOAT_T  TokenType = "FLOAT_T"
	BOOL_T   TokenType = "BOOL_T"
	CHAR_T   TokenType = "CHAR_T"
	STRING_T TokenType = "STRING_T"
	VOID_T   TokenType = "VOID_T"
	TRUE     TokenType = "TRUE"
	FALSE    TokenType = "FALSE"
)

var keywords = map[string]TokenType{
	"func":     FUNC,
	"if":       IF,
	"else":     ELSE,
	"for":      FOR,
	"while":    WHILE,
	"break":    BREAK,
	"continue": CONTINUE,
	"return":   RETURN,
	"int":      INT_T,
	"float":    FLOAT_T,
	"bool":     BOOL_T,
	"char":     CHAR_T,
	"string":   STRING_T,
	"void":     VOID_T,
	"true":     TRUE,
	"false":    FALSE,
}

// Operators lists every fixed operator and punctuator spelling, longest
// first, so a prefix scan yields the maximal munch.
var Operators = []TokenType{
	SHL_ASSIGN, SHR_ASSIGN,

	ASTERISK_ASSIGN, SLASH_ASSIGN, PERCENT_ASSIGN, PLUS_ASSIGN, INC,
	MINUS_ASSIGN, DEC, LT_EQ, GT_EQ, EQ, NOT_EQ, AMP_ASSIGN, AND,
	PIPE_ASSIGN, OR, CARET_ASSIGN, SHL, SHR, ARROW,

	LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, QUESTION, COLON,
	SEMICOLON, COMMA, ASTERISK, SLASH, PERCENT, PLUS, MINUS, LT, GT,
	ASSIGN, BANG, AMP, PIPE, CARET, DOT,
}

// cTypes maps type keywords to their spelling in the translation target.
var cTypes = map[TokenType]string{
	INT_T:    "int",
	FLOAT_T:  "float",
	BOOL_T:   "bool",
	CHAR_T:   "char",
	STRING_T: "char*",
	VOID_T:   "void",
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// CType returns the target spelling for a type keyword.
func CType(t TokenType) (string, bool) {
	s, ok := cTypes[t]
	return s, ok
}

func IsType(t TokenType) bool {
	_, ok := cTypes[t]
	return ok
}

func IsKeyword(t TokenType) bool {
	for _, kw := range keywords {
		if kw == t {
			return true
		}
	}
	return false
}
