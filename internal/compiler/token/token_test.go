package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		// Keywords
		{"func", FUNC},
		{"if", IF},
		{"else", ELSE},
		{"for", FOR},
		{"while", WHILE},
		{"break", BREAK},
		{"continue", CONTINUE},
		{"return", RETURN},
		{"int", INT_T},
		{"float", FLOAT_T},
		{"bool", BOOL_T},
		{"char", CHAR_T},
		{"string", STRING_T},
		{"void", VOID_T},
		{"true", TRUE},
		{"false", FALSE},
		// Non-keywords
		{"variable", IDENT},
		{"Int", IDENT},
		{"integer", IDENT},
		{"_if", IDENT},
		{"foo_bar", IDENT},
		{"", IDENT},
	}

	for _, tt := range tests {
		result := LookupIdent(tt.input)
		if result != tt.expected {
			t.Errorf("LookupIdent(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestCType(t *testing.T) {
	tests := []struct {
		typ      TokenType
		expected string
		ok       bool
	}{
		{INT_T, "int", true},
		{FLOAT_T, "float", true},
		{BOOL_T, "bool", true},
		{CHAR_T, "char", true},
		{STRING_T, "char*", true},
		{VOID_T, "void", true},
		{IDENT, "", false},
		{FUNC, "", false},
	}

	for _, tt := range tests {
		got, ok := CType(tt.typ)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("CType(%s) = (%q, %v), want (%q, %v)", tt.typ, got, ok, tt.expected, tt.ok)
		}
		if IsType(tt.typ) != tt.ok {
			t.Errorf("IsType(%s) = %v, want %v", tt.typ, !tt.ok, tt.ok)
		}
	}
}

func TestIsIgnoresPayload(t *testing.T) {
	a := Token{Type: IDENT, Literal: "foo"}
	b := Token{Type: IDENT, Literal: "bar", Pos: Position{Line: 3, Column: 7}}

	if !a.Is(b.Type) {
		t.Error("identifiers with different names should match by tag")
	}
	if a.Is(INT) {
		t.Error("identifier should not match INT")
	}
	if !(Token{Type: INT, IntVal: 42}).IsAny(FLOAT, INT) {
		t.Error("IsAny should match INT")
	}
	if (Token{Type: SEMICOLON}).IsAny() {
		t.Error("IsAny with no types should be false")
	}
}

func TestOperatorsLongestFirst(t *testing.T) {
	seen := make(map[TokenType]bool)
	prev := 3
	for _, op := range Operators {
		if seen[op] {
			t.Fatalf("duplicate operator %q", op)
		}
		seen[op] = true
		if len(op) > prev {
			t.Fatalf("operator %q listed after a shorter one", op)
		}
		prev = len(op)
	}
	if len(Operators) != 44 {
		t.Errorf("len(Operators) = %d, want 44", len(Operators))
	}
}

func TestIsKeyword(t *testing.T) {
	if !IsKeyword(RETURN) || !IsKeyword(VOID_T) {
		t.Error("RETURN and VOID_T are keywords")
	}
	if IsKeyword(IDENT) || IsKeyword(PLUS) {
		t.Error("IDENT and PLUS are not keywords")
	}
}
