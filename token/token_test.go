package token_test

import (
	"testing"

	"github.com/kogu/golox/token"
)

func TestKeyword(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		input     string
		kind      token.Kind
		isKeyword bool
	}{
		{"and", token.AND, true},
		{"class", token.CLASS, true},
		{"nil", token.NIL, true},
		{"while", token.WHILE, true},
		{"While", token.IDENT, false},
		{"orchid", token.IDENT, false},
		{"", token.IDENT, false},
	}

	for _, testcase := range testcases {
		kind, ok := token.Keyword(testcase.input)
		if kind != testcase.kind || ok != testcase.isKeyword {
			t.Errorf("Keyword(%q) = %v, %v; want %v, %v", testcase.input, kind, ok, testcase.kind, testcase.isKeyword)
		}
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()
	if s := token.BANGEQUAL.String(); s != "BANGEQUAL" {
		t.Errorf("BANGEQUAL.String() = %q", s)
	}
	if s := token.Kind(-3).String(); s != "Kind(-3)" {
		t.Errorf("Kind(-3).String() = %q", s)
	}
}

func TestWhere(t *testing.T) {
	t.Parallel()
	eof := token.Token{Kind: token.EOF, Lexeme: "", Line: 3}
	if w := eof.Where(); w != " at end" {
		t.Errorf("Where() = %q, want %q", w, " at end")
	}

	plus := token.Token{Kind: token.PLUS, Lexeme: "+", Line: 1}
	if w := plus.Where(); w != " at '+'" {
		t.Errorf("Where() = %q, want %q", w, " at '+'")
	}
	if plus.Synthetic() {
		t.Errorf("%v is not synthetic", plus)
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	tok := token.Token{Kind: token.STRING, Lexeme: `"hi"`, Line: 2, Literal: "hi"}
	if s := tok.String(); s != `{STRING, "\"hi\"", 2, hi}` {
		t.Errorf("String() = %s", s)
	}
}

func TestKindNames(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		kind     token.Kind
		expected string
	}{
		{token.EOF, "EOF"},
		{token.LEFTPAREN, "LEFTPAREN"},
		{token.GREATEREQUAL, "GREATEREQUAL"},
		{token.NUMBER, "NUMBER"},
		{token.AND, "AND"},
		{token.WHILE, "WHILE"},
		{token.WHILE + 1, "Kind(39)"},
	}

	for _, testcase := range testcases {
		if s := testcase.kind.String(); s != testcase.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", int(testcase.kind), s, testcase.expected)
		}
	}
}
