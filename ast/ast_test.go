package ast_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kogu/golox/ast"
	"github.com/kogu/golox/token"
)

func TestBinaryOperatorRoundTrip(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		op     ast.BinaryOperator
		kind   token.Kind
		symbol string
	}{
		{ast.Eq, token.EQUALEQUAL, "=="},
		{ast.NotEq, token.BANGEQUAL, "!="},
		{ast.LessThan, token.LESS, "<"},
		{ast.GreaterThan, token.GREATER, ">"},
		{ast.LessThanEq, token.LESSEQUAL, "<="},
		{ast.GreaterThanEq, token.GREATEREQUAL, ">="},
		{ast.Add, token.PLUS, "+"},
		{ast.Subtract, token.MINUS, "-"},
		{ast.Multiply, token.STAR, "*"},
		{ast.Divide, token.SLASH, "/"},
		{ast.Or, token.OR, "or"},
		{ast.And, token.AND, "and"},
	}

	for _, testcase := range testcases {
		if s := testcase.op.Symbol(); s != testcase.symbol {
			t.Errorf("%v.Symbol() = %q, want %q", testcase.op, s, testcase.symbol)
		}

		op, ok := ast.BinaryOperatorFrom(testcase.kind)
		if !ok || op != testcase.op {
			t.Errorf("BinaryOperatorFrom(%v) = %v, %v; want %v", testcase.kind, op, ok, testcase.op)
		}

		expected := token.Token{Kind: testcase.kind, Lexeme: testcase.symbol, Line: token.SyntheticLine}
		if diff := cmp.Diff(expected, testcase.op.Token()); diff != "" {
			t.Errorf("%v.Token() mismatch (-want +got):\n%s", testcase.op, diff)
		}
	}

	if _, ok := ast.BinaryOperatorFrom(token.BANG); ok {
		t.Errorf("BinaryOperatorFrom(BANG) should fail")
	}
}

func TestUnaryOperator(t *testing.T) {
	t.Parallel()
	if op, ok := ast.UnaryOperatorFrom(token.MINUS); !ok || op != ast.Negative {
		t.Errorf("UnaryOperatorFrom(MINUS) = %v, %v", op, ok)
	}
	if op, ok := ast.UnaryOperatorFrom(token.BANG); !ok || op != ast.Not {
		t.Errorf("UnaryOperatorFrom(BANG) = %v, %v", op, ok)
	}
	if _, ok := ast.UnaryOperatorFrom(token.PLUS); ok {
		t.Errorf("UnaryOperatorFrom(PLUS) should fail")
	}
	if tok := ast.Not.Token(); tok.Kind != token.BANG || tok.Lexeme != "!" || !tok.Synthetic() {
		t.Errorf("Not.Token() = %v", tok)
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	b := ast.Builder{}
	expr := b.Binary(
		b.Unary(ast.Negative, b.Int(1)),
		ast.Add,
		b.Grouping(b.Binary(b.String("s"), ast.Eq, b.Nil())),
	)

	expected := `(binary (unary - (literal 1)) + (grouping (binary (literal "s") == (literal nil))))`
	if diff := cmp.Diff(expected, expr.String()); diff != "" {
		t.Errorf("String mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatDouble(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		input    float64
		expected string
	}{
		{3, "3.0"},
		{-4, "-4.0"},
		{45.67, "45.67"},
		{0.1, "0.1"},
		{math.Inf(1), "+Inf"},
		{math.NaN(), "NaN"},
	}

	for _, testcase := range testcases {
		if s := ast.FormatDouble(testcase.input); s != testcase.expected {
			t.Errorf("FormatDouble(%v) = %q, want %q", testcase.input, s, testcase.expected)
		}
	}
}

type depth struct{}

func (depth) Binary(l int, _ ast.BinaryOperator, r int) int { return 1 + max(l, r) }
func (depth) Unary(_ ast.UnaryOperator, x int) int         { return 1 + x }
func (depth) Grouping(x int) int                           { return 1 + x }
func (depth) Int(int32) int                                { return 1 }
func (depth) Double(float64) int                           { return 1 }
func (depth) String(string) int                            { return 1 }
func (depth) Bool(bool) int                                { return 1 }
func (depth) Nil() int                                     { return 1 }

func TestFold(t *testing.T) {
	t.Parallel()
	b := ast.Builder{}
	expr := b.Binary(b.Int(1), ast.Multiply, b.Grouping(b.Unary(ast.Not, b.Bool(true))))

	if d := ast.Fold[int](expr, depth{}); d != 4 {
		t.Errorf("depth = %d, want 4", d)
	}

	// rebuilding with Builder yields an equal tree
	if diff := cmp.Diff(expr, ast.Fold[ast.Expr](expr, b)); diff != "" {
		t.Errorf("Fold with Builder mismatch (-want +got):\n%s", diff)
	}
}
