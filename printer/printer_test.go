package printer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kogu/golox/ast"
	"github.com/kogu/golox/printer"
)

var b = ast.Builder{}

func TestInfix(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		input    ast.Expr
		expected string
	}{
		{b.Binary(b.Int(1), ast.Eq, b.Int(2)), "1 == 2"},
		{b.Binary(b.String("repeatMe"), ast.Multiply, b.Int(3)), `"repeatMe" * 3`},
		{b.Binary(b.Bool(true), ast.Eq, b.Bool(false)), `"true" == "false"`},
		{
			b.Binary(b.Unary(ast.Negative, b.Int(123)), ast.Multiply, b.Grouping(b.Binary(b.Int(23), ast.Add, b.Int(45)))),
			"-123 * (23 + 45)",
		},
		{
			b.Binary(b.Grouping(b.Binary(b.Int(1), ast.Add, b.Int(2))), ast.Multiply, b.Grouping(b.Binary(b.Int(4), ast.Subtract, b.Int(3)))),
			"(1 + 2) * (4 - 3)",
		},
		{b.Unary(ast.Not, b.Nil()), `!"nil"`},
		{b.Binary(b.Double(1.5), ast.Or, b.Double(2)), "1.5 or 2.0"},
	}

	for _, testcase := range testcases {
		if diff := cmp.Diff(testcase.expected, printer.Infix(testcase.input)); diff != "" {
			t.Errorf("Infix(%v) mismatch (-want +got):\n%s", testcase.input, diff)
		}
	}
}

func TestRPN(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		input    ast.Expr
		expected string
	}{
		{
			b.Binary(b.Grouping(b.Binary(b.Int(1), ast.Add, b.Int(2))), ast.Multiply, b.Grouping(b.Binary(b.Int(4), ast.Subtract, b.Int(3)))),
			"(1 2 +) (4 3 -) *",
		},
		{b.Binary(b.Binary(b.Int(1), ast.Add, b.Int(2)), ast.Multiply, b.Binary(b.Int(4), ast.Subtract, b.Int(3))), "1 2 + 4 3 - *"},
		{b.Binary(b.Unary(ast.Negative, b.Int(3)), ast.Subtract, b.Int(1)), "~3 1 -"},
		{b.Unary(ast.Not, b.Bool(true)), `!"true"`},
		{b.Binary(b.String("a"), ast.LessThanEq, b.Double(0.5)), `"a" 0.5 <=`},
	}

	for _, testcase := range testcases {
		if diff := cmp.Diff(testcase.expected, printer.RPN(testcase.input)); diff != "" {
			t.Errorf("RPN(%v) mismatch (-want +got):\n%s", testcase.input, diff)
		}
	}
}

func TestLispy(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		input    ast.Expr
		expected string
	}{
		{
			b.Binary(b.Grouping(b.Binary(b.Int(1), ast.Add, b.Int(2))), ast.Multiply, b.Grouping(b.Binary(b.Int(4), ast.Subtract, b.Int(3)))),
			"(* (group (+ 1 2)) (group (- 4 3)))",
		},
		{b.Binary(b.Binary(b.Int(1), ast.Add, b.Int(2)), ast.Multiply, b.Binary(b.Int(4), ast.Subtract, b.Int(3))), "(* (+ 1 2) (- 4 3))"},
		{b.Binary(b.Unary(ast.Negative, b.Int(123)), ast.Multiply, b.Grouping(b.Double(45.67))), "(* (- 123) (group 45.67))"},
		{b.Binary(b.Bool(true), ast.And, b.Nil()), `(and "true" "nil")`},
		{b.String("x"), `"x"`},
	}

	for _, testcase := range testcases {
		if diff := cmp.Diff(testcase.expected, printer.Lispy(testcase.input)); diff != "" {
			t.Errorf("Lispy(%v) mismatch (-want +got):\n%s", testcase.input, diff)
		}
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()
	expr := b.Binary(b.Int(1), ast.Add, b.Int(2))
	testcases := []struct {
		name     string
		mode     printer.Mode
		expected string
	}{
		{"infix", printer.ModeInfix, "1 + 2"},
		{"RPN", printer.ModeRPN, "1 2 +"},
		{"lispy", printer.ModeLispy, "(+ 1 2)"},
	}

	for _, testcase := range testcases {
		mode, err := printer.ParseMode(testcase.name)
		if err != nil {
			t.Errorf("ParseMode(%q) returned error: %v", testcase.name, err)
			continue
		}
		if mode != testcase.mode {
			t.Errorf("ParseMode(%q) = %v, want %v", testcase.name, mode, testcase.mode)
		}
		if s := mode.Print(expr); s != testcase.expected {
			t.Errorf("%v.Print = %q, want %q", mode, s, testcase.expected)
		}
	}

	if _, err := printer.ParseMode("postfix"); err == nil {
		t.Errorf("ParseMode(%q) should fail", "postfix")
	}
}

func TestModeString(t *testing.T) {
	t.Parallel()
	if s := printer.ModeRPN.String(); s != "rpn" {
		t.Errorf("ModeRPN.String() = %q", s)
	}
	if s := printer.Mode(0).String(); s != "Mode(0)" {
		t.Errorf("Mode(0).String() = %q", s)
	}
}
