// Package printer renders expression trees as text.
package printer

import (
	"fmt"
	"strings"

	"github.com/kogu/golox/ast"
)

// Infix renders expr with operators between operands. Parentheses appear
// only where the tree has a Grouping.
func Infix(expr ast.Expr) string {
	return ast.Fold[string](expr, infix{})
}

// RPN renders expr in postfix order. Negation is written "~" so that it
// cannot be confused with binary subtraction.
func RPN(expr ast.Expr) string {
	return ast.Fold[string](expr, rpn{})
}

// Lispy renders expr as an S-expression.
func Lispy(expr ast.Expr) string {
	return ast.Fold[string](expr, lispy{})
}

// literals renders literal leaves. Every printer embeds it.
type literals struct{}

func (literals) Int(i int32) string {
	return ast.Int(i).String()
}

func (literals) Double(d float64) string {
	return ast.Double(d).String()
}

func (literals) String(s string) string {
	return quote(s)
}

func (literals) Bool(b bool) string {
	return quote(ast.Bool(b).String())
}

func (literals) Nil() string {
	return quote("nil")
}

// quote wraps s in double quotes without escaping anything.
func quote(s string) string {
	return `"` + s + `"`
}

type infix struct{ literals }

var _ ast.Repr[string] = infix{}

func (infix) Binary(left string, op ast.BinaryOperator, right string) string {
	return left + " " + op.Symbol() + " " + right
}

func (infix) Unary(op ast.UnaryOperator, operand string) string {
	return op.Symbol() + operand
}

func (infix) Grouping(inner string) string {
	return "(" + inner + ")"
}

type rpn struct{ literals }

var _ ast.Repr[string] = rpn{}

func (rpn) Binary(left string, op ast.BinaryOperator, right string) string {
	return left + " " + right + " " + op.Symbol()
}

func (rpn) Unary(op ast.UnaryOperator, operand string) string {
	switch op {
	case ast.Negative:
		return "~" + operand
	case ast.Not:
		return "!" + operand
	default:
		panic(fmt.Sprintf("unexpected unary operator %v", op))
	}
}

func (rpn) Grouping(inner string) string {
	return "(" + inner + ")"
}

type lispy struct{ literals }

var _ ast.Repr[string] = lispy{}

func (lispy) Binary(left string, op ast.BinaryOperator, right string) string {
	return parenthesize(op.Symbol(), left, right)
}

func (lispy) Unary(op ast.UnaryOperator, operand string) string {
	return parenthesize(op.Symbol(), operand)
}

func (lispy) Grouping(inner string) string {
	return parenthesize("group", inner)
}

func parenthesize(name string, elems ...string) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, elem := range elems {
		b.WriteString(" ")
		b.WriteString(elem)
	}
	b.WriteString(")")

	return b.String()
}

// Mode selects one of the renderings.
type Mode int

const (
	ModeInfix Mode = iota + 1
	ModeRPN
	ModeLispy
)

var modeNames = map[string]Mode{
	"infix": ModeInfix,
	"rpn":   ModeRPN,
	"lispy": ModeLispy,
}

// ParseMode maps "infix", "rpn" or "lispy" to its Mode.
func ParseMode(name string) (Mode, error) {
	if m, ok := modeNames[strings.ToLower(name)]; ok {
		return m, nil
	}

	return 0, fmt.Errorf("unknown print mode %q: want infix, rpn or lispy", name)
}

func (m Mode) String() string {
	for name, mode := range modeNames {
		if mode == m {
			return name
		}
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) Print(expr ast.Expr) string {
	switch m {
	case ModeInfix:
		return Infix(expr)
	case ModeRPN:
		return RPN(expr)
	case ModeLispy:
		return Lispy(expr)
	default:
		panic(fmt.Sprintf("unexpected print mode %d", int(m)))
	}
}
