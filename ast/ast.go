package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// AST

// Expr is the closed set of expression nodes.
// Trees are never mutated after construction and children are never shared.
type Expr interface {
	fmt.Stringer
	expr()
}

type Binary struct {
	Left  Expr
	Op    BinaryOperator
	Right Expr
}

func (b *Binary) String() string {
	return Fold[string](b, debug{})
}

func (*Binary) expr() {}

var _ Expr = &Binary{}

type Unary struct {
	Op      UnaryOperator
	Operand Expr
}

func (u *Unary) String() string {
	return Fold[string](u, debug{})
}

func (*Unary) expr() {}

var _ Expr = &Unary{}

type Grouping struct {
	Inner Expr
}

func (g *Grouping) String() string {
	return Fold[string](g, debug{})
}

func (*Grouping) expr() {}

var _ Expr = &Grouping{}

// Literal is the closed set of literal values.
type Literal interface {
	Expr
	literal()
}

type Int int32

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (Int) expr()    {}
func (Int) literal() {}

type Double float64

func (d Double) String() string {
	return FormatDouble(float64(d))
}

func (Double) expr()    {}
func (Double) literal() {}

type String string

func (s String) String() string {
	return strconv.Quote(string(s))
}

func (String) expr()    {}
func (String) literal() {}

type Bool bool

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func (Bool) expr()    {}
func (Bool) literal() {}

type Nil struct{}

func (Nil) String() string {
	return "nil"
}

func (Nil) expr()    {}
func (Nil) literal() {}

var (
	_ Literal = Int(0)
	_ Literal = Double(0)
	_ Literal = String("")
	_ Literal = Bool(false)
	_ Literal = Nil{}
)

// FormatDouble renders d as the shortest decimal that reads back to d,
// keeping a fractional part so that doubles stay distinguishable from integers.
func FormatDouble(d float64) string {
	s := strconv.FormatFloat(d, 'f', -1, 64)
	if strings.ContainsAny(s, ".IN") {
		return s
	}

	return s + ".0"
}

// debug renders a node for String.
type debug struct{}

var _ Repr[string] = debug{}

func (debug) Binary(left string, op BinaryOperator, right string) string {
	return parenthesize("binary", left, op.Symbol(), right)
}

func (debug) Unary(op UnaryOperator, operand string) string {
	return parenthesize("unary", op.Symbol(), operand)
}

func (debug) Grouping(inner string) string {
	return parenthesize("grouping", inner)
}

func (debug) Int(i int32) string {
	return parenthesize("literal", Int(i).String())
}

func (debug) Double(d float64) string {
	return parenthesize("literal", Double(d).String())
}

func (debug) String(s string) string {
	return parenthesize("literal", String(s).String())
}

func (debug) Bool(b bool) string {
	return parenthesize("literal", Bool(b).String())
}

func (debug) Nil() string {
	return parenthesize("literal", Nil{}.String())
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
