package ast

import "fmt"

// Repr is an object algebra over Expr: one method per variant.
// A new variant is a new method here, so every Repr implementation
// stops compiling until it handles it.
type Repr[T any] interface {
	Binary(left T, op BinaryOperator, right T) T
	Unary(op UnaryOperator, operand T) T
	Grouping(inner T) T
	Int(i int32) T
	Double(d float64) T
	String(s string) T
	Bool(b bool) T
	Nil() T
}

// Fold interprets expr bottom-up with r.
func Fold[T any](expr Expr, r Repr[T]) T {
	switch e := expr.(type) {
	case *Binary:
		return r.Binary(Fold(e.Left, r), e.Op, Fold(e.Right, r))
	case *Unary:
		return r.Unary(e.Op, Fold(e.Operand, r))
	case *Grouping:
		return r.Grouping(Fold(e.Inner, r))
	case Int:
		return r.Int(int32(e))
	case Double:
		return r.Double(float64(e))
	case String:
		return r.String(string(e))
	case Bool:
		return r.Bool(bool(e))
	case Nil:
		return r.Nil()
	default:
		panic(fmt.Sprintf("unexpected expression %T", expr))
	}
}

type Builder struct{}

var _ Repr[Expr] = Builder{}

func (b Builder) Binary(left Expr, op BinaryOperator, right Expr) Expr {
	return &Binary{Left: left, Op: op, Right: right}
}

func (b Builder) Unary(op UnaryOperator, operand Expr) Expr {
	return &Unary{Op: op, Operand: operand}
}

func (b Builder) Grouping(inner Expr) Expr {
	return &Grouping{Inner: inner}
}

func (b Builder) Int(i int32) Expr {
	return Int(i)
}

func (b Builder) Double(d float64) Expr {
	return Double(d)
}

func (b Builder) String(s string) Expr {
	return String(s)
}

func (b Builder) Bool(v bool) Expr {
	return Bool(v)
}

func (b Builder) Nil() Expr {
	return Nil{}
}
