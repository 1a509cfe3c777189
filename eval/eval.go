// Tree-walking evaluator for expressions.
package eval

import (
	"fmt"

	"github.com/kogu/golox/ast"
	"github.com/kogu/golox/token"
)

const (
	msgDivideByZero     = "Cannot divide by zero"
	msgOperandNumber    = "Operand must be a number."
	msgOperandsNumbers  = "Operands must be numbers."
	msgOperandsAddition = "Operands must be two numbers or a string."
)

// RuntimeError is a failed operation. Token is the operator that failed.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	if e.Token.Synthetic() {
		return fmt.Sprintf("%s at '%s'", e.Message, e.Token.Lexeme)
	}
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// Evaluator evaluates expressions. It holds no state between calls.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

func (ev *Evaluator) Eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Binary:
		return ev.binary(e)
	case *ast.Unary:
		return ev.unary(e)
	case *ast.Grouping:
		return ev.Eval(e.Inner)
	case ast.Literal:
		return literal(e), nil
	default:
		panic(fmt.Sprintf("unexpected expression %T", expr))
	}
}

func literal(l ast.Literal) Value {
	switch l := l.(type) {
	case ast.Int:
		return Int(l)
	case ast.Double:
		return Double(l)
	case ast.String:
		return String(l)
	case ast.Bool:
		return Bool(l)
	case ast.Nil:
		return Nil{}
	default:
		panic(fmt.Sprintf("unexpected literal %T", l))
	}
}

func (ev *Evaluator) unary(u *ast.Unary) (Value, error) {
	operand, err := ev.Eval(u.Operand)
	if err != nil {
		return nil, err
	}

	switch u.Op {
	case ast.Negative:
		switch v := operand.(type) {
		case Int:
			return -v, nil
		case Double:
			return -v, nil
		default:
			return nil, runtimeError(u.Op.Token(), msgOperandNumber)
		}
	case ast.Not:
		return Bool(!Truthy(operand)), nil
	default:
		panic(fmt.Sprintf("unexpected unary operator %v", u.Op))
	}
}

func (ev *Evaluator) binary(b *ast.Binary) (Value, error) {
	left, err := ev.Eval(b.Left)
	if err != nil {
		return nil, err
	}

	// Or and And only look at the right operand when the left one is not
	// exactly the deciding boolean.
	switch b.Op {
	case ast.Or:
		if left == Bool(true) {
			return Bool(true), nil
		}
		return ev.Eval(b.Right)
	case ast.And:
		if left == Bool(false) {
			return Bool(false), nil
		}
		return ev.Eval(b.Right)
	}

	right, err := ev.Eval(b.Right)
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case ast.Eq:
		return Bool(left == right), nil
	case ast.NotEq:
		return Bool(left != right), nil
	case ast.LessThan, ast.GreaterThan, ast.LessThanEq, ast.GreaterThanEq:
		return compare(b.Op, left, right)
	case ast.Add:
		return add(left, right)
	case ast.Subtract, ast.Multiply:
		return arithmetic(b.Op, left, right)
	case ast.Divide:
		if isZero(right) {
			return nil, runtimeError(b.Op.Token(), msgDivideByZero)
		}
		return arithmetic(b.Op, left, right)
	default:
		panic(fmt.Sprintf("unexpected binary operator %v", b.Op))
	}
}

func compare(op ast.BinaryOperator, left, right Value) (Value, error) {
	l, okl := asDouble(left)
	r, okr := asDouble(right)
	if !okl || !okr {
		return nil, runtimeError(op.Token(), msgOperandsNumbers)
	}

	//exhaustive:ignore
	switch op {
	case ast.LessThan:
		return Bool(l < r), nil
	case ast.GreaterThan:
		return Bool(l > r), nil
	case ast.LessThanEq:
		return Bool(l <= r), nil
	case ast.GreaterThanEq:
		return Bool(l >= r), nil
	default:
		panic(fmt.Sprintf("not a comparison: %v", op))
	}
}

func add(left, right Value) (Value, error) {
	if l, ok := left.(Int); ok {
		if r, ok := right.(Int); ok {
			return l + r, nil
		}
	}

	_, lstr := left.(String)
	_, rstr := right.(String)
	if lstr || rstr {
		return String(left.String() + right.String()), nil
	}

	l, okl := asDouble(left)
	r, okr := asDouble(right)
	if !okl || !okr {
		return nil, runtimeError(ast.Add.Token(), msgOperandsAddition)
	}

	return Double(l + r), nil
}

// arithmetic computes Subtract, Multiply and Divide, staying in int32
// when both operands are integers. Integer results wrap.
func arithmetic(op ast.BinaryOperator, left, right Value) (Value, error) {
	if l, ok := left.(Int); ok {
		if r, ok := right.(Int); ok {
			//exhaustive:ignore
			switch op {
			case ast.Subtract:
				return l - r, nil
			case ast.Multiply:
				return l * r, nil
			case ast.Divide:
				return l / r, nil
			}
		}
	}

	l, okl := asDouble(left)
	r, okr := asDouble(right)
	if !okl || !okr {
		return nil, runtimeError(op.Token(), msgOperandsNumbers)
	}

	//exhaustive:ignore
	switch op {
	case ast.Subtract:
		return Double(l - r), nil
	case ast.Multiply:
		return Double(l * r), nil
	case ast.Divide:
		return Double(l / r), nil
	default:
		panic(fmt.Sprintf("not an arithmetic operator: %v", op))
	}
}

func runtimeError(where token.Token, message string) error {
	return &RuntimeError{Token: where, Message: message}
}
