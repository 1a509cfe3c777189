package eval

import (
	"fmt"
	"strconv"

	"github.com/kogu/golox/ast"
)

// Value is the closed set of run-time values.
type Value interface {
	fmt.Stringer
	value()
}

type Nil struct{}

func (Nil) String() string {
	return "nil"
}

func (Nil) value() {}

var _ Value = Nil{}

type Bool bool

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func (Bool) value() {}

var _ Value = Bool(false)

type Int int32

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (Int) value() {}

var _ Value = Int(0)

type Double float64

func (d Double) String() string {
	return ast.FormatDouble(float64(d))
}

func (Double) value() {}

var _ Value = Double(0)

type String string

func (s String) String() string {
	return string(s)
}

func (String) value() {}

var _ Value = String("")

// Truthy reports whether v counts as true: only nil and false do not.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(v)
	default:
		return true
	}
}

// asDouble widens a numeric value.
func asDouble(v Value) (float64, bool) {
	switch v := v.(type) {
	case Int:
		return float64(v), true
	case Double:
		return float64(v), true
	default:
		return 0, false
	}
}

func isZero(v Value) bool {
	d, ok := asDouble(v)
	return ok && d == 0
}
