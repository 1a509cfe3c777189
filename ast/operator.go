package ast

import (
	"fmt"

	"github.com/kogu/golox/token"
)

type BinaryOperator int

const (
	Eq BinaryOperator = iota
	NotEq

	LessThan
	GreaterThan
	LessThanEq
	GreaterThanEq

	Add
	Subtract
	Multiply
	Divide

	Or
	And
)

type operatorEntry struct {
	kind   token.Kind
	symbol string
}

var binaryOperators = [...]operatorEntry{
	Eq:            {token.EQUALEQUAL, "=="},
	NotEq:         {token.BANGEQUAL, "!="},
	LessThan:      {token.LESS, "<"},
	GreaterThan:   {token.GREATER, ">"},
	LessThanEq:    {token.LESSEQUAL, "<="},
	GreaterThanEq: {token.GREATEREQUAL, ">="},
	Add:           {token.PLUS, "+"},
	Subtract:      {token.MINUS, "-"},
	Multiply:      {token.STAR, "*"},
	Divide:        {token.SLASH, "/"},
	Or:            {token.OR, "or"},
	And:           {token.AND, "and"},
}

// BinaryOperatorFrom maps a token kind to its binary operator.
func BinaryOperatorFrom(kind token.Kind) (BinaryOperator, bool) {
	for op, entry := range binaryOperators {
		if entry.kind == kind {
			return BinaryOperator(op), true
		}
	}

	return 0, false
}

func (op BinaryOperator) Symbol() string {
	return binaryOperators[op].symbol
}

func (op BinaryOperator) String() string {
	if op < 0 || int(op) >= len(binaryOperators) {
		return fmt.Sprintf("BinaryOperator(%d)", int(op))
	}
	return op.Symbol()
}

// Token reconstructs a representative token for op.
// Its line is token.SyntheticLine; only the kind and lexeme identify the operator.
func (op BinaryOperator) Token() token.Token {
	entry := binaryOperators[op]

	return token.Token{Kind: entry.kind, Lexeme: entry.symbol, Line: token.SyntheticLine}
}

type UnaryOperator int

const (
	Negative UnaryOperator = iota
	Not
)

var unaryOperators = [...]operatorEntry{
	Negative: {token.MINUS, "-"},
	Not:      {token.BANG, "!"},
}

// UnaryOperatorFrom maps a token kind to its unary operator.
func UnaryOperatorFrom(kind token.Kind) (UnaryOperator, bool) {
	for op, entry := range unaryOperators {
		if entry.kind == kind {
			return UnaryOperator(op), true
		}
	}

	return 0, false
}

func (op UnaryOperator) Symbol() string {
	return unaryOperators[op].symbol
}

func (op UnaryOperator) String() string {
	if op < 0 || int(op) >= len(unaryOperators) {
		return fmt.Sprintf("UnaryOperator(%d)", int(op))
	}
	return op.Symbol()
}

func (op UnaryOperator) Token() token.Token {
	entry := unaryOperators[op]

	return token.Token{Kind: entry.kind, Lexeme: entry.symbol, Line: token.SyntheticLine}
}
