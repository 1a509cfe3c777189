package parser

import (
	"fmt"
	"math"

	"github.com/kogu/golox/ast"
	"github.com/kogu/golox/report"
	"github.com/kogu/golox/token"
	"golang.org/x/exp/slices"
)

var build = ast.Builder{}

type Parser struct {
	tokens   []token.Token
	current  int
	reporter report.Reporter
}

// NewParser returns a parser over tokens, which must end with EOF.
// Syntax errors are handed to r; a nil r keeps them in a report.Recorder.
func NewParser(tokens []token.Token, r report.Reporter) *Parser {
	if r == nil {
		r = &report.Recorder{}
	}
	return &Parser{tokens: tokens, current: 0, reporter: r}
}

// Parse parses a single expression. On a syntax error the reporter has
// already received it and Parse returns false. No tokens is no expression
// and no error.
func Parse(tokens []token.Token, r report.Reporter) (ast.Expr, bool) {
	if len(tokens) == 0 {
		return nil, false
	}

	expr, err := NewParser(tokens, r).ParseExpr()
	if err != nil {
		return nil, false
	}

	return expr, true
}

// ParseAll parses expressions separated by ";" up to EOF. A broken
// expression is reported and skipped, and parsing resumes after it.
func ParseAll(tokens []token.Token, r report.Reporter) []ast.Expr {
	if len(tokens) == 0 {
		return []ast.Expr{}
	}

	return NewParser(tokens, r).ParseAll()
}

func (p *Parser) ParseExpr() (ast.Expr, error) {
	return p.expression()
}

// unit = expression ( ";" | EOF ) ;
func (p *Parser) ParseAll() []ast.Expr {
	exprs := []ast.Expr{}
	for !p.IsAtEnd() {
		expr, err := p.expression()
		if err == nil && !p.IsAtEnd() {
			_, err = p.consume(token.SEMICOLON, "Expect ';' after expression.")
		}
		if err != nil {
			p.synchronize()
			continue
		}
		exprs = append(exprs, expr)
	}

	return exprs
}

// expression = or ;
func (p *Parser) expression() (ast.Expr, error) {
	return p.or()
}

// or = and ( "or" and )* ;
func (p *Parser) or() (ast.Expr, error) {
	return p.climb(p.and, token.OR)
}

// and = equality ( "and" equality )* ;
func (p *Parser) and() (ast.Expr, error) {
	return p.climb(p.equality, token.AND)
}

// equality = comparison ( ( "!=" | "==" ) comparison )* ;
func (p *Parser) equality() (ast.Expr, error) {
	return p.climb(p.comparison, token.BANGEQUAL, token.EQUALEQUAL)
}

// comparison = term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
func (p *Parser) comparison() (ast.Expr, error) {
	return p.climb(p.term, token.GREATER, token.GREATEREQUAL, token.LESS, token.LESSEQUAL)
}

// term = factor ( ( "-" | "+" ) factor )* ;
func (p *Parser) term() (ast.Expr, error) {
	return p.climb(p.factor, token.MINUS, token.PLUS)
}

// factor = unary ( ( "/" | "*" ) unary )* ;
func (p *Parser) factor() (ast.Expr, error) {
	return p.climb(p.unary, token.SLASH, token.STAR)
}

// climb parses a left-associative chain of operands joined by kinds.
func (p *Parser) climb(next func() (ast.Expr, error), kinds ...token.Kind) (ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		op := p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = build.Binary(expr, binaryOperator(op), right)
	}

	return expr, nil
}

// unary = ( "!" | "-" ) unary | primary ;
func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.BANG, token.MINUS) {
		op := p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		unaryOp, ok := ast.UnaryOperatorFrom(op.Kind)
		if !ok {
			panic(fmt.Sprintf("no unary operator for %v", op))
		}

		return build.Unary(unaryOp, operand), nil
	}

	return p.primary()
}

// primary = NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")" ;
func (p *Parser) primary() (ast.Expr, error) {
	//exhaustive:ignore
	switch tok := p.peek(); tok.Kind {
	case token.TRUE:
		p.advance()
		return build.Bool(true), nil
	case token.FALSE:
		p.advance()
		return build.Bool(false), nil
	case token.NIL:
		p.advance()
		return build.Nil(), nil
	case token.NUMBER, token.STRING:
		p.advance()
		return literal(tok), nil
	case token.LEFTPAREN:
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHTPAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}

		return build.Grouping(inner), nil
	default:
		return nil, p.error(tok, "Expect expression.")
	}
}

// literal converts a scanned payload. Any other payload type, or an int
// outside int32, means the token did not come from the lexer's contract.
func literal(tok token.Token) ast.Expr {
	switch v := tok.Literal.(type) {
	case string:
		return build.String(v)
	case int:
		if v < math.MinInt32 || v > math.MaxInt32 {
			panic(fmt.Sprintf("integer literal %d out of int32 range in %v", v, tok))
		}
		return build.Int(int32(v))
	case int32:
		return build.Int(v)
	case float64:
		return build.Double(v)
	default:
		panic(fmt.Sprintf("unrecognized literal %#v in %v", tok.Literal, tok))
	}
}

func binaryOperator(op token.Token) ast.BinaryOperator {
	binOp, ok := ast.BinaryOperatorFrom(op.Kind)
	if !ok {
		panic(fmt.Sprintf("no binary operator for %v", op))
	}

	return binOp
}

var statementStarts = []token.Kind{
	token.CLASS,
	token.FOR,
	token.FUN,
	token.IF,
	token.PRINT,
	token.RETURN,
	token.VAR,
	token.WHILE,
}

// synchronize discards tokens up to the next likely statement boundary.
func (p *Parser) synchronize() {
	p.advance()
	for !p.IsAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		if slices.Contains(statementStarts, p.peek().Kind) {
			return
		}
		p.advance()
	}
}

func (p *Parser) error(t token.Token, message string) error {
	err := &report.SyntaxError{Token: t, Message: message}
	p.reporter.Handle(err)

	return err
}

// peek returns an EOF token past the end, so a parser built over no
// tokens stops at once.
func (p Parser) peek() token.Token {
	if p.current >= len(p.tokens) {
		return token.Token{Kind: token.EOF, Lexeme: "", Line: 1}
	}
	return p.tokens[p.current]
}

func (p *Parser) advance() token.Token {
	if !p.IsAtEnd() {
		p.current++
	}

	return p.previous()
}

func (p Parser) previous() token.Token {
	if p.current == 0 {
		return p.peek()
	}
	return p.tokens[p.current-1]
}

func (p Parser) IsAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p Parser) match(kinds ...token.Kind) bool {
	if p.IsAtEnd() {
		return false
	}

	return slices.Contains(kinds, p.peek().Kind)
}

func (p *Parser) consume(kind token.Kind, message string) (token.Token, error) {
	if p.match(kind) {
		return p.advance(), nil
	}

	return token.Token{}, p.error(p.peek(), message)
}
