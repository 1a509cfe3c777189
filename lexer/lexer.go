package lexer

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/kogu/golox/token"
)

const (
	msgUnexpectedCharacter = "Unexpected character."
	msgUnterminatedString  = "Unterminated string."
)

// Lex scans source into tokens ending with EOF.
// Scanning never stops at an error; every problem span is returned in order.
func Lex(source string) ([]token.Token, []ScanError) {
	lexer := lexer{
		source:  source,
		tokens:  []token.Token{},
		start:   0,
		current: 0,
		line:    1,
	}

	for !lexer.isAtEnd() {
		lexer.start = lexer.current
		lexer.scanToken()
	}

	lexer.tokens = append(lexer.tokens, token.Token{Kind: token.EOF, Lexeme: "", Line: lexer.line, Literal: nil})

	return lexer.tokens, lexer.errors
}

type lexer struct {
	source string
	tokens []token.Token
	errors []ScanError

	start   int // start of current lexeme
	current int // current position in source
	line    int // current line number
}

// ScanError is a problem span in the source. Start and End are byte offsets.
type ScanError struct {
	Line    int
	Start   int
	End     int
	Message string
}

func (e ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Join folds scan errors into a single error, or nil.
func Join(errs []ScanError) error {
	joined := make([]error, len(errs))
	for i, err := range errs {
		joined[i] = err
	}

	return errors.Join(joined...)
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l lexer) peek() byte {
	if l.isAtEnd() {
		return '\x00'
	}

	return l.source[l.current]
}

func (l lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return '\x00'
	}

	return l.source[l.current+1]
}

func (l *lexer) advance() byte {
	c := l.source[l.current]
	l.current++

	return c
}

func (l *lexer) match(expected byte) bool {
	if l.isAtEnd() || l.source[l.current] != expected {
		return false
	}
	l.current++

	return true
}

func (l *lexer) addToken(kind token.Kind, literal any) {
	text := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.Token{Kind: kind, Lexeme: text, Line: l.line, Literal: literal})
}

// addError appends a ScanError for [start, current), merging it into the
// previous one when both are the same problem on adjacent spans.
func (l *lexer) addError(message string) {
	err := ScanError{Line: l.line, Start: l.start, End: l.current, Message: message}
	if n := len(l.errors); n > 0 {
		last := l.errors[n-1]
		if last.Line == err.Line && last.End == err.Start && last.Message == err.Message {
			l.errors[n-1].End = err.End
			return
		}
	}
	l.errors = append(l.errors, err)
}

func (l *lexer) scanToken() {
	char := l.advance()
	switch char {
	case '(':
		l.addToken(token.LEFTPAREN, nil)
	case ')':
		l.addToken(token.RIGHTPAREN, nil)
	case '{':
		l.addToken(token.LEFTBRACE, nil)
	case '}':
		l.addToken(token.RIGHTBRACE, nil)
	case ',':
		l.addToken(token.COMMA, nil)
	case '.':
		l.addToken(token.DOT, nil)
	case '-':
		l.addToken(token.MINUS, nil)
	case '+':
		l.addToken(token.PLUS, nil)
	case ';':
		l.addToken(token.SEMICOLON, nil)
	case '*':
		l.addToken(token.STAR, nil)
	case '!':
		l.addToken(l.either('=', token.BANGEQUAL, token.BANG), nil)
	case '=':
		l.addToken(l.either('=', token.EQUALEQUAL, token.EQUAL), nil)
	case '<':
		l.addToken(l.either('=', token.LESSEQUAL, token.LESS), nil)
	case '>':
		l.addToken(l.either('=', token.GREATEREQUAL, token.GREATER), nil)
	case '/':
		if l.match('/') {
			// comment runs to the end of the line
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else {
			l.addToken(token.SLASH, nil)
		}
	case ' ', '\r', '\t':
		// ignore whitespace
	case '\n':
		l.line++
	case '"':
		l.string()
	default:
		switch {
		case isDigit(char):
			l.number()
		case isAlpha(char):
			l.identifier()
		default:
			l.addError(msgUnexpectedCharacter)
		}
	}
}

func (l *lexer) either(next byte, long, short token.Kind) token.Kind {
	if l.match(next) {
		return long
	}

	return short
}

func (l *lexer) string() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.addError(msgUnterminatedString)
		return
	}

	// closing quote
	l.advance()

	value := l.source[l.start+1 : l.current-1]
	l.addToken(token.STRING, value)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	value, err := strconv.ParseFloat(l.source[l.start:l.current], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		log.Panicf("invalid number literal %q: %v", l.source[l.start:l.current], err)
	}
	l.addToken(token.NUMBER, value)
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func (l *lexer) identifier() {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}

	kind, _ := token.Keyword(l.source[l.start:l.current])
	l.addToken(kind, nil)
}
