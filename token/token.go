package token

import "fmt"

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	EOF Kind = iota

	// Single-character tokens.
	LEFTPAREN
	RIGHTPAREN
	LEFTBRACE
	RIGHTBRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR

	// One or two character tokens.
	BANG
	BANGEQUAL
	EQUAL
	EQUALEQUAL
	GREATER
	GREATEREQUAL
	LESS
	LESSEQUAL

	// Literals and identifiers.
	IDENT
	STRING
	NUMBER

	// Keywords.
	AND
	CLASS
	ELSE
	FALSE
	FOR
	FUN
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE
)

var keywords = map[string]Kind{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// Keyword reports the keyword kind spelled by str.
// Unknown spellings are identifiers.
func Keyword(str string) (Kind, bool) {
	if k, ok := keywords[str]; ok {
		return k, true
	}

	return IDENT, false
}

// SyntheticLine is the line of tokens that were not scanned from source.
const SyntheticLine = -1

type Token struct {
	Kind    Kind
	Lexeme  string
	Line    int
	Literal any
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %d, %v}", t.Kind, t.Lexeme, t.Line, t.Literal)
}

// Where describes the token's position for error messages.
func (t Token) Where() string {
	if t.Kind == EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", t.Lexeme)
}

func (t Token) Synthetic() bool {
	return t.Line == SyntheticLine
}
