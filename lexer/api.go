package lexer

import (
	"fmt"
)

// Kind is the syntactic category of a Token.
type Kind int

// EOF represents the end of the token stream. It never appears in input and is only used
// to report that the stream ran out.
//
// It is negative so that the zero Kind, as found in a zero Token, is not mistaken for the
// end of input.
const EOF Kind = -1

// Token kinds understood by the arithmetic grammar.
const (
	Number Kind = iota + 1
	Plus
	Minus
	Star
	Slash
	LeftParen
	RightParen
	Pi
	Sin
	Cos
	Tan
	Whitespace
)

var kindNames = map[Kind]string{
	EOF:        "EOF",
	Number:     "Number",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	LeftParen:  "LeftParen",
	RightParen: "RightParen",
	Pi:         "Pi",
	Sin:        "Sin",
	Cos:        "Cos",
	Tan:        "Tan",
	Whitespace: "Whitespace",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindOf returns the Kind with the given name, as returned by Kind.String().
func KindOf(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Position of a token.
//
// The zero Position means the position is unknown, eg. for tokens built by hand.
type Position struct {
	Offset int
	Line   int
	Column int
}

// IsValid reports whether the position is known.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Offset: %d, Line: %d, Column: %d}", p.Offset, p.Line, p.Column)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// A Token is a lexeme together with its category.
type Token struct {
	Kind  Kind
	Value string
	Pos   Position
}

// EOFToken creates a new EOF token at the given position.
func EOFToken(pos Position) Token {
	return Token{Kind: EOF, Pos: pos}
}

// EOF returns true if this Token is an EOF token.
func (t Token) EOF() bool {
	return t.Kind == EOF
}

func (t Token) String() string {
	if t.EOF() {
		return "<EOF>"
	}
	return t.Value
}

func (t Token) GoString() string {
	if !t.Pos.IsValid() {
		return fmt.Sprintf("Token{%s, %q}", t.Kind, t.Value)
	}
	return fmt.Sprintf("Token@%s{%s, %q}", t.Pos, t.Kind, t.Value)
}
