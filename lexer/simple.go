package lexer

import (
	"fmt"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

// Rules used by Tokenize. Rule names are Kind names.
var Rules = []plexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?`},
	{Name: "Pi", Pattern: `pi`},
	{Name: "Sin", Pattern: `sin`},
	{Name: "Cos", Pattern: `cos`},
	{Name: "Tan", Pattern: `tan`},
	{Name: "Plus", Pattern: `\+`},
	{Name: "Minus", Pattern: `-`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Slash", Pattern: `/`},
	{Name: "LeftParen", Pattern: `\(`},
	{Name: "RightParen", Pattern: `\)`},
}

var (
	definition = plexer.MustSimple(Rules)
	kinds      = kindsBySymbol(definition)
)

func kindsBySymbol(def plexer.Definition) map[plexer.TokenType]Kind {
	out := map[plexer.TokenType]Kind{}
	for name, tt := range def.Symbols() {
		if k, ok := KindOf(name); ok {
			out[tt] = k
		}
	}
	return out
}

// Tokenize splits input into tokens, including Whitespace.
func Tokenize(input string) ([]Token, error) {
	lex, err := definition.LexString("", input)
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for {
		t, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if t.EOF() {
			return tokens, nil
		}
		kind, ok := kinds[t.Type]
		if !ok {
			return nil, fmt.Errorf("%s: unsupported token %q", t.Pos, t.Value)
		}
		tokens = append(tokens, Token{
			Kind:  kind,
			Value: t.Value,
			Pos:   Position{Offset: t.Pos.Offset, Line: t.Pos.Line, Column: t.Pos.Column},
		})
	}
}
