package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treeviz/arith/lexer"
)

func kindsOf(tokens []lexer.Token) []lexer.Kind {
	out := make([]lexer.Kind, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Kind)
	}
	return out
}

func TestTokenize(t *testing.T) {
	tokens, err := lexer.Tokenize("-sin(90) * 2.5")
	require.NoError(t, err)
	require.Equal(t, []lexer.Kind{
		lexer.Minus, lexer.Sin, lexer.LeftParen, lexer.Number, lexer.RightParen,
		lexer.Whitespace, lexer.Star, lexer.Whitespace, lexer.Number,
	}, kindsOf(tokens))
	require.Equal(t, lexer.Token{
		Kind:  lexer.Number,
		Value: "2.5",
		Pos:   lexer.Position{Offset: 11, Line: 1, Column: 12},
	}, tokens[8])
}

func TestTokenizeKeywordsAndNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected []lexer.Kind
	}{
		{"pi", []lexer.Kind{lexer.Pi}},
		{"cos(0)/tan(45)", []lexer.Kind{
			lexer.Cos, lexer.LeftParen, lexer.Number, lexer.RightParen, lexer.Slash,
			lexer.Tan, lexer.LeftParen, lexer.Number, lexer.RightParen,
		}},
		{"1e3+.5", []lexer.Kind{lexer.Number, lexer.Plus, lexer.Number}},
		{"", []lexer.Kind{}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens, err := lexer.Tokenize(test.input)
			require.NoError(t, err)
			require.Equal(t, test.expected, kindsOf(tokens))
		})
	}
}

func TestTokenizeInvalid(t *testing.T) {
	_, err := lexer.Tokenize("2 ^ 3")
	require.Error(t, err)
}
