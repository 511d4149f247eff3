package arith_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	require "github.com/alecthomas/assert/v2"

	"github.com/treeviz/arith"
	"github.com/treeviz/arith/lexer"
)

func TestErrorReporting(t *testing.T) {
	tests := []struct {
		input string
		err   string
		eof   bool
		prim  bool
	}{
		{"2 +", `1:4: unexpected end of input (expected Number or Pi or LeftParen)`, true, true},
		{"2 3", `1:3: unexpected token "3" (expected EOF)`, false, false},
		{"(1 + 2", `1:7: unexpected end of input (expected RightParen)`, true, false},
		{"sin 90", `1:5: unexpected token "90" (expected LeftParen)`, false, false},
		{"cos(0", `1:6: unexpected end of input (expected RightParen)`, true, false},
		{"*3", `1:1: unexpected token "*" (expected Number or Pi or LeftParen)`, false, true},
		{"--2", `1:2: unexpected token "-" (expected Number or Pi or LeftParen)`, false, true},
		{")", `1:1: unexpected token ")" (expected Number or Pi or LeftParen)`, false, true},
		{"1 + 2)", `1:6: unexpected token ")" (expected EOF)`, false, false},
		{"()", `1:2: unexpected token ")" (expected Number or Pi or LeftParen)`, false, true},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := arith.ParseString(test.input)
			require.EqualError(t, err, test.err)
			require.Equal(t, test.eof, errors.Is(err, arith.ErrUnexpectedEOF))
			require.Equal(t, test.prim, errors.Is(err, arith.ErrNoPrimary))
			var perr arith.Error
			require.True(t, errors.As(err, &perr))
		})
	}
}

func TestUnexpectedTokenFields(t *testing.T) {
	_, err := arith.Parse([]lexer.Token{tok(lexer.Number, "1"), tok(lexer.Number, "2")})
	var uerr *arith.UnexpectedTokenError
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, tok(lexer.Number, "2"), uerr.Unexpected)
	require.Equal(t, []lexer.Kind{lexer.EOF}, uerr.Expected)
	require.Equal(t, lexer.Position{}, uerr.Position())
	require.EqualError(t, err, `unexpected token "2" (expected EOF)`)
}

func TestEmptyInput(t *testing.T) {
	_, err := arith.Parse(nil)
	require.IsError(t, err, arith.ErrUnexpectedEOF)
	require.EqualError(t, err, "unexpected end of input (expected Number or Pi or LeftParen)")

	_, err = arith.Parse([]lexer.Token{tok(lexer.Whitespace, " ")})
	require.IsError(t, err, arith.ErrUnexpectedEOF)
}

func TestInvalidNumber(t *testing.T) {
	_, err := arith.Parse([]lexer.Token{
		{Kind: lexer.Number, Value: "1.2.3", Pos: lexer.Position{Line: 1, Column: 1}},
	})
	require.EqualError(t, err, `1:1: invalid number "1.2.3": strconv.ParseFloat: parsing "1.2.3": invalid syntax`)
	var nerr *strconv.NumError
	require.True(t, errors.As(err, &nerr))
}

func TestTokenizeErrorIsReturned(t *testing.T) {
	_, err := arith.ParseString("2 ^ 3")
	require.Error(t, err)
	var uerr *arith.UnexpectedTokenError
	require.False(t, errors.As(err, &uerr))
}

func TestErrorWrap(t *testing.T) {
	expected := errors.New("badbad")
	err := arith.Wrapf(lexer.Position{Line: 1, Column: 1}, expected, "bad: %s", "thing")
	require.Equal(t, expected, errors.Unwrap(err))
	require.Equal(t, "1:1: bad: thing: badbad", err.Error())

	inner := arith.Errorf(lexer.Position{Line: 2, Column: 3}, "inner")
	err = arith.Wrapf(lexer.Position{Line: 1, Column: 1}, inner, "outer")
	require.Equal(t, "2:3: outer: inner", err.Error())
	require.Equal(t, lexer.Position{Line: 2, Column: 3}, err.Position())
}

func TestZeroTokenIsNotEndOfInput(t *testing.T) {
	_, err := arith.Parse([]lexer.Token{
		tok(lexer.Number, "1"),
		{},
		tok(lexer.Number, "2"),
		tok(lexer.Plus, "+"),
	})
	require.EqualError(t, err, `unexpected token "" (expected EOF)`)
	require.False(t, errors.Is(err, arith.ErrUnexpectedEOF))

	_, err = arith.Parse([]lexer.Token{{}, tok(lexer.Number, "2")})
	require.IsError(t, err, arith.ErrNoPrimary)
	require.False(t, errors.Is(err, arith.ErrUnexpectedEOF))
}

func TestMaxDepth(t *testing.T) {
	_, err := arith.ParseString(strings.Repeat("(", 100_000))
	require.IsError(t, err, arith.ErrMaxDepth)
	require.EqualError(t, err, "1:1001: maximum nesting depth exceeded (limit 1000)")

	input := strings.Repeat("(", arith.DefaultMaxDepth) + "1" + strings.Repeat(")", arith.DefaultMaxDepth)
	expr, err := arith.ParseString(input)
	require.NoError(t, err)
	require.Equal(t, 1.0, expr.Evaluate())

	_, err = arith.ParseString("((1))", arith.MaxDepth(2))
	require.NoError(t, err)
	_, err = arith.ParseString("sin((1))", arith.MaxDepth(2))
	require.NoError(t, err)
	_, err = arith.ParseString("-(sin((1)))", arith.MaxDepth(2))
	require.EqualError(t, err, "1:7: maximum nesting depth exceeded (limit 2)")
	var perr arith.Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, lexer.Position{Offset: 6, Line: 1, Column: 7}, perr.Position())

	_, err = arith.ParseString("(1) + (2) + ((3))", arith.MaxDepth(2))
	require.NoError(t, err, "siblings should not accumulate depth")

	_, err = arith.ParseString("1", arith.MaxDepth(0))
	require.EqualError(t, err, "max depth must be at least 1, not 0")
}
