package arith

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/treeviz/arith/lexer"
)

// Grammar rule names, as reported by UnexpectedTokenError.Rule and the trace.
const (
	ruleExpression = "expression"
	ruleTerm       = "term"
	ruleFactor     = "factor"
	ruleFunction   = "function"
	rulePrimary    = "primary"
	ruleGroup      = "group"
	ruleEnd        = "end"
)

// DefaultMaxDepth is the parenthesis nesting limit used when MaxDepth is not given.
const DefaultMaxDepth = 1000

// A parser owns the cursor for a single Parse call.
type parser struct {
	lex      *lexer.PeekingLexer
	elide    []lexer.Kind
	trace    io.Writer
	indent   int
	depth    int
	maxDepth int
}

// Parse tokens into an Expression.
//
// Whitespace tokens are skipped. Parsing stops at the first error; no partial tree is
// returned. All tokens must be consumed by the grammar. Groups and function arguments
// nested deeper than DefaultMaxDepth (see MaxDepth) are rejected with ErrMaxDepth.
func Parse(tokens []lexer.Token, options ...Option) (Expression, error) {
	p := &parser{maxDepth: DefaultMaxDepth}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	p.lex = lexer.Upgrade(tokens, p.elide...)
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if tok := p.lex.Peek(); !tok.EOF() {
		return nil, &UnexpectedTokenError{Unexpected: tok, Expected: []lexer.Kind{lexer.EOF}, Rule: ruleEnd}
	}
	return expr, nil
}

// ParseString tokenizes input with lexer.Tokenize and parses the result.
func ParseString(input string, options ...Option) (Expression, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens, options...)
}

// expression := term (('+' | '-') term)*
func (p *parser) expression() (Expression, error) {
	defer p.enter(ruleExpression)()
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.peekIs(lexer.Plus, lexer.Minus) {
		op := p.lex.Next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		if left, err = NewBinary(op, left, right); err != nil {
			return nil, err
		}
	}
	return left, nil
}

// term := factor (('*' | '/') factor)*
func (p *parser) term() (Expression, error) {
	defer p.enter(ruleTerm)()
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.peekIs(lexer.Star, lexer.Slash) {
		op := p.lex.Next()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		if left, err = NewBinary(op, left, right); err != nil {
			return nil, err
		}
	}
	return left, nil
}

// factor := ('+' | '-') function | function
func (p *parser) factor() (Expression, error) {
	defer p.enter(ruleFactor)()
	if !p.peekIs(lexer.Plus, lexer.Minus) {
		return p.function()
	}
	op := p.lex.Next()
	operand, err := p.function()
	if err != nil {
		return nil, err
	}
	return NewUnary(op, operand)
}

// function := ('sin' | 'cos' | 'tan') '(' expression ')' | primary
func (p *parser) function() (Expression, error) {
	defer p.enter(ruleFunction)()
	if !p.peekIs(lexer.Sin, lexer.Cos, lexer.Tan) {
		return p.primary()
	}
	fn := p.lex.Next()
	arg, err := p.parenthesised(ruleFunction)
	if err != nil {
		return nil, err
	}
	return NewFunction(fn, arg)
}

// primary := number | 'pi' | '(' expression ')'
func (p *parser) primary() (Expression, error) {
	defer p.enter(rulePrimary)()
	tok := p.lex.Peek()
	switch tok.Kind {
	case lexer.Number:
		p.lex.Next()
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, Wrapf(tok.Pos, err, "invalid number %q", tok.Value)
		}
		return NewLiteral(v), nil

	case lexer.Pi:
		p.lex.Next()
		return NewLiteral(math.Pi), nil

	case lexer.LeftParen:
		return p.parenthesised(ruleGroup)

	default:
		return nil, &UnexpectedTokenError{
			Unexpected: tok,
			Expected:   []lexer.Kind{lexer.Number, lexer.Pi, lexer.LeftParen},
			Rule:       rulePrimary,
		}
	}
}

// parenthesised parses '(' expression ')'.
func (p *parser) parenthesised(rule string) (Expression, error) {
	open, err := p.consume(rule, lexer.LeftParen)
	if err != nil {
		return nil, err
	}
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return nil, &parseError{
			Msg: fmt.Sprintf("%s (limit %d)", ErrMaxDepth, p.maxDepth),
			Pos: open.Pos,
			Err: ErrMaxDepth,
		}
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(rule, lexer.RightParen); err != nil {
		return nil, err
	}
	return expr, nil
}

// consume the next token, which must be of the given kind.
func (p *parser) consume(rule string, kind lexer.Kind) (lexer.Token, error) {
	tok := p.lex.Peek()
	if tok.Kind != kind {
		return tok, &UnexpectedTokenError{Unexpected: tok, Expected: []lexer.Kind{kind}, Rule: rule}
	}
	return p.lex.Next(), nil
}

func (p *parser) peekIs(kinds ...lexer.Kind) bool {
	next := p.lex.Peek().Kind
	for _, k := range kinds {
		if next == k {
			return true
		}
	}
	return false
}
