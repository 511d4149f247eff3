package lexer

// PeekingLexer is a cursor over a token slice with single-token lookahead.
//
// Whitespace tokens, and any other kinds passed to Upgrade, are skipped.
type PeekingLexer struct {
	rawCursor int
	cursor    int
	eof       Token
	tokens    []Token
	elide     map[Kind]bool
}

// Upgrade a token slice to a PeekingLexer.
//
// "elide" is a slice of token kinds to elide from processing in addition to Whitespace.
func Upgrade(tokens []Token, elide ...Kind) *PeekingLexer {
	r := &PeekingLexer{
		tokens: tokens,
		elide:  make(map[Kind]bool, len(elide)+1),
	}
	r.elide[Whitespace] = true
	for _, k := range elide {
		r.elide[k] = true
	}
	r.eof = EOFToken(endOf(tokens))
	return r
}

// endOf returns the position just past the last token, if it is known.
func endOf(tokens []Token) Position {
	if len(tokens) == 0 {
		return Position{}
	}
	last := tokens[len(tokens)-1]
	if !last.Pos.IsValid() {
		return Position{}
	}
	return Position{
		Offset: last.Pos.Offset + len(last.Value),
		Line:   last.Pos.Line,
		Column: last.Pos.Column + len([]rune(last.Value)),
	}
}

// Cursor position in tokens, excluding elided tokens.
func (p *PeekingLexer) Cursor() int {
	return p.cursor
}

// RawCursor position in tokens, including elided tokens.
func (p *PeekingLexer) RawCursor() int {
	return p.rawCursor
}

// Next consumes and returns the next token.
//
// Once the stream is exhausted the EOF token is returned indefinitely.
func (p *PeekingLexer) Next() Token {
	for p.rawCursor < len(p.tokens) {
		t := p.tokens[p.rawCursor]
		p.rawCursor++
		if p.elide[t.Kind] {
			continue
		}
		p.cursor++
		return t
	}
	return p.eof
}

// Peek at the next token without consuming it.
func (p *PeekingLexer) Peek() Token {
	for i := p.rawCursor; i < len(p.tokens); i++ {
		t := p.tokens[i]
		if p.elide[t.Kind] {
			continue
		}
		return t
	}
	return p.eof
}

// Clone creates a clone of this PeekingLexer at its current token.
//
// The parent and clone are completely independent.
func (p *PeekingLexer) Clone() *PeekingLexer {
	clone := *p
	return &clone
}
