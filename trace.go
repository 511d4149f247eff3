package arith

import (
	"fmt"
	"io"
	"strings"
)

// Trace the parse to "w".
//
// One line is written for each grammar rule entered, indented by nesting depth and showing
// the lookahead token.
func Trace(w io.Writer) Option {
	return func(p *parser) error {
		p.trace = w
		return nil
	}
}

// enter a grammar rule. The returned func must be called on exit.
func (p *parser) enter(rule string) func() {
	if p.trace == nil {
		return func() {}
	}
	fmt.Fprintf(p.trace, "%s%q %s\n", strings.Repeat(" ", p.indent), p.lex.Peek(), rule)
	p.indent += 2
	return func() { p.indent -= 2 }
}
