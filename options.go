package arith

import (
	"fmt"

	"github.com/treeviz/arith/lexer"
)

// An Option to modify the behaviour of Parse.
type Option func(p *parser) error

// Elide is an Option that skips tokens of the given kinds, in addition to Whitespace.
func Elide(kinds ...lexer.Kind) Option {
	return func(p *parser) error {
		p.elide = append(p.elide, kinds...)
		return nil
	}
}

// MaxDepth is an Option that limits how deeply groups and function arguments may nest.
//
// The default is DefaultMaxDepth.
func MaxDepth(n int) Option {
	return func(p *parser) error {
		if n < 1 {
			return fmt.Errorf("max depth must be at least 1, not %d", n)
		}
		p.maxDepth = n
		return nil
	}
}
