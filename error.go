package arith

import (
	"errors"
	"fmt"
	"strings"

	"github.com/treeviz/arith/lexer"
)

var (
	// ErrUnexpectedEOF is matched by errors.Is when the token stream ran out before the
	// grammar was satisfied.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrNoPrimary is matched by errors.Is when a token starts none of the primary
	// productions (number, "pi" or "(").
	ErrNoPrimary = errors.New("no primary expression")
	// ErrMaxDepth is matched by errors.Is when parentheses are nested deeper than the
	// parser allows.
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")
)

// Error represents an error while parsing.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() lexer.Position
}

// FormatError formats an error in the form "[<line>:<column>: ]<message>".
func FormatError(pos lexer.Position, message string) string {
	if !pos.IsValid() {
		return message
	}
	return pos.String() + ": " + message
}

// UnexpectedTokenError is returned by Parse when an unexpected token is encountered.
//
// Unexpected is the EOF token when the stream ended early.
type UnexpectedTokenError struct {
	Unexpected lexer.Token
	Expected   []lexer.Kind
	// Rule is the grammar rule that failed to match.
	Rule string
}

func (u *UnexpectedTokenError) Error() string {
	return FormatError(u.Unexpected.Pos, u.Message())
}

func (u *UnexpectedTokenError) Message() string { // nolint: golint
	var expected string
	if len(u.Expected) > 0 {
		names := make([]string, 0, len(u.Expected))
		for _, k := range u.Expected {
			names = append(names, k.String())
		}
		expected = fmt.Sprintf(" (expected %s)", strings.Join(names, " or "))
	}
	if u.Unexpected.EOF() {
		return "unexpected end of input" + expected
	}
	return fmt.Sprintf("unexpected token %q%s", u.Unexpected.Value, expected)
}

func (u *UnexpectedTokenError) Position() lexer.Position { return u.Unexpected.Pos } // nolint: golint

// Is supports errors.Is(err, ErrUnexpectedEOF) and errors.Is(err, ErrNoPrimary).
func (u *UnexpectedTokenError) Is(target error) bool {
	switch target {
	case ErrUnexpectedEOF:
		return u.Unexpected.EOF()
	case ErrNoPrimary:
		return u.Rule == rulePrimary
	}
	return false
}

type parseError struct {
	Msg string
	Pos lexer.Position
	Err error
}

func (p *parseError) Error() string            { return FormatError(p.Pos, p.Msg) }
func (p *parseError) Message() string          { return p.Msg }
func (p *parseError) Position() lexer.Position { return p.Pos }
func (p *parseError) Unwrap() error            { return p.Err }

// Errorf creates a new Error at the given position.
func Errorf(pos lexer.Position, format string, args ...interface{}) Error {
	return &parseError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// Wrapf attempts to wrap an existing error in a new message.
//
// If "err" is an Error, its positional information will be used and
// "pos" will be ignored.
//
// The returned error implements the Unwrap() method supported by the errors package.
func Wrapf(pos lexer.Position, err error, format string, args ...interface{}) Error {
	var msg string
	if perr, ok := err.(Error); ok {
		pos = perr.Position()
		msg = fmt.Sprintf("%s: %s", fmt.Sprintf(format, args...), perr.Message())
	} else {
		msg = fmt.Sprintf("%s: %s", fmt.Sprintf(format, args...), err.Error())
	}
	return &parseError{Msg: msg, Pos: pos, Err: err}
}
