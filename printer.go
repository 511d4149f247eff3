package arith

import "fmt"

// String methods reconstitute the expression, fully parenthesised.

func (l *Literal) String() string { return l.Name() }

func (u *Unary) String() string { return fmt.Sprintf("(%s%s)", u.op, u.operand) }

func (b *Binary) String() string { return fmt.Sprintf("(%s %s %s)", b.left, b.op, b.right) }

func (f *Function) String() string {
	if _, ok := f.arg.(*Binary); ok {
		return fmt.Sprintf("%s%s", f.fn, f.arg)
	}
	return fmt.Sprintf("%s(%s)", f.fn, f.arg)
}
