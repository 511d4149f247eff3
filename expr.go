package arith

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/treeviz/arith/lexer"
)

var errMissingOperand = errors.New("missing operand")

// UnaryOp identifies a unary operation.
type UnaryOp int

const (
	OpPlus UnaryOp = iota
	OpNeg
)

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

// Func identifies a trigonometric function. Arguments are in degrees.
type Func int

const (
	FuncSin Func = iota
	FuncCos
	FuncTan
)

var (
	unaryOps  = map[lexer.Kind]UnaryOp{lexer.Plus: OpPlus, lexer.Minus: OpNeg}
	binaryOps = map[lexer.Kind]BinaryOp{lexer.Plus: OpAdd, lexer.Minus: OpSub, lexer.Star: OpMul, lexer.Slash: OpDiv}
	funcs     = map[lexer.Kind]Func{lexer.Sin: FuncSin, lexer.Cos: FuncCos, lexer.Tan: FuncTan}

	unaryOpSymbols  = map[UnaryOp]string{OpPlus: "+", OpNeg: "-"}
	binaryOpSymbols = map[BinaryOp]string{OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/"}
	funcNames       = map[Func]string{FuncSin: "sin", FuncCos: "cos", FuncTan: "tan"}
)

func (o UnaryOp) String() string { return unaryOpSymbols[o] }
func (o BinaryOp) String() string { return binaryOpSymbols[o] }
func (f Func) String() string { return funcNames[f] }

// Literal is a numeric leaf.
type Literal struct {
	value float64
}

// NewLiteral creates a leaf holding v.
func NewLiteral(v float64) *Literal { return &Literal{value: v} }

// Value held by the literal, before Clean.
func (l *Literal) Value() float64 { return l.value }
func (l *Literal) Evaluate() float64 { return Clean(l.value) }
func (l *Literal) Children() []Expression { return nil }
func (l *Literal) Name() string { return strconv.FormatFloat(l.value, 'g', -1, 64) }
func (l *Literal) expression() {}

// Unary applies "+" or "-" to a single operand.
type Unary struct {
	token   lexer.Token
	op      UnaryOp
	operand Expression
}

// NewUnary creates a unary node. The token must be Plus or Minus.
func NewUnary(op lexer.Token, operand Expression) (*Unary, error) {
	o, ok := unaryOps[op.Kind]
	if !ok {
		return nil, Errorf(op.Pos, "%s is not a unary operator", op.Kind)
	}
	if operand == nil {
		return nil, Wrapf(op.Pos, errMissingOperand, "unary %s", o)
	}
	return &Unary{token: op, op: o, operand: operand}, nil
}

func (u *Unary) Op() UnaryOp { return u.op }
func (u *Unary) Token() lexer.Token { return u.token }
func (u *Unary) Operand() Expression { return u.operand }
func (u *Unary) Children() []Expression { return []Expression{u.operand} }
func (u *Unary) Name() string { return lexeme(u.token, u.op.String()) }
func (u *Unary) expression() {}

func (u *Unary) Evaluate() float64 {
	x := u.operand.Evaluate()
	switch u.op {
	case OpPlus:
		return Clean(x)
	case OpNeg:
		return Clean(-x)
	}
	panic(fmt.Sprintf("arith: unsupported unary operator %d", u.op))
}

// Binary applies an arithmetic operator to two operands.
type Binary struct {
	token       lexer.Token
	op          BinaryOp
	left, right Expression
}

// NewBinary creates a binary node. The token must be Plus, Minus, Star or Slash.
func NewBinary(op lexer.Token, left, right Expression) (*Binary, error) {
	o, ok := binaryOps[op.Kind]
	if !ok {
		return nil, Errorf(op.Pos, "%s is not a binary operator", op.Kind)
	}
	if left == nil || right == nil {
		return nil, Wrapf(op.Pos, errMissingOperand, "binary %s", o)
	}
	return &Binary{token: op, op: o, left: left, right: right}, nil
}

func (b *Binary) Op() BinaryOp { return b.op }
func (b *Binary) Token() lexer.Token { return b.token }
func (b *Binary) Left() Expression { return b.left }
func (b *Binary) Right() Expression { return b.right }
func (b *Binary) Children() []Expression { return []Expression{b.left, b.right} }
func (b *Binary) Name() string { return lexeme(b.token, b.op.String()) }
func (b *Binary) expression() {}

// Evaluate follows IEEE-754: division by zero yields an infinity or NaN.
func (b *Binary) Evaluate() float64 {
	l, r := b.left.Evaluate(), b.right.Evaluate()
	switch b.op {
	case OpAdd:
		return Clean(l + r)
	case OpSub:
		return Clean(l - r)
	case OpMul:
		return Clean(l * r)
	case OpDiv:
		return Clean(l / r)
	}
	panic(fmt.Sprintf("arith: unsupported binary operator %d", b.op))
}

// Function applies a trigonometric function to an argument in degrees.
type Function struct {
	token lexer.Token
	fn    Func
	arg   Expression
}

// NewFunction creates a function node. The token must be Sin, Cos or Tan.
func NewFunction(fn lexer.Token, arg Expression) (*Function, error) {
	f, ok := funcs[fn.Kind]
	if !ok {
		return nil, Errorf(fn.Pos, "%s is not a function", fn.Kind)
	}
	if arg == nil {
		return nil, Wrapf(fn.Pos, errMissingOperand, "%s", f)
	}
	return &Function{token: fn, fn: f, arg: arg}, nil
}

func (f *Function) Func() Func { return f.fn }
func (f *Function) Token() lexer.Token { return f.token }
func (f *Function) Arg() Expression { return f.arg }
func (f *Function) Children() []Expression { return []Expression{f.arg} }
func (f *Function) Name() string { return lexeme(f.token, f.fn.String()) }
func (f *Function) expression() {}

func (f *Function) Evaluate() float64 {
	radians := f.arg.Evaluate() * math.Pi / 180
	switch f.fn {
	case FuncSin:
		return Clean(math.Sin(radians))
	case FuncCos:
		return Clean(math.Cos(radians))
	case FuncTan:
		return Clean(math.Tan(radians))
	}
	panic(fmt.Sprintf("arith: unsupported function %d", f.fn))
}

func lexeme(t lexer.Token, fallback string) string {
	if t.Value == "" {
		return fallback
	}
	return t.Value
}
