package arith

// Expression is a node in the syntax tree produced by Parse.
//
// The set of implementations is closed: *Literal, *Unary, *Binary and *Function. Nodes are
// immutable once constructed.
type Expression interface {
	// Evaluate the expression. The result has been passed through Clean.
	Evaluate() float64
	// Children of the node in evaluation order. Leaves have none.
	Children() []Expression
	// Name labels the node when visualising the tree.
	Name() string
	String() string

	expression()
}
