package arith

// A Visitor is called for each node by Walk.
//
// Calling next descends into the node's children; a Visitor that does not call it prunes
// the subtree.
type Visitor func(e Expression, next func() error) error

// Walk the tree rooted at e in pre-order, stopping at the first error.
func Walk(e Expression, visitor Visitor) error {
	return visitor(e, func() error {
		for _, child := range e.Children() {
			if err := Walk(child, visitor); err != nil {
				return err
			}
		}
		return nil
	})
}

// NodeCount returns the number of nodes in the tree.
func NodeCount(e Expression) int {
	count := 0
	_ = Walk(e, func(e Expression, next func() error) error {
		count++
		return next()
	})
	return count
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func Depth(e Expression) int {
	depth, deepest := 0, 0
	_ = Walk(e, func(e Expression, next func() error) error {
		depth++
		if depth > deepest {
			deepest = depth
		}
		err := next()
		depth--
		return err
	})
	return deepest
}
