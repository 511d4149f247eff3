package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// DOT writes the tree rooted at root to w in GraphViz dot format.
func DOT[N Node[N]](w io.Writer, root N) error {
	b := bufio.NewWriter(w)
	fmt.Fprintln(b, "digraph expression {")
	fmt.Fprintln(b, "\tnode [shape=box];")
	id := 0
	var walk func(n N) int
	walk = func(n N) int {
		self := id
		id++
		label := n.Name()
		if v, ok := valueOf(n); ok {
			label += "\n" + strconv.FormatFloat(v, 'g', -1, 64)
		}
		fmt.Fprintf(b, "\tn%d [label=%s];\n", self, strconv.Quote(label))
		for _, child := range n.Children() {
			fmt.Fprintf(b, "\tn%d -> n%d;\n", self, walk(child))
		}
		return self
	}
	walk(root)
	fmt.Fprintln(b, "}")
	return b.Flush()
}
