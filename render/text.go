package render

import (
	"bufio"
	"io"
	"strconv"
)

// Text writes the tree rooted at root to w as an indented outline.
//
//	+ = 14
//	├── 2 = 2
//	└── * = 12
//	    ├── 3 = 3
//	    └── 4 = 4
func Text[N Node[N]](w io.Writer, root N) error {
	b := bufio.NewWriter(w)
	line(b, root, "", "")
	return b.Flush()
}

func line[N Node[N]](b *bufio.Writer, n N, prefix, childPrefix string) {
	b.WriteString(prefix)
	b.WriteString(n.Name())
	if v, ok := valueOf(n); ok {
		b.WriteString(" = ")
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte('\n')
	children := n.Children()
	for i, child := range children {
		if i == len(children)-1 {
			line(b, child, childPrefix+"└── ", childPrefix+"    ")
		} else {
			line(b, child, childPrefix+"├── ", childPrefix+"│   ")
		}
	}
}
