package render

import (
	"encoding/json"
	"io"
)

// Hierarchy is the JSON form of a tree, as consumed by d3.hierarchy.
type Hierarchy struct {
	Name     string       `json:"name"`
	Value    any          `json:"value,omitempty"`
	Children []*Hierarchy `json:"children,omitempty"`
}

// NewHierarchy converts the tree rooted at root.
func NewHierarchy[N Node[N]](root N) *Hierarchy {
	h := &Hierarchy{Name: root.Name()}
	if v, ok := valueOf(root); ok {
		h.Value = Value(v)
	}
	for _, child := range root.Children() {
		h.Children = append(h.Children, NewHierarchy(child))
	}
	return h
}

// JSON writes the tree rooted at root to w as indented JSON.
func JSON[N Node[N]](w io.Writer, root N) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewHierarchy(root))
}
