// Package render draws trees exposing a name and ordered children.
//
// It is independent of the arithmetic package: any N satisfying Node[N] can be rendered. If
// a node also implements Valuer its value is included where the format supports it.
package render

import (
	"math"
	"strconv"
)

// Node is a tree node that can be rendered.
type Node[N any] interface {
	Name() string
	Children() []N
}

// Valuer is implemented by nodes that carry a numeric value.
//
// Renderers call Evaluate once per node, so a node that evaluates its whole subtree makes
// a render cost proportional to nodes times depth.
type Valuer interface {
	Evaluate() float64
}

// Value returns v in a form encoding/json can marshal. Non-finite values, which JSON cannot
// represent, are returned as the strings "NaN", "+Inf" and "-Inf".
func Value(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}

func valueOf(n any) (float64, bool) {
	if v, ok := n.(Valuer); ok {
		return v.Evaluate(), true
	}
	return 0, false
}
