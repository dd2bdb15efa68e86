package geom

import "sort"

// VEdge is a vertical polygon boundary segment at a fixed X. The sign of
// Y1-Y0 is load-bearing: Y1 > Y0 means the edge opens an interval of layer
// presence as the sweep line crosses X (the polygon interior lies to the
// right); Y1 < Y0 means it closes one (the interior lies to the left). This
// orientation must be preserved end to end, from extraction through
// emission by the sweep engine to contour reconstruction.
type VEdge struct {
	Layer  string
	X      int
	Y0, Y1 int
}

// Opening reports whether e opens an interval of layer presence.
func (e VEdge) Opening() bool { return e.Y1 > e.Y0 }

// Lo and Hi return the Y-extent of e regardless of its orientation.
func (e VEdge) Lo() int { return minInt(e.Y0, e.Y1) }
func (e VEdge) Hi() int { return maxInt(e.Y0, e.Y1) }

// HEdge is a horizontal polygon boundary segment at a fixed Y, with an
// analogous direction encoding to VEdge: X1 > X0 is the forward direction
// used when walking a polygon's boundary counter-clockwise.
type HEdge struct {
	Layer  string
	Y      int
	X0, X1 int
}

// YCoordinates flattens the Y value of every vertex of every polygon into a
// single multiset, duplicates included. It seeds the segment tree build,
// which dedupes and sorts on its own.
func YCoordinates(polys []Polygon) []int {
	var ys []int
	for _, p := range polys {
		for _, v := range p.Points {
			ys = append(ys, v.Y)
		}
	}
	return ys
}

// VerticalEdges walks each polygon's boundary (closing the loop back to its
// first vertex) and emits one VEdge per consecutive vertex pair that shares
// an X coordinate. The result is sorted ascending by X; within a shared X,
// closing edges sort before opening ones regardless of input order, so a
// region that closes at the exact column another opens at (two polygons
// touching edge-to-edge) is always seen as non-overlapping by the sweep.
// Edges with the same X and the same opening/closing direction retain the
// relative order in which they were produced.
func VerticalEdges(polys []Polygon) []VEdge {
	var edges []VEdge
	for _, p := range polys {
		n := len(p.Points)
		for i := 0; i < n; i++ {
			a := p.Points[i]
			b := p.Points[(i+1)%n]
			if a.X == b.X {
				edges = append(edges, VEdge{Layer: p.Layer, X: a.X, Y0: a.Y, Y1: b.Y})
			}
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].X != edges[j].X {
			return edges[i].X < edges[j].X
		}
		return !edges[i].Opening() && edges[j].Opening()
	})
	return edges
}

// CancelOpposingEdges removes pairs of edges that share an X column and a
// Y-extent but carry opposite orientation. These arise when a derived
// region closes again at the very column it opened — a pure-diffusion
// region that is already covered by polysilicon from its first column, for
// instance — and would otherwise reconstruct into a degenerate zero-width
// polygon. Everything else passes through unchanged.
func CancelOpposingEdges(edges []VEdge) []VEdge {
	type key struct {
		x, lo, hi int
		opening   bool
	}
	pending := make(map[key][]int)
	keep := make([]bool, len(edges))
	for i := range edges {
		keep[i] = true
	}
	for i, e := range edges {
		opp := key{e.X, e.Lo(), e.Hi(), !e.Opening()}
		if q := pending[opp]; len(q) > 0 {
			j := q[len(q)-1]
			pending[opp] = q[:len(q)-1]
			keep[i] = false
			keep[j] = false
			continue
		}
		own := key{e.X, e.Lo(), e.Hi(), e.Opening()}
		pending[own] = append(pending[own], i)
	}
	out := make([]VEdge, 0, len(edges))
	for i, e := range edges {
		if keep[i] {
			out = append(out, e)
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
