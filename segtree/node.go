// Package segtree implements the augmented segment tree that is the heart
// of the sweep engine: a balanced binary tree over the sorted unique
// Y-coordinates of the input geometry, with a per-node per-layer coverage
// status that supports lazy tagged insert/remove and frontier queries.
//
// A node's status for a layer is one of Empty, Partial or Full. Full at an
// internal node means the entire range is covered and its children's
// stored status for that layer is stale — a tombstone, re-expanded lazily
// the next time an update reaches them. This mirrors the lazy-propagation
// idiom the teacher's contour/region builders use for their own per-span
// state (stored compactly, reconciled on the way back up the recursion),
// adapted here to a two-layer coverage status instead of a height field.
package segtree

import (
	"sort"

	"github.com/arl/assertgo"
	"github.com/vlsi-tools/layerarith/geom"
)

// Status is the coverage state of a node for one layer.
type Status int

const (
	Empty Status = iota
	Partial
	Full
)

func (s Status) String() string {
	switch s {
	case Empty:
		return "empty"
	case Partial:
		return "partial"
	case Full:
		return "full"
	}
	return "invalid"
}

// Node is one node of the segment tree. Leaves have both children nil and a
// status that is never Partial.
type Node struct {
	SegB, SegE, SegM int
	Left, Right      *Node
	PolyStat         Status
	DiffStat         Status
}

func (n *Node) isLeaf() bool { return n.Left == nil && n.Right == nil }

// statusPtr returns a pointer to the status field for layer.
func (n *Node) statusPtr(layer string) *Status {
	switch layer {
	case geom.Polysilicon:
		return &n.PolyStat
	case geom.Diffusion:
		return &n.DiffStat
	default:
		panic("segtree: unknown layer " + layer)
	}
}

// Build constructs a segment tree over the given Y-coordinates. Duplicates
// are allowed and discarded; the coordinates are sorted ascending. Fewer
// than two distinct values yield a nil (empty) tree: there is no segment to
// represent.
func Build(ys []int) *Node {
	uniq := dedupeSorted(ys)
	if len(uniq) < 2 {
		return nil
	}
	return build(uniq)
}

func dedupeSorted(ys []int) []int {
	cp := append([]int(nil), ys...)
	sort.Ints(cp)
	out := cp[:0]
	for i, y := range cp {
		if i == 0 || y != out[len(out)-1] {
			out = append(out, y)
		}
	}
	return out
}

// build recurses over a sorted, deduped slice of at least two Y values.
func build(ys []int) *Node {
	k := len(ys)
	assert.True(k >= 2, "segtree: build: need at least 2 Y-values, got %d", k)

	m := (k - 1) / 2
	n := &Node{
		SegB:     ys[0],
		SegE:     ys[k-1],
		SegM:     ys[m],
		PolyStat: Empty,
		DiffStat: Empty,
	}
	if k > 2 {
		n.Left = build(ys[:m+1])
		n.Right = build(ys[m:])
	}
	return n
}
