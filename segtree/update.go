package segtree

import "github.com/vlsi-tools/layerarith/geom"

var bothLayers = [2]string{geom.Polysilicon, geom.Diffusion}

// updateNode recomputes n's status for layer from its children, on the way
// back up from an Insert or Remove of that layer. It tombstones both
// children to Empty whenever they were both Full, since the parent now
// absorbs that fullness.
//
// It only ever touches the layer the calling Insert/Remove is operating on.
// A node can be sitting on a recursion path for one layer while holding an
// unrelated, already-settled Full status for the other layer (the diffusion
// rectangle fully covers a node while a polysilicon rectangle only crosses
// part of its range, below it) — recomputing both layers unconditionally on
// every call would demote that untouched Full status the moment recursion
// merely passes through the node for the other layer.
func updateNode(n *Node, layer string) {
	if n.isLeaf() {
		return
	}
	l := n.Left.statusPtr(layer)
	r := n.Right.statusPtr(layer)
	switch {
	case *l == Full && *r == Full:
		*n.statusPtr(layer) = Full
		*l, *r = Empty, Empty
	case *l == Empty && *r == Empty:
		*n.statusPtr(layer) = Empty
	default:
		*n.statusPtr(layer) = Partial
	}
}
