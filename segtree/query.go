package segtree

import "github.com/vlsi-tools/layerarith/geom"

// Frontier is one node of the deepest set of nodes whose ranges together
// tile a query range, tagged with the effective per-layer status seen along
// the path from the root: once a Full mark is crossed above a node, every
// node beneath it inherits Full regardless of its own tombstoned value.
type Frontier struct {
	Node     *Node
	PolyStat Status
	DiffStat Status
}

// effective resolves a node's own stored status against whatever status was
// inherited from its ancestors: an inherited Full always wins, since it
// means an ancestor's lazy mark covers this node entirely.
func effective(inherited, own Status) Status {
	if inherited == Full {
		return Full
	}
	return own
}

// FindNodes returns the frontier of nodes tiling [sb, se].
func FindNodes(n *Node, sb, se int) []Frontier {
	return findNodes(n, sb, se, Empty, Empty)
}

func findNodes(n *Node, sb, se int, inhPoly, inhDiff Status) []Frontier {
	if n == nil {
		return nil
	}
	effPoly := effective(inhPoly, n.PolyStat)
	effDiff := effective(inhDiff, n.DiffStat)

	if sb <= n.SegB && n.SegE <= se {
		return []Frontier{{Node: n, PolyStat: effPoly, DiffStat: effDiff}}
	}

	var out []Frontier
	if sb < n.SegM {
		out = append(out, findNodes(n.Left, sb, se, effPoly, effDiff)...)
	}
	if se > n.SegM {
		out = append(out, findNodes(n.Right, sb, se, effPoly, effDiff)...)
	}
	return out
}

// Intersection walks the subtree rooted at a frontier node and collects the
// Y-intervals where otherLayer's effective status is Full, recursing under
// Partial subranges. polyEff and diffEff are the frontier node's own
// effective status, as returned by FindNodes.
func Intersection(n *Node, polyEff, diffEff Status, otherLayer string) []int {
	var out []int
	collect(n, polyEff, diffEff, func(poly, diff Status) Status {
		if otherLayer == geom.Polysilicon {
			return poly
		}
		return diff
	}, Full, &out)
	return out
}

// PureDiffusion walks the subtree rooted at a frontier node and collects the
// Y-intervals contributing to the diffusion-minus-polysilicon region: when
// otherLayer is diffusion, that means ranges where diffusion is Full; when
// otherLayer is polysilicon, ranges where polysilicon is Empty. Both recurse
// under Partial subranges.
func PureDiffusion(n *Node, polyEff, diffEff Status, otherLayer string) []int {
	var out []int
	if otherLayer == geom.Diffusion {
		collect(n, polyEff, diffEff, func(poly, diff Status) Status { return diff }, Full, &out)
	} else {
		collect(n, polyEff, diffEff, func(poly, diff Status) Status { return poly }, Empty, &out)
	}
	return out
}

// collect recurses the subtree rooted at n, testing pick(effPoly, effDiff)
// at each node against want: a match contributes the node's range, Partial
// recurses into both children, and anything else contributes nothing.
func collect(n *Node, inhPoly, inhDiff Status, pick func(poly, diff Status) Status, want Status, out *[]int) {
	if n == nil {
		return
	}
	effPoly := effective(inhPoly, n.PolyStat)
	effDiff := effective(inhDiff, n.DiffStat)

	switch pick(effPoly, effDiff) {
	case want:
		*out = append(*out, n.SegB, n.SegE)
	case Partial:
		collect(n.Left, effPoly, effDiff, pick, want, out)
		collect(n.Right, effPoly, effDiff, pick, want, out)
	}
}
