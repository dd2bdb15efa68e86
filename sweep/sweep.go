// Package sweep drives the plane sweep along x that turns a polygon list
// into two sets of vertical output edges: the intersection of the two input
// layers and the portion of diffusion not covered by polysilicon. It owns
// the segment tree for the sweep's lifetime and discards it once the last
// edge has been processed.
package sweep

import (
	"github.com/vlsi-tools/layerarith/geom"
	"github.com/vlsi-tools/layerarith/segtree"
	"github.com/vlsi-tools/layerarith/tracelog"
)

// Result holds the vertical edges produced by a sweep, one set per derived
// layer. Neither set is itself a closed polygon; that is the contour
// reconstructor's job.
type Result struct {
	Intersection  []geom.VEdge
	PureDiffusion []geom.VEdge
}

// Run sweeps polys and returns the derived vertical edges. Polygons on any
// layer other than polysilicon or diffusion are logged and skipped: they
// carry no meaning to this engine.
func Run(polys []geom.Polygon, log *tracelog.Context) Result {
	polys = knownLayersOnly(polys, log)

	log.StartTimer(tracelog.PhaseBuildTree)
	root := segtree.Build(geom.YCoordinates(polys))
	log.StopTimer(tracelog.PhaseBuildTree)

	log.StartTimer(tracelog.PhaseSweep)
	defer log.StopTimer(tracelog.PhaseSweep)

	var res Result
	for _, e := range geom.VerticalEdges(polys) {
		nlayer := geom.OtherLayer(e.Layer)
		lo, hi := e.Lo(), e.Hi()
		opening := e.Opening()

		if opening {
			segtree.Insert(root, lo, hi, e.Layer)
		}

		var interBounds, pdBounds []int
		for _, f := range segtree.FindNodes(root, lo, hi) {
			interBounds = append(interBounds, segtree.Intersection(f.Node, f.PolyStat, f.DiffStat, nlayer)...)
			pdBounds = append(pdBounds, segtree.PureDiffusion(f.Node, f.PolyStat, f.DiffStat, nlayer)...)
		}

		inter := geom.MergeIntervals(interBounds)
		res.Intersection = append(res.Intersection, emit(e.X, geom.Polysilicon, inter, opening)...)

		pdOpening := opening
		if e.Layer == geom.Polysilicon {
			pdOpening = !pdOpening
		}
		pd := geom.MergeIntervals(pdBounds)
		res.PureDiffusion = append(res.PureDiffusion, emit(e.X, geom.Diffusion, pd, pdOpening)...)

		if !opening {
			segtree.Remove(root, lo, hi, e.Layer)
		}
	}
	log.Progressf("sweep: %d intersection edges, %d pure-diffusion edges", len(res.Intersection), len(res.PureDiffusion))
	return res
}

// knownLayersOnly filters out polygons on any layer the sweep does not
// understand, warning once per skipped polygon rather than failing the run:
// an unrecognised layer in the input is not malformed CIF, just irrelevant
// to this engine's two-layer algebra.
func knownLayersOnly(polys []geom.Polygon, log *tracelog.Context) []geom.Polygon {
	out := make([]geom.Polygon, 0, len(polys))
	for _, p := range polys {
		switch p.Layer {
		case geom.Polysilicon, geom.Diffusion:
			out = append(out, p)
		default:
			log.Warningf("sweep: ignoring polygon on unrecognised layer %q", p.Layer)
		}
	}
	return out
}

// emit produces one output edge per (a, b) pair in merged, oriented opening
// (y0 < y1) or closing (y0 > y1) as requested.
func emit(x int, layer string, merged []int, opening bool) []geom.VEdge {
	var out []geom.VEdge
	for i := 0; i+1 < len(merged); i += 2 {
		a, b := merged[i], merged[i+1]
		if opening {
			out = append(out, geom.VEdge{Layer: layer, X: x, Y0: a, Y1: b})
		} else {
			out = append(out, geom.VEdge{Layer: layer, X: x, Y0: b, Y1: a})
		}
	}
	return out
}
