// Package contour turns the vertical edges a sweep produces for one derived
// layer back into closed rectilinear polygons. It builds a point-keyed
// successor map — every vertex maps to exactly one next vertex along its
// polygon's boundary — and walks it until the map is drained.
package contour

import (
	"sort"

	"github.com/arl/assertgo"
	"github.com/vlsi-tools/layerarith/geom"
	"github.com/vlsi-tools/layerarith/tracelog"
)

// Reconstruct derives horizontal connectors for edges, builds the
// successor map and extracts every closed loop as a polygon tagged layer.
func Reconstruct(layer string, edges []geom.VEdge, log *tracelog.Context) []geom.Polygon {
	log.StartTimer(tracelog.PhaseReconstruct)
	defer log.StopTimer(tracelog.PhaseReconstruct)

	edges = geom.CancelOpposingEdges(edges)
	if len(edges) == 0 {
		return nil
	}

	succ := make(map[geom.Point]geom.Point, len(edges)*2)
	for _, e := range edges {
		tail := geom.Point{X: e.X, Y: e.Y0}
		head := geom.Point{X: e.X, Y: e.Y1}
		succ[tail] = head
	}
	for _, hp := range horizontalConnectors(edges) {
		succ[hp.from] = hp.to
	}

	adj := newAdjacency(succ)

	var polys []geom.Polygon
	for !adj.empty() {
		start := adj.records[adj.head].from
		var pts []geom.Point
		cur := start
		for {
			pts = append(pts, cur)
			h, ok := adj.index[cur]
			assert.True(ok, "contour: dangling successor at %v", cur)
			next := adj.records[h].to
			adj.unlink(h)
			if next == start {
				break
			}
			cur = next
		}
		polys = append(polys, geom.Polygon{Layer: layer, Points: pts})
	}
	log.Progressf("contour: reconstructed %d %s polygon(s)", len(polys), layer)
	return polys
}

type connector struct{ from, to geom.Point }

// horizontalConnectors pairs the "open" endpoint of one vertical edge (its
// Y1, which still needs an outgoing successor) with the "close" endpoint of
// another sharing the same Y (its Y0, the natural destination of a
// boundary-following horizontal move), sorted by X so that parallel
// vertical edges at the same row connect to their nearest partner in turn.
func horizontalConnectors(edges []geom.VEdge) []connector {
	opens := make(map[int][]int)
	closes := make(map[int][]int)
	for _, e := range edges {
		opens[e.Y1] = append(opens[e.Y1], e.X)
		closes[e.Y0] = append(closes[e.Y0], e.X)
	}

	var out []connector
	for y, xs := range opens {
		targets := closes[y]
		assert.True(len(xs) == len(targets), "contour: unbalanced open/close count at y=%d (%d opens, %d closes)", y, len(xs), len(targets))
		sorted := append([]int(nil), xs...)
		sortedTargets := append([]int(nil), targets...)
		sort.Ints(sorted)
		sort.Ints(sortedTargets)
		for i := range sorted {
			out = append(out, connector{
				from: geom.Point{X: sorted[i], Y: y},
				to:   geom.Point{X: sortedTargets[i], Y: y},
			})
		}
	}
	return out
}
