package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rect(layer string, x0, y0, x1, y1 int) Polygon {
	return SortBoundaryPolygon(layer, x0, y0, x1, y1)
}

func TestSortBoundaryPolygon(t *testing.T) {
	p := rect(Diffusion, 10, 0, 0, 10)
	assert.Equal(t, []Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}, p.Points)
}

func TestOtherLayer(t *testing.T) {
	assert.Equal(t, Diffusion, OtherLayer(Polysilicon))
	assert.Equal(t, Polysilicon, OtherLayer(Diffusion))
	assert.Panics(t, func() { OtherLayer("metal1") })
}

func TestYCoordinates(t *testing.T) {
	p := rect(Diffusion, 0, 0, 10, 20)
	ys := YCoordinates([]Polygon{p})
	assert.ElementsMatch(t, []int{0, 20, 20, 0}, ys)
}

func TestVerticalEdgesFromRectangle(t *testing.T) {
	// (0,0) -> (0,10) -> (10,10) -> (10,0) -> close to (0,0)
	p := rect(Diffusion, 0, 0, 10, 10)
	edges := VerticalEdges([]Polygon{p})

	assert.Len(t, edges, 2)
	assert.Equal(t, VEdge{Layer: Diffusion, X: 0, Y0: 0, Y1: 10}, edges[0])
	assert.True(t, edges[0].Opening())
	assert.Equal(t, VEdge{Layer: Diffusion, X: 10, Y0: 10, Y1: 0}, edges[1])
	assert.False(t, edges[1].Opening())
	assert.Equal(t, 0, edges[1].Lo())
	assert.Equal(t, 10, edges[1].Hi())
}

func TestVerticalEdgesClosingBeforeOpeningAtSharedColumn(t *testing.T) {
	// polysilicon's opening edge and diffusion's closing edge both sit at
	// x=10 (the rectangles touch edge-to-edge); the closing one must sort
	// first regardless of which polygon was listed first, so the sweep
	// always treats the touch as non-overlapping.
	poly := rect(Polysilicon, 10, 0, 20, 10)
	diff := rect(Diffusion, 0, 0, 10, 10)
	edges := VerticalEdges([]Polygon{poly, diff})

	var atTen []VEdge
	for _, e := range edges {
		if e.X == 10 {
			atTen = append(atTen, e)
		}
	}
	assert.Len(t, atTen, 2)
	assert.Equal(t, Diffusion, atTen[0].Layer)
	assert.False(t, atTen[0].Opening())
	assert.Equal(t, Polysilicon, atTen[1].Layer)
	assert.True(t, atTen[1].Opening())
}

func TestMergeIntervalsCollapsesTouchingBoundaries(t *testing.T) {
	// [0,5] touching [5,10] merges into [0,10]; [20,25] stays separate.
	got := MergeIntervals([]int{0, 5, 5, 10, 20, 25})
	assert.Equal(t, []int{0, 10, 20, 25}, got)
}

func TestMergeIntervalsNoTouch(t *testing.T) {
	got := MergeIntervals([]int{0, 5, 10, 15})
	assert.Equal(t, []int{0, 5, 10, 15}, got)
}

func TestMergeIntervalsEmpty(t *testing.T) {
	assert.Nil(t, MergeIntervals(nil))
}

func TestMergeIntervalsOddPanics(t *testing.T) {
	assert.Panics(t, func() { MergeIntervals([]int{0, 5, 10}) })
}
