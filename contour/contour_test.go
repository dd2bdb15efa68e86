package contour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vlsi-tools/layerarith/geom"
	"github.com/vlsi-tools/layerarith/tracelog"
)

func TestReconstructEmptyInputYieldsNoPolygons(t *testing.T) {
	polys := Reconstruct(geom.Polysilicon, nil, tracelog.New(false))
	assert.Nil(t, polys)
}

func TestReconstructSingleRectangle(t *testing.T) {
	// the two vertical edges a full-overlap intersection produces: opening
	// at x=0 from (0,0) to (0,10), closing at x=10 from (10,10) to (10,0).
	edges := []geom.VEdge{
		{Layer: geom.Polysilicon, X: 0, Y0: 0, Y1: 10},
		{Layer: geom.Polysilicon, X: 10, Y0: 10, Y1: 0},
	}
	polys := Reconstruct(geom.Polysilicon, edges, tracelog.New(false))
	assert.Len(t, polys, 1)
	assert.Equal(t, geom.Polysilicon, polys[0].Layer)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}, polys[0].Points)
}

func TestReconstructCrossingGateIntersection(t *testing.T) {
	edges := []geom.VEdge{
		{Layer: geom.Polysilicon, X: 10, Y0: 0, Y1: 10},
		{Layer: geom.Polysilicon, X: 20, Y0: 10, Y1: 0},
	}
	polys := Reconstruct(geom.Polysilicon, edges, tracelog.New(false))
	assert.Len(t, polys, 1)
	assert.Equal(t, []geom.Point{{X: 10, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 0}}, polys[0].Points)
}

func TestReconstructCrossingGatePureDiffusionTwoRectangles(t *testing.T) {
	edges := []geom.VEdge{
		{Layer: geom.Diffusion, X: 0, Y0: 0, Y1: 10},
		{Layer: geom.Diffusion, X: 10, Y0: 10, Y1: 0},
		{Layer: geom.Diffusion, X: 20, Y0: 0, Y1: 10},
		{Layer: geom.Diffusion, X: 30, Y0: 10, Y1: 0},
	}
	polys := Reconstruct(geom.Diffusion, edges, tracelog.New(false))
	assert.Len(t, polys, 2)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}, polys[0].Points)
	assert.Equal(t, []geom.Point{{X: 20, Y: 0}, {X: 20, Y: 10}, {X: 30, Y: 10}, {X: 30, Y: 0}}, polys[1].Points)
}

func TestReconstructCancelsDegenerateZeroWidthColumn(t *testing.T) {
	// full-overlap pure diffusion: the region opens and immediately closes
	// again at x=0, since polysilicon is already present from the first
	// column. No polygon should come out of it.
	edges := []geom.VEdge{
		{Layer: geom.Diffusion, X: 0, Y0: 0, Y1: 10},
		{Layer: geom.Diffusion, X: 0, Y0: 10, Y1: 0},
	}
	polys := Reconstruct(geom.Diffusion, edges, tracelog.New(false))
	assert.Empty(t, polys)
}
