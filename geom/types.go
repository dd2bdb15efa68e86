// Package geom holds the plain geometric records the sweep engine and the
// contour reconstructor operate on: points, rectilinear polygons, and the
// vertical/horizontal edges derived from them. All coordinates are integers;
// this engine has no notion of a fractional layout unit.
package geom

// Point is an integer coordinate pair.
type Point struct {
	X, Y int
}

// Polygon is a closed rectilinear loop on a single layer, traversed in one
// consistent orientation. Input rectangles have exactly four vertices;
// polygons produced by contour reconstruction may have more.
type Polygon struct {
	Layer  string
	Points []Point
}

// Layer name constants. Only these two are meaningful to the sweep; any
// other layer name is carried through geometry helpers but ignored by the
// segment tree and sweep engine.
const (
	Polysilicon = "polysilicon"
	Diffusion   = "diffusion"
)

// OtherLayer returns the layer that is not layer, for the two well-known
// layer names. It panics on any other input: the sweep engine never calls it
// with anything else, so receiving one would be a programming error upstream.
func OtherLayer(layer string) string {
	switch layer {
	case Polysilicon:
		return Diffusion
	case Diffusion:
		return Polysilicon
	default:
		panic("geom: OtherLayer: unknown layer " + layer)
	}
}
