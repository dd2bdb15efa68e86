package geom

// SortBoundaryPolygon normalizes a four-corner rectangle (given as two
// opposite corners, in any order) to the canonical left-bottom,
// counter-clockwise form: (xmin,ymin), (xmin,ymax), (xmax,ymax), (xmax,ymin).
func SortBoundaryPolygon(layer string, x0, y0, x1, y1 int) Polygon {
	xmin, xmax := minInt(x0, x1), maxInt(x0, x1)
	ymin, ymax := minInt(y0, y1), maxInt(y0, y1)
	return Polygon{
		Layer: layer,
		Points: []Point{
			{X: xmin, Y: ymin},
			{X: xmin, Y: ymax},
			{X: xmax, Y: ymax},
			{X: xmax, Y: ymin},
		},
	}
}
