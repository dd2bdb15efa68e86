package cif

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vlsi-tools/layerarith/geom"
	"github.com/vlsi-tools/layerarith/status"
	"github.com/vlsi-tools/layerarith/tracelog"
)

// Write emits polys to w in the fixed output shape: a constant header, one
// L command per layer change, one P command per polygon, then DF and E.
// Polygons are written in the order given; callers that need byte-stable
// output across runs are responsible for having produced that order.
func Write(w io.Writer, polys []geom.Polygon, log *tracelog.Context) status.Status {
	log.StartTimer(tracelog.PhaseWrite)
	defer log.StopTimer(tracelog.PhaseWrite)

	var b strings.Builder
	b.WriteString("4 1000;\nDS 1;\n")

	lastLayer := ""
	for _, p := range polys {
		if p.Layer != lastLayer {
			fmt.Fprintf(&b, "L %s;\n", p.Layer)
			lastLayer = p.Layer
		}
		b.WriteString("P")
		for _, pt := range p.Points {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(pt.X))
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(pt.Y))
		}
		b.WriteString(";\n")
	}
	b.WriteString("DF;\nE\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		log.Errorf("cif: write failed: %v", err)
		return status.Fail(status.OutputUnavailable)
	}
	log.Progressf("cif: wrote %d polygon(s)", len(polys))
	return status.Success
}
