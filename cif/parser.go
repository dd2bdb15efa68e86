// Package cif is the CIF (Caltech Intermediate Form) text adapter: it
// parses the accepted command subset into polygon records and writes
// polygon records back out in the fixed output shape.
package cif

import (
	"strconv"
	"strings"

	"github.com/vlsi-tools/layerarith/geom"
	"github.com/vlsi-tools/layerarith/status"
	"github.com/vlsi-tools/layerarith/tracelog"
)

// symbol is a DS-defined rectangle boundary, captured on its layer, waiting
// to be instantiated by one or more C commands.
type symbol struct {
	layer string
	rect  []geom.Point
}

// Parse reads CIF text and returns the polygons it defines in the order
// encountered: top-level P commands directly, and one polygon per C
// instantiation of a DS-defined symbol, transformed by its translation and
// mirror flags. Unrecognised commands are silently skipped, per the
// accepted grammar; a semicolon is an unconditional command terminator
// even inside what looks like padding around a P command's numbers.
func Parse(text string, log *tracelog.Context) ([]geom.Polygon, status.Status) {
	log.StartTimer(tracelog.PhaseParse)
	defer log.StopTimer(tracelog.PhaseParse)

	var polys []geom.Polygon
	symbols := make(map[int]symbol)

	var (
		currentLayer string
		inSymbol     bool
		symID        int
		symLayer     string
		symCaptured  bool
	)

	for _, raw := range strings.Split(text, ";") {
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "L":
			if len(fields) < 2 {
				continue
			}
			if inSymbol {
				symLayer = fields[1]
			} else {
				currentLayer = fields[1]
			}

		case "P":
			nums, ok := parseInts(fields[1:])
			if !ok || len(nums) < 6 || len(nums)%2 != 0 {
				return nil, status.Fail(status.MalformedCIF)
			}
			pts := pointsFrom(nums)
			if inSymbol {
				if symCaptured {
					log.Warningf("cif: DS %d: extra P command ignored", symID)
					continue
				}
				symbols[symID] = symbol{layer: symLayer, rect: pts}
				symCaptured = true
			} else {
				polys = append(polys, geom.Polygon{Layer: currentLayer, Points: pts})
			}

		case "DS":
			if len(fields) < 2 {
				return nil, status.Fail(status.MalformedCIF)
			}
			id, ok := parseInt(fields[1])
			if !ok {
				return nil, status.Fail(status.MalformedCIF)
			}
			inSymbol, symID, symLayer, symCaptured = true, id, currentLayer, false

		case "DF":
			if inSymbol && !symCaptured {
				return nil, status.Fail(status.MalformedCIF)
			}
			inSymbol = false

		case "C":
			p, ok := parseInstantiation(fields)
			if !ok {
				return nil, status.Fail(status.MalformedCIF)
			}
			sym, known := symbols[p.id]
			if !known {
				log.Warningf("cif: C %d: undefined symbol, ignoring", p.id)
				continue
			}
			polys = append(polys, geom.Polygon{
				Layer:  sym.layer,
				Points: transform(sym.rect, p.dx, p.dy, p.mirrorX, p.mirrorY),
			})

		case "E":
			log.Progressf("cif: parsed %d polygon(s)", len(polys))
			return polys, status.Success

		default:
			// any other command is well-formed but outside the accepted
			// subset; ignore it per the grammar.
		}
	}

	log.Progressf("cif: parsed %d polygon(s) (no trailing E)", len(polys))
	return polys, status.Success
}

type instantiation struct {
	id               int
	dx, dy           int
	mirrorX, mirrorY bool
}

func parseInstantiation(fields []string) (instantiation, bool) {
	if len(fields) < 2 {
		return instantiation{}, false
	}
	id, ok := parseInt(fields[1])
	if !ok {
		return instantiation{}, false
	}
	inst := instantiation{id: id}
	for i := 2; i < len(fields); i++ {
		switch fields[i] {
		case "T":
			if i+2 >= len(fields) {
				return instantiation{}, false
			}
			dx, okx := parseInt(fields[i+1])
			dy, oky := parseInt(fields[i+2])
			if !okx || !oky {
				return instantiation{}, false
			}
			inst.dx, inst.dy = dx, dy
			i += 2
		case "MX":
			inst.mirrorX = true
		case "MY":
			inst.mirrorY = true
		}
	}
	return inst, true
}

// transform applies the optional axis mirrors (about the origin) and then
// the translation to a symbol's stored rectangle, in that order, matching
// the CIF convention that C's modifiers compose mirror-then-translate.
func transform(rect []geom.Point, dx, dy int, mirrorX, mirrorY bool) []geom.Point {
	out := make([]geom.Point, len(rect))
	for i, p := range rect {
		x, y := p.X, p.Y
		if mirrorX {
			x = -x
		}
		if mirrorY {
			y = -y
		}
		out[i] = geom.Point{X: x + dx, Y: y + dy}
	}
	return out
}

func pointsFrom(nums []int) []geom.Point {
	pts := make([]geom.Point, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		pts = append(pts, geom.Point{X: nums[i], Y: nums[i+1]})
	}
	return pts
}

func parseInts(fields []string) ([]int, bool) {
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, ok := parseInt(f)
		if !ok {
			return nil, false
		}
		nums = append(nums, n)
	}
	return nums, true
}

func parseInt(f string) (int, bool) {
	n, err := strconv.Atoi(f)
	return n, err == nil
}
