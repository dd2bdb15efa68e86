package contour

import (
	"sort"

	"github.com/vlsi-tools/layerarith/geom"
)

const noHandle = -1

// edgeRecord is one point -> successor entry plus its position in the
// overlay's doubly linked traversal order.
type edgeRecord struct {
	from, to   geom.Point
	prev, next int
}

// adjacency is the point-keyed successor map plus a linked overlay over its
// records, so the next un-extracted starting vertex is always the current
// head and a visited vertex unlinks in O(1) without touching the map
// itself. The map owns the from/to data; the overlay is a weak index into
// it that traversal drains as it goes.
type adjacency struct {
	records []edgeRecord
	index   map[geom.Point]int
	head    int
}

// newAdjacency builds the overlay in ascending (X, Y) order so that
// traversal order — and therefore output polygon order — is stable across
// runs regardless of Go's unspecified map iteration order.
func newAdjacency(succ map[geom.Point]geom.Point) *adjacency {
	keys := make([]geom.Point, 0, len(succ))
	for k := range succ {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })

	a := &adjacency{
		records: make([]edgeRecord, 0, len(keys)),
		index:   make(map[geom.Point]int, len(keys)),
		head:    noHandle,
	}
	prev := noHandle
	for _, k := range keys {
		h := len(a.records)
		a.records = append(a.records, edgeRecord{from: k, to: succ[k], prev: prev, next: noHandle})
		a.index[k] = h
		if prev == noHandle {
			a.head = h
		} else {
			a.records[prev].next = h
		}
		prev = h
	}
	return a
}

func (a *adjacency) empty() bool { return a.head == noHandle }

// unlink removes handle h from the traversal overlay in O(1). The record
// itself is left untouched so callers can still read its successor.
func (a *adjacency) unlink(h int) {
	r := a.records[h]
	if r.prev == noHandle {
		a.head = r.next
	} else {
		a.records[r.prev].next = r.next
	}
	if r.next != noHandle {
		a.records[r.next].prev = r.prev
	}
}

func less(a, b geom.Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
