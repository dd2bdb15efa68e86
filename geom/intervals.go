package geom

import "github.com/arl/assertgo"

// MergeIntervals consumes a flat sequence that alternates start, end, start,
// end, ... and collapses adjacent pairs whose boundaries touch exactly: if
// one interval's end equals the next interval's start, the two merge into
// one. This is not general interval union — it relies on the caller (a
// segment-tree content query) already returning a pre-ordered sequence whose
// boundaries coincide only at exact touch points, never overlap. Runs in
// O(n).
func MergeIntervals(bounds []int) []int {
	assert.True(len(bounds)%2 == 0, "geom: MergeIntervals: odd-length boundary sequence (%d)", len(bounds))
	if len(bounds) == 0 {
		return nil
	}

	merged := make([]int, 0, len(bounds))
	curStart, curEnd := bounds[0], bounds[1]
	for i := 2; i < len(bounds); i += 2 {
		s, e := bounds[i], bounds[i+1]
		if s == curEnd {
			curEnd = e
			continue
		}
		merged = append(merged, curStart, curEnd)
		curStart, curEnd = s, e
	}
	merged = append(merged, curStart, curEnd)
	return merged
}
