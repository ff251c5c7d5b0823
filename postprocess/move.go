package postprocess

import (
	"github.com/kegliz/naqmap/geometry"
	"github.com/kegliz/naqmap/naop"
)

// decomposeMove splits one MOVE batch into up to four sub-batches —
// hOffset, vMove, hMove, vOffset — emitted in that order, skipping any
// leg every trajectory in the batch has zero length for.
//
// Collision avoidance queries geo's real static sites via
// NearestSite{Down,Up,Right,Left}(p, true), mirroring the grounding
// source's use of getNearestSite{Down,Up,Right,Left}(p, true): a
// trajectory needs an hOffset if the nearest site strictly below/above
// its start lies between its start and end row; the batch needs a
// shared vOffset if, for some trajectory, the nearest site strictly
// right/left of {start.x, end.y} lies between that trajectory's start
// and end column on its end row.
func decomposeMove(geo *geometry.Geometry, op naop.ShuttlingOperation) []naop.ShuttlingOperation {
	n := len(op.Start)
	if n == 0 {
		return nil
	}
	d := int64(geo.MinAtomDistance())
	if d == 0 {
		d = 1
	}

	vOffset := needsVOffset(geo, op)

	hOffsetStart := make([]geometry.Point, n)
	hOffsetEnd := make([]geometry.Point, n)
	vMoveStart := make([]geometry.Point, n)
	vMoveEnd := make([]geometry.Point, n)
	hMoveStart := make([]geometry.Point, n)
	hMoveEnd := make([]geometry.Point, n)
	vOffsetStart := make([]geometry.Point, n)
	vOffsetEnd := make([]geometry.Point, n)

	for i := range op.Start {
		start := op.Start[i]
		end := op.End[i]
		dx := end.X - start.X
		dy := end.Y - start.Y

		hOffsetStart[i] = start
		if needsHOffset(geo, start, end, dy) {
			sign := int64(1)
			if dx < 0 {
				sign = -1
			}
			start = geometry.Point{X: start.X + sign*d, Y: start.Y}
		}
		hOffsetEnd[i] = start

		mid := geometry.Point{X: start.X, Y: end.Y}
		if vOffset {
			if dy >= 0 {
				mid.Y -= d
			} else {
				mid.Y += d
			}
		}

		vMoveStart[i] = start
		if start.Y != mid.Y {
			start = mid
		}
		vMoveEnd[i] = start

		hMoveStart[i] = start
		if start.X != end.X {
			start = geometry.Point{X: end.X, Y: start.Y}
		}
		hMoveEnd[i] = start

		vOffsetStart[i] = start
		if start.Y != end.Y {
			start = geometry.Point{X: start.X, Y: end.Y}
		}
		vOffsetEnd[i] = start
	}

	var out []naop.ShuttlingOperation
	if s, e := filterNonTrivial(hOffsetStart, hOffsetEnd); len(s) > 0 {
		out = append(out, naop.ShuttlingOperation{ShuttlingKind: naop.Move, Start: s, End: e})
	}
	if s, e := filterNonTrivial(vMoveStart, vMoveEnd); len(s) > 0 {
		out = append(out, naop.ShuttlingOperation{ShuttlingKind: naop.Move, Start: s, End: e})
	}
	if s, e := filterNonTrivial(hMoveStart, hMoveEnd); len(s) > 0 {
		out = append(out, naop.ShuttlingOperation{ShuttlingKind: naop.Move, Start: s, End: e})
	}
	if s, e := filterNonTrivial(vOffsetStart, vOffsetEnd); len(s) > 0 {
		out = append(out, naop.ShuttlingOperation{ShuttlingKind: naop.Move, Start: s, End: e})
	}
	if len(out) == 0 {
		return []naop.ShuttlingOperation{op}
	}
	return out
}

// needsHOffset reports whether a trajectory's vertical leg (at
// constant x, from start.Y to end.Y) would cross a registered site
// strictly between the two rows.
func needsHOffset(geo *geometry.Geometry, start, end geometry.Point, dy int64) bool {
	switch {
	case dy > 0:
		s, err := geo.NearestSiteDown(start, true)
		return err == nil && s.Pos.Y < end.Y
	case dy < 0:
		s, err := geo.NearestSiteUp(start, true)
		return err == nil && s.Pos.Y > end.Y
	default:
		return false
	}
}

// needsVOffset reports whether any trajectory in the batch would, on
// its own end row, cross a registered site strictly between its
// original start column (before any hOffset shift) and its end column.
func needsVOffset(geo *geometry.Geometry, op naop.ShuttlingOperation) bool {
	for i := range op.Start {
		start, end := op.Start[i], op.End[i]
		dx := end.X - start.X
		mid := geometry.Point{X: start.X, Y: end.Y}
		switch {
		case dx > 0:
			s, err := geo.NearestSiteRight(mid, true)
			if err == nil && s.Pos.X < end.X {
				return true
			}
		case dx < 0:
			s, err := geo.NearestSiteLeft(mid, true)
			if err == nil && s.Pos.X > end.X {
				return true
			}
		}
	}
	return false
}

func filterNonTrivial(starts, ends []geometry.Point) ([]geometry.Point, []geometry.Point) {
	var s, e []geometry.Point
	for i := range starts {
		if starts[i] != ends[i] {
			s = append(s, starts[i])
			e = append(e, ends[i])
		}
	}
	return s, e
}
