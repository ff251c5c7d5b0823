package hwqubit

import "github.com/kegliz/naqmap/geometry"

// inHalfPlane reports whether candidate lies strictly in direction dir
// from origin.
func inHalfPlane(origin, candidate geometry.Point, dir geometry.Direction) bool {
	switch dir {
	case geometry.Left:
		return candidate.X < origin.X
	case geometry.Right:
		return candidate.X > origin.X
	case geometry.Up:
		return candidate.Y < origin.Y
	case geometry.Down:
		return candidate.Y > origin.Y
	}
	return false
}

type searchNode struct {
	idx    geometry.CoordIndex
	parent int // index into the nodes slice, or -1 for the root
}

// FindClosestFreeCoord runs a BFS over site neighbours restricted to
// the half-plane of direction dir starting from q's coordinate,
// skipping excluded coordinates, and returns the path of coordinates
// leading to the first free site found. Returns nil if no free site
// exists in that half-plane.
func (hq *HardwareQubits) FindClosestFreeCoord(q HwQubit, dir geometry.Direction, excluded map[geometry.CoordIndex]bool) []geometry.CoordIndex {
	start := hq.CoordIndex(q)
	origin := hq.geo.Site(start).Pos

	nodes := []searchNode{{idx: start, parent: -1}}
	visited := map[geometry.CoordIndex]int{start: 0}
	queue := []int{0}

	for len(queue) > 0 {
		curAt := queue[0]
		queue = queue[1:]
		cur := nodes[curAt]

		for _, nc := range hq.geo.NearbyCoordinates(cur.idx) {
			if _, seen := visited[nc]; seen {
				continue
			}
			if excluded != nil && excluded[nc] {
				continue
			}
			pos := hq.geo.Site(nc).Pos
			if !inHalfPlane(origin, pos, dir) {
				continue
			}

			at := len(nodes)
			nodes = append(nodes, searchNode{idx: nc, parent: curAt})
			visited[nc] = at

			if !hq.IsMapped(nc) {
				return hq.reconstructPath(nodes, at)
			}
			queue = append(queue, at)
		}
	}
	return nil
}

func (hq *HardwareQubits) reconstructPath(nodes []searchNode, at int) []geometry.CoordIndex {
	var path []geometry.CoordIndex
	for at != -1 {
		path = append([]geometry.CoordIndex{nodes[at].idx}, path...)
		at = nodes[at].parent
	}
	return path
}
