package hwqubit

import (
	"math"

	"github.com/kegliz/naqmap/geometry"
)

// ErrUnreachable is returned when no swap path connects two hw qubits
// in the nearby-qubit graph.
var ErrUnreachable = errUnreachable{}

type errUnreachable struct{}

func (errUnreachable) Error() string { return "hwqubit: no swap path between qubits" }

// GetSwapDistance returns the number of swaps needed to bring q1 and q2
// together. Returns 0 if q1 == q2. If the cached entry is unknown, runs
// a single BFS from q1 over the nearby-qubit graph, filling in cache
// entries for every hw qubit discovered along the way. If closeBy is
// false the result is one larger, meaning "land adjacent to q2 rather
// than exactly on q2's site".
func (hq *HardwareQubits) GetSwapDistance(q1, q2 HwQubit, closeBy bool) (int, error) {
	if q1 == q2 {
		return 0, nil
	}
	if hq.swapDistances[hq.distIndex(q1, q2)] < 0 {
		hq.computeSwapDistance(q1)
	}
	d := hq.swapDistances[hq.distIndex(q1, q2)]
	if d < 0 {
		return 0, ErrUnreachable
	}
	if !closeBy {
		d++
	}
	return d, nil
}

// computeSwapDistance runs BFS from source over the nearby-qubit graph,
// filling swapDistances(source, *) and its symmetric counterpart for
// every hw qubit reached.
func (hq *HardwareQubits) computeSwapDistance(source HwQubit) {
	dist := make([]int, hq.nqubits)
	for i := range dist {
		dist[i] = -1
	}
	dist[source] = 0

	queue := []HwQubit{source}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range hq.nearbyQubits[cur] {
			if dist[n] >= 0 {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}

	for other := HwQubit(0); int(other) < hq.nqubits; other++ {
		if dist[other] < 0 {
			continue
		}
		hq.swapDistances[hq.distIndex(source, other)] = dist[other]
		hq.swapDistances[hq.distIndex(other, source)] = dist[other]
	}
}

// GetSwapDistanceMove returns the minimum, over free coordinates in the
// vicinity of idx, of the swap distance from target's current
// coordinate to that free coordinate, measured on the geometric
// nearest-neighbour graph of sites. Returns math.Inf(1) if no vicinity
// site is free.
func (hq *HardwareQubits) GetSwapDistanceMove(idx geometry.CoordIndex, target HwQubit) float64 {
	from := hq.CoordIndex(target)
	best := math.Inf(1)
	for _, nc := range hq.geo.NearbyCoordinates(idx) {
		if hq.IsMapped(nc) {
			continue
		}
		d := hq.coordBFSDistance(from, nc)
		if d < 0 {
			continue
		}
		if float64(d) < best {
			best = float64(d)
		}
	}
	return best
}

// coordBFSDistance runs BFS over the geometric nearest-neighbour graph
// of sites (independent of which coordinates are currently occupied)
// to find the hop distance between two coordinates. Returns -1 if
// unreachable.
func (hq *HardwareQubits) coordBFSDistance(from, to geometry.CoordIndex) int {
	if from == to {
		return 0
	}
	visited := map[geometry.CoordIndex]int{from: 0}
	queue := []geometry.CoordIndex{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := visited[cur]
		if cur == to {
			return d
		}
		for _, n := range hq.geo.NearbyCoordinates(cur) {
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = d + 1
			queue = append(queue, n)
		}
	}
	if d, ok := visited[to]; ok {
		return d
	}
	return -1
}
