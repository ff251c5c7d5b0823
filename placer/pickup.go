package placer

import (
	"fmt"
	"sort"

	"github.com/kegliz/naqmap/geometry"
	"github.com/kegliz/naqmap/naop"
)

type shuttleMove struct {
	start, end geometry.Point
}

// pickUpSide implements section 4.3 steps 3 and 5: pick up every
// qubit named by target (a circuit-qubit -> interaction-column map),
// sweeping its row neighbours along the way, and emit the resulting
// MOVE/LOAD batches. isFixedPass is true only for the fixed-side call
// (step 3); it seeds fixedTargetCache, the column map notPickedUpLeft
// consults.
//
// notPickedUpLeft always reads fixedTargetCache rather than target
// itself — faithfully reproducing the original source's mixed-up
// parameter at the moveable-side call site (the same `fixed` column
// map is referenced at both pickup call sites instead of swapping in
// the moveable side's own map). TODO: confirm against a second
// original-source fragment whether this is intentional or a genuine
// upstream bug before "fixing" it.
func (p *Placer) pickUpSide(target map[int]int, isFixedPass bool) error {
	if len(target) == 0 {
		return nil
	}
	if isFixedPass {
		p.fixedTargetCache = make(map[int]int, len(target))
		for k, v := range target {
			p.fixedTargetCache[k] = v
		}
	}

	ordered := make([]int, 0, len(target))
	for q := range target {
		ordered = append(ordered, q)
	}
	sort.Slice(ordered, func(i, j int) bool { return target[ordered[i]] < target[ordered[j]] })

	misplacement := make(map[int]int, len(ordered))
	for _, q := range ordered {
		misplacement[q] = p.computeMisplacement(q, target)
	}

	pickupOrder := make([]int, len(ordered))
	copy(pickupOrder, ordered)
	sort.Slice(pickupOrder, func(i, j int) bool {
		return absInt(misplacement[pickupOrder[i]]) > absInt(misplacement[pickupOrder[j]])
	})

	picked := make(map[int]bool, len(ordered))
	var loads, moves []shuttleMove

	for _, q := range pickupOrder {
		if picked[q] {
			continue
		}
		if err := p.pickOne(q, target, ordered, picked, &loads); err != nil {
			return err
		}
		idx := indexOf(ordered, q)
		p.sweep(idx, -1, ordered, target, picked, &loads, &moves)
		p.sweep(idx, +1, ordered, target, picked, &loads, &moves)
	}

	if len(moves) > 0 {
		p.emitShuttling(naop.Move, moves)
	}
	if len(loads) > 0 {
		p.emitShuttling(naop.Load, loads)
	}
	return nil
}

// computeMisplacement implements the M(q) formula of section 4.3
// exactly. Undefined atoms have misplacement 0.
func (p *Placer) computeMisplacement(q int, target map[int]int) int {
	a := p.placement[q]
	if !a.IsDefined() {
		return 0
	}
	initXq := a.Initial().X
	tq := target[q]
	m := 0
	for pq, tp := range target {
		pa := p.placement[pq]
		if !pa.IsDefined() {
			continue
		}
		initXp := pa.Initial().X
		if initXp > initXq && tp < tq {
			m++
		}
		if initXp < initXq && tp > tq {
			m--
		}
		if tp < tq {
			m++
		}
		if initXp < initXq {
			m--
		}
	}
	return m
}

// notPickedUpLeft counts qubits earlier in ordered (by this side's own
// column order) that are not yet picked up and whose fixedTargetCache
// column is left of q's — see the pickUpSide doc comment for why this
// is fixedTargetCache rather than the side's own target map.
func (p *Placer) notPickedUpLeft(q int, ordered []int, picked map[int]bool) int {
	tq := p.fixedTargetCache[q]
	count := 0
	for _, pq := range ordered {
		if pq == q || picked[pq] {
			continue
		}
		if p.fixedTargetCache[pq] < tq {
			count++
		}
	}
	return count
}

func (p *Placer) pickOne(q int, target map[int]int, ordered []int, picked map[int]bool, loads *[]shuttleMove) error {
	d := p.geo.MinAtomDistance()
	a := p.placement[q]
	if !a.IsDefined() {
		site, err := p.pickStorageRowFor(q, ordered, picked)
		if err != nil {
			return err
		}
		a.Define(p.geo.Site(site).Pos)
		p.initialFree[site] = false
		p.currentFree[site] = false
	} else if site, ok := p.geo.SiteAt(a.Current()); ok {
		// The atom was resting on a registered site; lifting it off
		// frees that site for later occupants.
		p.currentFree[site] = true
	}
	start := a.Current()
	end := geometry.Point{X: start.X + d, Y: start.Y}
	a.SetCurrent(end)
	p.shuttling[q] = true
	picked[q] = true
	*loads = append(*loads, shuttleMove{start: start, end: end})
	return nil
}

// pickStorageRowFor implements the UNDEFINED-atom branch of step 3:
// across every zone the atom may still occupy, pick the storage row
// with the most currently-free sites (currentFree; initialFree is not
// consulted) that is still >= notPickedUpLeft(q), and place the atom on
// the min(notPickedUpLeft, freeSpotsInRow-1)-th currently-free site of
// that row.
func (p *Placer) pickStorageRowFor(q int, ordered []int, picked map[int]bool) (geometry.CoordIndex, error) {
	a := p.placement[q]
	npl := p.notPickedUpLeft(q, ordered, picked)

	var bestZone geometry.Zone
	bestRow := -1
	bestFree := -1
	for _, z := range a.Zones() {
		if zd := p.geo.ZoneDef(z); zd.Kind == geometry.InteractionZone {
			continue
		}
		for r := 0; r < p.geo.NRowsInZone(z); r++ {
			free := p.countFreeInRow(z, r)
			if free >= npl && free > bestFree {
				bestFree = free
				bestZone = z
				bestRow = r
			}
		}
	}
	if bestRow < 0 {
		return 0, fmt.Errorf("placer: %w: no storage row has room for qubit %d", ErrOutOfRoom, q)
	}

	sites := p.geo.SitesInRow(bestZone, bestRow)
	var free []geometry.CoordIndex
	for _, s := range sites {
		if p.currentFree[s] {
			free = append(free, s)
		}
	}
	idx := npl
	if idx > len(free)-1 {
		idx = len(free) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return free[idx], nil
}

// sweep walks ordered from idx in direction dir (-1 left, +1 right),
// handling each neighbour per step 3's three cases: an already
// shuttling neighbour is realigned with a MOVE; a DEFINED neighbour on
// the same row is folded into this LOAD batch; an UNDEFINED neighbour
// is placed at the nearest free site in that direction and then
// picked up the same way.
func (p *Placer) sweep(idx, dir int, ordered []int, target map[int]int, picked map[int]bool, loads, moves *[]shuttleMove) {
	qRow := p.placement[ordered[idx]].Current().Y
	j := idx + dir
	for j >= 0 && j < len(ordered) {
		nq := ordered[j]
		if picked[nq] {
			j += dir
			continue
		}
		a := p.placement[nq]

		if p.shuttling[nq] {
			cur := a.Current()
			nextX := p.nextAlignX(cur, dir)
			dest := geometry.Point{X: nextX, Y: qRow}
			*moves = append(*moves, shuttleMove{start: cur, end: dest})
			a.SetCurrent(dest)
			j += dir
			continue
		}

		if a.IsDefined() {
			if a.Current().Y == qRow {
				_ = p.pickOne(nq, target, ordered, picked, loads)
			}
			j += dir
			continue
		}

		dirn := geometry.Left
		if dir > 0 {
			dirn = geometry.Right
		}
		anchor := p.placement[ordered[idx]].Current()
		if site, ok := p.findFreeSiteDirection(anchor, dirn, a.Zones()); ok {
			a.Define(p.geo.Site(site).Pos)
			p.initialFree[site] = false
			p.currentFree[site] = false
			_ = p.pickOne(nq, target, ordered, picked, loads)
		}
		j += dir
	}
}

// nextAlignX returns the nearest grid x-coordinate in direction dir
// from cur, falling back to a fixed -noInteractionRadius/+noInteractionRadius
// step (standing in for -patchCols*R+, out of reach from this package)
// when there is no nearer site.
func (p *Placer) nextAlignX(cur geometry.Point, dir int) int64 {
	var s geometry.Site
	var err error
	if dir < 0 {
		s, err = p.geo.NearestSiteLeft(cur, true)
	} else {
		s, err = p.geo.NearestSiteRight(cur, true)
	}
	if err != nil {
		step := int64(p.geo.NoInteractionRadius())
		if dir < 0 {
			return cur.X - step
		}
		return cur.X + step
	}
	return s.Pos.X
}

// findFreeSiteDirection walks nearest-site queries from "from" in
// direction dir until it finds a free site inside one of zones, or
// runs off the grid. This stands in for hwqubit's half-plane BFS
// (findClosestFreeCoord): within a single row the two coincide, and
// the sweep only ever searches along its own row.
func (p *Placer) findFreeSiteDirection(from geometry.Point, dir geometry.Direction, zones []geometry.Zone) (geometry.CoordIndex, bool) {
	allowed := func(z geometry.Zone) bool {
		for _, az := range zones {
			if az == z {
				return true
			}
		}
		return false
	}
	cur := from
	for i := 0; i < p.geo.NSites(); i++ {
		var s geometry.Site
		var err error
		if dir == geometry.Left {
			s, err = p.geo.NearestSiteLeft(cur, true)
		} else {
			s, err = p.geo.NearestSiteRight(cur, true)
		}
		if err != nil {
			return 0, false
		}
		if p.currentFree[s.Index] && allowed(s.Zone) {
			return s.Index, true
		}
		cur = s.Pos
	}
	return 0, false
}

func (p *Placer) countFreeInRow(z geometry.Zone, r int) int {
	n := 0
	for _, s := range p.geo.SitesInRow(z, r) {
		if p.currentFree[s] {
			n++
		}
	}
	return n
}

func indexOf(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
