package placer

import (
	"fmt"
	"sort"

	"github.com/kegliz/naqmap/dag"
	"github.com/kegliz/naqmap/gate"
	"github.com/kegliz/naqmap/geometry"
	"github.com/kegliz/naqmap/naop"
)

// depositFixed implements step 4: drop every fixed-side qubit into row
// 0 of the interaction zone at its target column.
func (p *Placer) depositFixed(target map[int]int) error {
	if len(target) == 0 {
		return nil
	}
	interactionZone, err := p.geo.InteractionZone()
	if err != nil {
		return err
	}
	row := p.geo.SitesInRow(interactionZone, 0)
	d := p.geo.MinAtomDistance()

	cols := make([]int, 0, len(target))
	for q := range target {
		cols = append(cols, q)
	}
	sort.Slice(cols, func(i, j int) bool { return target[cols[i]] < target[cols[j]] })

	var moves, stores []shuttleMove
	for _, q := range cols {
		c := target[q]
		if c >= len(row) {
			return fmt.Errorf("placer: %w: interaction row too short for column %d", ErrInvariantViolation, c)
		}
		site := row[c]
		if !p.currentFree[site] {
			return fmt.Errorf("placer: %w: target site in interaction zone unexpectedly occupied", ErrInvariantViolation)
		}
		destPos := p.geo.Site(site).Pos
		a := p.placement[q]

		stage := geometry.Point{X: destPos.X + d, Y: destPos.Y}
		moves = append(moves, shuttleMove{start: a.Current(), end: stage})
		a.SetCurrent(stage)

		stores = append(stores, shuttleMove{start: stage, end: destPos})
		a.SetCurrent(destPos)

		delete(p.shuttling, q)
		p.currentFree[site] = false
	}

	if len(moves) > 0 {
		p.emitShuttling(naop.Move, moves)
	}
	if len(stores) > 0 {
		p.emitShuttling(naop.Store, stores)
	}
	return nil
}

// applyInteractions implements step 6. In the minimal core's single
// fixed-column/single-timeframe sequencing (see dag.ComputeSequence),
// every moveable qubit's column coincides with its partner's fixed
// column, so its destination always falls inside the interaction-row
// range; the off-grid anchor+offset branch for a column outside that
// range never triggers here and is not implemented.
func (p *Placer) applyInteractions(ig *dag.InteractionGraph, fixed, moveable map[int]int) error {
	if len(moveable) == 0 {
		return nil
	}
	interactionZone, err := p.geo.InteractionZone()
	if err != nil {
		return err
	}
	row := p.geo.SitesInRow(interactionZone, 0)
	d := p.geo.MinAtomDistance()

	var moves []shuttleMove
	for _, e := range ig.Edges() {
		fq, mq := e.P, e.Q
		if _, ok := fixed[fq]; !ok {
			fq, mq = mq, fq
		}
		col, ok := fixed[fq]
		if !ok {
			continue
		}
		if col >= len(row) {
			return fmt.Errorf("placer: %w: interaction row too short for column %d", ErrInvariantViolation, col)
		}
		pos := p.geo.Site(row[col]).Pos
		dest := geometry.Point{X: pos.X, Y: pos.Y + d}
		a := p.placement[mq]
		moves = append(moves, shuttleMove{start: a.Current(), end: dest})
		a.SetCurrent(dest)
	}
	if len(moves) > 0 {
		p.emitShuttling(naop.Move, moves)
	}

	p.prog.Append(naop.GlobalOperation{GateKind: gate.CZKind})

	for _, e := range ig.Edges() {
		fa := p.placement[e.P]
		ma := p.placement[e.Q]
		if fa.Current().DistanceTo(ma.Current()) <= p.geo.InteractionRadius() {
			if err := e.Execute(); err != nil {
				return fmt.Errorf("placer: %w: %v", ErrInvariantViolation, err)
			}
		}
	}
	return nil
}

// returnToStorage implements step 7 for one side of the batch: pick
// storage rows greedily by descending free capacity and assign
// returning qubits to them in target-column order. This simplifies
// the original's per-atom "snap the nearer free site" tie-break and
// its ability to defer part of a row's atoms to a later row — every
// atom here is assigned to exactly one row in this single pass, which
// is sufficient whenever total free storage capacity covers the batch.
func (p *Placer) returnToStorage(side map[int]int) error {
	if len(side) == 0 {
		return nil
	}
	d := p.geo.MinAtomDistance()

	qubits := make([]int, 0, len(side))
	for q := range side {
		qubits = append(qubits, q)
	}
	sort.Slice(qubits, func(i, j int) bool { return side[qubits[i]] < side[qubits[j]] })

	type rowRef struct {
		zone geometry.Zone
		row  int
		free int
	}
	var rows []rowRef
	for z := geometry.Zone(0); int(z) < p.geo.NZones(); z++ {
		if p.geo.ZoneDef(z).Kind == geometry.InteractionZone {
			continue
		}
		for r := 0; r < p.geo.NRowsInZone(z); r++ {
			rows = append(rows, rowRef{zone: z, row: r, free: p.countFreeInRow(z, r)})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].free > rows[j].free })

	qi := 0
	var moves, stores []shuttleMove
	for _, rr := range rows {
		if qi >= len(qubits) {
			break
		}
		sites := p.geo.SitesInRow(rr.zone, rr.row)
		var free []geometry.CoordIndex
		for _, s := range sites {
			if p.currentFree[s] {
				free = append(free, s)
			}
		}
		for i := 0; i < len(free) && qi < len(qubits); i++ {
			q := qubits[qi]
			qi++
			a := p.placement[q]
			site := free[i]
			destPos := p.geo.Site(site).Pos

			if origin, ok := p.geo.SiteAt(a.Current()); ok {
				p.currentFree[origin] = true
			}
			stage := geometry.Point{X: destPos.X + d, Y: destPos.Y}
			moves = append(moves, shuttleMove{start: a.Current(), end: stage})
			a.SetCurrent(stage)

			stores = append(stores, shuttleMove{start: stage, end: destPos})
			a.SetCurrent(destPos)

			p.currentFree[site] = false
			delete(p.shuttling, q)
		}
	}
	if qi < len(qubits) {
		return fmt.Errorf("placer: %w: no storage capacity to absorb returning atoms", ErrOutOfRoom)
	}

	if len(moves) > 0 {
		p.emitShuttling(naop.Move, moves)
	}
	if len(stores) > 0 {
		p.emitShuttling(naop.Store, stores)
	}
	return nil
}

func (p *Placer) emitShuttling(kind naop.ShuttlingKindValue, moves []shuttleMove) {
	starts := make([]geometry.Point, len(moves))
	ends := make([]geometry.Point, len(moves))
	for i, m := range moves {
		starts[i] = m.start
		ends[i] = m.end
	}
	p.prog.Append(naop.ShuttlingOperation{ShuttlingKind: kind, Start: starts, End: ends})
}
