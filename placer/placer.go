package placer

import (
	"fmt"

	"github.com/kegliz/naqmap/circuit"
	"github.com/kegliz/naqmap/dag"
	"github.com/kegliz/naqmap/gate"
	"github.com/kegliz/naqmap/geometry"
	"github.com/kegliz/naqmap/hwqubit"
	"github.com/kegliz/naqmap/naop"
)

// Placer runs the outer mapping loop of section 4.3: drain
// directly-applicable single-qubit gates, batch the currently
// executable CZ interactions, shuttle the fixed and moveable sides of
// that batch through the interaction zone, and return them to
// storage, repeating until the DAG's executable set is empty.
type Placer struct {
	geo *geometry.Geometry
	hq  *hwqubit.HardwareQubits
	d   *dag.DAG
	prog *naop.Program

	placement map[int]*Atom

	initialFree map[geometry.CoordIndex]bool
	currentFree map[geometry.CoordIndex]bool
	shuttling   map[int]bool

	// fixedTargetCache is the fixed side's column map from the most
	// recent two-qubit batch; see pickUpSide's doc comment.
	fixedTargetCache map[int]int
}

// New builds a Placer over geo for a circuit with nqubits logical
// qubits whose dependency structure is d. hq is used only for its
// initial layout (the sweep steps query geo's nearest sites instead),
// which seeds every atom's starting site, so every atom begins Defined rather than
// lazily Undefined — the common case for a device whose capacity
// already covers the circuit's qubit count.
func New(geo *geometry.Geometry, nqubits int, d *dag.DAG, hq *hwqubit.HardwareQubits) (*Placer, error) {
	p := &Placer{
		geo:         geo,
		hq:          hq,
		d:           d,
		prog:        &naop.Program{},
		placement:   make(map[int]*Atom, nqubits),
		initialFree: make(map[geometry.CoordIndex]bool, geo.NSites()),
		currentFree: make(map[geometry.CoordIndex]bool, geo.NSites()),
		shuttling:   make(map[int]bool),
	}
	for i := 0; i < geo.NSites(); i++ {
		p.initialFree[geometry.CoordIndex(i)] = true
		p.currentFree[geometry.CoordIndex(i)] = true
	}
	for q := 0; q < nqubits; q++ {
		coord := hq.CoordIndex(hwqubit.HwQubit(q))
		atom := NewUndefinedAtom(geo.InitialZones())
		atom.Define(geo.Site(coord).Pos)
		p.placement[q] = atom
		p.initialFree[coord] = false
		p.currentFree[coord] = false
		p.prog.InitialPositions = append(p.prog.InitialPositions, atom.Initial())
	}
	return p, nil
}

func opKey(g gate.Gate, ncontrols int) geometry.OpKey {
	return geometry.OpKey{Kind: string(g.Kind()), NControls: ncontrols}
}

func (p *Placer) zoneOf(pos geometry.Point) geometry.Zone {
	idx, ok := p.geo.SiteAt(pos)
	if !ok {
		return 0
	}
	return p.geo.Site(idx).Zone
}

// Run executes the outer loop to completion and returns the emitted
// program.
func (p *Placer) Run() (*naop.Program, error) {
	for !p.d.IsEmpty() {
		drained := p.drain()
		if drained {
			continue
		}

		ig := p.d.ConstructInteractionGraph(gate.CZKind)
		if ig.Empty() {
			if len(p.d.ExecutableSet()) > 0 {
				return nil, ErrUnsupportedGate
			}
			break
		}
		seq := ig.ComputeSequence()

		if err := p.pickUpSide(seq.Fixed, true); err != nil {
			return nil, err
		}
		if err := p.depositFixed(seq.Fixed); err != nil {
			return nil, err
		}

		var moveFrame map[int]int
		if len(seq.Moveable) > 0 {
			moveFrame = seq.Moveable[0]
		}
		if err := p.pickUpSide(moveFrame, false); err != nil {
			return nil, err
		}
		if err := p.applyInteractions(ig, seq.Fixed, moveFrame); err != nil {
			return nil, err
		}

		if err := p.returnToStorage(moveFrame); err != nil {
			return nil, err
		}
		if err := p.returnToStorage(seq.Fixed); err != nil {
			return nil, err
		}
	}

	// Post-loop: any atom somehow still Undefined (none under the
	// default eager-initial-layout construction, but possible if a
	// caller seeds Placer.placement directly for testing) is assigned
	// to the first initially-free site in its first permitted zone.
	for q := 0; q < len(p.placement); q++ {
		a := p.placement[q]
		if a.IsDefined() {
			continue
		}
		site, err := p.firstFreeSiteInZones(a.Zones())
		if err != nil {
			return nil, err
		}
		a.Define(p.geo.Site(site).Pos)
		p.initialFree[site] = false
		p.currentFree[site] = false
		p.prog.InitialPositions = append(p.prog.InitialPositions, a.Initial())
	}

	return p.prog, nil
}

func (p *Placer) firstFreeSiteInZones(zones []geometry.Zone) (geometry.CoordIndex, error) {
	for _, z := range zones {
		for _, s := range p.geo.SitesInZone(z) {
			if p.initialFree[s] {
				return s, nil
			}
		}
	}
	return 0, fmt.Errorf("placer: %w: no free site in permitted zones", ErrOutOfRoom)
}

// drain repeatedly executes any currently-executable single-qubit,
// control-free vertex that is applicable under the current placement,
// emitting one global or local operation per (kind, param) group, and
// reports whether it executed at least one vertex.
func (p *Placer) drain() bool {
	any := false
	for {
		group, isGlobal, ok := p.nextDrainGroup()
		if !ok {
			return any
		}
		any = true
		p.emitDrainGroup(group, isGlobal)
	}
}

func (p *Placer) nextDrainGroup() (group []dag.VertexID, isGlobal bool, ok bool) {
	for _, id := range p.d.ExecutableSet() {
		v := p.d.Vertex(id)
		op := v.Op
		if len(op.Gate.Controls()) != 0 {
			continue
		}
		if !p.isApplicable(op) {
			continue
		}
		key := op.Gate.Kind()
		param := op.Gate.Param()
		global := p.geo.IsAllowedGlobally(opKey(op.Gate, 0))

		var matched []dag.VertexID
		for _, id2 := range p.d.ExecutableSet() {
			v2 := p.d.Vertex(id2)
			op2 := v2.Op
			if len(op2.Gate.Controls()) != 0 {
				continue
			}
			if op2.Gate.Kind() != key || op2.Gate.Param() != param {
				continue
			}
			if !p.isApplicable(op2) {
				continue
			}
			matched = append(matched, id2)
		}
		return matched, global, true
	}
	return nil, false, false
}

func (p *Placer) isApplicable(op circuit.Operation) bool {
	if p.geo.IsAllowedGlobally(opKey(op.Gate, len(op.Gate.Controls()))) {
		return true
	}
	key := opKey(op.Gate, len(op.Gate.Controls()))
	for _, q := range op.Qubits {
		a := p.placement[q]
		if a.IsDefined() {
			if !p.geo.IsAllowedLocally(key, p.zoneOf(a.Current())) {
				return false
			}
			continue
		}
		ok := false
		for _, z := range a.Zones() {
			if p.geo.IsAllowedLocally(key, z) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func (p *Placer) emitDrainGroup(group []dag.VertexID, isGlobal bool) {
	if len(group) == 0 {
		return
	}
	first := p.d.Vertex(group[0]).Op.Gate
	key := opKey(first, len(first.Controls()))

	var positions []geometry.Point
	for _, id := range group {
		op := p.d.Vertex(id).Op
		for _, q := range op.Qubits {
			a := p.placement[q]
			a.NarrowZones(func(z geometry.Zone) bool {
				return p.geo.IsAllowedLocally(key, z) || p.geo.IsAllowedGlobally(key, z)
			})
			if a.IsDefined() {
				positions = append(positions, a.Current())
			}
		}
	}

	if isGlobal {
		p.prog.Append(naop.GlobalOperation{GateKind: first.Kind(), Param: first.Param()})
	} else {
		p.prog.Append(naop.LocalOperation{GateKind: first.Kind(), Param: first.Param(), Positions: positions})
	}

	for _, id := range group {
		_ = p.d.Execute(id)
	}
}

