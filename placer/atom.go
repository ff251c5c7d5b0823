// Package placer implements the core mapping/scheduling loop: it
// drains directly-applicable single-qubit operations, batches CZ
// interactions, and shuttles atoms between the storage zones and the
// interaction zone to realise each batch, emitting an naop.Program.
package placer

import "github.com/kegliz/naqmap/geometry"

// Atom is the tagged-sum placement state of one logical (circuit)
// qubit: either Undefined (no committed physical site yet, only a
// shrinking list of zones it could still legally occupy) or Defined
// (a committed initial site and a live current site). Narrowing,
// defining and moving the current site (SetCurrent) are the only
// mutations; there is no way back from Defined to Undefined.
type Atom struct {
	defined bool
	zones   []geometry.Zone
	initial geometry.Point
	current geometry.Point
}

// NewUndefinedAtom returns an atom with no committed site, free to
// occupy any of zones.
func NewUndefinedAtom(zones []geometry.Zone) *Atom {
	z := make([]geometry.Zone, len(zones))
	copy(z, zones)
	return &Atom{zones: z}
}

// IsDefined reports whether the atom has a committed site.
func (a *Atom) IsDefined() bool { return a.defined }

// Zones returns the zones this atom may still legally occupy. Only
// meaningful while Undefined.
func (a *Atom) Zones() []geometry.Zone { return a.zones }

// NarrowZones drops every zone for which keep returns false. It is a
// no-op on a Defined atom, matching updatePlacement's "no-op if
// DEFINED" rule: once physically committed, narrowing serves no
// purpose.
func (a *Atom) NarrowZones(keep func(geometry.Zone) bool) {
	if a.defined {
		return
	}
	out := a.zones[:0]
	for _, z := range a.zones {
		if keep(z) {
			out = append(out, z)
		}
	}
	a.zones = out
}

// Define commits the atom to p as both its initial and current site,
// transitioning it to Defined.
func (a *Atom) Define(p geometry.Point) {
	a.defined = true
	a.initial = p
	a.current = p
}

// SetCurrent updates the current site of an already-Defined atom
// (used for shuttling); it panics if called before Define, since an
// Undefined atom has no site to move.
func (a *Atom) SetCurrent(p geometry.Point) {
	if !a.defined {
		panic("placer: SetCurrent on an undefined atom")
	}
	a.current = p
}

// Initial returns the site the atom was first defined at.
func (a *Atom) Initial() geometry.Point { return a.initial }

// Current returns the atom's live site.
func (a *Atom) Current() geometry.Point { return a.current }
