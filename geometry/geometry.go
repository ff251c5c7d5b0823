// Package geometry describes the static, immutable layout of a
// neutral-atom machine: its trap sites, the zones they belong to, and
// the spacing constants (interaction radius, no-interaction radius,
// minimum atom distance) that the placer must respect.
package geometry

import "fmt"

// Geometry is the closed, immutable description of a machine's trap
// grid. Once built it never changes; all mutable state (which sites
// are occupied, which hardware qubit sits where) lives in the
// hwqubit/placer packages.
type Geometry struct {
	name    string
	nqubits int

	sites []Site
	zones []ZoneDef

	interactionRadius   float64
	noInteractionRadius float64
	minAtomDistance     int64

	interactionZone    Zone
	hasInteractionZone bool

	byPos map[Point]CoordIndex
}

// New builds a Geometry from already-validated zones and sites. Callers
// that decode a machine description should go through Load instead;
// New is exposed for constructing small geometries directly in tests.
func New(name string, nqubits int, zones []ZoneDef, sites []Site,
	interactionRadius, noInteractionRadius float64, minAtomDistance int64) (*Geometry, error) {

	g := &Geometry{
		name:                name,
		nqubits:             nqubits,
		sites:               sites,
		zones:               zones,
		interactionRadius:   interactionRadius,
		noInteractionRadius: noInteractionRadius,
		minAtomDistance:     minAtomDistance,
		byPos:               make(map[Point]CoordIndex, len(sites)),
	}
	for i, s := range sites {
		if int(s.Index) != i {
			return nil, fmt.Errorf("geometry: site %d has out-of-order index %d", i, s.Index)
		}
		if int(s.Zone) >= len(zones) {
			return nil, fmt.Errorf("geometry: %w: site %d references zone %d", ErrUnknownSite, s.Index, s.Zone)
		}
		g.byPos[s.Pos] = s.Index
	}
	for zi, z := range zones {
		if z.Kind == InteractionZone {
			g.interactionZone = Zone(zi)
			g.hasInteractionZone = true
		}
	}
	return g, nil
}

func (g *Geometry) Name() string { return g.name }
func (g *Geometry) NQubits() int { return g.nqubits }
func (g *Geometry) NSites() int  { return len(g.sites) }
func (g *Geometry) NZones() int  { return len(g.zones) }

// InteractionRadius is R: atoms closer than this interact when the
// global Rydberg pulse fires.
func (g *Geometry) InteractionRadius() float64 { return g.interactionRadius }

// NoInteractionRadius is R+: the horizontal column spacing that
// guarantees non-interaction.
func (g *Geometry) NoInteractionRadius() float64 { return g.noInteractionRadius }

// MinAtomDistance is d: the spacing used when two picked-up atoms
// share a row.
func (g *Geometry) MinAtomDistance() int64 { return g.minAtomDistance }

// Site returns the site at the given index.
func (g *Geometry) Site(idx CoordIndex) Site { return g.sites[idx] }

// SiteAt returns the CoordIndex of the site at point p, if any.
func (g *Geometry) SiteAt(p Point) (CoordIndex, bool) {
	idx, ok := g.byPos[p]
	return idx, ok
}

// ZoneDef returns the zone definition at index z.
func (g *Geometry) ZoneDef(z Zone) ZoneDef { return g.zones[z] }

// InteractionZone returns the sole CZ-capable zone.
func (g *Geometry) InteractionZone() (Zone, error) {
	if !g.hasInteractionZone {
		return 0, ErrNoInteractionZone
	}
	return g.interactionZone, nil
}

// InitialZones returns every zone a freshly-created, unplaced atom may
// be narrowed into — i.e. every zone declared by the machine
// description, in declaration order.
func (g *Geometry) InitialZones() []Zone {
	out := make([]Zone, len(g.zones))
	for i := range g.zones {
		out[i] = Zone(i)
	}
	return out
}

// NRowsInZone returns the number of rows declared for zone z.
func (g *Geometry) NRowsInZone(z Zone) int { return len(g.zones[z].Rows) }

// SitesInRow returns the site indices of row r of zone z, in column
// order. The returned slice is a copy; callers may mutate it freely.
func (g *Geometry) SitesInRow(z Zone, r int) []CoordIndex {
	row := g.zones[z].Rows[r]
	out := make([]CoordIndex, len(row))
	copy(out, row)
	return out
}

// SitesInZone returns every site index belonging to zone z, row-major.
func (g *Geometry) SitesInZone(z Zone) []CoordIndex {
	var out []CoordIndex
	for _, row := range g.zones[z].Rows {
		out = append(out, row...)
	}
	return out
}

// IsAllowedLocally reports whether op may be realised as an
// NALocalOperation anywhere (no zone argument) or specifically within
// zone z (zones variadic, at most one).
func (g *Geometry) IsAllowedLocally(op OpKey, zones ...Zone) bool {
	if len(zones) == 0 {
		for _, z := range g.zones {
			if z.LocalGateKinds[op] {
				return true
			}
		}
		return false
	}
	return g.zones[zones[0]].LocalGateKinds[op]
}

// IsAllowedGlobally reports whether op may be realised as an
// NAGlobalOperation anywhere, or specifically within zone z.
func (g *Geometry) IsAllowedGlobally(op OpKey, zones ...Zone) bool {
	if len(zones) == 0 {
		for _, z := range g.zones {
			if z.GlobalGateKinds[op] {
				return true
			}
		}
		return false
	}
	return g.zones[zones[0]].GlobalGateKinds[op]
}

// NearbyCoordinates returns every site index within the interaction
// radius R of site idx, excluding idx itself. Two atoms sitting at a
// pair of coordinates this function returns for each other will
// interact when the global entangling pulse fires.
func (g *Geometry) NearbyCoordinates(idx CoordIndex) []CoordIndex {
	origin := g.sites[idx].Pos
	var out []CoordIndex
	for _, s := range g.sites {
		if s.Index == idx {
			continue
		}
		if origin.DistanceTo(s.Pos) <= g.interactionRadius {
			out = append(out, s.Index)
		}
	}
	return out
}

// PositionOffsetBy returns p translated by (row, col) patch replica
// offsets, spaced by the zone layout's own pitch: each replica is
// shifted by the full extent of the machine in x per column and in y
// per row, so that an R x C patch tiling never overlaps the original
// lattice.
func (g *Geometry) PositionOffsetBy(p Point, row, col int64) Point {
	return Point{
		X: p.X + col*g.patchPitchX(),
		Y: p.Y + row*g.patchPitchY(),
	}
}

func (g *Geometry) patchPitchX() int64 {
	var maxX int64
	for _, s := range g.sites {
		if s.Pos.X > maxX {
			maxX = s.Pos.X
		}
	}
	return maxX + int64(g.noInteractionRadius)
}

func (g *Geometry) patchPitchY() int64 {
	var maxY int64
	for _, s := range g.sites {
		if s.Pos.Y > maxY {
			maxY = s.Pos.Y
		}
	}
	return maxY + int64(g.noInteractionRadius)
}
