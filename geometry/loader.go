package geometry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// wireGate is the JSON shape of one entry in a zone's "localGates" or
// "globalGates" list.
type wireGate struct {
	Kind      string `json:"kind"`
	NControls int    `json:"nControls"`
}

// wireSite is the JSON shape of one trap site.
type wireSite struct {
	Row int   `json:"row"`
	Col int   `json:"col"`
	X   int64 `json:"x"`
	Y   int64 `json:"y"`
}

// wireZone is the JSON shape of one zone declaration.
type wireZone struct {
	Name        string     `json:"name"`
	Kind        string     `json:"kind"` // "storage" | "interaction"
	Sites       []wireSite `json:"sites"`
	LocalGates  []wireGate `json:"localGates"`
	GlobalGates []wireGate `json:"globalGates"`
}

// wireMachine is the top-level JSON shape of a machine description, as
// produced by an architecture export tool.
type wireMachine struct {
	Name                string     `json:"name"`
	NQubits             int        `json:"nqubits"`
	InteractionRadius   float64    `json:"interactionRadius"`
	NoInteractionRadius float64    `json:"noInteractionRadius"`
	MinAtomDistance     int64      `json:"minAtomDistance"`
	Zones               []wireZone `json:"zones"`
}

// Load reads a machine description JSON document from r and builds
// the Geometry it describes.
func Load(r io.Reader) (*Geometry, error) {
	var w wireMachine
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("geometry: decode machine description: %w", err)
	}
	return fromWire(w)
}

// LoadFile opens path and decodes it as a machine description.
func LoadFile(path string) (*Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geometry: open machine description: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func fromWire(w wireMachine) (*Geometry, error) {
	var sites []Site
	zones := make([]ZoneDef, len(w.Zones))

	var idx CoordIndex
	for zi, wz := range w.Zones {
		kind := StorageZone
		if wz.Kind == "interaction" {
			kind = InteractionZone
		}

		local := make(map[OpKey]bool, len(wz.LocalGates))
		for _, g := range wz.LocalGates {
			local[OpKey{Kind: g.Kind, NControls: g.NControls}] = true
		}
		global := make(map[OpKey]bool, len(wz.GlobalGates))
		for _, g := range wz.GlobalGates {
			global[OpKey{Kind: g.Kind, NControls: g.NControls}] = true
		}

		maxRow := -1
		for _, ws := range wz.Sites {
			if ws.Row > maxRow {
				maxRow = ws.Row
			}
		}
		rows := make([][]CoordIndex, maxRow+1)

		for _, ws := range wz.Sites {
			s := Site{
				Index: idx,
				Zone:  Zone(zi),
				Row:   ws.Row,
				Col:   ws.Col,
				Pos:   Point{X: ws.X, Y: ws.Y},
			}
			sites = append(sites, s)
			rows[ws.Row] = append(rows[ws.Row], idx)
			idx++
		}

		zones[zi] = ZoneDef{
			Name:            wz.Name,
			Kind:            kind,
			Rows:            rows,
			LocalGateKinds:  local,
			GlobalGateKinds: global,
		}
	}

	return New(w.Name, w.NQubits, zones, sites, w.InteractionRadius, w.NoInteractionRadius, w.MinAtomDistance)
}
