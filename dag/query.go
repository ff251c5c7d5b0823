package dag

import "github.com/kegliz/naqmap/gate"

// GetExecutablesOfType returns a snapshot of every currently
// executable vertex whose operation is of the given gate kind with
// the given number of controls.
func (d *DAG) GetExecutablesOfType(kind gate.Kind, ncontrols int) []VertexID {
	var out []VertexID
	for id := range d.executableSet {
		op := d.vertices[id].Op
		if op.Gate.Kind() == kind && len(op.Gate.Controls()) == ncontrols {
			out = append(out, id)
		}
	}
	return out
}
