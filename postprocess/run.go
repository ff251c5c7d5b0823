package postprocess

import (
	"github.com/kegliz/naqmap/geometry"
	"github.com/kegliz/naqmap/naop"
)

// Run applies patch expansion followed by MOVE decomposition to prog
// and returns the resulting program. prog itself is left untouched.
func Run(prog *naop.Program, geo *geometry.Geometry, cfg Config) (*naop.Program, error) {
	cfg = cfg.normalized()

	out := &naop.Program{
		InitialPositions: expandPoints(geo, prog.InitialPositions, cfg),
	}

	for _, op := range prog.Operations() {
		switch v := op.(type) {
		case naop.GlobalOperation:
			out.Append(v)
		case naop.LocalOperation:
			out.Append(naop.LocalOperation{
				GateKind:  v.GateKind,
				Param:     v.Param,
				Positions: expandPoints(geo, v.Positions, cfg),
			})
		case naop.ShuttlingOperation:
			starts, ends := expandPairs(geo, v.Start, v.End, cfg)
			expanded := naop.ShuttlingOperation{ShuttlingKind: v.ShuttlingKind, Start: starts, End: ends}
			if v.ShuttlingKind == naop.Move {
				for _, sub := range decomposeMove(geo, expanded) {
					out.Append(sub)
				}
			} else {
				out.Append(expanded)
			}
		}
	}

	return out, nil
}
