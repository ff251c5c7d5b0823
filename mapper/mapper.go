package mapper

import (
	"fmt"
	"time"

	"github.com/kegliz/naqmap/circuit"
	"github.com/kegliz/naqmap/dag"
	"github.com/kegliz/naqmap/gate"
	"github.com/kegliz/naqmap/geometry"
	"github.com/kegliz/naqmap/hwqubit"
	"github.com/kegliz/naqmap/mapping"
	"github.com/kegliz/naqmap/naop"
	"github.com/kegliz/naqmap/placer"
	"github.com/kegliz/naqmap/postprocess"
)

// Map compiles c onto geo: it validates every operation against the
// architecture, runs the placer's outer loop to produce a site-level
// operation stream, expands that stream across geo's patch replication
// and decomposes its MOVE batches, and returns the resulting program
// together with the qubit<->hardware-qubit bijection it settled on and
// timing statistics for each phase. This mirrors
// NeutralAtomMapper::map's preprocess/map/postprocess sequencing.
func Map(c *circuit.Circuit, geo *geometry.Geometry, cfg Config) (*naop.Program, *mapping.Mapping, MappingStats, error) {
	var stats MappingStats
	stats.NumInitialGates = len(c.Operations())

	t0 := time.Now()
	if err := preprocess(c, geo); err != nil {
		return nil, nil, stats, err
	}
	stats.PreprocessTime = time.Since(t0)

	t1 := time.Now()
	hq, err := hwqubit.New(geo, c.NQubits(), hwqubit.Trivial)
	if err != nil {
		return nil, nil, stats, err
	}
	m := mapping.New(c.NQubits())

	d := dag.New(c)
	pl, err := placer.New(geo, c.NQubits(), d, hq)
	if err != nil {
		return nil, nil, stats, err
	}
	prog, err := pl.Run()
	if err != nil {
		return nil, nil, stats, err
	}
	stats.MappingTime = time.Since(t1)

	t2 := time.Now()
	final, err := postprocess.Run(prog, geo, postprocess.Config{
		PatchRows: cfg.PatchRows,
		PatchCols: cfg.PatchCols,
	})
	if err != nil {
		return nil, nil, stats, err
	}
	stats.PostprocessTime = time.Since(t2)
	stats.NumMappedGates = len(final.Operations())

	return final, m, stats, nil
}

// preprocess implements section 4.1's validation pass: every
// operation's gate must be a recognised kind, and must be realisable
// somewhere on geo either as a global or a local pulse (for a two-qubit
// operation, only CZ is supported).
func preprocess(c *circuit.Circuit, geo *geometry.Geometry) error {
	for _, op := range c.Operations() {
		ncontrols := len(op.Gate.Controls())
		switch ncontrols {
		case 0, 1:
		default:
			return fmt.Errorf("preprocess: %w: operation on qubits %v has %d controls", ErrUnsupportedGate, op.Qubits, ncontrols)
		}
		if ncontrols == 1 && op.Gate.Kind() != gate.CZKind {
			return fmt.Errorf("preprocess: %w: two-qubit gate kind %q", ErrUnsupportedGate, op.Gate.Kind())
		}
		key := geometry.OpKey{Kind: string(op.Gate.Kind()), NControls: ncontrols}
		if !geo.IsAllowedGlobally(key) && !geo.IsAllowedLocally(key) {
			return fmt.Errorf("preprocess: %w: gate kind %q is permitted by no zone", ErrArchitectureMismatch, op.Gate.Kind())
		}
	}
	return nil
}
