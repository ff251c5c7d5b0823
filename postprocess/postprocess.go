// Package postprocess implements section 4.4's two expansion passes
// over an already-scheduled operation stream: patch replication across
// an R×C physical lattice, and decomposition of each MOVE into its
// collision-avoiding sub-legs.
package postprocess

import "github.com/kegliz/naqmap/geometry"

// Config carries the patch dimensions, the only mapper.Config fields
// the postprocessor reads.
type Config struct {
	PatchRows int
	PatchCols int
}

func (c Config) normalized() Config {
	if c.PatchRows <= 0 {
		c.PatchRows = 1
	}
	if c.PatchCols <= 0 {
		c.PatchCols = 1
	}
	return c
}

// expandPoints replicates each point in pts into an R×C tile, in
// row-major, then column-major order per original element (matching
// the order patch expansion's companion initial-positions count check
// expects: |expanded| == R*C*|original|).
func expandPoints(geo *geometry.Geometry, pts []geometry.Point, cfg Config) []geometry.Point {
	out := make([]geometry.Point, 0, len(pts)*cfg.PatchRows*cfg.PatchCols)
	for _, p := range pts {
		for r := 0; r < cfg.PatchRows; r++ {
			for c := 0; c < cfg.PatchCols; c++ {
				out = append(out, geo.PositionOffsetBy(p, int64(r), int64(c)))
			}
		}
	}
	return out
}

// expandPairs replicates parallel start/end slices the same way,
// keeping each trajectory's replicated copies aligned by index.
func expandPairs(geo *geometry.Geometry, starts, ends []geometry.Point, cfg Config) (outStarts, outEnds []geometry.Point) {
	n := len(starts) * cfg.PatchRows * cfg.PatchCols
	outStarts = make([]geometry.Point, 0, n)
	outEnds = make([]geometry.Point, 0, n)
	for i := range starts {
		for r := 0; r < cfg.PatchRows; r++ {
			for c := 0; c < cfg.PatchCols; c++ {
				outStarts = append(outStarts, geo.PositionOffsetBy(starts[i], int64(r), int64(c)))
				outEnds = append(outEnds, geo.PositionOffsetBy(ends[i], int64(r), int64(c)))
			}
		}
	}
	return outStarts, outEnds
}
