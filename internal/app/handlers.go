package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kegliz/naqmap/circuit"
	"github.com/kegliz/naqmap/gate"
	"github.com/kegliz/naqmap/geometry"
	"github.com/kegliz/naqmap/internal/visualize"
	"github.com/kegliz/naqmap/mapper"
)

// GateOp is the wire representation of a single circuit operation.
type GateOp struct {
	Kind   string  `json:"kind"`
	Param  float64 `json:"param,omitempty"`
	Qubits []int   `json:"qubits"`
	Cbit   int     `json:"cbit,omitempty"`
}

// CircuitJSON is the wire representation of a circuit.Circuit.
type CircuitJSON struct {
	NQubits int      `json:"nqubits"`
	NClbits int      `json:"nclbits"`
	Ops     []GateOp `json:"ops"`
}

// ConfigJSON is the wire representation of mapper.Config.
type ConfigJSON struct {
	PatchRows            int     `json:"patchRows"`
	PatchCols            int     `json:"patchCols"`
	LookaheadWeightSwaps float64 `json:"lookaheadWeightSwaps"`
	LookaheadWeightMoves float64 `json:"lookaheadWeightMoves"`
	GateWeight           float64 `json:"gateWeight"`
	ShuttlingWeight      float64 `json:"shuttlingWeight"`
	ShuttlingTimeWeight  float64 `json:"shuttlingTimeWeight"`
	Decay                float64 `json:"decay"`
}

// CompileRequest is the POST /api/compile body.
type CompileRequest struct {
	Geometry string      `json:"geometry"`
	Circuit  CircuitJSON `json:"circuit"`
	Config   ConfigJSON  `json:"config"`
}

// CompileResponse is the POST /api/compile response.
type CompileResponse struct {
	ID              string  `json:"id"`
	Program         string  `json:"program"`
	NumInitialGates int     `json:"numInitialGates"`
	NumMappedGates  int     `json:"numMappedGates"`
	PreprocessMs    float64 `json:"preprocessMs"`
	MappingMs       float64 `json:"mappingMs"`
	PostprocessMs   float64 `json:"postprocessMs"`
}

// HealthHandler is the handler for GET /health.
func (a *appServer) HealthHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		return
	}
	l.Debug().Msg("serving health endpoint")
	c.String(http.StatusOK, "OK")
}

// CompileCircuit is the handler for POST /api/compile.
func (a *appServer) CompileCircuit(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		return
	}

	var req CompileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Error().Err(err).Msg("binding JSON failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	geo, err := geometry.Load(strings.NewReader(req.Geometry))
	if err != nil {
		l.Error().Err(err).Msg("loading geometry failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geometry: " + err.Error()})
		return
	}

	circ, err := buildCircuitFromJSON(req.Circuit)
	if err != nil {
		l.Error().Err(err).Msg("building circuit failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid circuit: " + err.Error()})
		return
	}

	cfg := mapper.Config{
		PatchRows:            req.Config.PatchRows,
		PatchCols:            req.Config.PatchCols,
		LookaheadWeightSwaps: req.Config.LookaheadWeightSwaps,
		LookaheadWeightMoves: req.Config.LookaheadWeightMoves,
		GateWeight:           req.Config.GateWeight,
		ShuttlingWeight:      req.Config.ShuttlingWeight,
		ShuttlingTimeWeight:  req.Config.ShuttlingTimeWeight,
		Decay:                req.Config.Decay,
	}
	if cfg.PatchRows == 0 {
		cfg.PatchRows = 1
	}
	if cfg.PatchCols == 0 {
		cfg.PatchCols = 1
	}

	prog, _, stats, err := mapper.Map(circ, geo, cfg)
	if err != nil {
		l.Error().Err(err).Msg("mapping failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "mapping failed: " + err.Error()})
		return
	}

	id := uuid.Must(uuid.NewRandom()).String()
	a.store.Put(id, compileResult{Program: prog, Geo: geo})

	c.JSON(http.StatusOK, CompileResponse{
		ID:              id,
		Program:         prog.String(),
		NumInitialGates: stats.NumInitialGates,
		NumMappedGates:  stats.NumMappedGates,
		PreprocessMs:    stats.PreprocessTime.Seconds() * 1000,
		MappingMs:       stats.MappingTime.Seconds() * 1000,
		PostprocessMs:   stats.PostprocessTime.Seconds() * 1000,
	})
}

// RenderCompiledLayout is the handler for GET /api/compile/:id/viz.
func (a *appServer) RenderCompiledLayout(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		return
	}

	id := c.Param("id")
	result, ok := a.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown compile id"})
		return
	}

	img := visualize.Frame(result.Geo, result.Program.InitialPositions)
	c.Header("Content-Type", "image/png")
	if err := visualize.Encode(c.Writer, img); err != nil {
		l.Error().Err(err).Msg("encoding PNG failed")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

func buildCircuitFromJSON(cj CircuitJSON) (*circuit.Circuit, error) {
	b := circuit.New(cj.NQubits, cj.NClbits)
	for _, op := range cj.Ops {
		switch op.Kind {
		case string(gate.H):
			b = b.H(one(op.Qubits))
		case string(gate.X):
			b = b.X(one(op.Qubits))
		case string(gate.Y):
			b = b.Y(one(op.Qubits))
		case string(gate.S):
			b = b.S(one(op.Qubits))
		case string(gate.Sdg):
			b = b.Sdg(one(op.Qubits))
		case string(gate.T):
			b = b.T(one(op.Qubits))
		case string(gate.Tdg):
			b = b.Tdg(one(op.Qubits))
		case string(gate.Z):
			b = b.Z(one(op.Qubits))
		case string(gate.I):
			b = b.I(one(op.Qubits))
		case string(gate.P):
			b = b.P(op.Param, one(op.Qubits))
		case string(gate.RZ):
			b = b.RZ(op.Param, one(op.Qubits))
		case string(gate.RZZ):
			if len(op.Qubits) != 2 {
				return nil, fmt.Errorf("RZZ requires exactly 2 qubits")
			}
			b = b.RZZ(op.Param, op.Qubits[0], op.Qubits[1])
		case string(gate.CZKind):
			if len(op.Qubits) != 2 {
				return nil, fmt.Errorf("CZ requires exactly 2 qubits")
			}
			b = b.CZ(op.Qubits[0], op.Qubits[1])
		case string(gate.Barrier):
			b = b.Barrier(op.Qubits...)
		case string(gate.Measure):
			b = b.Measure(one(op.Qubits), op.Cbit)
		default:
			return nil, fmt.Errorf("unsupported gate kind: %s", op.Kind)
		}
	}
	return b.Build()
}

func one(qubits []int) int {
	if len(qubits) == 0 {
		return -1
	}
	return qubits[0]
}
