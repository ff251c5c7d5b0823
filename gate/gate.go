package gate

// Gate is the minimal contract a gate vocabulary member must fulfil.
// Targets/Controls are relative indices within the gate's own span;
// the circuit package attaches the absolute qubit list an instance of
// a gate acts on.
type Gate interface {
	Kind() Kind
	QubitSpan() int
	Targets() []int
	Controls() []int
	// Param returns the continuous rotation angle for P/RZ/RZZ gates,
	// and 0 for every fixed gate.
	Param() float64
}

// ---------- immutable value objects ----------------------------------

// fixed1 is a parameterless single-qubit gate.
type fixed1 struct{ kind Kind }

func (g fixed1) Kind() Kind      { return g.kind }
func (g fixed1) QubitSpan() int  { return 1 }
func (g fixed1) Targets() []int  { return []int{0} }
func (g fixed1) Controls() []int { return []int{} }
func (g fixed1) Param() float64  { return 0 }

// param1 is a single-qubit gate parameterised by a rotation angle.
type param1 struct {
	kind  Kind
	theta float64
}

func (g param1) Kind() Kind      { return g.kind }
func (g param1) QubitSpan() int  { return 1 }
func (g param1) Targets() []int  { return []int{0} }
func (g param1) Controls() []int { return []int{} }
func (g param1) Param() float64  { return g.theta }

// controlled2 is a 2-qubit gate with one control and one target.
type controlled2 struct {
	kind  Kind
	theta float64
}

func (g controlled2) Kind() Kind      { return g.kind }
func (g controlled2) QubitSpan() int  { return 2 }
func (g controlled2) Targets() []int  { return []int{1} }
func (g controlled2) Controls() []int { return []int{0} }
func (g controlled2) Param() float64  { return g.theta }

// barrier is an n-qubit, control-free synchronisation marker.
type barrier struct{ span int }

func (g barrier) Kind() Kind     { return Barrier }
func (g barrier) QubitSpan() int { return g.span }
func (g barrier) Targets() []int {
	out := make([]int, g.span)
	for i := range out {
		out[i] = i
	}
	return out
}
func (g barrier) Controls() []int { return []int{} }
func (g barrier) Param() float64  { return 0 }

// measure is the 1-qubit measurement operation.
type measure struct{}

func (measure) Kind() Kind      { return Measure }
func (measure) QubitSpan() int  { return 1 }
func (measure) Targets() []int  { return []int{0} }
func (measure) Controls() []int { return []int{} }
func (measure) Param() float64  { return 0 }

// ---------- constructors ----------------------------------------------

var (
	hGate   = fixed1{H}
	xGate   = fixed1{X}
	yGate   = fixed1{Y}
	sGate   = fixed1{S}
	sdgGate = fixed1{Sdg}
	tGate   = fixed1{T}
	tdgGate = fixed1{Tdg}
	zGate   = fixed1{Z}
	iGate   = fixed1{I}
	czGate  = controlled2{kind: CZKind}
	measG   = measure{}
)

// HGate returns the shared Hadamard instance.
func HGate() Gate { return hGate }

// XGate returns the shared Pauli-X instance.
func XGate() Gate { return xGate }

// YGate returns the shared Pauli-Y instance.
func YGate() Gate { return yGate }

// SGate returns the shared phase-S instance.
func SGate() Gate { return sGate }

// SdgGate returns the shared S-dagger instance.
func SdgGate() Gate { return sdgGate }

// TGate returns the shared T instance.
func TGate() Gate { return tGate }

// TdgGate returns the shared T-dagger instance.
func TdgGate() Gate { return tdgGate }

// ZGate returns the shared Pauli-Z instance.
func ZGate() Gate { return zGate }

// IGate returns the shared identity instance.
func IGate() Gate { return iGate }

// PGate builds a phase gate with rotation angle theta.
func PGate(theta float64) Gate { return param1{kind: P, theta: theta} }

// RZGate builds a single-qubit Z-rotation gate with angle theta.
func RZGate(theta float64) Gate { return param1{kind: RZ, theta: theta} }

// RZZGate builds a two-qubit ZZ-rotation gate with angle theta. It
// reuses the controlled2 shape purely for its two-qubit-index layout;
// RZZ has no real control/target asymmetry, but both indices still
// need carrying alongside the other two-qubit gates.
func RZZGate(theta float64) Gate { return controlled2{kind: RZZ, theta: theta} }

// CZGate returns the shared controlled-Z instance, the machine's sole
// native entangling gate.
func CZGate() Gate { return czGate }

// BarrierGate builds a barrier spanning span qubits.
func BarrierGate(span int) Gate { return barrier{span: span} }

// MeasureGate returns the shared measurement instance.
func MeasureGate() Gate { return measG }
