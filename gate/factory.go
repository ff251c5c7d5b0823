package gate

import "strings"

// Factory returns a fixed (parameterless) gate by common alias.
//
//	g, _ := gate.Factory("cz")  // -> same instance as CZGate()
//
// Parameterised gates (P, RZ, RZZ) and Barrier are not nameable
// through Factory since they require an angle or span; construct them
// directly with PGate/RZGate/RZZGate/BarrierGate.
func Factory(name string) (Gate, error) {
	switch norm(name) {
	case "h":
		return HGate(), nil
	case "x":
		return XGate(), nil
	case "y":
		return YGate(), nil
	case "s":
		return SGate(), nil
	case "sdg":
		return SdgGate(), nil
	case "t":
		return TGate(), nil
	case "tdg":
		return TdgGate(), nil
	case "z":
		return ZGate(), nil
	case "i", "id":
		return IGate(), nil
	case "cz":
		return CZGate(), nil
	case "m", "measure", "meas":
		return MeasureGate(), nil
	}
	return nil, ErrUnknownGate{Name: name}
}

// ErrUnknownGate is returned by Factory when the label isn't recognised.
type ErrUnknownGate struct{ Name string }

func (e ErrUnknownGate) Error() string { return "gate: unknown gate " + e.Name }

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
