package hwqubit

// Swap is an unordered pair of hw qubits eligible for a swap operation.
type Swap struct {
	A, B HwQubit
}

func (hq *HardwareQubits) initNearbyQubits() {
	for q := HwQubit(0); int(q) < hq.nqubits; q++ {
		hq.computeNearbyQubits(q)
	}
}

// computeNearbyQubits fills nearbyQubits[q] using the initial layout:
// every other hw qubit whose coordinate lies within the interaction
// radius of q's coordinate, at construction time. This set never
// changes after qubits are moved — it is a property of the initial
// layout, used only to seed the swap-distance BFS graph.
func (hq *HardwareQubits) computeNearbyQubits(q HwQubit) {
	coord := hq.hwToCoord[q]
	var out []HwQubit
	for _, nc := range hq.geo.NearbyCoordinates(coord) {
		if other, ok := hq.coordToHw[nc]; ok && other != q {
			out = append(out, other)
		}
	}
	hq.nearbyQubits[q] = out
}

// NearbyQubits returns the fixed set of hw qubits within interaction
// radius of q at the initial layout.
func (hq *HardwareQubits) NearbyQubits(q HwQubit) []HwQubit {
	out := make([]HwQubit, len(hq.nearbyQubits[q]))
	copy(out, hq.nearbyQubits[q])
	return out
}

// GetNearbySwaps returns (q, q') for every q' in q's nearby-qubit set.
func (hq *HardwareQubits) GetNearbySwaps(q HwQubit) []Swap {
	neighbours := hq.nearbyQubits[q]
	out := make([]Swap, len(neighbours))
	for i, n := range neighbours {
		out[i] = Swap{A: q, B: n}
	}
	return out
}

// GetBlockedQubits returns the union of qubits with every hw qubit
// whose interaction disc intersects the disc of some member of
// qubits: these cannot receive an independent local pulse while a
// global pulse targets qubits.
func (hq *HardwareQubits) GetBlockedQubits(qubits []HwQubit) []HwQubit {
	blocked := make(map[HwQubit]bool, len(qubits))
	for _, q := range qubits {
		blocked[q] = true
	}
	for _, q := range qubits {
		for _, n := range hq.nearbyQubits[q] {
			blocked[n] = true
		}
	}
	out := make([]HwQubit, 0, len(blocked))
	for q := range blocked {
		out = append(out, q)
	}
	return out
}

// AllToAllSwapDistance sums getSwapDistance over every unordered pair
// drawn from qubits.
func (hq *HardwareQubits) AllToAllSwapDistance(qubits []HwQubit) (int, error) {
	total := 0
	for i := 0; i < len(qubits); i++ {
		for j := i + 1; j < len(qubits); j++ {
			d, err := hq.GetSwapDistance(qubits[i], qubits[j], true)
			if err != nil {
				return 0, err
			}
			total += d
		}
	}
	return total, nil
}
