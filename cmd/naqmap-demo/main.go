// Command naqmap-demo maps a small Bell-pair circuit onto a toy
// two-zone architecture and prints the resulting neutral-atom
// operation stream, in the spirit of the teacher's cmd/cli Bell-state
// demonstration but exercising the mapper instead of a simulator.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kegliz/naqmap/circuit"
	"github.com/kegliz/naqmap/geometry"
	"github.com/kegliz/naqmap/mapper"
)

func demoGeometryJSON() string {
	return `{
		"name": "demo-machine",
		"nqubits": 2,
		"interactionRadius": 2,
		"noInteractionRadius": 5,
		"minAtomDistance": 1,
		"zones": [
			{
				"name": "storage",
				"kind": "storage",
				"sites": [
					{"row": 0, "col": 0, "x": 0, "y": 0},
					{"row": 0, "col": 1, "x": 5, "y": 0},
					{"row": 0, "col": 2, "x": 10, "y": 0},
					{"row": 1, "col": 0, "x": 0, "y": 5},
					{"row": 1, "col": 1, "x": 5, "y": 5},
					{"row": 1, "col": 2, "x": 10, "y": 5}
				],
				"localGates": [{"kind": "H", "nControls": 0}],
				"globalGates": [{"kind": "RZ", "nControls": 0}]
			},
			{
				"name": "entangling",
				"kind": "interaction",
				"sites": [
					{"row": 0, "col": 0, "x": 0, "y": 20},
					{"row": 0, "col": 1, "x": 5, "y": 20}
				],
				"localGates": [],
				"globalGates": [{"kind": "CZ", "nControls": 1}]
			}
		]
	}`
}

func main() {
	geo, err := geometry.Load(strings.NewReader(demoGeometryJSON()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading geometry: %v\n", err)
		os.Exit(1)
	}

	c, err := circuit.New(2, 0).H(0).CZ(0, 1).Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "building circuit: %v\n", err)
		os.Exit(1)
	}

	prog, _, stats, err := mapper.Map(c, geo, mapper.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "mapping circuit: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("--- Mapped operation stream ---")
	fmt.Println(prog.String())
	fmt.Printf("\ngates: %d -> %d, preprocess=%s mapping=%s postprocess=%s\n",
		stats.NumInitialGates, stats.NumMappedGates,
		stats.PreprocessTime, stats.MappingTime, stats.PostprocessTime)
}
