package visualize

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kegliz/naqmap/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tinyGeoJSON() string {
	return `{
		"name": "viz-demo",
		"nqubits": 1,
		"interactionRadius": 2,
		"noInteractionRadius": 5,
		"minAtomDistance": 1,
		"zones": [
			{
				"name": "storage",
				"kind": "storage",
				"sites": [
					{"row": 0, "col": 0, "x": 0, "y": 0},
					{"row": 0, "col": 1, "x": 40, "y": 0}
				],
				"localGates": [{"kind": "H", "nControls": 0}],
				"globalGates": []
			},
			{
				"name": "entangling",
				"kind": "interaction",
				"sites": [
					{"row": 0, "col": 0, "x": 0, "y": 80}
				],
				"localGates": [],
				"globalGates": [{"kind": "CZ", "nControls": 1}]
			}
		]
	}`
}

func loadTinyGeo(t *testing.T) *geometry.Geometry {
	t.Helper()
	g, err := geometry.Load(strings.NewReader(tinyGeoJSON()))
	require.NoError(t, err)
	return g
}

func TestFrameRendersSitesAndAtoms(t *testing.T) {
	geo := loadTinyGeo(t)
	img := Frame(geo, []geometry.Point{{X: 0, Y: 0}})

	assert.Greater(t, img.Bounds().Dx(), 0)
	assert.Greater(t, img.Bounds().Dy(), 0)

	// The atom disc is drawn in atomColor at the projected origin.
	px, py := project(geometry.Point{X: 0, Y: 0})
	assert.Equal(t, atomColor, img.RGBAAt(px, py))
}

func TestFrameHandlesNoAtoms(t *testing.T) {
	geo := loadTinyGeo(t)
	img := Frame(geo, nil)
	assert.NotNil(t, img)
}

func TestEncodeWritesPNGSignature(t *testing.T) {
	geo := loadTinyGeo(t)
	img := Frame(geo, nil)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}
