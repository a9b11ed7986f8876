package optics

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func ptr(v float64) *float64 { return &v }

func TestElementCfgBuildKinds(t *testing.T) {
	for _, k := range Kinds {
		ec := ElementCfg{Kind: k, Normal: Vec3{0, 0, 1}, Eta: 1.5, X: 1, Y: 0.5}
		el, err := ec.Build()
		require.NoError(t, err, k)
		assert.Equal(t, k, el.Name())
	}
	// Kinds are case-insensitive.
	el, err := ElementCfg{Kind: " Polarizer "}.Build()
	require.NoError(t, err)
	assert.Equal(t, KindPolarizer, el.Name())
}

func TestElementCfgBuildValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  ElementCfg
		want error
	}{
		{"unknown", ElementCfg{Kind: "prism"}, ErrUnknownKind},
		{"value>1", ElementCfg{Kind: KindPolarizer, Value: ptr(1.5)}, ErrInvalidValue},
		{"value<0", ElementCfg{Kind: KindAbsorber, Value: ptr(-0.1)}, ErrInvalidValue},
		{"diattenuator", ElementCfg{Kind: KindDiattenuator, X: 2, Y: 0.5}, ErrInvalidValue},
		{"zero normal", ElementCfg{Kind: KindReflect, Eta: 1.5}, ErrZeroVector},
		{"bad eta", ElementCfg{Kind: KindTransmit, Normal: Vec3{0, 0, 1}}, ErrInvalidIndex},
		{"opaque", ElementCfg{Kind: KindTransmit, Normal: Vec3{0, 0, 1}, Eta: 0.2, K: 3}, ErrOpaqueTransmission},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.cfg.Build()
			require.ErrorIs(t, err, c.want)
		})
	}
}

func TestElementCfgZeroValueAllowed(t *testing.T) {
	el, err := ElementCfg{Kind: KindAbsorber, Value: ptr(0)}.Build()
	require.NoError(t, err)
	out, err := el.Interact(Beam{Stokes: unpolarized(), Path: identity()})
	require.NoError(t, err)
	assert.Zero(t, float64(out.Stokes.M[0][0]))
}

func TestSourceCfgDefaults(t *testing.T) {
	b, err := SourceCfg{Direction: Vec3{0, 0, 2}}.Build()
	require.NoError(t, err)
	assert.Equal(t, [4]float64{1, 0, 0, 0}, stokesValues(b.Stokes))
	assert.InDelta(t, 1, r3.Norm(b.Direction), 1e-12)
	assert.InDelta(t, 1, r3.Norm(b.Basis), 1e-12)
	assert.InDelta(t, 0, r3.Dot(b.Basis, b.Direction), 1e-12)
	assert.Equal(t, identity(), b.Path)
}

func TestSourceCfgValidation(t *testing.T) {
	_, err := SourceCfg{}.Build()
	require.ErrorIs(t, err, ErrZeroVector)

	_, err = SourceCfg{Direction: Vec3{0, 0, 1}, Basis: Vec3{1, 0, 1}}.Build()
	require.ErrorIs(t, err, ErrNotOrthogonal)

	_, err = SourceCfg{Direction: Vec3{0, 0, 1}, Stokes: [4]float64{1, 1, 1, 0}}.Build()
	require.ErrorIs(t, err, ErrUnphysicalStokes)

	_, err = SourceCfg{Direction: Vec3{0, 0, 1}, Stokes: [4]float64{1, 0.6, 0, 0.8}}.Build()
	require.NoError(t, err)
}

func TestConfigBuildReportsElementIndex(t *testing.T) {
	cfg := Config{
		Source:   SourceCfg{Direction: Vec3{0, 0, 1}},
		Elements: []ElementCfg{{Kind: KindPolarizer}, {Kind: "lens"}},
	}
	_, _, err := cfg.Build()
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), "element #1")

	_, _, err = Config{Source: SourceCfg{Direction: Vec3{0, 0, 1}}}.Build()
	require.ErrorIs(t, err, ErrNoElements)
}

const jsonTrain = `{
  "source": {"stokes": [1, 0, 0, 0], "direction": [0, 0, 1], "basis": [1, 0, 0]},
  "elements": [
    {"kind": "polarizer"},
    {"kind": "polarizer", "angleDeg": 60}
  ]
}`

const yamlTrain = `
source:
  stokes: [1, 0, 0, 0]
  direction: [0, 0, 1]
  basis: [1, 0, 0]
elements:
  - kind: polarizer
  - kind: polarizer
    angleDeg: 60
sensor:
  basis: [0, 1, 0]
`

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadConfigJSONAndYAML(t *testing.T) {
	j, err := loadConfig(writeTemp(t, "train.json", jsonTrain))
	require.NoError(t, err)
	y, err := loadConfig(writeTemp(t, "train.yaml", yamlTrain))
	require.NoError(t, err)

	assert.Equal(t, j.Source, y.Source)
	assert.Equal(t, j.Elements, y.Elements)
	assert.Nil(t, j.Sensor)
	require.NotNil(t, y.Sensor)
	assert.Equal(t, Vec3{0, 1, 0}, y.Sensor.Basis)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = loadConfig(writeTemp(t, "bad.json", "{"))
	require.Error(t, err)

	_, err = loadConfig(writeTemp(t, "empty.yml", "source: {direction: [0, 0, 1]}\n"))
	require.ErrorIs(t, err, ErrNoElements)
}

func TestRunMalus(t *testing.T) {
	res, err := Run(writeTemp(t, "train.json", jsonTrain))
	require.NoError(t, err)
	c := math.Cos(math.Pi / 3)
	assert.InDelta(t, 0.5*c*c, res.StokesValues()[0], 1e-12)
	assert.InDelta(t, 60, res.AoLPDeg(), 1e-9)
	assert.InDelta(t, 1, res.DoLP(), 1e-9)
}

func TestSampleTrains(t *testing.T) {
	paths, err := filepath.Glob("../../trains/*")
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, p := range paths {
		res, err := Run(p)
		require.NoError(t, err, p)
		s := res.StokesValues()
		assert.GreaterOrEqual(t, s[0], -1e-12, p)
		assert.LessOrEqual(t, res.DoP(), 1+1e-9, p)
	}
}
