package mueller

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukaszgryglicki/polarize/internal/num"
)

func requireFinite(t *testing.T, M Matrix[sc]) {
	t.Helper()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			v := float64(M.M[r][c])
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "entry (%d,%d) = %v", r, c, v)
		}
	}
}

// A pure (non-depolarizing) interface matrix satisfies a² = b² + c²(cos²δ + sin²δ).
func requirePure(t *testing.T, M Matrix[sc]) {
	t.Helper()
	lhs := float64(M.M[0][0] * M.M[0][0])
	rhs := float64(M.M[0][1]*M.M[0][1] + M.M[2][2]*M.M[2][2] + M.M[2][3]*M.M[2][3])
	require.InDelta(t, lhs, rhs, 1e-12)
}

func TestSpecularReflectionNormalIncidence(t *testing.T) {
	const eta = 1.5
	f0 := math.Pow((eta-1)/(eta+1), 2)
	for _, M := range []Matrix[sc]{
		SpecularReflectionReal[sc](1, eta),
		SpecularReflection[sc](1, num.Real[sc](eta)),
	} {
		assert.InDelta(t, f0, float64(M.M[0][0]), eps)
		assert.InDelta(t, 0, float64(M.M[0][1]), eps)
		assert.InDelta(t, 0, float64(M.M[1][0]), eps)
		assert.InDelta(t, f0, float64(M.M[2][2]), eps)
		assert.InDelta(t, 0, float64(M.M[2][3]), eps)
		requirePure(t, M)
	}
}

func TestSpecularReflectionBrewster(t *testing.T) {
	cosB := sc(1 / math.Sqrt(1+1.5*1.5))
	M := SpecularReflectionReal(cosB, 1.5)
	// Only s-polarized light survives: a == b and no cross terms.
	require.InDelta(t, float64(M.M[0][0]), float64(M.M[0][1]), 1e-12)
	require.InDelta(t, 0, float64(M.M[2][2]), 1e-12)
	out := M.Apply(Unpolarized[sc](1))
	require.InDelta(t, 1, float64(DegreeOfPolarization(out)), 1e-9)
}

func TestSpecularReflectionConductorPhase(t *testing.T) {
	M := SpecularReflection[sc](0.6, num.C[sc](0.2, 3.5))
	requireFinite(t, M)
	requirePure(t, M)
	// Metals retard p against s: circular and diagonal components mix.
	require.Greater(t, math.Abs(float64(M.M[2][3])), 1e-3)
	require.Equal(t, M.M[2][3], -M.M[3][2])
	require.Equal(t, M.M[2][2], M.M[3][3])
}

func TestSpecularReflectionDegenerateHasNoNaN(t *testing.T) {
	// Index-matched interface: both amplitudes vanish and the phase difference
	// would be 0/0.
	M := SpecularReflectionReal[sc](0.5, 1)
	requireFinite(t, M)
	requireMatrix(t, Zero[sc](), M)

	M = SpecularReflection[sc](0.5, num.Real[sc](1))
	requireFinite(t, M)
	requireMatrix(t, Zero[sc](), M)
}

func TestSpecularTransmissionNormalIncidence(t *testing.T) {
	M := SpecularTransmission[sc](1, 1.5)
	assert.InDelta(t, 0.96, float64(M.M[0][0]), eps)
	assert.InDelta(t, 0, float64(M.M[0][1]), eps)
	assert.InDelta(t, 0.96, float64(M.M[2][2]), eps)
	assert.Zero(t, float64(M.M[2][3]))
	assert.Zero(t, float64(M.M[3][2]))
}

func TestReflectionPlusTransmissionConservesEnergy(t *testing.T) {
	for _, c := range []sc{1, 0.9, 0.7, 0.3, 0.05, -0.95, -0.8} {
		R := SpecularReflectionReal(c, 1.5)
		T := SpecularTransmission(c, 1.5)
		requireFinite(t, T)
		assert.InDelta(t, 1, float64(R.M[0][0]+T.M[0][0]), 1e-9, "cos=%v", c)
		assert.InDelta(t, 0, float64(R.M[0][1]+T.M[0][1]), 1e-9, "cos=%v", c)
	}
}

func TestSpecularTransmissionTotalInternalReflection(t *testing.T) {
	requireMatrix(t, Zero[sc](), SpecularTransmission[sc](-0.3, 1.5))
	R := SpecularReflectionReal[sc](-0.3, 1.5)
	require.InDelta(t, 1, float64(R.M[0][0]), eps)
}

func TestSpecularTransmissionGrazing(t *testing.T) {
	M := SpecularTransmission[sc](0, 1.5)
	requireFinite(t, M)
	requireMatrix(t, Zero[sc](), M)
	requireFinite(t, SpecularTransmission[sc](1e-9, 1.5))
}

func TestSpecularTransmissionIndexMatched(t *testing.T) {
	requireMatrix(t, Identity[sc](), SpecularTransmission[sc](0.4, 1))
}

func TestInteractionPacketMatchesScalar(t *testing.T) {
	cos := num.Packet[float64]{1, 0.8, 0.5, 0.1, 0, -0.3, -0.9, 0.5}
	eta := num.Packet[float64]{1.5, 1.5, 1.33, 2.4, 1.5, 1.5, 1.5, 1}
	R := SpecularReflectionReal(cos, eta)
	T := SpecularTransmission(cos, eta)
	for i := 0; i < num.Width; i++ {
		requireFinite(t, R.Lane(i))
		requireFinite(t, T.Lane(i))
		requireMatrix(t, SpecularReflectionReal(sc(cos[i]), sc(eta[i])), R.Lane(i))
		requireMatrix(t, SpecularTransmission(sc(cos[i]), sc(eta[i])), T.Lane(i))
	}

	k := num.Packet[float64]{0, 1, 2, 3, 0.5, 0, 0, 0}
	C := SpecularReflection(cos, num.C(eta, k))
	for i := 0; i < num.Width; i++ {
		requireMatrix(t, SpecularReflection(sc(cos[i]), num.C(sc(eta[i]), sc(k[i]))), C.Lane(i))
	}
}
