package bzone_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantica-dev/hexband/bzone"
	"github.com/quantica-dev/hexband/lattice"
)

// TestBuild_InvalidLatticeConstant verifies boundary rejection.
func TestBuild_InvalidLatticeConstant(t *testing.T) {
	for _, a := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := bzone.Build(a)
		assert.ErrorIs(t, err, bzone.ErrBadLatticeConstant, "a=%v", a)
	}
}

// TestBuild_Hexagon verifies the closed zone boundary: seven points, all
// at radius 4π/(3a), at 60° increments, first equal to last.
func TestBuild_Hexagon(t *testing.T) {
	const a = lattice.LatticeConstant
	z, err := bzone.Build(a)
	require.NoError(t, err)

	require.Len(t, z.Hexagon, 7, "closed hexagon has 7 points")
	assert.Equal(t, z.Hexagon[0], z.Hexagon[6], "boundary must close")

	radius := 4 * math.Pi / (3 * a)
	for i, v := range z.Hexagon[:6] {
		assert.InDelta(t, radius, v.Norm(), 1e-12, "vertex %d radius", i)
		theta := float64(i) * math.Pi / 3
		assert.InDelta(t, radius*math.Cos(theta), v.X, 1e-12, "vertex %d x", i)
		assert.InDelta(t, radius*math.Sin(theta), v.Y, 1e-12, "vertex %d y", i)
	}
}

// TestBuild_NamedPoints pins the Γ, K, K′ and M coordinates.
func TestBuild_NamedPoints(t *testing.T) {
	const a = lattice.LatticeConstant
	z, err := bzone.Build(a)
	require.NoError(t, err)
	require.Len(t, z.Points, 4)

	byName := map[string]lattice.Vec2{}
	for _, np := range z.Points {
		byName[np.Name] = np.K
	}

	radius := 4 * math.Pi / (3 * a)
	assert.Zero(t, byName["Γ"].Norm(), "Γ at the origin")
	assert.InDelta(t, radius, byName["K"].X, 1e-12)
	assert.Zero(t, byName["K"].Y)
	assert.InDelta(t, radius, byName["K′"].Norm(), 1e-12, "K′ on the zone boundary")
	assert.InDelta(t, math.Pi/a, byName["M"].X, 1e-12)
	assert.InDelta(t, math.Pi/(math.Sqrt(3)*a), byName["M"].Y, 1e-12)

	// M is the midpoint of the K–K′ hexagon edge
	mid := lattice.Vec2{
		X: (byName["K"].X + byName["K′"].X) / 2,
		Y: (byName["K"].Y + byName["K′"].Y) / 2,
	}
	assert.InDelta(t, 0, mid.Sub(byName["M"]).Norm(), 1e-12)
}

// TestBuild_PathAndIBZ verifies the Γ→M→K→Γ trace and the closed
// irreducible wedge.
func TestBuild_PathAndIBZ(t *testing.T) {
	z, err := bzone.Build(lattice.LatticeConstant)
	require.NoError(t, err)

	require.Len(t, z.Path, 4)
	require.Len(t, z.IBZ, 4)
	assert.Equal(t, z.Path[0], z.Path[3], "symmetry path must close at Γ")
	assert.Equal(t, z.IBZ[0], z.IBZ[3], "IBZ triangle must close")
	assert.Equal(t, z.Path, z.IBZ, "the IBZ boundary is the Γ-M-K triangle")
}
