package band_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantica-dev/hexband/band"
	"github.com/quantica-dev/hexband/lattice"
)

// TestBuildKPath_InvalidInput covers the rejection paths: degenerate
// lattice constants and sample counts too small to span three segments.
func TestBuildKPath_InvalidInput(t *testing.T) {
	_, err := band.BuildKPath(0, 100)
	assert.ErrorIs(t, err, band.ErrBadLatticeConstant, "a=0 must be rejected")

	_, err = band.BuildKPath(-2.46, 100)
	assert.ErrorIs(t, err, band.ErrBadLatticeConstant, "a<0 must be rejected")

	_, err = band.BuildKPath(math.NaN(), 100)
	assert.ErrorIs(t, err, band.ErrBadLatticeConstant, "NaN must be rejected")

	_, err = band.BuildKPath(lattice.LatticeConstant, 3)
	assert.ErrorIs(t, err, band.ErrBadPointCount, "n<4 must be rejected")
}

// TestBuildKPath_PointCount verifies the requested count is honored
// exactly, remainders included.
func TestBuildKPath_PointCount(t *testing.T) {
	for _, n := range []int{4, 7, 100, 300, 301} {
		path, err := band.BuildKPath(lattice.LatticeConstant, n)
		require.NoError(t, err, "n=%d", n)
		assert.Len(t, path.Points, n, "n=%d", n)
	}
}

// TestBuildKPath_MonotoneDistance verifies the central invariant: the
// cumulative distance sequence is strictly increasing.
func TestBuildKPath_MonotoneDistance(t *testing.T) {
	path, err := band.BuildKPath(lattice.LatticeConstant, 300)
	require.NoError(t, err)

	assert.Zero(t, path.Points[0].Distance, "path must start at distance 0")
	for i := 1; i < len(path.Points); i++ {
		assert.Greater(t, path.Points[i].Distance, path.Points[i-1].Distance,
			"distance must strictly increase at sample %d", i)
	}
}

// TestBuildKPath_Labels verifies the four Γ/M/K/Γ labels share the path's
// accumulated-distance state and land on the exact segment geometry.
func TestBuildKPath_Labels(t *testing.T) {
	const a = lattice.LatticeConstant
	path, err := band.BuildKPath(a, 300)
	require.NoError(t, err)
	require.Len(t, path.Labels, 4)

	gammaM := 2 * math.Pi / (math.Sqrt(3) * a)
	mK := 2 * math.Pi / (3 * a)
	kGamma := 4 * math.Pi / (3 * a)

	assert.Equal(t, "Γ", path.Labels[0].Name)
	assert.Equal(t, "M", path.Labels[1].Name)
	assert.Equal(t, "K", path.Labels[2].Name)
	assert.Equal(t, "Γ", path.Labels[3].Name)

	assert.Zero(t, path.Labels[0].Distance)
	assert.InDelta(t, gammaM, path.Labels[1].Distance, 1e-9, "Γ→M length")
	assert.InDelta(t, gammaM+mK, path.Labels[2].Distance, 1e-9, "Γ→M→K length")
	assert.InDelta(t, gammaM+mK+kGamma, path.Labels[3].Distance, 1e-9, "closed path length")

	assert.InDelta(t, path.Labels[3].Distance, path.Points[len(path.Points)-1].Distance, 1e-12,
		"final label must coincide with the final sample")
}

// TestBuildKPath_Endpoints verifies the path starts and ends at Γ and
// passes through the exact M and K coordinates.
func TestBuildKPath_Endpoints(t *testing.T) {
	const a = lattice.LatticeConstant
	path, err := band.BuildKPath(a, 90)
	require.NoError(t, err)

	first := path.Points[0].K
	last := path.Points[len(path.Points)-1].K
	assert.Zero(t, first.Norm(), "path must start at Γ")
	assert.Zero(t, last.Norm(), "path must close at Γ")

	// with 89 intervals split 30/30/29, M and K land exactly on samples
	m := lattice.Vec2{X: math.Pi / a, Y: math.Pi / (math.Sqrt(3) * a)}
	k := lattice.Vec2{X: 4 * math.Pi / (3 * a)}
	assert.InDelta(t, 0, path.Points[30].K.Sub(m).Norm(), 1e-12, "M corner sample")
	assert.InDelta(t, 0, path.Points[60].K.Sub(k).Norm(), 1e-12, "K corner sample")
}
