package band_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantica-dev/hexband/band"
	"github.com/quantica-dev/hexband/lattice"
)

// TestValidateDirac_Unstrained covers the canonical scenario: t1=2.8,
// t2=0.28, zero strain — the Dirac condition holds and the gap vanishes.
func TestValidateDirac_Unstrained(t *testing.T) {
	v, err := band.ValidateDirac(lattice.Default())
	require.NoError(t, err)

	assert.True(t, v.IsValid, "Dirac condition must hold at zero strain")
	assert.Less(t, v.StructureFactorMagnitude, 1e-6)
	assert.Less(t, v.GapAtK, 1e-4, "gap at K must vanish, in eV")
	assert.InDelta(t, 4*math.Pi/(3*lattice.LatticeConstant), v.KPoint.X, 1e-12)
	assert.Zero(t, v.KPoint.Y)
}

// TestValidateDirac_GapTracksStructureFactor verifies gap = 2·t1·|f1(K)|
// when strain moves the Dirac point off the unstrained K coordinate.
func TestValidateDirac_GapTracksStructureFactor(t *testing.T) {
	p := lattice.Default()
	p.Strain = lattice.StrainTensor{Exx: 0.1}

	v, err := band.ValidateDirac(p)
	require.NoError(t, err)

	assert.False(t, v.IsValid, "strained lattice must fail the unstrained-K check")
	assert.InDelta(t, 2*p.T1*v.StructureFactorMagnitude, v.GapAtK, 1e-9,
		"gap and structure factor must vanish together")
}

// TestValidateDirac_InvalidParams verifies boundary rejection.
func TestValidateDirac_InvalidParams(t *testing.T) {
	p := lattice.Default()
	p.Strain = lattice.StrainTensor{Exx: -2}
	_, err := band.ValidateDirac(p)
	assert.ErrorIs(t, err, lattice.ErrSingularStrain)
}

// TestFermiVelocity_Unstrained pins the graphene value
// v_F = 3·t1·d/(2ħ) ≈ 9.06·10⁵ m/s for t1 = 2.8 eV.
func TestFermiVelocity_Unstrained(t *testing.T) {
	v, err := band.FermiVelocity(lattice.Default())
	require.NoError(t, err)
	assert.InEpsilon(t, 9.063e5, v, 1e-3)
}

// TestFermiVelocity_StrainScaling covers the concrete strain scenario:
// exx=0.1 rescales v_F by exactly sqrt(1.1) ≈ 1.0488.
func TestFermiVelocity_StrainScaling(t *testing.T) {
	v0, err := band.FermiVelocity(lattice.Default())
	require.NoError(t, err)

	p := lattice.Default()
	p.Strain = lattice.StrainTensor{Exx: 0.1}
	v1, err := band.FermiVelocity(p)
	require.NoError(t, err)

	assert.InDelta(t, math.Sqrt(1.1), v1/v0, 1e-12, "uniaxial strain scaling")
}

// TestFermiVelocity_InvalidParams verifies boundary rejection.
func TestFermiVelocity_InvalidParams(t *testing.T) {
	p := lattice.Default()
	p.T1 = 0
	_, err := band.FermiVelocity(p)
	assert.ErrorIs(t, err, lattice.ErrNonPositiveHopping)
}
