package band_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantica-dev/hexband/band"
	"github.com/quantica-dev/hexband/lattice"
)

// TestDispersion_NNOnlyParticleHoleSymmetry verifies that without NNN
// hopping the two bands mirror each other about the onsite energy at
// every k point.
func TestDispersion_NNOnlyParticleHoleSymmetry(t *testing.T) {
	p := lattice.Parameters{T1: 2.8, Onsite: 0.7}
	g := lattice.NewGeometry(p.Strain)

	for _, k := range []lattice.Vec2{
		{},
		{X: 0.4, Y: 0.9},
		{X: -1.3, Y: 0.2},
		kDirac(),
	} {
		e := band.Dispersion(k, p, lattice.NNOnly, g)
		assert.InDelta(t, 2*p.Onsite, e.Valence+e.Conduction, 1e-12, "bands must mirror about onsite at k=%v", k)
	}
}

// TestDispersion_GammaPoint pins the band extrema at Γ: |f1(Γ)|=3, so the
// NN-only bands sit at onsite ± 3·t1.
func TestDispersion_GammaPoint(t *testing.T) {
	p := lattice.Parameters{T1: 2.8}
	g := lattice.NewGeometry(p.Strain)

	e := band.Dispersion(lattice.Vec2{}, p, lattice.NNOnly, g)
	assert.InDelta(t, -3*p.T1, e.Valence, 1e-12, "valence at Γ")
	assert.InDelta(t, 3*p.T1, e.Conduction, 1e-12, "conduction at Γ")
}

// TestDispersion_RecenteredDiracPoint verifies the −3·t2 shift empirically:
// with NNN coupling both bands must still touch at the onsite energy at K.
func TestDispersion_RecenteredDiracPoint(t *testing.T) {
	p := lattice.Parameters{T1: 2.8, T2: 0.28, Onsite: 0.3}
	g := lattice.NewGeometry(p.Strain)

	e := band.Dispersion(kDirac(), p, lattice.NNPlusNNN, g)
	assert.InDelta(t, p.Onsite, e.Valence, 1e-9, "valence must touch onsite at K")
	assert.InDelta(t, p.Onsite, e.Conduction, 1e-9, "conduction must touch onsite at K")
	assert.InDelta(t, 0.0, e.Gap(), 1e-9, "no gap at K without spin-orbit coupling")
}

// TestDispersion_SpinOrbitGap verifies the Kane-Mele mass term: at K the
// chiral NNN sine sum is −3√3/2, so the gap is 2·|2λ·(−3√3/2)| = 6√3·λ.
func TestDispersion_SpinOrbitGap(t *testing.T) {
	const soc = 0.01
	p := lattice.Parameters{T1: 2.8, T2: 0.28, SOC: soc}
	g := lattice.NewGeometry(p.Strain)

	e := band.Dispersion(kDirac(), p, lattice.NNPlusNNN, g)
	assert.InDelta(t, 6*math.Sqrt(3)*soc, e.Gap(), 1e-9, "spin-orbit gap at K")

	// The mass term vanishes at Γ, leaving the extrema untouched.
	eGamma := band.Dispersion(lattice.Vec2{}, p, lattice.NNOnly, g)
	assert.InDelta(t, 6*p.T1, eGamma.Gap(), 1e-9, "spin-orbit term must not shift Γ")
}

// TestDispersion_Finite checks that the dispersion stays finite over a
// coarse sweep of the zone, strained and not.
func TestDispersion_Finite(t *testing.T) {
	p := lattice.Default()
	p.Strain = lattice.StrainTensor{Exx: 0.08, Eyy: -0.04, Exy: 0.02}
	g := lattice.NewGeometry(p.Strain)

	for i := -5; i <= 5; i++ {
		for j := -5; j <= 5; j++ {
			k := lattice.Vec2{X: float64(i) * 0.5, Y: float64(j) * 0.5}
			e := band.Dispersion(k, p, lattice.NNPlusNNN, g)
			assert.False(t, math.IsNaN(e.Valence) || math.IsInf(e.Valence, 0), "valence at %v", k)
			assert.False(t, math.IsNaN(e.Conduction) || math.IsInf(e.Conduction, 0), "conduction at %v", k)
			assert.LessOrEqual(t, e.Valence, e.Conduction, "ordering at %v", k)
		}
	}
}
