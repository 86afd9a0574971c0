package band

import (
	"math"

	"github.com/quantica-dev/hexband/lattice"
)

// DiracTolerance is the |f1(K)| threshold below which the Dirac condition
// is considered satisfied, in normalized units.
const DiracTolerance = 1e-6

// DiracValidation reports whether the NN structure factor vanishes at the
// K point — the defining symmetry condition of a Dirac semimetal.
type DiracValidation struct {
	// KPoint is the (unstrained) K coordinate the check was evaluated at.
	// Under nonzero strain the true Dirac point shifts away from this
	// coordinate; the unstrained K is kept deliberately, so IsValid=false
	// under strain is the expected diagnostic, not a defect.
	KPoint lattice.Vec2
	// StructureFactorMagnitude is |f1(K)|.
	StructureFactorMagnitude float64
	// IsValid is true iff |f1(K)| < DiracTolerance.
	IsValid bool
	// GapAtK is |E+(K) − E−(K)| = 2·t1·|f1(K)| (plus any spin-orbit mass),
	// in eV. It vanishes together with the structure factor.
	GapAtK float64
}

// ValidateDirac evaluates f1 at the canonical (unstrained) K point using
// the strain-transformed neighbor vectors and reports the resulting gap.
func ValidateDirac(p lattice.Parameters) (*DiracValidation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := lattice.NewGeometry(p.Strain)
	k := lattice.Vec2{X: 4 * math.Pi / (3 * lattice.LatticeConstant)}
	f1 := NNStructureFactor(k, g)
	e := Dispersion(k, p, lattice.NNPlusNNN, g)

	return &DiracValidation{
		KPoint:                   k,
		StructureFactorMagnitude: f1.Magnitude,
		IsValid:                  f1.Magnitude < DiracTolerance,
		GapAtK:                   e.Gap(),
	}, nil
}

// FermiVelocity returns the slope of the linear dispersion at the Dirac
// point, in m/s:
//
//	v_F = 3·t1·d·s / (2ħ)
//
// with d the carbon-carbon distance and s = sqrt((1+exx)(1+eyy) − exy²)
// the area-scaling factor of the strain transform.
func FermiVelocity(p lattice.Parameters) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	d := lattice.BondLength * lattice.Angstrom
	return 3 * p.T1 * d * p.Strain.ScaleFactor() / (2 * lattice.HBar), nil
}
