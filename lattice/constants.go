package lattice

import "math"

// Physical constants anchoring every derived quantity. Distances in
// Ångström, energies in eV.
const (
	// LatticeConstant is the honeycomb lattice constant a (graphene), in Å.
	LatticeConstant = 2.46

	// DefaultT1 is the default nearest-neighbor hopping t1, in eV.
	DefaultT1 = 2.8

	// DefaultT2 is the default next-nearest-neighbor hopping t2, in eV.
	DefaultT2 = 0.28

	// HBar is the reduced Planck constant, in eV·s.
	HBar = 6.582119569e-16

	// Angstrom is one Ångström, in meters.
	Angstrom = 1e-10
)

// BondLength is the carbon-carbon (NN) distance a/√3, in Å.
var BondLength = LatticeConstant / math.Sqrt(3)
