package band

import (
	"math"

	"github.com/quantica-dev/hexband/lattice"
)

// Energies is one eigenvalue pair of the two-band Hamiltonian, ordered so
// that Valence ≤ Conduction.
type Energies struct {
	Valence, Conduction float64
}

// Gap returns the direct gap Conduction − Valence at this k point.
func (e Energies) Gap() float64 { return e.Conduction - e.Valence }

// Dispersion evaluates E±(k) for one reciprocal-space point.
//
//	E±(k) = −t2·f2(k) − 3·t2 ± √( t1²|f1(k)|² + m(k)² ) + onsite
//
// The −3·t2 term (NN+NNN mode only) re-centers the spectrum so the Dirac
// point sits at the onsite energy; f2(K) = −3, so the two t2 terms cancel
// there. m(k) = 2·λ·Σ sin(k·δ2ccw) is the spin-orbit mass, zero when
// Parameters.SOC is zero. In NNOnly mode t2 is ignored entirely.
//
// Total function: finite inputs always yield finite energies.
func Dispersion(k lattice.Vec2, p lattice.Parameters, mode lattice.Mode, g lattice.Geometry) Energies {
	f1 := NNStructureFactor(k, g)

	h0 := p.Onsite
	if mode == lattice.NNPlusNNN {
		h0 += -p.T2*NNNStructureFactor(k, g) - 3*p.T2
	}

	off := p.T1 * f1.Magnitude
	if p.SOC != 0 {
		m := 2 * p.SOC * nnnChiralFactor(k, g)
		off = math.Sqrt(off*off + m*m)
	}

	return Energies{Valence: h0 - off, Conduction: h0 + off}
}
