// Package band evaluates the two-band tight-binding spectrum of the
// honeycomb lattice: structure factors, the dispersion E±(k), sampled
// Γ→M→K→Γ band structures, Dirac-point validation, and the Fermi velocity.
//
// 🚀 What is the two-band model?
//
//	Electrons hop between the two sublattices of the honeycomb lattice
//	with amplitude t1 (nearest neighbors) and within a sublattice with
//	amplitude t2 (next-nearest neighbors). Diagonalizing the 2×2 Bloch
//	Hamiltonian yields
//
//	    E±(k) = −t2·f2(k) ± √( t1²·|f1(k)|² + m(k)² ) + onsite
//
//	where f1 sums complex phases over the three NN vectors, f2 sums
//	cosines over the six NNN vectors, and m(k) is an optional spin-orbit
//	mass (zero unless Parameters.SOC is set). In NN+NNN mode the spectrum
//	is shifted by −3·t2 so the Dirac point stays at the onsite energy
//	(f2 evaluates to −3 at the K point, contributing exactly +3·t2).
//
// ✨ Key entry points:
//
//   - NNStructureFactor / NNNStructureFactor — pure functions of (k, geometry)
//   - Dispersion — E±(k) for one reciprocal-space point
//   - BuildKPath — distance-parameterized Γ→M→K→Γ sampling with labels
//   - Compute — a full BandStructureResult, clamped for display with raw
//     energies retained for analysis consumers
//   - ValidateDirac / FermiVelocity — symmetry diagnostics at the K point
//
// All functions are referentially transparent; errors are ordinary sentinel
// values returned at the API boundary, never panics.
//
// Complexity: one dispersion evaluation is O(1); a band structure over n
// path points is O(n).
package band
