package lattice

import "errors"

// Sentinel errors for parameter validation.
var (
	// ErrNonPositiveHopping indicates t1 ≤ 0; the dispersion would be
	// sign-degenerate and physically meaningless.
	ErrNonPositiveHopping = errors.New("lattice: nearest-neighbor hopping t1 must be positive")

	// ErrSingularStrain indicates a strain tensor whose transform
	// determinant is not positive, collapsing the lattice.
	ErrSingularStrain = errors.New("lattice: strain transform must have positive determinant")

	// ErrNonFiniteParameter indicates NaN or ±Inf in a parameter field.
	ErrNonFiniteParameter = errors.New("lattice: parameters must be finite")
)
