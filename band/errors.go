package band

import "errors"

// Sentinel errors for path construction and band-structure evaluation.
var (
	// ErrBadPointCount indicates a path sample count too small to span
	// three segments.
	ErrBadPointCount = errors.New("band: point count must be at least 4")

	// ErrBadLatticeConstant indicates a non-positive or non-finite lattice
	// constant.
	ErrBadLatticeConstant = errors.New("band: lattice constant must be positive and finite")

	// ErrDegeneratePath indicates a zero-length segment between two
	// distinct high-symmetry points (a collapsed lattice constant).
	ErrDegeneratePath = errors.New("band: degenerate zero-length path segment")

	// ErrBadClampWindow indicates an inverted or non-finite display window.
	ErrBadClampWindow = errors.New("band: clamp window must be finite with min < max")
)
