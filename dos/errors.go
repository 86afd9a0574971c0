package dos

import "errors"

// Sentinel errors for DOS computation.
var (
	// ErrBadWindow indicates a non-finite or inverted energy window.
	ErrBadWindow = errors.New("dos: energy window must be finite with eMin < eMax")

	// ErrBadBinCount indicates fewer than 2 histogram bins.
	ErrBadBinCount = errors.New("dos: bin count must be at least 2")

	// ErrBadResolution indicates a k-grid resolution below 2.
	ErrBadResolution = errors.New("dos: k-grid resolution must be at least 2")

	// ErrBadBroadening indicates a non-positive or non-finite Gaussian width.
	ErrBadBroadening = errors.New("dos: broadening width must be positive and finite")

	// ErrEmptySpectrum indicates zero accumulated spectral weight: the
	// energy window lies entirely outside the populated band range.
	ErrEmptySpectrum = errors.New("dos: no spectral weight inside the energy window")
)
