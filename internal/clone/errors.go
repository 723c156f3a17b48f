package clone

import "errors"

var (
	// ErrInvalidInput is for deterministic, caller-correctable input errors:
	// empty sequences, out-of-range cut offsets, non-positive molar ratios
	ErrInvalidInput = errors.New("invalid input")

	// ErrIncompatibleEnds is returned when a ligation is requested between
	// fragments whose ends fail the compatibility check
	ErrIncompatibleEnds = errors.New("incompatible fragment ends")

	// ErrNoEnzymes is returned when an operation that needs enzymes is
	// handed an empty resolved set
	ErrNoEnzymes = errors.New("no enzymes resolved")
)
