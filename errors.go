package lutshader

import "errors"

// Precondition errors. They are returned wrapped with the offending value;
// use errors.Is to test for them.
var (
	// ErrNilLUT is returned when a nil LUT is passed to the emitter.
	ErrNilLUT = errors.New("lutshader: nil LUT")

	// ErrInvalidLength is returned when a LUT has fewer than two entries,
	// or a half-domain LUT does not have one entry per half bit pattern.
	ErrInvalidLength = errors.New("lutshader: invalid LUT length")

	// ErrInvalidWidth is returned for a texture width or maximum texture
	// width that cannot hold the packed rows.
	ErrInvalidWidth = errors.New("lutshader: invalid texture width")

	// ErrInvalidHeight is returned for a non-positive texture height.
	ErrInvalidHeight = errors.New("lutshader: invalid texture height")

	// ErrSizeMismatch is returned when the value count is not a positive
	// multiple of three or does not fit the requested texture.
	ErrSizeMismatch = errors.New("lutshader: LUT value count mismatch")
)
