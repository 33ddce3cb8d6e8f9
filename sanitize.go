package lutshader

import "math"

// SanitizeFloat replaces non-finite values before they reach a texture.
// NaN becomes 0 and infinities become the largest finite float32 of the
// same sign. Finite values are returned unchanged.
//
// Some samplers spread a NaN texel across the whole filter footprint, so
// packed LUT textures never contain one.
func SanitizeFloat(f float32) float32 {
	switch {
	case f != f:
		return 0
	case f > math.MaxFloat32:
		return math.MaxFloat32
	case f < -math.MaxFloat32:
		return -math.MaxFloat32
	default:
		return f
	}
}
