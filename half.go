package lutshader

import "math"

// HalfDomainLength is the length of a half-domain LUT: one entry for
// every 16-bit half-float bit pattern.
const HalfDomainLength = 1 << 16

// HalfEncoding holds the IEEE 754 binary16 constants used to recover a
// half-float bit pattern from a float with arithmetic alone. The generated
// shader code and Index both read them from here.
type HalfEncoding struct {
	// NormMin is the smallest positive normal half, 2^-14.
	NormMin float32
	// Max is the largest finite half.
	Max float32
	// DenormMax is the largest denormal half, 2^-14 - 2^-24.
	DenormMax float32
	// MantissaMax is the largest mantissa field value.
	MantissaMax float32
	// ExpBias is the exponent bias.
	ExpBias float32
	// ExpScale is the weight of one exponent step in the bit pattern.
	ExpScale float32
	// SignOffset is the weight of the sign bit.
	SignOffset float32
}

// DefaultHalfEncoding describes IEEE 754 binary16.
var DefaultHalfEncoding = HalfEncoding{
	NormMin:     6.10351562e-05,
	Max:         65504,
	DenormMax:   6.09755515e-05,
	MantissaMax: 1023,
	ExpBias:     15,
	ExpScale:    1024,
	SignOffset:  32768,
}

// Index computes the half-float bit pattern of f the way the generated
// half-domain shader code does, using floor/log2/pow instead of bit casts.
// The result is fractional for values that are not exactly representable
// as a half. Magnitudes above Max clamp to Max; NaN has no meaningful
// result. Negative zero maps to the index of positive zero.
func (h HalfEncoding) Index(f float32) float64 {
	abs := math.Abs(float64(f))
	var dep float64
	if abs > float64(h.NormMin) {
		a := math.Min(abs, float64(h.Max))
		exp := math.Floor(math.Log2(a))
		lower := math.Pow(2, exp)
		mantissa := (a - lower) / lower
		dep = (exp + mantissa + float64(h.ExpBias)) * float64(h.ExpScale)
	} else {
		dep = abs * float64(h.MantissaMax) / float64(h.DenormMax)
	}
	if f < 0 {
		dep += float64(h.SignOffset)
	}
	return dep
}

// HalfToFloat32 decodes a binary16 bit pattern.
func HalfToFloat32(bits uint16) float32 {
	sign := 1.0
	if bits&0x8000 != 0 {
		sign = -1
	}
	exp := int(bits>>10) & 0x1f
	mant := float64(bits & 0x3ff)

	switch exp {
	case 0:
		return float32(sign * math.Ldexp(mant, -24))
	case 0x1f:
		if mant != 0 {
			return float32(math.NaN())
		}
		return float32(math.Inf(int(sign)))
	default:
		return float32(sign * math.Ldexp(1+mant/1024, exp-15))
	}
}
