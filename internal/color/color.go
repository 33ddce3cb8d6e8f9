// Package color provides the transfer curves the lutshader command samples
// into LUTs.
//
// Curves are defined on the whole real line. The sRGB curves are extended
// to negative inputs by odd symmetry, so that half-domain LUTs, which cover
// negative values, stay monotonic.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
package color

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Curve maps one channel value.
type Curve func(x float64) float64

// SRGBToLinear is the sRGB EOTF.
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float64) float64 {
	return mirror(s, func(s float64) float64 {
		if s <= 0.04045 {
			return s / 12.92
		}
		return math.Pow((s+0.055)/1.055, 2.4)
	})
}

// LinearToSRGB is the sRGB OETF, the inverse of SRGBToLinear.
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	return mirror(l, func(l float64) float64 {
		if l <= 0.0031308 {
			return l * 12.92
		}
		return 1.055*math.Pow(l, 1.0/2.4) - 0.055
	})
}

// Gamma returns the pure power curve x^g, mirrored for negative x.
func Gamma(g float64) Curve {
	return func(x float64) float64 {
		return mirror(x, func(x float64) float64 { return math.Pow(x, g) })
	}
}

// mirror evaluates f on |x| and restores the sign of x.
func mirror(x float64, f func(float64) float64) float64 {
	if x < 0 {
		return -f(-x)
	}
	return f(x)
}

var curves = map[string]Curve{
	"srgb_to_linear": SRGBToLinear,
	"linear_to_srgb": LinearToSRGB,
	"identity":       func(x float64) float64 { return x },
}

// Lookup returns the named curve. Matching ignores case.
func Lookup(name string) (Curve, error) {
	if c, ok := curves[strings.ToLower(name)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("color: unknown curve %q (have %s)", name, strings.Join(Names(), ", "))
}

// Names returns the curve names accepted by Lookup, sorted.
func Names() []string {
	names := make([]string, 0, len(curves))
	for n := range curves {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
