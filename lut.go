package lutshader

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/gogpu/gputypes"
)

// HueAdjust selects an optional chroma-preserving wrapper around a LUT.
type HueAdjust int

const (
	// HueNone applies the LUT to each channel independently.
	HueNone HueAdjust = iota
	// HueDW3 rescales the LUT output so that the ratio between the middle
	// channel and the channel extremes matches the input.
	HueDW3
)

// String returns "none" or "dw3".
func (h HueAdjust) String() string {
	switch h {
	case HueNone:
		return "none"
	case HueDW3:
		return "dw3"
	default:
		return fmt.Sprintf("HueAdjust(%d)", int(h))
	}
}

// Interpolation is the filtering requested for LUT lookups.
type Interpolation int

// Interpolation modes.
const (
	InterpolationDefault Interpolation = iota
	InterpolationNearest
	InterpolationLinear
	InterpolationBest
)

var interpolationNames = [...]string{
	InterpolationDefault: "default",
	InterpolationNearest: "nearest",
	InterpolationLinear:  "linear",
	InterpolationBest:    "best",
}

func (i Interpolation) String() string {
	if i < 0 || int(i) >= len(interpolationNames) {
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
	return interpolationNames[i]
}

// ParseInterpolation resolves an interpolation name such as "linear".
func ParseInterpolation(s string) (Interpolation, error) {
	for i, name := range interpolationNames {
		if strings.EqualFold(name, s) {
			return Interpolation(i), nil
		}
	}
	return 0, fmt.Errorf("lutshader: unknown interpolation %q", s)
}

// Concrete resolves Default and Best to the mode a 1D LUT actually uses.
func (i Interpolation) Concrete() Interpolation {
	if i == InterpolationNearest {
		return InterpolationNearest
	}
	return InterpolationLinear
}

// FilterMode returns the sampler filter for the concrete interpolation.
func (i Interpolation) FilterMode() gputypes.FilterMode {
	if i.Concrete() == InterpolationNearest {
		return gputypes.FilterModeNearest
	}
	return gputypes.FilterModeLinear
}

// LUT1D is a per-channel lookup table stored as interleaved RGB samples.
//
// In the default domain entry i is the output for input i/(Length()-1).
// In the half domain entry i is the output for the half float whose bit
// pattern is i.
type LUT1D struct {
	// Values holds 3*Length() floats: R, G, B for each entry.
	Values []float32

	// HalfDomain selects half-float bit pattern indexing. Such LUTs have
	// exactly HalfDomainLength entries.
	HalfDomain bool

	HueAdjust     HueAdjust
	Interpolation Interpolation

	// CacheID identifies the LUT contents for texture de-duplication.
	// When empty, ID derives one from the contents.
	CacheID string
}

// Length returns the number of RGB entries.
func (l *LUT1D) Length() int {
	return len(l.Values) / 3
}

// Validate checks the structural invariants of l.
func (l *LUT1D) Validate() error {
	if len(l.Values)%3 != 0 {
		return fmt.Errorf("%w: %d values is not a multiple of 3", ErrSizeMismatch, len(l.Values))
	}
	n := l.Length()
	if n < 2 {
		return fmt.Errorf("%w: %d entries, need at least 2", ErrInvalidLength, n)
	}
	if l.HalfDomain && n != HalfDomainLength {
		return fmt.Errorf("%w: half-domain LUT has %d entries, want %d", ErrInvalidLength, n, HalfDomainLength)
	}
	return nil
}

// ID returns CacheID, or a stable hash of the LUT when CacheID is empty.
func (l *LUT1D) ID() string {
	if l.CacheID != "" {
		return l.CacheID
	}
	h := fnv.New64a()
	var hdr [4]byte
	if l.HalfDomain {
		hdr[0] = 1
	}
	hdr[1] = byte(l.HueAdjust)
	hdr[2] = byte(l.Interpolation.Concrete())
	_, _ = h.Write(hdr[:]) // fnv.Write never returns an error
	buf := make([]byte, 4*len(l.Values))
	for i, v := range l.Values {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	_, _ = h.Write(buf)
	return fmt.Sprintf("lut1d:%016x", h.Sum64())
}

// NewLUT1D samples fn at length evenly spaced inputs in [0, 1].
// length must be at least 2.
func NewLUT1D(length int, fn func(x float32) [3]float32) *LUT1D {
	values := make([]float32, 0, 3*length)
	for i := range length {
		rgb := fn(float32(float64(i) / float64(length-1)))
		values = append(values, rgb[0], rgb[1], rgb[2])
	}
	return &LUT1D{Values: values}
}

// NewHalfDomainLUT evaluates fn at every half-float value, in bit pattern
// order. fn also sees the NaN and infinity patterns; non-finite outputs
// are sanitized when the LUT is packed.
func NewHalfDomainLUT(fn func(x float32) [3]float32) *LUT1D {
	values := make([]float32, 0, 3*HalfDomainLength)
	for i := range HalfDomainLength {
		rgb := fn(HalfToFloat32(uint16(i))) //nolint:gosec // G115: i < HalfDomainLength
		values = append(values, rgb[0], rgb[1], rgb[2])
	}
	return &LUT1D{Values: values, HalfDomain: true}
}
