package lutshader

import (
	"fmt"
	"math"

	"github.com/gogpu/lutshader/shaderir"
)

// AddressMode is the way generated code turns an input value into a
// texture coordinate.
type AddressMode int

const (
	// AddressSingleRow samples a 1D texture directly.
	AddressSingleRow AddressMode = iota
	// AddressMultiRow wraps a [0, 1] domain LUT across texture rows.
	AddressMultiRow
	// AddressHalfDomain indexes a 2D texture by half-float bit pattern.
	AddressHalfDomain
)

func (m AddressMode) String() string {
	switch m {
	case AddressSingleRow:
		return "single-row"
	case AddressMultiRow:
		return "multi-row"
	case AddressHalfDomain:
		return "half-domain"
	default:
		return fmt.Sprintf("AddressMode(%d)", int(m))
	}
}

// SelectAddressMode picks the addressing case. Half-domain LUTs always use
// the 2D path, even when they fit in one row.
func SelectAddressMode(halfDomain bool, height int) AddressMode {
	switch {
	case halfDomain:
		return AddressHalfDomain
	case height > 1:
		return AddressMultiRow
	default:
		return AddressSingleRow
	}
}

// Addressing is the complete lookup geometry of one LUT texture.
type Addressing struct {
	Mode   AddressMode
	Length int
	Width  int
	Height int
	Half   HalfEncoding
}

// NewAddressing validates lut and derives its texture geometry for the
// given maximum texture width.
func NewAddressing(lut *LUT1D, maxWidth int) (Addressing, error) {
	if lut == nil {
		return Addressing{}, ErrNilLUT
	}
	if err := lut.Validate(); err != nil {
		return Addressing{}, err
	}
	width, height, err := TextureSize(lut.Length(), maxWidth)
	if err != nil {
		return Addressing{}, err
	}
	return Addressing{
		Mode:   SelectAddressMode(lut.HalfDomain, height),
		Length: lut.Length(),
		Width:  width,
		Height: height,
		Half:   DefaultHalfEncoding,
	}, nil
}

// Dim returns the texture dimensionality the mode samples.
func (a Addressing) Dim() shaderir.TextureDim {
	if a.Mode == AddressSingleRow {
		return shaderir.Texture1D
	}
	return shaderir.Texture2D
}

// Pos evaluates the generated addressing code on the CPU and returns the
// normalized texture coordinate for input f. For 1D textures v is 0.5.
func (a Addressing) Pos(f float32) (u, v float64) {
	length, width, height := float64(a.Length), float64(a.Width), float64(a.Height)
	switch a.Mode {
	case AddressSingleRow:
		return (float64(f)*(length-1) + 0.5) / length, 0.5
	case AddressMultiRow:
		dep := math.Min(float64(f), 1) * (length - 1)
		row := math.Trunc(dep / (width - 1))
		col := dep - row*(width-1)
		return (col + 0.5) / width, (row + 0.5) / height
	default:
		dep := a.Half.Index(f)
		row := math.Floor(dep / (width - 1))
		col := dep - row*(width-1)
		return (col + 0.5) / width, (row + 0.5) / height
	}
}
