package lutshader

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/lutshader/shaderir"
)

// Channel is the channel layout of a registered texture.
type Channel int

const (
	// ChannelRGB stores three floats per texel.
	ChannelRGB Channel = 3
)

// Texture is a LUT texture registered on a ShaderDesc. The emitted shader
// code reads it through SamplerName.
type Texture struct {
	Name        string
	SamplerName string
	CacheID     string

	Width  int
	Height int
	Dim    shaderir.TextureDim

	Channel       Channel
	Interpolation Interpolation

	// Values holds Width*Height texels in row-major order. It may be
	// shared with a TextureCache and must not be modified.
	Values []float32
}

// Dimension returns the GPU texture dimension to create.
func (t Texture) Dimension() gputypes.TextureDimension {
	if t.Dim == shaderir.Texture1D {
		return gputypes.TextureDimension1D
	}
	return gputypes.TextureDimension2D
}

// Size returns the texture extent.
func (t Texture) Size() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(t.Width),  //nolint:gosec // G115: width is bounded by the max texture width
		Height:             uint32(t.Height), //nolint:gosec // G115: height is small and positive
		DepthOrArrayLayers: 1,
	}
}

// Format returns the upload format. There is no three channel float
// format in WebGPU, so RGB data is uploaded through RGBA.
func (t Texture) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA32Float
}

// Usage returns the usage flags a sampled LUT texture needs.
func (t Texture) Usage() gputypes.TextureUsage {
	return gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst
}

// FilterMode returns the sampler filter for the LUT interpolation.
func (t Texture) FilterMode() gputypes.FilterMode {
	return t.Interpolation.FilterMode()
}

// AddressMode returns the sampler address mode. Clamping provides the
// edge-hold behavior lookups rely on outside the LUT domain.
func (t Texture) AddressMode() gputypes.AddressMode {
	return gputypes.AddressModeClampToEdge
}

// RGBA expands Values to four channels with an opaque alpha, matching
// Format.
func (t Texture) RGBA() []float32 {
	n := len(t.Values) / 3
	out := make([]float32, 4*n)
	for i := range n {
		copy(out[4*i:4*i+3], t.Values[3*i:3*i+3])
		out[4*i+3] = 1
	}
	return out
}
