// Package lutshader compiles 1D color lookup tables into GPU shader code.
//
// # Overview
//
// A 1D LUT maps each color channel independently through a table of
// samples. lutshader turns such a table into two things a GPU color
// pipeline needs: a packed float texture holding the samples, and
// shader source that looks them up for every pixel.
//
// # Quick Start
//
//	import "github.com/gogpu/lutshader"
//
//	lut := lutshader.NewLUT1D(1024, func(x float32) [3]float32 {
//	    y := float32(math.Pow(float64(x), 1/2.2))
//	    return [3]float32{y, y, y}
//	})
//
//	desc := lutshader.NewShaderDesc(lutshader.WithLanguage(shaderir.LanguageGLSL40))
//	desc, err := lutshader.AddLUT1D(desc, lut)
//	if err != nil {
//	    return err
//	}
//	// desc.DeclareCode(), desc.HelperCode() and desc.FunctionCode() hold
//	// the generated source; desc.Textures() the data to upload.
//
// # Texture Layout
//
// LUTs no longer than the maximum texture width are stored as a single
// row and sampled through a 1D texture. Longer LUTs wrap across rows of a
// 2D texture with one texel of overlap, so that linear filtering never
// blends across a row break. Half-domain LUTs, which hold one entry per
// 16-bit half-float bit pattern, always use the 2D layout; the generated
// code recovers the bit pattern arithmetically.
//
// # Languages
//
// Code generation goes through the shaderir package, which renders a
// small statement IR for GLSL, GLSL ES, HLSL and WGSL.
//
// # Architecture
//
// The library is organized into:
//   - Public API: LUT1D, ShaderDesc, AddLUT1D, Texture
//   - Packing: PackChannels, TextureSize, TextureCache
//   - Code generation: shaderir (IR, writer, per-language backends)
//   - Internal: cache (generic LRU), shadercheck (WGSL validation via naga)
package lutshader

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
