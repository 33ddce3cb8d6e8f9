package lutshader

import (
	"slices"

	"github.com/gogpu/lutshader/shaderir"
)

// ShaderDesc accumulates the output of shader generation: registered
// textures plus three text streams (global declarations, helper
// functions and the per-pixel function body).
//
// ShaderDesc is a value. Every Add method returns an updated copy and
// leaves the receiver untouched, so a ShaderDesc can be threaded through
// a sequence of emitters and shared across goroutines without locking.
type ShaderDesc struct {
	opts descOptions

	textures []Texture
	declare  string
	helper   string
	function string
}

// NewShaderDesc returns an empty ShaderDesc.
func NewShaderDesc(opts ...DescOption) ShaderDesc {
	o := defaultDescOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return ShaderDesc{opts: o}
}

// Language returns the target shading language.
func (d ShaderDesc) Language() shaderir.Language { return d.opts.language }

// PixelName returns the name of the pixel variable.
func (d ShaderDesc) PixelName() string { return d.opts.pixelName }

// ResourcePrefix returns the texture name prefix.
func (d ShaderDesc) ResourcePrefix() string { return d.opts.prefix }

// TextureMaxWidth returns the widest texture the target accepts.
func (d ShaderDesc) TextureMaxWidth() int { return d.opts.maxWidth }

// TextureCache returns the packed texture cache, or nil.
func (d ShaderDesc) TextureCache() *TextureCache { return d.opts.cache }

// NumTextures returns the number of registered textures. It numbers the
// next texture, so names stay unique within one ShaderDesc.
func (d ShaderDesc) NumTextures() int { return len(d.textures) }

// Textures returns a copy of the registered textures, in order.
func (d ShaderDesc) Textures() []Texture { return slices.Clone(d.textures) }

// DeclareCode returns the global declarations.
func (d ShaderDesc) DeclareCode() string { return d.declare }

// HelperCode returns the helper functions.
func (d ShaderDesc) HelperCode() string { return d.helper }

// FunctionCode returns the per-pixel function body.
func (d ShaderDesc) FunctionCode() string { return d.function }

// AddTexture returns d with t registered.
func (d ShaderDesc) AddTexture(t Texture) ShaderDesc {
	d.textures = append(slices.Clip(d.textures), t)
	return d
}

// AddDeclareCode returns d with code appended to the declarations.
func (d ShaderDesc) AddDeclareCode(code string) ShaderDesc {
	d.declare += code
	return d
}

// AddHelperCode returns d with code appended to the helper functions.
func (d ShaderDesc) AddHelperCode(code string) ShaderDesc {
	d.helper += code
	return d
}

// AddFunctionCode returns d with code appended to the function body.
func (d ShaderDesc) AddFunctionCode(code string) ShaderDesc {
	d.function += code
	return d
}
