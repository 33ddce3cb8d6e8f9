package lutshader

import "github.com/gogpu/lutshader/shaderir"

// Defaults used by NewShaderDesc.
const (
	DefaultTextureMaxWidth = 4096
	DefaultPixelName       = "outColor"
	DefaultResourcePrefix  = "ocio_"
	DefaultLanguage        = shaderir.LanguageGLSL13
)

// DescOption configures a ShaderDesc during creation.
//
// Example:
//
//	desc := lutshader.NewShaderDesc(
//	    lutshader.WithLanguage(shaderir.LanguageWGSL),
//	    lutshader.WithTextureMaxWidth(8192),
//	)
type DescOption func(*descOptions)

// descOptions holds optional configuration for ShaderDesc creation.
type descOptions struct {
	language  shaderir.Language
	pixelName string
	prefix    string
	maxWidth  int
	cache     *TextureCache
}

// defaultDescOptions returns the default ShaderDesc options.
func defaultDescOptions() descOptions {
	return descOptions{
		language:  DefaultLanguage,
		pixelName: DefaultPixelName,
		prefix:    DefaultResourcePrefix,
		maxWidth:  DefaultTextureMaxWidth,
	}
}

// WithLanguage selects the shading language of the emitted code.
func WithLanguage(lang shaderir.Language) DescOption {
	return func(o *descOptions) {
		o.language = lang
	}
}

// WithPixelName sets the name of the vec4 variable holding the pixel
// being transformed.
func WithPixelName(name string) DescOption {
	return func(o *descOptions) {
		o.pixelName = name
	}
}

// WithResourcePrefix sets the prefix of every texture name, keeping
// resources unique when several generated programs are combined.
func WithResourcePrefix(prefix string) DescOption {
	return func(o *descOptions) {
		o.prefix = prefix
	}
}

// WithTextureMaxWidth sets the widest texture the target device accepts.
// LUTs longer than this wrap onto several texture rows.
func WithTextureMaxWidth(width int) DescOption {
	return func(o *descOptions) {
		o.maxWidth = width
	}
}

// WithTextureCache shares packed textures between compilations.
func WithTextureCache(c *TextureCache) DescOption {
	return func(o *descOptions) {
		o.cache = c
	}
}
