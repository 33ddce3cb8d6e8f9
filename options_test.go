package lutshader

import (
	"testing"

	"github.com/gogpu/lutshader/shaderir"
)

func TestNewShaderDescDefaults(t *testing.T) {
	desc := NewShaderDesc()

	if desc.Language() != DefaultLanguage {
		t.Errorf("Language() = %v, want %v", desc.Language(), DefaultLanguage)
	}
	if desc.PixelName() != "outColor" {
		t.Errorf("PixelName() = %q, want outColor", desc.PixelName())
	}
	if desc.ResourcePrefix() != "ocio_" {
		t.Errorf("ResourcePrefix() = %q, want ocio_", desc.ResourcePrefix())
	}
	if desc.TextureMaxWidth() != 4096 {
		t.Errorf("TextureMaxWidth() = %d, want 4096", desc.TextureMaxWidth())
	}
	if desc.TextureCache() != nil {
		t.Error("TextureCache() should be nil by default")
	}
	if desc.NumTextures() != 0 || desc.DeclareCode() != "" || desc.HelperCode() != "" || desc.FunctionCode() != "" {
		t.Error("new ShaderDesc is not empty")
	}
}

func TestNewShaderDescWithOptions(t *testing.T) {
	cache := NewTextureCache(4)
	desc := NewShaderDesc(
		WithLanguage(shaderir.LanguageHLSLDX11),
		WithPixelName("px"),
		WithResourcePrefix("pre_"),
		WithTextureMaxWidth(512),
		WithTextureCache(cache),
	)

	if desc.Language() != shaderir.LanguageHLSLDX11 {
		t.Errorf("Language() = %v", desc.Language())
	}
	if desc.PixelName() != "px" {
		t.Errorf("PixelName() = %q", desc.PixelName())
	}
	if desc.ResourcePrefix() != "pre_" {
		t.Errorf("ResourcePrefix() = %q", desc.ResourcePrefix())
	}
	if desc.TextureMaxWidth() != 512 {
		t.Errorf("TextureMaxWidth() = %d", desc.TextureMaxWidth())
	}
	if desc.TextureCache() != cache {
		t.Error("TextureCache() is not the configured cache")
	}
}

func TestShaderDesc_AddIsCopy(t *testing.T) {
	base := NewShaderDesc()
	a := base.AddTexture(Texture{Name: "a"}).AddDeclareCode("decl\n").AddHelperCode("helper\n").AddFunctionCode("body\n")

	if base.NumTextures() != 0 || base.DeclareCode() != "" || base.HelperCode() != "" || base.FunctionCode() != "" {
		t.Error("Add methods modified the receiver")
	}
	if a.NumTextures() != 1 || a.DeclareCode() != "decl\n" || a.HelperCode() != "helper\n" || a.FunctionCode() != "body\n" {
		t.Errorf("unexpected accumulated desc: %+v", a)
	}

	// Two descs derived from the same parent must not share texture slots.
	b := a.AddTexture(Texture{Name: "b"})
	c := a.AddTexture(Texture{Name: "c"})
	if got := b.Textures()[1].Name; got != "b" {
		t.Errorf("b texture 1 = %q, want b", got)
	}
	if got := c.Textures()[1].Name; got != "c" {
		t.Errorf("c texture 1 = %q, want c", got)
	}

	texs := c.Textures()
	texs[0].Name = "changed"
	if c.Textures()[0].Name != "a" {
		t.Error("Textures() exposes internal storage")
	}
}
