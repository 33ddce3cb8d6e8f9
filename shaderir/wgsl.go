package shaderir

import (
	"fmt"
	"strings"
)

// wgslBackend targets WebGPU Shading Language.
//
// WGSL binds every texture and sampler to an explicit slot in group 0 and
// does not allow assignment through a multi-component swizzle, so such
// stores are rewritten as a whole-vector assignment.
type wgslBackend struct{}

func (wgslBackend) Language() Language { return LanguageWGSL }

func (wgslBackend) TypeName(t Type) string {
	switch t {
	case Vec2:
		return "vec2<f32>"
	case Vec3:
		return "vec3<f32>"
	case Vec4:
		return "vec4<f32>"
	default:
		return "f32"
	}
}

func (wgslBackend) DeclareTexture(tex TextureDecl) []string {
	kind := "texture_2d<f32>"
	if tex.Dim == Texture1D {
		kind = "texture_1d<f32>"
	}
	return []string{
		fmt.Sprintf("@group(0) @binding(%d) var %s: %s;", tex.Binding, tex.Name, kind),
		fmt.Sprintf("@group(0) @binding(%d) var %s: sampler;", tex.Binding+1, tex.SamplerName),
	}
}

func (wgslBackend) SampleTexture(tex TextureDecl, coord string) string {
	return "textureSample(" + tex.Name + ", " + tex.SamplerName + ", " + coord + ")"
}

func (b wgslBackend) VarDecl(name string, t Type, init string) string {
	if init == "" {
		return "var " + name + ": " + b.TypeName(t)
	}
	return "var " + name + ": " + b.TypeName(t) + " = " + init
}

func (b wgslBackend) FuncHeader(fn *Function) string {
	parts := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		parts[i] = p.Name + ": " + b.TypeName(p.Type)
	}
	return "fn " + fn.Name + "(" + strings.Join(parts, ", ") + ") -> " + b.TypeName(fn.Result)
}

func (wgslBackend) FloatCast(x string) string { return "f32(" + x + ")" }
func (wgslBackend) IntCast(x string) string   { return "i32(" + x + ")" }

// AssignSwizzle rebuilds the full vector. Only the leading rgb/xyz
// selection is expressible this way; other selections keep the
// component-wise form, which WGSL rejects.
func (b wgslBackend) AssignSwizzle(base, sel, value string) string {
	switch sel {
	case "rgb":
		return base + " = " + b.TypeName(Vec4) + "(" + value + ", " + base + ".a)"
	case "xyz":
		return base + " = " + b.TypeName(Vec4) + "(" + value + ", " + base + ".w)"
	default:
		return base + "." + sel + " = " + value
	}
}
