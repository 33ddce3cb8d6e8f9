package shaderir

import "fmt"

// glslBackend covers desktop GLSL 1.2/1.3/4.0 and GLSL ES 1.0/3.0.
//
// GLSL ES has no sampler1D, so 1D textures are declared as 2D textures
// with a single row and sampled at v = 0.5.
type glslBackend struct {
	lang Language
}

func (b glslBackend) Language() Language { return b.lang }

func (b glslBackend) isES() bool {
	return b.lang == LanguageGLSLES10 || b.lang == LanguageGLSLES30
}

func (glslBackend) TypeName(t Type) string {
	switch t {
	case Vec2:
		return "vec2"
	case Vec3:
		return "vec3"
	case Vec4:
		return "vec4"
	default:
		return "float"
	}
}

func (b glslBackend) DeclareTexture(tex TextureDecl) []string {
	kind := "sampler2D"
	if tex.Dim == Texture1D && !b.isES() {
		kind = "sampler1D"
	}
	return []string{fmt.Sprintf("uniform %s %s;", kind, tex.SamplerName)}
}

func (b glslBackend) SampleTexture(tex TextureDecl, coord string) string {
	if tex.Dim == Texture1D && b.isES() {
		coord = "vec2(" + coord + ", 0.5)"
	}
	switch b.lang {
	case LanguageGLSL12, LanguageGLSLES10:
		if tex.Dim == Texture1D && b.lang == LanguageGLSL12 {
			return "texture1D(" + tex.SamplerName + ", " + coord + ")"
		}
		return "texture2D(" + tex.SamplerName + ", " + coord + ")"
	default:
		return "texture(" + tex.SamplerName + ", " + coord + ")"
	}
}

func (b glslBackend) VarDecl(name string, t Type, init string) string {
	return cVarDecl(b, name, t, init)
}

func (b glslBackend) FuncHeader(fn *Function) string {
	return b.TypeName(fn.Result) + " " + fn.Name + "(" + cParams(b, fn.Params) + ")"
}

func (glslBackend) FloatCast(x string) string { return "float(" + x + ")" }
func (glslBackend) IntCast(x string) string   { return "int(" + x + ")" }

func (glslBackend) AssignSwizzle(base, sel, value string) string {
	return base + "." + sel + " = " + value
}
