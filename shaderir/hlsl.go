package shaderir

// hlslBackend targets Direct3D 11 shader model 4+ HLSL. Each texture is a
// typed Texture object paired with a SamplerState.
type hlslBackend struct{}

func (hlslBackend) Language() Language { return LanguageHLSLDX11 }

func (hlslBackend) TypeName(t Type) string {
	switch t {
	case Vec2:
		return "float2"
	case Vec3:
		return "float3"
	case Vec4:
		return "float4"
	default:
		return "float"
	}
}

func (hlslBackend) DeclareTexture(tex TextureDecl) []string {
	kind := "Texture2D"
	if tex.Dim == Texture1D {
		kind = "Texture1D"
	}
	return []string{
		kind + "<float4> " + tex.Name + ";",
		"SamplerState " + tex.SamplerName + ";",
	}
}

func (hlslBackend) SampleTexture(tex TextureDecl, coord string) string {
	return tex.Name + ".Sample(" + tex.SamplerName + ", " + coord + ")"
}

func (b hlslBackend) VarDecl(name string, t Type, init string) string {
	return cVarDecl(b, name, t, init)
}

func (b hlslBackend) FuncHeader(fn *Function) string {
	return b.TypeName(fn.Result) + " " + fn.Name + "(" + cParams(b, fn.Params) + ")"
}

func (hlslBackend) FloatCast(x string) string { return "float(" + x + ")" }
func (hlslBackend) IntCast(x string) string   { return "int(" + x + ")" }

func (hlslBackend) AssignSwizzle(base, sel, value string) string {
	return base + "." + sel + " = " + value
}
