package shaderir

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedLanguage is returned for languages without a backend.
var ErrUnsupportedLanguage = errors.New("shaderir: unsupported shading language")

// Language identifies a target shading language.
type Language int

// Shading languages.
const (
	LanguageGLSL12 Language = iota
	LanguageGLSL13
	LanguageGLSL40
	LanguageGLSLES10
	LanguageGLSLES30
	LanguageHLSLDX11
	LanguageWGSL
	LanguageMSL20
)

var languageNames = [...]string{
	LanguageGLSL12:   "glsl_1.2",
	LanguageGLSL13:   "glsl_1.3",
	LanguageGLSL40:   "glsl_4.0",
	LanguageGLSLES10: "glsl_es_1.0",
	LanguageGLSLES30: "glsl_es_3.0",
	LanguageHLSLDX11: "hlsl_dx11",
	LanguageWGSL:     "wgsl",
	LanguageMSL20:    "msl_2.0",
}

// String returns the canonical lowercase name, e.g. "glsl_4.0".
func (l Language) String() string {
	if l < 0 || int(l) >= len(languageNames) {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return languageNames[l]
}

// ParseLanguage resolves a canonical language name. Matching ignores case.
func ParseLanguage(s string) (Language, error) {
	for i, name := range languageNames {
		if strings.EqualFold(name, s) {
			return Language(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// Backend renders the language-specific parts of the IR.
//
// Everything that is spelled the same in all supported languages
// (operators, swizzles, builtin names, control flow) is rendered by the
// Writer; a Backend only answers the questions where languages differ.
type Backend interface {
	Language() Language

	// TypeName returns the spelling of t, e.g. "vec3" or "float3".
	TypeName(t Type) string

	// DeclareTexture returns the global declaration lines for tex.
	DeclareTexture(tex TextureDecl) []string

	// SampleTexture returns an expression sampling tex at the already
	// rendered coordinate.
	SampleTexture(tex TextureDecl, coord string) string

	// VarDecl declares a mutable local. init is empty when absent.
	VarDecl(name string, t Type, init string) string

	// FuncHeader returns the signature line of fn, without the body.
	FuncHeader(fn *Function) string

	// FloatCast and IntCast wrap x in a conversion.
	FloatCast(x string) string
	IntCast(x string) string

	// AssignSwizzle stores value into the multi-component selection sel
	// of the four component variable base.
	AssignSwizzle(base, sel, value string) string
}

// NewBackend returns the backend for lang.
func NewBackend(lang Language) (Backend, error) {
	switch lang {
	case LanguageGLSL12, LanguageGLSL13, LanguageGLSL40, LanguageGLSLES10, LanguageGLSLES30:
		return glslBackend{lang: lang}, nil
	case LanguageHLSLDX11:
		return hlslBackend{}, nil
	case LanguageWGSL:
		return wgslBackend{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}
}

// cParams renders a C-style parameter list.
func cParams(b Backend, params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = b.TypeName(p.Type) + " " + p.Name
	}
	return strings.Join(parts, ", ")
}

// cVarDecl renders "T name = init" for C-like languages.
func cVarDecl(b Backend, name string, t Type, init string) string {
	if init == "" {
		return b.TypeName(t) + " " + name
	}
	return b.TypeName(t) + " " + name + " = " + init
}
