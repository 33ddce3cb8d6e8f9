package shaderir

import (
	"errors"
	"strings"
	"testing"
)

func mustBackend(t *testing.T, lang Language) Backend {
	t.Helper()
	b, err := NewBackend(lang)
	if err != nil {
		t.Fatalf("NewBackend(%s): %v", lang, err)
	}
	return b
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{0.5, "0.5"},
		{4095, "4095.0"},
		{65504, "65504.0"},
		{32768, "32768.0"},
		{-2, "-2.0"},
		{1e-8, "1e-08"},
		{6.1035156e-05, "6.1035156e-05"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriter_ExprPrecedence(t *testing.T) {
	w := NewWriter(mustBackend(t, LanguageGLSL40))
	a, b, c := Ident("a"), Ident("b"), Ident("c")

	tests := []struct {
		name string
		e    Expr
		want string
	}{
		{"mul binds tighter", Binary{OpAdd, a, Binary{OpMul, b, c}}, "a + b * c"},
		{"sum under product", Binary{OpMul, Binary{OpAdd, a, b}, c}, "(a + b) * c"},
		{"left assoc", Binary{OpSub, Binary{OpSub, a, b}, c}, "a - b - c"},
		{"right group kept", Binary{OpSub, a, Binary{OpSub, b, c}}, "a - (b - c)"},
		{"chain", Binary{OpDiv, Binary{OpMul, a, b}, c}, "a * b / c"},
		{"swizzle of sum", Swizzle{Binary{OpAdd, a, b}, "r"}, "(a + b).r"},
		{"call", Call{FnMin, []Expr{a, Lit(1)}}, "min(a, 1.0)"},
		{"splat", Splat{Vec3, Lit(0.5)}, "vec3(0.5, 0.5, 0.5)"},
		{"construct", Construct{Vec2, []Expr{a, b}}, "vec2(a, b)"},
		{"trunc", ToFloat{ToInt{a}}, "float(int(a))"},
		{"compare", Binary{OpLess, a, Lit(0)}, "a < 0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Expr(tt.e); got != tt.want {
				t.Errorf("Expr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriter_Statements(t *testing.T) {
	w := NewWriter(mustBackend(t, LanguageGLSL13))
	w.Stmts(
		Comment("header"),
		Decl{Name: "x", Type: Float, Init: Lit(2)},
		If{
			Cond: Binary{OpGreater, Ident("x"), Lit(1)},
			Then: []Stmt{AddAssign{Ident("x"), Lit(1)}},
			Else: []Stmt{Assign{Ident("x"), Lit(0)}},
		},
		Blank{},
		Block{Assign{Swizzle{Ident("c"), "rgb"}, Splat{Vec3, Ident("x")}}},
	)

	want := strings.Join([]string{
		"// header",
		"float x = 2.0;",
		"if (x > 1.0)",
		"{",
		"  x += 1.0;",
		"}",
		"else",
		"{",
		"  x = 0.0;",
		"}",
		"",
		"{",
		"  c.rgb = vec3(x, x, x);",
		"}",
		"",
	}, "\n")
	if got := w.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriter_Function(t *testing.T) {
	fn := &Function{
		Name:   "pos",
		Result: Vec2,
		Params: []Param{{Name: "f", Type: Float}},
		Body: []Stmt{
			Decl{Name: "r", Type: Vec2},
			Return{Ident("r")},
		},
	}

	tests := []struct {
		lang Language
		want string
	}{
		{LanguageGLSL40, "vec2 pos(float f)\n{\n  vec2 r;\n  return r;\n}\n"},
		{LanguageHLSLDX11, "float2 pos(float f)\n{\n  float2 r;\n  return r;\n}\n"},
		{LanguageWGSL, "fn pos(f: f32) -> vec2<f32>\n{\n  var r: vec2<f32>;\n  return r;\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.lang.String(), func(t *testing.T) {
			w := NewWriter(mustBackend(t, tt.lang))
			w.Function(fn)
			if got := w.String(); got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestWriter_WGSLSwizzleStore(t *testing.T) {
	w := NewWriter(mustBackend(t, LanguageWGSL))
	w.Stmts(
		Assign{Swizzle{Ident("px"), "rgb"}, Ident("v")},
		Assign{Swizzle{Ident("px"), "r"}, Lit(1)},
	)
	want := "px = vec4<f32>(v, px.a);\npx.r = 1.0;\n"
	if got := w.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriter_Indent(t *testing.T) {
	w := NewWriter(mustBackend(t, LanguageGLSL40))
	w.Indent()
	w.Stmts(Return{Ident("a")})
	w.Dedent()
	w.Dedent() // extra dedent is ignored
	w.Stmts(Return{Ident("b")})
	if got, want := w.String(), "  return a;\nreturn b;\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLanguage_ParseRoundTrip(t *testing.T) {
	for l := LanguageGLSL12; l <= LanguageMSL20; l++ {
		got, err := ParseLanguage(l.String())
		if err != nil {
			t.Fatalf("ParseLanguage(%q): %v", l, err)
		}
		if got != l {
			t.Errorf("ParseLanguage(%q) = %v", l, got)
		}
	}
	if _, err := ParseLanguage("GLSL_4.0"); err != nil {
		t.Errorf("case-insensitive parse failed: %v", err)
	}
	if _, err := ParseLanguage("cg"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("ParseLanguage(cg) error = %v, want ErrUnsupportedLanguage", err)
	}
	if got := Language(99).String(); got != "Language(99)" {
		t.Errorf("String() = %q", got)
	}
}

func TestNewBackend_Unsupported(t *testing.T) {
	if _, err := NewBackend(LanguageMSL20); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("NewBackend(msl) error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestBuildHelpers(t *testing.T) {
	w := NewWriter(mustBackend(t, LanguageWGSL))
	x := Ident("x")

	tests := []struct {
		name string
		e    Expr
		want string
	}{
		{"arith", Div(Add(Mul(x, Lit(2)), Lit(1)), Sub(x, Lit(3))), "(x * 2.0 + 1.0) / (x - 3.0)"},
		{"compare", Greater(Fn(FnAbs, x), Lit(0.5)), "abs(x) > 0.5"},
		{"less", Less(x, Lit(0)), "x < 0.0"},
		{"sel", Sel(x, "gbr"), "x.gbr"},
		{"vec3", Vec3Const(2), "vec3<f32>(2.0, 2.0, 2.0)"},
		{"trunc", Trunc(Div(x, Lit(4095))), "f32(i32(x / 4095.0))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Expr(tt.e); got != tt.want {
				t.Errorf("Expr = %q, want %q", got, tt.want)
			}
		})
	}
}
