package lutshader

import (
	"fmt"

	ir "github.com/gogpu/lutshader/shaderir"
)

// AddLUT1D registers the packed texture of lut on desc and emits the code
// that applies lut to the pixel variable. It returns the updated desc;
// on error desc is returned unchanged.
//
// The LUT is stored as a 1D texture when it fits in one row. Longer LUTs,
// and all half-domain LUTs, use a 2D texture plus a helper function
// <name>_computePos that maps an input value to a texel coordinate.
// Each channel is looked up separately, since R, G and B generally land
// on different LUT entries.
func AddLUT1D(desc ShaderDesc, lut *LUT1D) (ShaderDesc, error) {
	addr, err := NewAddressing(lut, desc.TextureMaxWidth())
	if err != nil {
		return desc, err
	}
	backend, err := ir.NewBackend(desc.Language())
	if err != nil {
		return desc, err
	}

	cacheID := lut.ID()
	values, err := desc.TextureCache().Pack(cacheID, addr.Width, addr.Height, lut.Values)
	if err != nil {
		return desc, err
	}

	index := desc.NumTextures()
	name := fmt.Sprintf("%slut1d_%d", desc.ResourcePrefix(), index)
	tex := ir.TextureDecl{
		Name:        name,
		SamplerName: name + "Sampler",
		Dim:         addr.Dim(),
		Binding:     2 * index,
	}

	desc = desc.AddTexture(Texture{
		Name:          tex.Name,
		SamplerName:   tex.SamplerName,
		CacheID:       cacheID,
		Width:         addr.Width,
		Height:        addr.Height,
		Dim:           tex.Dim,
		Channel:       ChannelRGB,
		Interpolation: lut.Interpolation.Concrete(),
		Values:        values,
	})
	Logger().Debug("lutshader: registered lut1d texture",
		"name", name,
		"mode", addr.Mode.String(),
		"width", addr.Width,
		"height", addr.Height,
		"language", desc.Language().String())

	w := ir.NewWriter(backend)
	w.DeclareTexture(tex)
	desc = desc.AddDeclareCode(w.String())

	if addr.Mode != AddressSingleRow {
		w = ir.NewWriter(backend)
		w.Function(computePosFunction(name+"_computePos", addr))
		desc = desc.AddHelperCode(w.String())
	}

	w = ir.NewWriter(backend)
	w.Indent()
	w.Stmts(lut1DStatements(tex, addr, lut.HueAdjust, ir.Ident(desc.PixelName()))...)
	desc = desc.AddFunctionCode(w.String())

	return desc, nil
}

// computePosFunction builds the helper that maps an input value to the
// normalized coordinate of its texel in a wrapped 2D texture.
func computePosFunction(name string, addr Addressing) *ir.Function {
	f := ir.Ident("f")
	dep := ir.Ident("dep")
	stride := ir.Lit(float32(addr.Width - 1))

	var body []ir.Stmt
	var row ir.Expr
	switch addr.Mode {
	case AddressHalfDomain:
		body = halfIndexStatements(f, dep, addr.Half)
		row = ir.Fn(ir.FnFloor, ir.Div(dep, stride))
	default:
		// min() keeps f > 1 from addressing past the last row.
		body = []ir.Stmt{
			ir.Decl{Name: string(dep), Type: ir.Float,
				Init: ir.Mul(ir.Fn(ir.FnMin, f, ir.Lit(1)), ir.Lit(float32(addr.Length-1)))},
		}
		row = ir.Trunc(ir.Div(dep, stride))
	}

	ret := ir.Ident("retVal")
	x, y := ir.Sel(ret, "x"), ir.Sel(ret, "y")
	body = append(body,
		ir.Decl{Name: string(ret), Type: ir.Vec2},
		ir.Assign{Target: y, Value: row},
		ir.Assign{Target: x, Value: ir.Sub(dep, ir.Mul(y, stride))},
		ir.Assign{Target: x, Value: ir.Div(ir.Add(x, ir.Lit(0.5)), ir.Lit(float32(addr.Width)))},
		ir.Assign{Target: y, Value: ir.Div(ir.Add(y, ir.Lit(0.5)), ir.Lit(float32(addr.Height)))},
		ir.Return{Value: ret},
	)

	return &ir.Function{
		Name:   name,
		Result: ir.Vec2,
		Params: []ir.Param{{Name: string(f), Type: ir.Float}},
		Body:   body,
	}
}

// halfIndexStatements compute into dep the half-float bit pattern of f,
// using float arithmetic only. NaN inputs have no recoverable pattern.
func halfIndexStatements(f, dep ir.Ident, h HalfEncoding) []ir.Stmt {
	absF := ir.Ident("abs_f")
	absarr := ir.Ident("absarr")
	lower := ir.Ident("lower")
	fComp := ir.Ident("fComp")
	scale := ir.Ident("scale")

	normal := []ir.Stmt{
		ir.Decl{Name: string(fComp), Type: ir.Vec3, Init: ir.Vec3Const(h.ExpBias)},
		ir.Decl{Name: string(absarr), Type: ir.Float, Init: ir.Fn(ir.FnMin, absF, ir.Lit(h.Max))},
		ir.Comment("Exponent, in [-14, 15]."),
		ir.Assign{Target: ir.Sel(fComp, "x"), Value: ir.Fn(ir.FnFloor, ir.Fn(ir.FnLog2, absarr))},
		ir.Comment("Greatest power of two not above the value."),
		ir.Decl{Name: string(lower), Type: ir.Float, Init: ir.Fn(ir.FnPow, ir.Lit(2), ir.Sel(fComp, "x"))},
		ir.Comment("Mantissa, in [0, 1)."),
		ir.Assign{Target: ir.Sel(fComp, "y"), Value: ir.Div(ir.Sub(absarr, lower), lower)},
		ir.Comment("(exponent + mantissa + bias) * scale is the unsigned half."),
		ir.Decl{Name: string(scale), Type: ir.Vec3, Init: ir.Vec3Const(h.ExpScale)},
		ir.Assign{Target: dep, Value: ir.Fn(ir.FnDot, fComp, scale)},
	}
	denormal := []ir.Stmt{
		ir.Assign{Target: dep, Value: ir.Div(ir.Mul(absF, ir.Lit(h.MantissaMax)), ir.Lit(h.DenormMax))},
	}

	return []ir.Stmt{
		ir.Decl{Name: string(dep), Type: ir.Float},
		ir.Decl{Name: string(absF), Type: ir.Float, Init: ir.Fn(ir.FnAbs, f)},
		ir.If{Cond: ir.Greater(absF, ir.Lit(h.NormMin)), Then: normal, Else: denormal},
		ir.If{
			Cond: ir.Less(f, ir.Lit(0)),
			Then: []ir.Stmt{ir.AddAssign{Target: dep, Value: ir.Lit(h.SignOffset)}},
		},
	}
}

var rgbChannels = [3]string{"r", "g", "b"}

// lut1DStatements builds the per-pixel code applying the LUT to px.
func lut1DStatements(tex ir.TextureDecl, addr Addressing, hue HueAdjust, px ir.Ident) []ir.Stmt {
	var body []ir.Stmt

	if hue == HueDW3 {
		maxval, minval := ir.Ident("maxval"), ir.Ident("minval")
		body = append(body, ir.Comment("Add the pre hue adjustment"))
		body = append(body, chromaRange(px, maxval, minval)...)
		body = append(body,
			ir.Decl{Name: "oldChroma", Type: ir.Float,
				Init: ir.Fn(ir.FnMax, ir.Lit(1e-8), ir.Sub(ir.Sel(maxval, "r"), ir.Sel(minval, "r")))},
			ir.Decl{Name: "delta", Type: ir.Vec3, Init: ir.Sub(ir.Sel(px, "rgb"), minval)},
			ir.Blank{},
		)
	}

	if addr.Mode == AddressSingleRow {
		coords := ir.Ident(tex.Name + "_coords")
		length := float32(addr.Length)
		body = append(body, ir.Decl{Name: string(coords), Type: ir.Vec3, Init: ir.Div(
			ir.Add(ir.Mul(ir.Sel(px, "rgb"), ir.Vec3Const(length-1)), ir.Vec3Const(0.5)),
			ir.Vec3Const(length))})
		for _, c := range rgbChannels {
			sample := ir.Sample{Tex: tex, Coord: ir.Sel(coords, c)}
			body = append(body, ir.Assign{Target: ir.Sel(px, c), Value: ir.Sel(sample, c)})
		}
	} else {
		pos := tex.Name + "_computePos"
		for _, c := range rgbChannels {
			sample := ir.Sample{Tex: tex, Coord: ir.Fn(pos, ir.Sel(px, c))}
			body = append(body, ir.Assign{Target: ir.Sel(px, c), Value: ir.Sel(sample, c)})
		}
	}

	if hue == HueDW3 {
		maxval2, minval2 := ir.Ident("maxval2"), ir.Ident("minval2")
		body = append(body, ir.Blank{}, ir.Comment("Add the post hue adjustment"))
		body = append(body, chromaRange(px, maxval2, minval2)...)
		body = append(body,
			ir.Decl{Name: "newChroma", Type: ir.Float, Init: ir.Sub(ir.Sel(maxval2, "r"), ir.Sel(minval2, "r"))},
			ir.Assign{Target: ir.Sel(px, "rgb"), Value: ir.Add(ir.Sel(minval2, "r"),
				ir.Div(ir.Mul(ir.Ident("delta"), ir.Ident("newChroma")), ir.Ident("oldChroma")))},
		)
	}

	return []ir.Stmt{
		ir.Blank{},
		ir.Comment("Add a LUT 1D processing for " + tex.Name),
		ir.Blank{},
		ir.Block(body),
	}
}

// chromaRange declares the maximum and minimum of px over its three cyclic
// channel rotations. Every component of each result holds the same value.
func chromaRange(px, maxName, minName ir.Ident) []ir.Stmt {
	rgb, gbr, brg := ir.Sel(px, "rgb"), ir.Sel(px, "gbr"), ir.Sel(px, "brg")
	return []ir.Stmt{
		ir.Decl{Name: string(maxName), Type: ir.Vec3, Init: ir.Fn(ir.FnMax, rgb, ir.Fn(ir.FnMax, gbr, brg))},
		ir.Decl{Name: string(minName), Type: ir.Vec3, Init: ir.Fn(ir.FnMin, rgb, ir.Fn(ir.FnMin, gbr, brg))},
	}
}
