package shaderir

// Add returns l + r.
func Add(l, r Expr) Binary { return Binary{Op: OpAdd, L: l, R: r} }

// Sub returns l - r.
func Sub(l, r Expr) Binary { return Binary{Op: OpSub, L: l, R: r} }

// Mul returns l * r.
func Mul(l, r Expr) Binary { return Binary{Op: OpMul, L: l, R: r} }

// Div returns l / r.
func Div(l, r Expr) Binary { return Binary{Op: OpDiv, L: l, R: r} }

// Less returns l < r.
func Less(l, r Expr) Binary { return Binary{Op: OpLess, L: l, R: r} }

// Greater returns l > r.
func Greater(l, r Expr) Binary { return Binary{Op: OpGreater, L: l, R: r} }

// Fn returns a call of name with args.
func Fn(name string, args ...Expr) Call { return Call{Name: name, Args: args} }

// Sel returns the swizzle x.sel.
func Sel(x Expr, sel string) Swizzle { return Swizzle{X: x, Sel: sel} }

// Vec3Const returns a vec3 with every component set to v.
func Vec3Const(v float32) Splat { return Splat{T: Vec3, V: Lit(v)} }

// Trunc returns x truncated toward zero, as a float.
func Trunc(x Expr) ToFloat { return ToFloat{X: ToInt{X: x}} }
