// Package shaderir is a small typed representation of fragment shader code.
//
// Generators build statements and expressions out of the types in this
// package and hand them to a [Writer], which renders them through a
// language [Backend]. The IR only covers what color-transform fragments
// need: float and vector scalars, arithmetic, a handful of builtins,
// texture sampling and structured control flow.
//
//	b, _ := shaderir.NewBackend(shaderir.LanguageGLSL40)
//	w := shaderir.NewWriter(b)
//	w.Stmts(shaderir.Decl{Name: "x", Type: shaderir.Float, Init: shaderir.Lit(1)})
//	fmt.Print(w.String()) // float x = 1.0;
package shaderir

// Type is a value type understood by every backend.
type Type int

// Value types.
const (
	Float Type = iota
	Vec2
	Vec3
	Vec4
)

// Components returns the number of float components of t.
func (t Type) Components() int {
	return int(t) + 1
}

// TextureDim is the dimensionality of a sampled texture.
type TextureDim int

// Texture dimensions.
const (
	Texture1D TextureDim = iota + 1
	Texture2D
)

// String returns "1D" or "2D".
func (d TextureDim) String() string {
	switch d {
	case Texture1D:
		return "1D"
	case Texture2D:
		return "2D"
	default:
		return "unknown"
	}
}

// TextureDecl names a texture and the sampler used to read it.
type TextureDecl struct {
	Name        string
	SamplerName string
	Dim         TextureDim
	// Binding is the first of two consecutive binding slots (texture,
	// sampler) for languages with explicit resource bindings.
	Binding int
}

// Expr is a shader expression.
type Expr interface {
	isExpr()
}

// Ident references a variable or parameter by name.
type Ident string

// Lit is a float literal.
type Lit float32

// Swizzle selects components of X, such as ".r" or ".gbr".
type Swizzle struct {
	X   Expr
	Sel string
}

// Op is a binary operator.
type Op string

// Binary operators.
const (
	OpAdd     Op = "+"
	OpSub     Op = "-"
	OpMul     Op = "*"
	OpDiv     Op = "/"
	OpLess    Op = "<"
	OpGreater Op = ">"
)

// precedence orders operators for parenthesization.
func (op Op) precedence() int {
	switch op {
	case OpMul, OpDiv:
		return 3
	case OpAdd, OpSub:
		return 2
	default:
		return 1
	}
}

// Binary is L Op R.
type Binary struct {
	Op   Op
	L, R Expr
}

// Builtin function names shared by all supported languages.
const (
	FnAbs   = "abs"
	FnMin   = "min"
	FnMax   = "max"
	FnFloor = "floor"
	FnLog2  = "log2"
	FnPow   = "pow"
	FnDot   = "dot"
)

// Call invokes a builtin or a previously emitted helper function.
type Call struct {
	Name string
	Args []Expr
}

// Splat builds a vector of type T with every component set to V.
type Splat struct {
	T Type
	V Expr
}

// Construct builds a vector of type T from its components.
type Construct struct {
	T    Type
	Args []Expr
}

// ToFloat converts X to float.
type ToFloat struct{ X Expr }

// ToInt converts X to a signed integer, truncating toward zero.
type ToInt struct{ X Expr }

// Sample reads Tex at Coord. The result is a four component vector.
type Sample struct {
	Tex   TextureDecl
	Coord Expr
}

func (Ident) isExpr()     {}
func (Lit) isExpr()       {}
func (Swizzle) isExpr()   {}
func (Binary) isExpr()    {}
func (Call) isExpr()      {}
func (Splat) isExpr()     {}
func (Construct) isExpr() {}
func (ToFloat) isExpr()   {}
func (ToInt) isExpr()     {}
func (Sample) isExpr()    {}

// Stmt is a shader statement.
type Stmt interface {
	isStmt()
}

// Decl declares a mutable local variable. Init may be nil.
type Decl struct {
	Name string
	Type Type
	Init Expr
}

// Assign stores Value into Target, an Ident or a Swizzle of an Ident.
type Assign struct {
	Target Expr
	Value  Expr
}

// AddAssign is Target += Value.
type AddAssign struct {
	Target Expr
	Value  Expr
}

// If is a two-way branch. Else may be empty.
type If struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

// Return returns Value from the enclosing function.
type Return struct{ Value Expr }

// Comment is a single line comment.
type Comment string

// Blank is an empty line.
type Blank struct{}

// Block is a braced scope.
type Block []Stmt

func (Decl) isStmt()      {}
func (Assign) isStmt()    {}
func (AddAssign) isStmt() {}
func (If) isStmt()        {}
func (Return) isStmt()    {}
func (Comment) isStmt()   {}
func (Blank) isStmt()     {}
func (Block) isStmt()     {}

// Param is a function parameter.
type Param struct {
	Name string
	Type Type
}

// Function is a helper function emitted ahead of the main shader body.
type Function struct {
	Name   string
	Result Type
	Params []Param
	Body   []Stmt
}
