package shaderir

import (
	"fmt"
	"strconv"
	"strings"
)

// indentUnit is the indentation added per nesting level.
const indentUnit = "  "

// Writer renders IR into shader source through a Backend.
// A Writer accumulates text; it is not safe for concurrent use.
type Writer struct {
	b     Backend
	sb    strings.Builder
	depth int
}

// NewWriter returns an empty writer rendering through b.
func NewWriter(b Backend) *Writer {
	return &Writer{b: b}
}

// Backend returns the backend the writer renders through.
func (w *Writer) Backend() Backend { return w.b }

// Indent increases the nesting level of subsequent lines.
func (w *Writer) Indent() { w.depth++ }

// Dedent decreases the nesting level of subsequent lines.
func (w *Writer) Dedent() {
	if w.depth > 0 {
		w.depth--
	}
}

// String returns everything written so far.
func (w *Writer) String() string { return w.sb.String() }

func (w *Writer) line(s string) {
	if s != "" {
		w.sb.WriteString(strings.Repeat(indentUnit, w.depth))
		w.sb.WriteString(s)
	}
	w.sb.WriteByte('\n')
}

// DeclareTexture writes the global declarations of tex.
func (w *Writer) DeclareTexture(tex TextureDecl) {
	for _, l := range w.b.DeclareTexture(tex) {
		w.line(l)
	}
}

// Function writes fn with its body.
func (w *Writer) Function(fn *Function) {
	w.line(w.b.FuncHeader(fn))
	w.line("{")
	w.Indent()
	w.Stmts(fn.Body...)
	w.Dedent()
	w.line("}")
}

// Stmts writes each statement in order.
func (w *Writer) Stmts(stmts ...Stmt) {
	for _, s := range stmts {
		w.stmt(s)
	}
}

func (w *Writer) stmt(s Stmt) {
	switch s := s.(type) {
	case Decl:
		init := ""
		if s.Init != nil {
			init = w.Expr(s.Init)
		}
		w.line(w.b.VarDecl(s.Name, s.Type, init) + ";")
	case Assign:
		value := w.Expr(s.Value)
		if sw, ok := s.Target.(Swizzle); ok && len(sw.Sel) > 1 {
			w.line(w.b.AssignSwizzle(w.operand(sw.X), sw.Sel, value) + ";")
			return
		}
		w.line(w.Expr(s.Target) + " = " + value + ";")
	case AddAssign:
		w.line(w.Expr(s.Target) + " += " + w.Expr(s.Value) + ";")
	case If:
		w.line("if (" + w.Expr(s.Cond) + ")")
		w.braced(s.Then)
		if len(s.Else) > 0 {
			w.line("else")
			w.braced(s.Else)
		}
	case Return:
		w.line("return " + w.Expr(s.Value) + ";")
	case Comment:
		w.line("// " + string(s))
	case Blank:
		w.line("")
	case Block:
		w.braced(s)
	default:
		panic(fmt.Sprintf("shaderir: unknown statement %T", s))
	}
}

func (w *Writer) braced(body []Stmt) {
	w.line("{")
	w.Indent()
	w.Stmts(body...)
	w.Dedent()
	w.line("}")
}

// Expr renders e as source text.
func (w *Writer) Expr(e Expr) string {
	switch e := e.(type) {
	case Ident:
		return string(e)
	case Lit:
		return FormatFloat(float32(e))
	case Swizzle:
		return w.operand(e.X) + "." + e.Sel
	case Binary:
		l := w.Expr(e.L)
		if lb, ok := e.L.(Binary); ok && lb.Op.precedence() < e.Op.precedence() {
			l = "(" + l + ")"
		}
		r := w.Expr(e.R)
		if rb, ok := e.R.(Binary); ok && rb.Op.precedence() <= e.Op.precedence() {
			r = "(" + r + ")"
		}
		return l + " " + string(e.Op) + " " + r
	case Call:
		return e.Name + "(" + w.list(e.Args) + ")"
	case Splat:
		v := w.Expr(e.V)
		parts := make([]string, e.T.Components())
		for i := range parts {
			parts[i] = v
		}
		return w.b.TypeName(e.T) + "(" + strings.Join(parts, ", ") + ")"
	case Construct:
		return w.b.TypeName(e.T) + "(" + w.list(e.Args) + ")"
	case ToFloat:
		return w.b.FloatCast(w.Expr(e.X))
	case ToInt:
		return w.b.IntCast(w.Expr(e.X))
	case Sample:
		return w.b.SampleTexture(e.Tex, w.Expr(e.Coord))
	default:
		panic(fmt.Sprintf("shaderir: unknown expression %T", e))
	}
}

// operand renders e so that a member access can follow it.
func (w *Writer) operand(e Expr) string {
	if _, ok := e.(Binary); ok {
		return "(" + w.Expr(e) + ")"
	}
	return w.Expr(e)
}

func (w *Writer) list(args []Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = w.Expr(a)
	}
	return strings.Join(parts, ", ")
}

// FormatFloat formats f as the shortest float literal that parses back to
// the same float32 and is never mistaken for an integer literal.
func FormatFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
