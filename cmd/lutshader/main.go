// Command lutshader compiles a 1D LUT into shader code and prints the
// generated source together with a summary of the texture to upload.
//
// Usage:
//
//	lutshader --gamma 2.2 --size 4096 --lang glsl_4.0
//	lutshader --lut curve.csv --lang wgsl --check
//	lutshader --half-gamma 0.45 --hue-dw3
//	lutshader --curve linear_to_srgb --half
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/spf13/cobra"

	"github.com/gogpu/lutshader"
	"github.com/gogpu/lutshader/internal/color"
	"github.com/gogpu/lutshader/internal/shadercheck"
	"github.com/gogpu/lutshader/shaderir"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds the command line flags.
type options struct {
	lutFile   string
	gamma     float64
	size      int
	halfGamma float64
	curve     string
	half      bool
	lang      string
	maxWidth  int
	prefix    string
	pixel     string
	hueDW3    bool
	interp    string
	check     bool
	verbose   bool
}

var errNoSource = errors.New("one of --lut, --curve, --gamma or --half-gamma is required")

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "lutshader",
		Short: "Compile a 1D color LUT into GPU shader code",
		Long: `lutshader turns a 1D lookup table into a packed float texture and the
shader code sampling it, for GLSL, GLSL ES, HLSL or WGSL.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.verbose {
				lutshader.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			return run(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.lutFile, "lut", "", "CSV file with r,g,b columns, one row per LUT entry")
	f.Float64Var(&opts.gamma, "gamma", 0, "generate a power curve LUT with this exponent")
	f.IntVar(&opts.size, "size", 1024, "number of entries of a generated LUT")
	f.Float64Var(&opts.halfGamma, "half-gamma", 0, "generate a half-domain power curve LUT with this exponent")
	f.StringVar(&opts.curve, "curve", "", "generate a LUT from a named curve: "+strings.Join(color.Names(), ", "))
	f.BoolVar(&opts.half, "half", false, "treat the LUT as half-domain: --curve and --gamma sample every half, a --lut CSV must have 65536 rows")
	f.StringVar(&opts.lang, "lang", lutshader.DefaultLanguage.String(), "shading language: glsl_1.2, glsl_1.3, glsl_4.0, glsl_es_1.0, glsl_es_3.0, hlsl_dx11, wgsl")
	f.IntVar(&opts.maxWidth, "max-width", lutshader.DefaultTextureMaxWidth, "maximum texture width")
	f.StringVar(&opts.prefix, "prefix", lutshader.DefaultResourcePrefix, "texture name prefix")
	f.StringVar(&opts.pixel, "pixel", lutshader.DefaultPixelName, "name of the pixel variable")
	f.BoolVar(&opts.hueDW3, "hue-dw3", false, "apply the DW3 hue-preserving adjustment")
	f.StringVar(&opts.interp, "interp", "default", "interpolation: default, nearest, linear, best")
	f.BoolVar(&opts.check, "check", false, "compile the generated WGSL with naga")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")
	cmd.MarkFlagsMutuallyExclusive("lut", "curve", "gamma", "half-gamma")

	return cmd
}

func run(w io.Writer, opts options) error {
	lang, err := shaderir.ParseLanguage(opts.lang)
	if err != nil {
		return err
	}
	interp, err := lutshader.ParseInterpolation(opts.interp)
	if err != nil {
		return err
	}
	if opts.check && lang != shaderir.LanguageWGSL {
		return fmt.Errorf("--check needs --lang wgsl, got %s", lang)
	}

	lut, err := buildLUT(opts)
	if err != nil {
		return err
	}
	lut.Interpolation = interp
	if opts.hueDW3 {
		lut.HueAdjust = lutshader.HueDW3
	}

	desc := lutshader.NewShaderDesc(
		lutshader.WithLanguage(lang),
		lutshader.WithTextureMaxWidth(opts.maxWidth),
		lutshader.WithResourcePrefix(opts.prefix),
		lutshader.WithPixelName(opts.pixel),
	)
	desc, err = lutshader.AddLUT1D(desc, lut)
	if err != nil {
		return err
	}

	printDesc(w, desc)

	if opts.check {
		src := shadercheck.Harness(desc.DeclareCode(), desc.HelperCode(), desc.FunctionCode(), desc.PixelName())
		words, err := shadercheck.Compile(src)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "// naga: ok, %d SPIR-V words\n", len(words))
	}
	return nil
}

func buildLUT(opts options) (*lutshader.LUT1D, error) {
	switch {
	case opts.lutFile != "":
		data, err := os.ReadFile(opts.lutFile)
		if err != nil {
			return nil, err
		}
		return parseCSV(data, opts.half)
	case opts.curve != "":
		c, err := color.Lookup(opts.curve)
		if err != nil {
			return nil, err
		}
		return generate(c, opts.size, opts.half), nil
	case opts.gamma != 0:
		return generate(color.Gamma(opts.gamma), opts.size, opts.half), nil
	case opts.halfGamma != 0:
		return generate(color.Gamma(opts.halfGamma), 0, true), nil
	default:
		return nil, errNoSource
	}
}

// generate samples c into a LUT of size entries, or over every half
// value when half is set.
func generate(c color.Curve, size int, half bool) *lutshader.LUT1D {
	if half {
		return lutshader.NewHalfDomainLUT(sample(c))
	}
	return lutshader.NewLUT1D(size, sample(c))
}

// sample adapts a curve to a LUT generator applying it to all channels.
func sample(c color.Curve) func(x float32) [3]float32 {
	return func(x float32) [3]float32 {
		y := float32(c(float64(x)))
		return [3]float32{y, y, y}
	}
}

// entry is one CSV row.
type entry struct {
	R float32 `csv:"r"`
	G float32 `csv:"g"`
	B float32 `csv:"b"`
}

// parseCSV reads a LUT from CSV with a header naming the r, g and b
// columns. A half-domain LUT needs one row per 16-bit pattern.
func parseCSV(data []byte, half bool) (*lutshader.LUT1D, error) {
	var rows []entry
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse LUT csv: %w", err)
	}
	values := make([]float32, 0, 3*len(rows))
	for _, r := range rows {
		values = append(values, r.R, r.G, r.B)
	}
	lut := &lutshader.LUT1D{Values: values, HalfDomain: half}
	if err := lut.Validate(); err != nil {
		return nil, err
	}
	return lut, nil
}

func printDesc(w io.Writer, desc lutshader.ShaderDesc) {
	section := func(title, code string) {
		if code == "" {
			return
		}
		fmt.Fprintf(w, "// %s\n%s\n", title, code)
	}
	section("Declarations", desc.DeclareCode())
	section("Helpers", desc.HelperCode())
	section("Function", desc.FunctionCode())

	for _, t := range desc.Textures() {
		size := t.Size()
		fmt.Fprintf(w, "// texture %s: %s %dx%d rgb32f, %s, %d texels, id %s\n",
			t.Name, t.Dim, size.Width, size.Height, t.Interpolation, len(t.Values)/3, t.CacheID)
	}
}
