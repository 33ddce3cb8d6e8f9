// Package shadercheck validates generated WGSL by compiling it with naga.
//
// Generated LUT code is a set of fragments (declarations, helper functions
// and a function body), not a complete shader. Harness wraps them in a
// minimal fragment entry point so that the compiler sees a whole module.
package shadercheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/naga"
)

// SPIRVMagic is the first word of every SPIR-V module.
const SPIRVMagic = 0x07230203

// EntryPoint is the name of the fragment function Harness generates.
const EntryPoint = "fs_main"

// ErrInvalidSPIRV is returned when the compiler output is not a SPIR-V
// module.
var ErrInvalidSPIRV = errors.New("shadercheck: invalid SPIR-V output")

// Harness assembles a fragment shader around generated code. The input
// color is copied into a vec4 variable named pixel, body transforms it in
// place, and the result is returned.
func Harness(declare, helper, body, pixel string) string {
	var sb strings.Builder
	for _, part := range []string{declare, helper} {
		if part == "" {
			continue
		}
		sb.WriteString(part)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "@fragment\nfn %s(@location(0) color: vec4<f32>) -> @location(0) vec4<f32>\n{\n", EntryPoint)
	fmt.Fprintf(&sb, "  var %s: vec4<f32> = color;\n", pixel)
	sb.WriteString(body)
	fmt.Fprintf(&sb, "  return %s;\n}\n", pixel)
	return sb.String()
}

// knownLimitations are naga error fragments for features the compiler
// does not implement yet.
var knownLimitations = []string{
	"not yet implemented",
	"not supported",
	"lowering error",
}

// KnownLimitation reports whether err comes from a feature naga does not
// implement yet, as opposed to invalid shader source.
func KnownLimitation(err error) bool {
	if err == nil || errors.Is(err, ErrInvalidSPIRV) {
		return false
	}
	msg := err.Error()
	for _, s := range knownLimitations {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// Compile compiles WGSL source to SPIR-V words.
func Compile(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("shadercheck: failed to compile shader: %w", err)
	}
	if len(spirvBytes) < 4 || len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSPIRV, len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	if words[0] != SPIRVMagic {
		return nil, fmt.Errorf("%w: magic %#08x", ErrInvalidSPIRV, words[0])
	}
	return words, nil
}
