package lutshader

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/lutshader/shaderir"
)

func TestSelectAddressMode(t *testing.T) {
	tests := []struct {
		half   bool
		height int
		want   AddressMode
	}{
		{false, 1, AddressSingleRow},
		{false, 2, AddressMultiRow},
		{true, 1, AddressHalfDomain},
		{true, 17, AddressHalfDomain},
	}
	for _, tt := range tests {
		if got := SelectAddressMode(tt.half, tt.height); got != tt.want {
			t.Errorf("SelectAddressMode(%v, %d) = %v, want %v", tt.half, tt.height, got, tt.want)
		}
	}
}

func TestNewAddressing(t *testing.T) {
	tests := []struct {
		name     string
		lut      *LUT1D
		maxWidth int
		want     Addressing
	}{
		{
			name:     "single row",
			lut:      NewLUT1D(1024, identityRGB),
			maxWidth: 4096,
			want:     Addressing{Mode: AddressSingleRow, Length: 1024, Width: 1024, Height: 1, Half: DefaultHalfEncoding},
		},
		{
			name:     "multi row",
			lut:      NewLUT1D(8192, identityRGB),
			maxWidth: 4096,
			want:     Addressing{Mode: AddressMultiRow, Length: 8192, Width: 4096, Height: 3, Half: DefaultHalfEncoding},
		},
		{
			name:     "half domain",
			lut:      NewHalfDomainLUT(identityRGB),
			maxWidth: 4096,
			want:     Addressing{Mode: AddressHalfDomain, Length: 65536, Width: 4096, Height: 17, Half: DefaultHalfEncoding},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewAddressing(tt.lut, tt.maxWidth)
			if err != nil {
				t.Fatalf("NewAddressing() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("NewAddressing() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewAddressing_Errors(t *testing.T) {
	if _, err := NewAddressing(nil, 4096); !errors.Is(err, ErrNilLUT) {
		t.Errorf("nil LUT: error = %v, want ErrNilLUT", err)
	}
	if _, err := NewAddressing(&LUT1D{Values: triples(0)}, 4096); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("one entry: error = %v, want ErrInvalidLength", err)
	}
	if _, err := NewAddressing(NewLUT1D(16, identityRGB), 1); !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("max width 1: error = %v, want ErrInvalidWidth", err)
	}
}

func TestAddressing_Dim(t *testing.T) {
	if got := (Addressing{Mode: AddressSingleRow}).Dim(); got != shaderir.Texture1D {
		t.Errorf("single row Dim() = %v, want 1d", got)
	}
	for _, m := range []AddressMode{AddressMultiRow, AddressHalfDomain} {
		if got := (Addressing{Mode: m}).Dim(); got != shaderir.Texture2D {
			t.Errorf("%v Dim() = %v, want 2d", m, got)
		}
	}
}

// lookup resolves the texel Pos addresses in a packed texture and returns
// its first channel. It fails if the coordinate is not a texel center.
func lookup(t *testing.T, a Addressing, packed []float32, f float32, tol float64) float32 {
	t.Helper()
	u, v := a.Pos(f)
	col := u*float64(a.Width) - 0.5
	row := v*float64(a.Height) - 0.5
	c, r := math.Round(col), math.Round(row)
	if math.Abs(col-c) > tol || math.Abs(row-r) > 1e-9 {
		t.Fatalf("Pos(%v) = (%v, %v) is not a texel center of %dx%d", f, u, v, a.Width, a.Height)
	}
	if c < 0 || c >= float64(a.Width) || r < 0 || r >= float64(a.Height) {
		t.Fatalf("Pos(%v) = (%v, %v) is outside the %dx%d texture", f, u, v, a.Width, a.Height)
	}
	return packed[3*(int(r)*a.Width+int(c))]
}

func packedIndexLUT(t *testing.T, lut *LUT1D, maxWidth int) (Addressing, []float32) {
	t.Helper()
	a, err := NewAddressing(lut, maxWidth)
	if err != nil {
		t.Fatal(err)
	}
	packed, err := PackChannels(a.Width, a.Height, lut.Values)
	if err != nil {
		t.Fatal(err)
	}
	return a, packed
}

// indexLUT stores each entry's own index, so a lookup reveals which
// entry a coordinate reached.
func indexLUT(length int) *LUT1D {
	return &LUT1D{Values: triples(seq(length)...)}
}

func TestAddressing_PosSingleRow(t *testing.T) {
	const length = 1024
	a, packed := packedIndexLUT(t, indexLUT(length), 4096)
	for k := range length {
		f := float32(float64(k) / (length - 1))
		if got := lookup(t, a, packed, f, 1e-3); got != float32(k) {
			t.Fatalf("input %v reached entry %v, want %d", f, got, k)
		}
	}

	// Out of domain inputs land outside the texture; the sampler clamps.
	if u, _ := a.Pos(2); u <= 1 {
		t.Errorf("Pos(2) u = %v, want > 1", u)
	}
}

func TestAddressing_PosMultiRow(t *testing.T) {
	for _, tc := range []struct{ length, maxWidth int }{
		{8192, 4096},
		{4097, 4096},
		{100, 11},
	} {
		a, packed := packedIndexLUT(t, indexLUT(tc.length), tc.maxWidth)
		if a.Mode != AddressMultiRow {
			t.Fatalf("length %d: mode = %v, want multi-row", tc.length, a.Mode)
		}
		for k := range tc.length {
			f := float32(float64(k) / float64(tc.length-1))
			if got := lookup(t, a, packed, f, 1e-2); got != float32(k) {
				t.Fatalf("length %d: input %v reached entry %v, want %d", tc.length, f, got, k)
			}
		}
		// min() keeps inputs above one on the last entry.
		if got := lookup(t, a, packed, 3, 1e-2); got != float32(tc.length-1) {
			t.Errorf("length %d: input 3 reached entry %v, want %d", tc.length, got, tc.length-1)
		}
	}
}

func TestAddressing_PosHalfDomain(t *testing.T) {
	lut := &LUT1D{Values: triples(seq(HalfDomainLength)...), HalfDomain: true}
	for _, maxWidth := range []int{4096, 1000} {
		a, packed := packedIndexLUT(t, lut, maxWidth)
		for bits := range HalfDomainLength {
			if !isFiniteHalf(bits) || bits == 0x8000 {
				continue
			}
			f := HalfToFloat32(uint16(bits)) //nolint:gosec // G115: bits < HalfDomainLength
			if got := lookup(t, a, packed, f, 1e-6); got != float32(bits) {
				t.Fatalf("max width %d: half %#04x reached entry %v", maxWidth, bits, got)
			}
		}
		if got := lookup(t, a, packed, float32(math.Inf(1)), 1e-6); got != 0x7BFF {
			t.Errorf("max width %d: +Inf reached entry %v, want 0x7bff", maxWidth, got)
		}
	}
}

func TestAddressMode_String(t *testing.T) {
	tests := []struct {
		m    AddressMode
		want string
	}{
		{AddressSingleRow, "single-row"},
		{AddressMultiRow, "multi-row"},
		{AddressHalfDomain, "half-domain"},
		{AddressMode(9), "AddressMode(9)"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("AddressMode(%d).String() = %q, want %q", int(tt.m), got, tt.want)
		}
	}
}
