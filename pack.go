package lutshader

import "fmt"

// TextureSize returns the texture geometry used for a LUT of length
// entries when textures may be at most maxWidth texels wide.
//
// LUTs that fit in one row use a width of exactly length. Longer LUTs wrap
// onto additional rows of maxWidth texels.
func TextureSize(length, maxWidth int) (width, height int, err error) {
	if length < 2 {
		return 0, 0, fmt.Errorf("%w: %d entries, need at least 2", ErrInvalidLength, length)
	}
	if maxWidth < 2 {
		return 0, 0, fmt.Errorf("%w: maximum width %d, need at least 2", ErrInvalidWidth, maxWidth)
	}
	return min(length, maxWidth), length/maxWidth + 1, nil
}

// PackChannels lays out interleaved RGB LUT values as a width x height
// RGB texture and returns exactly 3*width*height floats.
//
// When height is greater than one, the LUT is wrapped across rows with
// one texel of overlap: the last texel of a row repeats the first texel of
// the next. Lookups that address rows with a stride of width-1 therefore
// interpolate continuously across row breaks. Texels past the end of the
// LUT repeat the last entry, and every value goes through SanitizeFloat.
func PackChannels(width, height int, values []float32) ([]float32, error) {
	if height < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHeight, height)
	}
	if width < 1 || (height > 1 && width < 2) {
		return nil, fmt.Errorf("%w: %d for %d rows", ErrInvalidWidth, width, height)
	}
	if len(values) == 0 || len(values)%3 != 0 {
		return nil, fmt.Errorf("%w: %d values is not a positive multiple of 3", ErrSizeMismatch, len(values))
	}

	count := len(values) / 3
	total := width * height
	out := make([]float32, 0, 3*total)
	texel := func(i int) {
		out = append(out,
			SanitizeFloat(values[3*i]),
			SanitizeFloat(values[3*i+1]),
			SanitizeFloat(values[3*i+2]))
	}

	if height > 1 {
		step := width - 1
		leftover := count
		for i := 0; i+step < count; i += step {
			for j := i; j < i+step; j++ {
				texel(j)
			}
			// Close this row with the entry that opens the next one.
			texel(i + step)
			leftover -= step
		}
		if leftover > 0 {
			for j := count - leftover; j < count-1; j++ {
				texel(j)
			}
			texel(count - 1)
		}
	} else {
		for j := range count {
			texel(j)
		}
	}

	if written := len(out) / 3; written > total {
		return nil, fmt.Errorf("%w: %d entries need %d texels, texture holds %dx%d",
			ErrSizeMismatch, count, written, width, height)
	}
	for len(out) < 3*total {
		texel(count - 1)
	}
	return out, nil
}
