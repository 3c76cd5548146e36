package cgifh

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrPaletteFull is returned when adding a color to an image that already
// has PaletteMax palette entries.
var ErrPaletteFull = errors.New("cgifh: palette full")

// AddColor appends an RGB color to the image palette and returns its index.
// Indices are handed out in insertion order starting at 0. Once the palette
// holds PaletteMax entries, AddColor returns ErrPaletteFull.
func (img *Image) AddColor(r, g, b uint8) (uint8, error) {
	n := img.Colors()
	if n >= PaletteMax {
		return 0, ErrPaletteFull
	}
	img.Palette = append(img.Palette, r, g, b)
	return uint8(n), nil
}

// AddBlend appends a new palette entry mixed from entries idx0 and idx1 and
// returns its index. pos picks the mix point: 0 gives entry idx0 exactly,
// 255 gives entry idx1 exactly, values between interpolate per channel with
// integer arithmetic.
//
// idx0 and idx1 are not validated against the number of entries added;
// indices beyond it read zero bytes from the reserved palette storage.
func (img *Image) AddBlend(idx0, idx1, pos uint8) (uint8, error) {
	return img.AddColor(
		blend(img.paletteChannel(idx0, 0), img.paletteChannel(idx1, 0), pos),
		blend(img.paletteChannel(idx0, 1), img.paletteChannel(idx1, 1), pos),
		blend(img.paletteChannel(idx0, 2), img.paletteChannel(idx1, 2), pos),
	)
}

// paletteChannel reads one channel byte of entry i through the full
// reserved backing array, so unadded entries read as zero.
func (img *Image) paletteChannel(i uint8, ch int) uint8 {
	return img.Palette[:cap(img.Palette)][channelCount*int(i)+ch]
}

// blend mixes a single channel. The integer division truncates, so results
// step evenly from c0 at pos 0 to c1 at pos 255 without overshooting.
func blend(c0, c1, pos uint8) uint8 {
	if c0 <= c1 {
		return c0 + uint8(int(c1-c0)*int(pos)/255)
	}
	return c0 - uint8(int(c0-c1)*int(pos)/255)
}

// AddRamp appends steps palette entries blended from one color to another
// in the CIE Lab color space, which keeps perceived brightness even across
// the ramp, and returns their indices. A single step yields just the start
// color. Endpoints must have nonzero alpha.
//
// If the palette fills up mid-ramp, AddRamp returns the indices added so
// far together with ErrPaletteFull.
func (img *Image) AddRamp(from, to color.Color, steps int) ([]uint8, error) {
	if steps < 1 {
		return nil, fmt.Errorf("cgifh: ramp needs at least one color, got %d", steps)
	}
	c0, ok := colorful.MakeColor(from)
	if !ok {
		return nil, errors.New("cgifh: ramp start color has zero alpha")
	}
	c1, ok := colorful.MakeColor(to)
	if !ok {
		return nil, errors.New("cgifh: ramp end color has zero alpha")
	}

	indices := make([]uint8, 0, steps)
	for i := 0; i < steps; i++ {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		r, g, b := c0.BlendLab(c1, t).Clamped().RGB255()
		idx, err := img.AddColor(r, g, b)
		if err != nil {
			return indices, err
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// ColorPalette returns the palette converted to a stdlib color.Palette,
// preserving entry order. The result is a snapshot; colors added later are
// not reflected.
func (img *Image) ColorPalette() color.Palette {
	pal := make(color.Palette, img.Colors())
	for i := range pal {
		pal[i] = img.rgb(uint8(i))
	}
	return pal
}
