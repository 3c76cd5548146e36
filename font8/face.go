package font8

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face exposes the glyph table as a golang.org/x/image/font.Face, so the
// font can drive font.Drawer, font.MeasureString and friends against any
// draw.Image destination.
//
// Scale is the integer pixel multiplier applied to every glyph; values
// below 1 render at scale 1. Each set bit becomes a Scale x Scale block,
// matching the nearest-neighbour scaling of the native text routines.
type Face struct {
	Scale int
}

var _ font.Face = &Face{}

func (f *Face) scale() int {
	if f.Scale < 1 {
		return 1
	}
	return f.Scale
}

// Close implements font.Face. It is a no-op as there is nothing to release.
func (f *Face) Close() error { return nil }

// Kern implements font.Face. The font has no kerning pairs.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Metrics implements font.Face.
func (f *Face) Metrics() font.Metrics {
	s := f.scale()
	return font.Metrics{
		Height:     fixed.I(Height * s),
		Ascent:     fixed.I(ascentRows * s),
		Descent:    fixed.I(descentRows * s),
		XHeight:    fixed.I(5 * s),
		CapHeight:  fixed.I(6 * s),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

// GlyphAdvance implements font.Face.
func (f *Face) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	g, ok := lookupRune(r)
	if !ok {
		return 0, false
	}
	return fixed.I(g.Advance * f.scale()), true
}

// GlyphBounds implements font.Face. Glyphs occupy the full cell height, so
// the bounds are the scaled cell rather than a tight ink box.
func (f *Face) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	g, ok := lookupRune(r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	s := f.scale()
	bounds := fixed.R(0, -ascentRows*s, g.Advance*s, descentRows*s)
	return bounds, fixed.I(g.Advance * s), true
}

// Glyph implements font.Face. The mask covers the full MaxWidth cell; bits
// beyond the advance are always clear, so the extra columns draw nothing.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	g, ok := lookupRune(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}

	s := f.scale()
	mask := image.NewAlpha(image.Rect(0, 0, MaxWidth*s, Height*s))
	for row := 0; row < Height; row++ {
		bits := g.Rows[row]
		if bits == 0 {
			continue
		}
		for col := 0; col < MaxWidth; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			for y := row * s; y < (row+1)*s; y++ {
				base := y*mask.Stride + col*s
				for i := 0; i < s; i++ {
					mask.Pix[base+i] = 0xFF
				}
			}
		}
	}

	x, y := dot.X.Round(), dot.Y.Round()
	dr := image.Rect(x, y-ascentRows*s, x+MaxWidth*s, y+descentRows*s)
	return dr, mask, image.Point{}, fixed.I(g.Advance * s), true
}

// lookupRune narrows a rune to the byte-indexed table.
func lookupRune(r rune) (Glyph, bool) {
	if r < 0 || int(r) >= len(glyphs) {
		return Glyph{}, false
	}
	g := glyphs[r]
	if g == (Glyph{}) {
		return Glyph{}, false
	}
	return g, true
}
