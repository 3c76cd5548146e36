package cgifh

import "github.com/tlsa/libcgifh/font8"

// CharScaled draws character ch in palette index c with its top-left corner
// at (x, y), stretching each glyph pixel to a scaleX x scaleY block. It
// returns the scaled horizontal advance in pixels.
//
// The advance is returned even when the glyph lands entirely outside the
// image, so layout keeps working at the edges. Characters without a glyph
// draw nothing and advance by zero.
func (img *Image) CharScaled(c uint8, ch byte, scaleX, scaleY, x, y int) int {
	g := font8.Lookup(ch)
	if g.Advance == 0 {
		return 0
	}

	advance := g.Advance * scaleX
	px := img.pixFunc(x, y, x+advance, y+font8.Height*scaleY)
	if px == nil {
		return advance
	}

	for row := 0; row < font8.Height; row++ {
		bits := g.Rows[row]
		if bits != 0 {
			xx := x
			for col := 0; col < font8.MaxWidth; col++ {
				if bits&(0x80>>col) != 0 {
					for i := 0; i < scaleY; i++ {
						for j := 0; j < scaleX; j++ {
							px(c, xx+j, y+i)
						}
					}
				}
				xx += scaleX
			}
		}
		y += scaleY
	}

	return advance
}

// Char draws character ch in palette index c with its top-left corner at
// (x, y), scaled uniformly. It returns the scaled horizontal advance in
// pixels; see CharScaled.
func (img *Image) Char(c uint8, ch byte, scale, x, y int) int {
	return img.CharScaled(c, ch, scale, scale, x, y)
}

// Text draws a string in palette index c with its top-left corner at
// (x, y), scaled uniformly. It returns the total horizontal advance in
// pixels. The string is treated as bytes; characters without a glyph are
// skipped.
func (img *Image) Text(c uint8, text string, scale, x, y int) int {
	advance := 0
	for i := 0; i < len(text); i++ {
		advance += img.Char(c, text[i], scale, x+advance, y)
	}
	return advance
}

// TextWidth returns the width in pixels that text would occupy when drawn
// at the given scale, without drawing it. Characters without a glyph
// contribute nothing.
func TextWidth(text string, scale int) int {
	advance := 0
	for i := 0; i < len(text); i++ {
		advance += font8.Lookup(text[i]).Advance
	}
	return advance * scale
}

// TextHeight returns the height in pixels of a line of text at the given
// scale.
func TextHeight(scale int) int {
	return font8.Height * scale
}
