package font8

const (
	// Height is the glyph height in pixels. Every glyph is exactly this
	// tall; blank rows are part of the shape.
	Height = 8
	// MaxWidth is the widest possible glyph in pixels, one pixel per bit
	// of a row byte.
	MaxWidth = 8
)

// Baseline split used by Face. Rows 0-5 sit above the baseline and the two
// bottom rows carry descenders (g, j, p, q, y).
const (
	ascentRows  = 6
	descentRows = 2
)

// Glyph is a single character shape. Rows holds one byte per pixel row, most
// significant bit leftmost. Advance is the horizontal pen movement in pixels
// after drawing, spacing included; set bits never extend past it.
//
// The zero Glyph means "not part of the face": zero advance, blank shape.
type Glyph struct {
	Advance int
	Rows    [Height]uint8
}

// Lookup returns the glyph for b. Bytes without a shape, including all
// bytes outside the 7-bit ASCII range, return the zero Glyph.
func Lookup(b byte) Glyph {
	if int(b) >= len(glyphs) {
		return Glyph{}
	}
	return glyphs[b]
}
