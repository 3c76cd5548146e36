package font8

import (
	"image"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func TestFaceMetrics(t *testing.T) {
	tests := []struct {
		name  string
		scale int
		mult  int
	}{
		{"scale 1", 1, 1},
		{"scale 3", 3, 3},
		{"zero scale clamps to 1", 0, 1},
		{"negative scale clamps to 1", -2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Face{Scale: tt.scale}
			m := f.Metrics()
			if m.Height != fixed.I(Height*tt.mult) {
				t.Errorf("Height = %v, want %v", m.Height, fixed.I(Height*tt.mult))
			}
			if m.Ascent+m.Descent != m.Height {
				t.Errorf("Ascent %v + Descent %v != Height %v", m.Ascent, m.Descent, m.Height)
			}
		})
	}
}

func TestFaceGlyphAdvance(t *testing.T) {
	f := &Face{Scale: 2}

	adv, ok := f.GlyphAdvance('a')
	if !ok {
		t.Fatal("GlyphAdvance('a') not ok")
	}
	if want := fixed.I(Lookup('a').Advance * 2); adv != want {
		t.Errorf("GlyphAdvance('a') = %v, want %v", adv, want)
	}

	if _, ok := f.GlyphAdvance('~'); ok {
		t.Error("GlyphAdvance('~') ok, want missing")
	}
	if _, ok := f.GlyphAdvance('世'); ok {
		t.Error("GlyphAdvance('世') ok, want missing")
	}
	if _, ok := f.GlyphAdvance(-1); ok {
		t.Error("GlyphAdvance(-1) ok, want missing")
	}
}

func TestFaceGlyph(t *testing.T) {
	f := &Face{Scale: 1}
	dot := fixed.P(10, 20)

	dr, maskImg, maskp, advance, ok := f.Glyph(dot, '!')
	if !ok {
		t.Fatal("Glyph('!') not ok")
	}
	if want := fixed.I(Lookup('!').Advance); advance != want {
		t.Errorf("advance = %v, want %v", advance, want)
	}
	if maskp != (image.Point{}) {
		t.Errorf("mask point = %v, want origin", maskp)
	}
	if want := image.Rect(10, 20-6, 10+MaxWidth, 20+2); dr != want {
		t.Errorf("dr = %v, want %v", dr, want)
	}

	// The mask must reproduce the table bits exactly.
	mask := maskImg.(*image.Alpha)
	g := Lookup('!')
	for row := 0; row < Height; row++ {
		for col := 0; col < MaxWidth; col++ {
			want := uint8(0)
			if g.Rows[row]&(0x80>>col) != 0 {
				want = 0xFF
			}
			if got := mask.Pix[row*mask.Stride+col]; got != want {
				t.Errorf("mask(%d, %d) = %#x, want %#x", col, row, got, want)
			}
		}
	}
}

func TestFaceGlyphScaled(t *testing.T) {
	f := &Face{Scale: 2}

	dr, maskImg, _, _, ok := f.Glyph(fixed.P(0, 0), '.')
	if !ok {
		t.Fatal("Glyph('.') not ok")
	}
	if want := image.Rect(0, -12, 16, 4); dr != want {
		t.Errorf("dr = %v, want %v", dr, want)
	}

	// '.' has one set bit at row 5, column 0: a 2x2 block in the mask.
	mask := maskImg.(*image.Alpha)
	wantSet := map[image.Point]bool{
		{X: 0, Y: 10}: true, {X: 1, Y: 10}: true,
		{X: 0, Y: 11}: true, {X: 1, Y: 11}: true,
	}
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			want := uint8(0)
			if wantSet[image.Point{X: x, Y: y}] {
				want = 0xFF
			}
			if got := mask.Pix[y*mask.Stride+x]; got != want {
				t.Errorf("mask(%d, %d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestFaceKernAndClose(t *testing.T) {
	f := &Face{Scale: 1}
	if k := f.Kern('a', 'b'); k != 0 {
		t.Errorf("Kern = %v, want 0", k)
	}
	if err := f.Close(); err != nil {
		t.Errorf("Close = %v", err)
	}
}

func TestFaceMeasureString(t *testing.T) {
	f := &Face{Scale: 1}
	got := font.MeasureString(f, "ab")
	want := fixed.I(Lookup('a').Advance + Lookup('b').Advance)
	if got != want {
		t.Errorf("MeasureString = %v, want %v", got, want)
	}
}
