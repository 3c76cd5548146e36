package cgifh

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"valid 320x200", 320, 200, false},
		{"valid 1x1 (minimum)", 1, 1, false},
		{"width zero", 0, 200, true},
		{"height zero", 320, 0, true},
		{"width negative", -1, 200, true},
		{"height negative", 320, -1, true},
		{"area overflows int", math.MaxInt/2 + 1, 2, true},
		{"area far past int limit", math.MaxInt, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := New(tt.w, tt.h)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but didn't get one")
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%d, %d) = %v", tt.w, tt.h, err)
			}
			if got := img.Bounds(); got != image.Rect(0, 0, tt.w, tt.h) {
				t.Errorf("Bounds() = %v, want %v", got, image.Rect(0, 0, tt.w, tt.h))
			}
			if img.Stride != tt.w {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.w)
			}
			if len(img.Pix) != tt.w*tt.h {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.w*tt.h)
			}
			if img.Colors() != 0 {
				t.Errorf("Colors() = %d, want 0", img.Colors())
			}
			for i, p := range img.Pix {
				if p != 0 {
					t.Fatalf("Pix[%d] = %d, want 0 (fresh buffer)", i, p)
				}
			}
		})
	}
}

func TestClear(t *testing.T) {
	img, err := New(7, 5)
	if err != nil {
		t.Fatal(err)
	}

	img.Clear(3)
	for i, p := range img.Pix {
		if p != 3 {
			t.Fatalf("Pix[%d] = %d, want 3", i, p)
		}
	}

	img.Clear(0)
	for i, p := range img.Pix {
		if p != 0 {
			t.Fatalf("Pix[%d] = %d, want 0", i, p)
		}
	}
}

func TestPixel(t *testing.T) {
	img, err := New(4, 3)
	if err != nil {
		t.Fatal(err)
	}

	img.Pixel(9, 2, 1)
	if got := img.Pix[1*img.Stride+2]; got != 9 {
		t.Errorf("Pix[1*Stride+2] = %d, want 9", got)
	}
	if got := img.ColorIndexAt(2, 1); got != 9 {
		t.Errorf("ColorIndexAt(2, 1) = %d, want 9", got)
	}
}

func TestPixelClipped(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		drawn bool
	}{
		{"inside", 1, 1, true},
		{"top-left corner", 0, 0, true},
		{"bottom-right corner", 3, 2, true},
		{"left of image", -1, 1, false},
		{"right of image", 4, 1, false},
		{"above image", 1, -1, false},
		{"below image", 1, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := New(4, 3)
			if err != nil {
				t.Fatal(err)
			}
			img.PixelClipped(5, tt.x, tt.y)

			want := 0
			if tt.drawn {
				want = 1
			}
			if got := countPix(img, 5); got != want {
				t.Errorf("drew %d pixels, want %d", got, want)
			}
			if tt.drawn && img.ColorIndexAt(tt.x, tt.y) != 5 {
				t.Errorf("ColorIndexAt(%d, %d) = %d, want 5", tt.x, tt.y, img.ColorIndexAt(tt.x, tt.y))
			}
		})
	}
}

func TestColorIndexAtOutside(t *testing.T) {
	img, err := New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	img.Clear(7)

	if got := img.ColorIndexAt(-1, 0); got != 0 {
		t.Errorf("ColorIndexAt(-1, 0) = %d, want 0", got)
	}
	if got := img.ColorIndexAt(0, 2); got != 0 {
		t.Errorf("ColorIndexAt(0, 2) = %d, want 0", got)
	}
}

func TestAt(t *testing.T) {
	img, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	red, err := img.AddColor(0xFF, 0x00, 0x00)
	if err != nil {
		t.Fatal(err)
	}
	img.Pixel(red, 1, 1)
	img.Pixel(5, 2, 0) // index with no palette entry

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"stored color", 1, 1, color.RGBA{R: 0xFF, A: 0xFF}},
		{"index 0 resolves to first entry", 0, 0, color.RGBA{R: 0xFF, A: 0xFF}},
		{"index beyond palette", 2, 0, color.RGBA{A: 0xFF}},
		{"outside image", -1, 0, color.RGBA{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.At(tt.x, tt.y); got != tt.want {
				t.Errorf("At(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSet(t *testing.T) {
	img, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := img.AddColor(0x00, 0x00, 0x00); err != nil {
		t.Fatal(err)
	}
	white, err := img.AddColor(0xFF, 0xFF, 0xFF)
	if err != nil {
		t.Fatal(err)
	}

	// Nearest-entry conversion: light gray snaps to white.
	img.Set(2, 2, color.RGBA{0xE0, 0xE0, 0xE0, 0xFF})
	if got := img.ColorIndexAt(2, 2); got != white {
		t.Errorf("ColorIndexAt(2, 2) = %d, want %d", got, white)
	}

	// Out of bounds is a silent no-op.
	img.Set(3, 3, color.White)
	if got := countPix(img, white); got != 1 {
		t.Errorf("drew %d white pixels, want 1", got)
	}
}

func TestColorModel(t *testing.T) {
	img, err := New(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := img.AddColor(0x10, 0x20, 0x30); err != nil {
		t.Fatal(err)
	}
	if _, err := img.AddColor(0x80, 0x80, 0x80); err != nil {
		t.Fatal(err)
	}

	got := img.ColorModel().Convert(color.RGBA{0x11, 0x22, 0x33, 0xFF})
	want := color.RGBA{0x10, 0x20, 0x30, 0xFF}
	if got != want {
		t.Errorf("Convert = %v, want %v", got, want)
	}
}

func TestPaletted(t *testing.T) {
	img, err := New(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	black, err := img.AddColor(0x00, 0x00, 0x00)
	if err != nil {
		t.Fatal(err)
	}
	green, err := img.AddColor(0x00, 0xFF, 0x00)
	if err != nil {
		t.Fatal(err)
	}
	img.Clear(black)
	img.Pixel(green, 3, 1)

	p := img.Paletted()
	if p.Stride != img.Stride || p.Rect != img.Rect {
		t.Errorf("Paletted() layout = stride %d rect %v, want stride %d rect %v",
			p.Stride, p.Rect, img.Stride, img.Rect)
	}
	if len(p.Palette) != 2 {
		t.Fatalf("len(Palette) = %d, want 2", len(p.Palette))
	}
	if got := p.ColorIndexAt(3, 1); got != green {
		t.Errorf("ColorIndexAt(3, 1) = %d, want %d", got, green)
	}

	// Pix is shared, not copied: drawing after conversion shows through.
	img.Pixel(green, 0, 0)
	if got := p.ColorIndexAt(0, 0); got != green {
		t.Errorf("ColorIndexAt(0, 0) after draw = %d, want %d", got, green)
	}
}

func TestString(t *testing.T) {
	img, err := New(320, 200)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := img.AddColor(0, 0, 0); err != nil {
		t.Fatal(err)
	}

	want := "cgifh.Image{320x200, 1 colors}"
	if got := img.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// countPix returns how many pixels hold palette index c.
func countPix(img *Image, c uint8) int {
	n := 0
	for _, p := range img.Pix {
		if p == c {
			n++
		}
	}
	return n
}
