package cgifh

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
)

const (
	// PaletteMax is the maximum number of palette entries per image.
	PaletteMax = 256

	// Palette entries are interleaved RGB triples.
	channelCount = 3
)

// Image is an indexed-color frame: one byte per pixel naming an entry in
// the image's own palette.
type Image struct {
	// Palette holds interleaved RGB triples in insertion order, three
	// bytes per color. Its length is always a multiple of three.
	Palette []uint8
	// Pix holds one palette index per pixel, row-major.
	// The pixel at (x, y) is Pix[y*Stride + x].
	Pix []uint8
	// Stride is the Pix distance in bytes between vertically adjacent
	// pixels. It is always the image width.
	Stride int
	// Rect is the image bounds, anchored at the origin.
	Rect image.Rectangle
}

var _ image.PalettedImage = &Image{}
var _ draw.Image = &Image{}

// New returns an empty width x height image with a zero-filled pixel buffer
// and room reserved for a full palette. Every pixel starts as index 0, so
// the first color added is the initial background.
func New(width, height int) (*Image, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("cgifh: invalid dimensions %dx%d", width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("cgifh: dimensions %dx%d overflow", width, height)
	}
	return &Image{
		Palette: make([]uint8, 0, channelCount*PaletteMax),
		Pix:     make([]uint8, width*height),
		Stride:  width,
		Rect:    image.Rect(0, 0, width, height),
	}, nil
}

// Colors returns the number of palette entries added so far.
func (img *Image) Colors() int {
	return len(img.Palette) / channelCount
}

// Clear sets every pixel to the given palette index.
func (img *Image) Clear(index uint8) {
	for i := range img.Pix {
		img.Pix[i] = index
	}
}

// Pixel sets the pixel at (x, y) to palette index c without any bounds
// checking. It is the fast path for callers that have already clipped;
// coordinates outside the image panic.
func (img *Image) Pixel(c uint8, x, y int) {
	img.Pix[y*img.Stride+x] = c
}

// PixelClipped sets the pixel at (x, y) to palette index c, discarding
// writes outside the image.
func (img *Image) PixelClipped(c uint8, x, y int) {
	if x >= 0 && x < img.Rect.Max.X && y >= 0 && y < img.Rect.Max.Y {
		img.Pix[y*img.Stride+x] = c
	}
}

// PixOffset returns the index into Pix of the pixel at (x, y).
func (img *Image) PixOffset(x, y int) int {
	return (y-img.Rect.Min.Y)*img.Stride + (x - img.Rect.Min.X)
}

// ColorIndexAt returns the palette index of the pixel at (x, y), or 0 for
// coordinates outside the image.
func (img *Image) ColorIndexAt(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}.In(img.Rect)) {
		return 0
	}
	return img.Pix[img.PixOffset(x, y)]
}

// SetColorIndex sets the pixel at (x, y) to palette index c, discarding
// writes outside the image. It mirrors the stdlib paletted setter; the
// drawing primitives use Pixel and PixelClipped.
func (img *Image) SetColorIndex(x, y int, c uint8) {
	img.PixelClipped(c, x, y)
}

// ColorModel returns a model that converts colors to their nearest palette
// entry. It implements the image.Image interface.
func (img *Image) ColorModel() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		return img.rgb(img.index(c))
	})
}

// Bounds returns the image bounds. It implements the image.Image interface.
func (img *Image) Bounds() image.Rectangle {
	return img.Rect
}

// At returns the color of the pixel at (x, y). Coordinates outside the
// image are transparent black. It implements the image.Image interface.
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(img.Rect)) {
		return color.RGBA{}
	}
	return img.rgb(img.Pix[img.PixOffset(x, y)])
}

// Set sets the pixel at (x, y) to the palette entry nearest to c, discarding
// writes outside the image. It implements the draw.Image interface, allowing
// an Image to be the destination of stdlib draw and x/image font operations.
func (img *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(img.Rect)) {
		return
	}
	img.Pix[img.PixOffset(x, y)] = img.index(c)
}

// rgb returns palette entry i as an opaque color. Indices at or beyond the
// stored count resolve to opaque black rather than reading past the palette.
func (img *Image) rgb(i uint8) color.RGBA {
	p := channelCount * int(i)
	if p+channelCount > len(img.Palette) {
		return color.RGBA{A: 0xFF}
	}
	return color.RGBA{
		R: img.Palette[p+0],
		G: img.Palette[p+1],
		B: img.Palette[p+2],
		A: 0xFF,
	}
}

// index returns the palette index whose entry is nearest to c by squared
// RGB distance, or 0 when the palette is empty.
func (img *Image) index(c color.Color) uint8 {
	r, g, b, _ := c.RGBA()
	cr, cg, cb := int(r>>8), int(g>>8), int(b>>8)

	best, bestDist := 0, math.MaxInt
	for i := 0; i < img.Colors(); i++ {
		p := channelCount * i
		dr := cr - int(img.Palette[p+0])
		dg := cg - int(img.Palette[p+1])
		db := cb - int(img.Palette[p+2])
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return uint8(best)
}

// Paletted returns the frame as a stdlib *image.Paletted for use with
// encoders such as image/gif. The returned image shares Pix with img, so
// later drawing shows through; the palette is converted at call time and
// does not track colors added afterwards.
func (img *Image) Paletted() *image.Paletted {
	return &image.Paletted{
		Pix:     img.Pix,
		Stride:  img.Stride,
		Rect:    img.Rect,
		Palette: img.ColorPalette(),
	}
}

// String returns a short description of the image.
func (img *Image) String() string {
	return fmt.Sprintf("cgifh.Image{%dx%d, %d colors}", img.Rect.Dx(), img.Rect.Dy(), img.Colors())
}
