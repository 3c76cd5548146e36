// Package cgifh provides palette-based image composition helpers for
// building animation frames, typically for GIF encoding.
//
// An Image is a byte-per-pixel indexed frame together with its own color
// palette of up to 256 RGB entries. Drawing primitives (pixels, lines,
// rectangles and bitmap text) write palette indices straight into the pixel
// buffer; colors are resolved only when the frame is encoded or displayed.
//
// # Memory Layout
//
// The pixel buffer is row-major with one byte per pixel:
//
//	Pix[y*Stride + x] = palette index of the pixel at (x, y)
//
// The palette is a flat byte slice of interleaved RGB triples in insertion
// order:
//
//	Palette[3*i+0] = red of entry i
//	Palette[3*i+1] = green of entry i
//	Palette[3*i+2] = blue of entry i
//
// Both layouts are part of the API so frames can be handed to encoders
// without conversion. Paletted returns the same storage wrapped in a stdlib
// *image.Paletted for image/gif.
//
// # Basic Usage
//
//	img, err := cgifh.New(320, 200)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	bg, _ := img.AddColor(0x00, 0x00, 0x00)
//	fg, _ := img.AddColor(0xFF, 0xFF, 0xFF)
//	img.Clear(bg)
//
//	img.FillRect(fg, 10, 10, 100, 50)
//	img.Line(fg, 0, 0, 319, 199)
//	img.Text(fg, "Hello", 2, 16, 20)
//
//	gif.Encode(w, img.Paletted(), nil)
//
// # Drawing Model
//
// Every primitive clips to the image bounds, classifying its bounding box
// once up front: fully inside draws through an unchecked fast path, fully
// outside draws nothing, and anything else clips per pixel. Pixel is the
// raw unchecked write for callers that already know their coordinates are
// inside; out-of-range coordinates make it panic.
//
// # Palette Blends and Ramps
//
// AddBlend derives a new palette entry by mixing two existing entries with
// 8-bit integer arithmetic, which is cheap and deterministic. AddRamp adds
// a run of entries blended in the CIE Lab color space, which keeps perceived
// brightness even across the ramp; use it for gradients and fades.
//
// # Text
//
// Text is rendered with the built-in 8px bitmap font from the font8
// subpackage, scaled by whole pixels. Advances are returned even when a
// glyph lands entirely off-image, so layout code can measure and position
// text without caring about visibility. TextWidth and TextHeight measure
// without drawing. For use with golang.org/x/image/font.Drawer, font8.Face
// adapts the same font to the font.Face interface.
//
// # Displays
//
// An Image is a stdlib image.Image (and image.PalettedImage), so it can be
// pushed to any periph.io display.Drawer. Show crops the frame to the
// display and draws it anchored at the display's top-left corner.
//
// # Ownership and Concurrency
//
// An Image owns its buffers for its lifetime; there are no copy or subimage
// views, and Paletted aliases the same storage rather than copying it. An
// Image is not safe for concurrent mutation. Drawing from one goroutine
// while encoding from another needs external synchronization.
package cgifh
