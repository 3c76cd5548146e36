package cgifh

import (
	"image"

	"periph.io/x/conn/v3/display"
)

// Show draws the frame onto a periph.io display, anchored at the display's
// top-left corner. Frames larger than the display are cropped; smaller
// frames leave the rest of the display untouched. The display converts
// palette colors to its native color model as it draws.
func Show(d display.Drawer, img *Image) error {
	bounds := d.Bounds()
	r := image.Rectangle{
		Min: bounds.Min,
		Max: bounds.Min.Add(img.Rect.Size()),
	}.Intersect(bounds)
	if r.Empty() {
		return nil
	}
	return d.Draw(r, img, image.Point{})
}
