package cgifh

// setPixFunc writes one pixel. The dispatch in pixFunc picks the cheapest
// implementation that is safe for a whole primitive, so the per-pixel loops
// never branch on clipping themselves.
type setPixFunc func(c uint8, x, y int)

// pixFunc classifies the bounding box with corners (x0, y0) and (x1, y1)
// against the image bounds and returns the pixel setter to use for every
// write inside that box: Pixel when the box is fully inside, nil when it is
// fully outside (nothing to draw), and PixelClipped otherwise.
//
// Corners may be given in either order. Line primitives pass inclusive
// endpoint coordinates; box primitives pass an exclusive max corner, which
// at worst demotes a box flush against the right or bottom edge to the
// clipped setter.
func (img *Image) pixFunc(x0, y0, x1, y1 int) setPixFunc {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}

	if x0 >= 0 && x1 < img.Rect.Max.X && y0 >= 0 && y1 < img.Rect.Max.Y {
		return img.Pixel
	}
	if x1 < 0 || x0 >= img.Rect.Max.X || y1 < 0 || y0 >= img.Rect.Max.Y {
		return nil
	}
	return img.PixelClipped
}

// HLine draws a horizontal line in palette index c from (x0, y) to (x1, y)
// inclusive. The endpoints may be given in either order.
func (img *Image) HLine(c uint8, x0, x1, y int) {
	px := img.pixFunc(x0, y, x1, y)
	if px == nil {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		px(c, x, y)
	}
}

// VLine draws a vertical line in palette index c from (x, y0) to (x, y1)
// inclusive. The endpoints may be given in either order.
func (img *Image) VLine(c uint8, x, y0, y1 int) {
	px := img.pixFunc(x, y0, x, y1)
	if px == nil {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		px(c, x, y)
	}
}

// Line draws a straight line in palette index c from (x0, y0) to (x1, y1)
// using Bresenham's algorithm. Both endpoints are drawn, and the same
// pixels result whichever way round the endpoints are given.
func (img *Image) Line(c uint8, x0, y0, x1, y1 int) {
	px := img.pixFunc(x0, y0, x1, y1)
	if px == nil {
		return
	}

	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	err := dx + dy

	for {
		px(c, x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillRect fills the w x h rectangle with top-left corner (x, y) with
// palette index c. Zero or negative dimensions draw nothing.
func (img *Image) FillRect(c uint8, x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	px := img.pixFunc(x, y, x+w, y+h)
	if px == nil {
		return
	}
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			px(c, xx, yy)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
