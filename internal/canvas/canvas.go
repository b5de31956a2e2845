package canvas

import "image/color"

// Size is the edge length of every canvas. Requested dimensions are ignored.
const Size = 64

// RGB is a 24-bit color with no alpha channel.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{}
	White = RGB{R: 0xFF, G: 0xFF, B: 0xFF}
)

// RGBA converts to an opaque color usable with the image packages.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Canvas is a fixed-size grid of paintable pixels stored row-major. Unpainted
// pixels are transparent and read back as black; painted pixels are opaque,
// so an erased pixel is distinguishable from one never touched.
type Canvas struct {
	width  int
	height int
	pixels []color.RGBA
}

// New allocates a zero-filled canvas. The result is always Size x Size,
// whatever width and height were requested.
func New(requestedWidth, requestedHeight int) *Canvas {
	return &Canvas{
		width:  Size,
		height: Size,
		pixels: make([]color.RGBA, Size*Size),
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// In reports whether (x, y) addresses a pixel of the canvas.
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the pixel at (x, y), or black when out of range.
func (c *Canvas) At(x, y int) RGB {
	if !c.In(x, y) {
		return Black
	}
	p := c.pixels[y*c.width+x]
	return RGB{R: p.R, G: p.G, B: p.B}
}

// Painted reports whether (x, y) has been written since creation.
func (c *Canvas) Painted(x, y int) bool {
	return c.In(x, y) && c.pixels[y*c.width+x].A != 0
}

// Set writes the pixel at (x, y). Out-of-range writes are dropped and
// reported as false.
func (c *Canvas) Set(x, y int, px RGB) bool {
	if !c.In(x, y) {
		return false
	}
	c.pixels[y*c.width+x] = px.RGBA()
	return true
}

// Count returns the number of painted pixels.
func (c *Canvas) Count() int {
	n := 0
	for _, p := range c.pixels {
		if p.A != 0 {
			n++
		}
	}
	return n
}
