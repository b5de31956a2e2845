package render

import (
	"image"
	"image/draw"

	"github.com/rook-computer/pixeled/internal/canvas"
)

// Surface is a 32-bit RGBA pixel buffer that clips every write to its bounds.
type Surface struct {
	img *image.RGBA
}

// NewSurface allocates a width x height surface. Negative sizes are treated as
// zero.
func NewSurface(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (s *Surface) Width() int  { return s.img.Rect.Dx() }
func (s *Surface) Height() int { return s.img.Rect.Dy() }

func (s *Surface) Bounds() image.Rectangle { return s.img.Rect }

// Image exposes the backing buffer for presenters.
func (s *Surface) Image() *image.RGBA { return s.img }

// Set writes a single pixel, reporting false if (x, y) is off the surface.
func (s *Surface) Set(x, y int, c canvas.RGB) bool {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return false
	}
	s.img.SetRGBA(x, y, c.RGBA())
	return true
}

// At returns the color at (x, y), or black off the surface.
func (s *Surface) At(x, y int) canvas.RGB {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return canvas.Black
	}
	p := s.img.RGBAAt(x, y)
	return canvas.RGB{R: p.R, G: p.G, B: p.B}
}

// Fill paints rect clipped to the surface.
func (s *Surface) Fill(rect image.Rectangle, c canvas.RGB) {
	rect = rect.Intersect(s.img.Rect)
	if rect.Empty() {
		return
	}
	draw.Draw(s.img, rect, &image.Uniform{C: c.RGBA()}, image.Point{}, draw.Src)
}

// Clear fills the whole surface.
func (s *Surface) Clear(c canvas.RGB) {
	s.Fill(s.img.Rect, c)
}
