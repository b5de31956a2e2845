package render

import (
	"errors"
	"image"

	"github.com/rook-computer/pixeled/internal/canvas"
	"github.com/rook-computer/pixeled/internal/state"
)

var ErrInvalidStep = errors.New("grid step must be at least 1")

// DrawHorizontalRun writes length pixels starting at origin towards +x.
// Pixels that fall off the surface are dropped.
func DrawHorizontalRun(s *Surface, origin image.Point, length int, c canvas.RGB) {
	if length <= 0 {
		return
	}
	s.Fill(image.Rect(origin.X, origin.Y, origin.X+length, origin.Y+1), c)
}

// DrawVerticalRun writes length pixels starting at origin towards +y.
func DrawVerticalRun(s *Surface, origin image.Point, length int, c canvas.RGB) {
	if length <= 0 {
		return
	}
	s.Fill(image.Rect(origin.X, origin.Y, origin.X+1, origin.Y+length), c)
}

// DrawGrid draws a full-height line at every multiple of step along x and a
// full-width line at every multiple of step along y.
func DrawGrid(s *Surface, step int, c canvas.RGB) error {
	if step < 1 {
		return ErrInvalidStep
	}
	width, height := s.Width(), s.Height()
	for x := 0; x < width; x += step {
		DrawVerticalRun(s, image.Pt(x, 0), height, c)
	}
	for y := 0; y < height; y += step {
		DrawHorizontalRun(s, image.Pt(0, y), width, c)
	}
	return nil
}

// cellRect is the screen block covering canvas coordinate (x, y).
func cellRect(ws *state.Workspace, x, y int) image.Rectangle {
	sx := (x - ws.Start.X) * ws.Scale
	sy := (y - ws.Start.Y) * ws.Scale
	return image.Rect(sx, sy, sx+ws.Scale, sy+ws.Scale)
}

// DrawCursor fills the cursor cell with the brush color.
func DrawCursor(s *Surface, ws *state.Workspace) {
	s.Fill(cellRect(ws, ws.Cursor.X, ws.Cursor.Y), ws.CursorColor)
}

// DrawCanvas blits the part of c visible through the viewport. Cells outside
// the canvas are left untouched.
func DrawCanvas(s *Surface, ws *state.Workspace, c *canvas.Canvas) {
	if ws.Scale < 1 || c == nil {
		return
	}
	cols := s.Width() / ws.Scale
	rows := s.Height() / ws.Scale
	for x := ws.Start.X; x < ws.Start.X+cols; x++ {
		for y := ws.Start.Y; y < ws.Start.Y+rows; y++ {
			if !c.In(x, y) {
				continue
			}
			s.Fill(cellRect(ws, x, y), c.At(x, y))
		}
	}
}

// DrawFrame composes a full frame: background, active canvas, grid, the
// status strip when hud is non-nil, then the cursor.
func DrawFrame(s *Surface, ws *state.Workspace, hud *StatusBar) error {
	s.Clear(Background)
	if c, ok := ws.ActiveCanvas(); ok {
		DrawCanvas(s, ws, c)
	}
	if ws.ShowGrid {
		if err := DrawGrid(s, ws.Scale, GridColor); err != nil {
			return err
		}
	}
	if hud != nil {
		hud.Draw(s, ws)
	}
	DrawCursor(s, ws)
	return nil
}
