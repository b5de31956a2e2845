// Package controller turns key events into workspace mutations.
package controller

import (
	"github.com/rook-computer/pixeled/internal/canvas"
	"github.com/rook-computer/pixeled/internal/input"
	"github.com/rook-computer/pixeled/internal/state"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Controller applies one key at a time to a workspace. Width and Height are
// the surface size the viewport is scrolled against.
type Controller struct {
	Workspace *state.Workspace
	Width     int
	Height    int
	Logger    Logger
}

func New(ws *state.Workspace, width, height int, logger Logger) *Controller {
	return &Controller{Workspace: ws, Width: width, Height: height, Logger: logger}
}

// Handle applies ev and reports whether the editor should terminate.
func (c *Controller) Handle(ev input.Event) (quit bool) {
	ws := c.Workspace
	switch ev.Key {
	case input.KeyEscape:
		return true
	case input.KeyLeft:
		if ws.Cursor.X == ws.Start.X && ws.Start.X > 0 {
			ws.Start.X--
		}
		if ws.Cursor.X > 0 {
			ws.Cursor.X--
		}
		c.follow()
	case input.KeyRight:
		ws.Cursor.X++
		c.follow()
	case input.KeyUp:
		if ws.Cursor.Y == ws.Start.Y && ws.Start.Y > 0 {
			ws.Start.Y--
		}
		if ws.Cursor.Y > 0 {
			ws.Cursor.Y--
		}
		c.follow()
	case input.KeyDown:
		ws.Cursor.Y++
		c.follow()
	case input.KeySpace:
		c.paint(ws.CursorColor)
	case input.KeyN:
		c.paint(canvas.Black)
	case input.KeyG:
		ws.ToggleGrid()
	case input.KeyZ:
		ws.Zoom()
	case input.KeyP:
		ws.EnterPreview()
	case input.KeyE:
		ws.EnterEdit()
	case input.KeyC:
		ws.CursorColor.R++
	case input.KeyV:
		ws.CursorColor.G++
	case input.KeyB:
		ws.CursorColor.B++
	default:
		digit, ok := ev.Key.Digit()
		if !ok {
			c.infof("unhandled key: %s (code %d)", ev.Key, ev.Code)
			break
		}
		if _, err := ws.Select(digit); err != nil {
			c.errorf("%v", err)
			break
		}
		c.infof("active canvas: %d", ws.Active)
	}
	c.infof("cursor: %d %d scale: %d start: %d %d", ws.Cursor.X, ws.Cursor.Y, ws.Scale, ws.Start.X, ws.Start.Y)
	return false
}

// Columns is the number of whole canvas cells visible across the surface.
func (c *Controller) Columns() int { return cells(c.Width, c.Workspace.Scale) }

// Rows is the number of whole canvas cells visible down the surface.
func (c *Controller) Rows() int { return cells(c.Height, c.Workspace.Scale) }

func cells(size, scale int) int {
	if scale < 1 {
		scale = 1
	}
	n := size / scale
	if n < 1 {
		n = 1
	}
	return n
}

// follow scrolls the viewport so the cursor cell lies fully on screen.
func (c *Controller) follow() {
	ws := c.Workspace
	ws.Start.X = clampStart(ws.Start.X, ws.Cursor.X, c.Columns())
	ws.Start.Y = clampStart(ws.Start.Y, ws.Cursor.Y, c.Rows())
}

func clampStart(start, cursor, span int) int {
	if cursor-start >= span {
		start = cursor - span + 1
	}
	if cursor < start {
		start = cursor
	}
	if start < 0 {
		start = 0
	}
	return start
}

func (c *Controller) paint(color canvas.RGB) {
	ws := c.Workspace
	if _, ok := ws.ActiveCanvas(); !ok {
		c.errorf("slot %d has no canvas, ignoring paint", ws.Active)
		return
	}
	if !ws.Paint(color) {
		c.infof("cursor %d,%d outside canvas, ignoring paint", ws.Cursor.X, ws.Cursor.Y)
	}
}

func (c *Controller) infof(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Infof("input", format, args...)
	}
}

func (c *Controller) errorf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Errorf("input", format, args...)
	}
}
