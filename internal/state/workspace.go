package state

import (
	"fmt"

	"github.com/rook-computer/pixeled/internal/canvas"
)

// DefaultCursorColor is the brush color of a fresh workspace.
var DefaultCursorColor = canvas.RGB{R: 0xFF, G: 0x0F, B: 0x0F}

type Point struct {
	X, Y int
}

// Workspace is the editing session: cursor, viewport, zoom, brush, mode and
// the canvas slots. It is owned by the main loop and is not safe for
// concurrent use.
type Workspace struct {
	Scale       int
	Cursor      Point
	CursorColor canvas.RGB
	Start       Point
	ShowGrid    bool
	Slots       Slots
	Active      int
	Mode        Mode
}

// NewWorkspace returns a workspace in edit mode with slot 0 populated and
// active.
func NewWorkspace() *Workspace {
	ws := &Workspace{
		Scale:       1,
		CursorColor: DefaultCursorColor,
		ShowGrid:    true,
		Mode:        ModeEdit,
	}
	_, _, _ = ws.Slots.Ensure(0)
	return ws
}

// ActiveCanvas returns the canvas in the active slot. ok is false if the
// slot is empty, which a workspace built by NewWorkspace never allows.
func (ws *Workspace) ActiveCanvas() (*canvas.Canvas, bool) {
	return ws.Slots.Get(ws.Active)
}

// Select activates slot index, creating its canvas if needed. created reports
// whether a canvas was allocated.
func (ws *Workspace) Select(index int) (created bool, err error) {
	_, created, err = ws.Slots.Ensure(index)
	if err != nil {
		return false, fmt.Errorf("select slot %d: %w", index, err)
	}
	ws.Active = index
	return created, nil
}

// AdvancePreview moves the active slot to the next populated one, wrapping
// around. It reports whether the active slot changed.
func (ws *Workspace) AdvancePreview() bool {
	next, ok := ws.Slots.NextPopulated(ws.Active)
	if !ok || next == ws.Active {
		return false
	}
	ws.Active = next
	return true
}

// Zoom doubles the scale within 8 bits, restarting at 1 on overflow.
func (ws *Workspace) Zoom() {
	ws.Scale = (ws.Scale << 1) & 0xFF
	if ws.Scale == 0 {
		ws.Scale = 1
	}
}

func (ws *Workspace) ToggleGrid() { ws.ShowGrid = !ws.ShowGrid }

// Paint writes color at the cursor on the active canvas. It reports false when
// there is no active canvas or the cursor lies outside it.
func (ws *Workspace) Paint(color canvas.RGB) bool {
	c, ok := ws.ActiveCanvas()
	if !ok {
		return false
	}
	return c.Set(ws.Cursor.X, ws.Cursor.Y, color)
}

// Snapshot copies the display-relevant fields.
func (ws *Workspace) Snapshot() Snapshot {
	snap := Snapshot{
		Scale:       ws.Scale,
		Cursor:      ws.Cursor,
		CursorColor: ws.CursorColor,
		Start:       ws.Start,
		ShowGrid:    ws.ShowGrid,
		Active:      ws.Active,
		Mode:        ws.Mode,
		Populated:   ws.Slots.Populated(),
	}
	if c, ok := ws.ActiveCanvas(); ok {
		snap.Painted = c.Count()
	}
	return snap
}
