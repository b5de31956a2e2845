package controller

import (
	"testing"

	"github.com/rook-computer/pixeled/internal/canvas"
	"github.com/rook-computer/pixeled/internal/input"
	"github.com/rook-computer/pixeled/internal/state"
)

type recordingLogger struct {
	infos  []string
	errors []string
}

func (l *recordingLogger) Infof(component, format string, args ...interface{}) {
	l.infos = append(l.infos, format)
}

func (l *recordingLogger) Errorf(component, format string, args ...interface{}) {
	l.errors = append(l.errors, format)
}

func press(c *Controller, keys ...input.Key) bool {
	quit := false
	for _, k := range keys {
		if c.Handle(input.Event{Key: k}) {
			quit = true
		}
	}
	return quit
}

func repeat(k input.Key, n int) []input.Key {
	out := make([]input.Key, n)
	for i := range out {
		out[i] = k
	}
	return out
}

func TestEscapeQuits(t *testing.T) {
	c := New(state.NewWorkspace(), 640, 480, nil)
	if !press(c, input.KeyEscape) {
		t.Error("escape must request termination")
	}
	if press(c, input.KeySpace, input.KeyG) {
		t.Error("other keys must not request termination")
	}
}

func TestCursorNeverNegative(t *testing.T) {
	ws := state.NewWorkspace()
	c := New(ws, 64, 64, nil)

	press(c, input.KeyLeft, input.KeyUp, input.KeyLeft, input.KeyUp)
	if ws.Cursor.X != 0 || ws.Cursor.Y != 0 {
		t.Errorf("expected cursor clamped at origin, got %+v", ws.Cursor)
	}
	if ws.Start.X != 0 || ws.Start.Y != 0 {
		t.Errorf("viewport must not scroll past the origin, got %+v", ws.Start)
	}
}

func TestViewportKeepsCursorVisible(t *testing.T) {
	ws := state.NewWorkspace()
	ws.Scale = 8
	c := New(ws, 40, 24, nil)

	check := func(step string) {
		t.Helper()
		sx := ws.Cursor.X - ws.Start.X
		sy := ws.Cursor.Y - ws.Start.Y
		if sx < 0 || sx >= c.Columns() || sy < 0 || sy >= c.Rows() {
			t.Fatalf("%s: cursor %+v start %+v leaves the %dx%d cell viewport", step, ws.Cursor, ws.Start, c.Columns(), c.Rows())
		}
		if ws.Cursor.X < 0 || ws.Cursor.Y < 0 {
			t.Fatalf("%s: negative cursor %+v", step, ws.Cursor)
		}
	}

	for i := 0; i < 12; i++ {
		press(c, input.KeyRight)
		check("right")
		press(c, input.KeyDown)
		check("down")
	}
	if ws.Start.X != 12-5+1 {
		t.Errorf("expected viewport x to follow the cursor, got %d", ws.Start.X)
	}
	for i := 0; i < 20; i++ {
		press(c, input.KeyLeft)
		check("left")
		press(c, input.KeyUp)
		check("up")
	}
	if ws.Start != (state.Point{}) || ws.Cursor != (state.Point{}) {
		t.Errorf("expected back at origin, got cursor %+v start %+v", ws.Cursor, ws.Start)
	}
}

func TestRightScrollsOneCellAtEdge(t *testing.T) {
	ws := state.NewWorkspace()
	c := New(ws, 4, 4, nil)

	press(c, repeat(input.KeyRight, 3)...)
	if ws.Start.X != 0 {
		t.Fatalf("no scroll expected inside the viewport, got %d", ws.Start.X)
	}
	press(c, input.KeyRight)
	if ws.Cursor.X != 4 || ws.Start.X != 1 {
		t.Errorf("expected cursor 4 start 1, got cursor %d start %d", ws.Cursor.X, ws.Start.X)
	}
	// Left only scrolls once the cursor reaches the viewport's left edge.
	press(c, input.KeyLeft)
	if ws.Cursor.X != 3 || ws.Start.X != 1 {
		t.Errorf("expected cursor 3 start 1, got cursor %d start %d", ws.Cursor.X, ws.Start.X)
	}
	press(c, input.KeyLeft, input.KeyLeft)
	if ws.Cursor.X != 1 || ws.Start.X != 1 {
		t.Errorf("expected cursor 1 start 1, got cursor %d start %d", ws.Cursor.X, ws.Start.X)
	}
	press(c, input.KeyLeft)
	if ws.Cursor.X != 0 || ws.Start.X != 0 {
		t.Errorf("expected cursor 0 start 0, got cursor %d start %d", ws.Cursor.X, ws.Start.X)
	}
}

func TestMovementAfterZoomRecentres(t *testing.T) {
	ws := state.NewWorkspace()
	c := New(ws, 16, 16, nil)
	press(c, repeat(input.KeyRight, 10)...)
	press(c, input.KeyZ, input.KeyZ) // scale 4, four columns visible

	press(c, input.KeyDown)
	if sx := ws.Cursor.X - ws.Start.X; sx < 0 || sx >= c.Columns() {
		t.Errorf("cursor off-screen after zoom and move: cursor %+v start %+v", ws.Cursor, ws.Start)
	}
}

func TestZoomWraps(t *testing.T) {
	ws := state.NewWorkspace()
	c := New(ws, 640, 480, nil)

	want := []int{2, 4, 8, 16, 32, 64, 128, 1}
	for i, w := range want {
		press(c, input.KeyZ)
		if ws.Scale != w {
			t.Fatalf("press %d: expected scale %d, got %d", i+1, w, ws.Scale)
		}
	}
}

func TestColorChannelsWrap(t *testing.T) {
	ws := state.NewWorkspace()
	c := New(ws, 640, 480, nil)
	start := ws.CursorColor

	press(c, repeat(input.KeyC, 256)...)
	if ws.CursorColor != start {
		t.Errorf("256 red increments should wrap to %v, got %v", start, ws.CursorColor)
	}

	press(c, input.KeyC, input.KeyV, input.KeyB)
	want := canvas.RGB{R: start.R + 1, G: start.G + 1, B: start.B + 1}
	if ws.CursorColor != want {
		t.Errorf("expected %v, got %v", want, ws.CursorColor)
	}

	ws.CursorColor = canvas.RGB{R: 255}
	press(c, input.KeyC)
	if ws.CursorColor.R != 0 {
		t.Errorf("expected red to wrap to 0, got %d", ws.CursorColor.R)
	}
}

func TestGridAndModeKeys(t *testing.T) {
	ws := state.NewWorkspace()
	c := New(ws, 640, 480, nil)

	initial := ws.ShowGrid
	press(c, input.KeyG, input.KeyG)
	if ws.ShowGrid != initial {
		t.Error("toggling the grid twice must restore it")
	}

	press(c, input.KeyP)
	if ws.Mode != state.ModePreview {
		t.Errorf("expected preview, got %v", ws.Mode)
	}
	press(c, input.KeyE)
	if ws.Mode != state.ModeEdit {
		t.Errorf("expected edit, got %v", ws.Mode)
	}
}

func TestDigitSelectsAndCreatesOnce(t *testing.T) {
	ws := state.NewWorkspace()
	c := New(ws, 640, 480, nil)

	press(c, input.Key3)
	if ws.Active != 3 {
		t.Fatalf("expected active slot 3, got %d", ws.Active)
	}
	first, ok := ws.Slots.Get(3)
	if !ok {
		t.Fatal("slot 3 should have been created")
	}
	ws.Paint(canvas.White)

	press(c, input.Key0, input.Key3)
	again, _ := ws.Slots.Get(3)
	if again != first {
		t.Error("reselecting slot 3 must reuse its canvas")
	}
	if again.Count() != 1 {
		t.Errorf("reused canvas lost its pixels, count %d", again.Count())
	}
	if n := len(ws.Slots.Populated()); n != 2 {
		t.Errorf("expected 2 populated slots, got %d", n)
	}
}

func TestDigitNineHasNoSlot(t *testing.T) {
	ws := state.NewWorkspace()
	log := &recordingLogger{}
	c := New(ws, 640, 480, log)

	press(c, input.Key9)
	if ws.Active != 0 {
		t.Errorf("digit 9 must not change the active slot, got %d", ws.Active)
	}
	if len(ws.Slots.Populated()) != 1 {
		t.Error("digit 9 must not allocate a canvas")
	}
	if len(log.errors) != 1 {
		t.Errorf("expected the rejected selection to be logged, got %v", log.errors)
	}
}

func TestUnknownKeyIsNoop(t *testing.T) {
	ws := state.NewWorkspace()
	log := &recordingLogger{}
	c := New(ws, 640, 480, log)
	before := ws.Snapshot()

	press(c, input.KeyUnknown)
	after := ws.Snapshot()
	if before.Cursor != after.Cursor || before.Scale != after.Scale || before.Active != after.Active || before.CursorColor != after.CursorColor {
		t.Errorf("unknown key changed the workspace: %+v -> %+v", before, after)
	}
	if len(log.infos) == 0 || log.infos[0] != "unhandled key: %s (code %d)" {
		t.Errorf("expected the unknown key to be logged, got %v", log.infos)
	}
}

func TestPaintWithEmptySlotIgnored(t *testing.T) {
	ws := state.NewWorkspace()
	ws.Slots = state.Slots{}
	log := &recordingLogger{}
	c := New(ws, 640, 480, log)

	press(c, input.KeySpace, input.KeyN)
	if len(log.errors) != 2 {
		t.Errorf("expected both paint attempts to be rejected, got %v", log.errors)
	}
}

func TestPaintBeyondCanvasIgnored(t *testing.T) {
	ws := state.NewWorkspace()
	c := New(ws, 640, 480, nil)
	ws.Cursor = state.Point{X: canvas.Size + 3, Y: 0}

	press(c, input.KeySpace)
	cv, _ := ws.ActiveCanvas()
	if cv.Count() != 0 {
		t.Errorf("painting outside the canvas must not write, got %d pixels", cv.Count())
	}
}

func TestPaintThenEraseEndToEnd(t *testing.T) {
	ws := state.NewWorkspace()
	c := New(ws, 640, 480, nil)

	press(c, input.KeySpace)
	press(c, repeat(input.KeyRight, 3)...)
	press(c, input.KeyN)

	cv, _ := ws.ActiveCanvas()
	if cv.Count() != 2 {
		t.Fatalf("expected exactly two painted pixels, got %d", cv.Count())
	}
	for y := 0; y < cv.Height(); y++ {
		for x := 0; x < cv.Width(); x++ {
			painted := cv.Painted(x, y)
			expected := (x == 0 || x == 3) && y == 0
			if painted != expected {
				t.Errorf("(%d,%d): painted=%v, expected %v", x, y, painted, expected)
			}
		}
	}
	if got := cv.At(0, 0); got != (canvas.RGB{R: 255, G: 15, B: 15}) {
		t.Errorf("expected brush color at (0,0), got %v", got)
	}
	if got := cv.At(3, 0); got != canvas.Black {
		t.Errorf("expected black at (3,0), got %v", got)
	}
}
