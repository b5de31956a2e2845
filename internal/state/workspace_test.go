package state

import (
	"errors"
	"testing"

	"github.com/rook-computer/pixeled/internal/canvas"
)

func TestNewWorkspace(t *testing.T) {
	ws := NewWorkspace()

	if ws.Scale != 1 {
		t.Errorf("expected scale 1, got %d", ws.Scale)
	}
	if ws.Mode != ModeEdit {
		t.Errorf("expected edit mode, got %v", ws.Mode)
	}
	if !ws.ShowGrid {
		t.Error("grid should be visible by default")
	}
	if ws.CursorColor != DefaultCursorColor {
		t.Errorf("expected cursor color %v, got %v", DefaultCursorColor, ws.CursorColor)
	}
	if _, ok := ws.ActiveCanvas(); !ok {
		t.Fatal("slot 0 must be populated on construction")
	}
	if got := ws.Slots.Populated(); len(got) != 1 || got[0] != 0 {
		t.Errorf("expected only slot 0 populated, got %v", got)
	}
}

func TestSelectCreatesOnce(t *testing.T) {
	ws := NewWorkspace()

	created, err := ws.Select(4)
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if !created {
		t.Error("expected a canvas to be created for empty slot 4")
	}
	if ws.Active != 4 {
		t.Errorf("expected active slot 4, got %d", ws.Active)
	}
	first, _ := ws.Slots.Get(4)

	created, err = ws.Select(4)
	if err != nil {
		t.Fatalf("second select failed: %v", err)
	}
	if created {
		t.Error("selecting a populated slot must not allocate")
	}
	second, _ := ws.Slots.Get(4)
	if first != second {
		t.Error("expected the same canvas to be reused")
	}
	if n := len(ws.Slots.Populated()); n != 2 {
		t.Errorf("expected 2 populated slots, got %d", n)
	}
}

func TestSelectOutOfRange(t *testing.T) {
	ws := NewWorkspace()

	for _, index := range []int{-1, SlotCount, 42} {
		if _, err := ws.Select(index); !errors.Is(err, ErrSlotOutOfRange) {
			t.Errorf("slot %d: expected ErrSlotOutOfRange, got %v", index, err)
		}
	}
	if ws.Active != 0 {
		t.Errorf("failed select must not change the active slot, got %d", ws.Active)
	}
}

func TestZoomSequence(t *testing.T) {
	ws := NewWorkspace()
	expected := []int{2, 4, 8, 16, 32, 64, 128, 1, 2}

	for i, want := range expected {
		ws.Zoom()
		if ws.Scale != want {
			t.Fatalf("step %d: expected scale %d, got %d", i, want, ws.Scale)
		}
	}
}

func TestToggleGridTwice(t *testing.T) {
	ws := NewWorkspace()
	for _, initial := range []bool{true, false} {
		ws.ShowGrid = initial
		ws.ToggleGrid()
		if ws.ShowGrid == initial {
			t.Errorf("toggle from %v did not change grid", initial)
		}
		ws.ToggleGrid()
		if ws.ShowGrid != initial {
			t.Errorf("double toggle from %v ended at %v", initial, ws.ShowGrid)
		}
	}
}

func TestAdvancePreviewCycles(t *testing.T) {
	ws := NewWorkspace()
	ws.Slots = Slots{}
	if _, err := ws.Select(5); err != nil {
		t.Fatal(err)
	}
	if _, err := ws.Select(2); err != nil {
		t.Fatal(err)
	}

	expected := []int{5, 2, 5, 2, 5}
	for i, want := range expected {
		ws.AdvancePreview()
		if ws.Active != want {
			t.Fatalf("step %d: expected slot %d, got %d", i, want, ws.Active)
		}
		if !ws.Slots.Has(ws.Active) {
			t.Fatalf("step %d: landed on empty slot %d", i, ws.Active)
		}
	}
}

func TestAdvancePreviewSingleSlot(t *testing.T) {
	ws := NewWorkspace()
	if ws.AdvancePreview() {
		t.Error("with one populated slot the active slot must stay put")
	}
	if ws.Active != 0 {
		t.Errorf("expected slot 0, got %d", ws.Active)
	}
}

func TestAdvancePreviewEmptyRegistry(t *testing.T) {
	ws := NewWorkspace()
	ws.Slots = Slots{}
	ws.Active = 3
	if ws.AdvancePreview() {
		t.Error("expected no change with an empty registry")
	}
	if ws.Active != 3 {
		t.Errorf("expected slot 3 to remain active, got %d", ws.Active)
	}
}

func TestPaint(t *testing.T) {
	ws := NewWorkspace()
	ws.Cursor = Point{X: 2, Y: 3}

	if !ws.Paint(canvas.White) {
		t.Fatal("expected paint inside the canvas to succeed")
	}
	c, _ := ws.ActiveCanvas()
	if c.At(2, 3) != canvas.White {
		t.Errorf("expected white at (2,3), got %v", c.At(2, 3))
	}

	ws.Cursor = Point{X: canvas.Size, Y: 0}
	if ws.Paint(canvas.White) {
		t.Error("paint beyond the canvas edge must be ignored")
	}

	ws.Slots = Slots{}
	ws.Cursor = Point{}
	if ws.Paint(canvas.White) {
		t.Error("paint with an empty active slot must be ignored")
	}
}

func TestModeTransitions(t *testing.T) {
	ws := NewWorkspace()

	if !ws.EnterPreview() {
		t.Error("edit -> preview should report a change")
	}
	if ws.EnterPreview() {
		t.Error("preview -> preview should be a no-op")
	}
	if ws.Mode.String() != "PREVIEW" {
		t.Errorf("unexpected mode name %q", ws.Mode.String())
	}
	if !ws.EnterEdit() {
		t.Error("preview -> edit should report a change")
	}
	if ws.EnterEdit() {
		t.Error("edit -> edit should be a no-op")
	}
}

func TestStorePublish(t *testing.T) {
	ws := NewWorkspace()
	ws.Cursor = Point{X: 1, Y: 1}
	ws.Paint(canvas.White)

	store := NewStore()
	snap := ws.Snapshot()
	snap.Frame = 7
	store.Publish(snap)

	got := store.Snapshot()
	if got.Frame != 7 || got.Painted != 1 || got.Cursor != (Point{X: 1, Y: 1}) {
		t.Errorf("unexpected snapshot: %+v", got)
	}
	got.Populated[0] = 99
	if store.Snapshot().Populated[0] != 0 {
		t.Error("snapshot readers must not alias the stored slice")
	}
}
