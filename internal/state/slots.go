package state

import (
	"errors"

	"github.com/rook-computer/pixeled/internal/canvas"
)

// SlotCount is the number of canvas slots in a workspace.
const SlotCount = 9

var ErrSlotOutOfRange = errors.New("canvas slot out of range")

// Slots is a fixed-capacity registry of canvases. Each slot is either empty
// or owns exactly one canvas.
type Slots struct {
	canvases [SlotCount]*canvas.Canvas
}

func validSlot(index int) bool { return index >= 0 && index < SlotCount }

// Has reports whether slot index holds a canvas.
func (s *Slots) Has(index int) bool {
	return validSlot(index) && s.canvases[index] != nil
}

// Get returns the canvas in slot index and whether the slot is populated.
func (s *Slots) Get(index int) (*canvas.Canvas, bool) {
	if !s.Has(index) {
		return nil, false
	}
	return s.canvases[index], true
}

// Ensure returns the canvas in slot index, creating it on first use.
// The bool result is true when a new canvas was allocated.
func (s *Slots) Ensure(index int) (*canvas.Canvas, bool, error) {
	if !validSlot(index) {
		return nil, false, ErrSlotOutOfRange
	}
	if c := s.canvases[index]; c != nil {
		return c, false, nil
	}
	c := canvas.New(canvas.Size, canvas.Size)
	s.canvases[index] = c
	return c, true, nil
}

// Populated returns the indices of all non-empty slots in ascending order.
func (s *Slots) Populated() []int {
	var out []int
	for i, c := range s.canvases {
		if c != nil {
			out = append(out, i)
		}
	}
	return out
}

// NextPopulated scans from index+1 around to index itself and returns the
// first populated slot. ok is false when every slot is empty.
func (s *Slots) NextPopulated(index int) (next int, ok bool) {
	for step := 1; step <= SlotCount; step++ {
		candidate := ((index+step)%SlotCount + SlotCount) % SlotCount
		if s.canvases[candidate] != nil {
			return candidate, true
		}
	}
	return index, false
}
