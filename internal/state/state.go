package state

import (
	"sync"

	"github.com/rook-computer/pixeled/internal/canvas"
)

// Snapshot is a read-only copy of a workspace, safe to hand to other
// goroutines.
type Snapshot struct {
	Scale       int        `json:"scale"`
	Cursor      Point      `json:"cursor"`
	CursorColor canvas.RGB `json:"cursorColor"`
	Start       Point      `json:"start"`
	ShowGrid    bool       `json:"showGrid"`
	Active      int        `json:"active"`
	Mode        Mode       `json:"mode"`
	Populated   []int      `json:"populated"`
	Painted     int        `json:"painted"`
	Frame       uint64     `json:"frame"`
}

// Store publishes the latest snapshot from the main loop to readers on other
// goroutines.
type Store struct {
	mu    sync.RWMutex
	state Snapshot
}

func NewStore() *Store {
	return &Store{}
}

func (store *Store) Snapshot() Snapshot {
	store.mu.RLock()
	defer store.mu.RUnlock()
	snap := store.state
	snap.Populated = append([]int(nil), store.state.Populated...)
	return snap
}

func (store *Store) Publish(snap Snapshot) {
	store.mu.Lock()
	store.state = snap
	store.mu.Unlock()
}
