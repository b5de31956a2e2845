package state

import "fmt"

// Mode is the editor's top-level mode.
type Mode int

const (
	ModeEdit Mode = iota
	ModePreview
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "EDIT"
	case ModePreview:
		return "PREVIEW"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// EnterPreview switches to preview mode. It reports whether the mode changed.
func (ws *Workspace) EnterPreview() bool {
	if ws.Mode == ModePreview {
		return false
	}
	ws.Mode = ModePreview
	return true
}

// EnterEdit switches back to edit mode. It reports whether the mode changed.
func (ws *Workspace) EnterEdit() bool {
	if ws.Mode == ModeEdit {
		return false
	}
	ws.Mode = ModeEdit
	return true
}
