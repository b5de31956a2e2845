package input

import (
	"fmt"
	"strings"
)

// Key is a logical editor key, independent of the device it came from.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyN
	KeyG
	KeyZ
	KeyP
	KeyE
	KeyC
	KeyV
	KeyB
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

var keyNames = map[Key]string{
	KeyEscape: "escape",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyUp:     "up",
	KeyDown:   "down",
	KeySpace:  "space",
	KeyN:      "n",
	KeyG:      "g",
	KeyZ:      "z",
	KeyP:      "p",
	KeyE:      "e",
	KeyC:      "c",
	KeyV:      "v",
	KeyB:      "b",
	Key0:      "0",
	Key1:      "1",
	Key2:      "2",
	Key3:      "3",
	Key4:      "4",
	Key5:      "5",
	Key6:      "6",
	Key7:      "7",
	Key8:      "8",
	Key9:      "9",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// Digit returns the value of a digit key.
func (k Key) Digit() (int, bool) {
	if k < Key0 || k > Key9 {
		return 0, false
	}
	return int(k - Key0), true
}

// ParseKey resolves a key name as produced by Key.String. Matching is case
// insensitive; "esc" is accepted for escape.
func ParseKey(name string) (Key, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "esc" {
		return KeyEscape, true
	}
	for k, n := range keyNames {
		if n == name {
			return k, true
		}
	}
	return KeyUnknown, false
}

// Event is a single key press. Code carries the raw device code for logging.
type Event struct {
	Key  Key
	Code uint16
}
