package input

// Linux input-event-codes.h
const (
	evKey = 0x01

	keyValueRelease = 0
	keyValuePress   = 1
	keyValueRepeat  = 2
)

var evdevKeys = map[uint16]Key{
	1:   KeyEscape,
	2:   Key1,
	3:   Key2,
	4:   Key3,
	5:   Key4,
	6:   Key5,
	7:   Key6,
	8:   Key7,
	9:   Key8,
	10:  Key9,
	11:  Key0,
	18:  KeyE,
	25:  KeyP,
	34:  KeyG,
	44:  KeyZ,
	46:  KeyC,
	47:  KeyV,
	48:  KeyB,
	49:  KeyN,
	57:  KeySpace,
	103: KeyUp,
	105: KeyLeft,
	106: KeyRight,
	108: KeyDown,
}

// translateEvdev maps a raw input_event to an editor event. Presses and
// auto-repeats produce events; releases and non-key events do not.
func translateEvdev(typ, code uint16, value int32) (Event, bool) {
	if typ != evKey {
		return Event{}, false
	}
	if value != keyValuePress && value != keyValueRepeat {
		return Event{}, false
	}
	key, ok := evdevKeys[code]
	if !ok {
		key = KeyUnknown
	}
	return Event{Key: key, Code: code}, true
}
