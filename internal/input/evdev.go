package input

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// DefaultGlob matches every evdev node.
const DefaultGlob = "/dev/input/event*"

// EvdevSource reads key presses from Linux evdev devices.
type EvdevSource struct {
	Glob   string
	Logger logger
	// Grab requests exclusive access so keys do not also reach the console.
	Grab bool

	ch chan Event
	platformState
}

func NewEvdevSource(glob string, l logger) *EvdevSource {
	if glob == "" {
		glob = DefaultGlob
	}
	return &EvdevSource{Glob: glob, Logger: l, Grab: true, ch: make(chan Event, 64)}
}

func (s *EvdevSource) Events() <-chan Event { return s.ch }

// deliver queues ev without blocking; presses arriving faster than the loop
// drains them are dropped.
func (s *EvdevSource) deliver(ev Event) {
	select {
	case s.ch <- ev:
	default:
		if s.Logger != nil {
			s.Logger.Errorf("input", "event queue full, dropping %s", ev.Key)
		}
	}
}
