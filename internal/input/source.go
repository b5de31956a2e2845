package input

import (
	"context"
	"errors"
	"sync"
)

var ErrUnsupported = errors.New("keyboard input not supported on this platform")

// Source delivers key events. Events must be drained without blocking by the
// consumer; Stop closes the channel.
type Source interface {
	Start(ctx context.Context) error
	Stop() error
	Events() <-chan Event
}

// Drain returns every event currently queued on ch without blocking.
func Drain(ch <-chan Event) []Event {
	var out []Event
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}

// ChannelSource is fed programmatically, by tests or by the simulator's HTTP
// handlers.
type ChannelSource struct {
	ch   chan Event
	once sync.Once
	mu   sync.RWMutex
	done bool
}

func NewChannelSource(buffer int) *ChannelSource {
	if buffer <= 0 {
		buffer = 64
	}
	return &ChannelSource{ch: make(chan Event, buffer)}
}

func (s *ChannelSource) Start(ctx context.Context) error { return nil }

func (s *ChannelSource) Stop() error {
	s.once.Do(func() {
		s.mu.Lock()
		s.done = true
		close(s.ch)
		s.mu.Unlock()
	})
	return nil
}

func (s *ChannelSource) Events() <-chan Event { return s.ch }

var ErrQueueFull = errors.New("input queue full")

// Push enqueues keys in order. It fails without blocking when the source is
// stopped or the buffer is full; keys queued before the failure stay queued.
func (s *ChannelSource) Push(keys ...Key) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.done {
		return errors.New("input source stopped")
	}
	for _, k := range keys {
		select {
		case s.ch <- Event{Key: k}:
		default:
			return ErrQueueFull
		}
	}
	return nil
}
