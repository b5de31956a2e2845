package render

import (
	"context"
	"errors"
	"image"
	"image/draw"
	"image/png"
	"io"
	"sync"
)

// Renderer pushes finished surfaces to a display.
type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	// Size returns the display size in pixels, or zeros when the renderer has
	// no preference.
	Size() (width int, height int)
	Present(s *Surface) error
}

var ErrNoFrame = errors.New("no frame presented yet")

// NoopRenderer discards every frame. The loop falls back to it when no
// renderer is configured.
type NoopRenderer struct{}

func (n *NoopRenderer) Start(ctx context.Context) error { return nil }
func (n *NoopRenderer) Stop() error                     { return nil }
func (n *NoopRenderer) Size() (int, int)                { return 0, 0 }
func (n *NoopRenderer) Present(s *Surface) error        { return nil }

// MemoryRenderer keeps a copy of the most recently presented frame. Present
// runs on the main loop while readers may sit on other goroutines.
type MemoryRenderer struct {
	Width  int
	Height int

	mu     sync.RWMutex
	last   *image.RGBA
	frames uint64
}

func NewMemoryRenderer(width, height int) *MemoryRenderer {
	return &MemoryRenderer{Width: width, Height: height}
}

func (m *MemoryRenderer) Start(ctx context.Context) error { return nil }
func (m *MemoryRenderer) Stop() error                     { return nil }
func (m *MemoryRenderer) Size() (int, int)                { return m.Width, m.Height }

func (m *MemoryRenderer) Present(s *Surface) error {
	src := s.Image()
	frame := image.NewRGBA(src.Rect)
	draw.Draw(frame, frame.Rect, src, src.Rect.Min, draw.Src)

	m.mu.Lock()
	m.last = frame
	m.frames++
	m.mu.Unlock()
	return nil
}

// Frames returns the number of frames presented so far.
func (m *MemoryRenderer) Frames() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.frames
}

// Last returns the latest frame. The image must not be modified.
func (m *MemoryRenderer) Last() (*image.RGBA, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last, m.last != nil
}

// WritePNG encodes the latest frame as PNG.
func (m *MemoryRenderer) WritePNG(w io.Writer) error {
	frame, ok := m.Last()
	if !ok {
		return ErrNoFrame
	}
	return png.Encode(w, frame)
}
