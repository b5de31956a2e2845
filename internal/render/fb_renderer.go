package render

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
)

// DefaultDevice is the framebuffer opened when none is configured.
const DefaultDevice = "/dev/fb0"

var errNotStarted = errors.New("framebuffer not open")

// FBRenderer presents surfaces on a Linux framebuffer device.
type FBRenderer struct {
	Device string
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	fbDev   *fb.Device
	running atomic.Bool
}

func NewFBRenderer(device string) *FBRenderer {
	if device == "" {
		device = DefaultDevice
	}
	return &FBRenderer{Device: device}
}

func (r *FBRenderer) Start(ctx context.Context) error {
	dev, err := fb.Open(r.Device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", r.Device, err)
	}
	r.fbDev = dev
	if r.Logger != nil {
		bounds := dev.Bounds()
		r.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}
	r.running.Store(true)
	return nil
}

func (r *FBRenderer) Stop() error {
	r.running.Store(false)
	if r.fbDev != nil {
		r.fbDev.Close()
		r.fbDev = nil
	}
	return nil
}

func (r *FBRenderer) Size() (int, int) {
	if r.fbDev == nil {
		return 0, 0
	}
	bounds := r.fbDev.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Present copies s onto the device, scaling nearest-neighbor when the surface
// and the framebuffer differ in size.
func (r *FBRenderer) Present(s *Surface) error {
	if !r.running.Load() || r.fbDev == nil {
		return errNotStarted
	}
	src := s.Image()
	bounds := r.fbDev.Bounds()
	if bounds.Size() == src.Rect.Size() {
		xdraw.Draw(r.fbDev, bounds, src, src.Rect.Min, xdraw.Src)
		return nil
	}
	xdraw.NearestNeighbor.Scale(r.fbDev, bounds, src, src.Rect, xdraw.Src, nil)
	return nil
}
