//go:build linux

package input

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// EVIOCGRAB from linux/input.h
const eviocgrab = 0x40044590

type platformState struct {
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// Start opens every matching device and reads it on its own goroutine until
// Stop is called or ctx is done. It fails when no device can be opened.
func (s *EvdevSource) Start(ctx context.Context) error {
	paths, err := filepath.Glob(s.Glob)
	if err != nil {
		return fmt.Errorf("glob %s: %w", s.Glob, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no evdev devices match %s", s.Glob)
	}

	readCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	opened := 0
	for _, path := range paths {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			if s.Logger != nil {
				s.Logger.Errorf("input", "open %s: %v", path, err)
			}
			continue
		}
		if s.Grab {
			if err := unix.IoctlSetInt(fd, eviocgrab, 1); err != nil && s.Logger != nil {
				s.Logger.Errorf("input", "grab %s: %v", path, err)
			}
		}
		opened++
		s.wg.Add(1)
		go func(fd int, path string) {
			defer s.wg.Done()
			s.readDevice(readCtx, fd, path)
		}(fd, path)
	}
	if opened == 0 {
		cancel()
		return fmt.Errorf("no evdev device under %s could be opened", s.Glob)
	}
	if s.Logger != nil {
		s.Logger.Infof("input", "reading %d evdev device(s)", opened)
	}
	return nil
}

func (s *EvdevSource) Stop() error {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
		s.wg.Wait()
		close(s.ch)
	})
	return nil
}

func (s *EvdevSource) readDevice(ctx context.Context, fd int, path string) {
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		if s.Grab {
			_ = unix.IoctlSetInt(fd, eviocgrab, 0)
		}
		_ = f.Close()
	}()

	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := int(binary.Size(unix.Timeval{}))
	eventSize := tvSize + 2 + 2 + 4
	buf := make([]byte, 64*eventSize)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		_, pollErr := unix.Poll(pollFds, 250)
		if pollErr != nil {
			if pollErr == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, readErr := unix.Read(fd, buf)
		if readErr != nil {
			if readErr == unix.EAGAIN || readErr == unix.EINTR {
				continue
			}
			if s.Logger != nil {
				s.Logger.Errorf("input", "read %s: %v", path, readErr)
			}
			return
		}

		for off := 0; off+eventSize <= n; off += eventSize {
			rec := buf[off : off+eventSize]
			typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
			code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
			value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
			if ev, ok := translateEvdev(typ, code, value); ok {
				s.deliver(ev)
			}
		}
	}
}
