//go:build !linux

package input

import (
	"context"
	"sync"
)

type platformState struct {
	once sync.Once
}

func (s *EvdevSource) Start(ctx context.Context) error { return ErrUnsupported }

func (s *EvdevSource) Stop() error {
	s.once.Do(func() { close(s.ch) })
	return nil
}
