//go:build !linux

package system

import "errors"

const (
	kdText     = 0x00
	kdGraphics = 0x01
)

var errNoConsole = errors.New("virtual terminal control is only available on linux")

func (c *Console) setMode(mode int) error { return errNoConsole }
func (c *Console) writeVT(s string) error { return errNoConsole }
