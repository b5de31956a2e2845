package system

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Console switches the active virtual terminal into graphics mode while the
// editor owns the framebuffer, and back to text mode afterwards.
type Console struct {
	// Paths are tried in order; the first that accepts the ioctl wins.
	Paths  []string
	Logger logger
}

func NewConsole(l logger) *Console {
	return &Console{Paths: []string{"/dev/tty", "/dev/tty0"}, Logger: l}
}

// Enter sets graphics mode and hides the text cursor. Failures are logged and
// the first one returned; the editor can run without either.
func (c *Console) Enter() error {
	err := c.setMode(kdGraphics)
	c.log(err, "KD_GRAPHICS set", "KD_GRAPHICS failed")
	cursorErr := c.writeVT("\x1b[?25l")
	c.log(cursorErr, "cursor hidden", "hide cursor failed")
	if err != nil {
		return err
	}
	return cursorErr
}

// Restore shows the text cursor and returns the console to text mode.
func (c *Console) Restore() error {
	cursorErr := c.writeVT("\x1b[?25h")
	c.log(cursorErr, "cursor shown", "show cursor failed")
	err := c.setMode(kdText)
	c.log(err, "KD_TEXT set", "KD_TEXT failed")
	if err != nil {
		return err
	}
	return cursorErr
}

func (c *Console) log(err error, ok, failed string) {
	if c.Logger == nil {
		return
	}
	if err != nil {
		c.Logger.Errorf("tty", "%s: %v", failed, err)
		return
	}
	c.Logger.Infof("tty", "%s", ok)
}
