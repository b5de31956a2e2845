package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvFramebuffer = "PIXELED_FB"
	EnvInputGlob   = "PIXELED_INPUT"
	EnvTick        = "PIXELED_TICK"
)

const (
	DefaultWidth        = 640
	DefaultHeight       = 480
	DefaultTick         = 100 * time.Millisecond
	DefaultPreviewTicks = 20
	DefaultFramebuffer  = "/dev/fb0"
	DefaultInputGlob    = "/dev/input/event*"
)

// Config holds everything the editor needs to start.
type Config struct {
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	Fullscreen   bool          `yaml:"fullscreen"`
	Framebuffer  string        `yaml:"framebuffer"`
	InputGlob    string        `yaml:"input_glob"`
	Tick         time.Duration `yaml:"tick"`
	PreviewTicks int           `yaml:"preview_ticks"`
	HUD          bool          `yaml:"hud"`
	// Console switches the VT to graphics mode while running.
	Console bool `yaml:"console"`
}

func Default() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Framebuffer:  DefaultFramebuffer,
		InputGlob:    DefaultInputGlob,
		Tick:         DefaultTick,
		PreviewTicks: DefaultPreviewTicks,
		Console:      true,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from PIXELED_* variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvFramebuffer); v != "" {
		c.Framebuffer = v
	}
	if v := os.Getenv(EnvInputGlob); v != "" {
		c.InputGlob = v
	}
	if raw := os.Getenv(EnvTick); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("%s must be a duration (got %q): %w", EnvTick, raw, err)
		}
		c.Tick = d
	}
	return nil
}

// ApplyArgs interprets positional arguments by their first character:
// w<N> sets the width, h<N> the height and f requests fullscreen. Anything
// else is ignored.
func (c *Config) ApplyArgs(args []string) error {
	for _, arg := range args {
		if arg == "" {
			continue
		}
		switch arg[0] {
		case 'w':
			n, err := strconv.Atoi(strings.TrimSpace(arg[1:]))
			if err != nil {
				return fmt.Errorf("width %q: %w", arg, err)
			}
			c.Width = n
		case 'h':
			n, err := strconv.Atoi(strings.TrimSpace(arg[1:]))
			if err != nil {
				return fmt.Errorf("height %q: %w", arg, err)
			}
			c.Height = n
		case 'f':
			c.Fullscreen = true
		}
	}
	return nil
}

// Validate rejects configurations the main loop cannot run with.
func (c Config) Validate() error {
	var errs []error
	if !c.Fullscreen && (c.Width <= 0 || c.Height <= 0) {
		errs = append(errs, fmt.Errorf("window size must be positive (got %dx%d)", c.Width, c.Height))
	}
	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick must be positive (got %s)", c.Tick))
	}
	if c.PreviewTicks < 1 {
		errs = append(errs, fmt.Errorf("preview_ticks must be at least 1 (got %d)", c.PreviewTicks))
	}
	return errors.Join(errs...)
}
