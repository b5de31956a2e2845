package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/pixeled/internal/app"
	"github.com/rook-computer/pixeled/internal/config"
	"github.com/rook-computer/pixeled/internal/input"
	"github.com/rook-computer/pixeled/internal/render"
)

const envStdioLog = "PIXELED_STDIO_LOG"

func main() {
	// Flags
	debug := flag.Bool("debug", false, "enable debug logging to ./pixeled-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	configPath := flag.String("config", "", "YAML config file (optional)")
	fbDevice := flag.String("fb", "", "framebuffer device; overrides "+config.EnvFramebuffer)
	inputGlob := flag.String("input", "", "evdev device glob; overrides "+config.EnvInputGlob)
	hud := flag.Bool("hud", false, "draw the status bar")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [w<width>] [h<height>] [f]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./pixeled-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	cfg, err := loadConfig(*configPath, *fbDevice, *inputGlob, *hud, flag.Args())
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := render.NewFBRenderer(cfg.Framebuffer)
	renderer.Logger = logger
	keys := input.NewEvdevSource(cfg.InputGlob, logger)

	editor := app.New(cfg, renderer, keys)
	editor.Logger = logger

	err = editor.Run(ctx)
	stop()
	switch {
	case err == nil, errors.Is(err, context.Canceled):
	case errors.Is(err, app.ErrInit):
		fmt.Println("pixeled:", err)
		os.Exit(1)
	default:
		fmt.Println("pixeled:", err)
		os.Exit(2)
	}
}

// loadConfig layers the sources: defaults or file, environment, flags, then
// positional arguments.
func loadConfig(path, fbDevice, inputGlob string, hud bool, args []string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	if fbDevice != "" {
		cfg.Framebuffer = fbDevice
	}
	if inputGlob != "" {
		cfg.InputGlob = inputGlob
	}
	if hud {
		cfg.HUD = true
	}
	if err := cfg.ApplyArgs(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
