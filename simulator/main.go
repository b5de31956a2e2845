package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/pixeled/internal/app"
	"github.com/rook-computer/pixeled/internal/config"
	"github.com/rook-computer/pixeled/internal/input"
	"github.com/rook-computer/pixeled/internal/render"
	"github.com/rook-computer/pixeled/internal/web"
)

func main() {
	defaults, err := web.DefaultServerConfigFromEnv(":8080")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	listenAddr := flag.String("listen", defaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", defaults.DevMode, "enable dev mode; also configurable via "+web.EnvDevMode)
	configPath := flag.String("config", "", "YAML config file (optional)")
	hud := flag.Bool("hud", true, "draw the status bar")
	verbose := flag.Bool("v", false, "log editor activity to stderr")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Println("config error:", err)
			os.Exit(2)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}
	if err := cfg.ApplyArgs(flag.Args()); err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}
	// The simulator never owns a VT and has no real screen to fill.
	cfg.Console = false
	cfg.Fullscreen = false
	cfg.HUD = *hud
	if err := cfg.Validate(); err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := render.NewMemoryRenderer(cfg.Width, cfg.Height)
	keys := input.NewChannelSource(0)
	editor := app.New(cfg, renderer, keys)
	if *verbose {
		editor.Logger = app.NewFileLogger(os.Stderr)
	}
	control := NewSimControl(editor, renderer, keys)

	mux := http.NewServeMux()
	registerSimEndpoints(mux, control)

	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: *listenAddr, DevMode: *devMode})
	server.Handler = mux
	if err := server.Start(processCtx); err != nil {
		fmt.Println("server start error:", err)
		os.Exit(1)
	}
	defer server.Stop()

	fmt.Println("Pixeled simulator listening on", server.Addr)
	fmt.Println("Frame: http://" + trimLeadingColon(server.Addr) + "/sim/frame.png")

	err = editor.Run(processCtx)
	switch {
	case err == nil:
		fmt.Println("editor exited")
	case errors.Is(err, context.Canceled):
	default:
		fmt.Println("editor error:", err)
		_ = server.Stop()
		os.Exit(1)
	}
}

func trimLeadingColon(addr string) string {
	// Best-effort for display; don't attempt full URL parsing here.
	if len(addr) > 0 && addr[0] == ':' {
		return "127.0.0.1" + addr
	}
	if addr == "" {
		return "127.0.0.1:8080"
	}
	return addr
}
