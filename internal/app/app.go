package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rook-computer/pixeled/internal/config"
	"github.com/rook-computer/pixeled/internal/controller"
	"github.com/rook-computer/pixeled/internal/input"
	"github.com/rook-computer/pixeled/internal/render"
	"github.com/rook-computer/pixeled/internal/state"
	"github.com/rook-computer/pixeled/internal/system"
)

// ErrInit marks failures to bring up the display or the keyboard. The
// process exits with status 1 on it.
var ErrInit = errors.New("initialization failed")

type App struct {
	Config    config.Config
	Workspace *state.Workspace
	Store     *state.Store
	Render    render.Renderer
	Input     input.Source
	Logger    Logger

	surface    *render.Surface
	controller *controller.Controller
	status     *render.StatusBar
	clock      previewClock
	frames     uint64
}

func New(cfg config.Config, renderer render.Renderer, source input.Source) *App {
	return &App{
		Config:    cfg,
		Workspace: state.NewWorkspace(),
		Store:     state.NewStore(),
		Render:    renderer,
		Input:     source,
		Logger:    NoopLogger{},
	}
}

// Run starts the display and the keyboard, then loops until Escape is pressed
// or ctx is done. Escape ends the loop with a nil error; cancellation returns
// ctx.Err().
func (app *App) Run(ctx context.Context) error {
	if err := app.Config.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Render == nil {
		app.Render = &render.NoopRenderer{}
	}
	if app.Input == nil {
		app.Input = input.NewChannelSource(0)
	}
	if err := app.Render.Start(ctx); err != nil {
		app.Logger.Errorf("app", "renderer start error: %v", err)
		return fmt.Errorf("%w: display: %v", ErrInit, err)
	}
	defer app.Render.Stop()

	if err := app.Input.Start(ctx); err != nil {
		app.Logger.Errorf("app", "input start error: %v", err)
		return fmt.Errorf("%w: input: %v", ErrInit, err)
	}
	defer app.Input.Stop()

	if app.Config.Console {
		console := system.NewConsole(app.Logger)
		_ = console.Enter()
		defer func() { _ = console.Restore() }()
	}

	app.prepare()

	ticker := time.NewTicker(app.Config.Tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			app.Logger.Infof("app", "stopping: %v", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			if app.step() {
				app.Logger.Infof("app", "escape pressed, exiting")
				return nil
			}
		}
	}
}

// prepare sizes the surface and wires the controller. The renderer's size
// wins in fullscreen mode.
func (app *App) prepare() {
	width, height := app.Config.Width, app.Config.Height
	if app.Config.Fullscreen {
		if w, h := app.Render.Size(); w > 0 && h > 0 {
			width, height = w, h
		}
	}
	app.surface = render.NewSurface(width, height)
	editorHeight := height
	if app.Config.HUD {
		app.status = render.NewStatusBar(app.Logger)
		if height > app.status.Height() {
			editorHeight = height - app.status.Height()
		}
	}
	// The viewport scrolls against the area above the status strip.
	app.controller = controller.New(app.Workspace, width, editorHeight, app.Logger)
	app.clock = previewClock{period: app.Config.PreviewTicks}
	app.Logger.Infof("app", "surface %dx%d, tick %s", width, height, app.Config.Tick)
}

// step runs one loop iteration and reports whether Escape was seen.
func (app *App) step() (quit bool) {
	ws := app.Workspace
	if app.clock.Tick() && ws.Mode == state.ModePreview {
		if ws.AdvancePreview() {
			app.Logger.Infof("app", "preview: active canvas %d", ws.Active)
		}
	}

	app.draw()

	for _, ev := range input.Drain(app.Input.Events()) {
		if app.controller.Handle(ev) {
			quit = true
		}
	}
	return quit
}

func (app *App) draw() {
	if err := render.DrawFrame(app.surface, app.Workspace, app.status); err != nil {
		app.Logger.Errorf("render", "frame: %v", err)
	}
	if err := app.Render.Present(app.surface); err != nil {
		app.Logger.Errorf("render", "present: %v", err)
	}
	app.frames++
	snap := app.Workspace.Snapshot()
	snap.Frame = app.frames
	app.Store.Publish(snap)
}

// previewClock counts loop ticks and fires once every period ticks.
type previewClock struct {
	period  int
	counter int
}

func (c *previewClock) Tick() bool {
	if c.period < 1 {
		c.period = 1
	}
	c.counter = (c.counter + 1) % c.period
	return c.counter == 0
}
