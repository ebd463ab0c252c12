package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/hubastard/imbridge/engine/core"
	"github.com/hubastard/imbridge/engine/gfx"
	glbackend "github.com/hubastard/imbridge/engine/gfx/gl"
	"github.com/hubastard/imbridge/engine/platform"
	"github.com/hubastard/imbridge/engine/profiler"
)

type App struct {
	cfg      core.Config
	renderer *glbackend.RendererGL
	prof     *profiler.Profiler
	tick     int
}

func (a *App) OnStart(e *core.Engine) {
	e.Layers.Push(&LayerTriangle{visible: true})
	e.Layers.PushOverlay(&LayerGUI{
		dev:   a.renderer.Device(),
		scale: a.cfg.GUIScale,
		prof:  a.prof,
		tick:  &a.tick,
	})
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    { a.tick++ }
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}
func (a *App) OnShutdown(e *core.Engine)              {}

func main() {
	cfg, err := core.LoadConfig("sandbox.toml")
	if err != nil {
		log.Fatal(err)
	}
	level, _ := cfg.SlogLevel()
	gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	app := &App{cfg: cfg, prof: profiler.New(120)}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		r, err := glbackend.NewRendererGL(win, cfg)
		if err != nil {
			return nil, err
		}
		app.renderer = r
		log.Printf("GPU: %s / %s", r.GPUVendor(), r.GPURenderer())
		return r, nil
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
