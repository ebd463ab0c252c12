package core

import "time"

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	FramebufferSize() (int, int)
	Size() (int, int) // logical size in screen coordinates
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer is the host renderer the GUI is composited on top of.
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	DrawDemoTriangle()
	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
	Shutdown()
}
