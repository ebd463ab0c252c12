package main

import (
	"fmt"
	"log"
	"time"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/hubastard/imbridge/engine/core"
	"github.com/hubastard/imbridge/engine/gfx"
	"github.com/hubastard/imbridge/engine/gui"
	"github.com/hubastard/imbridge/engine/gui/imguigo"
	"github.com/hubastard/imbridge/engine/profiler"
)

// LayerGUI is the ImGui overlay: demo window plus a stats panel.
type LayerGUI struct {
	dev   gfx.Device
	scale float32
	prof  *profiler.Profiler
	tick  *int

	ctrl      *gui.Controller
	lastFrame time.Time
	showDemo  bool
}

func (l *LayerGUI) OnAttach(e *core.Engine) {
	lib, err := imguigo.New()
	if err != nil {
		log.Fatal(err)
	}
	w, h := e.Window.Size()
	l.ctrl = gui.New(l.dev, lib, w, h, gui.WithScaleFactor(l.scale, l.scale))
	l.showDemo = true
}

func (l *LayerGUI) OnDetach(e *core.Engine) {
	l.ctrl.Dispose()
}

func (l *LayerGUI) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerGUI) OnRender(e *core.Engine, alpha float64) {
	now := time.Now()
	dt := float32(1.0 / 60.0)
	if !l.lastFrame.IsZero() {
		dt = float32(now.Sub(l.lastFrame).Seconds())
	}
	l.lastFrame = now

	endUpdate := l.prof.Start("gui.Update")
	l.ctrl.Update(e.Input, dt)
	endUpdate()

	if l.showDemo {
		imgui.ShowDemoWindow(&l.showDemo)
	}
	l.statsWindow(e)

	endRender := l.prof.Start("gui.Render")
	err := l.ctrl.Render()
	endRender()
	if err != nil {
		gfx.Logger().Warn("gui frame dropped", "err", err)
	}
}

func (l *LayerGUI) statsWindow(e *core.Engine) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 16, Y: 16}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	if imgui.Begin("Stats") {
		stats := l.ctrl.Stats()
		imgui.Text(fmt.Sprintf("Tick: %d  Uptime: %s", *l.tick, e.Uptime().Truncate(time.Second)))

		imgui.Separator()
		imgui.Text("GUI")
		imgui.Text(fmt.Sprintf("\tDraw Calls: %d", stats.DrawCalls))
		imgui.Text(fmt.Sprintf("\tCommand Lists: %d", stats.CommandLists))
		imgui.Text(fmt.Sprintf("\tVertices: %d  Indices: %d", stats.Vertices, stats.Indices))
		imgui.Text(fmt.Sprintf("\tBuffer Resizes: %d", stats.BufferResizes))

		imgui.Separator()
		imgui.Text("Scopes")
		for _, s := range l.prof.Scopes() {
			imgui.Text(fmt.Sprintf("\t%s: %.3f ms (max %.3f ms)", s.Name,
				float64(s.Avg.Microseconds())/1000, float64(s.Max.Microseconds())/1000))
		}

		imgui.Separator()
		imgui.Text("Memory")
		imgui.Text(fmt.Sprintf("\tUsage: %.3f MB", float32(profiler.MemoryUsage())/(1<<20)))
		imgui.Text(fmt.Sprintf("\tAllocs: %d", profiler.MemoryAllocs()))
		imgui.Text(fmt.Sprintf("\tGoroutines: %d  CPUs: %d", profiler.NumGoroutine(), profiler.NumCPU()))

		imgui.Separator()
		imgui.Text("GPU")
		imgui.Text(fmt.Sprintf("\tVendor: %s", e.Renderer.GPUVendor()))
		imgui.Text(fmt.Sprintf("\tRenderer: %s", e.Renderer.GPURenderer()))
		imgui.Text(fmt.Sprintf("\tVersion: %s", e.Renderer.GPUVersion()))

		imgui.Separator()
		imgui.Checkbox("Demo window", &l.showDemo)
		if imgui.Button("Rebuild font atlas") {
			l.ctrl.RecreateFontTexture()
		}
	}
	imgui.End()
}

func (l *LayerGUI) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventChar:
		l.ctrl.PressChar(v.Char)
	case core.EventScroll:
		l.ctrl.MouseScroll(float32(v.Xoff), float32(v.Yoff))
	case core.EventResize:
		l.ctrl.WindowResized(v.W, v.H)
	}
	return false
}
