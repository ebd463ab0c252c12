package main

import "github.com/hubastard/imbridge/engine/core"

// LayerTriangle draws the host scene the GUI is composited over. F2 toggles
// it.
type LayerTriangle struct {
	visible bool
}

func (l *LayerTriangle) OnAttach(e *core.Engine)             {}
func (l *LayerTriangle) OnDetach(e *core.Engine)             {}
func (l *LayerTriangle) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerTriangle) OnRender(e *core.Engine, alpha float64) {
	if l.visible {
		e.Renderer.DrawDemoTriangle()
	}
}

func (l *LayerTriangle) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventKey); ok && v.Down && v.Key == core.KeyF2 {
		l.visible = !l.visible
		return true
	}
	return false
}
