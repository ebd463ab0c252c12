package core

// Layer is a slice of the frame: game scene, debug HUD, GUI overlay.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // return true if handled; propagation stops
}

// LayerStack keeps regular layers below overlays. Rendering walks bottom to
// top, events top to bottom, so an overlay (the GUI) draws last and sees
// input first.
type LayerStack struct {
	list     []Layer
	overlays int
}

// Push inserts l above the other layers but below every overlay.
func (ls *LayerStack) Push(l Layer) {
	i := len(ls.list) - ls.overlays
	ls.list = append(ls.list, nil)
	copy(ls.list[i+1:], ls.list[i:])
	ls.list[i] = l
}

// PushOverlay puts l on top of everything.
func (ls *LayerStack) PushOverlay(l Layer) {
	ls.list = append(ls.list, l)
	ls.overlays++
}

// Pop removes the topmost layer or overlay.
func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list = ls.list[:i]
	if ls.overlays > 0 {
		ls.overlays--
	}
	return l, true
}

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) ForEach(f func(Layer)) {
	for _, l := range ls.list {
		f(l)
	}
}

func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if stop := f(ls.list[i]); stop {
			break
		}
	}
}
