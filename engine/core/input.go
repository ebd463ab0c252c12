package core

// Input keeps the polled view of the devices: it folds the event stream into
// current key, button and cursor state.
type Input struct {
	keys           [KeyCount]bool
	buttons        [mouseButtonCount]bool
	mouseX, mouseY float64
}

func NewInput() *Input { return &Input{} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Key > KeyUnknown && e.Key < KeyCount {
			in.keys[e.Key] = e.Down
		}
	case EventMouseButton:
		if e.Button >= 0 && e.Button < mouseButtonCount {
			in.buttons[e.Button] = e.Down
		}
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	}
}

func (in *Input) KeyDown(k Key) bool {
	if k <= KeyUnknown || k >= KeyCount {
		return false
	}
	return in.keys[k]
}

func (in *Input) MouseButtonDown(b MouseButton) bool {
	if b < 0 || b >= mouseButtonCount {
		return false
	}
	return in.buttons[b]
}

func (in *Input) CursorPos() (float64, float64) { return in.mouseX, in.mouseY }
