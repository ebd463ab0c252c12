package platform

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/imbridge/engine/core"
)

// GLFWWindow implements core.Window and pushes events to the app via a handler.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
}

// Must be called on main thread before any GL calls.
func NewGLFWWindow(cfg core.Config, onEvent func(core.Event)) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	// Core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create %d.%d window: %w", cfg.GLMajor, cfg.GLMinor, err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init gl: %w", err)
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &GLFWWindow{w: win, onEv: onEvent}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(core.EventMouseMove{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		btn, ok := translateButton(b)
		if !ok {
			return
		}
		gw.emit(core.EventMouseButton{Button: btn, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.emit(core.EventKey{Key: k, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		gw.emit(core.EventChar{Char: r})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(core.EventScroll{Xoff: xoff, Yoff: yoff})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) Size() (int, int)                     { return g.w.GetSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return core.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return core.MouseButtonMiddle, true
	default:
		return 0, false
	}
}

var glfwKeys = map[glfw.Key]core.Key{
	glfw.KeySpace:        core.KeySpace,
	glfw.KeyApostrophe:   core.KeyApostrophe,
	glfw.KeyComma:        core.KeyComma,
	glfw.KeyMinus:        core.KeyMinus,
	glfw.KeyPeriod:       core.KeyPeriod,
	glfw.KeySlash:        core.KeySlash,
	glfw.Key0:            core.Key0,
	glfw.Key1:            core.Key1,
	glfw.Key2:            core.Key2,
	glfw.Key3:            core.Key3,
	glfw.Key4:            core.Key4,
	glfw.Key5:            core.Key5,
	glfw.Key6:            core.Key6,
	glfw.Key7:            core.Key7,
	glfw.Key8:            core.Key8,
	glfw.Key9:            core.Key9,
	glfw.KeySemicolon:    core.KeySemicolon,
	glfw.KeyEqual:        core.KeyEqual,
	glfw.KeyA:            core.KeyA,
	glfw.KeyB:            core.KeyB,
	glfw.KeyC:            core.KeyC,
	glfw.KeyD:            core.KeyD,
	glfw.KeyE:            core.KeyE,
	glfw.KeyF:            core.KeyF,
	glfw.KeyG:            core.KeyG,
	glfw.KeyH:            core.KeyH,
	glfw.KeyI:            core.KeyI,
	glfw.KeyJ:            core.KeyJ,
	glfw.KeyK:            core.KeyK,
	glfw.KeyL:            core.KeyL,
	glfw.KeyM:            core.KeyM,
	glfw.KeyN:            core.KeyN,
	glfw.KeyO:            core.KeyO,
	glfw.KeyP:            core.KeyP,
	glfw.KeyQ:            core.KeyQ,
	glfw.KeyR:            core.KeyR,
	glfw.KeyS:            core.KeyS,
	glfw.KeyT:            core.KeyT,
	glfw.KeyU:            core.KeyU,
	glfw.KeyV:            core.KeyV,
	glfw.KeyW:            core.KeyW,
	glfw.KeyX:            core.KeyX,
	glfw.KeyY:            core.KeyY,
	glfw.KeyZ:            core.KeyZ,
	glfw.KeyLeftBracket:  core.KeyLeftBracket,
	glfw.KeyBackslash:    core.KeyBackslash,
	glfw.KeyRightBracket: core.KeyRightBracket,
	glfw.KeyGraveAccent:  core.KeyGraveAccent,

	glfw.KeyEscape:      core.KeyEscape,
	glfw.KeyEnter:       core.KeyEnter,
	glfw.KeyTab:         core.KeyTab,
	glfw.KeyBackspace:   core.KeyBackspace,
	glfw.KeyInsert:      core.KeyInsert,
	glfw.KeyDelete:      core.KeyDelete,
	glfw.KeyRight:       core.KeyRight,
	glfw.KeyLeft:        core.KeyLeft,
	glfw.KeyDown:        core.KeyDown,
	glfw.KeyUp:          core.KeyUp,
	glfw.KeyPageUp:      core.KeyPageUp,
	glfw.KeyPageDown:    core.KeyPageDown,
	glfw.KeyHome:        core.KeyHome,
	glfw.KeyEnd:         core.KeyEnd,
	glfw.KeyCapsLock:    core.KeyCapsLock,
	glfw.KeyScrollLock:  core.KeyScrollLock,
	glfw.KeyNumLock:     core.KeyNumLock,
	glfw.KeyPrintScreen: core.KeyPrintScreen,
	glfw.KeyPause:       core.KeyPause,
	glfw.KeyF1:          core.KeyF1,
	glfw.KeyF2:          core.KeyF2,
	glfw.KeyF3:          core.KeyF3,
	glfw.KeyF4:          core.KeyF4,
	glfw.KeyF5:          core.KeyF5,
	glfw.KeyF6:          core.KeyF6,
	glfw.KeyF7:          core.KeyF7,
	glfw.KeyF8:          core.KeyF8,
	glfw.KeyF9:          core.KeyF9,
	glfw.KeyF10:         core.KeyF10,
	glfw.KeyF11:         core.KeyF11,
	glfw.KeyF12:         core.KeyF12,

	glfw.KeyKP0:        core.KeyKP0,
	glfw.KeyKP1:        core.KeyKP1,
	glfw.KeyKP2:        core.KeyKP2,
	glfw.KeyKP3:        core.KeyKP3,
	glfw.KeyKP4:        core.KeyKP4,
	glfw.KeyKP5:        core.KeyKP5,
	glfw.KeyKP6:        core.KeyKP6,
	glfw.KeyKP7:        core.KeyKP7,
	glfw.KeyKP8:        core.KeyKP8,
	glfw.KeyKP9:        core.KeyKP9,
	glfw.KeyKPDecimal:  core.KeyKPDecimal,
	glfw.KeyKPDivide:   core.KeyKPDivide,
	glfw.KeyKPMultiply: core.KeyKPMultiply,
	glfw.KeyKPSubtract: core.KeyKPSubtract,
	glfw.KeyKPAdd:      core.KeyKPAdd,
	glfw.KeyKPEnter:    core.KeyKPEnter,
	glfw.KeyKPEqual:    core.KeyKPEqual,

	glfw.KeyLeftShift:    core.KeyLeftShift,
	glfw.KeyLeftControl:  core.KeyLeftControl,
	glfw.KeyLeftAlt:      core.KeyLeftAlt,
	glfw.KeyLeftSuper:    core.KeyLeftSuper,
	glfw.KeyRightShift:   core.KeyRightShift,
	glfw.KeyRightControl: core.KeyRightControl,
	glfw.KeyRightAlt:     core.KeyRightAlt,
	glfw.KeyRightSuper:   core.KeyRightSuper,
	glfw.KeyMenu:         core.KeyMenu,
}

func translateKey(k glfw.Key) core.Key {
	if key, ok := glfwKeys[k]; ok {
		return key
	}
	return core.KeyUnknown
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
