package gui

import "github.com/hubastard/imbridge/engine/core"

// keyMap tells the library which native key codes drive its navigation and
// text editing shortcuts.
var keyMap = [...]struct {
	nav NavKey
	key core.Key
}{
	{NavKeyTab, core.KeyTab},
	{NavKeyLeftArrow, core.KeyLeft},
	{NavKeyRightArrow, core.KeyRight},
	{NavKeyUpArrow, core.KeyUp},
	{NavKeyDownArrow, core.KeyDown},
	{NavKeyPageUp, core.KeyPageUp},
	{NavKeyPageDown, core.KeyPageDown},
	{NavKeyHome, core.KeyHome},
	{NavKeyEnd, core.KeyEnd},
	{NavKeyDelete, core.KeyDelete},
	{NavKeyBackspace, core.KeyBackspace},
	{NavKeyEnter, core.KeyEnter},
	{NavKeyEscape, core.KeyEscape},
	{NavKeyA, core.KeyA},
	{NavKeyC, core.KeyC},
	{NavKeyV, core.KeyV},
	{NavKeyX, core.KeyX},
	{NavKeyY, core.KeyY},
	{NavKeyZ, core.KeyZ},
}

var modifierKeys = [...]struct {
	mod         Modifier
	left, right core.Key
}{
	{ModCtrl, core.KeyLeftControl, core.KeyRightControl},
	{ModAlt, core.KeyLeftAlt, core.KeyRightAlt},
	{ModShift, core.KeyLeftShift, core.KeyRightShift},
	{ModSuper, core.KeyLeftSuper, core.KeyRightSuper},
}

var mouseButtons = [...]core.MouseButton{
	core.MouseButtonLeft,
	core.MouseButtonRight,
	core.MouseButtonMiddle,
}

func (c *Controller) installKeyMap() {
	io := c.lib.IO()
	for _, m := range keyMap {
		io.SetKeyMap(m.nav, int(m.key))
	}
}

// beginFrame hands the library the display metrics and the time step of the
// frame about to open.
func (c *Controller) beginFrame(dt float32) {
	io := c.lib.IO()
	c.displaySize = [2]float32{
		float32(c.windowWidth) / c.scale[0],
		float32(c.windowHeight) / c.scale[1],
	}
	io.SetDisplaySize(c.displaySize[0], c.displaySize[1])
	io.SetDisplayFramebufferScale(c.scale[0], c.scale[1])
	io.SetDeltaTime(dt)
}

// sampleInput copies the host's current device state into the library. Key
// states go in before modifiers, which are derived from them.
func (c *Controller) sampleInput(host Host) {
	io := c.lib.IO()

	for i, b := range mouseButtons {
		io.SetMouseButtonDown(i, host.MouseButtonDown(b))
	}
	x, y := host.CursorPos()
	io.SetMousePosition(float32(x), float32(y))

	for k := core.KeyUnknown + 1; k < core.KeyCount; k++ {
		io.SetKeyDown(int(k), host.KeyDown(k))
	}

	for _, r := range c.pressedChars {
		io.AddInputCharacter(r)
	}
	c.pressedChars = c.pressedChars[:0]

	for _, m := range modifierKeys {
		io.SetModifierKeys(m.mod, int(m.left), int(m.right))
	}

	if c.scrollPending {
		io.SetMouseWheel(c.scroll[0], c.scroll[1])
		c.scroll = [2]float32{}
		c.scrollPending = false
	}
}

// PressChar queues a typed character for the next Update.
func (c *Controller) PressChar(r rune) {
	c.pressedChars = append(c.pressedChars, r)
}

// MouseScroll records a wheel offset for the next Update. Only the last
// offset reported before the Update is delivered.
func (c *Controller) MouseScroll(x, y float32) {
	c.scroll = [2]float32{x, y}
	c.scrollPending = true
}

// SetScaleFactor sets the ratio of framebuffer pixels to window units. It
// applies from the next Update.
func (c *Controller) SetScaleFactor(x, y float32) {
	if x <= 0 || y <= 0 {
		return
	}
	c.scale = [2]float32{x, y}
}
