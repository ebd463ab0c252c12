package gui

import "github.com/hubastard/imbridge/engine/gfx"

// Statistics describes the last rendered frame.
type Statistics struct {
	DrawCalls     int
	CommandLists  int
	Vertices      int
	Indices       int
	BufferResizes int
}

// Controller drives one GUI library context: it opens and closes the
// library's frames, feeds it input and draws its output with dev.
//
// A Controller must be used from the thread that owns the graphics context.
type Controller struct {
	dev    gfx.Device
	lib    Library
	labels gfx.Labeler

	objs deviceObjects

	windowWidth  int
	windowHeight int
	scale        [2]float32
	displaySize  [2]float32

	pressedChars  []rune
	scroll        [2]float32
	scrollPending bool

	frameBegun  bool
	fontRebuild bool
	disposed    bool
	stats       Statistics
}

// Option configures a Controller.
type Option func(*Controller)

// WithScaleFactor sets the initial framebuffer scale factor.
func WithScaleFactor(x, y float32) Option {
	return func(c *Controller) { c.SetScaleFactor(x, y) }
}

// New builds the GPU objects for lib on dev and opens the first frame, so
// widgets can be submitted before the first Update. The window size is in
// window units. The controller takes ownership of lib.
func New(dev gfx.Device, lib Library, width, height int, opts ...Option) *Controller {
	c := &Controller{
		dev:          dev,
		lib:          lib,
		labels:       gfx.NewLabeler(dev),
		windowWidth:  width,
		windowHeight: height,
		scale:        [2]float32{1, 1},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.createDeviceObjects()
	c.installKeyMap()
	c.beginFrame(1.0 / 60.0)
	lib.NewFrame()
	c.frameBegun = true

	gfx.Logger().Debug("gui controller created", "width", width, "height", height, "labels", c.labels.Enabled())
	return c
}

// WindowResized records the new window size. It applies from the next Update.
func (c *Controller) WindowResized(width, height int) {
	c.windowWidth = width
	c.windowHeight = height
}

// FrameBegun reports whether a frame is open for widget submission.
func (c *Controller) FrameBegun() bool { return c.frameBegun }

// Stats returns the statistics of the last Render that drew.
func (c *Controller) Stats() Statistics { return c.stats }

// Render finalizes the open frame and draws it. Without an open frame it does
// nothing. It fails with ErrDisposed after Dispose and with a *CallbackError
// for draw commands carrying user callbacks; either way the frame is closed.
func (c *Controller) Render() error {
	if c.disposed {
		return ErrDisposed
	}
	if !c.frameBegun {
		return nil
	}
	c.frameBegun = false
	c.lib.Render()
	err := c.renderDrawData(c.lib.DrawData())
	c.applyFontRebuild()
	return err
}

// Update discards an open frame's output, samples host input and opens the
// next frame with time step dt in seconds.
func (c *Controller) Update(host Host, dt float32) {
	if c.disposed {
		return
	}
	if c.frameBegun {
		c.lib.Render()
	}
	c.applyFontRebuild()
	c.beginFrame(dt)
	c.sampleInput(host)
	c.frameBegun = true
	c.lib.NewFrame()
}

// DestroyDeviceObjects releases the GPU objects. The controller cannot draw
// until RecreateDeviceObjects.
func (c *Controller) DestroyDeviceObjects() {
	c.destroyDeviceObjects()
}

// RecreateDeviceObjects rebuilds every GPU object, for instance after the
// graphics context was lost.
func (c *Controller) RecreateDeviceObjects() {
	c.destroyDeviceObjects()
	c.createDeviceObjects()
}

// Dispose releases the GPU objects and destroys the library context. Calls
// after the first do nothing.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.frameBegun = false
	c.fontRebuild = false
	c.destroyDeviceObjects()
	c.lib.Destroy()
	gfx.Logger().Debug("gui controller disposed")
}
