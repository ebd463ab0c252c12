package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/imbridge/engine/core"
)

func TestNewOpensFirstFrame(t *testing.T) {
	c, _, lib := newTestController(t)

	assert.True(t, c.FrameBegun())
	assert.Equal(t, 1, lib.frames)
	assert.Equal(t, 0, lib.renders)
	assert.InDelta(t, 1.0/60.0, lib.io.dt, 1e-6)
	assert.Equal(t, [2]float32{800, 600}, lib.io.displaySize)
	assert.Equal(t, [2]float32{1, 1}, lib.io.fbScale)
}

func TestRenderClosesFrameOnce(t *testing.T) {
	c, dev, lib := newTestController(t)
	lib.next = &fakeDrawData{lists: []*fakeList{
		newList(4, DrawCommand{ElementCount: 6, ClipRect: [4]float32{0, 0, 800, 600}}),
	}}

	require.NoError(t, c.Render())
	assert.False(t, c.FrameBegun())
	assert.Equal(t, 1, lib.renders)
	assert.Len(t, dev.Draws, 1)

	require.NoError(t, c.Render())
	assert.Equal(t, 1, lib.renders, "second render without a frame must not finalize")
	assert.Len(t, dev.Draws, 1)
}

func TestUpdateDiscardsOpenFrame(t *testing.T) {
	c, dev, lib := newTestController(t)
	lib.next = &fakeDrawData{lists: []*fakeList{
		newList(4, DrawCommand{ElementCount: 6}),
	}}

	c.Update(core.NewInput(), 0.25)

	assert.True(t, c.FrameBegun())
	assert.Equal(t, 1, lib.renders)
	assert.Equal(t, 2, lib.frames)
	assert.Empty(t, dev.Draws)
	assert.InDelta(t, 0.25, lib.io.dt, 1e-6)
}

func TestUpdateAfterRenderDoesNotFinalize(t *testing.T) {
	c, _, lib := newTestController(t)
	require.NoError(t, c.Render())

	c.Update(core.NewInput(), 1.0/60.0)

	assert.Equal(t, 1, lib.renders)
	assert.Equal(t, 2, lib.frames)
	assert.True(t, c.FrameBegun())
}

func TestWindowResizedAppliesOnUpdate(t *testing.T) {
	c, _, lib := newTestController(t)

	c.WindowResized(1024, 768)
	assert.Equal(t, [2]float32{800, 600}, lib.io.displaySize)

	c.Update(core.NewInput(), 1.0/60.0)
	assert.Equal(t, [2]float32{1024, 768}, lib.io.displaySize)
}

func TestDisposeIsIdempotent(t *testing.T) {
	c, dev, lib := newTestController(t)
	objs := c.objs

	c.Dispose()
	c.Dispose()

	for _, h := range []uint32{objs.vertexArray, objs.vertexBuffer, objs.indexBuffer, objs.fontTexture, objs.program} {
		assert.Equal(t, 1, dev.Deleted[h], "handle %d", h)
		assert.False(t, dev.Live(h), "handle %d", h)
	}
	assert.Equal(t, 1, lib.destroyed)
	assert.ErrorIs(t, c.Render(), ErrDisposed)
}

func TestRecreateDeviceObjects(t *testing.T) {
	c, dev, lib := newTestController(t)
	old := c.objs

	c.RecreateDeviceObjects()

	for _, h := range []uint32{old.vertexArray, old.vertexBuffer, old.indexBuffer, old.fontTexture, old.program} {
		assert.False(t, dev.Live(h), "handle %d", h)
	}
	assert.True(t, dev.Live(c.objs.vertexArray))
	assert.True(t, dev.Live(c.objs.fontTexture))
	assert.Equal(t, TextureID(c.objs.fontTexture), lib.fonts.id)
	assert.Equal(t, initialVertexBufferSize, dev.BufferSize(c.objs.vertexBuffer))
	assert.Equal(t, initialIndexBufferSize, dev.BufferSize(c.objs.indexBuffer))
}

func TestDestroyDeviceObjectsTwice(t *testing.T) {
	c, dev, _ := newTestController(t)
	vao := c.objs.vertexArray

	c.DestroyDeviceObjects()
	c.DestroyDeviceObjects()

	assert.Equal(t, 1, dev.Deleted[vao])
	assert.Zero(t, c.objs.vertexArray)
}
