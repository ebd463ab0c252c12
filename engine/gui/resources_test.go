package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/imbridge/engine/core"
	"github.com/hubastard/imbridge/engine/gfx"
	"github.com/hubastard/imbridge/engine/gfx/gfxtest"
)

func TestMipLevels(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{512, 256, 9},
		{256, 512, 9},
		{1024, 1024, 10},
		{1000, 10, 9},
		{2, 1, 1},
		{1, 1, 1},
		{0, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mipLevels(tt.w, tt.h), "%dx%d", tt.w, tt.h)
	}
}

func TestGrowSize(t *testing.T) {
	tests := []struct {
		current, required int
		want              int
	}{
		{10000, 12000, 15000},
		{10000, 20000, 20000},
		{10000, 10000, 10000},
		{10000, 500, 10000},
		{2000, 2001, 3000},
		{2000, 3001, 3001},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, growSize(tt.current, tt.required), "grow %d to hold %d", tt.current, tt.required)
	}
}

func TestCreateDeviceObjects(t *testing.T) {
	c, dev, _ := newTestController(t)

	assert.Equal(t, initialVertexBufferSize, dev.BufferSize(c.objs.vertexBuffer))
	assert.Equal(t, initialIndexBufferSize, dev.BufferSize(c.objs.indexBuffer))
	assert.NotZero(t, c.objs.program)
	assert.NotEqual(t, c.objs.projectionLoc, c.objs.fontTextureLoc)
	for i := uint32(0); i < 3; i++ {
		assert.True(t, dev.AttribEnabled(i), "attribute %d", i)
	}
	assert.Zero(t, dev.ErrorsRaised())
}

func TestCreateDeviceObjectsKeepsHostBindings(t *testing.T) {
	dev := gfxtest.New()
	vao := dev.CreateVertexArray()
	vbo := dev.CreateBuffer()
	dev.BindVertexArray(vao)
	dev.BindBuffer(gfx.ArrayBuffer, vbo)

	New(dev, newFakeLibrary(), 800, 600)

	assert.Equal(t, int32(vao), dev.GetInteger(gfx.VertexArrayBinding))
	assert.Equal(t, int32(vbo), dev.GetInteger(gfx.ArrayBufferBinding))
}

func TestCreateDeviceObjectsSurvivesShaderFailure(t *testing.T) {
	dev := gfxtest.New()
	dev.FailCompile = true
	dev.FailLink = true

	c := New(dev, newFakeLibrary(), 800, 600)

	assert.NotZero(t, c.objs.program)
	assert.True(t, c.FrameBegun())
}

func TestDebugLabels(t *testing.T) {
	dev := gfxtest.New()
	dev.Major, dev.Minor = 4, 3

	c := New(dev, newFakeLibrary(), 800, 600)

	assert.Equal(t, "ImGui", dev.Label(c.objs.vertexArray))
	assert.Equal(t, "VBO: ImGui", dev.Label(c.objs.vertexBuffer))
	assert.Equal(t, "EBO: ImGui", dev.Label(c.objs.indexBuffer))
	assert.Equal(t, "ImGui Text Atlas", dev.Label(c.objs.fontTexture))
	assert.Equal(t, "Program: ImGui", dev.Label(c.objs.program))
}

func TestNoDebugLabelsOnOldContexts(t *testing.T) {
	c, dev, _ := newTestController(t)

	assert.Empty(t, dev.Label(c.objs.vertexArray))
	assert.Empty(t, dev.Label(c.objs.fontTexture))
}

func TestFontTexture(t *testing.T) {
	c, dev, lib := newTestController(t)

	tex := dev.TextureInfo(c.objs.fontTexture)
	require.NotNil(t, tex)
	assert.Equal(t, int32(9), tex.Levels)
	assert.Equal(t, int32(512), tex.Width)
	assert.Equal(t, int32(256), tex.Height)
	assert.True(t, tex.Uploaded)
	assert.True(t, tex.Mipmapped)
	assert.Equal(t, int32(8), tex.Params[gfx.TextureMaxLevel])
	assert.Equal(t, int32(gfx.Repeat), tex.Params[gfx.TextureWrapS])
	assert.Equal(t, int32(gfx.Repeat), tex.Params[gfx.TextureWrapT])
	assert.Equal(t, int32(gfx.Linear), tex.Params[gfx.TextureMinFilter])
	assert.Equal(t, int32(gfx.Linear), tex.Params[gfx.TextureMagFilter])

	assert.Equal(t, TextureID(c.objs.fontTexture), lib.fonts.id)
	assert.Equal(t, 1, lib.fonts.cleared)
}

func TestRecreateFontTextureReplacesTexture(t *testing.T) {
	c, dev, lib := newTestController(t)
	require.NoError(t, c.Render())
	old := c.objs.fontTexture

	lib.fonts.width, lib.fonts.height = 1024, 1024
	c.RecreateFontTexture()

	assert.NotEqual(t, old, c.objs.fontTexture)
	assert.Equal(t, 1, dev.Deleted[old])
	assert.Equal(t, TextureID(c.objs.fontTexture), lib.fonts.id)
	assert.Equal(t, int32(10), dev.TextureInfo(c.objs.fontTexture).Levels)
	assert.Equal(t, 2, lib.fonts.cleared)
}

func TestRecreateFontTextureKeepsHostBindings(t *testing.T) {
	c, dev, _ := newTestController(t)
	require.NoError(t, c.Render())
	host := dev.CreateTexture()
	dev.ActiveTexture(gfx.Texture0)
	dev.BindTexture(gfx.Texture2D, host)
	dev.ActiveTexture(gfx.Texture0 + 3)

	c.RecreateFontTexture()

	assert.Equal(t, int32(gfx.Texture0+3), dev.GetInteger(gfx.ActiveTextureUnit))
	dev.ActiveTexture(gfx.Texture0)
	assert.Equal(t, int32(host), dev.GetInteger(gfx.TextureBinding2D))
}

func TestRecreateFontTextureUnbindsOldAtlas(t *testing.T) {
	c, dev, _ := newTestController(t)
	require.NoError(t, c.Render())
	dev.ActiveTexture(gfx.Texture0)
	dev.BindTexture(gfx.Texture2D, c.objs.fontTexture)

	c.RecreateFontTexture()

	assert.Zero(t, dev.GetInteger(gfx.TextureBinding2D))
	assert.Zero(t, dev.ErrorsRaised())
}

func TestRecreateFontTextureWaitsForOpenFrame(t *testing.T) {
	c, dev, lib := newTestController(t)
	old := c.objs.fontTexture
	lib.next = &fakeDrawData{lists: []*fakeList{
		newList(4, DrawCommand{ElementCount: 6, ClipRect: [4]float32{0, 0, 100, 100}, TextureID: TextureID(old)}),
	}}

	c.RecreateFontTexture()
	assert.Equal(t, old, c.objs.fontTexture)
	assert.Zero(t, dev.Deleted[old])
	assert.Equal(t, 1, lib.fonts.cleared)

	require.NoError(t, c.Render())
	require.Len(t, dev.Draws, 1)
	assert.Equal(t, old, dev.Draws[0].Texture)
	assert.Zero(t, dev.ErrorsRaised())

	assert.NotEqual(t, old, c.objs.fontTexture)
	assert.Equal(t, 1, dev.Deleted[old])
	assert.Equal(t, TextureID(c.objs.fontTexture), lib.fonts.id)
	assert.Equal(t, 2, lib.fonts.cleared)
}

func TestRecreateFontTextureAppliesOnUpdate(t *testing.T) {
	c, dev, lib := newTestController(t)
	old := c.objs.fontTexture

	c.RecreateFontTexture()
	c.Update(core.NewInput(), 1.0/60.0)

	assert.Equal(t, 1, dev.Deleted[old])
	assert.Equal(t, TextureID(c.objs.fontTexture), lib.fonts.id)

	c.Update(core.NewInput(), 1.0/60.0)
	require.NoError(t, c.Render())
	assert.Equal(t, 2, lib.fonts.cleared, "rebuilt once")
}

func TestRecreateFontTextureAfterDispose(t *testing.T) {
	c, dev, lib := newTestController(t)
	require.NoError(t, c.Render())
	c.Dispose()
	id := lib.fonts.id

	c.RecreateFontTexture()
	c.Update(core.NewInput(), 1.0/60.0)
	assert.Equal(t, id, lib.fonts.id)
	assert.Equal(t, 1, lib.fonts.cleared)
	assert.Zero(t, dev.ErrorsRaised())
}

func TestEnsureCapacity(t *testing.T) {
	c, dev, _ := newTestController(t)
	host := dev.CreateBuffer()
	dev.BindBuffer(gfx.ArrayBuffer, host)

	c.ensureCapacity(vertexBuffer, 12000)
	assert.Equal(t, 15000, dev.BufferSize(c.objs.vertexBuffer))
	assert.Equal(t, int32(host), dev.GetInteger(gfx.ArrayBufferBinding))
	assert.Equal(t, 1, c.stats.BufferResizes)

	c.ensureCapacity(vertexBuffer, 9000)
	assert.Equal(t, 15000, dev.BufferSize(c.objs.vertexBuffer), "capacity never shrinks")
	assert.Equal(t, 1, c.stats.BufferResizes)

	c.ensureCapacity(indexBuffer, 9000)
	assert.Equal(t, 9000, dev.BufferSize(c.objs.indexBuffer))
	assert.Equal(t, 2, c.stats.BufferResizes)
}
