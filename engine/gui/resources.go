package gui

import (
	_ "embed"
	"fmt"
	"math/bits"

	"github.com/hubastard/imbridge/engine/gfx"
)

const (
	initialVertexBufferSize = 10000
	initialIndexBufferSize  = 2000
)

var (
	//go:embed shaders/gui.vert
	vertexSource string
	//go:embed shaders/gui.frag
	fragmentSource string
)

type bufferKind int

const (
	vertexBuffer bufferKind = iota
	indexBuffer
)

func (k bufferKind) String() string {
	if k == indexBuffer {
		return "index"
	}
	return "vertex"
}

// deviceObjects are the GPU resources the controller owns. Zero handles
// mean "not created".
type deviceObjects struct {
	vertexArray      uint32
	vertexBuffer     uint32
	vertexBufferSize int
	indexBuffer      uint32
	indexBufferSize  int
	fontTexture      uint32

	program        uint32
	projectionLoc  int32
	fontTextureLoc int32
}

// createDeviceObjects builds buffers, vertex layout, program and font
// texture. The caller's vertex array and array buffer bindings survive.
func (c *Controller) createDeviceObjects() {
	dev := c.dev
	o := &c.objs
	o.vertexBufferSize = initialVertexBufferSize
	o.indexBufferSize = initialIndexBufferSize

	prevVAO := dev.GetInteger(gfx.VertexArrayBinding)
	prevArrayBuffer := dev.GetInteger(gfx.ArrayBufferBinding)

	o.vertexArray = dev.CreateVertexArray()
	dev.BindVertexArray(o.vertexArray)
	c.labels.Label(gfx.ObjectVertexArray, o.vertexArray, "ImGui")

	o.vertexBuffer = dev.CreateBuffer()
	dev.BindBuffer(gfx.ArrayBuffer, o.vertexBuffer)
	c.labels.Label(gfx.ObjectBuffer, o.vertexBuffer, "VBO: ImGui")
	dev.BufferData(gfx.ArrayBuffer, o.vertexBufferSize, nil, gfx.DynamicDraw)

	o.indexBuffer = dev.CreateBuffer()
	dev.BindBuffer(gfx.ElementArrayBuffer, o.indexBuffer)
	c.labels.Label(gfx.ObjectBuffer, o.indexBuffer, "EBO: ImGui")
	dev.BufferData(gfx.ElementArrayBuffer, o.indexBufferSize, nil, gfx.DynamicDraw)

	c.uploadFontTexture()

	o.program = gfx.CreateProgram(dev, c.labels, "ImGui", vertexSource, fragmentSource)
	o.projectionLoc = dev.GetUniformLocation(o.program, "projection_matrix")
	o.fontTextureLoc = dev.GetUniformLocation(o.program, "in_fontTexture")

	dev.VertexAttribPointer(0, 2, gfx.Float, false, VertexSize, VertexPosOffset)
	dev.VertexAttribPointer(1, 2, gfx.Float, false, VertexSize, VertexUVOffset)
	dev.VertexAttribPointer(2, 4, gfx.UnsignedByte, true, VertexSize, VertexColOffset)
	dev.EnableVertexAttribArray(0)
	dev.EnableVertexAttribArray(1)
	dev.EnableVertexAttribArray(2)

	dev.BindVertexArray(uint32(prevVAO))
	dev.BindBuffer(gfx.ArrayBuffer, uint32(prevArrayBuffer))

	gfx.CheckError(dev, "End of ImGui setup")
}

// RecreateFontTexture rebuilds the atlas texture from the library's current
// font configuration and publishes its id. The previous texture is deleted.
//
// Commands recorded in an open frame still sample the previous texture, so
// while a frame is open the rebuild waits until that frame is drawn or
// discarded.
func (c *Controller) RecreateFontTexture() {
	if c.disposed {
		return
	}
	if c.frameBegun {
		c.fontRebuild = true
		return
	}
	c.uploadFontTexture()
}

// applyFontRebuild runs a rebuild deferred by RecreateFontTexture.
func (c *Controller) applyFontRebuild() {
	if !c.fontRebuild {
		return
	}
	c.fontRebuild = false
	c.uploadFontTexture()
}

func (c *Controller) uploadFontTexture() {
	dev := c.dev
	fonts := c.lib.Fonts()
	pixels, width, height := fonts.TextureDataRGBA32()
	mips := mipLevels(width, height)

	prevActive := dev.GetInteger(gfx.ActiveTextureUnit)
	dev.ActiveTexture(gfx.Texture0)
	prevTexture := uint32(dev.GetInteger(gfx.TextureBinding2D))

	old := c.objs.fontTexture
	if prevTexture == old {
		prevTexture = 0
	}

	tex := dev.CreateTexture()
	dev.BindTexture(gfx.Texture2D, tex)
	dev.TexStorage2D(gfx.Texture2D, int32(mips), gfx.RGBA8, int32(width), int32(height))
	c.labels.Label(gfx.ObjectTexture, tex, "ImGui Text Atlas")

	dev.TexSubImage2D(gfx.Texture2D, 0, 0, 0, int32(width), int32(height), gfx.RGBA, gfx.UnsignedByte, pixels)
	dev.GenerateMipmap(gfx.Texture2D)

	dev.TexParameteri(gfx.Texture2D, gfx.TextureWrapS, int32(gfx.Repeat))
	dev.TexParameteri(gfx.Texture2D, gfx.TextureWrapT, int32(gfx.Repeat))
	dev.TexParameteri(gfx.Texture2D, gfx.TextureMaxLevel, int32(mips-1))
	dev.TexParameteri(gfx.Texture2D, gfx.TextureMagFilter, int32(gfx.Linear))
	dev.TexParameteri(gfx.Texture2D, gfx.TextureMinFilter, int32(gfx.Linear))

	dev.BindTexture(gfx.Texture2D, prevTexture)
	dev.ActiveTexture(gfx.Enum(prevActive))

	if old != 0 {
		dev.DeleteTexture(old)
	}
	c.objs.fontTexture = tex

	fonts.SetTextureID(TextureID(tex))
	fonts.ClearTextureData()

	gfx.Logger().Info("font atlas uploaded", "width", width, "height", height, "mips", mips, "texture", tex)
}

// mipLevels is floor(log2(max(width, height))), at least 1.
func mipLevels(width, height int) int {
	n := bits.Len(uint(max(width, height))) - 1
	if n < 1 {
		return 1
	}
	return n
}

// growSize is the capacity a buffer of size current needs to hold
// required bytes.
func growSize(current, required int) int {
	if required <= current {
		return current
	}
	return max(int(float64(current)*1.5), required)
}

// ensureCapacity grows the buffer of the given kind to hold required bytes.
// The binding of the buffer's target is the same on return.
func (c *Controller) ensureCapacity(kind bufferKind, required int) {
	o := &c.objs
	size, buffer := &o.vertexBufferSize, o.vertexBuffer
	target, binding := gfx.ArrayBuffer, gfx.ArrayBufferBinding
	if kind == indexBuffer {
		size, buffer = &o.indexBufferSize, o.indexBuffer
		target, binding = gfx.ElementArrayBuffer, gfx.ElementArrayBinding
	}
	if required <= *size {
		return
	}

	newSize := growSize(*size, required)
	prev := uint32(c.dev.GetInteger(binding))
	c.dev.BindBuffer(target, buffer)
	c.dev.BufferData(target, newSize, nil, gfx.DynamicDraw)
	c.dev.BindBuffer(target, prev)

	*size = newSize
	c.stats.BufferResizes++
	gfx.Logger().Info(fmt.Sprintf("Resized %s buffer to new size %d", kind, newSize),
		"buffer", kind.String(), "size", newSize, "required", required)
}

// destroyDeviceObjects deletes every GPU object that exists and zeroes its
// handle, so calling it twice is harmless.
func (c *Controller) destroyDeviceObjects() {
	dev := c.dev
	o := &c.objs
	if o.vertexArray != 0 {
		dev.DeleteVertexArray(o.vertexArray)
	}
	if o.vertexBuffer != 0 {
		dev.DeleteBuffer(o.vertexBuffer)
	}
	if o.indexBuffer != 0 {
		dev.DeleteBuffer(o.indexBuffer)
	}
	if o.fontTexture != 0 {
		dev.DeleteTexture(o.fontTexture)
	}
	if o.program != 0 {
		dev.DeleteProgram(o.program)
	}
	*o = deviceObjects{}
}
