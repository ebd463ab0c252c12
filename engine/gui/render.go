package gui

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/hubastard/imbridge/engine/gfx"
)

// scissorRect converts a clip rectangle (x0, y0, x1, y1) with a top-left
// origin into a scissor box (x, y, width, height) with a bottom-left origin.
func scissorRect(clip [4]float32, windowHeight int) (x, y, w, h int32) {
	return int32(clip[0]),
		int32(windowHeight) - int32(clip[3]),
		int32(clip[2] - clip[0]),
		int32(clip[3] - clip[1])
}

// renderDrawData draws every command list of data. Pipeline state is
// captured before the first change and restored on every return.
func (c *Controller) renderDrawData(data DrawData) error {
	c.stats = Statistics{}
	if data == nil {
		return nil
	}
	lists := data.CommandLists()
	if len(lists) == 0 {
		return nil
	}

	dev := c.dev
	o := &c.objs

	prev := gfx.CaptureState(dev)
	defer func() {
		dev.Disable(gfx.Blend)
		dev.Disable(gfx.ScissorTest)
		prev.Restore(dev)
	}()

	dev.BindVertexArray(o.vertexArray)
	dev.BindBuffer(gfx.ArrayBuffer, o.vertexBuffer)
	dev.BindBuffer(gfx.ElementArrayBuffer, o.indexBuffer)

	for _, list := range lists {
		_, vtxSize := list.VertexBuffer()
		_, idxSize := list.IndexBuffer()
		c.ensureCapacity(vertexBuffer, vtxSize)
		c.ensureCapacity(indexBuffer, idxSize)
	}

	proj := mgl32.Ortho(0, c.displaySize[0], c.displaySize[1], 0, -1, 1)
	dev.UseProgram(o.program)
	dev.UniformMatrix4fv(o.projectionLoc, (*[16]float32)(&proj))
	dev.Uniform1i(o.fontTextureLoc, 0)
	gfx.CheckError(dev, "Projection")

	dev.BindVertexArray(o.vertexArray)
	gfx.CheckError(dev, "VAO")

	data.ScaleClipRects(c.scale[0], c.scale[1])

	dev.Enable(gfx.Blend)
	dev.Enable(gfx.ScissorTest)
	dev.BlendEquation(gfx.FuncAdd)
	dev.BlendFunc(gfx.SrcAlpha, gfx.OneMinusSrcAlpha)
	dev.Disable(gfx.CullFace)
	dev.Disable(gfx.DepthTest)

	c.stats.CommandLists = len(lists)
	for n, list := range lists {
		vtxData, vtxSize := list.VertexBuffer()
		idxData, idxSize := list.IndexBuffer()

		dev.BufferSubData(gfx.ArrayBuffer, 0, vtxSize, vtxData)
		gfx.CheckError(dev, fmt.Sprintf("Data Vert %d", n))
		dev.BufferSubData(gfx.ElementArrayBuffer, 0, idxSize, idxData)
		gfx.CheckError(dev, fmt.Sprintf("Data Idx %d", n))

		c.stats.Vertices += vtxSize / VertexSize
		c.stats.Indices += idxSize / IndexSize

		for i, cmd := range list.Commands() {
			if cmd.HasCallback {
				return &CallbackError{List: n, Command: i}
			}

			dev.ActiveTexture(gfx.Texture0)
			dev.BindTexture(gfx.Texture2D, uint32(cmd.TextureID))
			gfx.CheckError(dev, "Texture")

			dev.Scissor(scissorRect(cmd.ClipRect, c.windowHeight))
			gfx.CheckError(dev, "Scissor")

			dev.DrawElementsBaseVertex(gfx.Triangles, int32(cmd.ElementCount), gfx.UnsignedShort,
				cmd.IndexOffset*IndexSize, int32(cmd.VertexOffset))
			gfx.CheckError(dev, "Draw")
			c.stats.DrawCalls++
		}
	}
	return nil
}
