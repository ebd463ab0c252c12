// Package gui bridges an immediate-mode GUI library to a gfx.Device. The
// Controller feeds host input into the library's IO model once per frame,
// and turns the finished frame's draw lists into draw calls without
// disturbing the host renderer's pipeline state.
package gui

import (
	"unsafe"

	"github.com/hubastard/imbridge/engine/core"
)

// Vertex layout of the library's vertex struct: position (2 x float32),
// texture coordinate (2 x float32), color (4 x uint8, normalized).
const (
	VertexSize      = 20
	VertexPosOffset = 0
	VertexUVOffset  = 8
	VertexColOffset = 16

	// IndexSize is the size of one index; indices are uint16.
	IndexSize = 2
)

// TextureID identifies a texture in draw commands. The controller stores
// device texture handles in it.
type TextureID uint32

// Library is one context of the GUI library. The controller owns it and
// destroys it on Dispose.
type Library interface {
	IO() IO
	Fonts() FontAtlas

	// NewFrame opens a logical frame.
	NewFrame()
	// Render finalizes the open frame into draw data.
	Render()
	// DrawData returns the draw data of the last finalized frame.
	DrawData() DrawData

	Destroy()
}

// IO is the library's per-frame input model.
type IO interface {
	SetDisplaySize(width, height float32)
	SetDisplayFramebufferScale(x, y float32)
	SetDeltaTime(seconds float32)

	SetMousePosition(x, y float32)
	SetMouseButtonDown(button int, down bool)
	SetMouseWheel(horizontal, vertical float32)

	// SetKeyDown records the state of a native key code.
	SetKeyDown(key int, down bool)
	// SetKeyMap associates a library navigation key with a native key code.
	SetKeyMap(nav NavKey, key int)
	// SetModifierKeys sets modifier mod from the down state of the native
	// keys left and right, which must already be recorded for this frame.
	SetModifierKeys(mod Modifier, left, right int)

	AddInputCharacter(ch rune)
}

// FontAtlas is the library's glyph atlas.
type FontAtlas interface {
	// TextureDataRGBA32 rasterizes the atlas and returns its RGBA8 bitmap.
	TextureDataRGBA32() (pixels unsafe.Pointer, width, height int)
	SetTextureID(id TextureID)
	// ClearTextureData frees the CPU-side bitmap.
	ClearTextureData()
}

// DrawData is the output of a finalized frame.
type DrawData interface {
	CommandLists() []DrawList
	// ScaleClipRects multiplies every command's clip rectangle.
	ScaleClipRects(x, y float32)
}

// DrawList is one batch of vertices and indices with the commands that draw
// from it. Index and vertex offsets in commands are relative to this list's
// buffers only.
type DrawList interface {
	// VertexBuffer returns the vertex data and its size in bytes.
	VertexBuffer() (data unsafe.Pointer, size int)
	// IndexBuffer returns the index data and its size in bytes.
	IndexBuffer() (data unsafe.Pointer, size int)
	Commands() []DrawCommand
}

// DrawCommand draws ElementCount indices starting at IndexOffset (counted in
// indices), clipped to ClipRect (x0, y0, x1, y1), sampling TextureID.
type DrawCommand struct {
	ElementCount int
	IndexOffset  int
	VertexOffset int
	ClipRect     [4]float32
	TextureID    TextureID

	// HasCallback marks a user callback command. The controller cannot
	// dispatch those.
	HasCallback bool
}

// NavKey is a library key identifier used by text editing and navigation.
type NavKey int

const (
	NavKeyTab NavKey = iota
	NavKeyLeftArrow
	NavKeyRightArrow
	NavKeyUpArrow
	NavKeyDownArrow
	NavKeyPageUp
	NavKeyPageDown
	NavKeyHome
	NavKeyEnd
	NavKeyDelete
	NavKeyBackspace
	NavKeyEnter
	NavKeyEscape
	NavKeyA // select all
	NavKeyC // copy
	NavKeyV // paste
	NavKeyX // cut
	NavKeyY // redo
	NavKeyZ // undo
)

// Modifier names a keyboard modifier.
type Modifier int

const (
	ModCtrl Modifier = iota
	ModAlt
	ModShift
	ModSuper
)

// Host is the polled view of the host's devices. core.Input implements it.
type Host interface {
	MouseButtonDown(b core.MouseButton) bool
	CursorPos() (x, y float64)
	KeyDown(k core.Key) bool
}

var _ Host = (*core.Input)(nil)
