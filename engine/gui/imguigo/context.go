// Package imguigo implements gui.Library with Dear ImGui through imgui-go.
package imguigo

import (
	"fmt"
	"unsafe"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/hubastard/imbridge/engine/gfx"
	"github.com/hubastard/imbridge/engine/gui"
)

// Context owns one ImGui context. ImGui calls act on the current context, so
// the Context makes itself current before opening a frame.
type Context struct {
	ctx *imgui.Context
}

// New creates an ImGui context with the default font and makes it current.
// The context is told the renderer honors per-command vertex offsets, so
// lists may exceed the 16-bit index range.
// It fails when the library's vertex or index layout differs from the one
// the gui package draws with.
func New() (*Context, error) {
	ctx := imgui.CreateContext(nil)
	if err := ctx.SetCurrent(); err != nil {
		ctx.Destroy()
		return nil, fmt.Errorf("imguigo: activate context: %w", err)
	}

	size, pos, uv, col := imgui.VertexBufferLayout()
	if size != gui.VertexSize || pos != gui.VertexPosOffset || uv != gui.VertexUVOffset || col != gui.VertexColOffset {
		ctx.Destroy()
		return nil, fmt.Errorf("imguigo: unexpected vertex layout: size %d, offsets %d/%d/%d", size, pos, uv, col)
	}
	if n := imgui.IndexBufferLayout(); n != gui.IndexSize {
		ctx.Destroy()
		return nil, fmt.Errorf("imguigo: unexpected index size %d", n)
	}

	io := imgui.CurrentIO()
	io.SetBackendFlags(io.GetBackendFlags() | imgui.BackendFlagsRendererHasVtxOffset)
	io.Fonts().AddFontDefault()
	return &Context{ctx: ctx}, nil
}

func (c *Context) IO() gui.IO { return frameIO{imgui.CurrentIO()} }

func (c *Context) Fonts() gui.FontAtlas { return fontAtlas{imgui.CurrentIO().Fonts()} }

func (c *Context) NewFrame() {
	if err := c.ctx.SetCurrent(); err != nil {
		gfx.Logger().Error("imgui context lost", "err", err)
		return
	}
	imgui.NewFrame()
}

func (c *Context) Render() { imgui.Render() }

// DrawData returns nil when no frame has been rendered yet.
func (c *Context) DrawData() gui.DrawData {
	data := imgui.RenderedDrawData()
	if !data.Valid() {
		return nil
	}
	return drawData{data}
}

func (c *Context) Destroy() { c.ctx.Destroy() }

type frameIO struct {
	io imgui.IO
}

func (i frameIO) SetDisplaySize(width, height float32) {
	i.io.SetDisplaySize(imgui.Vec2{X: width, Y: height})
}

func (i frameIO) SetDisplayFramebufferScale(x, y float32) {
	i.io.SetDisplayFrameBufferScale(imgui.Vec2{X: x, Y: y})
}

func (i frameIO) SetDeltaTime(seconds float32) { i.io.SetDeltaTime(seconds) }

func (i frameIO) SetMousePosition(x, y float32) {
	i.io.SetMousePosition(imgui.Vec2{X: x, Y: y})
}

func (i frameIO) SetMouseButtonDown(button int, down bool) { i.io.SetMouseButtonDown(button, down) }

// SetMouseWheel adds to the wheel delta, which ImGui clears every frame.
func (i frameIO) SetMouseWheel(horizontal, vertical float32) {
	i.io.AddMouseWheelDelta(horizontal, vertical)
}

func (i frameIO) SetKeyDown(key int, down bool) {
	if down {
		i.io.KeyPress(key)
	} else {
		i.io.KeyRelease(key)
	}
}

func (i frameIO) SetKeyMap(nav gui.NavKey, key int) {
	i.io.KeyMap(navKeys[nav], key)
}

func (i frameIO) SetModifierKeys(mod gui.Modifier, left, right int) {
	switch mod {
	case gui.ModCtrl:
		i.io.KeyCtrl(left, right)
	case gui.ModAlt:
		i.io.KeyAlt(left, right)
	case gui.ModShift:
		i.io.KeyShift(left, right)
	case gui.ModSuper:
		i.io.KeySuper(left, right)
	}
}

func (i frameIO) AddInputCharacter(ch rune) { i.io.AddInputCharacters(string(ch)) }

var navKeys = map[gui.NavKey]int{
	gui.NavKeyTab:        imgui.KeyTab,
	gui.NavKeyLeftArrow:  imgui.KeyLeftArrow,
	gui.NavKeyRightArrow: imgui.KeyRightArrow,
	gui.NavKeyUpArrow:    imgui.KeyUpArrow,
	gui.NavKeyDownArrow:  imgui.KeyDownArrow,
	gui.NavKeyPageUp:     imgui.KeyPageUp,
	gui.NavKeyPageDown:   imgui.KeyPageDown,
	gui.NavKeyHome:       imgui.KeyHome,
	gui.NavKeyEnd:        imgui.KeyEnd,
	gui.NavKeyDelete:     imgui.KeyDelete,
	gui.NavKeyBackspace:  imgui.KeyBackspace,
	gui.NavKeyEnter:      imgui.KeyEnter,
	gui.NavKeyEscape:     imgui.KeyEscape,
	gui.NavKeyA:          imgui.KeyA,
	gui.NavKeyC:          imgui.KeyC,
	gui.NavKeyV:          imgui.KeyV,
	gui.NavKeyX:          imgui.KeyX,
	gui.NavKeyY:          imgui.KeyY,
	gui.NavKeyZ:          imgui.KeyZ,
}

type fontAtlas struct {
	atlas imgui.FontAtlas
}

func (f fontAtlas) TextureDataRGBA32() (unsafe.Pointer, int, int) {
	img := f.atlas.TextureDataRGBA32()
	return img.Pixels, img.Width, img.Height
}

func (f fontAtlas) SetTextureID(id gui.TextureID) {
	f.atlas.SetTextureID(imgui.TextureID(id))
}

// ClearTextureData does nothing: imgui-go keeps the atlas bitmap until the
// context is destroyed.
func (f fontAtlas) ClearTextureData() {}

type drawData struct {
	data imgui.DrawData
}

func (d drawData) CommandLists() []gui.DrawList {
	lists := d.data.CommandLists()
	out := make([]gui.DrawList, len(lists))
	for i, l := range lists {
		out[i] = drawList{l}
	}
	return out
}

func (d drawData) ScaleClipRects(x, y float32) {
	d.data.ScaleClipRects(imgui.Vec2{X: x, Y: y})
}

type drawList struct {
	list imgui.DrawList
}

func (l drawList) VertexBuffer() (unsafe.Pointer, int) { return l.list.VertexBuffer() }
func (l drawList) IndexBuffer() (unsafe.Pointer, int)  { return l.list.IndexBuffer() }

func (l drawList) Commands() []gui.DrawCommand {
	cmds := l.list.Commands()
	out := make([]gui.DrawCommand, len(cmds))
	for i, cmd := range cmds {
		r := cmd.ClipRect()
		out[i] = gui.DrawCommand{
			ElementCount: cmd.ElementCount(),
			IndexOffset:  cmd.IndexOffset(),
			VertexOffset: cmd.VertexOffset(),
			ClipRect:     [4]float32{r.X, r.Y, r.Z, r.W},
			TextureID:    gui.TextureID(cmd.TextureID()),
			HasCallback:  cmd.HasUserCallback(),
		}
	}
	return out
}

var _ gui.Library = (*Context)(nil)
