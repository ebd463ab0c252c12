package gui

import (
	"testing"
	"unsafe"

	"github.com/hubastard/imbridge/engine/gfx/gfxtest"
)

type fakeIO struct {
	displaySize [2]float32
	fbScale     [2]float32
	dt          float32

	mousePos   [2]float32
	mouseDown  [3]bool
	wheel      [2]float32
	wheelCalls int

	keys   map[int]bool
	keyMap map[NavKey]int
	mods   map[Modifier]bool
	chars  []rune
}

func (io *fakeIO) SetDisplaySize(w, h float32)              { io.displaySize = [2]float32{w, h} }
func (io *fakeIO) SetDisplayFramebufferScale(x, y float32)  { io.fbScale = [2]float32{x, y} }
func (io *fakeIO) SetDeltaTime(seconds float32)             { io.dt = seconds }
func (io *fakeIO) SetMousePosition(x, y float32)            { io.mousePos = [2]float32{x, y} }
func (io *fakeIO) SetMouseButtonDown(button int, down bool) { io.mouseDown[button] = down }
func (io *fakeIO) SetKeyDown(key int, down bool)            { io.keys[key] = down }
func (io *fakeIO) SetKeyMap(nav NavKey, key int)            { io.keyMap[nav] = key }
func (io *fakeIO) AddInputCharacter(ch rune)                { io.chars = append(io.chars, ch) }

func (io *fakeIO) SetMouseWheel(h, v float32) {
	io.wheel = [2]float32{h, v}
	io.wheelCalls++
}

func (io *fakeIO) SetModifierKeys(mod Modifier, left, right int) {
	io.mods[mod] = io.keys[left] || io.keys[right]
}

type fakeFonts struct {
	width, height int
	pixels        []byte
	id            TextureID
	cleared       int
}

func (f *fakeFonts) TextureDataRGBA32() (unsafe.Pointer, int, int) {
	if f.pixels == nil {
		f.pixels = make([]byte, f.width*f.height*4)
	}
	return unsafe.Pointer(&f.pixels[0]), f.width, f.height
}

func (f *fakeFonts) SetTextureID(id TextureID) { f.id = id }
func (f *fakeFonts) ClearTextureData()         { f.pixels = nil; f.cleared++ }

type fakeList struct {
	vtx  []byte
	idx  []byte
	cmds []DrawCommand
}

// newList builds a list with vertices vertices, one index per draw command
// element and the given commands laid out back to back.
func newList(vertices int, cmds ...DrawCommand) *fakeList {
	indices := 0
	for _, c := range cmds {
		indices = max(indices, c.IndexOffset+c.ElementCount)
	}
	return &fakeList{
		vtx:  make([]byte, vertices*VertexSize),
		idx:  make([]byte, indices*IndexSize),
		cmds: cmds,
	}
}

func bytesOf(b []byte) (unsafe.Pointer, int) {
	if len(b) == 0 {
		return nil, 0
	}
	return unsafe.Pointer(&b[0]), len(b)
}

func (l *fakeList) VertexBuffer() (unsafe.Pointer, int) { return bytesOf(l.vtx) }
func (l *fakeList) IndexBuffer() (unsafe.Pointer, int)  { return bytesOf(l.idx) }
func (l *fakeList) Commands() []DrawCommand             { return l.cmds }

type fakeDrawData struct {
	lists  []*fakeList
	scaled [][2]float32
}

func (d *fakeDrawData) CommandLists() []DrawList {
	out := make([]DrawList, len(d.lists))
	for i, l := range d.lists {
		out[i] = l
	}
	return out
}

func (d *fakeDrawData) ScaleClipRects(x, y float32) {
	d.scaled = append(d.scaled, [2]float32{x, y})
	for _, l := range d.lists {
		for i := range l.cmds {
			r := &l.cmds[i].ClipRect
			r[0], r[1], r[2], r[3] = r[0]*x, r[1]*y, r[2]*x, r[3]*y
		}
	}
}

type fakeLibrary struct {
	io    *fakeIO
	fonts *fakeFonts

	frames    int
	renders   int
	destroyed int

	// next is what DrawData returns after Render.
	next *fakeDrawData
}

func newFakeLibrary() *fakeLibrary {
	return &fakeLibrary{
		io: &fakeIO{
			keys:   map[int]bool{},
			keyMap: map[NavKey]int{},
			mods:   map[Modifier]bool{},
		},
		fonts: &fakeFonts{width: 512, height: 256},
	}
}

func (l *fakeLibrary) IO() IO           { return l.io }
func (l *fakeLibrary) Fonts() FontAtlas { return l.fonts }
func (l *fakeLibrary) NewFrame()        { l.frames++ }
func (l *fakeLibrary) Render()          { l.renders++ }
func (l *fakeLibrary) Destroy()         { l.destroyed++ }

func (l *fakeLibrary) DrawData() DrawData {
	if l.next == nil {
		return &fakeDrawData{}
	}
	return l.next
}

func newTestController(t *testing.T, opts ...Option) (*Controller, *gfxtest.Device, *fakeLibrary) {
	t.Helper()
	dev := gfxtest.New()
	lib := newFakeLibrary()
	c := New(dev, lib, 800, 600, opts...)
	return c, dev, lib
}
