// Package gfxtest provides an in-memory gfx.Device that tracks binding and
// pipeline state the way a GL driver would and records what was drawn.
package gfxtest

import (
	"fmt"
	"unsafe"

	"github.com/hubastard/imbridge/engine/gfx"
)

// Draw is one recorded indexed draw call.
type Draw struct {
	Program     uint32
	VertexArray uint32
	Texture     uint32
	Scissor     [4]int32
	Count       int32
	Offset      int
	BaseVertex  int32
}

// Upload is one recorded BufferSubData call.
type Upload struct {
	Target gfx.Enum
	Buffer uint32
	Offset int
	Size   int
}

// Texture is what the fake knows about a texture object.
type Texture struct {
	Levels        int32
	Width, Height int32
	Params        map[gfx.Enum]int32
	Uploaded      bool
	Mipmapped     bool
}

// Device is a fake gfx.Device. The zero value is not usable; call New.
type Device struct {
	Major, Minor int32
	Exts         []string

	ints    map[gfx.Enum]int32
	enabled map[gfx.Enum]bool
	scissor [4]int32

	nextHandle uint32

	vaos          map[uint32]bool
	vaoElements   map[uint32]uint32 // element buffer binding per VAO
	buffers       map[uint32]int    // allocated bytes
	textures      map[uint32]*Texture
	unitTextures  map[int32]uint32
	shaders       map[uint32]bool
	programs      map[uint32]bool
	uniformLocs   map[string]int32
	matrices      map[int32][16]float32
	ints1         map[int32]int32
	labels        map[uint32]string
	attribs       map[uint32]bool
	pendingErrors []gfx.Enum

	// FailCompile and FailLink make shader compilation or program linking
	// report failure.
	FailCompile bool
	FailLink    bool

	Draws    []Draw
	Uploads  []Upload
	Deleted  map[uint32]int
	Resizes  []int
	Calls    int
	errCount int
}

// New returns a fake device with GL-like defaults (blend FUNC_ADD, ONE/ZERO
// factors, texture unit 0 active).
func New() *Device {
	d := &Device{
		Major:        3,
		Minor:        3,
		ints:         map[gfx.Enum]int32{},
		enabled:      map[gfx.Enum]bool{},
		nextHandle:   1,
		vaos:         map[uint32]bool{},
		vaoElements:  map[uint32]uint32{},
		buffers:      map[uint32]int{},
		textures:     map[uint32]*Texture{},
		unitTextures: map[int32]uint32{},
		shaders:      map[uint32]bool{},
		programs:     map[uint32]bool{},
		uniformLocs:  map[string]int32{},
		matrices:     map[int32][16]float32{},
		ints1:        map[int32]int32{},
		labels:       map[uint32]string{},
		attribs:      map[uint32]bool{},
		Deleted:      map[uint32]int{},
	}
	d.ints[gfx.BlendEquationRGB] = int32(gfx.FuncAdd)
	d.ints[gfx.BlendEquationAlpha] = int32(gfx.FuncAdd)
	d.ints[gfx.BlendSrcRGB] = int32(gfx.One)
	d.ints[gfx.BlendSrcAlpha] = int32(gfx.One)
	d.ints[gfx.BlendDstRGB] = int32(gfx.Zero)
	d.ints[gfx.BlendDstAlpha] = int32(gfx.Zero)
	d.ints[gfx.ActiveTextureUnit] = int32(gfx.Texture0)
	return d
}

func (d *Device) handle() uint32 {
	h := d.nextHandle
	d.nextHandle++
	return h
}

// RaiseError queues an error code for the next GetError calls.
func (d *Device) RaiseError(code gfx.Enum) { d.pendingErrors = append(d.pendingErrors, code) }

// ErrorsRaised counts every error the fake generated itself (bad uploads,
// unknown objects), whether or not it has been drained.
func (d *Device) ErrorsRaised() int { return d.errCount }

func (d *Device) fail(code gfx.Enum) {
	d.errCount++
	d.pendingErrors = append(d.pendingErrors, code)
}

// BufferSize reports the allocated size of buffer.
func (d *Device) BufferSize(buffer uint32) int { return d.buffers[buffer] }

// TextureInfo returns the texture object or nil.
func (d *Device) TextureInfo(tex uint32) *Texture { return d.textures[tex] }

// Label returns the debug label of handle.
func (d *Device) Label(handle uint32) string { return d.labels[handle] }

// Matrix returns the last matrix uploaded at location.
func (d *Device) Matrix(location int32) [16]float32 { return d.matrices[location] }

// UniformInt returns the last integer uploaded at location.
func (d *Device) UniformInt(location int32) int32 { return d.ints1[location] }

// AttribEnabled reports whether a vertex attribute array was enabled.
func (d *Device) AttribEnabled(index uint32) bool { return d.attribs[index] }

// Live reports whether handle still names an existing object.
func (d *Device) Live(handle uint32) bool {
	_, isBuffer := d.buffers[handle]
	return isBuffer || d.vaos[handle] || d.textures[handle] != nil ||
		d.shaders[handle] || d.programs[handle]
}

// SetInteger seeds an integer state value.
func (d *Device) SetInteger(pname gfx.Enum, v int32) { d.ints[pname] = v }

func (d *Device) boundElements() uint32 {
	return d.vaoElements[uint32(d.ints[gfx.VertexArrayBinding])]
}

func (d *Device) bufferFor(target gfx.Enum) uint32 {
	switch target {
	case gfx.ArrayBuffer:
		return uint32(d.ints[gfx.ArrayBufferBinding])
	case gfx.ElementArrayBuffer:
		return d.boundElements()
	}
	return 0
}

func (d *Device) GetInteger(pname gfx.Enum) int32 {
	d.Calls++
	switch pname {
	case gfx.MajorVersion:
		return d.Major
	case gfx.MinorVersion:
		return d.Minor
	case gfx.NumExtensions:
		return int32(len(d.Exts))
	case gfx.ElementArrayBinding:
		return int32(d.boundElements())
	case gfx.TextureBinding2D:
		return int32(d.unitTextures[d.ints[gfx.ActiveTextureUnit]])
	}
	return d.ints[pname]
}

func (d *Device) GetIntegerv(pname gfx.Enum, out []int32) {
	d.Calls++
	if pname == gfx.ScissorBox {
		copy(out, d.scissor[:])
		return
	}
	if len(out) > 0 {
		out[0] = d.GetInteger(pname)
	}
}

func (d *Device) GetString(name gfx.Enum) string {
	switch name {
	case gfx.Vendor:
		return "gfxtest"
	case gfx.Renderer:
		return "fake"
	case gfx.Version:
		return fmt.Sprintf("%d.%d fake", d.Major, d.Minor)
	}
	return ""
}

func (d *Device) GetStringi(name gfx.Enum, index uint32) string {
	if name == gfx.Extensions && int(index) < len(d.Exts) {
		return d.Exts[index]
	}
	return ""
}

func (d *Device) GetError() gfx.Enum {
	if len(d.pendingErrors) == 0 {
		return gfx.NoError
	}
	e := d.pendingErrors[0]
	d.pendingErrors = d.pendingErrors[1:]
	return e
}

func (d *Device) IsEnabled(c gfx.Enum) bool { return d.enabled[c] }
func (d *Device) Enable(c gfx.Enum)         { d.Calls++; d.enabled[c] = true }
func (d *Device) Disable(c gfx.Enum)        { d.Calls++; d.enabled[c] = false }

func (d *Device) ObjectLabel(_ gfx.Enum, handle uint32, label string) {
	d.labels[handle] = label
}

func (d *Device) CreateVertexArray() uint32 {
	h := d.handle()
	d.vaos[h] = true
	return h
}

func (d *Device) BindVertexArray(vao uint32) {
	d.Calls++
	if vao != 0 && !d.vaos[vao] {
		d.fail(0x0502)
		return
	}
	d.ints[gfx.VertexArrayBinding] = int32(vao)
}

func (d *Device) DeleteVertexArray(vao uint32) {
	d.Deleted[vao]++
	delete(d.vaos, vao)
	delete(d.vaoElements, vao)
	if uint32(d.ints[gfx.VertexArrayBinding]) == vao {
		d.ints[gfx.VertexArrayBinding] = 0
	}
}

func (d *Device) VertexAttribPointer(uint32, int32, gfx.Enum, bool, int32, int) {}

func (d *Device) EnableVertexAttribArray(index uint32) { d.attribs[index] = true }

func (d *Device) CreateBuffer() uint32 {
	h := d.handle()
	d.buffers[h] = 0
	return h
}

func (d *Device) BindBuffer(target gfx.Enum, buffer uint32) {
	d.Calls++
	switch target {
	case gfx.ArrayBuffer:
		d.ints[gfx.ArrayBufferBinding] = int32(buffer)
	case gfx.ElementArrayBuffer:
		d.vaoElements[uint32(d.ints[gfx.VertexArrayBinding])] = buffer
	}
}

func (d *Device) BufferData(target gfx.Enum, size int, _ unsafe.Pointer, _ gfx.Enum) {
	b := d.bufferFor(target)
	if b == 0 {
		d.fail(0x0502)
		return
	}
	d.buffers[b] = size
	d.Resizes = append(d.Resizes, size)
}

func (d *Device) BufferSubData(target gfx.Enum, offset, size int, _ unsafe.Pointer) {
	b := d.bufferFor(target)
	if b == 0 {
		d.fail(0x0502)
		return
	}
	if offset+size > d.buffers[b] {
		d.fail(0x0501)
		return
	}
	d.Uploads = append(d.Uploads, Upload{Target: target, Buffer: b, Offset: offset, Size: size})
}

func (d *Device) DeleteBuffer(buffer uint32) {
	d.Deleted[buffer]++
	delete(d.buffers, buffer)
}

func (d *Device) CreateTexture() uint32 {
	h := d.handle()
	d.textures[h] = &Texture{Params: map[gfx.Enum]int32{}}
	return h
}

func (d *Device) ActiveTexture(unit gfx.Enum) {
	d.Calls++
	d.ints[gfx.ActiveTextureUnit] = int32(unit)
}

func (d *Device) BindTexture(_ gfx.Enum, texture uint32) {
	d.Calls++
	d.unitTextures[d.ints[gfx.ActiveTextureUnit]] = texture
}

func (d *Device) boundTexture() *Texture {
	t := d.textures[d.unitTextures[d.ints[gfx.ActiveTextureUnit]]]
	if t == nil {
		d.fail(0x0502)
	}
	return t
}

func (d *Device) TexStorage2D(_ gfx.Enum, levels int32, _ gfx.Enum, width, height int32) {
	if t := d.boundTexture(); t != nil {
		t.Levels, t.Width, t.Height = levels, width, height
	}
}

func (d *Device) TexSubImage2D(_ gfx.Enum, _, _, _, _, _ int32, _, _ gfx.Enum, _ unsafe.Pointer) {
	if t := d.boundTexture(); t != nil {
		t.Uploaded = true
	}
}

func (d *Device) GenerateMipmap(gfx.Enum) {
	if t := d.boundTexture(); t != nil {
		t.Mipmapped = true
	}
}

func (d *Device) TexParameteri(_ gfx.Enum, pname gfx.Enum, param int32) {
	if t := d.boundTexture(); t != nil {
		t.Params[pname] = param
	}
}

func (d *Device) DeleteTexture(texture uint32) {
	d.Deleted[texture]++
	delete(d.textures, texture)
	for unit, t := range d.unitTextures {
		if t == texture {
			d.unitTextures[unit] = 0
		}
	}
}

func (d *Device) CreateShader(gfx.Enum) uint32 {
	h := d.handle()
	d.shaders[h] = true
	return h
}

func (d *Device) ShaderSource(uint32, string) {}
func (d *Device) CompileShader(uint32)        {}

func (d *Device) GetShaderi(_ uint32, pname gfx.Enum) int32 {
	if pname == gfx.CompileStatus && d.FailCompile {
		return 0
	}
	return 1
}

func (d *Device) ShaderInfoLog(uint32) string {
	if d.FailCompile {
		return "0:1(1): error: syntax error"
	}
	return ""
}

func (d *Device) DeleteShader(shader uint32) {
	d.Deleted[shader]++
	delete(d.shaders, shader)
}

func (d *Device) CreateProgram() uint32 {
	h := d.handle()
	d.programs[h] = true
	return h
}

func (d *Device) AttachShader(uint32, uint32) {}
func (d *Device) DetachShader(uint32, uint32) {}
func (d *Device) LinkProgram(uint32)          {}

func (d *Device) GetProgrami(_ uint32, pname gfx.Enum) int32 {
	if pname == gfx.LinkStatus && d.FailLink {
		return 0
	}
	return 1
}

func (d *Device) ProgramInfoLog(uint32) string {
	if d.FailLink {
		return "link error: missing main"
	}
	return ""
}

func (d *Device) UseProgram(program uint32) {
	d.Calls++
	d.ints[gfx.CurrentProgram] = int32(program)
}

func (d *Device) DeleteProgram(program uint32) {
	d.Deleted[program]++
	delete(d.programs, program)
}

func (d *Device) GetUniformLocation(_ uint32, name string) int32 {
	if loc, ok := d.uniformLocs[name]; ok {
		return loc
	}
	loc := int32(len(d.uniformLocs))
	d.uniformLocs[name] = loc
	return loc
}

func (d *Device) UniformMatrix4fv(location int32, m *[16]float32) { d.matrices[location] = *m }
func (d *Device) Uniform1i(location int32, v int32)               { d.ints1[location] = v }

func (d *Device) Scissor(x, y, width, height int32) {
	d.Calls++
	d.scissor = [4]int32{x, y, width, height}
}

func (d *Device) BlendEquation(mode gfx.Enum) { d.BlendEquationSeparate(mode, mode) }

func (d *Device) BlendEquationSeparate(modeRGB, modeAlpha gfx.Enum) {
	d.Calls++
	d.ints[gfx.BlendEquationRGB] = int32(modeRGB)
	d.ints[gfx.BlendEquationAlpha] = int32(modeAlpha)
}

func (d *Device) BlendFunc(src, dst gfx.Enum) { d.BlendFuncSeparate(src, dst, src, dst) }

func (d *Device) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gfx.Enum) {
	d.Calls++
	d.ints[gfx.BlendSrcRGB] = int32(srcRGB)
	d.ints[gfx.BlendDstRGB] = int32(dstRGB)
	d.ints[gfx.BlendSrcAlpha] = int32(srcAlpha)
	d.ints[gfx.BlendDstAlpha] = int32(dstAlpha)
}

func (d *Device) DrawElementsBaseVertex(_ gfx.Enum, count int32, _ gfx.Enum, offset int, baseVertex int32) {
	elems := d.boundElements()
	if elems == 0 || offset+int(count)*2 > d.buffers[elems] {
		d.fail(0x0502)
		return
	}
	d.Draws = append(d.Draws, Draw{
		Program:     uint32(d.ints[gfx.CurrentProgram]),
		VertexArray: uint32(d.ints[gfx.VertexArrayBinding]),
		Texture:     d.unitTextures[d.ints[gfx.ActiveTextureUnit]],
		Scissor:     d.scissor,
		Count:       count,
		Offset:      offset,
		BaseVertex:  baseVertex,
	})
}

var _ gfx.Device = (*Device)(nil)
