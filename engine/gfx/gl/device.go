package glbackend

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/hubastard/imbridge/engine/gfx"
)

// Device implements gfx.Device on the current OpenGL context. gl.Init must
// have run on this thread (platform.NewGLFWWindow does it).
type Device struct{}

func NewDevice() *Device { return &Device{} }

func (*Device) GetInteger(pname gfx.Enum) int32 {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return v
}

func (*Device) GetIntegerv(pname gfx.Enum, out []int32) {
	if len(out) == 0 {
		return
	}
	gl.GetIntegerv(uint32(pname), &out[0])
}

func (*Device) GetString(name gfx.Enum) string {
	s := gl.GetString(uint32(name))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (*Device) GetStringi(name gfx.Enum, index uint32) string {
	s := gl.GetStringi(uint32(name), index)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (*Device) GetError() gfx.Enum        { return gfx.Enum(gl.GetError()) }
func (*Device) IsEnabled(c gfx.Enum) bool { return gl.IsEnabled(uint32(c)) }
func (*Device) Enable(c gfx.Enum)         { gl.Enable(uint32(c)) }
func (*Device) Disable(c gfx.Enum)        { gl.Disable(uint32(c)) }

func (*Device) ObjectLabel(identifier gfx.Enum, handle uint32, label string) {
	gl.ObjectLabel(uint32(identifier), handle, int32(len(label)), gl.Str(label+"\x00"))
}

// --- vertex arrays & buffers ---

func (*Device) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (*Device) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (*Device) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (*Device) VertexAttribPointer(index uint32, size int32, typ gfx.Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, uint32(typ), normalized, stride, unsafe.Pointer(uintptr(offset)))
}

func (*Device) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (*Device) CreateBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (*Device) BindBuffer(target gfx.Enum, buffer uint32) { gl.BindBuffer(uint32(target), buffer) }

func (*Device) BufferData(target gfx.Enum, size int, data unsafe.Pointer, usage gfx.Enum) {
	gl.BufferData(uint32(target), size, data, uint32(usage))
}

func (*Device) BufferSubData(target gfx.Enum, offset, size int, data unsafe.Pointer) {
	gl.BufferSubData(uint32(target), offset, size, data)
}

func (*Device) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

// --- textures ---

func (*Device) CreateTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}

func (*Device) ActiveTexture(unit gfx.Enum) { gl.ActiveTexture(uint32(unit)) }

func (*Device) BindTexture(target gfx.Enum, texture uint32) { gl.BindTexture(uint32(target), texture) }

func (*Device) TexStorage2D(target gfx.Enum, levels int32, format gfx.Enum, width, height int32) {
	gl.TexStorage2D(uint32(target), levels, uint32(format), width, height)
}

func (*Device) TexSubImage2D(target gfx.Enum, level, x, y, width, height int32, format, typ gfx.Enum, pixels unsafe.Pointer) {
	gl.TexSubImage2D(uint32(target), level, x, y, width, height, uint32(format), uint32(typ), pixels)
}

func (*Device) GenerateMipmap(target gfx.Enum) { gl.GenerateMipmap(uint32(target)) }

func (*Device) TexParameteri(target, pname gfx.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (*Device) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

// --- shaders & programs ---

func (*Device) CreateShader(typ gfx.Enum) uint32 { return gl.CreateShader(uint32(typ)) }

func (*Device) ShaderSource(shader uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csrc, nil)
}

func (*Device) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (*Device) GetShaderi(shader uint32, pname gfx.Enum) int32 {
	var v int32
	gl.GetShaderiv(shader, uint32(pname), &v)
	return v
}

func (*Device) ShaderInfoLog(shader uint32) string {
	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen))
	gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*Device) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (*Device) CreateProgram() uint32               { return gl.CreateProgram() }
func (*Device) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (*Device) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }
func (*Device) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (*Device) GetProgrami(program uint32, pname gfx.Enum) int32 {
	var v int32
	gl.GetProgramiv(program, uint32(pname), &v)
	return v
}

func (*Device) ProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen))
	gl.GetProgramInfoLog(program, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*Device) UseProgram(program uint32)    { gl.UseProgram(program) }
func (*Device) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (*Device) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (*Device) UniformMatrix4fv(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (*Device) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

// --- fixed-function state & draws ---

func (*Device) Scissor(x, y, width, height int32) { gl.Scissor(x, y, width, height) }

func (*Device) BlendEquation(mode gfx.Enum) { gl.BlendEquation(uint32(mode)) }

func (*Device) BlendEquationSeparate(modeRGB, modeAlpha gfx.Enum) {
	gl.BlendEquationSeparate(uint32(modeRGB), uint32(modeAlpha))
}

func (*Device) BlendFunc(src, dst gfx.Enum) { gl.BlendFunc(uint32(src), uint32(dst)) }

func (*Device) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gfx.Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (*Device) DrawElementsBaseVertex(mode gfx.Enum, count int32, typ gfx.Enum, offset int, baseVertex int32) {
	gl.DrawElementsBaseVertex(uint32(mode), count, uint32(typ), unsafe.Pointer(uintptr(offset)), baseVertex)
}

var _ gfx.Device = (*Device)(nil)
