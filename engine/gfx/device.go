package gfx

import "unsafe"

// Enum is a GPU enumerant. Values match the OpenGL enum values so a GL
// backend can pass them through unchanged.
type Enum uint32

const (
	NoError Enum = 0

	// State queries.
	VertexArrayBinding  Enum = 0x85B5
	ArrayBufferBinding  Enum = 0x8894
	ElementArrayBinding Enum = 0x8895
	CurrentProgram      Enum = 0x8B8D
	BlendEquationRGB    Enum = 0x8009
	BlendEquationAlpha  Enum = 0x883D
	BlendSrcRGB         Enum = 0x80C9
	BlendSrcAlpha       Enum = 0x80CB
	BlendDstRGB         Enum = 0x80C8
	BlendDstAlpha       Enum = 0x80CA
	ActiveTextureUnit   Enum = 0x84E0
	TextureBinding2D    Enum = 0x8069
	ScissorBox          Enum = 0x0C10
	MajorVersion        Enum = 0x821B
	MinorVersion        Enum = 0x821C
	NumExtensions       Enum = 0x821D
	Extensions          Enum = 0x1F03
	Vendor              Enum = 0x1F00
	Renderer            Enum = 0x1F01
	Version             Enum = 0x1F02

	// Capabilities.
	Blend       Enum = 0x0BE2
	ScissorTest Enum = 0x0C11
	CullFace    Enum = 0x0B44
	DepthTest   Enum = 0x0B71

	// Blending.
	FuncAdd          Enum = 0x8006
	One              Enum = 1
	Zero             Enum = 0
	SrcAlpha         Enum = 0x0302
	OneMinusSrcAlpha Enum = 0x0303

	// Buffers.
	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893
	DynamicDraw        Enum = 0x88E8
	StaticDraw         Enum = 0x88E4

	// Textures.
	Texture0         Enum = 0x84C0
	Texture2D        Enum = 0x0DE1
	RGBA8            Enum = 0x8058
	RGBA             Enum = 0x1908
	TextureWrapS     Enum = 0x2802
	TextureWrapT     Enum = 0x2803
	TextureMinFilter Enum = 0x2801
	TextureMagFilter Enum = 0x2800
	TextureMaxLevel  Enum = 0x813D
	Repeat           Enum = 0x2901
	Linear           Enum = 0x2601

	// Shaders.
	VertexShader   Enum = 0x8B31
	FragmentShader Enum = 0x8B30
	CompileStatus  Enum = 0x8B81
	LinkStatus     Enum = 0x8B82

	// Data types and primitives.
	UnsignedByte  Enum = 0x1401
	UnsignedShort Enum = 0x1403
	Float         Enum = 0x1406
	Triangles     Enum = 0x0004

	// Debug object identifiers.
	ObjectBuffer      Enum = 0x82E0
	ObjectShader      Enum = 0x82E1
	ObjectProgram     Enum = 0x82E2
	ObjectVertexArray Enum = 0x8074
	ObjectTexture     Enum = 0x1702
)

// Device is the slice of a rasterization API the engine drives. Handles are
// API object names; zero means "none".
type Device interface {
	GetInteger(pname Enum) int32
	GetIntegerv(pname Enum, out []int32)
	GetString(name Enum) string
	GetStringi(name Enum, index uint32) string
	GetError() Enum
	IsEnabled(cap Enum) bool
	Enable(cap Enum)
	Disable(cap Enum)

	// ObjectLabel attaches a debug name to an object. Callers only invoke it
	// when debug labels are supported, see DebugLabelsSupported.
	ObjectLabel(identifier Enum, handle uint32, label string)

	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	VertexAttribPointer(index uint32, size int32, typ Enum, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)

	CreateBuffer() uint32
	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, size int, data unsafe.Pointer, usage Enum)
	BufferSubData(target Enum, offset, size int, data unsafe.Pointer)
	DeleteBuffer(buffer uint32)

	CreateTexture() uint32
	ActiveTexture(unit Enum)
	BindTexture(target Enum, texture uint32)
	TexStorage2D(target Enum, levels int32, format Enum, width, height int32)
	TexSubImage2D(target Enum, level, x, y, width, height int32, format, typ Enum, pixels unsafe.Pointer)
	GenerateMipmap(target Enum)
	TexParameteri(target, pname Enum, param int32)
	DeleteTexture(texture uint32)

	CreateShader(typ Enum) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int32
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int32
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
	UniformMatrix4fv(location int32, m *[16]float32)
	Uniform1i(location int32, v int32)

	Scissor(x, y, width, height int32)
	BlendEquation(mode Enum)
	BlendEquationSeparate(modeRGB, modeAlpha Enum)
	BlendFunc(src, dst Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	DrawElementsBaseVertex(mode Enum, count int32, typ Enum, offset int, baseVertex int32)
}

// SetEnabled enables or disables cap.
func SetEnabled(dev Device, cap Enum, on bool) {
	if on {
		dev.Enable(cap)
	} else {
		dev.Disable(cap)
	}
}
