package glbackend

import (
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"

	"github.com/hubastard/imbridge/engine/core"
	"github.com/hubastard/imbridge/engine/gfx"
)

// RendererGL is the host renderer: it clears the frame and draws a demo
// triangle with depth testing on, the state a GUI pass has to leave intact.
type RendererGL struct {
	win     core.Window
	dev     *Device
	program uint32
	vao     uint32
	vbo     uint32
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win, dev: NewDevice()}
	r.Init()
	return r, nil
}

// Device returns the gfx.Device the renderer draws with.
func (r *RendererGL) Device() *Device { return r.dev }

func (r *RendererGL) Init() {
	dev := r.dev
	labels := gfx.NewLabeler(dev)

	r.program = gfx.CreateProgram(dev, labels, "Triangle", vertexSource, fragmentSource)

	// Triangle vertices: pos (x,y), color (r,g,b)
	verts := []float32{
		//  X,     Y,     R,   G,   B
		0.0, 0.6, 1.0, 0.2, 0.2,
		-0.6, -0.6, 0.2, 1.0, 0.2,
		0.6, -0.6, 0.2, 0.2, 1.0,
	}

	r.vao = dev.CreateVertexArray()
	dev.BindVertexArray(r.vao)
	labels.Label(gfx.ObjectVertexArray, r.vao, "Triangle")

	r.vbo = dev.CreateBuffer()
	dev.BindBuffer(gfx.ArrayBuffer, r.vbo)
	labels.Label(gfx.ObjectBuffer, r.vbo, "VBO: Triangle")
	dev.BufferData(gfx.ArrayBuffer, len(verts)*4, unsafe.Pointer(&verts[0]), gfx.StaticDraw)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec3 aColor;
	const stride = 5 * 4 // bytes
	dev.EnableVertexAttribArray(0)
	dev.VertexAttribPointer(0, 2, gfx.Float, false, stride, 0)
	dev.EnableVertexAttribArray(1)
	dev.VertexAttribPointer(1, 3, gfx.Float, false, stride, 2*4)

	dev.BindVertexArray(0)
	dev.BindBuffer(gfx.ArrayBuffer, 0)

	dev.Enable(gfx.DepthTest)
	gfx.CheckError(dev, "Triangle setup")
}

func (r *RendererGL) Shutdown() {
	if r.vbo != 0 {
		r.dev.DeleteBuffer(r.vbo)
	}
	if r.vao != 0 {
		r.dev.DeleteVertexArray(r.vao)
	}
	if r.program != 0 {
		r.dev.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) DrawDemoTriangle() {
	r.dev.UseProgram(r.program)
	r.dev.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	r.dev.BindVertexArray(0)
	r.dev.UseProgram(0)
}

func (r *RendererGL) GPUVendor() string   { return r.dev.GetString(gfx.Vendor) }
func (r *RendererGL) GPURenderer() string { return r.dev.GetString(gfx.Renderer) }
func (r *RendererGL) GPUVersion() string  { return r.dev.GetString(gfx.Version) }

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec3 aColor;
out vec3 vColor;
void main() {
    vColor = aColor;
    gl_Position = vec4(aPos, 0.0, 1.0);
}
`

const fragmentSource = `
#version 330 core
in vec3 vColor;
out vec4 FragColor;
void main() {
    FragColor = vec4(vColor, 1.0);
}
`
