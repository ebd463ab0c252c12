package gfx

// State is a snapshot of the ambient pipeline state a renderer touches.
// Take one with CaptureState before changing anything and hand it back to
// Restore when done.
type State struct {
	VertexArray int32
	ArrayBuffer int32
	Program     int32
	Texture2D   int32
	ActiveUnit  int32

	BlendEquationRGB   int32
	BlendEquationAlpha int32
	BlendSrcRGB        int32
	BlendSrcAlpha      int32
	BlendDstRGB        int32
	BlendDstAlpha      int32

	Blend       bool
	ScissorTest bool
	CullFace    bool
	DepthTest   bool

	ScissorBox [4]int32
}

// CaptureState queries the current state. It leaves texture unit 0 active:
// Texture2D records unit 0's binding, which is the unit renderers draw with.
func CaptureState(dev Device) State {
	s := State{
		VertexArray: dev.GetInteger(VertexArrayBinding),
		ArrayBuffer: dev.GetInteger(ArrayBufferBinding),
		Program:     dev.GetInteger(CurrentProgram),

		Blend:       dev.IsEnabled(Blend),
		ScissorTest: dev.IsEnabled(ScissorTest),
		CullFace:    dev.IsEnabled(CullFace),
		DepthTest:   dev.IsEnabled(DepthTest),

		BlendEquationRGB:   dev.GetInteger(BlendEquationRGB),
		BlendEquationAlpha: dev.GetInteger(BlendEquationAlpha),
		BlendSrcRGB:        dev.GetInteger(BlendSrcRGB),
		BlendSrcAlpha:      dev.GetInteger(BlendSrcAlpha),
		BlendDstRGB:        dev.GetInteger(BlendDstRGB),
		BlendDstAlpha:      dev.GetInteger(BlendDstAlpha),

		ActiveUnit: dev.GetInteger(ActiveTextureUnit),
	}
	dev.ActiveTexture(Texture0)
	s.Texture2D = dev.GetInteger(TextureBinding2D)

	var box [4]int32
	dev.GetIntegerv(ScissorBox, box[:])
	s.ScissorBox = box
	return s
}

// Restore puts back everything s captured. The 2D texture is rebound while
// unit 0 is active, and blend equation/factors go back before the blend
// enable flag.
func (s State) Restore(dev Device) {
	dev.ActiveTexture(Texture0)
	dev.BindTexture(Texture2D, uint32(s.Texture2D))
	dev.ActiveTexture(Enum(s.ActiveUnit))
	dev.UseProgram(uint32(s.Program))
	dev.BindVertexArray(uint32(s.VertexArray))
	dev.Scissor(s.ScissorBox[0], s.ScissorBox[1], s.ScissorBox[2], s.ScissorBox[3])
	dev.BindBuffer(ArrayBuffer, uint32(s.ArrayBuffer))

	dev.BlendEquationSeparate(Enum(s.BlendEquationRGB), Enum(s.BlendEquationAlpha))
	dev.BlendFuncSeparate(
		Enum(s.BlendSrcRGB),
		Enum(s.BlendDstRGB),
		Enum(s.BlendSrcAlpha),
		Enum(s.BlendDstAlpha),
	)

	SetEnabled(dev, Blend, s.Blend)
	SetEnabled(dev, DepthTest, s.DepthTest)
	SetEnabled(dev, CullFace, s.CullFace)
	SetEnabled(dev, ScissorTest, s.ScissorTest)
}
