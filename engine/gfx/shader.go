package gfx

// CompileShader creates and compiles one shader stage. A failed compile is
// logged with the driver's info log and the handle is returned anyway.
func CompileShader(dev Device, labels Labeler, name string, typ Enum, src string) uint32 {
	sh := dev.CreateShader(typ)
	labels.Label(ObjectShader, sh, "Shader: "+name)

	dev.ShaderSource(sh, src)
	dev.CompileShader(sh)

	if dev.GetShaderi(sh, CompileStatus) == 0 {
		Logger().Error("shader compile failed",
			"shader", name, "stage", stageName(typ), "log", dev.ShaderInfoLog(sh))
	}
	return sh
}

// CreateProgram compiles vsSrc and fsSrc and links them. Like
// CompileShader it never fails: link errors are logged and the (possibly
// unusable) program is returned. The stage objects are detached and deleted
// before returning.
func CreateProgram(dev Device, labels Labeler, name, vsSrc, fsSrc string) uint32 {
	prog := dev.CreateProgram()
	labels.Label(ObjectProgram, prog, "Program: "+name)

	vs := CompileShader(dev, labels, name, VertexShader, vsSrc)
	fs := CompileShader(dev, labels, name, FragmentShader, fsSrc)

	dev.AttachShader(prog, vs)
	dev.AttachShader(prog, fs)
	dev.LinkProgram(prog)

	if dev.GetProgrami(prog, LinkStatus) == 0 {
		Logger().Error("program link failed", "program", name, "log", dev.ProgramInfoLog(prog))
	}

	dev.DetachShader(prog, vs)
	dev.DetachShader(prog, fs)
	dev.DeleteShader(vs)
	dev.DeleteShader(fs)

	Logger().Debug("program created", "program", name, "handle", prog)
	return prog
}

func stageName(typ Enum) string {
	switch typ {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}
