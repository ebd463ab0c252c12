package gfx

import "fmt"

// CheckError drains the device error queue and logs each error under title
// with a 1-based occurrence index. It returns how many errors were seen;
// errors are never propagated.
func CheckError(dev Device, title string) int {
	n := 0
	for {
		code := dev.GetError()
		if code == NoError {
			return n
		}
		n++
		Logger().Warn(fmt.Sprintf("%s (%d): %s", title, n, ErrorString(code)),
			"title", title, "index", n, "code", uint32(code))
	}
}

// ErrorString names the common error codes.
func ErrorString(code Enum) string {
	switch code {
	case 0x0500:
		return "InvalidEnum"
	case 0x0501:
		return "InvalidValue"
	case 0x0502:
		return "InvalidOperation"
	case 0x0503:
		return "StackOverflow"
	case 0x0504:
		return "StackUnderflow"
	case 0x0505:
		return "OutOfMemory"
	case 0x0506:
		return "InvalidFramebufferOperation"
	default:
		return fmt.Sprintf("0x%04X", uint32(code))
	}
}

// DebugLabelsSupported reports whether ObjectLabel may be used: either a
// 4.3+ context or the KHR_debug extension.
func DebugLabelsSupported(dev Device) bool {
	major := dev.GetInteger(MajorVersion)
	minor := dev.GetInteger(MinorVersion)
	if major > 4 || (major == 4 && minor >= 3) {
		return true
	}
	return ExtensionSupported(dev, "KHR_debug")
}

// ExtensionSupported scans the indexed extension list for name. Both the
// bare and the "GL_" prefixed spelling match.
func ExtensionSupported(dev Device, name string) bool {
	n := dev.GetInteger(NumExtensions)
	for i := int32(0); i < n; i++ {
		ext := dev.GetStringi(Extensions, uint32(i))
		if ext == name || ext == "GL_"+name {
			return true
		}
	}
	return false
}

// Labeler names device objects when the device supports debug labels and
// does nothing otherwise.
type Labeler struct {
	dev     Device
	enabled bool
}

// NewLabeler probes the device once.
func NewLabeler(dev Device) Labeler {
	return Labeler{dev: dev, enabled: DebugLabelsSupported(dev)}
}

func (l Labeler) Enabled() bool { return l.enabled }

func (l Labeler) Label(identifier Enum, handle uint32, name string) {
	if !l.enabled {
		return
	}
	l.dev.ObjectLabel(identifier, handle, name)
}
