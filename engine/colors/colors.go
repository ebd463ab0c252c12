package colors

// Color is straight (non-premultiplied) RGBA in [0..1].
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Red      = Color{1, 0, 0, 1}
	Yellow   = Color{1, 1, 0, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
	Slate    = Color{0.45, 0.55, 0.60, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Packed returns the color as 0xAABBGGRR, the byte order GUI vertex colors
// use.
func (c Color) Packed() uint32 {
	var out uint32
	for i := 3; i >= 0; i-- {
		v := c[i]
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		out = out<<8 | uint32(v*255+0.5)
	}
	return out
}
