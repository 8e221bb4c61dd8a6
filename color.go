package srp

// RGBA is a floating-point color with each component in [0, 1]. Fragment
// shaders produce FsOut.Color as a raw [4]float64 (see fragment.go); RGBA is
// the convenience type callers build shader inputs and expected pixels with.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// clamp255 restricts a value to [0, 255].
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// PackRGBA8888 converts a [4]float64 color (each channel in [0, 1]) into a
// single RGBA8888 word with red as the most significant byte, per the
// framebuffer's color plane format. Each channel is clamped to [0, 255]
// after scaling by 255 and truncated, not rounded, matching the reference
// pipeline's implicit double-to-uint8_t conversion.
func PackRGBA8888(c [4]float64) uint32 {
	r := uint32(clamp255(c[0] * 255))
	g := uint32(clamp255(c[1] * 255))
	b := uint32(clamp255(c[2] * 255))
	a := uint32(clamp255(c[3] * 255))
	return r<<24 | g<<16 | b<<8 | a
}

// Red is a common opaque color, used by tests as a convenient shader-input
// value.
var Red = RGB(1, 0, 0)
