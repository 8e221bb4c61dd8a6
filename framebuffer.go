package srp

// Framebuffer holds a color plane and a depth plane, indexed row-major.
// Color is packed RGBA8888 (red as the most significant byte); depth is
// stored as float64 in [-1, 1].
type Framebuffer struct {
	Width, Height int
	color         []uint32
	depth         []float64
}

// NewFramebuffer allocates a framebuffer of the given dimensions. Contents
// are undefined until Clear is called.
func NewFramebuffer(width, height int) *Framebuffer {
	size := width * height
	return &Framebuffer{
		Width:  width,
		Height: height,
		color:  make([]uint32, size),
		depth:  make([]float64, size),
	}
}

// Clear sets every color texel to 0x00000000 and every depth texel to -1.0,
// the furthest representable depth.
func (fb *Framebuffer) Clear() {
	for i := range fb.color {
		fb.color[i] = 0
	}
	for i := range fb.depth {
		fb.depth[i] = -1.0
	}
}

func (fb *Framebuffer) index(x, y int) int {
	return y*fb.Width + x
}

// ColorAt returns the packed RGBA8888 word at (x, y). x and y must be
// in-range; the framebuffer does not bounds-check.
func (fb *Framebuffer) ColorAt(x, y int) uint32 {
	return fb.color[fb.index(x, y)]
}

// DepthAt returns the stored depth at (x, y).
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	return fb.depth[fb.index(x, y)]
}

// DepthTest reports whether depth passes the depth test at (x, y), i.e.
// whether it is strictly greater than the value already stored there.
func (fb *Framebuffer) DepthTest(x, y int, depth float64) bool {
	return depth > fb.depth[fb.index(x, y)]
}

// DrawPixel unconditionally writes both planes at (x, y). Callers
// (rasterizers) are responsible for guaranteeing depth is in [-1, 1] and
// (x, y) is in-range — DrawPixel does not clamp or bounds-check.
func (fb *Framebuffer) DrawPixel(x, y int, depth float64, color uint32) {
	i := fb.index(x, y)
	fb.color[i] = color
	fb.depth[i] = depth
}

// NDCToScreen maps a normalized-device-coordinate point to screen space.
// z passes through unchanged.
func (fb *Framebuffer) NDCToScreen(x, y, z float64) (sx, sy, sz float64) {
	sx = (float64(fb.Width-1) / 2) * (x + 1)
	sy = -(float64(fb.Height-1) / 2) * (y - 1)
	sz = z
	return
}

// InBounds reports whether the integer pixel (x, y) lies within the
// framebuffer.
func (fb *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}
