package srp

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// TextureWrap selects how out-of-[0,1] texture coordinates are handled.
type TextureWrap int

const (
	WrapRepeat TextureWrap = iota
	WrapClampToEdge
)

// TextureFilter selects the filtering mode. Only nearest is implemented;
// the constants exist so a caller's existing GL-style parameter values
// round-trip, per the reference implementation's parameter accessors.
type TextureFilter int

const (
	FilterNearest TextureFilter = iota
)

// Texture is a decoded RGB image sampled with nearest filtering and the
// configured wrap modes.
type Texture struct {
	width, height int
	rgb           []byte // tightly packed, top-down, 3 bytes per pixel

	WrapX, WrapY       TextureWrap
	FilterMag, FilterMin TextureFilter
}

// NewTexture decodes the image at path using Go's standard image.Decode
// registry — the core package registers PNG and JPEG via blank import, and
// additionally golang.org/x/image/bmp and golang.org/x/image/webp, so any
// of those four formats decode without further setup regardless of file
// extension. On failure it reports a high-severity error message and
// returns nil.
func NewTexture(path string, wrapX, wrapY TextureWrap, filterMag, filterMin TextureFilter) *Texture {
	f, err := os.Open(path)
	if err != nil {
		notify(MessageError, SeverityHigh, "NewTexture", "failed to open image %q: %v", path, err)
		return nil
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		notify(MessageError, SeverityHigh, "NewTexture", "failed to decode image %q: %v", path, err)
		return nil
	}
	Logger().Info("texture decoded", "path", path, "format", format)

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rgb := make([]byte, w*h*3)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rgb[i+0] = byte(r >> 8)
			rgb[i+1] = byte(g >> 8)
			rgb[i+2] = byte(b >> 8)
			i += 3
		}
	}

	return &Texture{
		width: w, height: h, rgb: rgb,
		WrapX: wrapX, WrapY: wrapY,
		FilterMag: filterMag, FilterMin: filterMin,
	}
}

func wrapCoord(c float64, mode TextureWrap) float64 {
	if c >= 0 && c <= 1 {
		return c
	}
	if mode == WrapRepeat {
		return c - math.Floor(c)
	}
	return math.Max(0, math.Min(1, c))
}

// Sample writes the nearest-filtered RGBA color at (u, v) into out. Alpha
// is always 1, since decoded textures are stored as 3-channel RGB.
func (t *Texture) Sample(u, v float64, out *[4]float64) {
	u = wrapCoord(u, t.WrapX)
	v = wrapCoord(v, t.WrapY)

	// V is flipped: NDC-style v=0 is the bottom of the image, but pixel
	// rows are stored top-down.
	x := float64(t.width-1) * u
	y := float64(t.height-1) * (1 - v)
	xi := int(x + 0.5)
	yi := int(y + 0.5)

	off := (yi*t.width + xi) * 3
	const inv255 = 1.0 / 255.0
	out[0] = float64(t.rgb[off+0]) * inv255
	out[1] = float64(t.rgb[off+1]) * inv255
	out[2] = float64(t.rgb[off+2]) * inv255
	out[3] = 1.0
}
