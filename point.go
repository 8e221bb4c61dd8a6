package srp

import "math"

// point is one point primitive ready for rasterization: its shaded vertex
// plus a stable primitive ID.
type point struct {
	v  VsOut
	id int
}

// rasterize perspective-divides the point's clip-space position, expands it
// into a square of side pointSize centered on its screen-space position, and
// emits a fragment for every pixel center inside the half-open square
// [center-pointSize/2, center+pointSize/2), clipped to the framebuffer bounds.
// Fragments go through the same depth-tested emitter as triangles and
// lines, so a point drawn behind existing geometry is discarded rather
// than overwriting it unconditionally.
func (p *point) rasterize(fb *Framebuffer, sp *ShaderProgram, pointSize float64) {
	invW := 1.0 / p.v.Position[3]
	sx, sy, sz := fb.NDCToScreen(p.v.Position[0]*invW, p.v.Position[1]*invW, p.v.Position[2]*invW)
	half := pointSize * 0.5

	minBX, minBY := sx-half, sy-half
	maxBX, maxBY := sx+half, sy+half

	minX := int(math.Floor(minBX))
	maxX := int(math.Floor(maxBX))
	minY := int(math.Floor(minBY))
	maxY := int(math.Floor(maxBY))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if px < minBX || px >= maxBX || py < minBY || py >= maxBY {
				continue
			}

			fsIn := FsIn{
				Uniform:      sp.Uniform,
				Interpolated: p.v.Varying,
				FragCoord:    [4]float64{px, py, sz, p.v.Position[3]},
				FrontFacing:  true,
				PrimitiveID:  p.id,
			}
			emitFragment(fb, sp, x, y, &fsIn)
		}
	}
}
