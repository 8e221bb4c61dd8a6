package srp

import "math"

// line is one line-segment primitive ready for rasterization.
type line struct {
	v    [2]VsOut
	invW [2]float64
	ss   [2]vec2

	// interp is the arena-owned scratch buffer rasterize interpolates each
	// fragment's varyings into, sized once at setup time.
	interp []float64

	id int
}

// setupLine perspective-divides both endpoints and maps them to screen
// space. The returned line is owned by a, and is only valid until a's next
// Reset.
func setupLine(a *arena, v [2]VsOut, fb *Framebuffer) *line {
	l := a.lines.new()
	l.v = v
	for i := range l.v {
		l.invW[i] = applyPerspectiveDivide(&l.v[i])
		x, y, z := fb.NDCToScreen(l.v[i].Position[0], l.v[i].Position[1], l.v[i].Position[2])
		l.ss[i] = vec2{x, y}
		l.v[i].Position[0], l.v[i].Position[1], l.v[i].Position[2] = x, y, z
	}
	l.interp = a.AllocFloat64(len(l.v[0].Varying))
	return l
}

// rasterize walks the segment with a DDA stepper, sampling both endpoints
// inclusively, interpolating position and varyings at each step.
func (l *line) rasterize(fb *Framebuffer, sp *ShaderProgram, mode InterpolationMode) {
	perspective := mode == InterpolationPerspective
	positions := [2][4]float64{l.v[0].Position, l.v[1].Position}
	varyings := [][]float64{l.v[0].Varying, l.v[1].Varying}
	interp := l.interp

	dx := l.ss[1].X - l.ss[0].X
	dy := l.ss[1].Y - l.ss[0].Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		steps = 1
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		weights := []float64{1 - t, t}

		x := l.ss[0].X + dx*t
		y := l.ss[0].Y + dy*t
		px, py := int(math.Round(x)), int(math.Round(y))

		pos := interpolatePosition(positions[:], weights, l.invW[:], perspective)
		interpolateAttributes(varyings, weights, l.invW[:], pos[3], perspective, interp)

		if !fb.InBounds(px, py) {
			continue
		}

		fsIn := FsIn{
			Uniform:      sp.Uniform,
			Interpolated: interp,
			FragCoord:    [4]float64{float64(px) + 0.5, float64(py) + 0.5, pos[2], pos[3]},
			FrontFacing:  true,
			PrimitiveID:  l.id,
		}
		emitFragment(fb, sp, px, py, &fsIn)
	}
}
