package srp

import "math"

// clipPlane identifies one of the six canonical homogeneous-clip-space
// half-spaces, tested in this fixed order.
type clipPlane int

const (
	planeLeft clipPlane = iota
	planeRight
	planeBottom
	planeTop
	planeNear
	planeFar
	planeCount
)

func planeDistance(pos [4]float64, p clipPlane) float64 {
	x, y, z, w := pos[0], pos[1], pos[2], pos[3]
	switch p {
	case planeLeft:
		return x + w
	case planeRight:
		return w - x
	case planeBottom:
		return y + w
	case planeTop:
		return w - y
	case planeNear:
		return z + w
	default: // planeFar
		return w - z
	}
}

func insidePlane(pos [4]float64, p clipPlane) bool {
	return planeDistance(pos, p) >= 0
}

// lerpVsOut returns the affine interpolation of a and b's position and
// varying data at weight t (0 -> a, 1 -> b), allocated fresh so the result
// doesn't alias either input.
func lerpVsOut(a, b *VsOut, t float64) VsOut {
	var out VsOut
	for i := range out.Position {
		out.Position[i] = a.Position[i]*(1-t) + b.Position[i]*t
	}
	out.Varying = make([]float64, len(a.Varying))
	for i := range out.Varying {
		out.Varying[i] = a.Varying[i]*(1-t) + b.Varying[i]*t
	}
	return out
}

func copyVsOut(v *VsOut) VsOut {
	out := *v
	out.Varying = append([]float64(nil), v.Varying...)
	return out
}

// clipTriangleAgainstPlane runs one Sutherland–Hodgman pass, returning the
// clipped polygon's vertices in a newly allocated slice.
func clipTriangleAgainstPlane(in []VsOut, plane clipPlane) []VsOut {
	if len(in) == 0 {
		return nil
	}
	out := make([]VsOut, 0, len(in)+1)
	for i := range in {
		curr := &in[i]
		next := &in[(i+1)%len(in)]

		currIn := insidePlane(curr.Position, plane)
		nextIn := insidePlane(next.Position, plane)

		switch {
		case currIn && nextIn:
			out = append(out, copyVsOut(next))
		case currIn != nextIn:
			da := planeDistance(curr.Position, plane)
			db := planeDistance(next.Position, plane)
			t := da / (da - db)
			out = append(out, lerpVsOut(curr, next, t))
			if !currIn && nextIn {
				out = append(out, copyVsOut(next))
			}
		}
	}
	return out
}

// clipTriangle clips a triangle against all six clip planes in homogeneous
// clip space and fan-triangulates the surviving convex polygon. It returns
// nil if the triangle is fully clipped.
func clipTriangle(v [3]VsOut) [][3]VsOut {
	poly := []VsOut{copyVsOut(&v[0]), copyVsOut(&v[1]), copyVsOut(&v[2])}

	for p := clipPlane(0); p < planeCount; p++ {
		poly = clipTriangleAgainstPlane(poly, p)
		if len(poly) == 0 {
			return nil
		}
	}

	tris := make([][3]VsOut, 0, len(poly)-2)
	for i := 1; i < len(poly)-1; i++ {
		tris = append(tris, [3]VsOut{poly[0], poly[i], poly[i+1]})
	}
	return tris
}

// clipLine clips a line segment against the six clip planes using
// Liang–Barsky. ok is false if the entire segment is outside the view
// volume.
func clipLine(v [2]VsOut) (out [2]VsOut, ok bool) {
	const eps = 1e-9
	t0, t1 := 0.0, 1.0

	for p := clipPlane(0); p < planeCount; p++ {
		da := planeDistance(v[0].Position, p)
		db := planeDistance(v[1].Position, p)

		if da < 0 && db < 0 {
			return out, false
		}
		if math.Abs(da-db) <= eps {
			continue
		}

		t := da / (da - db)
		if da < 0 {
			t0 = math.Max(t0, t)
		} else if db < 0 {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return out, false
		}
	}

	out[0], out[1] = v[0], v[1]
	if t0 > 0 {
		out[0] = lerpVsOut(&v[0], &v[1], t0)
	}
	if t1 < 1 {
		out[1] = lerpVsOut(&v[0], &v[1], t1)
	}
	return out, true
}
