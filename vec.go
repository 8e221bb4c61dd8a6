package srp

// vec2 is a 2D screen-space point/displacement used by the triangle
// rasterizer's edge and barycentric setup.
type vec2 struct {
	X, Y float64
}

func (v vec2) sub(w vec2) vec2 {
	return vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// cross returns the z-component of the 3D cross product of v and w, i.e.
// twice the signed area of the parallelogram they span.
func (v vec2) cross(w vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}
