package srp

import "math"

const epsilon = 1e-9

// triangle holds one clipped, winding-normalized triangle ready for
// scanline rasterization.
type triangle struct {
	v    [3]VsOut
	invW [3]float64
	ss   [3]vec2
	edge [3]vec2

	isFrontFacing bool

	minX, minY, maxX, maxY int

	lambda, lambdaRow, dldx, dldy [3]float64
	edgeTL                        [3]bool

	// interp is the arena-owned scratch buffer rasterize interpolates each
	// fragment's varyings into, sized once at setup time.
	interp []float64

	id int
}

// setupTriangle perspective-divides v, applies culling, screen-maps, and
// precomputes barycentric setup. It returns nil if the triangle should be
// culled or is degenerate. The returned triangle is owned by a, and is only
// valid until a's next Reset.
func setupTriangle(a *arena, v [3]VsOut, fb *Framebuffer, cullFace CullFace, frontFace FrontFace) *triangle {
	tri := a.triangles.new()
	tri.v = v
	for i := range tri.v {
		tri.invW[i] = applyPerspectiveDivide(&tri.v[i])
	}

	edge0 := vec2{tri.v[1].Position[0] - tri.v[0].Position[0], tri.v[1].Position[1] - tri.v[0].Position[1]}
	edge1 := vec2{tri.v[2].Position[0] - tri.v[0].Position[0], tri.v[2].Position[1] - tri.v[0].Position[1]}
	signedArea := edge0.cross(edge1)
	isCCW := signedArea > 0

	if cullFace == CullFrontAndBack {
		return nil
	}
	frontFacing := (signedArea > 0) == (frontFace == FrontFaceCCW)
	cull := (frontFacing && cullFace == CullFront) || (!frontFacing && cullFace == CullBack)
	tri.isFrontFacing = frontFacing
	if cull {
		return nil
	}

	if !isCCW {
		tri.v[1], tri.v[2] = tri.v[2], tri.v[1]
		tri.invW[1], tri.invW[2] = tri.invW[2], tri.invW[1]
	}

	for i := range tri.ss {
		x, y, z := fb.NDCToScreen(tri.v[i].Position[0], tri.v[i].Position[1], tri.v[i].Position[2])
		tri.ss[i] = vec2{x, y}
		tri.v[i].Position[0], tri.v[i].Position[1], tri.v[i].Position[2] = x, y, z
	}
	for i := range tri.edge {
		tri.edge[i] = tri.ss[(i+1)%3].sub(tri.ss[i])
	}

	areaX2 := math.Abs(tri.edge[0].cross(tri.edge[2]))
	if areaX2 <= epsilon {
		return nil
	}

	tri.minX = int(math.Floor(math.Min(tri.ss[0].X, math.Min(tri.ss[1].X, tri.ss[2].X))))
	tri.minY = int(math.Floor(math.Min(tri.ss[0].Y, math.Min(tri.ss[1].Y, tri.ss[2].Y))))
	tri.maxX = int(math.Ceil(math.Max(tri.ss[0].X, math.Max(tri.ss[1].X, tri.ss[2].X))))
	tri.maxY = int(math.Ceil(math.Max(tri.ss[0].Y, math.Max(tri.ss[1].Y, tri.ss[2].Y))))

	point := vec2{float64(tri.minX) + 0.5, float64(tri.minY) + 0.5}
	ap := point.sub(tri.ss[0])
	bp := point.sub(tri.ss[1])
	cp := point.sub(tri.ss[2])

	tri.lambda[0] = bp.cross(tri.edge[1]) / areaX2
	tri.lambda[1] = cp.cross(tri.edge[2]) / areaX2
	tri.lambda[2] = ap.cross(tri.edge[0]) / areaX2

	tri.dldx[0] = tri.edge[1].Y / areaX2
	tri.dldx[1] = tri.edge[2].Y / areaX2
	tri.dldx[2] = tri.edge[0].Y / areaX2

	tri.dldy[0] = -tri.edge[1].X / areaX2
	tri.dldy[1] = -tri.edge[2].X / areaX2
	tri.dldy[2] = -tri.edge[0].X / areaX2

	tri.lambdaRow = tri.lambda
	for i := range tri.edgeTL {
		tri.edgeTL[i] = isEdgeFlatTopOrLeft(tri.edge[i])
	}

	tri.interp = a.AllocFloat64(len(tri.v[0].Varying))

	return tri
}

func isEdgeFlatTopOrLeft(edge vec2) bool {
	return (edge.X > 0 && math.Abs(edge.Y) <= epsilon) || edge.Y < 0
}

// rasterize scans the triangle's AABB, running the fragment emitter for
// every pixel covered under the top-left fill rule.
func (tri *triangle) rasterize(fb *Framebuffer, sp *ShaderProgram, mode InterpolationMode) {
	perspective := mode == InterpolationPerspective
	positions := [3][4]float64{tri.v[0].Position, tri.v[1].Position, tri.v[2].Position}
	varyings := [][]float64{tri.v[0].Varying, tri.v[1].Varying, tri.v[2].Varying}
	interp := tri.interp

	for y := tri.minY; y < tri.maxY; y++ {
		for x := tri.minX; x < tri.maxX; x++ {
			covered := true
			for i := 0; i < 3; i++ {
				if math.Abs(tri.lambda[i]) <= epsilon && !tri.edgeTL[i] {
					covered = false
					break
				}
			}
			if covered && tri.lambda[0] >= 0 && tri.lambda[1] >= 0 && tri.lambda[2] >= 0 {
				pos := interpolatePosition(positions[:], tri.lambda[:], tri.invW[:], perspective)
				interpolateAttributes(varyings, tri.lambda[:], tri.invW[:], pos[3], perspective, interp)

				fsIn := FsIn{
					Uniform:      sp.Uniform,
					Interpolated: interp,
					FragCoord:    [4]float64{float64(x) + 0.5, float64(y) + 0.5, pos[2], pos[3]},
					FrontFacing:  tri.isFrontFacing,
					PrimitiveID:  tri.id,
				}
				emitFragment(fb, sp, x, y, &fsIn)
			}

			for i := 0; i < 3; i++ {
				tri.lambda[i] += tri.dldx[i]
			}
		}
		for i := 0; i < 3; i++ {
			tri.lambdaRow[i] += tri.dldy[i]
			tri.lambda[i] = tri.lambdaRow[i]
		}
	}
}
