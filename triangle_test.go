package srp

import "testing"

func TestSetupTriangleCullsBackFace(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	// Clockwise in NDC (front face is CCW by default) -> back face, culled.
	v := [3]VsOut{vsOutAt(-0.5, 0.5, 0, 1), vsOutAt(0.5, 0.5, 0, 1), vsOutAt(0, -0.5, 0, 1)}
	tri := setupTriangle(newArena(defaultArenaPageSize), v, fb, CullBack, FrontFaceCCW)
	if tri != nil {
		t.Error("expected clockwise triangle to be culled as a back face")
	}
}

func TestSetupTriangleKeepsFrontFace(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	// Counter-clockwise in NDC -> front face, not culled.
	v := [3]VsOut{vsOutAt(-0.5, -0.5, 0, 1), vsOutAt(0.5, -0.5, 0, 1), vsOutAt(0, 0.5, 0, 1)}
	tri := setupTriangle(newArena(defaultArenaPageSize), v, fb, CullBack, FrontFaceCCW)
	if tri == nil {
		t.Fatal("expected counter-clockwise triangle to survive back-face culling")
	}
	if !tri.isFrontFacing {
		t.Error("expected isFrontFacing = true")
	}
}

func TestSetupTriangleCullNoneKeepsBothWindings(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	cw := [3]VsOut{vsOutAt(-0.5, 0.5, 0, 1), vsOutAt(0.5, 0.5, 0, 1), vsOutAt(0, -0.5, 0, 1)}
	tri := setupTriangle(newArena(defaultArenaPageSize), cw, fb, CullNone, FrontFaceCCW)
	if tri == nil {
		t.Fatal("CullNone should never cull")
	}
}

func TestSetupTriangleDegenerateIsNil(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	v := [3]VsOut{vsOutAt(0, 0, 0, 1), vsOutAt(0.5, 0, 0, 1), vsOutAt(1, 0, 0, 1)} // collinear
	tri := setupTriangle(newArena(defaultArenaPageSize), v, fb, CullNone, FrontFaceCCW)
	if tri != nil {
		t.Error("expected degenerate (collinear) triangle to be rejected")
	}
}

func solidTriangleShaderProgram(color [4]float64) *ShaderProgram {
	return &ShaderProgram{
		VS: &VertexShader{Layout: nil},
		FS: &FragmentShader{
			Shader: func(in *FsIn, out *FsOut) {
				out.Color = color
			},
		},
	}
}

func TestTriangleRasterizeFillsInteriorPixel(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.Clear()
	sp := solidTriangleShaderProgram([4]float64{1, 0, 0, 1})

	v := [3]VsOut{vsOutAt(-0.8, -0.8, 0, 1), vsOutAt(0.8, -0.8, 0, 1), vsOutAt(0, 0.8, 0, 1)}
	tri := setupTriangle(newArena(defaultArenaPageSize), v, fb, CullBack, FrontFaceCCW)
	if tri == nil {
		t.Fatal("triangle unexpectedly culled or degenerate")
	}
	tri.rasterize(fb, sp, InterpolationPerspective)

	if fb.ColorAt(5, 5) == 0 {
		t.Error("expected center pixel to be covered by the triangle")
	}
	if fb.ColorAt(0, 0) != 0 {
		t.Error("expected corner pixel outside the triangle to remain untouched")
	}
}

func TestTriangleRasterizeRespectsDepthTest(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.Clear()
	sp := solidTriangleShaderProgram([4]float64{0, 1, 0, 1})

	// Pre-seed a closer depth at the center pixel so the triangle's
	// z=0 fragment loses the depth test there.
	fb.DrawPixel(5, 5, 0.9, 0xAABBCCDD)

	v := [3]VsOut{vsOutAt(-0.8, -0.8, 0, 1), vsOutAt(0.8, -0.8, 0, 1), vsOutAt(0, 0.8, 0, 1)}
	tri := setupTriangle(newArena(defaultArenaPageSize), v, fb, CullBack, FrontFaceCCW)
	tri.rasterize(fb, sp, InterpolationPerspective)

	if fb.ColorAt(5, 5) != 0xAABBCCDD {
		t.Error("closer pre-existing depth should have prevented an overwrite")
	}
}

func TestTriangleRasterizeSharedEdgeHasNoOverdraw(t *testing.T) {
	// Two CCW triangles splitting a square along its diagonal share an
	// edge from (-1,-1) to (1,1). Under the top-left fill rule, each
	// covered pixel belongs to exactly one of the two triangles.
	lower := [3]VsOut{vsOutAt(-1, -1, 0, 1), vsOutAt(1, -1, 0, 1), vsOutAt(1, 1, 0, 1)}
	upper := [3]VsOut{vsOutAt(-1, -1, 0, 1), vsOutAt(1, 1, 0, 1), vsOutAt(-1, 1, 0, 1)}

	fbA := NewFramebuffer(20, 20)
	fbA.Clear()
	spA := solidTriangleShaderProgram([4]float64{1, 0, 0, 1})
	triA := setupTriangle(newArena(defaultArenaPageSize), lower, fbA, CullBack, FrontFaceCCW)
	if triA == nil {
		t.Fatal("lower triangle unexpectedly culled or degenerate")
	}
	triA.rasterize(fbA, spA, InterpolationPerspective)

	fbB := NewFramebuffer(20, 20)
	fbB.Clear()
	spB := solidTriangleShaderProgram([4]float64{0, 0, 1, 1})
	triB := setupTriangle(newArena(defaultArenaPageSize), upper, fbB, CullBack, FrontFaceCCW)
	if triB == nil {
		t.Fatal("upper triangle unexpectedly culled or degenerate")
	}
	triB.rasterize(fbB, spB, InterpolationPerspective)

	doubleCovered := 0
	anyCovered := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			coveredA := fbA.ColorAt(x, y) != 0
			coveredB := fbB.ColorAt(x, y) != 0
			if coveredA || coveredB {
				anyCovered++
			}
			if coveredA && coveredB {
				doubleCovered++
			}
		}
	}
	if doubleCovered != 0 {
		t.Errorf("expected no pixel covered by both triangles along the shared edge, got %d", doubleCovered)
	}
	if anyCovered == 0 {
		t.Fatal("expected at least one triangle to cover pixels")
	}
}
