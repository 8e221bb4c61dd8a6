package srp

import (
	"math"
	"testing"
)

func TestLineRasterizeDrawsBothEndpoints(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.Clear()
	sp := solidTriangleShaderProgram([4]float64{1, 1, 1, 1})

	v := [2]VsOut{vsOutAt(-0.8, 0, 0, 1), vsOutAt(0.8, 0, 0, 1)}
	ln := setupLine(newArena(defaultArenaPageSize), v, fb)
	ln.rasterize(fb, sp, InterpolationPerspective)

	x0, y0 := int(math.Round(ln.ss[0].X)), int(math.Round(ln.ss[0].Y))
	x1, y1 := int(math.Round(ln.ss[1].X)), int(math.Round(ln.ss[1].Y))
	if fb.ColorAt(x0, y0) == 0 {
		t.Error("expected the first endpoint's pixel to be drawn")
	}
	if fb.ColorAt(x1, y1) == 0 {
		t.Error("expected the second endpoint's pixel to be drawn")
	}
}

func TestLineRasterizeHorizontalCoversRow(t *testing.T) {
	fb := NewFramebuffer(20, 20)
	fb.Clear()
	sp := solidTriangleShaderProgram([4]float64{1, 0, 0, 1})

	v := [2]VsOut{vsOutAt(-0.9, 0, 0, 1), vsOutAt(0.9, 0, 0, 1)}
	ln := setupLine(newArena(defaultArenaPageSize), v, fb)
	ln.rasterize(fb, sp, InterpolationPerspective)

	y := int(math.Round(ln.ss[0].Y))
	covered := 0
	for x := 0; x < 20; x++ {
		if fb.ColorAt(x, y) != 0 {
			covered++
		}
	}
	if covered < 10 {
		t.Errorf("expected a long horizontal line to cover many pixels, got %d", covered)
	}
}
