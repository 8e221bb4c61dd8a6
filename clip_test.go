package srp

import "testing"

func vsOutAt(x, y, z, w float64) VsOut {
	return VsOut{Position: [4]float64{x, y, z, w}, Varying: []float64{x, y}}
}

func TestClipTriangleFullyInsideUnchanged(t *testing.T) {
	v := [3]VsOut{
		vsOutAt(-0.5, -0.5, 0, 1),
		vsOutAt(0.5, -0.5, 0, 1),
		vsOutAt(0, 0.5, 0, 1),
	}
	tris := clipTriangle(v)
	if len(tris) != 1 {
		t.Fatalf("got %d triangles, want 1", len(tris))
	}
}

func TestClipTriangleFullyOutsideIsClipped(t *testing.T) {
	v := [3]VsOut{
		vsOutAt(5, 5, 0, 1),
		vsOutAt(6, 5, 0, 1),
		vsOutAt(5, 6, 0, 1),
	}
	tris := clipTriangle(v)
	if tris != nil {
		t.Fatalf("got %d triangles, want fully clipped (nil)", len(tris))
	}
}

func TestClipTrianglePartialProducesMultiple(t *testing.T) {
	// One vertex far outside the right plane (x > w), two inside.
	v := [3]VsOut{
		vsOutAt(-0.5, -0.5, 0, 1),
		vsOutAt(0.5, -0.5, 0, 1),
		vsOutAt(3, 1, 0, 1),
	}
	tris := clipTriangle(v)
	if len(tris) < 2 {
		t.Fatalf("got %d triangles, want the clipped quad fanned into at least 2", len(tris))
	}
	for _, tri := range tris {
		for _, vtx := range tri {
			if vtx.Position[0] > vtx.Position[3]+1e-9 {
				t.Errorf("vertex %v violates right plane after clipping", vtx.Position)
			}
		}
	}
}

func TestClipLineFullyInsideUnchanged(t *testing.T) {
	v := [2]VsOut{vsOutAt(-0.5, 0, 0, 1), vsOutAt(0.5, 0, 0, 1)}
	out, ok := clipLine(v)
	if !ok {
		t.Fatal("expected line to survive clipping")
	}
	if out[0].Position != v[0].Position || out[1].Position != v[1].Position {
		t.Errorf("fully-inside line was modified: %v", out)
	}
}

func TestClipLineFullyOutsideIsClipped(t *testing.T) {
	v := [2]VsOut{vsOutAt(5, 5, 0, 1), vsOutAt(6, 6, 0, 1)}
	_, ok := clipLine(v)
	if ok {
		t.Fatal("expected line to be fully clipped")
	}
}

func TestClipLinePartialTrimsOneEndpoint(t *testing.T) {
	// Second endpoint outside the right plane; first inside.
	v := [2]VsOut{vsOutAt(0, 0, 0, 1), vsOutAt(3, 0, 0, 1)}
	out, ok := clipLine(v)
	if !ok {
		t.Fatal("expected line to partially survive clipping")
	}
	if out[0].Position != v[0].Position {
		t.Errorf("first endpoint should be unchanged, got %v", out[0].Position)
	}
	if out[1].Position[0] > out[1].Position[3]+1e-9 {
		t.Errorf("clipped endpoint %v still violates right plane", out[1].Position)
	}
}
