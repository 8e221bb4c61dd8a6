package srp

// Primitive selects how a vertex stream is grouped into triangles, lines,
// or points.
type Primitive int

const (
	PrimPoints Primitive = iota
	PrimLines
	PrimLineStrip
	PrimLineLoop
	PrimTriangles
	PrimTriangleStrip
	PrimTriangleFan
)

func (p Primitive) isTriangle() bool {
	return p == PrimTriangles || p == PrimTriangleStrip || p == PrimTriangleFan
}

func (p Primitive) isLine() bool {
	return p == PrimLines || p == PrimLineStrip || p == PrimLineLoop
}

// computeTriangleCount returns how many (possibly still-unclipped)
// triangles a vertex stream of length vertexCount produces under prim.
func computeTriangleCount(vertexCount int, prim Primitive) int {
	switch prim {
	case PrimTriangles:
		return vertexCount / 3
	case PrimTriangleStrip, PrimTriangleFan:
		if vertexCount >= 3 {
			return vertexCount - 2
		}
		return 0
	default:
		return 0
	}
}

// resolveTriangleTopology returns the three stream indices making up
// triangle rawTriIdx (0-based, counting skipped/incomplete trailing
// vertices as part of the stream, not the triangle count).
func resolveTriangleTopology(base, rawTriIdx int, prim Primitive) [3]int {
	switch prim {
	case PrimTriangleStrip:
		odd := rawTriIdx%2 == 1
		if odd {
			return [3]int{base + rawTriIdx + 1, base + rawTriIdx, base + rawTriIdx + 2}
		}
		return [3]int{base + rawTriIdx, base + rawTriIdx + 1, base + rawTriIdx + 2}
	case PrimTriangleFan:
		return [3]int{base, base + rawTriIdx + 1, base + rawTriIdx + 2}
	default: // PrimTriangles
		return [3]int{base + rawTriIdx*3, base + rawTriIdx*3 + 1, base + rawTriIdx*3 + 2}
	}
}

// computeLineCount returns how many line segments a vertex stream of
// length vertexCount produces under prim.
func computeLineCount(vertexCount int, prim Primitive) int {
	switch prim {
	case PrimLines:
		return vertexCount / 2
	case PrimLineStrip:
		if vertexCount > 1 {
			return vertexCount - 1
		}
		return 0
	case PrimLineLoop:
		if vertexCount > 1 {
			return vertexCount
		}
		return 0
	default:
		return 0
	}
}

// resolveLineTopology returns the two stream indices making up line
// rawLineIdx.
func resolveLineTopology(base, rawLineIdx int, prim Primitive, vertexCount int) [2]int {
	switch prim {
	case PrimLineStrip:
		return [2]int{base + rawLineIdx, base + rawLineIdx + 1}
	case PrimLineLoop:
		return [2]int{base + rawLineIdx, base + (rawLineIdx+1)%vertexCount}
	default: // PrimLines
		return [2]int{base + rawLineIdx*2, base + rawLineIdx*2 + 1}
	}
}
