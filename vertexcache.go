package srp

// vertexCacheEntry holds one memoized post-vertex-shader result.
type vertexCacheEntry struct {
	valid bool
	out   VsOut
}

// vertexCache maps a stream's vertex IDs to their vertex-shader output,
// scoped to a single draw call. It is a dense array sized to the ID range
// actually touched by the draw, not an LRU: within one draw, invoking the
// same vertex ID twice is guaranteed to be free after the first miss.
type vertexCache struct {
	baseVertex uint64
	entries    []vertexCacheEntry
}

// computeMinMaxVI scans a stream once to find the range of vertex IDs it
// touches. ib is nil when drawing directly from a vertex buffer, in which
// case vertex IDs equal stream positions.
func computeMinMaxVI(ib *IndexBuffer, startIndex, count int) (minVI, maxVI uint64) {
	if ib == nil {
		return uint64(startIndex), uint64(startIndex + count - 1)
	}
	minVI = ^uint64(0)
	for i := 0; i < count; i++ {
		vi := ib.Index(startIndex + i)
		if vi < minVI {
			minVI = vi
		}
		if vi > maxVI {
			maxVI = vi
		}
	}
	return
}

func newVertexCache(a *arena, ib *IndexBuffer, startIndex, count int) *vertexCache {
	minVI, maxVI := computeMinMaxVI(ib, startIndex, count)
	return &vertexCache{
		baseVertex: minVI,
		entries:    a.vertexCacheEntries.alloc(int(maxVI - minVI + 1)),
	}
}

// fetch returns the cached vertex-shader output for vertexID, invoking the
// vertex shader on the first request and memoizing the result for the
// remainder of the draw call. varying is the slice of varying storage
// reserved for this vertex ID.
func (c *vertexCache) fetch(vertexID uint64, varying []float64, vb *VertexBuffer, sp *ShaderProgram) *VsOut {
	entry := &c.entries[vertexID-c.baseVertex]
	if !entry.valid {
		processVertex(vertexID, varying, vb, sp, &entry.out)
		entry.valid = true
	}
	return &entry.out
}

// processVertex invokes the vertex shader once, unconditionally — used
// directly by point assembly, which bypasses the cache.
func processVertex(vertexID uint64, varying []float64, vb *VertexBuffer, sp *ShaderProgram, out *VsOut) {
	in := VsIn{
		Uniform:  sp.Uniform,
		Vertex:   vb.Vertex(int(vertexID)),
		VertexID: vertexID,
	}
	*out = VsOut{Varying: varying}
	sp.VS.Shader(&in, out)
}

// applyPerspectiveDivide divides the clip-space position by w, storing the
// result as NDC with w reset to 1, and returns 1/w for later
// perspective-correct interpolation.
func applyPerspectiveDivide(out *VsOut) (invW float64) {
	invW = 1.0 / out.Position[3]
	out.Position[0] *= invW
	out.Position[1] *= invW
	out.Position[2] *= invW
	out.Position[3] = 1.0
	return invW
}
