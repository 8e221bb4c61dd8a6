package srp

// InterpolationMode selects how varyings are interpolated across a
// primitive.
type InterpolationMode int

const (
	InterpolationPerspective InterpolationMode = iota
	InterpolationAffine
)

// FrontFace selects which winding order is considered front-facing.
type FrontFace int

const (
	FrontFaceCCW FrontFace = iota
	FrontFaceCW
)

// CullFace selects which triangle faces are discarded before rasterization.
type CullFace int

const (
	CullNone CullFace = iota
	CullBack
	CullFront
	CullFrontAndBack
)

// Context holds the process-wide rasterizer state shared by every draw
// call: interpolation mode, winding/cull policy, point size, and the arena
// backing all of a draw's temporary allocations. It is not safe for
// concurrent use — a single Context drives one draw call at a time,
// matching the pipeline's single-threaded design.
type Context struct {
	InterpolationMode InterpolationMode
	FrontFace         FrontFace
	CullFace          CullFace
	PointSize         float64

	arena *arena
}

// NewContext returns a Context with the pipeline's documented defaults:
// perspective-correct interpolation, counter-clockwise front faces,
// back-face culling, and a point size of 1.
func NewContext() *Context {
	return &Context{
		InterpolationMode: InterpolationPerspective,
		FrontFace:         FrontFaceCCW,
		CullFace:          CullBack,
		PointSize:         1.0,
		arena:             newArena(defaultArenaPageSize),
	}
}

// DrawVertexBuffer draws count vertices starting at startIndex directly
// from vb, with vertex IDs equal to stream positions.
func (ctx *Context) DrawVertexBuffer(vb *VertexBuffer, fb *Framebuffer, sp *ShaderProgram, prim Primitive, startIndex, count int) {
	ctx.drawBuffer(nil, vb, fb, sp, prim, startIndex, count)
}

// DrawIndexBuffer draws count stream positions starting at startIndex,
// resolving each to a vertex ID through ib before fetching from vb.
func (ctx *Context) DrawIndexBuffer(ib *IndexBuffer, vb *VertexBuffer, fb *Framebuffer, sp *ShaderProgram, prim Primitive, startIndex, count int) {
	ctx.drawBuffer(ib, vb, fb, sp, prim, startIndex, count)
}

func (ctx *Context) drawBuffer(ib *IndexBuffer, vb *VertexBuffer, fb *Framebuffer, sp *ShaderProgram, prim Primitive, startIndex, count int) {
	defer ctx.arena.Reset()

	if count == 0 {
		return
	}

	bufferLen := vb.Len()
	if ib != nil {
		bufferLen = ib.Len()
	}
	if startIndex < 0 || startIndex+count > bufferLen {
		notify(MessageError, SeverityHigh, "DrawBuffer",
			"attempt to OOB access buffer (read) at indices %d-%d (size: %d)",
			startIndex, startIndex+count-1, bufferLen)
		return
	}
	if ib != nil {
		for i := startIndex; i < startIndex+count; i++ {
			if vi := ib.Index(i); vi >= uint64(vb.Len()) {
				notify(MessageError, SeverityHigh, "DrawBuffer",
					"index %d at position %d is out of range of the vertex buffer (size: %d)",
					vi, i, vb.Len())
				return
			}
		}
	}

	if prim.isTriangle() {
		if ctx.CullFace == CullFrontAndBack {
			return
		}
		ctx.drawTriangles(ib, vb, fb, sp, prim, startIndex, count)
		return
	}
	if prim.isLine() {
		ctx.drawLines(ib, vb, fb, sp, prim, startIndex, count)
		return
	}
	ctx.drawPoints(ib, vb, fb, sp, startIndex, count)
}

func (ctx *Context) resolveVertexID(ib *IndexBuffer, streamIndex int) uint64 {
	if ib == nil {
		return uint64(streamIndex)
	}
	return ib.Index(streamIndex)
}

func (ctx *Context) drawTriangles(ib *IndexBuffer, vb *VertexBuffer, fb *Framebuffer, sp *ShaderProgram, prim Primitive, startIndex, count int) {
	if count%3 != 0 && prim == PrimTriangles {
		notify(MessageWarning, SeverityLow, "DrawBuffer",
			"vertex count not divisible by 3, the last %d vertex/vertices will be ignored", count%3)
	}

	nUnclipped := computeTriangleCount(count, prim)
	if nUnclipped == 0 {
		return
	}

	cache := newVertexCache(ctx.arena, ib, startIndex, count)
	slots := varyingSlots(sp.VS.Layout)

	primitiveID := 0
	for k := 0; k < nUnclipped; k++ {
		idx := resolveTriangleTopology(startIndex, k, prim)

		var v [3]VsOut
		for i := 0; i < 3; i++ {
			vertexID := ctx.resolveVertexID(ib, idx[i])
			varying := ctx.allocVarying(slots)
			v[i] = *cache.fetch(vertexID, varying, vb, sp)
		}

		for _, clipped := range clipTriangle(v) {
			tri := setupTriangle(ctx.arena, clipped, fb, ctx.CullFace, ctx.FrontFace)
			if tri == nil {
				continue
			}
			tri.id = primitiveID
			primitiveID++
			tri.rasterize(fb, sp, ctx.InterpolationMode)
		}
	}
}

func (ctx *Context) drawLines(ib *IndexBuffer, vb *VertexBuffer, fb *Framebuffer, sp *ShaderProgram, prim Primitive, startIndex, count int) {
	if prim == PrimLines && count%2 != 0 {
		notify(MessageWarning, SeverityLow, "DrawBuffer",
			"odd vertex count when drawing lines, the last vertex will be ignored")
	}

	nLines := computeLineCount(count, prim)
	if nLines == 0 {
		return
	}

	cache := newVertexCache(ctx.arena, ib, startIndex, count)
	slots := varyingSlots(sp.VS.Layout)

	primitiveID := 0
	for k := 0; k < nLines; k++ {
		idx := resolveLineTopology(startIndex, k, prim, count)

		var v [2]VsOut
		for i := 0; i < 2; i++ {
			vertexID := ctx.resolveVertexID(ib, idx[i])
			varying := ctx.allocVarying(slots)
			v[i] = *cache.fetch(vertexID, varying, vb, sp)
		}

		clipped, ok := clipLine(v)
		if !ok {
			continue
		}
		ln := setupLine(ctx.arena, clipped, fb)
		ln.id = primitiveID
		primitiveID++
		ln.rasterize(fb, sp, ctx.InterpolationMode)
	}
}

func (ctx *Context) drawPoints(ib *IndexBuffer, vb *VertexBuffer, fb *Framebuffer, sp *ShaderProgram, startIndex, count int) {
	if ctx.PointSize <= 0 {
		return
	}

	slots := varyingSlots(sp.VS.Layout)
	for k := 0; k < count; k++ {
		vertexID := ctx.resolveVertexID(ib, startIndex+k)
		varying := ctx.allocVarying(slots)

		var out VsOut
		processVertex(vertexID, varying, vb, sp, &out)

		p := ctx.arena.points.new()
		p.v = out
		p.id = k
		p.rasterize(fb, sp, ctx.PointSize)
	}
}

// allocVarying reserves a slots-wide float64 slice from the context's
// arena, valid until the arena's next Reset at the end of this draw call.
func (ctx *Context) allocVarying(slots int) []float64 {
	return ctx.arena.AllocFloat64(slots)
}
