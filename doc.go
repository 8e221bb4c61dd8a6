// Package srp implements the core of a CPU-only, programmable software
// rendering pipeline modelled after fixed-function OpenGL/Vulkan semantics.
//
// # Overview
//
// srp drives vertex streams through a fixed sequence of stages: vertex
// processing with a post-transform cache, primitive assembly by topology,
// homogeneous-space clipping, perspective divide and viewport mapping,
// back-face culling, triangle/line/point rasterization with
// perspective-correct attribute interpolation, and per-fragment shading with
// a depth test.
//
// # Quick start
//
//	ctx := srp.NewContext()
//	fb := srp.NewFramebuffer(640, 480)
//	fb.Clear()
//
//	vb := srp.NewVertexBuffer()
//	vb.CopyData(24, vertexBytes) // 3 float64s per vertex
//
//	sp := &srp.ShaderProgram{
//	    VS: &srp.VertexShader{Shader: myVertexShader},
//	    FS: &srp.FragmentShader{Shader: myFragmentShader},
//	}
//
//	ctx.DrawVertexBuffer(vb, fb, sp, srp.PrimTriangles, 0, 3)
//
// # Scope
//
// The library is CPU-only and single-threaded by design: one draw call is
// one synchronous traversal. The call's vertex-cache entries, assembled
// primitives and varying slots come from a bump arena that is reset when the
// call returns; the clipper's polygon buffers and vertex copies are ordinary
// heap allocations. There is no
// multisampling, no mipmapping, no geometry/tessellation/compute stage, and
// no blending beyond overwrite-on-pass.
//
// # Architecture
//
//   - Buffers: VertexBuffer, IndexBuffer — opaque byte blobs plus layout metadata.
//   - Framebuffer: color + depth planes and the NDC-to-screen mapping.
//   - Texture: nearest-filtered image sampling with wrap modes.
//   - Vertex processing: the post-vertex-shader cache (vertexcache.go).
//   - Clipping: Sutherland–Hodgman (triangles) and Liang–Barsky (lines).
//   - Rasterization: triangle.go, line.go, point.go.
//   - Context: process state (cull face, front face, interpolation mode,
//     point size) and the draw dispatcher.
package srp
