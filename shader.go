package srp

// ElemType tags the element type of a varying. f64 is the only supported
// element type; the tag exists so VaryingInfo can be extended later without
// breaking the shader contract.
type ElemType int

const ElemF64 ElemType = 0

// VaryingInfo describes one named varying passed from vertex to fragment
// shader: Count contiguous elements of ElemType.
type VaryingInfo struct {
	Count    int
	ElemType ElemType
}

// varyingSlots returns the total number of float64 slots described by a
// varying layout.
func varyingSlots(layout []VaryingInfo) int {
	n := 0
	for _, v := range layout {
		n += v.Count
	}
	return n
}

// VsIn is the input to a vertex shader invocation.
type VsIn struct {
	Uniform  any
	Vertex   []byte
	VertexID uint64
}

// VsOut is the output of a vertex shader invocation: a clip-space position
// and a slice of interpolated varyings, arena-owned and laid out per the
// vertex shader's Layout.
type VsOut struct {
	Position [4]float64
	Varying  []float64
}

// VertexShaderFunc transforms one vertex.
type VertexShaderFunc func(in *VsIn, out *VsOut)

// VertexShader pairs a shader closure with the layout of the varyings it
// produces.
type VertexShader struct {
	Shader VertexShaderFunc
	Layout []VaryingInfo
}

// FsIn is the input to a fragment shader invocation.
type FsIn struct {
	Uniform       any
	Interpolated  []float64
	FragCoord     [4]float64 // x, y, z, w
	FrontFacing   bool
	PrimitiveID   int
}

// FsOut is the output of a fragment shader invocation. FragDepth defaults
// to NaN, meaning "use FragCoord.z".
type FsOut struct {
	Color     [4]float64
	FragDepth float64
}

// FragmentShaderFunc shades one fragment.
type FragmentShaderFunc func(in *FsIn, out *FsOut)

// FragmentShader wraps a fragment shader closure.
type FragmentShader struct {
	Shader FragmentShaderFunc
}

// ShaderProgram pairs a vertex and fragment shader plus the uniform value
// passed to both.
type ShaderProgram struct {
	VS      *VertexShader
	FS      *FragmentShader
	Uniform any
}
