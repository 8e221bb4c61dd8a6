package srp

import "encoding/binary"

// VertexBuffer is an opaque byte blob plus a per-vertex stride. The
// pipeline never interprets its contents; only the caller's vertex shader
// does.
type VertexBuffer struct {
	data           []byte
	bytesPerVertex int
}

// NewVertexBuffer returns an empty vertex buffer.
func NewVertexBuffer() *VertexBuffer {
	return &VertexBuffer{}
}

// CopyData replaces the buffer's contents with a copy of data, recording
// bytesPerVertex as the per-vertex stride. Vertex count is
// len(data)/bytesPerVertex; trailing bytes that don't fill a whole vertex
// are ignored.
func (vb *VertexBuffer) CopyData(bytesPerVertex int, data []byte) {
	vb.bytesPerVertex = bytesPerVertex
	vb.data = append(vb.data[:0], data...)
}

// Len returns the number of whole vertices stored.
func (vb *VertexBuffer) Len() int {
	if vb.bytesPerVertex == 0 {
		return 0
	}
	return len(vb.data) / vb.bytesPerVertex
}

// Vertex returns the byte slice for the vertex at index i.
func (vb *VertexBuffer) Vertex(i int) []byte {
	off := i * vb.bytesPerVertex
	return vb.data[off : off+vb.bytesPerVertex]
}

// IndexElemType identifies the unsigned integer width of an index buffer's
// elements.
type IndexElemType int

const (
	IndexU8 IndexElemType = iota
	IndexU16
	IndexU32
	IndexU64
)

func (t IndexElemType) size() int {
	switch t {
	case IndexU8:
		return 1
	case IndexU16:
		return 2
	case IndexU32:
		return 4
	case IndexU64:
		return 8
	default:
		return 0
	}
}

// IndexBuffer is an opaque byte blob tagged with the unsigned width of its
// elements.
type IndexBuffer struct {
	data      []byte
	elemType  IndexElemType
	elemBytes int
}

// NewIndexBuffer returns an empty index buffer defaulting to 8-bit indices;
// the type is overwritten on the first CopyData call.
func NewIndexBuffer() *IndexBuffer {
	return &IndexBuffer{elemType: IndexU8, elemBytes: IndexU8.size()}
}

// CopyData replaces the buffer's contents with a copy of data, tagged with
// elemType.
func (ib *IndexBuffer) CopyData(elemType IndexElemType, data []byte) {
	ib.elemType = elemType
	ib.elemBytes = elemType.size()
	ib.data = append(ib.data[:0], data...)
}

// Len returns the number of whole indices stored.
func (ib *IndexBuffer) Len() int {
	if ib.elemBytes == 0 {
		return 0
	}
	return len(ib.data) / ib.elemBytes
}

// Index returns the element at position i widened to uint64.
func (ib *IndexBuffer) Index(i int) uint64 {
	off := i * ib.elemBytes
	b := ib.data[off : off+ib.elemBytes]
	switch ib.elemType {
	case IndexU8:
		return uint64(b[0])
	case IndexU16:
		return uint64(binary.LittleEndian.Uint16(b))
	case IndexU32:
		return uint64(binary.LittleEndian.Uint32(b))
	case IndexU64:
		return binary.LittleEndian.Uint64(b)
	default:
		return 0
	}
}
