package quad

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// Vertex layout constants. The pipeline's vertex shader reads two
// tightly packed Float32x3 attributes per vertex; any change here must
// be mirrored in shaders/quad.wgsl.
const (
	// VertexStride is the size of one packed Vertex in bytes:
	// 3 floats position + 3 floats color.
	VertexStride = 24

	// VertexPositionOffset is the byte offset of the position attribute.
	VertexPositionOffset = 0

	// VertexColorOffset is the byte offset of the color attribute.
	VertexColorOffset = 12

	// VerticesPerQuad is the number of vertices one square contributes.
	VerticesPerQuad = 4

	// IndicesPerQuad is the number of indices one square contributes
	// (two triangles).
	IndicesPerQuad = 6
)

// Vertex is one GPU vertex: a world-space position and an RGB color.
type Vertex struct {
	Position Vec3
	Color    Color
}

// VertexBufferLayout returns the vertex buffer layout contract for the
// quad pipeline: position at shader location 0, color at location 1.
func VertexBufferLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{
				Format:         gputypes.VertexFormatFloat32x3,
				Offset:         VertexPositionOffset,
				ShaderLocation: 0,
			},
			{
				Format:         gputypes.VertexFormatFloat32x3,
				Offset:         VertexColorOffset,
				ShaderLocation: 1,
			},
		},
	}
}

// QuadVertices expands a square into its four corner vertices in the
// fixed order top-left, bottom-left, top-right, bottom-right. The quad
// spans from Position rightward and downward by Size; all corners
// share the square's color and sit at z=0.
func QuadVertices(sq Square) [VerticesPerQuad]Vertex {
	x, y := sq.Position.X, sq.Position.Y
	s := sq.Size
	return [VerticesPerQuad]Vertex{
		{Position: Vec3{X: x, Y: y}, Color: sq.Color},
		{Position: Vec3{X: x, Y: y - s}, Color: sq.Color},
		{Position: Vec3{X: x + s, Y: y}, Color: sq.Color},
		{Position: Vec3{X: x + s, Y: y - s}, Color: sq.Color},
	}
}

// AppendVertexBytes appends the packed little-endian representation of
// v to dst and returns the extended slice. The encoding matches
// VertexBufferLayout exactly: six IEEE 754 floats, no padding.
func AppendVertexBytes(dst []byte, v Vertex) []byte {
	for _, f := range [6]float32{
		v.Position.X, v.Position.Y, v.Position.Z,
		v.Color.R, v.Color.G, v.Color.B,
	} {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}

// VertexBytes packs a vertex slice into the byte blob uploaded to a
// GPU vertex buffer.
func VertexBytes(vertices []Vertex) []byte {
	data := make([]byte, 0, len(vertices)*VertexStride)
	for _, v := range vertices {
		data = AppendVertexBytes(data, v)
	}
	return data
}
