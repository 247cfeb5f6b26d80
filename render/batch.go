// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/quad"
)

// Batch owns the vertex list for up to a fixed number of quads and the
// GPU buffer pair derived from it. The buffers are derived state: both
// are rebuilt from scratch on every Add and never partially patched.
// A Batch does not enforce its own capacity; the Renderer routes adds
// and stops filling a batch once it is full.
type Batch struct {
	factory ResourceFactory

	vertices  []quad.Vertex
	itemCount int

	vertexBuf hal.Buffer
	indexBuf  hal.Buffer
}

// NewBatch creates an empty batch whose buffers will be allocated
// through factory on the first Add.
func NewBatch(factory ResourceFactory) *Batch {
	return &Batch{factory: factory}
}

// Add appends the four corner vertices of sq and rebuilds the index
// list and both GPU buffers. Rebuild cost is proportional to the
// items already in the batch; the Renderer's capacity bounds it.
func (b *Batch) Add(sq quad.Square) error {
	corners := quad.QuadVertices(sq)
	b.vertices = append(b.vertices, corners[:]...)
	b.itemCount++

	if err := b.rebuildBuffers(); err != nil {
		// Roll back so the vertex list stays consistent with the buffers.
		b.vertices = b.vertices[:len(b.vertices)-quad.VerticesPerQuad]
		b.itemCount--
		return err
	}
	return nil
}

// ItemCount returns the number of quads in the batch.
func (b *Batch) ItemCount() int { return b.itemCount }

// Vertices returns the accumulated vertex list. len == 4 * ItemCount.
func (b *Batch) Vertices() []quad.Vertex { return b.vertices }

// Indices returns the uint16 index list covering every quad in the
// batch, regenerated to match the current contents. len == 6 * ItemCount.
func (b *Batch) Indices() []uint16 { return buildQuadIndices(b.itemCount) }

// IndexCount returns the number of indices the draw call covers.
func (b *Batch) IndexCount() uint32 { return uint32(b.itemCount * quad.IndicesPerQuad) }

// VertexBuffer returns the GPU vertex buffer, or nil before the first Add.
func (b *Batch) VertexBuffer() hal.Buffer { return b.vertexBuf }

// IndexBuffer returns the GPU index buffer, or nil before the first Add.
func (b *Batch) IndexBuffer() hal.Buffer { return b.indexBuf }

// Destroy releases the batch's GPU buffers. The batch must not be used
// afterwards.
func (b *Batch) Destroy() {
	if b.vertexBuf != nil {
		b.factory.DestroyBuffer(b.vertexBuf)
		b.vertexBuf = nil
	}
	if b.indexBuf != nil {
		b.factory.DestroyBuffer(b.indexBuf)
		b.indexBuf = nil
	}
}

// rebuildBuffers regenerates both GPU buffers from the vertex list,
// destroying the previous pair.
func (b *Batch) rebuildBuffers() error {
	vertexData := quad.VertexBytes(b.vertices)
	indexData := indexBytes(buildQuadIndices(b.itemCount))

	vertexBuf, err := b.factory.CreateVertexBuffer("quad_batch_vertices", vertexData)
	if err != nil {
		return fmt.Errorf("rebuild vertex buffer: %w", err)
	}
	indexBuf, err := b.factory.CreateIndexBuffer("quad_batch_indices", indexData)
	if err != nil {
		b.factory.DestroyBuffer(vertexBuf)
		return fmt.Errorf("rebuild index buffer: %w", err)
	}

	if b.vertexBuf != nil {
		b.factory.DestroyBuffer(b.vertexBuf)
	}
	if b.indexBuf != nil {
		b.factory.DestroyBuffer(b.indexBuf)
	}
	b.vertexBuf = vertexBuf
	b.indexBuf = indexBuf

	quad.Logger().Debug("render: batch rebuilt",
		"items", b.itemCount,
		"vertexBytes", len(vertexData),
		"indexBytes", len(indexData))
	return nil
}

// buildQuadIndices generates the index list for numQuads quads. Each
// quad contributes the pattern 0,1,2,3,2,1 (two triangles over
// top-left, bottom-left, top-right, bottom-right) offset by the four
// vertices of the quads before it.
func buildQuadIndices(numQuads int) []uint16 {
	indices := make([]uint16, numQuads*quad.IndicesPerQuad)
	for i := 0; i < numQuads; i++ {
		base := i * quad.IndicesPerQuad
		vertex := uint16(i * quad.VerticesPerQuad)
		indices[base+0] = vertex + 0
		indices[base+1] = vertex + 1
		indices[base+2] = vertex + 2
		indices[base+3] = vertex + 3
		indices[base+4] = vertex + 2
		indices[base+5] = vertex + 1
	}
	return indices
}

// indexBytes packs indices into their little-endian uint16 wire form.
func indexBytes(indices []uint16) []byte {
	data := make([]byte, len(indices)*2)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(data[i*2:], idx)
	}
	return data
}
