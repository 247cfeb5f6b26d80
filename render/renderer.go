// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/quad"
)

// Renderer errors.
var (
	// ErrInvalidCapacity is returned when constructing a Renderer with a
	// per-batch capacity below 1. A capacity of 0 would open empty
	// batches forever.
	ErrInvalidCapacity = errors.New("render: max items per batch must be >= 1")

	// ErrNilFactory is returned when constructing a Renderer without a
	// resource factory.
	ErrNilFactory = errors.New("render: resource factory is nil")
)

// Renderer owns an ordered, append-only collection of batches and
// routes each new square to the most recently opened one, opening a
// fresh batch when the current one is full. All batches except
// possibly the last are exactly full.
//
// Renderer is not safe for concurrent use; adds and draws happen on
// the host's render thread.
type Renderer struct {
	factory          ResourceFactory
	maxItemsPerBatch int
	batches          []*Batch
}

// NewRenderer creates a renderer whose batches hold up to
// maxItemsPerBatch quads each.
func NewRenderer(factory ResourceFactory, maxItemsPerBatch int) (*Renderer, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	if maxItemsPerBatch < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidCapacity, maxItemsPerBatch)
	}
	return &Renderer{
		factory:          factory,
		maxItemsPerBatch: maxItemsPerBatch,
	}, nil
}

// MaxItemsPerBatch returns the per-batch capacity fixed at construction.
func (r *Renderer) MaxItemsPerBatch() int { return r.maxItemsPerBatch }

// Add routes sq to the current batch, opening a new batch first if the
// current one is full. Batches are never removed, merged, or reused;
// the collection only grows for the renderer's lifetime.
func (r *Renderer) Add(sq quad.Square) error {
	if len(r.batches) == 0 || r.batches[len(r.batches)-1].ItemCount() == r.maxItemsPerBatch {
		r.batches = append(r.batches, NewBatch(r.factory))
		quad.Logger().Debug("render: opened batch", "batches", len(r.batches))
	}
	return r.batches[len(r.batches)-1].Add(sq)
}

// Batches returns the batches in insertion order. The slice is owned
// by the renderer; callers iterate it during the draw phase.
func (r *Renderer) Batches() []*Batch { return r.batches }

// ItemCount returns the total number of quads across all batches.
func (r *Renderer) ItemCount() int {
	total := 0
	for _, b := range r.batches {
		total += b.ItemCount()
	}
	return total
}

// RecordDraws binds each batch's buffer pair and issues one indexed
// draw per batch, covering all six indices of every quad it holds.
// The caller binds the pipeline and camera bind group first (see
// Pipeline.Bind).
func (r *Renderer) RecordDraws(rp hal.RenderPassEncoder) {
	for _, b := range r.batches {
		if b.ItemCount() == 0 {
			continue
		}
		rp.SetVertexBuffer(0, b.VertexBuffer(), 0)
		rp.SetIndexBuffer(b.IndexBuffer(), gputypes.IndexFormatUint16, 0)
		rp.DrawIndexed(b.IndexCount(), 1, 0, 0, 0)
	}
}

// Destroy releases every batch's GPU buffers.
func (r *Renderer) Destroy() {
	for _, b := range r.batches {
		b.Destroy()
	}
	r.batches = nil
}
