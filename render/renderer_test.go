// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"
)

func TestNewRendererRejectsBadCapacity(t *testing.T) {
	factory := &mockFactory{}
	for _, capacity := range []int{0, -1, -100} {
		_, err := NewRenderer(factory, capacity)
		if !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("NewRenderer(capacity=%d) = %v, want ErrInvalidCapacity", capacity, err)
		}
	}
}

func TestNewRendererRejectsNilFactory(t *testing.T) {
	if _, err := NewRenderer(nil, 4); !errors.Is(err, ErrNilFactory) {
		t.Errorf("NewRenderer(nil factory) = %v, want ErrNilFactory", err)
	}
}

func TestRendererBatchCounts(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		adds     int
		batches  int
	}{
		{"empty", 4, 0, 0},
		{"partial batch", 4, 3, 1},
		{"exactly full", 4, 4, 1},
		{"spill into second", 4, 5, 2},
		{"capacity one", 1, 3, 3},
		{"boundary", 2, 3, 2},
		{"many", 16, 100, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRenderer(&mockFactory{}, tt.capacity)
			if err != nil {
				t.Fatalf("NewRenderer() = %v", err)
			}
			for i := 0; i < tt.adds; i++ {
				if err := r.Add(redSquare(float32(i), 0)); err != nil {
					t.Fatalf("Add(%d) = %v", i, err)
				}
			}

			batches := r.Batches()
			if len(batches) != tt.batches {
				t.Fatalf("batches = %d, want %d", len(batches), tt.batches)
			}

			// Every batch except possibly the last is exactly full, and
			// the last holds the remainder.
			for i, b := range batches[:max(len(batches)-1, 0)] {
				if b.ItemCount() != tt.capacity {
					t.Errorf("batch %d items = %d, want full (%d)", i, b.ItemCount(), tt.capacity)
				}
			}
			if tt.batches > 0 {
				wantLast := tt.adds - tt.capacity*(tt.batches-1)
				if got := batches[len(batches)-1].ItemCount(); got != wantLast {
					t.Errorf("last batch items = %d, want %d", got, wantLast)
				}
			}
			if r.ItemCount() != tt.adds {
				t.Errorf("ItemCount = %d, want %d", r.ItemCount(), tt.adds)
			}
		})
	}
}

func TestRendererBatchBoundary(t *testing.T) {
	r, err := NewRenderer(&mockFactory{}, 2)
	if err != nil {
		t.Fatalf("NewRenderer() = %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := r.Add(redSquare(0, float32(i))); err != nil {
			t.Fatalf("Add(%d) = %v", i, err)
		}
	}

	batches := r.Batches()
	if len(batches) != 2 {
		t.Fatalf("batches = %d, want 2", len(batches))
	}
	if batches[0].ItemCount() != 2 {
		t.Errorf("first batch items = %d, want 2", batches[0].ItemCount())
	}
	if batches[1].ItemCount() != 1 {
		t.Errorf("second batch items = %d, want 1", batches[1].ItemCount())
	}
}

func TestRendererBatchesOnlyGrow(t *testing.T) {
	r, err := NewRenderer(&mockFactory{}, 2)
	if err != nil {
		t.Fatalf("NewRenderer() = %v", err)
	}

	var seen []*Batch
	for i := 0; i < 6; i++ {
		if err := r.Add(redSquare(float32(i), 0)); err != nil {
			t.Fatalf("Add(%d) = %v", i, err)
		}
		batches := r.Batches()
		// Earlier batches keep their identity; the list is append-only.
		for j, b := range seen {
			if batches[j] != b {
				t.Fatalf("batch %d was replaced after add %d", j, i)
			}
		}
		seen = append(seen[:0], batches...)
	}
}

func TestRendererDestroy(t *testing.T) {
	factory := &mockFactory{}
	r, err := NewRenderer(factory, 2)
	if err != nil {
		t.Fatalf("NewRenderer() = %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := r.Add(redSquare(float32(i), 0)); err != nil {
			t.Fatalf("Add(%d) = %v", i, err)
		}
	}

	created, destroyed := factory.created, factory.destroyed
	live := created - destroyed
	r.Destroy()

	if factory.destroyed != destroyed+live {
		t.Errorf("Destroy released %d buffers, want %d", factory.destroyed-destroyed, live)
	}
	if r.Batches() != nil {
		t.Error("Batches() not nil after Destroy")
	}
}

func TestRendererAddPropagatesFactoryError(t *testing.T) {
	bufErr := errors.New("device lost")
	factory := &mockFactory{createVertexErr: bufErr}
	r, err := NewRenderer(factory, 2)
	if err != nil {
		t.Fatalf("NewRenderer() = %v", err)
	}

	if err := r.Add(redSquare(0, 0)); !errors.Is(err, bufErr) {
		t.Errorf("Add() = %v, want wrapped factory error", err)
	}
}
