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

// Factory errors.
var (
	// ErrNilDevice is returned when constructing a factory without a device.
	ErrNilDevice = errors.New("render: device is nil")

	// ErrNilQueue is returned when constructing a factory without a queue.
	ErrNilQueue = errors.New("render: queue is nil")
)

// ResourceFactory is the GPU buffer capability threaded through Batch
// and Renderer construction. It replaces ambient device/queue state
// with an explicit collaborator, which also makes batching testable
// without a GPU.
type ResourceFactory interface {
	// CreateVertexBuffer creates an immutable vertex buffer holding data.
	CreateVertexBuffer(label string, data []byte) (hal.Buffer, error)

	// CreateIndexBuffer creates an immutable index buffer holding data
	// (16-bit indices).
	CreateIndexBuffer(label string, data []byte) (hal.Buffer, error)

	// CreateUniformBuffer creates a writable uniform buffer of the
	// given size.
	CreateUniformBuffer(label string, size uint64) (hal.Buffer, error)

	// WriteBuffer writes data into buf at offset.
	WriteBuffer(buf hal.Buffer, offset uint64, data []byte)

	// DestroyBuffer releases a buffer created by this factory.
	DestroyBuffer(buf hal.Buffer)
}

// DeviceFactory is a ResourceFactory backed by a hal device and queue.
type DeviceFactory struct {
	device hal.Device
	queue  hal.Queue
}

var _ ResourceFactory = (*DeviceFactory)(nil)

// NewDeviceFactory wraps the host's device and queue.
func NewDeviceFactory(device hal.Device, queue hal.Queue) (*DeviceFactory, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	return &DeviceFactory{device: device, queue: queue}, nil
}

// CreateVertexBuffer implements ResourceFactory.
func (f *DeviceFactory) CreateVertexBuffer(label string, data []byte) (hal.Buffer, error) {
	return f.createAndUpload(label, data, gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
}

// CreateIndexBuffer implements ResourceFactory.
func (f *DeviceFactory) CreateIndexBuffer(label string, data []byte) (hal.Buffer, error) {
	return f.createAndUpload(label, data, gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
}

// CreateUniformBuffer implements ResourceFactory.
func (f *DeviceFactory) CreateUniformBuffer(label string, size uint64) (hal.Buffer, error) {
	buf, err := f.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	return buf, nil
}

// WriteBuffer implements ResourceFactory.
func (f *DeviceFactory) WriteBuffer(buf hal.Buffer, offset uint64, data []byte) {
	f.queue.WriteBuffer(buf, offset, data)
}

// DestroyBuffer implements ResourceFactory.
func (f *DeviceFactory) DestroyBuffer(buf hal.Buffer) {
	if buf == nil {
		return
	}
	f.device.DestroyBuffer(buf)
}

// createAndUpload creates a buffer sized for data and uploads data to it.
func (f *DeviceFactory) createAndUpload(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := f.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	f.queue.WriteBuffer(buf, 0, data)
	quad.Logger().Debug("render: buffer uploaded", "label", label, "bytes", len(data))
	return buf, nil
}
