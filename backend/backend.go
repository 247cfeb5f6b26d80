// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend opens a GPU device for hosts that do not bring
// their own. Applications embedding quad into an existing gogpu or
// wgpu setup should skip this package and hand their device and queue
// to render.NewDeviceFactory directly.
package backend

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/quad"
)

// Backend errors.
var (
	// ErrBackendUnavailable is returned when no hal backend is registered.
	ErrBackendUnavailable = errors.New("backend: vulkan backend not available")

	// ErrNoAdapter is returned when the instance exposes no GPU adapters.
	ErrNoAdapter = errors.New("backend: no GPU adapters found")
)

// GPU holds an open device/queue pair and the instance that produced it.
type GPU struct {
	Device hal.Device
	Queue  hal.Queue

	// Name is the selected adapter's reported name.
	Name string

	instance hal.Instance
}

// Open creates an instance on the Vulkan backend, selects an adapter
// (discrete preferred, then integrated, then whatever is first), and
// opens a device with default limits.
func Open() (*GPU, error) {
	be, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, ErrBackendUnavailable
	}
	instance, err := be.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open device: %w", err)
	}

	quad.Logger().Info("backend: GPU adapter selected", "name", selected.Info.Name)
	return &GPU{
		Device:   openDev.Device,
		Queue:    openDev.Queue,
		Name:     selected.Info.Name,
		instance: instance,
	}, nil
}

// Close destroys the device and instance. The GPU must not be used
// afterwards.
func (g *GPU) Close() {
	if g.Device != nil {
		g.Device.Destroy()
		g.Device = nil
		g.Queue = nil
	}
	if g.instance != nil {
		g.instance.Destroy()
		g.instance = nil
	}
}
