// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render batches quad geometry into GPU buffers and draws it.
//
// The entry points are Renderer (accumulates squares into capacity-
// bounded batches), Pipeline (the WGSL render pipeline plus the camera
// uniform bind group), and SubmitFrame (a synchronous one-frame encode
// helper). GPU resources are created through the ResourceFactory
// capability, normally a DeviceFactory wrapping the host's hal.Device
// and hal.Queue — this package never creates a device of its own.
package render
