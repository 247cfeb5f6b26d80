// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// frameTimeout bounds the fence wait after submission.
const frameTimeout = 5 * time.Second

// ErrFrameTimeout is returned when the GPU does not signal frame
// completion within the timeout.
var ErrFrameTimeout = errors.New("render: timeout waiting for frame fence")

// SubmitFrame encodes and submits one frame synchronously: a single
// render pass that clears target to clear, runs record to fill it,
// then submits and blocks until the GPU finishes. The host supplies
// the target view (swapchain or offscreen texture); presentation
// stays the host's responsibility.
//
// Typical record callback:
//
//	err := render.SubmitFrame(device, queue, view, clearColor,
//	    func(rp hal.RenderPassEncoder) {
//	        pipe.Bind(rp)
//	        renderer.RecordDraws(rp)
//	    })
func SubmitFrame(
	device hal.Device,
	queue hal.Queue,
	target hal.TextureView,
	clear gputypes.Color,
	record func(hal.RenderPassEncoder),
) error {
	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "quad_frame_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("quad_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "quad_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       target,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: clear,
		}},
	})
	if record != nil {
		record(rp)
	}
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer device.FreeCommandBuffer(cmdBuf)

	fence, err := device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer device.DestroyFence(fence)

	if err := queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	ok, err := device.Wait(fence, 1, frameTimeout)
	if err != nil {
		return fmt.Errorf("wait for frame: %w", err)
	}
	if !ok {
		return ErrFrameTimeout
	}
	return nil
}
